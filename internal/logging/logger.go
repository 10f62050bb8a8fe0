package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/orandin/lumberjackrus"
	"github.com/sirupsen/logrus"
)

type contextKey string

const loggerKey = contextKey("logger")

// TimestampFormat renders e.g. [16/Oct/2026 13:04:05]
const TimestampFormat = "[02/Jan/2006 15:04:05]"

const defaultName = "rates"

var (
	defaultLogger     *logrus.Entry
	defaultLoggerOnce sync.Once
)

// Config is the [logger] section of the configuration file
type Config struct {
	Level      string `ini:"level"`
	File       string `ini:"file"`
	MaxSize    int    `ini:"max_size"`
	MaxBackups int    `ini:"max_backups"`
	MaxAge     int    `ini:"max_age"`
	Compress   bool   `ini:"compress"`
}

func DefaultConfig() *Config {
	return &Config{
		Level:      logrus.InfoLevel.String(),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

func DefaultLogger() *logrus.Entry {
	defaultLoggerOnce.Do(func() {
		l, err := NewLogger(defaultName, os.Stderr, DefaultConfig())
		if err != nil {
			panic(err)
		}
		defaultLogger = l
	})
	return defaultLogger
}

// NewLogger builds a logger writing timestamped lines to out. If cfg.File is set,
// records are also written as JSON to a rotated file
func NewLogger(name string, out io.Writer, cfg *Config) (*logrus.Entry, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&nested.Formatter{
		TimestampFormat: TimestampFormat,
		FieldsOrder:     []string{"component", "run"},
		NoColors:        true,
	})

	if cfg.File != "" {
		hook, err := lumberjackrus.NewHook(
			&lumberjackrus.LogFile{
				Filename:   cfg.File,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
				LocalTime:  true,
			},
			level,
			&logrus.JSONFormatter{},
			&lumberjackrus.LogFileOpts{},
		)
		if err != nil {
			return nil, fmt.Errorf("lumberjackrus.NewHook: %w", err)
		}
		l.AddHook(hook)
	}

	return l.WithField("component", name), nil
}

func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func FromContext(ctx context.Context) *logrus.Entry {
	if logger, ok := ctx.Value(loggerKey).(*logrus.Entry); ok {
		return logger
	}
	return DefaultLogger()
}
