// Package config loads the optional ini configuration of the rates command
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/ini.v1"

	"github.com/crazytosser25/goit-web-hw-05/internal/logging"
	"github.com/crazytosser25/goit-web-hw-05/provider/httputil"
	"github.com/crazytosser25/goit-web-hw-05/provider/privat"
)

const (
	// EnvFile names the variable holding the configuration path
	EnvFile     = "PRIVAT_RATES_CONFIG"
	DefaultFile = "rates.ini"
)

type Config struct {
	// ArchiveURL is the endpoint queried for every day
	ArchiveURL url.URL
	// RequestTimeout bounds each day request, zero means none
	RequestTimeout time.Duration
	UserAgent      string
	Logger         *logging.Config
}

// Path returns the configuration file from the environment or DefaultFile
func Path() string {
	if p := os.Getenv(EnvFile); p != "" {
		return p
	}

	return DefaultFile
}

// Load reads the file at path. A missing file yields the defaults
func Load(path string) (*Config, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		Loose:                    true,
		SpaceBeforeInlineComment: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("load config file: %w", err)
	}
	file.NameMapper = ini.TitleUnderscore

	cfgLog := logging.DefaultConfig()
	if err := file.Section("logger").MapTo(cfgLog); err != nil {
		return nil, fmt.Errorf("mapping logger config: %w", err)
	}

	api := file.Section("api")
	service := file.Section("service")

	timeout := service.Key("request_timeout").MustInt64(0)
	if timeout < 0 {
		return nil, fmt.Errorf("request_timeout must not be negative: %d", timeout)
	}

	return &Config{
		ArchiveURL: url.URL{
			Scheme: api.Key("scheme").MustString(privat.DefaultArchiveURL.Scheme),
			Host:   api.Key("host").MustString(privat.DefaultArchiveURL.Host),
			Path:   api.Key("path").MustString(privat.DefaultArchiveURL.Path),
		},
		RequestTimeout: time.Duration(timeout) * time.Second,
		UserAgent:      service.Key("user_agent").MustString(httputil.DefaultUserAgent),
		Logger:         cfgLog,
	}, nil
}
