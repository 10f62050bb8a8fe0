package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	rates "github.com/crazytosser25/goit-web-hw-05"
	"github.com/crazytosser25/goit-web-hw-05/internal/args"
	"github.com/crazytosser25/goit-web-hw-05/internal/config"
	"github.com/crazytosser25/goit-web-hw-05/internal/logging"
	"github.com/crazytosser25/goit-web-hw-05/provider/httputil"
)

const banner = "Exchange rates of PrivatBank:"

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := realMain(ctx, config.Path(), os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func realMain(ctx context.Context, cfgPath string, argv []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(stdout, "config: %v\n", err)
		return exitFailure
	}

	logger, err := logging.NewLogger("rates", stderr, cfg.Logger)
	if err != nil {
		fmt.Fprintf(stdout, "logger: %v\n", err)
		return exitFailure
	}

	logger = logger.WithField("run", uuid.New().String())
	ctx = logging.WithLogger(ctx, logger)

	params, err := args.Parse(argv)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return exitUsage
	}

	for _, sym := range params.Unknown() {
		logger.Warnf("%s is not an ISO 4217 currency code", sym)
	}

	logger.WithFields(logrus.Fields{
		"days":       params.Days,
		"currencies": params.Currencies.Symbols(),
		"url":        cfg.ArchiveURL.String(),
	}).Debug("requesting rates")

	exchanger := rates.New(
		httputil.DefaultSourceHTTPClient().WithUserAgent(cfg.UserAgent),
		rates.WithArchiveURL(cfg.ArchiveURL),
		rates.WithRequestTimeout(cfg.RequestTimeout),
	)

	report, err := exchanger.GetReport(ctx, params.Days, params.Currencies)
	if err != nil {
		logger.WithError(err).Error("get report")
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(stdout, "interrupted")
			return exitFailure
		}

		fmt.Fprintf(stdout, "unable to get exchange rates: %v\n", err)
		return exitFailure
	}

	fmt.Fprintln(stdout, banner)
	if err := report.Encode(stdout); err != nil {
		logger.WithError(err).Error("write report")
		return exitFailure
	}

	return exitOK
}
