// Package rates builds day-by-day reports of bank exchange rates for a set of currencies
package rates

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/crazytosser25/goit-web-hw-05/internal/logging"
	"github.com/crazytosser25/goit-web-hw-05/label"
	"github.com/crazytosser25/goit-web-hw-05/provider"
	"github.com/crazytosser25/goit-web-hw-05/provider/httputil"
	"github.com/crazytosser25/goit-web-hw-05/provider/privat"
)

const (
	// MaxDays is the longest day range one report may cover
	MaxDays = 10
	// DefaultDays is the day range used when none is requested
	DefaultDays = 1
)

// ProviderNamePrivat source name for PrivatBank
const ProviderNamePrivat = "privat"

var ErrDaysOutOfRange = errors.New("day count is out of range")

type Option func(*exchanger)

type Options struct {
	// RequestTimeout bounds every single day request, zero means no timeout
	RequestTimeout time.Duration
	ArchiveURL     url.URL
}

// WithRequestTimeout set a timeout for each day request
func WithRequestTimeout(t time.Duration) Option {
	return func(e *exchanger) {
		e.opts.RequestTimeout = t
	}
}

// WithArchiveURL set the PrivatBank archive endpoint
func WithArchiveURL(u url.URL) Option {
	return func(e *exchanger) {
		e.opts.ArchiveURL = u
	}
}

// WithSource replaces the PrivatBank source
func WithSource(name string, source provider.Source) Option {
	return func(e *exchanger) {
		e.name = name
		e.source = source
	}
}

// WithClock set the function returning the invocation time
func WithClock(now func() time.Time) Option {
	return func(e *exchanger) {
		e.now = now
	}
}

// New return exchanger reading PrivatBank archive rates with the given client
func New(client httputil.SourceHTTPClient, opts ...Option) *exchanger {
	e := &exchanger{
		opts: Options{
			ArchiveURL: privat.DefaultArchiveURL,
		},
		name: ProviderNamePrivat,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.source == nil {
		e.source = privat.NewSource(client, e.opts.ArchiveURL)
	}

	e.source = provider.NewLoggingSource(e.name, e.source)

	return e
}

type exchanger struct {
	opts Options

	name   string
	source provider.Source
	now    func() time.Time
}

// GetReport fetches the last days up to now and formats them for the currencies in set
func (e *exchanger) GetReport(ctx context.Context, days int, set label.Set) (Report, error) {
	logger := logging.FromContext(ctx)

	list, err := e.FetchRange(ctx, e.now(), days)
	if err != nil {
		return nil, fmt.Errorf("fetch range: %w", err)
	}

	report, err := Assemble(list, set)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"days":       days,
		"currencies": set.Symbols(),
	}).Debug("report assembled")

	return report, nil
}

// FetchRange requests every day of the range concurrently. The result follows DayRange order
// regardless of the order responses arrive in. The first failed day cancels the others and
// fails the whole range
func (e *exchanger) FetchRange(ctx context.Context, today time.Time, days int) ([]provider.DayReport, error) {
	if days < 1 || days > MaxDays {
		return nil, fmt.Errorf("%w: %d", ErrDaysOutOfRange, days)
	}

	dates := DayRange(today, days)
	list := make([]provider.DayReport, len(dates))

	g, ctx := errgroup.WithContext(ctx)
	for i, day := range dates {
		i, day := i, day
		g.Go(func() error {
			report, err := e.fetchDay(ctx, day)
			if err != nil {
				return fmt.Errorf("day %s: %w", FormatDay(day), err)
			}

			list[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return list, nil
}

func (e *exchanger) fetchDay(ctx context.Context, day time.Time) (provider.DayReport, error) {
	if e.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.RequestTimeout)
		defer cancel()
	}

	return e.source.FetchDay(ctx, day)
}
