package provider

import (
	"context"
	"time"

	"github.com/crazytosser25/goit-web-hw-05/internal/logging"
	"github.com/sirupsen/logrus"
)

var _ Source = (*loggingSource)(nil)

// loggingSource decorates a Source with logging
type loggingSource struct {
	name string
	next Source
}

// NewLoggingSource wraps the source and logs every fetch with the logger from the request context
func NewLoggingSource(name string, next Source) Source {
	return &loggingSource{name: name, next: next}
}

func (s *loggingSource) FetchDay(ctx context.Context, day time.Time) (report DayReport, err error) {
	defer func(begin time.Time) {
		entry := logging.FromContext(ctx).WithFields(logrus.Fields{
			"source": s.name,
			"day":    day.Format("2006-01-02"),
			"rates":  len(report.ExchangeRate),
			"took":   time.Since(begin),
		})
		if err != nil {
			entry.WithError(err).Error("fetch day")
			return
		}
		entry.Debug("fetch day")
	}(time.Now())

	return s.next.FetchDay(ctx, day)
}
