package privat

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/crazytosser25/goit-web-hw-05/provider"
	"github.com/crazytosser25/goit-web-hw-05/provider/httputil"
)

const (
	hostname    = "api.privatbank.ua"
	archivePath = "/p24api/exchange_rates"
)

// DateLayout is the day format used by the archive API, DD.MM.YYYY
const DateLayout = "02.01.2006"

// DefaultArchiveURL is the archive endpoint of the PrivatBank public API
var DefaultArchiveURL = url.URL{Scheme: "https", Host: hostname, Path: archivePath}

var _ provider.Source = (*source)(nil)

type fetcher struct {
	u url.URL
	httputil.SourceHTTPClient
}

// NewSource returns a source of PrivatBank archive rates. A zero archive URL means DefaultArchiveURL
func NewSource(client httputil.SourceHTTPClient, archive url.URL) *source {
	if archive.Host == "" {
		archive = DefaultArchiveURL
	}

	return &source{
		client: fetcher{
			u:                archive,
			SourceHTTPClient: client,
		},
	}
}

type source struct {
	client fetcher
}

// FetchDay requests the archive rates of a single day
func (s *source) FetchDay(ctx context.Context, day time.Time) (provider.DayReport, error) {
	b, err := s.client.Get(ctx, s.dayURL(day))
	if err != nil {
		return provider.DayReport{}, fmt.Errorf("fetching %s: %w", day.Format(DateLayout), err)
	}

	report, err := decodeJSON(b)
	if err != nil {
		return provider.DayReport{}, fmt.Errorf("decode %s: %w", day.Format(DateLayout), err)
	}

	return report, nil
}

// dayURL builds ...?json&date=DD.MM.YYYY. The API expects a bare json key, so the query is not
// built with url.Values
func (s *source) dayURL(day time.Time) url.URL {
	u := s.client.u
	u.RawQuery = "json&date=" + url.QueryEscape(day.Format(DateLayout))

	return u
}
