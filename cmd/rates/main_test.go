package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, srvURL string) string {
	t.Helper()

	host := strings.TrimPrefix(srvURL, "http://")
	body := fmt.Sprintf("[api]\nscheme = http\nhost = %s\npath = /p24api/exchange_rates\n\n[logger]\nlevel = debug\n", host)

	path := filepath.Join(t.TempDir(), "rates.ini")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))

	return path
}

func newTestServer(status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		date := strings.TrimPrefix(r.URL.RawQuery, "json&date=")
		w.Header().Set("Content-Type", "application/json;charset=UTF-8")
		_, _ = fmt.Fprintf(w, `{"date":%q,"bank":"PB","baseCurrency":980,"baseCurrencyLit":"UAH","exchangeRate":[`+
			`{"baseCurrency":"UAH","currency":"USD","saleRate":27.0,"purchaseRate":26.5},`+
			`{"baseCurrency":"UAH","currency":"CHF","saleRateNB":45.123,"purchaseRateNB":45.121}]}`, date)
	}))
}

func TestRealMain(t *testing.T) {
	t.Parallel()

	srv := newTestServer(http.StatusOK)
	defer srv.Close()

	var stdout, stderr bytes.Buffer
	code := realMain(context.Background(), testConfig(t, srv.URL), []string{"chf", "3"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	out := stdout.String()
	require.True(t, strings.HasPrefix(out, banner+"\n"), out)

	var report []map[string]map[string]map[string]float64
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(out, banner+"\n")), &report))
	require.Len(t, report, 3)

	for _, day := range report {
		require.Len(t, day, 1)
		for _, quotes := range day {
			assert.Equal(t, map[string]float64{"sale": 27, "purchase": 26.5}, quotes["USD"])
			assert.Equal(t, map[string]float64{"sale": 45.12, "purchase": 45.12}, quotes["CHF"])
			assert.NotContains(t, quotes, "EUR")
		}
	}

	assert.Contains(t, stderr.String(), "[run:")
}

func TestRealMain_Usage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		argv []string
		want string
	}{
		{name: "test_usage_too_many_days", argv: []string{"11"}, want: "between 1 and 10"},
		{name: "test_usage_two_numbers", argv: []string{"5", "7"}, want: "only one day count"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			code := realMain(context.Background(), filepath.Join(t.TempDir(), "absent.ini"), tc.argv, &stdout, &stderr)

			assert.Equal(t, exitUsage, code)
			assert.Contains(t, stdout.String(), tc.want)
			assert.NotContains(t, stdout.String(), banner)
		})
	}
}

func TestRealMain_UpstreamFailure(t *testing.T) {
	t.Parallel()

	srv := newTestServer(http.StatusInternalServerError)
	defer srv.Close()

	var stdout, stderr bytes.Buffer
	code := realMain(context.Background(), testConfig(t, srv.URL), []string{"2"}, &stdout, &stderr)

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stdout.String(), "unable to get exchange rates")
	assert.NotContains(t, stdout.String(), banner)
}
