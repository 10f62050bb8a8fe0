package httputil

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/crazytosser25/goit-web-hw-05/internal/logging"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"
)

const DefaultUserAgent = "goit-rates/0.1.0"

var ErrStatusCode = errors.New("http status != 200")

// DefaultSourceHTTPClient return preconfigured HTTP client. The client has no overall
// timeout, requests are bounded by their context only
func DefaultSourceHTTPClient() SourceHTTPClient {
	return SourceHTTPClient{
		userAgent: DefaultUserAgent,
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				DisableCompression:    true,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

// NewHTTPClient return prepared SourceHTTPClient
func NewHTTPClient(client *http.Client) SourceHTTPClient {
	return SourceHTTPClient{client: client, userAgent: DefaultUserAgent}
}

type SourceHTTPClient struct {
	client    *http.Client
	userAgent string
}

// WithUserAgent returns a copy of the client sending the given User-Agent
func (f SourceHTTPClient) WithUserAgent(ua string) SourceHTTPClient {
	if ua != "" {
		f.userAgent = ua
	}

	return f
}

func (f SourceHTTPClient) UserAgent() string {
	return f.userAgent
}

// Get implements HTTP method GET client and returns the body decoded to UTF-8
func (f SourceHTTPClient) Get(ctx context.Context, u url.URL) ([]byte, error) {
	return f.fetch(ctx, u)
}

func (f SourceHTTPClient) fetch(ctx context.Context, u url.URL) ([]byte, error) {
	req, err := f.prepareRequest(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("build HTTP request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("make HTTP request: %w", err)
	}

	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	contentEncoding := resp.Header.Get("Content-Encoding")

	logging.FromContext(ctx).WithFields(logrus.Fields{
		"url":          u.String(),
		"status":       resp.StatusCode,
		"content_type": contentType,
		"cookies":      resp.Cookies(),
	}).Debug("response received")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http status: %d, %s: %w", resp.StatusCode, resp.Status, ErrStatusCode)
	}

	var reader io.Reader = resp.Body
	switch {
	case strings.Contains(contentType, "application/x-gzip"), strings.Contains(contentEncoding, "gzip"):
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("unable create gzip.NewReader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	if strings.Contains(contentType, "charset=") {
		reader, err = charset.NewReader(reader, contentType)
		if err != nil {
			return nil, fmt.Errorf("charset.NewReader: %w", err)
		}
	}

	b, err := io.ReadAll(reader)
	if err != nil {
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("read body: %w", err)
		}
	}

	return b, nil
}

func (f SourceHTTPClient) prepareRequest(ctx context.Context, u url.URL) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")

	return req, nil
}
