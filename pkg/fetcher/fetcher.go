// Package fetcher performs single HTTP GET requests with a stable client
// identity and a fixed timeout. It does not retry: a failed fetch is terminal
// for that page and surfaces as a *FetchError.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dtnitsch/web-scraper/models"
)

const (
	DefaultTimeout = 10 * time.Second

	// MaxBodySize caps how much of a response body is read.
	MaxBodySize = int64(10 * 1024 * 1024) // 10MB
)

// RawPage is the raw result of a successful fetch.
type RawPage struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// FetchError carries the URL and cause of a failed fetch. StatusCode is zero
// when the request never produced a response.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %s: %s", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s: status code %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err is (or wraps) a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

type Fetcher struct {
	client    *http.Client
	userAgent string
}

// New creates a Fetcher with the given per-request timeout and User-Agent.
// Zero values fall back to the defaults.
func New(timeout time.Duration, userAgent string) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = models.DefaultUserAgent
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch performs one GET request. Redirects are followed; the final status
// decides success, where anything in 200..399 counts. All failure modes
// (network error, timeout, non-success status, unreadable body) return a
// *FetchError carrying the URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*RawPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return nil, &FetchError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, &FetchError{URL: rawURL, StatusCode: resp.StatusCode, Err: err}
	}

	return &RawPage{
		URL:        rawURL,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
