// Package importer provides the external collaborators of the import path:
// an HTTP page fetcher and a Gemini-backed extractor that distills a page
// into draft document content.
package importer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"docstore/internal/domain/services"
)

// DefaultFetchTimeout is the default timeout for page fetches.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements services.PageFetcher at compile time.
var _ services.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript, so script-rendered pages yield whatever
// the server ships in the initial response.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
