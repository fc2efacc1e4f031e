// Package scraper retrieves product pages and extracts product metadata
// using per-storefront heuristics.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/vipinsoniofficial/AI-ad-Generator/pipeline"
)

const (
	fetchTimeout = 15 * time.Second

	// Storefronts serve bot-unfriendly pages to default Go clients.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

	maxPageBytes = 10 << 20
)

// Fetcher retrieves raw HTML for a product page URL.
type Fetcher struct {
	client *http.Client
	logger *zap.Logger
}

// NewFetcher creates a Fetcher with a browser-like request profile.
func NewFetcher(logger *zap.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: fetchTimeout},
		logger: logger,
	}
}

// Fetch downloads the page at rawURL and returns its HTML.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", &pipeline.FetchError{Err: fmt.Errorf("invalid URL %q: %w", rawURL, err)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &pipeline.FetchError{Err: fmt.Errorf("unsupported URL scheme %q", u.Scheme)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &pipeline.FetchError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	f.logger.Info("fetching product page", zap.String("url", rawURL))

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &pipeline.FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &pipeline.FetchError{Err: fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", &pipeline.FetchError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if len(body) == 0 {
		return "", &pipeline.FetchError{Err: fmt.Errorf("empty response body from %s", rawURL)}
	}

	return string(body), nil
}
