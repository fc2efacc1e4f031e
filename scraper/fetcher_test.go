package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vipinsoniofficial/AI-ad-Generator/pipeline"
)

func TestFetcher_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	fetcher := NewFetcher(zap.NewNop())
	html, err := fetcher.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, html, "ok")
}

func TestFetcher_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	fetcher := NewFetcher(zap.NewNop())
	_, err := fetcher.Fetch(context.Background(), srv.URL+"/gone")
	require.Error(t, err)

	var fetchErr *pipeline.FetchError
	assert.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, err.Error(), "404")
}

func TestFetcher_UnsupportedScheme(t *testing.T) {
	fetcher := NewFetcher(zap.NewNop())
	_, err := fetcher.Fetch(context.Background(), "ftp://example.com/product")
	require.Error(t, err)

	var fetchErr *pipeline.FetchError
	assert.True(t, errors.As(err, &fetchErr))
}

func TestFetcher_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before the request

	fetcher := NewFetcher(zap.NewNop())
	_, err := fetcher.Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var fetchErr *pipeline.FetchError
	assert.True(t, errors.As(err, &fetchErr))
}
