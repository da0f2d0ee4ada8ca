package openapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
)

func TestFetcherInlineSource(t *testing.T) {
	f := NewFetcher()
	doc, err := f.Fetch(context.Background(), models.SpecSourceInline, "", userServiceSpec)
	require.NoError(t, err)
	assert.Len(t, doc.Operations, 6)

	_, err = f.Fetch(context.Background(), models.SpecSourceInline, "", "")
	require.ErrorIs(t, err, ErrSpecInvalid)
}

func TestFetcherURLSourceCaches(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(userServiceSpec))
	}))
	defer server.Close()

	f := NewFetcher(WithCacheTTL(time.Minute))

	doc, err := f.Fetch(context.Background(), models.SpecSourceURL, server.URL+"/openapi.json", "")
	require.NoError(t, err)
	assert.Len(t, doc.Operations, 6)

	again, err := f.Fetch(context.Background(), models.SpecSourceURL, server.URL+"/openapi.json", "")
	require.NoError(t, err)
	assert.Same(t, doc, again, "second fetch should come from cache")
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetcherURLSourceExpiredCacheRefetches(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Write([]byte(userServiceSpec))
	}))
	defer server.Close()

	f := NewFetcher(WithCacheTTL(time.Nanosecond))

	_, err := f.Fetch(context.Background(), models.SpecSourceURL, server.URL, "")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = f.Fetch(context.Background(), models.SpecSourceURL, server.URL, "")
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestFetcherURLSourceFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := NewFetcher()

	_, err := f.Fetch(context.Background(), models.SpecSourceURL, server.URL, "")
	require.ErrorIs(t, err, ErrSpecFetch)

	_, err = f.Fetch(context.Background(), models.SpecSourceURL, "ftp://example.com/spec.json", "")
	require.ErrorIs(t, err, ErrSpecFetch)

	_, err = f.Fetch(context.Background(), models.SpecSourceURL, "http://127.0.0.1:1/unreachable", "")
	require.ErrorIs(t, err, ErrSpecFetch)
}

func TestFetcherURLSourceInvalidDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not an openapi document"))
	}))
	defer server.Close()

	f := NewFetcher()
	_, err := f.Fetch(context.Background(), models.SpecSourceURL, server.URL, "")
	require.ErrorIs(t, err, ErrSpecInvalid)
}

func TestFetcherURLSourceSlowServerTimesOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(userServiceSpec))
	}))
	defer server.Close()

	f := NewFetcher(WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))
	_, err := f.Fetch(context.Background(), models.SpecSourceURL, server.URL, "")
	require.ErrorIs(t, err, ErrSpecFetch)
}
