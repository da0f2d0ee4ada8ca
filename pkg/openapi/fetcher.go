package openapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/version"
)

const (
	defaultCacheTTL  = 1 * time.Minute
	defaultFetchMax  = 8 << 20 // 8 MiB document ceiling
	fetchHTTPTimeout = 30 * time.Second
)

// Fetcher resolves a run's spec source to a parsed document. URL fetches
// are cached with a TTL so concurrent runs against the same spec do not
// refetch; inline sources are parsed every time.
type Fetcher struct {
	httpClient *http.Client
	cache      *documentCache
	maxBytes   int64
}

// FetcherOption customizes a Fetcher.
type FetcherOption func(*Fetcher)

// WithCacheTTL overrides the document cache TTL.
func WithCacheTTL(ttl time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.cache = newDocumentCache(ttl)
	}
}

// WithHTTPClient overrides the HTTP client, for tests.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.httpClient = client
	}
}

// NewFetcher creates a fetcher with a default cache and HTTP client.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: fetchHTTPTimeout},
		cache:      newDocumentCache(defaultCacheTTL),
		maxBytes:   defaultFetchMax,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch resolves the spec source of a run request. Transport failures wrap
// ErrSpecFetch; parse and validation failures wrap ErrSpecInvalid.
func (f *Fetcher) Fetch(ctx context.Context, source models.SpecSourceKind, specURL, specInline string) (*Document, error) {
	switch source {
	case models.SpecSourceInline:
		if specInline == "" {
			return nil, fmt.Errorf("%w: inline spec is empty", ErrSpecInvalid)
		}
		return Parse(ctx, []byte(specInline))
	case models.SpecSourceURL:
		return f.fetchWithCache(ctx, specURL)
	default:
		return nil, fmt.Errorf("%w: unknown spec source %q", ErrSpecInvalid, source)
	}
}

func (f *Fetcher) fetchWithCache(ctx context.Context, rawURL string) (*Document, error) {
	if err := validateSpecURL(rawURL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpecFetch, err)
	}

	if doc, ok := f.cache.Get(rawURL); ok {
		return doc, nil
	}

	data, err := f.download(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSpecFetch, rawURL, err)
	}

	doc, err := Parse(ctx, data)
	if err != nil {
		return nil, err
	}

	f.cache.Set(rawURL, doc)
	return doc, nil
}

func (f *Fetcher) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/yaml, text/yaml")
	req.Header.Set("User-Agent", version.Full())

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("document exceeds %d byte limit", f.maxBytes)
	}
	return data, nil
}

// validateSpecURL checks that the URL uses an http(s) scheme and names a
// host.
func validateSpecURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q: must be http or https", parsed.Scheme)
	}
	if parsed.Hostname() == "" {
		return fmt.Errorf("URL %q has no host", rawURL)
	}
	return nil
}
