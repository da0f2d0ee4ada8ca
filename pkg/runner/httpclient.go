package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/version"
)

// HTTPRequest is one outbound call to the system under test, fully resolved.
type HTTPRequest struct {
	Method  models.HTTPMethod
	URL     string
	Headers map[string]string
	Body    []byte
}

// HTTPResponse is the observed reply. Body is fully read; multi-valued
// headers are comma-joined.
type HTTPResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// Doer sends a single request and returns the observed response. Timeouts
// and cancellation arrive through ctx.
type Doer interface {
	Do(ctx context.Context, req *HTTPRequest) (*HTTPResponse, error)
}

// SUTClient is the production Doer backed by net/http. Redirects are
// followed by the underlying client; TLS and proxy behavior come from the
// default transport.
type SUTClient struct {
	httpClient *http.Client
}

// NewSUTClient returns a client for step dispatch. Per-step timeouts are
// applied by the caller through context deadlines, so the underlying client
// carries no global timeout.
func NewSUTClient() *SUTClient {
	return &SUTClient{
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (c *SUTClient) Do(ctx context.Context, req *HTTPRequest) (*HTTPResponse, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), req.URL, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("User-Agent", version.Full())
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if len(req.Body) > 0 && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	headers := make(map[string]string, len(resp.Header))
	for k, vs := range resp.Header {
		headers[k] = strings.Join(vs, ", ")
	}
	return &HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       respBody,
	}, nil
}

// ClassifyTransportError maps a failed dispatch to an error kind. Deadline
// expiry is a timeout, caller cancellation is cancelled, everything else is
// a network failure.
func ClassifyTransportError(err error) models.ErrorKind {
	if errors.Is(err, context.Canceled) {
		return models.ErrKindCancelled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return models.ErrKindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return models.ErrKindTimeout
	}
	return models.ErrKindNetwork
}

// RetryableTransport reports whether a transport failure of the given kind
// may be retried.
func RetryableTransport(kind models.ErrorKind) bool {
	return kind == models.ErrKindTimeout || kind == models.ErrKindNetwork
}
