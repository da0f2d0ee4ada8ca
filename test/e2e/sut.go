package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest is one request the system-under-test stub received.
type RecordedRequest struct {
	Method string
	Path   string
	Body   string
	Header http.Header
}

// SUTServer is a loopback stub of the system under test. Tests register
// method+path handlers and assert on the recorded request log. Runs
// targeting it must set AllowInternal in their config, since the executor's
// target guard rejects loopback addresses by default.
type SUTServer struct {
	Server *httptest.Server
	mux    *http.ServeMux

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewSUTServer starts the stub and registers Close via t.Cleanup.
func NewSUTServer(t *testing.T) *SUTServer {
	t.Helper()
	s := &SUTServer{mux: http.NewServeMux()}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Body:   string(body),
			Header: r.Header.Clone(),
		})
		s.mu.Unlock()
		s.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(s.Server.Close)
	return s
}

// BaseURL returns the stub's http://127.0.0.1:PORT address.
func (s *SUTServer) BaseURL() string {
	return s.Server.URL
}

// Handle registers a handler for a "METHOD /path" pattern. Path wildcards
// follow net/http ServeMux rules, e.g. "GET /users/{id}".
func (s *SUTServer) Handle(pattern string, handler http.HandlerFunc) {
	s.mux.HandleFunc(pattern, handler)
}

// HandleJSON registers a handler that always answers with the given status
// and JSON body.
func (s *SUTServer) HandleJSON(pattern string, status int, body any) {
	s.Handle(pattern, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, body)
	})
}

// Requests returns a snapshot of the recorded request log.
func (s *SUTServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// CountRequests returns how many recorded requests match method and path.
func (s *SUTServer) CountRequests(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// WriteJSON encodes v with the given status. Shared by test handlers.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
