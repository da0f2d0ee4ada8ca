package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultCompletionsPath = "/v1/chat/completions"
	defaultRequestTimeout  = 5 * time.Minute
	maxResponseBytes       = 8 << 20
)

// HTTPClientConfig configures the OpenAI-compatible client. BaseURL points
// at the provider root; Path defaults to the chat completions endpoint.
type HTTPClientConfig struct {
	BaseURL        string            `yaml:"base_url"`
	APIKey         string            `yaml:"api_key"`
	Model          string            `yaml:"model"`
	Path           string            `yaml:"path,omitempty"`
	Temperature    float64           `yaml:"temperature,omitempty"`
	MaxTokens      int               `yaml:"max_tokens,omitempty"`
	RequestTimeout time.Duration     `yaml:"request_timeout,omitempty"`
	ExtraHeaders   map[string]string `yaml:"extra_headers,omitempty"`
}

// HTTPClient talks to any provider that speaks the OpenAI chat completions
// wire format.
type HTTPClient struct {
	cfg    HTTPClientConfig
	client *http.Client
}

// NewHTTPClient builds a client from config, normalizing the base URL and
// filling defaults.
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if strings.TrimSpace(cfg.Path) == "" {
		cfg.Path = defaultCompletionsPath
	}
	return &HTTPClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 0},
	}
}

// OverrideHTTPClientForTest swaps the transport, letting tests inject
// failing round-trippers.
func (c *HTTPClient) OverrideHTTPClientForTest(client *http.Client) {
	c.client = client
}

func (c *HTTPClient) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	requestCtx, cancel := c.requestDeadline(ctx)
	defer cancel()

	model := req.Model
	if model == "" {
		model = c.cfg.Model
	}
	body := map[string]any{
		"model":    model,
		"messages": toMessages(req),
	}
	if temp := pick(req.Temperature, c.cfg.Temperature); temp > 0 {
		body["temperature"] = temp
	}
	if maxTokens := pickInt(req.MaxTokens, c.cfg.MaxTokens); maxTokens > 0 {
		body["max_tokens"] = maxTokens
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %v", ErrProvider, err)
	}

	httpReq, err := http.NewRequestWithContext(requestCtx, http.MethodPost, c.cfg.BaseURL+c.cfg.Path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range c.cfg.ExtraHeaders {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		// The per-request deadline expiring is a retryable provider
		// timeout; the caller's own context running out is not.
		if errors.Is(requestCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, &ProviderError{Timeout: true, Message: err.Error()}
		}
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	return parseCompletionsResponse(resp)
}

func toMessages(req CompletionRequest) []map[string]any {
	var msgs []map[string]any
	if strings.TrimSpace(req.System) != "" {
		msgs = append(msgs, map[string]any{"role": "system", "content": req.System})
	}
	msgs = append(msgs, map[string]any{"role": "user", "content": req.User})
	return msgs
}

func parseCompletionsResponse(resp *http.Response) (*Completion, error) {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrProvider, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: providerErrorMessage(raw)}
	}

	var parsed struct {
		Model   string `json:"model"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrProvider, err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("%w: response has no choices", ErrProvider)
	}
	return &Completion{
		Content:      parsed.Choices[0].Message.Content,
		Model:        parsed.Model,
		InputTokens:  parsed.Usage.PromptTokens,
		OutputTokens: parsed.Usage.CompletionTokens,
	}, nil
}

// providerErrorMessage extracts the error message from an OpenAI-style
// error body, falling back to the raw text.
func providerErrorMessage(raw []byte) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Message != "" {
		return body.Error.Message
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 512 {
		msg = msg[:512]
	}
	return msg
}

func pick(a, b float64) float64 {
	if a != 0 {
		return a
	}
	return b
}

func pickInt(a, b int) int {
	if a != 0 {
		return a
	}
	return b
}

// requestDeadline caps a single provider call. A caller-supplied deadline
// wins; otherwise the configured request timeout (or the built-in default)
// applies.
func (c *HTTPClient) requestDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := c.cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	if ctx == nil {
		return context.WithTimeout(context.Background(), timeout)
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
