package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/qawave/qawave/pkg/ai"
)

// AIScriptEntry defines a single scripted completion.
type AIScriptEntry struct {
	// Response content (exactly one of Text or Error should be set)
	Text  string // raw completion content, usually a scenario JSON array
	Error error  // return this error from Complete()

	// Blocking knobs for cancellation and timing tests.
	BlockUntilCancelled bool            // block Complete() until ctx is cancelled, then return ctx.Err()
	WaitCh              <-chan struct{} // block Complete() until closed, then return the normal response
	OnBlock             chan<- struct{} // notified when Complete() enters its blocking path
}

// ScriptedAIClient implements ai.Client with a triple-dispatch mock:
// narrative calls consume their own queue, generation calls try
// operation-aware routing first (the AI stage fans out per operation, so
// call order is non-deterministic), and everything else falls back to a
// sequential queue.
type ScriptedAIClient struct {
	mu         sync.Mutex
	sequential []AIScriptEntry // consumed in order for unrouted generation calls
	seqIndex   int
	routes     map[string][]AIScriptEntry // "METHOD /path" → per-operation script
	routeIndex map[string]int
	narrative  []AIScriptEntry // consumed by summary narrative calls
	narrIndex  int
	captured   []ai.CompletionRequest
}

// NewScriptedAIClient creates a new ScriptedAIClient.
func NewScriptedAIClient() *ScriptedAIClient {
	return &ScriptedAIClient{
		routes:     make(map[string][]AIScriptEntry),
		routeIndex: make(map[string]int),
	}
}

// AddSequential adds an entry consumed in order for unrouted calls.
// Sufficient for single-operation specs, where generation and correction
// calls arrive strictly in order.
func (c *ScriptedAIClient) AddSequential(entry AIScriptEntry) {
	c.sequential = append(c.sequential, entry)
}

// AddOperation adds an entry for one spec operation, keyed "METHOD /path".
// The entry is matched against the focused operation list in the user
// prompt. Needed when a spec has several operations: their generation
// calls run in parallel.
func (c *ScriptedAIClient) AddOperation(opKey string, entry AIScriptEntry) {
	c.routes[opKey] = append(c.routes[opKey], entry)
}

// AddNarrative adds an entry consumed by QA summary narrative calls.
// Without one, narrative calls fail and the report falls back to its
// deterministic template.
func (c *ScriptedAIClient) AddNarrative(entry AIScriptEntry) {
	c.narrative = append(c.narrative, entry)
}

// Complete implements ai.Client.
func (c *ScriptedAIClient) Complete(ctx context.Context, req ai.CompletionRequest) (*ai.Completion, error) {
	c.mu.Lock()
	c.captured = append(c.captured, req)
	entry, err := c.nextEntry(req)
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}

	if entry.BlockUntilCancelled {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}

	if entry.WaitCh != nil {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		select {
		case <-entry.WaitCh:
			// Released; fall through to the normal response.
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if entry.Error != nil {
		return nil, entry.Error
	}

	return &ai.Completion{
		Content:      entry.Text,
		Model:        "scripted-model",
		InputTokens:  10,
		OutputTokens: 5,
	}, nil
}

// CallCount returns the total number of Complete() calls made.
func (c *ScriptedAIClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.captured)
}

// GenerationCalls returns the captured requests that were scenario
// generation or correction calls (everything except narratives).
func (c *ScriptedAIClient) GenerationCalls() []ai.CompletionRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []ai.CompletionRequest
	for _, req := range c.captured {
		if !isNarrativeRequest(req) {
			out = append(out, req)
		}
	}
	return out
}

// NarrativeCalls returns the captured summary narrative requests.
func (c *ScriptedAIClient) NarrativeCalls() []ai.CompletionRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []ai.CompletionRequest
	for _, req := range c.captured {
		if isNarrativeRequest(req) {
			out = append(out, req)
		}
	}
	return out
}

// nextEntry selects the next script entry. Must be called with c.mu held.
func (c *ScriptedAIClient) nextEntry(req ai.CompletionRequest) (*AIScriptEntry, error) {
	// Narrative calls have their own queue so a scripted summary never
	// steals a generation entry (and vice versa).
	if isNarrativeRequest(req) {
		if c.narrIndex < len(c.narrative) {
			entry := &c.narrative[c.narrIndex]
			c.narrIndex++
			return entry, nil
		}
		return nil, fmt.Errorf("ScriptedAIClient: no narrative entry scripted")
	}

	// Operation-aware routing: the generation user prompt lists the
	// focused operations one per line, "- METHOD /path".
	for opKey, entries := range c.routes {
		if !mentionsOperation(req.User, opKey) {
			continue
		}
		idx := c.routeIndex[opKey]
		if idx < len(entries) {
			c.routeIndex[opKey] = idx + 1
			return &entries[idx], nil
		}
	}

	// Sequential fallback; correction calls land here too when no route
	// matched (they carry the previous response, not the operation list).
	if c.seqIndex < len(c.sequential) {
		entry := &c.sequential[c.seqIndex]
		c.seqIndex++
		return entry, nil
	}

	return nil, fmt.Errorf("ScriptedAIClient: no more entries (sequential=%d/%d, routes=%d)",
		c.seqIndex, len(c.sequential), len(c.routes))
}

// isNarrativeRequest distinguishes the QA summary call from generation
// calls by its system prompt.
func isNarrativeRequest(req ai.CompletionRequest) bool {
	return strings.HasPrefix(req.System, "You are an expert QA lead")
}

// mentionsOperation reports whether the user prompt's operation list names
// the given "METHOD /path" key. Exact-line matching so "GET /users" does
// not also match "GET /users/{id}".
func mentionsOperation(user, opKey string) bool {
	marker := "- " + opKey
	idx := strings.Index(user, marker)
	if idx < 0 {
		return false
	}
	rest := user[idx+len(marker):]
	return rest == "" || rest[0] == '\n' || strings.HasPrefix(rest, " (") || rest[0] == ':'
}
