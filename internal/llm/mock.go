package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockReply is one scripted outcome for the MockProvider: either Content
// (with optional Usage) or Err.
type MockReply struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted replies in order and records every
// request it sees, so tests can assert on the prompts the generators
// build. Safe for concurrent use.
type MockProvider struct {
	mu      sync.Mutex
	queue   []MockReply
	history []Request
}

// NewMockProvider creates a MockProvider preloaded with replies.
func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{queue: replies}
}

// Enqueue appends a reply to the script.
func (m *MockProvider) Enqueue(r MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, r)
}

// Generate pops the next scripted reply. Running past the script yields
// an UpstreamError, which surfaces as a plain test failure rather than a
// hang or a nil dereference.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = append(m.history, req)

	if len(m.queue) == 0 {
		return nil, &UpstreamError{Cause: errors.New("mock reply script exhausted")}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: StopEnd,
	}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// Requests returns a snapshot of every request made so far.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.history))
	copy(out, m.history)
	return out
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.history)
}
