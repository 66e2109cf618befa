package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// stallProvider blocks until its context is done, like a backend that
// accepted the request and never answers.
type stallProvider struct{}

func (stallProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stallProvider) ModelID() string { return "stall" }

func TestTimeout_SlowAttemptBecomesUpstreamError(t *testing.T) {
	p := WithTimeout(stallProvider{}, 5*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("attempt deadline leaked to the caller as a context error")
	}
}

func TestTimeout_CallerCancelPassesThrough(t *testing.T) {
	p := WithTimeout(stallProvider{}, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTimeout_ZeroDisablesBound(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Content: json.RawMessage(`{}`)},
	)
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Fatal("zero timeout should return the provider unwrapped")
	}
}

func TestTimeout_EachRetryGetsFreshBudget(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &UpstreamError{Cause: errors.New("down")}},
		MockReply{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(WithTimeout(mock, time.Minute), retryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}
