package llm

import (
	"context"
	"fmt"
	"time"
)

// deadlineProvider bounds each upstream call. It sits inside the retry
// wrapper so every attempt gets a fresh budget rather than the retries
// sharing one.
type deadlineProvider struct {
	next Provider
	d    time.Duration
}

// WithTimeout wraps a Provider so each Generate call is cut off after d.
// A zero d disables the bound.
func WithTimeout(next Provider, d time.Duration) Provider {
	if d <= 0 {
		return next
	}
	return &deadlineProvider{next: next, d: d}
}

func (p *deadlineProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, p.d)
	defer cancel()

	resp, err := p.next.Generate(attemptCtx, req)
	if err != nil && ctx.Err() == nil && attemptCtx.Err() != nil {
		// Only this attempt expired, not the caller: report it as a
		// backend failure so the retry policy treats it as transient.
		return nil, &UpstreamError{Cause: fmt.Errorf("no reply within %s", p.d)}
	}
	return resp, err
}

func (p *deadlineProvider) ModelID() string {
	return p.next.ModelID()
}
