package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retrier re-sends failed generation calls. Roadmap, guide, quiz, and
// chat requests all sit on an interactive HTTP path, so the budget is
// small: a handful of attempts with capped backoff, never long enough to
// stall a page load into a gateway timeout.
type retrier struct {
	next Provider
	cfg  RetryConfig
}

// WithRetry wraps a Provider with the retry policy in cfg.
func WithRetry(next Provider, cfg RetryConfig) Provider {
	return &retrier{next: next, cfg: cfg}
}

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	// A malformed reply earns exactly one immediate re-ask: a fresh
	// sample often satisfies the schema, but two misses in a row mean
	// the prompt or schema is at fault.
	reasked := false

	var err error
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		var resp *Response
		resp, err = r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		delay, retry := r.delayFor(err, attempt, &reasked)
		if !retry || attempt == r.cfg.MaxAttempts-1 {
			break
		}
		if delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return nil, err
}

func (r *retrier) ModelID() string {
	return r.next.ModelID()
}

// delayFor decides whether err warrants another attempt and how long to
// wait first.
func (r *retrier) delayFor(err error, attempt int, reasked *bool) (time.Duration, bool) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return 0, false
	}

	var malformed *MalformedReplyError
	if errors.As(err, &malformed) {
		if *reasked {
			return 0, false
		}
		*reasked = true
		return 0, true
	}

	var transient interface{ Temporary() bool }
	if errors.As(err, &transient) && !transient.Temporary() {
		return 0, false
	}

	var throttled *ThrottledError
	if errors.As(err, &throttled) && throttled.RetryAfter > 0 {
		return throttled.RetryAfter, true
	}

	// Unknown errors (network resets and the like) get the standard
	// backoff.
	return r.backoff(attempt), true
}

// backoff grows the wait geometrically from InitialWait, capped at
// MaxWait, with 20% jitter either way so synchronized clients spread out.
func (r *retrier) backoff(attempt int) time.Duration {
	wait := float64(r.cfg.InitialWait)
	for i := 0; i < attempt; i++ {
		wait *= r.cfg.Multiplier
		if wait >= float64(r.cfg.MaxWait) {
			wait = float64(r.cfg.MaxWait)
			break
		}
	}

	wait *= 1 + 0.2*(2*rand.Float64()-1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
