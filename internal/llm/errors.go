package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Generation failures fall into four kinds, each its own type so callers
// can distinguish throttling from outages from unusable output. Types
// whose failures may clear on their own implement Temporary; the retry
// middleware consults it.

// ThrottledError means the backend rejected the request for rate reasons.
// RetryAfter carries the backend's suggested wait when it sent one.
type ThrottledError struct {
	RetryAfter time.Duration
	Cause      error
}

func (e *ThrottledError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("generation throttled, retry after %s: %v", e.RetryAfter, e.Cause)
	}
	return fmt.Sprintf("generation throttled: %v", e.Cause)
}

func (e *ThrottledError) Unwrap() error   { return e.Cause }
func (e *ThrottledError) Temporary() bool { return true }

// UpstreamError means the generation backend failed or was unreachable.
type UpstreamError struct {
	Cause error
}

func (e *UpstreamError) Error() string {
	if e.Cause == nil {
		return "generation backend unavailable"
	}
	return fmt.Sprintf("generation backend unavailable: %v", e.Cause)
}

func (e *UpstreamError) Unwrap() error   { return e.Cause }
func (e *UpstreamError) Temporary() bool { return true }

// MalformedReplyError means the model produced output that is not the
// requested shape: not JSON, or JSON violating the request's schema.
// Raw holds the offending output for logging.
type MalformedReplyError struct {
	Raw   json.RawMessage
	Cause error
}

func (e *MalformedReplyError) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Cause)
}

func (e *MalformedReplyError) Unwrap() error { return e.Cause }

// TruncatedReplyError means a structured reply was cut off by the
// request's token budget. The budget is a caller decision, so retrying
// the same request cannot help.
type TruncatedReplyError struct {
	Raw json.RawMessage
}

func (e *TruncatedReplyError) Error() string {
	return "model output truncated by token budget"
}

func (e *TruncatedReplyError) Temporary() bool { return false }

// IsGenerationError reports whether err originated in the generation
// backend or its output, as opposed to this service's own validation.
func IsGenerationError(err error) bool {
	var (
		throttled *ThrottledError
		upstream  *UpstreamError
		malformed *MalformedReplyError
		truncated *TruncatedReplyError
	)
	return errors.As(err, &throttled) ||
		errors.As(err, &upstream) ||
		errors.As(err, &malformed) ||
		errors.As(err, &truncated)
}
