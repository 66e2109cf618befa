package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// Purpose labels for the generation call sites. Each request carries one
// so log lines and usage counts can be sliced per feature.
const (
	PurposeRoadmap   = "roadmap"
	PurposeGuide     = "guide"
	PurposeQuiz      = "quiz"
	PurposeChat      = "chat"
	PurposeResources = "resources"
)

// WithPurpose attaches a purpose label to the context.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
