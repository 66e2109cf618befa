package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/JOHN41-tech/assistant-L/internal/llm"
)

// Config bounds chat generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the default chat generation limits.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Tutor answers the learner's questions through the text generator,
// conditioned on the session's persona and current step.
type Tutor struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Tutor backed by the given provider.
func New(provider llm.Provider, cfg Config) *Tutor {
	return &Tutor{provider: provider, cfg: cfg}
}

// Reply produces the assistant's answer to the user's message.
func (t *Tutor) Reply(ctx context.Context, in ChatInput) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeChat)

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildChatPrompt(in)},
		},
		MaxTokens:   t.cfg.MaxTokens,
		Temperature: t.cfg.Temperature,
	}

	resp, err := t.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat generation: %w", err)
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return "", fmt.Errorf("chat generation: empty response")
	}
	return reply, nil
}
