package llm

import (
	"context"
	"fmt"

	"github.com/JOHN41-tech/assistant-L/internal/logger"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, log *logger.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "perplexity":
		base, err = NewPerplexityProvider(cfg.Perplexity)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order is caller, retry, per-attempt deadline, logging,
	// base: the deadline sits inside retry so every attempt gets a fresh
	// time budget.
	logged := WithLogging(base, log)
	bounded := WithTimeout(logged, cfg.Timeout)
	retried := WithRetry(bounded, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a Provider from ASSISTANT_* env vars, falling
// back to discovery of standard provider API key vars.
func NewProviderFromEnv(ctx context.Context, log *logger.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, log)
}
