package llm

import "fmt"

const defaultPerplexityBaseURL = "https://api.perplexity.ai"

// PerplexityProvider wraps OpenAIProvider with Perplexity-specific defaults.
// Perplexity exposes an OpenAI-compatible API, so the underlying SDK is
// reused. Its online "sonar" models make it the preferred provider for
// resource discovery.
type PerplexityProvider struct {
	*OpenAIProvider
}

// NewPerplexityProvider creates a provider targeting the Perplexity API.
func NewPerplexityProvider(cfg PerplexityConfig) (*PerplexityProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("perplexity API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultPerplexityBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "sonar"
	}

	inner, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   model,
		BaseURL: baseURL,
	})
	if err != nil {
		return nil, err
	}

	return &PerplexityProvider{OpenAIProvider: inner}, nil
}
