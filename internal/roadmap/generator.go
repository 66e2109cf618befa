package roadmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/JOHN41-tech/assistant-L/internal/llm"
)

// ErrNoSteps indicates the generator produced a roadmap with zero steps.
var ErrNoSteps = errors.New("roadmap generation returned no steps")

// Generator produces roadmaps and step guides. Implemented by LLMGenerator;
// the interface exists so the service layer can be tested with fakes.
type Generator interface {
	GenerateRoadmap(ctx context.Context, topic, difficulty string) (*Roadmap, error)
	GenerateGuide(ctx context.Context, topic, difficulty string, step Step) (*Guide, error)
}

// Config bounds roadmap and guide generation.
type Config struct {
	RoadmapMaxTokens int
	GuideMaxTokens   int
	Temperature      float64
}

// DefaultConfig returns the default generation limits.
func DefaultConfig() Config {
	return Config{
		RoadmapMaxTokens: 2048,
		GuideMaxTokens:   4096,
		Temperature:      0.3,
	}
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, cfg: cfg}
}

type roadmapOutput struct {
	Steps []Step `json:"steps"`
}

// GenerateRoadmap produces an ordered roadmap for the topic. Fails if the
// provider errors or returns zero steps; no partial roadmap is returned.
// Step numbers are normalized to index+1 regardless of what the generator
// emitted, and blank-titled steps are dropped.
func (g *LLMGenerator) GenerateRoadmap(ctx context.Context, topic, difficulty string) (*Roadmap, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeRoadmap)

	req := llm.Request{
		System: roadmapSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRoadmapMessage(topic, difficulty)},
		},
		Schema:      RoadmapSchema,
		MaxTokens:   g.cfg.RoadmapMaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("roadmap generation: %w", err)
	}

	var out roadmapOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse roadmap response: %w", err)
	}

	steps := make([]Step, 0, len(out.Steps))
	for _, s := range out.Steps {
		if strings.TrimSpace(s.Title) == "" {
			continue
		}
		s.Number = len(steps) + 1
		steps = append(steps, s)
	}
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}

	return &Roadmap{Topic: topic, Steps: steps}, nil
}

// GenerateGuide produces elaborated study material for one step. The step's
// title and details are the generator's input; the returned content is
// opaque Markdown.
func (g *LLMGenerator) GenerateGuide(ctx context.Context, topic, difficulty string, step Step) (*Guide, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeGuide)

	req := llm.Request{
		System: guideSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGuideMessage(topic, difficulty, step)},
		},
		MaxTokens:   g.cfg.GuideMaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("guide generation: %w", err)
	}

	content := strings.TrimSpace(resp.Text())
	if content == "" {
		return nil, fmt.Errorf("guide generation: empty response")
	}

	return &Guide{StepTitle: step.Title, Content: content}, nil
}
