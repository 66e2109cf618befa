// Package resources suggests external learning material for a roadmap step.
// Unlike the other generators, this path never fails: resource suggestions
// are non-essential, so any generation or parse failure degrades to a
// single deterministic search link.
package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/JOHN41-tech/assistant-L/internal/llm"
	"github.com/JOHN41-tech/assistant-L/internal/logger"
)

// Resource is one suggested piece of learning material.
type Resource struct {
	Title string `json:"title"`
	Type  string `json:"type"` // "Article", "Video", or "Course"
	URL   string `json:"url"`
}

// Config bounds resource generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the default resource generation limits.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.2,
	}
}

// Finder discovers learning resources through the text generator.
type Finder struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger
}

// NewFinder creates a Finder.
func NewFinder(provider llm.Provider, cfg Config, log *logger.Logger) *Finder {
	return &Finder{provider: provider, cfg: cfg, log: log.With("component", "resources")}
}

// BuildPrompt renders the resource-discovery instruction for a step.
// The generator is asked for exactly three entries and nothing else.
func BuildPrompt(topic, stepTitle string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Find 3 highly relevant learning resources (articles, videos, or courses) for someone learning about %q in the context of %q.\n", stepTitle, topic)
	b.WriteString("Return only a JSON list of objects, each with 'title', 'type' (Article, Video, or Course), and 'url'.\n")
	b.WriteString("No other text.")
	return b.String()
}

// Find asks the generator for resources. On any failure — provider error,
// empty list, unparsable output — it returns the fallback search link
// instead of an error.
func (f *Finder) Find(ctx context.Context, topic, stepTitle string) []Resource {
	ctx = llm.WithPurpose(ctx, llm.PurposeResources)

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildPrompt(topic, stepTitle)},
		},
		MaxTokens:   f.cfg.MaxTokens,
		Temperature: f.cfg.Temperature,
	}

	resp, err := f.provider.Generate(ctx, req)
	if err != nil {
		f.log.Warn("resource generation failed, using fallback", "topic", topic, "step", stepTitle, "error", err)
		return Fallback(topic, stepTitle)
	}

	found, err := Parse(resp.Text())
	if err != nil {
		f.log.Warn("resource response unparsable, using fallback", "topic", topic, "step", stepTitle, "error", err)
		return Fallback(topic, stepTitle)
	}
	return found
}

// Parse extracts the resource list from raw generator output. It tries a
// direct JSON parse first and, on failure, strips Markdown code fences and
// retries once. Anything else is an error; there is no ad hoc slicing
// beyond the two stages.
func Parse(raw string) ([]Resource, error) {
	raw = strings.TrimSpace(raw)

	out, err := parseList(raw)
	if err == nil {
		return out, nil
	}

	stripped, ok := stripFences(raw)
	if !ok {
		return nil, err
	}
	return parseList(stripped)
}

func parseList(s string) ([]Resource, error) {
	var out []Resource
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("parse resource list: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("parse resource list: empty")
	}
	return out, nil
}

// stripFences removes a surrounding Markdown code fence (```json ... ``` or
// bare ``` ... ```). Returns false if no fence is present.
func stripFences(s string) (string, bool) {
	start := strings.Index(s, "```")
	if start == -1 {
		return "", false
	}
	s = s[start+3:]
	s = strings.TrimPrefix(s, "json")

	end := strings.Index(s, "```")
	if end == -1 {
		return strings.TrimSpace(s), true
	}
	return strings.TrimSpace(s[:end]), true
}

// Fallback builds the deterministic single-resource substitute: a web
// search for the step within the topic.
func Fallback(topic, stepTitle string) []Resource {
	q := url.QueryEscape(topic + " " + stepTitle)
	return []Resource{
		{
			Title: fmt.Sprintf("Search for %s", stepTitle),
			Type:  "Article",
			URL:   "https://www.google.com/search?q=" + q,
		},
	}
}
