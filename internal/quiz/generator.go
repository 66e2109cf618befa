package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/JOHN41-tech/assistant-L/internal/llm"
)

// ErrNoQuestions indicates the generator produced an empty quiz.
var ErrNoQuestions = errors.New("quiz generation returned no questions")

const systemPrompt = `You are a quiz writer for a self-guided learning platform.

Rules:
- Write multiple-choice questions that test understanding of the given roadmap step, not trivia.
- Each question has exactly 4 options and exactly one correct answer.
- The "correct" field must repeat the text of the correct option verbatim.
- Questions should be answerable from the step's material alone.
- Distractors should reflect plausible misunderstandings, not random values.`

// Config bounds quiz generation.
type Config struct {
	QuestionCount int
	MaxTokens     int
	Temperature   float64
}

// DefaultConfig returns the default quiz generation limits.
func DefaultConfig() Config {
	return Config{
		QuestionCount: 3,
		MaxTokens:     2048,
		Temperature:   0.4,
	}
}

// Generator produces per-step quizzes through the text generator.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// NewGenerator creates a quiz Generator.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

type quizOutput struct {
	Questions []Question `json:"questions"`
}

// Generate produces a quiz for one roadmap step. Fails if the provider
// errors or returns zero questions; there is no degraded success.
func (g *Generator) Generate(ctx context.Context, topic, stepTitle, stepDetails string) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuiz)

	var b strings.Builder
	fmt.Fprintf(&b, "Write %d multiple-choice questions.\n", g.cfg.QuestionCount)
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Step: %s\n", stepTitle)
	if stepDetails != "" {
		fmt.Fprintf(&b, "Step material:\n%s\n", stepDetails)
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}
	if len(out.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	return out.Questions, nil
}
