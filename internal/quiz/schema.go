package quiz

import "github.com/JOHN41-tech/assistant-L/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "step-quiz",
	Description: "A short multiple-choice quiz for one roadmap step",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text shown to the learner",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 candidate answers",
						},
						"correct": map[string]any{
							"type":        "string",
							"description": "The text of the correct option, verbatim",
						},
					},
					"required":             []any{"question", "options", "correct"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
