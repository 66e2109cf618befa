package roadmap

import "github.com/JOHN41-tech/assistant-L/internal/llm"

// RoadmapSchema defines the JSON schema for LLM roadmap generation responses.
var RoadmapSchema = &llm.Schema{
	Name:        "learning-roadmap",
	Description: "An ordered sequence of learning steps for a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"number": map[string]any{
							"type":        "integer",
							"description": "1-based step position",
						},
						"title": map[string]any{
							"type":        "string",
							"description": "Short step label",
						},
						"details": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Explanatory bullet points for the step",
						},
					},
					"required":             []any{"number", "title", "details"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"steps"},
		"additionalProperties": false,
	},
}
