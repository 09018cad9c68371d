package review

import "github.com/abhisek/cadence/internal/llm"

// ReviewSchema defines the JSON schema for a single project review.
var ReviewSchema = &llm.Schema{
	Name:        "project-review",
	Description: "A normalized review of one project's submitted evidence",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Overall quality of the evidence against the rubric",
			},
			"achieved": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Deliverables and criteria the evidence demonstrates",
			},
			"missing": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Deliverables and criteria not demonstrated",
			},
			"nextRecommendations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 concrete next steps for the learner",
			},
			"pass": map[string]any{
				"type": "boolean",
			},
		},
		"required":             []any{"score", "achieved", "missing", "nextRecommendations", "pass"},
		"additionalProperties": false,
	},
}
