package adapt

import "github.com/abhisek/cadence/internal/llm"

// AdaptationSchema defines the JSON schema for a recalibration decision.
var AdaptationSchema = &llm.Schema{
	Name:        "adaptation-decision",
	Description: "A reasoned difficulty and pacing adjustment for a learning objective",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"shouldAdjust": map[string]any{"type": "boolean"},
			"adjustmentType": map[string]any{
				"type": "string",
				"enum": []any{"increase", "decrease", "maintain"},
			},
			"newDifficulty": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 100,
			},
			"newVelocity": map[string]any{
				"type":    "number",
				"minimum": 0.5,
				"maximum": 2.0,
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "2-4 sentences explaining the adjustment",
			},
			"recommendations": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"estimatedDaysDelta": map[string]any{
				"type":        "integer",
				"description": "Signed change to the objective's estimated total days, 0 for none",
			},
		},
		"required": []any{
			"shouldAdjust", "adjustmentType", "newDifficulty", "newVelocity",
			"reasoning", "recommendations",
		},
		"additionalProperties": false,
	},
}
