package plan

import "github.com/abhisek/cadence/internal/llm"

// PlanSchema defines the JSON schema for the canonical sprint plan.
// Provider responses are validated against it after sanitization; a plan
// that still fails is a defect to surface, not content to coerce.
var PlanSchema = &llm.Schema{
	Name:        "sprint-plan",
	Description: "A canonical sprint plan with projects, micro-tasks, and evidence rubrics",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":    map[string]any{"type": "string"},
			"title": map[string]any{"type": "string"},
			"description": map[string]any{
				"type":        "string",
				"description": "2-4 sentence summary of what this sprint covers",
			},
			"lengthDays": map[string]any{
				"type": "integer",
				"enum": []any{1, 3, 7, 14},
			},
			"totalEstimatedHours": map[string]any{
				"type":    "number",
				"minimum": 0,
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"beginner", "intermediate", "advanced"},
			},
			"projects": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    projectSchema,
			},
			"microTasks": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    microTaskSchema,
			},
			"portfolioCards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"projectId": map[string]any{"type": "string"},
						"title":     map[string]any{"type": "string"},
						"summary":   map[string]any{"type": "string"},
					},
					"required":             []any{"projectId", "title", "summary"},
					"additionalProperties": false,
				},
			},
			"adaptationNotes": map[string]any{
				"type":        "string",
				"description": "How this plan was adapted to the learner's difficulty and pace",
			},
		},
		"required": []any{
			"id", "title", "description", "lengthDays", "totalEstimatedHours",
			"difficulty", "projects", "microTasks", "adaptationNotes",
		},
		"additionalProperties": false,
	},
}

// PlanRequestSchema is the wire-level constraint sent to the provider.
// Identical to PlanSchema except the evidence rubric is optional on each
// project; the sanitizer injects the library default rubric when the
// provider omits it, and the strict PlanSchema is enforced afterwards.
var PlanRequestSchema = &llm.Schema{
	Name:        "sprint-plan-request",
	Description: PlanSchema.Description,
	Definition:  relaxProjectRubric(PlanSchema.Definition),
}

// relaxProjectRubric rebuilds the plan schema with evidenceRubric removed
// from the project required list. Shallow-copies only the maps it changes;
// the shared sub-schemas stay shared.
func relaxProjectRubric(def map[string]any) map[string]any {
	out := make(map[string]any, len(def))
	for k, v := range def {
		out[k] = v
	}
	props := make(map[string]any)
	for k, v := range def["properties"].(map[string]any) {
		props[k] = v
	}

	relaxedProject := make(map[string]any, len(projectSchema))
	for k, v := range projectSchema {
		relaxedProject[k] = v
	}
	required := []any{}
	for _, r := range projectSchema["required"].([]any) {
		if r != "evidenceRubric" {
			required = append(required, r)
		}
	}
	relaxedProject["required"] = required

	props["projects"] = map[string]any{
		"type":     "array",
		"minItems": 1,
		"items":    relaxedProject,
	}
	out["properties"] = props
	return out
}

var projectSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":    map[string]any{"type": "string"},
		"title": map[string]any{"type": "string"},
		"brief": map[string]any{"type": "string"},
		"requirements": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"acceptanceCriteria": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"deliverables": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type": map[string]any{
						"type": "string",
						"enum": []any{"repository", "deployment", "video", "screenshot"},
					},
					"title":      map[string]any{"type": "string"},
					"artifactId": map[string]any{"type": "string"},
				},
				"required":             []any{"type", "title", "artifactId"},
				"additionalProperties": false,
			},
		},
		"evidenceRubric": evidenceRubricSchema,
		"checkpoints": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"support": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"reflection": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
	"required": []any{
		"id", "title", "brief", "requirements", "acceptanceCriteria",
		"deliverables", "evidenceRubric",
	},
	"additionalProperties": false,
}

var evidenceRubricSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"dimensions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":   map[string]any{"type": "string"},
					"weight": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					"levels": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []any{"name", "weight"},
				"additionalProperties": false,
			},
		},
		"passThreshold": map[string]any{
			"type":    "number",
			"minimum": 0,
			"maximum": 1,
		},
	},
	"required":             []any{"dimensions", "passThreshold"},
	"additionalProperties": false,
}

var microTaskSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":        map[string]any{"type": "string"},
		"projectId": map[string]any{"type": "string"},
		"title":     map[string]any{"type": "string"},
		"type": map[string]any{
			"type": "string",
			"enum": []any{"concept", "practice", "project", "assessment", "reflection"},
		},
		"estimatedMinutes": map[string]any{
			"type":    "integer",
			"minimum": 20,
			"maximum": 90,
		},
		"instructions": map[string]any{"type": "string"},
		"acceptanceTest": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type": map[string]any{"type": "string"},
				"spec": map[string]any{"type": "string"},
			},
			"required":             []any{"type", "spec"},
			"additionalProperties": false,
		},
		"resources": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
	"required": []any{
		"id", "projectId", "title", "type", "estimatedMinutes",
		"instructions", "acceptanceTest",
	},
	"additionalProperties": false,
}
