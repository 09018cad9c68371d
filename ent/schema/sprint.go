package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Sprint is one unit of planned work (1, 3, 7, or 14 days) within an
// objective. The planner output is stored verbatim as the canonical plan
// document; review results are written back after submission.
type Sprint struct {
	ent.Schema
}

func (Sprint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty(),
		field.String("objective_id").
			NotEmpty(),
		field.Int("day_number").
			Positive(),
		field.Int("length_days").
			Default(1),
		field.Float("total_estimated_hours").
			Default(0),
		field.String("difficulty").
			Default("beginner"),
		field.Enum("status").
			Values("planned", "in_progress", "submitted", "reviewed").
			Default("planned"),
		field.JSON("planner_input", map[string]any{}).
			Optional().
			Comment("Request snapshot sent to the planner"),
		field.JSON("planner_output", map[string]any{}).
			Optional().
			Comment("Canonical sprint plan document"),
		field.JSON("adaptive_metadata", map[string]any{}).
			Optional(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Float("completion_percentage").
			Default(0),
		field.Float("score").
			Optional().
			Nillable(),
		field.Text("reviewer_summary").
			Default(""),
		field.Int("self_evaluation_confidence").
			Optional().
			Nillable(),
		field.Text("self_evaluation_reflection").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Sprint) Indexes() []ent.Index {
	return []ent.Index{
		// One sprint per day per objective. The generation path relies on
		// this as the last line of defense against duplicate day numbers.
		index.Fields("objective_id", "day_number").Unique(),
		index.Fields("objective_id", "status"),
	}
}
