package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Objective is a learner's multi-week goal, decomposed into sprints.
// It carries the adaptive signals (difficulty, velocity) that the
// recalibrator adjusts over time.
type Objective struct {
	ent.Schema
}

func (Objective) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty(),
		field.String("user_id").
			NotEmpty().
			Comment("Owning learner profile snapshot"),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Default(""),
		field.JSON("success_criteria", []string{}).
			Optional(),
		field.JSON("required_skills", []string{}).
			Optional(),
		field.String("priority").
			Default("normal"),
		field.Enum("status").
			Values("draft", "active", "completed").
			Default("draft"),
		field.Int("estimated_total_days").
			Positive(),
		field.Int("completed_days").
			Default(0),
		field.Int("current_difficulty").
			Default(50).
			Min(0).
			Max(100),
		field.Float("learning_velocity").
			Default(1.0),
		field.Int("recalibration_count").
			Default(0),
		field.Int("current_streak").
			Default(0),
		field.Int("longest_streak").
			Default(0),
		field.Time("last_completed_at").
			Optional().
			Nillable().
			Comment("Completion time of the most recent sprint, drives streak gaps"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Objective) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
	}
}
