package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Milestone is a target day within an objective with a completion flag.
// Created at objective setup, flipped by the completion handler when the
// completed-day count reaches the target.
type Milestone struct {
	ent.Schema
}

func (Milestone) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty(),
		field.String("objective_id").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.Int("target_day").
			Positive(),
		field.Bool("completed").
			Default(false),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Milestone) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("objective_id"),
		index.Fields("objective_id", "target_day"),
	}
}
