package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdaptationEvent records an applied difficulty/velocity recalibration as
// an immutable history entry. The objective's live fields are updated in
// the same operation; this row is the audit trail.
type AdaptationEvent struct {
	ent.Schema
}

func (AdaptationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AdaptationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("objective_id").NotEmpty(),
		field.String("adjustment_type").NotEmpty().
			Comment("increase, decrease, or maintain"),
		field.Int("previous_difficulty"),
		field.Int("new_difficulty"),
		field.Float("previous_velocity"),
		field.Float("new_velocity"),
		field.Int("previous_estimated_days"),
		field.Int("new_estimated_days"),
		field.Float("average_score"),
		field.Text("reason").Default(""),
		field.String("source").Default("fallback").
			Comment("remote when the provider decided, fallback for rule-based"),
	}
}

func (AdaptationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("objective_id"),
	}
}
