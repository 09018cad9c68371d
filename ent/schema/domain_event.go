package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DomainEvent is a fire-and-forget domain notification (sprint_completed,
// milestone_reached, ...). Consumers poll or tail this table; the engine
// never reads it back for business decisions.
type DomainEvent struct {
	ent.Schema
}

func (DomainEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DomainEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_type").NotEmpty(),
		field.JSON("payload", map[string]any{}).Optional(),
	}
}

func (DomainEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_type"),
	}
}
