package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SprintArtifact is one piece of submitted evidence tied to a sprint and
// a project deliverable. Upserted by (sprint_id, artifact_id).
type SprintArtifact struct {
	ent.Schema
}

func (SprintArtifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty(),
		field.String("sprint_id").
			NotEmpty(),
		field.String("artifact_id").
			NotEmpty().
			Comment("Deliverable artifact ID from the plan document"),
		field.String("project_id").
			Default(""),
		field.Enum("type").
			Values("repository", "deployment", "video", "screenshot"),
		field.String("title").
			Default(""),
		field.String("url").
			Default(""),
		field.Enum("status").
			Values("ok", "broken", "missing", "unknown").
			Default("unknown"),
		field.Text("notes").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (SprintArtifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sprint_id", "artifact_id").Unique(),
		index.Fields("sprint_id"),
	}
}
