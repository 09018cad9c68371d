// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdaptationEventsColumns holds the columns for the "adaptation_events" table.
	AdaptationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "objective_id", Type: field.TypeString},
		{Name: "adjustment_type", Type: field.TypeString},
		{Name: "previous_difficulty", Type: field.TypeInt},
		{Name: "new_difficulty", Type: field.TypeInt},
		{Name: "previous_velocity", Type: field.TypeFloat64},
		{Name: "new_velocity", Type: field.TypeFloat64},
		{Name: "previous_estimated_days", Type: field.TypeInt},
		{Name: "new_estimated_days", Type: field.TypeInt},
		{Name: "average_score", Type: field.TypeFloat64},
		{Name: "reason", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "source", Type: field.TypeString, Default: "fallback"},
	}
	// AdaptationEventsTable holds the schema information for the "adaptation_events" table.
	AdaptationEventsTable = &schema.Table{
		Name:       "adaptation_events",
		Columns:    AdaptationEventsColumns,
		PrimaryKey: []*schema.Column{AdaptationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "adaptationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[1]},
			},
			{
				Name:    "adaptationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[2]},
			},
			{
				Name:    "adaptationevent_objective_id",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[3]},
			},
		},
	}
	// DomainEventsColumns holds the columns for the "domain_events" table.
	DomainEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
	}
	// DomainEventsTable holds the schema information for the "domain_events" table.
	DomainEventsTable = &schema.Table{
		Name:       "domain_events",
		Columns:    DomainEventsColumns,
		PrimaryKey: []*schema.Column{DomainEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "domainevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DomainEventsColumns[1]},
			},
			{
				Name:    "domainevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DomainEventsColumns[2]},
			},
			{
				Name:    "domainevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{DomainEventsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "prompt_hash", Type: field.TypeString, Default: ""},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[10]},
			},
		},
	}
	// MilestonesColumns holds the columns for the "milestones" table.
	MilestonesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "objective_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "target_day", Type: field.TypeInt},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MilestonesTable holds the schema information for the "milestones" table.
	MilestonesTable = &schema.Table{
		Name:       "milestones",
		Columns:    MilestonesColumns,
		PrimaryKey: []*schema.Column{MilestonesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "milestone_objective_id",
				Unique:  false,
				Columns: []*schema.Column{MilestonesColumns[1]},
			},
			{
				Name:    "milestone_objective_id_target_day",
				Unique:  false,
				Columns: []*schema.Column{MilestonesColumns[1], MilestonesColumns[3]},
			},
		},
	}
	// ObjectivesColumns holds the columns for the "objectives" table.
	ObjectivesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "success_criteria", Type: field.TypeJSON, Nullable: true},
		{Name: "required_skills", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeString, Default: "normal"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "active", "completed"}, Default: "draft"},
		{Name: "estimated_total_days", Type: field.TypeInt},
		{Name: "completed_days", Type: field.TypeInt, Default: 0},
		{Name: "current_difficulty", Type: field.TypeInt, Default: 50},
		{Name: "learning_velocity", Type: field.TypeFloat64, Default: 1},
		{Name: "recalibration_count", Type: field.TypeInt, Default: 0},
		{Name: "current_streak", Type: field.TypeInt, Default: 0},
		{Name: "longest_streak", Type: field.TypeInt, Default: 0},
		{Name: "last_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ObjectivesTable holds the schema information for the "objectives" table.
	ObjectivesTable = &schema.Table{
		Name:       "objectives",
		Columns:    ObjectivesColumns,
		PrimaryKey: []*schema.Column{ObjectivesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "objective_user_id",
				Unique:  false,
				Columns: []*schema.Column{ObjectivesColumns[1]},
			},
			{
				Name:    "objective_status",
				Unique:  false,
				Columns: []*schema.Column{ObjectivesColumns[7]},
			},
		},
	}
	// SprintsColumns holds the columns for the "sprints" table.
	SprintsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "objective_id", Type: field.TypeString},
		{Name: "day_number", Type: field.TypeInt},
		{Name: "length_days", Type: field.TypeInt, Default: 1},
		{Name: "total_estimated_hours", Type: field.TypeFloat64, Default: 0},
		{Name: "difficulty", Type: field.TypeString, Default: "beginner"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"planned", "in_progress", "submitted", "reviewed"}, Default: "planned"},
		{Name: "planner_input", Type: field.TypeJSON, Nullable: true},
		{Name: "planner_output", Type: field.TypeJSON, Nullable: true},
		{Name: "adaptive_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "completion_percentage", Type: field.TypeFloat64, Default: 0},
		{Name: "score", Type: field.TypeFloat64, Nullable: true},
		{Name: "reviewer_summary", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "self_evaluation_confidence", Type: field.TypeInt, Nullable: true},
		{Name: "self_evaluation_reflection", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SprintsTable holds the schema information for the "sprints" table.
	SprintsTable = &schema.Table{
		Name:       "sprints",
		Columns:    SprintsColumns,
		PrimaryKey: []*schema.Column{SprintsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sprint_objective_id_day_number",
				Unique:  true,
				Columns: []*schema.Column{SprintsColumns[1], SprintsColumns[2]},
			},
			{
				Name:    "sprint_objective_id_status",
				Unique:  false,
				Columns: []*schema.Column{SprintsColumns[1], SprintsColumns[6]},
			},
		},
	}
	// SprintArtifactsColumns holds the columns for the "sprint_artifacts" table.
	SprintArtifactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "sprint_id", Type: field.TypeString},
		{Name: "artifact_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString, Default: ""},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"repository", "deployment", "video", "screenshot"}},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "url", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ok", "broken", "missing", "unknown"}, Default: "unknown"},
		{Name: "notes", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SprintArtifactsTable holds the schema information for the "sprint_artifacts" table.
	SprintArtifactsTable = &schema.Table{
		Name:       "sprint_artifacts",
		Columns:    SprintArtifactsColumns,
		PrimaryKey: []*schema.Column{SprintArtifactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sprintartifact_sprint_id_artifact_id",
				Unique:  true,
				Columns: []*schema.Column{SprintArtifactsColumns[1], SprintArtifactsColumns[2]},
			},
			{
				Name:    "sprintartifact_sprint_id",
				Unique:  false,
				Columns: []*schema.Column{SprintArtifactsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdaptationEventsTable,
		DomainEventsTable,
		LlmRequestEventsTable,
		MilestonesTable,
		ObjectivesTable,
		SprintsTable,
		SprintArtifactsTable,
	}
)

func init() {
}
