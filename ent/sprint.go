// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/sprint"
)

// Sprint is the model entity for the Sprint schema.
type Sprint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ObjectiveID holds the value of the "objective_id" field.
	ObjectiveID string `json:"objective_id,omitempty"`
	// DayNumber holds the value of the "day_number" field.
	DayNumber int `json:"day_number,omitempty"`
	// LengthDays holds the value of the "length_days" field.
	LengthDays int `json:"length_days,omitempty"`
	// TotalEstimatedHours holds the value of the "total_estimated_hours" field.
	TotalEstimatedHours float64 `json:"total_estimated_hours,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// Status holds the value of the "status" field.
	Status sprint.Status `json:"status,omitempty"`
	// Request snapshot sent to the planner
	PlannerInput map[string]interface{} `json:"planner_input,omitempty"`
	// Canonical sprint plan document
	PlannerOutput map[string]interface{} `json:"planner_output,omitempty"`
	// AdaptiveMetadata holds the value of the "adaptive_metadata" field.
	AdaptiveMetadata map[string]interface{} `json:"adaptive_metadata,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CompletionPercentage holds the value of the "completion_percentage" field.
	CompletionPercentage float64 `json:"completion_percentage,omitempty"`
	// Score holds the value of the "score" field.
	Score *float64 `json:"score,omitempty"`
	// ReviewerSummary holds the value of the "reviewer_summary" field.
	ReviewerSummary string `json:"reviewer_summary,omitempty"`
	// SelfEvaluationConfidence holds the value of the "self_evaluation_confidence" field.
	SelfEvaluationConfidence *int `json:"self_evaluation_confidence,omitempty"`
	// SelfEvaluationReflection holds the value of the "self_evaluation_reflection" field.
	SelfEvaluationReflection string `json:"self_evaluation_reflection,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Sprint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sprint.FieldPlannerInput, sprint.FieldPlannerOutput, sprint.FieldAdaptiveMetadata:
			values[i] = new([]byte)
		case sprint.FieldTotalEstimatedHours, sprint.FieldCompletionPercentage, sprint.FieldScore:
			values[i] = new(sql.NullFloat64)
		case sprint.FieldDayNumber, sprint.FieldLengthDays, sprint.FieldSelfEvaluationConfidence:
			values[i] = new(sql.NullInt64)
		case sprint.FieldID, sprint.FieldObjectiveID, sprint.FieldDifficulty, sprint.FieldStatus, sprint.FieldReviewerSummary, sprint.FieldSelfEvaluationReflection:
			values[i] = new(sql.NullString)
		case sprint.FieldStartedAt, sprint.FieldCompletedAt, sprint.FieldCreatedAt, sprint.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Sprint fields.
func (_m *Sprint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sprint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sprint.FieldObjectiveID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objective_id", values[i])
			} else if value.Valid {
				_m.ObjectiveID = value.String
			}
		case sprint.FieldDayNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_number", values[i])
			} else if value.Valid {
				_m.DayNumber = int(value.Int64)
			}
		case sprint.FieldLengthDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field length_days", values[i])
			} else if value.Valid {
				_m.LengthDays = int(value.Int64)
			}
		case sprint.FieldTotalEstimatedHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_estimated_hours", values[i])
			} else if value.Valid {
				_m.TotalEstimatedHours = value.Float64
			}
		case sprint.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case sprint.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = sprint.Status(value.String)
			}
		case sprint.FieldPlannerInput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field planner_input", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlannerInput); err != nil {
					return fmt.Errorf("unmarshal field planner_input: %w", err)
				}
			}
		case sprint.FieldPlannerOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field planner_output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlannerOutput); err != nil {
					return fmt.Errorf("unmarshal field planner_output: %w", err)
				}
			}
		case sprint.FieldAdaptiveMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field adaptive_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AdaptiveMetadata); err != nil {
					return fmt.Errorf("unmarshal field adaptive_metadata: %w", err)
				}
			}
		case sprint.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case sprint.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case sprint.FieldCompletionPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_percentage", values[i])
			} else if value.Valid {
				_m.CompletionPercentage = value.Float64
			}
		case sprint.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = new(float64)
				*_m.Score = value.Float64
			}
		case sprint.FieldReviewerSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewer_summary", values[i])
			} else if value.Valid {
				_m.ReviewerSummary = value.String
			}
		case sprint.FieldSelfEvaluationConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field self_evaluation_confidence", values[i])
			} else if value.Valid {
				_m.SelfEvaluationConfidence = new(int)
				*_m.SelfEvaluationConfidence = int(value.Int64)
			}
		case sprint.FieldSelfEvaluationReflection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field self_evaluation_reflection", values[i])
			} else if value.Valid {
				_m.SelfEvaluationReflection = value.String
			}
		case sprint.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sprint.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Sprint.
// This includes values selected through modifiers, order, etc.
func (_m *Sprint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Sprint.
// Note that you need to call Sprint.Unwrap() before calling this method if this Sprint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Sprint) Update() *SprintUpdateOne {
	return NewSprintClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Sprint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Sprint) Unwrap() *Sprint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Sprint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Sprint) String() string {
	var builder strings.Builder
	builder.WriteString("Sprint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("objective_id=")
	builder.WriteString(_m.ObjectiveID)
	builder.WriteString(", ")
	builder.WriteString("day_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayNumber))
	builder.WriteString(", ")
	builder.WriteString("length_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.LengthDays))
	builder.WriteString(", ")
	builder.WriteString("total_estimated_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalEstimatedHours))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("planner_input=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlannerInput))
	builder.WriteString(", ")
	builder.WriteString("planner_output=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlannerOutput))
	builder.WriteString(", ")
	builder.WriteString("adaptive_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdaptiveMetadata))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("completion_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionPercentage))
	builder.WriteString(", ")
	if v := _m.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("reviewer_summary=")
	builder.WriteString(_m.ReviewerSummary)
	builder.WriteString(", ")
	if v := _m.SelfEvaluationConfidence; v != nil {
		builder.WriteString("self_evaluation_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("self_evaluation_reflection=")
	builder.WriteString(_m.SelfEvaluationReflection)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Sprints is a parsable slice of Sprint.
type Sprints []*Sprint
