// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/objective"
)

// Objective is the model entity for the Objective schema.
type Objective struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning learner profile snapshot
	UserID string `json:"user_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// SuccessCriteria holds the value of the "success_criteria" field.
	SuccessCriteria []string `json:"success_criteria,omitempty"`
	// RequiredSkills holds the value of the "required_skills" field.
	RequiredSkills []string `json:"required_skills,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority string `json:"priority,omitempty"`
	// Status holds the value of the "status" field.
	Status objective.Status `json:"status,omitempty"`
	// EstimatedTotalDays holds the value of the "estimated_total_days" field.
	EstimatedTotalDays int `json:"estimated_total_days,omitempty"`
	// CompletedDays holds the value of the "completed_days" field.
	CompletedDays int `json:"completed_days,omitempty"`
	// CurrentDifficulty holds the value of the "current_difficulty" field.
	CurrentDifficulty int `json:"current_difficulty,omitempty"`
	// LearningVelocity holds the value of the "learning_velocity" field.
	LearningVelocity float64 `json:"learning_velocity,omitempty"`
	// RecalibrationCount holds the value of the "recalibration_count" field.
	RecalibrationCount int `json:"recalibration_count,omitempty"`
	// CurrentStreak holds the value of the "current_streak" field.
	CurrentStreak int `json:"current_streak,omitempty"`
	// LongestStreak holds the value of the "longest_streak" field.
	LongestStreak int `json:"longest_streak,omitempty"`
	// Completion time of the most recent sprint, drives streak gaps
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Objective) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case objective.FieldSuccessCriteria, objective.FieldRequiredSkills:
			values[i] = new([]byte)
		case objective.FieldLearningVelocity:
			values[i] = new(sql.NullFloat64)
		case objective.FieldEstimatedTotalDays, objective.FieldCompletedDays, objective.FieldCurrentDifficulty, objective.FieldRecalibrationCount, objective.FieldCurrentStreak, objective.FieldLongestStreak:
			values[i] = new(sql.NullInt64)
		case objective.FieldID, objective.FieldUserID, objective.FieldTitle, objective.FieldDescription, objective.FieldPriority, objective.FieldStatus:
			values[i] = new(sql.NullString)
		case objective.FieldLastCompletedAt, objective.FieldCreatedAt, objective.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Objective fields.
func (_m *Objective) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case objective.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case objective.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case objective.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case objective.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case objective.FieldSuccessCriteria:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field success_criteria", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SuccessCriteria); err != nil {
					return fmt.Errorf("unmarshal field success_criteria: %w", err)
				}
			}
		case objective.FieldRequiredSkills:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field required_skills", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequiredSkills); err != nil {
					return fmt.Errorf("unmarshal field required_skills: %w", err)
				}
			}
		case objective.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = value.String
			}
		case objective.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = objective.Status(value.String)
			}
		case objective.FieldEstimatedTotalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_total_days", values[i])
			} else if value.Valid {
				_m.EstimatedTotalDays = int(value.Int64)
			}
		case objective.FieldCompletedDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_days", values[i])
			} else if value.Valid {
				_m.CompletedDays = int(value.Int64)
			}
		case objective.FieldCurrentDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_difficulty", values[i])
			} else if value.Valid {
				_m.CurrentDifficulty = int(value.Int64)
			}
		case objective.FieldLearningVelocity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field learning_velocity", values[i])
			} else if value.Valid {
				_m.LearningVelocity = value.Float64
			}
		case objective.FieldRecalibrationCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recalibration_count", values[i])
			} else if value.Valid {
				_m.RecalibrationCount = int(value.Int64)
			}
		case objective.FieldCurrentStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_streak", values[i])
			} else if value.Valid {
				_m.CurrentStreak = int(value.Int64)
			}
		case objective.FieldLongestStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field longest_streak", values[i])
			} else if value.Valid {
				_m.LongestStreak = int(value.Int64)
			}
		case objective.FieldLastCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_completed_at", values[i])
			} else if value.Valid {
				_m.LastCompletedAt = new(time.Time)
				*_m.LastCompletedAt = value.Time
			}
		case objective.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case objective.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Objective.
// This includes values selected through modifiers, order, etc.
func (_m *Objective) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Objective.
// Note that you need to call Objective.Unwrap() before calling this method if this Objective
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Objective) Update() *ObjectiveUpdateOne {
	return NewObjectiveClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Objective entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Objective) Unwrap() *Objective {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Objective is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Objective) String() string {
	var builder strings.Builder
	builder.WriteString("Objective(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("success_criteria=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessCriteria))
	builder.WriteString(", ")
	builder.WriteString("required_skills=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredSkills))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(_m.Priority)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("estimated_total_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedTotalDays))
	builder.WriteString(", ")
	builder.WriteString("completed_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedDays))
	builder.WriteString(", ")
	builder.WriteString("current_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentDifficulty))
	builder.WriteString(", ")
	builder.WriteString("learning_velocity=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearningVelocity))
	builder.WriteString(", ")
	builder.WriteString("recalibration_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecalibrationCount))
	builder.WriteString(", ")
	builder.WriteString("current_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStreak))
	builder.WriteString(", ")
	builder.WriteString("longest_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.LongestStreak))
	builder.WriteString(", ")
	if v := _m.LastCompletedAt; v != nil {
		builder.WriteString("last_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Objectives is a parsable slice of Objective.
type Objectives []*Objective
