// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/adaptationevent"
)

// AdaptationEvent is the model entity for the AdaptationEvent schema.
type AdaptationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// ObjectiveID holds the value of the "objective_id" field.
	ObjectiveID string `json:"objective_id,omitempty"`
	// increase, decrease, or maintain
	AdjustmentType string `json:"adjustment_type,omitempty"`
	// PreviousDifficulty holds the value of the "previous_difficulty" field.
	PreviousDifficulty int `json:"previous_difficulty,omitempty"`
	// NewDifficulty holds the value of the "new_difficulty" field.
	NewDifficulty int `json:"new_difficulty,omitempty"`
	// PreviousVelocity holds the value of the "previous_velocity" field.
	PreviousVelocity float64 `json:"previous_velocity,omitempty"`
	// NewVelocity holds the value of the "new_velocity" field.
	NewVelocity float64 `json:"new_velocity,omitempty"`
	// PreviousEstimatedDays holds the value of the "previous_estimated_days" field.
	PreviousEstimatedDays int `json:"previous_estimated_days,omitempty"`
	// NewEstimatedDays holds the value of the "new_estimated_days" field.
	NewEstimatedDays int `json:"new_estimated_days,omitempty"`
	// AverageScore holds the value of the "average_score" field.
	AverageScore float64 `json:"average_score,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// remote when the provider decided, fallback for rule-based
	Source       string `json:"source,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdaptationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case adaptationevent.FieldPreviousVelocity, adaptationevent.FieldNewVelocity, adaptationevent.FieldAverageScore:
			values[i] = new(sql.NullFloat64)
		case adaptationevent.FieldID, adaptationevent.FieldSequence, adaptationevent.FieldPreviousDifficulty, adaptationevent.FieldNewDifficulty, adaptationevent.FieldPreviousEstimatedDays, adaptationevent.FieldNewEstimatedDays:
			values[i] = new(sql.NullInt64)
		case adaptationevent.FieldObjectiveID, adaptationevent.FieldAdjustmentType, adaptationevent.FieldReason, adaptationevent.FieldSource:
			values[i] = new(sql.NullString)
		case adaptationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdaptationEvent fields.
func (_m *AdaptationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case adaptationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case adaptationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case adaptationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case adaptationevent.FieldObjectiveID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objective_id", values[i])
			} else if value.Valid {
				_m.ObjectiveID = value.String
			}
		case adaptationevent.FieldAdjustmentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field adjustment_type", values[i])
			} else if value.Valid {
				_m.AdjustmentType = value.String
			}
		case adaptationevent.FieldPreviousDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field previous_difficulty", values[i])
			} else if value.Valid {
				_m.PreviousDifficulty = int(value.Int64)
			}
		case adaptationevent.FieldNewDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_difficulty", values[i])
			} else if value.Valid {
				_m.NewDifficulty = int(value.Int64)
			}
		case adaptationevent.FieldPreviousVelocity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field previous_velocity", values[i])
			} else if value.Valid {
				_m.PreviousVelocity = value.Float64
			}
		case adaptationevent.FieldNewVelocity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field new_velocity", values[i])
			} else if value.Valid {
				_m.NewVelocity = value.Float64
			}
		case adaptationevent.FieldPreviousEstimatedDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field previous_estimated_days", values[i])
			} else if value.Valid {
				_m.PreviousEstimatedDays = int(value.Int64)
			}
		case adaptationevent.FieldNewEstimatedDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_estimated_days", values[i])
			} else if value.Valid {
				_m.NewEstimatedDays = int(value.Int64)
			}
		case adaptationevent.FieldAverageScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_score", values[i])
			} else if value.Valid {
				_m.AverageScore = value.Float64
			}
		case adaptationevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case adaptationevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdaptationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AdaptationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AdaptationEvent.
// Note that you need to call AdaptationEvent.Unwrap() before calling this method if this AdaptationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdaptationEvent) Update() *AdaptationEventUpdateOne {
	return NewAdaptationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdaptationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdaptationEvent) Unwrap() *AdaptationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdaptationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdaptationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AdaptationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("objective_id=")
	builder.WriteString(_m.ObjectiveID)
	builder.WriteString(", ")
	builder.WriteString("adjustment_type=")
	builder.WriteString(_m.AdjustmentType)
	builder.WriteString(", ")
	builder.WriteString("previous_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreviousDifficulty))
	builder.WriteString(", ")
	builder.WriteString("new_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewDifficulty))
	builder.WriteString(", ")
	builder.WriteString("previous_velocity=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreviousVelocity))
	builder.WriteString(", ")
	builder.WriteString("new_velocity=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewVelocity))
	builder.WriteString(", ")
	builder.WriteString("previous_estimated_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreviousEstimatedDays))
	builder.WriteString(", ")
	builder.WriteString("new_estimated_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewEstimatedDays))
	builder.WriteString(", ")
	builder.WriteString("average_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageScore))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteByte(')')
	return builder.String()
}

// AdaptationEvents is a parsable slice of AdaptationEvent.
type AdaptationEvents []*AdaptationEvent
