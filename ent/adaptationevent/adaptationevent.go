// Code generated by ent, DO NOT EDIT.

package adaptationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the adaptationevent type in the database.
	Label = "adaptation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldObjectiveID holds the string denoting the objective_id field in the database.
	FieldObjectiveID = "objective_id"
	// FieldAdjustmentType holds the string denoting the adjustment_type field in the database.
	FieldAdjustmentType = "adjustment_type"
	// FieldPreviousDifficulty holds the string denoting the previous_difficulty field in the database.
	FieldPreviousDifficulty = "previous_difficulty"
	// FieldNewDifficulty holds the string denoting the new_difficulty field in the database.
	FieldNewDifficulty = "new_difficulty"
	// FieldPreviousVelocity holds the string denoting the previous_velocity field in the database.
	FieldPreviousVelocity = "previous_velocity"
	// FieldNewVelocity holds the string denoting the new_velocity field in the database.
	FieldNewVelocity = "new_velocity"
	// FieldPreviousEstimatedDays holds the string denoting the previous_estimated_days field in the database.
	FieldPreviousEstimatedDays = "previous_estimated_days"
	// FieldNewEstimatedDays holds the string denoting the new_estimated_days field in the database.
	FieldNewEstimatedDays = "new_estimated_days"
	// FieldAverageScore holds the string denoting the average_score field in the database.
	FieldAverageScore = "average_score"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// Table holds the table name of the adaptationevent in the database.
	Table = "adaptation_events"
)

// Columns holds all SQL columns for adaptationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldObjectiveID,
	FieldAdjustmentType,
	FieldPreviousDifficulty,
	FieldNewDifficulty,
	FieldPreviousVelocity,
	FieldNewVelocity,
	FieldPreviousEstimatedDays,
	FieldNewEstimatedDays,
	FieldAverageScore,
	FieldReason,
	FieldSource,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ObjectiveIDValidator is a validator for the "objective_id" field. It is called by the builders before save.
	ObjectiveIDValidator func(string) error
	// AdjustmentTypeValidator is a validator for the "adjustment_type" field. It is called by the builders before save.
	AdjustmentTypeValidator func(string) error
	// DefaultReason holds the default value on creation for the "reason" field.
	DefaultReason string
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
)

// OrderOption defines the ordering options for the AdaptationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByObjectiveID orders the results by the objective_id field.
func ByObjectiveID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectiveID, opts...).ToFunc()
}

// ByAdjustmentType orders the results by the adjustment_type field.
func ByAdjustmentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdjustmentType, opts...).ToFunc()
}

// ByPreviousDifficulty orders the results by the previous_difficulty field.
func ByPreviousDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousDifficulty, opts...).ToFunc()
}

// ByNewDifficulty orders the results by the new_difficulty field.
func ByNewDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewDifficulty, opts...).ToFunc()
}

// ByPreviousVelocity orders the results by the previous_velocity field.
func ByPreviousVelocity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousVelocity, opts...).ToFunc()
}

// ByNewVelocity orders the results by the new_velocity field.
func ByNewVelocity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewVelocity, opts...).ToFunc()
}

// ByPreviousEstimatedDays orders the results by the previous_estimated_days field.
func ByPreviousEstimatedDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousEstimatedDays, opts...).ToFunc()
}

// ByNewEstimatedDays orders the results by the new_estimated_days field.
func ByNewEstimatedDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewEstimatedDays, opts...).ToFunc()
}

// ByAverageScore orders the results by the average_score field.
func ByAverageScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageScore, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}
