// Code generated by ent, DO NOT EDIT.

package sprint

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sprint type in the database.
	Label = "sprint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldObjectiveID holds the string denoting the objective_id field in the database.
	FieldObjectiveID = "objective_id"
	// FieldDayNumber holds the string denoting the day_number field in the database.
	FieldDayNumber = "day_number"
	// FieldLengthDays holds the string denoting the length_days field in the database.
	FieldLengthDays = "length_days"
	// FieldTotalEstimatedHours holds the string denoting the total_estimated_hours field in the database.
	FieldTotalEstimatedHours = "total_estimated_hours"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPlannerInput holds the string denoting the planner_input field in the database.
	FieldPlannerInput = "planner_input"
	// FieldPlannerOutput holds the string denoting the planner_output field in the database.
	FieldPlannerOutput = "planner_output"
	// FieldAdaptiveMetadata holds the string denoting the adaptive_metadata field in the database.
	FieldAdaptiveMetadata = "adaptive_metadata"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCompletionPercentage holds the string denoting the completion_percentage field in the database.
	FieldCompletionPercentage = "completion_percentage"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldReviewerSummary holds the string denoting the reviewer_summary field in the database.
	FieldReviewerSummary = "reviewer_summary"
	// FieldSelfEvaluationConfidence holds the string denoting the self_evaluation_confidence field in the database.
	FieldSelfEvaluationConfidence = "self_evaluation_confidence"
	// FieldSelfEvaluationReflection holds the string denoting the self_evaluation_reflection field in the database.
	FieldSelfEvaluationReflection = "self_evaluation_reflection"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the sprint in the database.
	Table = "sprints"
)

// Columns holds all SQL columns for sprint fields.
var Columns = []string{
	FieldID,
	FieldObjectiveID,
	FieldDayNumber,
	FieldLengthDays,
	FieldTotalEstimatedHours,
	FieldDifficulty,
	FieldStatus,
	FieldPlannerInput,
	FieldPlannerOutput,
	FieldAdaptiveMetadata,
	FieldStartedAt,
	FieldCompletedAt,
	FieldCompletionPercentage,
	FieldScore,
	FieldReviewerSummary,
	FieldSelfEvaluationConfidence,
	FieldSelfEvaluationReflection,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// ObjectiveIDValidator is a validator for the "objective_id" field. It is called by the builders before save.
	ObjectiveIDValidator func(string) error
	// DayNumberValidator is a validator for the "day_number" field. It is called by the builders before save.
	DayNumberValidator func(int) error
	// DefaultLengthDays holds the default value on creation for the "length_days" field.
	DefaultLengthDays int
	// DefaultTotalEstimatedHours holds the default value on creation for the "total_estimated_hours" field.
	DefaultTotalEstimatedHours float64
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty string
	// DefaultCompletionPercentage holds the default value on creation for the "completion_percentage" field.
	DefaultCompletionPercentage float64
	// DefaultReviewerSummary holds the default value on creation for the "reviewer_summary" field.
	DefaultReviewerSummary string
	// DefaultSelfEvaluationReflection holds the default value on creation for the "self_evaluation_reflection" field.
	DefaultSelfEvaluationReflection string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPlanned is the default value of the Status enum.
const DefaultStatus = StatusPlanned

// Status values.
const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusSubmitted  Status = "submitted"
	StatusReviewed   Status = "reviewed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPlanned, StatusInProgress, StatusSubmitted, StatusReviewed:
		return nil
	default:
		return fmt.Errorf("sprint: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Sprint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByObjectiveID orders the results by the objective_id field.
func ByObjectiveID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectiveID, opts...).ToFunc()
}

// ByDayNumber orders the results by the day_number field.
func ByDayNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayNumber, opts...).ToFunc()
}

// ByLengthDays orders the results by the length_days field.
func ByLengthDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLengthDays, opts...).ToFunc()
}

// ByTotalEstimatedHours orders the results by the total_estimated_hours field.
func ByTotalEstimatedHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalEstimatedHours, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCompletionPercentage orders the results by the completion_percentage field.
func ByCompletionPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionPercentage, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByReviewerSummary orders the results by the reviewer_summary field.
func ByReviewerSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewerSummary, opts...).ToFunc()
}

// BySelfEvaluationConfidence orders the results by the self_evaluation_confidence field.
func BySelfEvaluationConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelfEvaluationConfidence, opts...).ToFunc()
}

// BySelfEvaluationReflection orders the results by the self_evaluation_reflection field.
func BySelfEvaluationReflection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelfEvaluationReflection, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
