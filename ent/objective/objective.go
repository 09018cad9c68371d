// Code generated by ent, DO NOT EDIT.

package objective

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the objective type in the database.
	Label = "objective"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSuccessCriteria holds the string denoting the success_criteria field in the database.
	FieldSuccessCriteria = "success_criteria"
	// FieldRequiredSkills holds the string denoting the required_skills field in the database.
	FieldRequiredSkills = "required_skills"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEstimatedTotalDays holds the string denoting the estimated_total_days field in the database.
	FieldEstimatedTotalDays = "estimated_total_days"
	// FieldCompletedDays holds the string denoting the completed_days field in the database.
	FieldCompletedDays = "completed_days"
	// FieldCurrentDifficulty holds the string denoting the current_difficulty field in the database.
	FieldCurrentDifficulty = "current_difficulty"
	// FieldLearningVelocity holds the string denoting the learning_velocity field in the database.
	FieldLearningVelocity = "learning_velocity"
	// FieldRecalibrationCount holds the string denoting the recalibration_count field in the database.
	FieldRecalibrationCount = "recalibration_count"
	// FieldCurrentStreak holds the string denoting the current_streak field in the database.
	FieldCurrentStreak = "current_streak"
	// FieldLongestStreak holds the string denoting the longest_streak field in the database.
	FieldLongestStreak = "longest_streak"
	// FieldLastCompletedAt holds the string denoting the last_completed_at field in the database.
	FieldLastCompletedAt = "last_completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the objective in the database.
	Table = "objectives"
)

// Columns holds all SQL columns for objective fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTitle,
	FieldDescription,
	FieldSuccessCriteria,
	FieldRequiredSkills,
	FieldPriority,
	FieldStatus,
	FieldEstimatedTotalDays,
	FieldCompletedDays,
	FieldCurrentDifficulty,
	FieldLearningVelocity,
	FieldRecalibrationCount,
	FieldCurrentStreak,
	FieldLongestStreak,
	FieldLastCompletedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority string
	// EstimatedTotalDaysValidator is a validator for the "estimated_total_days" field. It is called by the builders before save.
	EstimatedTotalDaysValidator func(int) error
	// DefaultCompletedDays holds the default value on creation for the "completed_days" field.
	DefaultCompletedDays int
	// DefaultCurrentDifficulty holds the default value on creation for the "current_difficulty" field.
	DefaultCurrentDifficulty int
	// CurrentDifficultyValidator is a validator for the "current_difficulty" field. It is called by the builders before save.
	CurrentDifficultyValidator func(int) error
	// DefaultLearningVelocity holds the default value on creation for the "learning_velocity" field.
	DefaultLearningVelocity float64
	// DefaultRecalibrationCount holds the default value on creation for the "recalibration_count" field.
	DefaultRecalibrationCount int
	// DefaultCurrentStreak holds the default value on creation for the "current_streak" field.
	DefaultCurrentStreak int
	// DefaultLongestStreak holds the default value on creation for the "longest_streak" field.
	DefaultLongestStreak int
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

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusActive, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("objective: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Objective queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEstimatedTotalDays orders the results by the estimated_total_days field.
func ByEstimatedTotalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedTotalDays, opts...).ToFunc()
}

// ByCompletedDays orders the results by the completed_days field.
func ByCompletedDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedDays, opts...).ToFunc()
}

// ByCurrentDifficulty orders the results by the current_difficulty field.
func ByCurrentDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentDifficulty, opts...).ToFunc()
}

// ByLearningVelocity orders the results by the learning_velocity field.
func ByLearningVelocity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningVelocity, opts...).ToFunc()
}

// ByRecalibrationCount orders the results by the recalibration_count field.
func ByRecalibrationCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecalibrationCount, opts...).ToFunc()
}

// ByCurrentStreak orders the results by the current_streak field.
func ByCurrentStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStreak, opts...).ToFunc()
}

// ByLongestStreak orders the results by the longest_streak field.
func ByLongestStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongestStreak, opts...).ToFunc()
}

// ByLastCompletedAt orders the results by the last_completed_at field.
func ByLastCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
