// Code generated by ent, DO NOT EDIT.

package objective

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Objective {
	return predicate.Objective(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Objective {
	return predicate.Objective(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Objective {
	return predicate.Objective(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Objective {
	return predicate.Objective(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Objective {
	return predicate.Objective(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Objective {
	return predicate.Objective(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Objective {
	return predicate.Objective(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Objective {
	return predicate.Objective(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Objective {
	return predicate.Objective(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldUserID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldDescription, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v string) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldPriority, v))
}

// EstimatedTotalDays applies equality check predicate on the "estimated_total_days" field. It's identical to EstimatedTotalDaysEQ.
func EstimatedTotalDays(v int) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldEstimatedTotalDays, v))
}

// CompletedDays applies equality check predicate on the "completed_days" field. It's identical to CompletedDaysEQ.
func CompletedDays(v int) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldCompletedDays, v))
}

// CurrentDifficulty applies equality check predicate on the "current_difficulty" field. It's identical to CurrentDifficultyEQ.
func CurrentDifficulty(v int) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldCurrentDifficulty, v))
}

// LearningVelocity applies equality check predicate on the "learning_velocity" field. It's identical to LearningVelocityEQ.
func LearningVelocity(v float64) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldLearningVelocity, v))
}

// RecalibrationCount applies equality check predicate on the "recalibration_count" field. It's identical to RecalibrationCountEQ.
func RecalibrationCount(v int) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldRecalibrationCount, v))
}

// CurrentStreak applies equality check predicate on the "current_streak" field. It's identical to CurrentStreakEQ.
func CurrentStreak(v int) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldCurrentStreak, v))
}

// LongestStreak applies equality check predicate on the "longest_streak" field. It's identical to LongestStreakEQ.
func LongestStreak(v int) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldLongestStreak, v))
}

// LastCompletedAt applies equality check predicate on the "last_completed_at" field. It's identical to LastCompletedAtEQ.
func LastCompletedAt(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldLastCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Objective {
	return predicate.Objective(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Objective {
	return predicate.Objective(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Objective {
	return predicate.Objective(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Objective {
	return predicate.Objective(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Objective {
	return predicate.Objective(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Objective {
	return predicate.Objective(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Objective {
	return predicate.Objective(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Objective {
	return predicate.Objective(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Objective {
	return predicate.Objective(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Objective {
	return predicate.Objective(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Objective {
	return predicate.Objective(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Objective {
	return predicate.Objective(sql.FieldContainsFold(FieldUserID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Objective {
	return predicate.Objective(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Objective {
	return predicate.Objective(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Objective {
	return predicate.Objective(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Objective {
	return predicate.Objective(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Objective {
	return predicate.Objective(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Objective {
	return predicate.Objective(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Objective {
	return predicate.Objective(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Objective {
	return predicate.Objective(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Objective {
	return predicate.Objective(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Objective {
	return predicate.Objective(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Objective {
	return predicate.Objective(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Objective {
	return predicate.Objective(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Objective {
	return predicate.Objective(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Objective {
	return predicate.Objective(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Objective {
	return predicate.Objective(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Objective {
	return predicate.Objective(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Objective {
	return predicate.Objective(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Objective {
	return predicate.Objective(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Objective {
	return predicate.Objective(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Objective {
	return predicate.Objective(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Objective {
	return predicate.Objective(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Objective {
	return predicate.Objective(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Objective {
	return predicate.Objective(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Objective {
	return predicate.Objective(sql.FieldContainsFold(FieldDescription, v))
}

// SuccessCriteriaIsNil applies the IsNil predicate on the "success_criteria" field.
func SuccessCriteriaIsNil() predicate.Objective {
	return predicate.Objective(sql.FieldIsNull(FieldSuccessCriteria))
}

// SuccessCriteriaNotNil applies the NotNil predicate on the "success_criteria" field.
func SuccessCriteriaNotNil() predicate.Objective {
	return predicate.Objective(sql.FieldNotNull(FieldSuccessCriteria))
}

// RequiredSkillsIsNil applies the IsNil predicate on the "required_skills" field.
func RequiredSkillsIsNil() predicate.Objective {
	return predicate.Objective(sql.FieldIsNull(FieldRequiredSkills))
}

// RequiredSkillsNotNil applies the NotNil predicate on the "required_skills" field.
func RequiredSkillsNotNil() predicate.Objective {
	return predicate.Objective(sql.FieldNotNull(FieldRequiredSkills))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v string) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v string) predicate.Objective {
	return predicate.Objective(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...string) predicate.Objective {
	return predicate.Objective(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...string) predicate.Objective {
	return predicate.Objective(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v string) predicate.Objective {
	return predicate.Objective(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v string) predicate.Objective {
	return predicate.Objective(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v string) predicate.Objective {
	return predicate.Objective(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v string) predicate.Objective {
	return predicate.Objective(sql.FieldLTE(FieldPriority, v))
}

// PriorityContains applies the Contains predicate on the "priority" field.
func PriorityContains(v string) predicate.Objective {
	return predicate.Objective(sql.FieldContains(FieldPriority, v))
}

// PriorityHasPrefix applies the HasPrefix predicate on the "priority" field.
func PriorityHasPrefix(v string) predicate.Objective {
	return predicate.Objective(sql.FieldHasPrefix(FieldPriority, v))
}

// PriorityHasSuffix applies the HasSuffix predicate on the "priority" field.
func PriorityHasSuffix(v string) predicate.Objective {
	return predicate.Objective(sql.FieldHasSuffix(FieldPriority, v))
}

// PriorityEqualFold applies the EqualFold predicate on the "priority" field.
func PriorityEqualFold(v string) predicate.Objective {
	return predicate.Objective(sql.FieldEqualFold(FieldPriority, v))
}

// PriorityContainsFold applies the ContainsFold predicate on the "priority" field.
func PriorityContainsFold(v string) predicate.Objective {
	return predicate.Objective(sql.FieldContainsFold(FieldPriority, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Objective {
	return predicate.Objective(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Objective {
	return predicate.Objective(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Objective {
	return predicate.Objective(sql.FieldNotIn(FieldStatus, vs...))
}

// EstimatedTotalDaysEQ applies the EQ predicate on the "estimated_total_days" field.
func EstimatedTotalDaysEQ(v int) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldEstimatedTotalDays, v))
}

// EstimatedTotalDaysNEQ applies the NEQ predicate on the "estimated_total_days" field.
func EstimatedTotalDaysNEQ(v int) predicate.Objective {
	return predicate.Objective(sql.FieldNEQ(FieldEstimatedTotalDays, v))
}

// EstimatedTotalDaysIn applies the In predicate on the "estimated_total_days" field.
func EstimatedTotalDaysIn(vs ...int) predicate.Objective {
	return predicate.Objective(sql.FieldIn(FieldEstimatedTotalDays, vs...))
}

// EstimatedTotalDaysNotIn applies the NotIn predicate on the "estimated_total_days" field.
func EstimatedTotalDaysNotIn(vs ...int) predicate.Objective {
	return predicate.Objective(sql.FieldNotIn(FieldEstimatedTotalDays, vs...))
}

// EstimatedTotalDaysGT applies the GT predicate on the "estimated_total_days" field.
func EstimatedTotalDaysGT(v int) predicate.Objective {
	return predicate.Objective(sql.FieldGT(FieldEstimatedTotalDays, v))
}

// EstimatedTotalDaysGTE applies the GTE predicate on the "estimated_total_days" field.
func EstimatedTotalDaysGTE(v int) predicate.Objective {
	return predicate.Objective(sql.FieldGTE(FieldEstimatedTotalDays, v))
}

// EstimatedTotalDaysLT applies the LT predicate on the "estimated_total_days" field.
func EstimatedTotalDaysLT(v int) predicate.Objective {
	return predicate.Objective(sql.FieldLT(FieldEstimatedTotalDays, v))
}

// EstimatedTotalDaysLTE applies the LTE predicate on the "estimated_total_days" field.
func EstimatedTotalDaysLTE(v int) predicate.Objective {
	return predicate.Objective(sql.FieldLTE(FieldEstimatedTotalDays, v))
}

// CompletedDaysEQ applies the EQ predicate on the "completed_days" field.
func CompletedDaysEQ(v int) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldCompletedDays, v))
}

// CompletedDaysNEQ applies the NEQ predicate on the "completed_days" field.
func CompletedDaysNEQ(v int) predicate.Objective {
	return predicate.Objective(sql.FieldNEQ(FieldCompletedDays, v))
}

// CompletedDaysIn applies the In predicate on the "completed_days" field.
func CompletedDaysIn(vs ...int) predicate.Objective {
	return predicate.Objective(sql.FieldIn(FieldCompletedDays, vs...))
}

// CompletedDaysNotIn applies the NotIn predicate on the "completed_days" field.
func CompletedDaysNotIn(vs ...int) predicate.Objective {
	return predicate.Objective(sql.FieldNotIn(FieldCompletedDays, vs...))
}

// CompletedDaysGT applies the GT predicate on the "completed_days" field.
func CompletedDaysGT(v int) predicate.Objective {
	return predicate.Objective(sql.FieldGT(FieldCompletedDays, v))
}

// CompletedDaysGTE applies the GTE predicate on the "completed_days" field.
func CompletedDaysGTE(v int) predicate.Objective {
	return predicate.Objective(sql.FieldGTE(FieldCompletedDays, v))
}

// CompletedDaysLT applies the LT predicate on the "completed_days" field.
func CompletedDaysLT(v int) predicate.Objective {
	return predicate.Objective(sql.FieldLT(FieldCompletedDays, v))
}

// CompletedDaysLTE applies the LTE predicate on the "completed_days" field.
func CompletedDaysLTE(v int) predicate.Objective {
	return predicate.Objective(sql.FieldLTE(FieldCompletedDays, v))
}

// CurrentDifficultyEQ applies the EQ predicate on the "current_difficulty" field.
func CurrentDifficultyEQ(v int) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldCurrentDifficulty, v))
}

// CurrentDifficultyNEQ applies the NEQ predicate on the "current_difficulty" field.
func CurrentDifficultyNEQ(v int) predicate.Objective {
	return predicate.Objective(sql.FieldNEQ(FieldCurrentDifficulty, v))
}

// CurrentDifficultyIn applies the In predicate on the "current_difficulty" field.
func CurrentDifficultyIn(vs ...int) predicate.Objective {
	return predicate.Objective(sql.FieldIn(FieldCurrentDifficulty, vs...))
}

// CurrentDifficultyNotIn applies the NotIn predicate on the "current_difficulty" field.
func CurrentDifficultyNotIn(vs ...int) predicate.Objective {
	return predicate.Objective(sql.FieldNotIn(FieldCurrentDifficulty, vs...))
}

// CurrentDifficultyGT applies the GT predicate on the "current_difficulty" field.
func CurrentDifficultyGT(v int) predicate.Objective {
	return predicate.Objective(sql.FieldGT(FieldCurrentDifficulty, v))
}

// CurrentDifficultyGTE applies the GTE predicate on the "current_difficulty" field.
func CurrentDifficultyGTE(v int) predicate.Objective {
	return predicate.Objective(sql.FieldGTE(FieldCurrentDifficulty, v))
}

// CurrentDifficultyLT applies the LT predicate on the "current_difficulty" field.
func CurrentDifficultyLT(v int) predicate.Objective {
	return predicate.Objective(sql.FieldLT(FieldCurrentDifficulty, v))
}

// CurrentDifficultyLTE applies the LTE predicate on the "current_difficulty" field.
func CurrentDifficultyLTE(v int) predicate.Objective {
	return predicate.Objective(sql.FieldLTE(FieldCurrentDifficulty, v))
}

// LearningVelocityEQ applies the EQ predicate on the "learning_velocity" field.
func LearningVelocityEQ(v float64) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldLearningVelocity, v))
}

// LearningVelocityNEQ applies the NEQ predicate on the "learning_velocity" field.
func LearningVelocityNEQ(v float64) predicate.Objective {
	return predicate.Objective(sql.FieldNEQ(FieldLearningVelocity, v))
}

// LearningVelocityIn applies the In predicate on the "learning_velocity" field.
func LearningVelocityIn(vs ...float64) predicate.Objective {
	return predicate.Objective(sql.FieldIn(FieldLearningVelocity, vs...))
}

// LearningVelocityNotIn applies the NotIn predicate on the "learning_velocity" field.
func LearningVelocityNotIn(vs ...float64) predicate.Objective {
	return predicate.Objective(sql.FieldNotIn(FieldLearningVelocity, vs...))
}

// LearningVelocityGT applies the GT predicate on the "learning_velocity" field.
func LearningVelocityGT(v float64) predicate.Objective {
	return predicate.Objective(sql.FieldGT(FieldLearningVelocity, v))
}

// LearningVelocityGTE applies the GTE predicate on the "learning_velocity" field.
func LearningVelocityGTE(v float64) predicate.Objective {
	return predicate.Objective(sql.FieldGTE(FieldLearningVelocity, v))
}

// LearningVelocityLT applies the LT predicate on the "learning_velocity" field.
func LearningVelocityLT(v float64) predicate.Objective {
	return predicate.Objective(sql.FieldLT(FieldLearningVelocity, v))
}

// LearningVelocityLTE applies the LTE predicate on the "learning_velocity" field.
func LearningVelocityLTE(v float64) predicate.Objective {
	return predicate.Objective(sql.FieldLTE(FieldLearningVelocity, v))
}

// RecalibrationCountEQ applies the EQ predicate on the "recalibration_count" field.
func RecalibrationCountEQ(v int) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldRecalibrationCount, v))
}

// RecalibrationCountNEQ applies the NEQ predicate on the "recalibration_count" field.
func RecalibrationCountNEQ(v int) predicate.Objective {
	return predicate.Objective(sql.FieldNEQ(FieldRecalibrationCount, v))
}

// RecalibrationCountIn applies the In predicate on the "recalibration_count" field.
func RecalibrationCountIn(vs ...int) predicate.Objective {
	return predicate.Objective(sql.FieldIn(FieldRecalibrationCount, vs...))
}

// RecalibrationCountNotIn applies the NotIn predicate on the "recalibration_count" field.
func RecalibrationCountNotIn(vs ...int) predicate.Objective {
	return predicate.Objective(sql.FieldNotIn(FieldRecalibrationCount, vs...))
}

// RecalibrationCountGT applies the GT predicate on the "recalibration_count" field.
func RecalibrationCountGT(v int) predicate.Objective {
	return predicate.Objective(sql.FieldGT(FieldRecalibrationCount, v))
}

// RecalibrationCountGTE applies the GTE predicate on the "recalibration_count" field.
func RecalibrationCountGTE(v int) predicate.Objective {
	return predicate.Objective(sql.FieldGTE(FieldRecalibrationCount, v))
}

// RecalibrationCountLT applies the LT predicate on the "recalibration_count" field.
func RecalibrationCountLT(v int) predicate.Objective {
	return predicate.Objective(sql.FieldLT(FieldRecalibrationCount, v))
}

// RecalibrationCountLTE applies the LTE predicate on the "recalibration_count" field.
func RecalibrationCountLTE(v int) predicate.Objective {
	return predicate.Objective(sql.FieldLTE(FieldRecalibrationCount, v))
}

// CurrentStreakEQ applies the EQ predicate on the "current_streak" field.
func CurrentStreakEQ(v int) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldCurrentStreak, v))
}

// CurrentStreakNEQ applies the NEQ predicate on the "current_streak" field.
func CurrentStreakNEQ(v int) predicate.Objective {
	return predicate.Objective(sql.FieldNEQ(FieldCurrentStreak, v))
}

// CurrentStreakIn applies the In predicate on the "current_streak" field.
func CurrentStreakIn(vs ...int) predicate.Objective {
	return predicate.Objective(sql.FieldIn(FieldCurrentStreak, vs...))
}

// CurrentStreakNotIn applies the NotIn predicate on the "current_streak" field.
func CurrentStreakNotIn(vs ...int) predicate.Objective {
	return predicate.Objective(sql.FieldNotIn(FieldCurrentStreak, vs...))
}

// CurrentStreakGT applies the GT predicate on the "current_streak" field.
func CurrentStreakGT(v int) predicate.Objective {
	return predicate.Objective(sql.FieldGT(FieldCurrentStreak, v))
}

// CurrentStreakGTE applies the GTE predicate on the "current_streak" field.
func CurrentStreakGTE(v int) predicate.Objective {
	return predicate.Objective(sql.FieldGTE(FieldCurrentStreak, v))
}

// CurrentStreakLT applies the LT predicate on the "current_streak" field.
func CurrentStreakLT(v int) predicate.Objective {
	return predicate.Objective(sql.FieldLT(FieldCurrentStreak, v))
}

// CurrentStreakLTE applies the LTE predicate on the "current_streak" field.
func CurrentStreakLTE(v int) predicate.Objective {
	return predicate.Objective(sql.FieldLTE(FieldCurrentStreak, v))
}

// LongestStreakEQ applies the EQ predicate on the "longest_streak" field.
func LongestStreakEQ(v int) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldLongestStreak, v))
}

// LongestStreakNEQ applies the NEQ predicate on the "longest_streak" field.
func LongestStreakNEQ(v int) predicate.Objective {
	return predicate.Objective(sql.FieldNEQ(FieldLongestStreak, v))
}

// LongestStreakIn applies the In predicate on the "longest_streak" field.
func LongestStreakIn(vs ...int) predicate.Objective {
	return predicate.Objective(sql.FieldIn(FieldLongestStreak, vs...))
}

// LongestStreakNotIn applies the NotIn predicate on the "longest_streak" field.
func LongestStreakNotIn(vs ...int) predicate.Objective {
	return predicate.Objective(sql.FieldNotIn(FieldLongestStreak, vs...))
}

// LongestStreakGT applies the GT predicate on the "longest_streak" field.
func LongestStreakGT(v int) predicate.Objective {
	return predicate.Objective(sql.FieldGT(FieldLongestStreak, v))
}

// LongestStreakGTE applies the GTE predicate on the "longest_streak" field.
func LongestStreakGTE(v int) predicate.Objective {
	return predicate.Objective(sql.FieldGTE(FieldLongestStreak, v))
}

// LongestStreakLT applies the LT predicate on the "longest_streak" field.
func LongestStreakLT(v int) predicate.Objective {
	return predicate.Objective(sql.FieldLT(FieldLongestStreak, v))
}

// LongestStreakLTE applies the LTE predicate on the "longest_streak" field.
func LongestStreakLTE(v int) predicate.Objective {
	return predicate.Objective(sql.FieldLTE(FieldLongestStreak, v))
}

// LastCompletedAtEQ applies the EQ predicate on the "last_completed_at" field.
func LastCompletedAtEQ(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldLastCompletedAt, v))
}

// LastCompletedAtNEQ applies the NEQ predicate on the "last_completed_at" field.
func LastCompletedAtNEQ(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldNEQ(FieldLastCompletedAt, v))
}

// LastCompletedAtIn applies the In predicate on the "last_completed_at" field.
func LastCompletedAtIn(vs ...time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldIn(FieldLastCompletedAt, vs...))
}

// LastCompletedAtNotIn applies the NotIn predicate on the "last_completed_at" field.
func LastCompletedAtNotIn(vs ...time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldNotIn(FieldLastCompletedAt, vs...))
}

// LastCompletedAtGT applies the GT predicate on the "last_completed_at" field.
func LastCompletedAtGT(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldGT(FieldLastCompletedAt, v))
}

// LastCompletedAtGTE applies the GTE predicate on the "last_completed_at" field.
func LastCompletedAtGTE(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldGTE(FieldLastCompletedAt, v))
}

// LastCompletedAtLT applies the LT predicate on the "last_completed_at" field.
func LastCompletedAtLT(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldLT(FieldLastCompletedAt, v))
}

// LastCompletedAtLTE applies the LTE predicate on the "last_completed_at" field.
func LastCompletedAtLTE(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldLTE(FieldLastCompletedAt, v))
}

// LastCompletedAtIsNil applies the IsNil predicate on the "last_completed_at" field.
func LastCompletedAtIsNil() predicate.Objective {
	return predicate.Objective(sql.FieldIsNull(FieldLastCompletedAt))
}

// LastCompletedAtNotNil applies the NotNil predicate on the "last_completed_at" field.
func LastCompletedAtNotNil() predicate.Objective {
	return predicate.Objective(sql.FieldNotNull(FieldLastCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Objective {
	return predicate.Objective(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Objective) predicate.Objective {
	return predicate.Objective(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Objective) predicate.Objective {
	return predicate.Objective(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Objective) predicate.Objective {
	return predicate.Objective(sql.NotPredicates(p))
}
