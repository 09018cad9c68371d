// Code generated by ent, DO NOT EDIT.

package sprint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Sprint {
	return predicate.Sprint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Sprint {
	return predicate.Sprint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Sprint {
	return predicate.Sprint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Sprint {
	return predicate.Sprint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Sprint {
	return predicate.Sprint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Sprint {
	return predicate.Sprint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Sprint {
	return predicate.Sprint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Sprint {
	return predicate.Sprint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Sprint {
	return predicate.Sprint(sql.FieldContainsFold(FieldID, id))
}

// ObjectiveID applies equality check predicate on the "objective_id" field. It's identical to ObjectiveIDEQ.
func ObjectiveID(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldObjectiveID, v))
}

// DayNumber applies equality check predicate on the "day_number" field. It's identical to DayNumberEQ.
func DayNumber(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldDayNumber, v))
}

// LengthDays applies equality check predicate on the "length_days" field. It's identical to LengthDaysEQ.
func LengthDays(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldLengthDays, v))
}

// TotalEstimatedHours applies equality check predicate on the "total_estimated_hours" field. It's identical to TotalEstimatedHoursEQ.
func TotalEstimatedHours(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldTotalEstimatedHours, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldDifficulty, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletionPercentage applies equality check predicate on the "completion_percentage" field. It's identical to CompletionPercentageEQ.
func CompletionPercentage(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldCompletionPercentage, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldScore, v))
}

// ReviewerSummary applies equality check predicate on the "reviewer_summary" field. It's identical to ReviewerSummaryEQ.
func ReviewerSummary(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldReviewerSummary, v))
}

// SelfEvaluationConfidence applies equality check predicate on the "self_evaluation_confidence" field. It's identical to SelfEvaluationConfidenceEQ.
func SelfEvaluationConfidence(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldSelfEvaluationConfidence, v))
}

// SelfEvaluationReflection applies equality check predicate on the "self_evaluation_reflection" field. It's identical to SelfEvaluationReflectionEQ.
func SelfEvaluationReflection(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldSelfEvaluationReflection, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldUpdatedAt, v))
}

// ObjectiveIDEQ applies the EQ predicate on the "objective_id" field.
func ObjectiveIDEQ(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldObjectiveID, v))
}

// ObjectiveIDNEQ applies the NEQ predicate on the "objective_id" field.
func ObjectiveIDNEQ(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldNEQ(FieldObjectiveID, v))
}

// ObjectiveIDIn applies the In predicate on the "objective_id" field.
func ObjectiveIDIn(vs ...string) predicate.Sprint {
	return predicate.Sprint(sql.FieldIn(FieldObjectiveID, vs...))
}

// ObjectiveIDNotIn applies the NotIn predicate on the "objective_id" field.
func ObjectiveIDNotIn(vs ...string) predicate.Sprint {
	return predicate.Sprint(sql.FieldNotIn(FieldObjectiveID, vs...))
}

// ObjectiveIDGT applies the GT predicate on the "objective_id" field.
func ObjectiveIDGT(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldGT(FieldObjectiveID, v))
}

// ObjectiveIDGTE applies the GTE predicate on the "objective_id" field.
func ObjectiveIDGTE(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldGTE(FieldObjectiveID, v))
}

// ObjectiveIDLT applies the LT predicate on the "objective_id" field.
func ObjectiveIDLT(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldLT(FieldObjectiveID, v))
}

// ObjectiveIDLTE applies the LTE predicate on the "objective_id" field.
func ObjectiveIDLTE(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldLTE(FieldObjectiveID, v))
}

// ObjectiveIDContains applies the Contains predicate on the "objective_id" field.
func ObjectiveIDContains(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldContains(FieldObjectiveID, v))
}

// ObjectiveIDHasPrefix applies the HasPrefix predicate on the "objective_id" field.
func ObjectiveIDHasPrefix(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldHasPrefix(FieldObjectiveID, v))
}

// ObjectiveIDHasSuffix applies the HasSuffix predicate on the "objective_id" field.
func ObjectiveIDHasSuffix(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldHasSuffix(FieldObjectiveID, v))
}

// ObjectiveIDEqualFold applies the EqualFold predicate on the "objective_id" field.
func ObjectiveIDEqualFold(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldEqualFold(FieldObjectiveID, v))
}

// ObjectiveIDContainsFold applies the ContainsFold predicate on the "objective_id" field.
func ObjectiveIDContainsFold(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldContainsFold(FieldObjectiveID, v))
}

// DayNumberEQ applies the EQ predicate on the "day_number" field.
func DayNumberEQ(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldDayNumber, v))
}

// DayNumberNEQ applies the NEQ predicate on the "day_number" field.
func DayNumberNEQ(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldNEQ(FieldDayNumber, v))
}

// DayNumberIn applies the In predicate on the "day_number" field.
func DayNumberIn(vs ...int) predicate.Sprint {
	return predicate.Sprint(sql.FieldIn(FieldDayNumber, vs...))
}

// DayNumberNotIn applies the NotIn predicate on the "day_number" field.
func DayNumberNotIn(vs ...int) predicate.Sprint {
	return predicate.Sprint(sql.FieldNotIn(FieldDayNumber, vs...))
}

// DayNumberGT applies the GT predicate on the "day_number" field.
func DayNumberGT(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldGT(FieldDayNumber, v))
}

// DayNumberGTE applies the GTE predicate on the "day_number" field.
func DayNumberGTE(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldGTE(FieldDayNumber, v))
}

// DayNumberLT applies the LT predicate on the "day_number" field.
func DayNumberLT(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldLT(FieldDayNumber, v))
}

// DayNumberLTE applies the LTE predicate on the "day_number" field.
func DayNumberLTE(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldLTE(FieldDayNumber, v))
}

// LengthDaysEQ applies the EQ predicate on the "length_days" field.
func LengthDaysEQ(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldLengthDays, v))
}

// LengthDaysNEQ applies the NEQ predicate on the "length_days" field.
func LengthDaysNEQ(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldNEQ(FieldLengthDays, v))
}

// LengthDaysIn applies the In predicate on the "length_days" field.
func LengthDaysIn(vs ...int) predicate.Sprint {
	return predicate.Sprint(sql.FieldIn(FieldLengthDays, vs...))
}

// LengthDaysNotIn applies the NotIn predicate on the "length_days" field.
func LengthDaysNotIn(vs ...int) predicate.Sprint {
	return predicate.Sprint(sql.FieldNotIn(FieldLengthDays, vs...))
}

// LengthDaysGT applies the GT predicate on the "length_days" field.
func LengthDaysGT(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldGT(FieldLengthDays, v))
}

// LengthDaysGTE applies the GTE predicate on the "length_days" field.
func LengthDaysGTE(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldGTE(FieldLengthDays, v))
}

// LengthDaysLT applies the LT predicate on the "length_days" field.
func LengthDaysLT(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldLT(FieldLengthDays, v))
}

// LengthDaysLTE applies the LTE predicate on the "length_days" field.
func LengthDaysLTE(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldLTE(FieldLengthDays, v))
}

// TotalEstimatedHoursEQ applies the EQ predicate on the "total_estimated_hours" field.
func TotalEstimatedHoursEQ(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldTotalEstimatedHours, v))
}

// TotalEstimatedHoursNEQ applies the NEQ predicate on the "total_estimated_hours" field.
func TotalEstimatedHoursNEQ(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldNEQ(FieldTotalEstimatedHours, v))
}

// TotalEstimatedHoursIn applies the In predicate on the "total_estimated_hours" field.
func TotalEstimatedHoursIn(vs ...float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldIn(FieldTotalEstimatedHours, vs...))
}

// TotalEstimatedHoursNotIn applies the NotIn predicate on the "total_estimated_hours" field.
func TotalEstimatedHoursNotIn(vs ...float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldNotIn(FieldTotalEstimatedHours, vs...))
}

// TotalEstimatedHoursGT applies the GT predicate on the "total_estimated_hours" field.
func TotalEstimatedHoursGT(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldGT(FieldTotalEstimatedHours, v))
}

// TotalEstimatedHoursGTE applies the GTE predicate on the "total_estimated_hours" field.
func TotalEstimatedHoursGTE(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldGTE(FieldTotalEstimatedHours, v))
}

// TotalEstimatedHoursLT applies the LT predicate on the "total_estimated_hours" field.
func TotalEstimatedHoursLT(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldLT(FieldTotalEstimatedHours, v))
}

// TotalEstimatedHoursLTE applies the LTE predicate on the "total_estimated_hours" field.
func TotalEstimatedHoursLTE(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldLTE(FieldTotalEstimatedHours, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Sprint {
	return predicate.Sprint(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Sprint {
	return predicate.Sprint(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldContainsFold(FieldDifficulty, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Sprint {
	return predicate.Sprint(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Sprint {
	return predicate.Sprint(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Sprint {
	return predicate.Sprint(sql.FieldNotIn(FieldStatus, vs...))
}

// PlannerInputIsNil applies the IsNil predicate on the "planner_input" field.
func PlannerInputIsNil() predicate.Sprint {
	return predicate.Sprint(sql.FieldIsNull(FieldPlannerInput))
}

// PlannerInputNotNil applies the NotNil predicate on the "planner_input" field.
func PlannerInputNotNil() predicate.Sprint {
	return predicate.Sprint(sql.FieldNotNull(FieldPlannerInput))
}

// PlannerOutputIsNil applies the IsNil predicate on the "planner_output" field.
func PlannerOutputIsNil() predicate.Sprint {
	return predicate.Sprint(sql.FieldIsNull(FieldPlannerOutput))
}

// PlannerOutputNotNil applies the NotNil predicate on the "planner_output" field.
func PlannerOutputNotNil() predicate.Sprint {
	return predicate.Sprint(sql.FieldNotNull(FieldPlannerOutput))
}

// AdaptiveMetadataIsNil applies the IsNil predicate on the "adaptive_metadata" field.
func AdaptiveMetadataIsNil() predicate.Sprint {
	return predicate.Sprint(sql.FieldIsNull(FieldAdaptiveMetadata))
}

// AdaptiveMetadataNotNil applies the NotNil predicate on the "adaptive_metadata" field.
func AdaptiveMetadataNotNil() predicate.Sprint {
	return predicate.Sprint(sql.FieldNotNull(FieldAdaptiveMetadata))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Sprint {
	return predicate.Sprint(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Sprint {
	return predicate.Sprint(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Sprint {
	return predicate.Sprint(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Sprint {
	return predicate.Sprint(sql.FieldNotNull(FieldCompletedAt))
}

// CompletionPercentageEQ applies the EQ predicate on the "completion_percentage" field.
func CompletionPercentageEQ(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldCompletionPercentage, v))
}

// CompletionPercentageNEQ applies the NEQ predicate on the "completion_percentage" field.
func CompletionPercentageNEQ(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldNEQ(FieldCompletionPercentage, v))
}

// CompletionPercentageIn applies the In predicate on the "completion_percentage" field.
func CompletionPercentageIn(vs ...float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldIn(FieldCompletionPercentage, vs...))
}

// CompletionPercentageNotIn applies the NotIn predicate on the "completion_percentage" field.
func CompletionPercentageNotIn(vs ...float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldNotIn(FieldCompletionPercentage, vs...))
}

// CompletionPercentageGT applies the GT predicate on the "completion_percentage" field.
func CompletionPercentageGT(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldGT(FieldCompletionPercentage, v))
}

// CompletionPercentageGTE applies the GTE predicate on the "completion_percentage" field.
func CompletionPercentageGTE(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldGTE(FieldCompletionPercentage, v))
}

// CompletionPercentageLT applies the LT predicate on the "completion_percentage" field.
func CompletionPercentageLT(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldLT(FieldCompletionPercentage, v))
}

// CompletionPercentageLTE applies the LTE predicate on the "completion_percentage" field.
func CompletionPercentageLTE(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldLTE(FieldCompletionPercentage, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.Sprint {
	return predicate.Sprint(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.Sprint {
	return predicate.Sprint(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.Sprint {
	return predicate.Sprint(sql.FieldNotNull(FieldScore))
}

// ReviewerSummaryEQ applies the EQ predicate on the "reviewer_summary" field.
func ReviewerSummaryEQ(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldReviewerSummary, v))
}

// ReviewerSummaryNEQ applies the NEQ predicate on the "reviewer_summary" field.
func ReviewerSummaryNEQ(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldNEQ(FieldReviewerSummary, v))
}

// ReviewerSummaryIn applies the In predicate on the "reviewer_summary" field.
func ReviewerSummaryIn(vs ...string) predicate.Sprint {
	return predicate.Sprint(sql.FieldIn(FieldReviewerSummary, vs...))
}

// ReviewerSummaryNotIn applies the NotIn predicate on the "reviewer_summary" field.
func ReviewerSummaryNotIn(vs ...string) predicate.Sprint {
	return predicate.Sprint(sql.FieldNotIn(FieldReviewerSummary, vs...))
}

// ReviewerSummaryGT applies the GT predicate on the "reviewer_summary" field.
func ReviewerSummaryGT(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldGT(FieldReviewerSummary, v))
}

// ReviewerSummaryGTE applies the GTE predicate on the "reviewer_summary" field.
func ReviewerSummaryGTE(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldGTE(FieldReviewerSummary, v))
}

// ReviewerSummaryLT applies the LT predicate on the "reviewer_summary" field.
func ReviewerSummaryLT(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldLT(FieldReviewerSummary, v))
}

// ReviewerSummaryLTE applies the LTE predicate on the "reviewer_summary" field.
func ReviewerSummaryLTE(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldLTE(FieldReviewerSummary, v))
}

// ReviewerSummaryContains applies the Contains predicate on the "reviewer_summary" field.
func ReviewerSummaryContains(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldContains(FieldReviewerSummary, v))
}

// ReviewerSummaryHasPrefix applies the HasPrefix predicate on the "reviewer_summary" field.
func ReviewerSummaryHasPrefix(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldHasPrefix(FieldReviewerSummary, v))
}

// ReviewerSummaryHasSuffix applies the HasSuffix predicate on the "reviewer_summary" field.
func ReviewerSummaryHasSuffix(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldHasSuffix(FieldReviewerSummary, v))
}

// ReviewerSummaryEqualFold applies the EqualFold predicate on the "reviewer_summary" field.
func ReviewerSummaryEqualFold(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldEqualFold(FieldReviewerSummary, v))
}

// ReviewerSummaryContainsFold applies the ContainsFold predicate on the "reviewer_summary" field.
func ReviewerSummaryContainsFold(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldContainsFold(FieldReviewerSummary, v))
}

// SelfEvaluationConfidenceEQ applies the EQ predicate on the "self_evaluation_confidence" field.
func SelfEvaluationConfidenceEQ(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldSelfEvaluationConfidence, v))
}

// SelfEvaluationConfidenceNEQ applies the NEQ predicate on the "self_evaluation_confidence" field.
func SelfEvaluationConfidenceNEQ(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldNEQ(FieldSelfEvaluationConfidence, v))
}

// SelfEvaluationConfidenceIn applies the In predicate on the "self_evaluation_confidence" field.
func SelfEvaluationConfidenceIn(vs ...int) predicate.Sprint {
	return predicate.Sprint(sql.FieldIn(FieldSelfEvaluationConfidence, vs...))
}

// SelfEvaluationConfidenceNotIn applies the NotIn predicate on the "self_evaluation_confidence" field.
func SelfEvaluationConfidenceNotIn(vs ...int) predicate.Sprint {
	return predicate.Sprint(sql.FieldNotIn(FieldSelfEvaluationConfidence, vs...))
}

// SelfEvaluationConfidenceGT applies the GT predicate on the "self_evaluation_confidence" field.
func SelfEvaluationConfidenceGT(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldGT(FieldSelfEvaluationConfidence, v))
}

// SelfEvaluationConfidenceGTE applies the GTE predicate on the "self_evaluation_confidence" field.
func SelfEvaluationConfidenceGTE(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldGTE(FieldSelfEvaluationConfidence, v))
}

// SelfEvaluationConfidenceLT applies the LT predicate on the "self_evaluation_confidence" field.
func SelfEvaluationConfidenceLT(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldLT(FieldSelfEvaluationConfidence, v))
}

// SelfEvaluationConfidenceLTE applies the LTE predicate on the "self_evaluation_confidence" field.
func SelfEvaluationConfidenceLTE(v int) predicate.Sprint {
	return predicate.Sprint(sql.FieldLTE(FieldSelfEvaluationConfidence, v))
}

// SelfEvaluationConfidenceIsNil applies the IsNil predicate on the "self_evaluation_confidence" field.
func SelfEvaluationConfidenceIsNil() predicate.Sprint {
	return predicate.Sprint(sql.FieldIsNull(FieldSelfEvaluationConfidence))
}

// SelfEvaluationConfidenceNotNil applies the NotNil predicate on the "self_evaluation_confidence" field.
func SelfEvaluationConfidenceNotNil() predicate.Sprint {
	return predicate.Sprint(sql.FieldNotNull(FieldSelfEvaluationConfidence))
}

// SelfEvaluationReflectionEQ applies the EQ predicate on the "self_evaluation_reflection" field.
func SelfEvaluationReflectionEQ(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldSelfEvaluationReflection, v))
}

// SelfEvaluationReflectionNEQ applies the NEQ predicate on the "self_evaluation_reflection" field.
func SelfEvaluationReflectionNEQ(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldNEQ(FieldSelfEvaluationReflection, v))
}

// SelfEvaluationReflectionIn applies the In predicate on the "self_evaluation_reflection" field.
func SelfEvaluationReflectionIn(vs ...string) predicate.Sprint {
	return predicate.Sprint(sql.FieldIn(FieldSelfEvaluationReflection, vs...))
}

// SelfEvaluationReflectionNotIn applies the NotIn predicate on the "self_evaluation_reflection" field.
func SelfEvaluationReflectionNotIn(vs ...string) predicate.Sprint {
	return predicate.Sprint(sql.FieldNotIn(FieldSelfEvaluationReflection, vs...))
}

// SelfEvaluationReflectionGT applies the GT predicate on the "self_evaluation_reflection" field.
func SelfEvaluationReflectionGT(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldGT(FieldSelfEvaluationReflection, v))
}

// SelfEvaluationReflectionGTE applies the GTE predicate on the "self_evaluation_reflection" field.
func SelfEvaluationReflectionGTE(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldGTE(FieldSelfEvaluationReflection, v))
}

// SelfEvaluationReflectionLT applies the LT predicate on the "self_evaluation_reflection" field.
func SelfEvaluationReflectionLT(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldLT(FieldSelfEvaluationReflection, v))
}

// SelfEvaluationReflectionLTE applies the LTE predicate on the "self_evaluation_reflection" field.
func SelfEvaluationReflectionLTE(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldLTE(FieldSelfEvaluationReflection, v))
}

// SelfEvaluationReflectionContains applies the Contains predicate on the "self_evaluation_reflection" field.
func SelfEvaluationReflectionContains(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldContains(FieldSelfEvaluationReflection, v))
}

// SelfEvaluationReflectionHasPrefix applies the HasPrefix predicate on the "self_evaluation_reflection" field.
func SelfEvaluationReflectionHasPrefix(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldHasPrefix(FieldSelfEvaluationReflection, v))
}

// SelfEvaluationReflectionHasSuffix applies the HasSuffix predicate on the "self_evaluation_reflection" field.
func SelfEvaluationReflectionHasSuffix(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldHasSuffix(FieldSelfEvaluationReflection, v))
}

// SelfEvaluationReflectionEqualFold applies the EqualFold predicate on the "self_evaluation_reflection" field.
func SelfEvaluationReflectionEqualFold(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldEqualFold(FieldSelfEvaluationReflection, v))
}

// SelfEvaluationReflectionContainsFold applies the ContainsFold predicate on the "self_evaluation_reflection" field.
func SelfEvaluationReflectionContainsFold(v string) predicate.Sprint {
	return predicate.Sprint(sql.FieldContainsFold(FieldSelfEvaluationReflection, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Sprint {
	return predicate.Sprint(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Sprint) predicate.Sprint {
	return predicate.Sprint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Sprint) predicate.Sprint {
	return predicate.Sprint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Sprint) predicate.Sprint {
	return predicate.Sprint(sql.NotPredicates(p))
}
