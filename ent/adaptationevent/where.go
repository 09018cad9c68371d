// Code generated by ent, DO NOT EDIT.

package adaptationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ObjectiveID applies equality check predicate on the "objective_id" field. It's identical to ObjectiveIDEQ.
func ObjectiveID(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldObjectiveID, v))
}

// AdjustmentType applies equality check predicate on the "adjustment_type" field. It's identical to AdjustmentTypeEQ.
func AdjustmentType(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldAdjustmentType, v))
}

// PreviousDifficulty applies equality check predicate on the "previous_difficulty" field. It's identical to PreviousDifficultyEQ.
func PreviousDifficulty(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldPreviousDifficulty, v))
}

// NewDifficulty applies equality check predicate on the "new_difficulty" field. It's identical to NewDifficultyEQ.
func NewDifficulty(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldNewDifficulty, v))
}

// PreviousVelocity applies equality check predicate on the "previous_velocity" field. It's identical to PreviousVelocityEQ.
func PreviousVelocity(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldPreviousVelocity, v))
}

// NewVelocity applies equality check predicate on the "new_velocity" field. It's identical to NewVelocityEQ.
func NewVelocity(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldNewVelocity, v))
}

// PreviousEstimatedDays applies equality check predicate on the "previous_estimated_days" field. It's identical to PreviousEstimatedDaysEQ.
func PreviousEstimatedDays(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldPreviousEstimatedDays, v))
}

// NewEstimatedDays applies equality check predicate on the "new_estimated_days" field. It's identical to NewEstimatedDaysEQ.
func NewEstimatedDays(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldNewEstimatedDays, v))
}

// AverageScore applies equality check predicate on the "average_score" field. It's identical to AverageScoreEQ.
func AverageScore(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldAverageScore, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldReason, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSource, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ObjectiveIDEQ applies the EQ predicate on the "objective_id" field.
func ObjectiveIDEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldObjectiveID, v))
}

// ObjectiveIDNEQ applies the NEQ predicate on the "objective_id" field.
func ObjectiveIDNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldObjectiveID, v))
}

// ObjectiveIDIn applies the In predicate on the "objective_id" field.
func ObjectiveIDIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldObjectiveID, vs...))
}

// ObjectiveIDNotIn applies the NotIn predicate on the "objective_id" field.
func ObjectiveIDNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldObjectiveID, vs...))
}

// ObjectiveIDGT applies the GT predicate on the "objective_id" field.
func ObjectiveIDGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldObjectiveID, v))
}

// ObjectiveIDGTE applies the GTE predicate on the "objective_id" field.
func ObjectiveIDGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldObjectiveID, v))
}

// ObjectiveIDLT applies the LT predicate on the "objective_id" field.
func ObjectiveIDLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldObjectiveID, v))
}

// ObjectiveIDLTE applies the LTE predicate on the "objective_id" field.
func ObjectiveIDLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldObjectiveID, v))
}

// ObjectiveIDContains applies the Contains predicate on the "objective_id" field.
func ObjectiveIDContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldObjectiveID, v))
}

// ObjectiveIDHasPrefix applies the HasPrefix predicate on the "objective_id" field.
func ObjectiveIDHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldObjectiveID, v))
}

// ObjectiveIDHasSuffix applies the HasSuffix predicate on the "objective_id" field.
func ObjectiveIDHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldObjectiveID, v))
}

// ObjectiveIDEqualFold applies the EqualFold predicate on the "objective_id" field.
func ObjectiveIDEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldObjectiveID, v))
}

// ObjectiveIDContainsFold applies the ContainsFold predicate on the "objective_id" field.
func ObjectiveIDContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldObjectiveID, v))
}

// AdjustmentTypeEQ applies the EQ predicate on the "adjustment_type" field.
func AdjustmentTypeEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldAdjustmentType, v))
}

// AdjustmentTypeNEQ applies the NEQ predicate on the "adjustment_type" field.
func AdjustmentTypeNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldAdjustmentType, v))
}

// AdjustmentTypeIn applies the In predicate on the "adjustment_type" field.
func AdjustmentTypeIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldAdjustmentType, vs...))
}

// AdjustmentTypeNotIn applies the NotIn predicate on the "adjustment_type" field.
func AdjustmentTypeNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldAdjustmentType, vs...))
}

// AdjustmentTypeGT applies the GT predicate on the "adjustment_type" field.
func AdjustmentTypeGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldAdjustmentType, v))
}

// AdjustmentTypeGTE applies the GTE predicate on the "adjustment_type" field.
func AdjustmentTypeGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldAdjustmentType, v))
}

// AdjustmentTypeLT applies the LT predicate on the "adjustment_type" field.
func AdjustmentTypeLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldAdjustmentType, v))
}

// AdjustmentTypeLTE applies the LTE predicate on the "adjustment_type" field.
func AdjustmentTypeLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldAdjustmentType, v))
}

// AdjustmentTypeContains applies the Contains predicate on the "adjustment_type" field.
func AdjustmentTypeContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldAdjustmentType, v))
}

// AdjustmentTypeHasPrefix applies the HasPrefix predicate on the "adjustment_type" field.
func AdjustmentTypeHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldAdjustmentType, v))
}

// AdjustmentTypeHasSuffix applies the HasSuffix predicate on the "adjustment_type" field.
func AdjustmentTypeHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldAdjustmentType, v))
}

// AdjustmentTypeEqualFold applies the EqualFold predicate on the "adjustment_type" field.
func AdjustmentTypeEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldAdjustmentType, v))
}

// AdjustmentTypeContainsFold applies the ContainsFold predicate on the "adjustment_type" field.
func AdjustmentTypeContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldAdjustmentType, v))
}

// PreviousDifficultyEQ applies the EQ predicate on the "previous_difficulty" field.
func PreviousDifficultyEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldPreviousDifficulty, v))
}

// PreviousDifficultyNEQ applies the NEQ predicate on the "previous_difficulty" field.
func PreviousDifficultyNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldPreviousDifficulty, v))
}

// PreviousDifficultyIn applies the In predicate on the "previous_difficulty" field.
func PreviousDifficultyIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldPreviousDifficulty, vs...))
}

// PreviousDifficultyNotIn applies the NotIn predicate on the "previous_difficulty" field.
func PreviousDifficultyNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldPreviousDifficulty, vs...))
}

// PreviousDifficultyGT applies the GT predicate on the "previous_difficulty" field.
func PreviousDifficultyGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldPreviousDifficulty, v))
}

// PreviousDifficultyGTE applies the GTE predicate on the "previous_difficulty" field.
func PreviousDifficultyGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldPreviousDifficulty, v))
}

// PreviousDifficultyLT applies the LT predicate on the "previous_difficulty" field.
func PreviousDifficultyLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldPreviousDifficulty, v))
}

// PreviousDifficultyLTE applies the LTE predicate on the "previous_difficulty" field.
func PreviousDifficultyLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldPreviousDifficulty, v))
}

// NewDifficultyEQ applies the EQ predicate on the "new_difficulty" field.
func NewDifficultyEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldNewDifficulty, v))
}

// NewDifficultyNEQ applies the NEQ predicate on the "new_difficulty" field.
func NewDifficultyNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldNewDifficulty, v))
}

// NewDifficultyIn applies the In predicate on the "new_difficulty" field.
func NewDifficultyIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldNewDifficulty, vs...))
}

// NewDifficultyNotIn applies the NotIn predicate on the "new_difficulty" field.
func NewDifficultyNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldNewDifficulty, vs...))
}

// NewDifficultyGT applies the GT predicate on the "new_difficulty" field.
func NewDifficultyGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldNewDifficulty, v))
}

// NewDifficultyGTE applies the GTE predicate on the "new_difficulty" field.
func NewDifficultyGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldNewDifficulty, v))
}

// NewDifficultyLT applies the LT predicate on the "new_difficulty" field.
func NewDifficultyLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldNewDifficulty, v))
}

// NewDifficultyLTE applies the LTE predicate on the "new_difficulty" field.
func NewDifficultyLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldNewDifficulty, v))
}

// PreviousVelocityEQ applies the EQ predicate on the "previous_velocity" field.
func PreviousVelocityEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldPreviousVelocity, v))
}

// PreviousVelocityNEQ applies the NEQ predicate on the "previous_velocity" field.
func PreviousVelocityNEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldPreviousVelocity, v))
}

// PreviousVelocityIn applies the In predicate on the "previous_velocity" field.
func PreviousVelocityIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldPreviousVelocity, vs...))
}

// PreviousVelocityNotIn applies the NotIn predicate on the "previous_velocity" field.
func PreviousVelocityNotIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldPreviousVelocity, vs...))
}

// PreviousVelocityGT applies the GT predicate on the "previous_velocity" field.
func PreviousVelocityGT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldPreviousVelocity, v))
}

// PreviousVelocityGTE applies the GTE predicate on the "previous_velocity" field.
func PreviousVelocityGTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldPreviousVelocity, v))
}

// PreviousVelocityLT applies the LT predicate on the "previous_velocity" field.
func PreviousVelocityLT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldPreviousVelocity, v))
}

// PreviousVelocityLTE applies the LTE predicate on the "previous_velocity" field.
func PreviousVelocityLTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldPreviousVelocity, v))
}

// NewVelocityEQ applies the EQ predicate on the "new_velocity" field.
func NewVelocityEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldNewVelocity, v))
}

// NewVelocityNEQ applies the NEQ predicate on the "new_velocity" field.
func NewVelocityNEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldNewVelocity, v))
}

// NewVelocityIn applies the In predicate on the "new_velocity" field.
func NewVelocityIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldNewVelocity, vs...))
}

// NewVelocityNotIn applies the NotIn predicate on the "new_velocity" field.
func NewVelocityNotIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldNewVelocity, vs...))
}

// NewVelocityGT applies the GT predicate on the "new_velocity" field.
func NewVelocityGT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldNewVelocity, v))
}

// NewVelocityGTE applies the GTE predicate on the "new_velocity" field.
func NewVelocityGTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldNewVelocity, v))
}

// NewVelocityLT applies the LT predicate on the "new_velocity" field.
func NewVelocityLT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldNewVelocity, v))
}

// NewVelocityLTE applies the LTE predicate on the "new_velocity" field.
func NewVelocityLTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldNewVelocity, v))
}

// PreviousEstimatedDaysEQ applies the EQ predicate on the "previous_estimated_days" field.
func PreviousEstimatedDaysEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldPreviousEstimatedDays, v))
}

// PreviousEstimatedDaysNEQ applies the NEQ predicate on the "previous_estimated_days" field.
func PreviousEstimatedDaysNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldPreviousEstimatedDays, v))
}

// PreviousEstimatedDaysIn applies the In predicate on the "previous_estimated_days" field.
func PreviousEstimatedDaysIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldPreviousEstimatedDays, vs...))
}

// PreviousEstimatedDaysNotIn applies the NotIn predicate on the "previous_estimated_days" field.
func PreviousEstimatedDaysNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldPreviousEstimatedDays, vs...))
}

// PreviousEstimatedDaysGT applies the GT predicate on the "previous_estimated_days" field.
func PreviousEstimatedDaysGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldPreviousEstimatedDays, v))
}

// PreviousEstimatedDaysGTE applies the GTE predicate on the "previous_estimated_days" field.
func PreviousEstimatedDaysGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldPreviousEstimatedDays, v))
}

// PreviousEstimatedDaysLT applies the LT predicate on the "previous_estimated_days" field.
func PreviousEstimatedDaysLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldPreviousEstimatedDays, v))
}

// PreviousEstimatedDaysLTE applies the LTE predicate on the "previous_estimated_days" field.
func PreviousEstimatedDaysLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldPreviousEstimatedDays, v))
}

// NewEstimatedDaysEQ applies the EQ predicate on the "new_estimated_days" field.
func NewEstimatedDaysEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldNewEstimatedDays, v))
}

// NewEstimatedDaysNEQ applies the NEQ predicate on the "new_estimated_days" field.
func NewEstimatedDaysNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldNewEstimatedDays, v))
}

// NewEstimatedDaysIn applies the In predicate on the "new_estimated_days" field.
func NewEstimatedDaysIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldNewEstimatedDays, vs...))
}

// NewEstimatedDaysNotIn applies the NotIn predicate on the "new_estimated_days" field.
func NewEstimatedDaysNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldNewEstimatedDays, vs...))
}

// NewEstimatedDaysGT applies the GT predicate on the "new_estimated_days" field.
func NewEstimatedDaysGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldNewEstimatedDays, v))
}

// NewEstimatedDaysGTE applies the GTE predicate on the "new_estimated_days" field.
func NewEstimatedDaysGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldNewEstimatedDays, v))
}

// NewEstimatedDaysLT applies the LT predicate on the "new_estimated_days" field.
func NewEstimatedDaysLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldNewEstimatedDays, v))
}

// NewEstimatedDaysLTE applies the LTE predicate on the "new_estimated_days" field.
func NewEstimatedDaysLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldNewEstimatedDays, v))
}

// AverageScoreEQ applies the EQ predicate on the "average_score" field.
func AverageScoreEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldAverageScore, v))
}

// AverageScoreNEQ applies the NEQ predicate on the "average_score" field.
func AverageScoreNEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldAverageScore, v))
}

// AverageScoreIn applies the In predicate on the "average_score" field.
func AverageScoreIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldAverageScore, vs...))
}

// AverageScoreNotIn applies the NotIn predicate on the "average_score" field.
func AverageScoreNotIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldAverageScore, vs...))
}

// AverageScoreGT applies the GT predicate on the "average_score" field.
func AverageScoreGT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldAverageScore, v))
}

// AverageScoreGTE applies the GTE predicate on the "average_score" field.
func AverageScoreGTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldAverageScore, v))
}

// AverageScoreLT applies the LT predicate on the "average_score" field.
func AverageScoreLT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldAverageScore, v))
}

// AverageScoreLTE applies the LTE predicate on the "average_score" field.
func AverageScoreLTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldAverageScore, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldReason, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldSource, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.NotPredicates(p))
}
