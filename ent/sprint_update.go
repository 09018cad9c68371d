// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/predicate"
	"github.com/abhisek/cadence/ent/sprint"
)

// SprintUpdate is the builder for updating Sprint entities.
type SprintUpdate struct {
	config
	hooks    []Hook
	mutation *SprintMutation
}

// Where appends a list predicates to the SprintUpdate builder.
func (_u *SprintUpdate) Where(ps ...predicate.Sprint) *SprintUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *SprintUpdate) SetObjectiveID(v string) *SprintUpdate {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *SprintUpdate) SetNillableObjectiveID(v *string) *SprintUpdate {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetDayNumber sets the "day_number" field.
func (_u *SprintUpdate) SetDayNumber(v int) *SprintUpdate {
	_u.mutation.ResetDayNumber()
	_u.mutation.SetDayNumber(v)
	return _u
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_u *SprintUpdate) SetNillableDayNumber(v *int) *SprintUpdate {
	if v != nil {
		_u.SetDayNumber(*v)
	}
	return _u
}

// AddDayNumber adds value to the "day_number" field.
func (_u *SprintUpdate) AddDayNumber(v int) *SprintUpdate {
	_u.mutation.AddDayNumber(v)
	return _u
}

// SetLengthDays sets the "length_days" field.
func (_u *SprintUpdate) SetLengthDays(v int) *SprintUpdate {
	_u.mutation.ResetLengthDays()
	_u.mutation.SetLengthDays(v)
	return _u
}

// SetNillableLengthDays sets the "length_days" field if the given value is not nil.
func (_u *SprintUpdate) SetNillableLengthDays(v *int) *SprintUpdate {
	if v != nil {
		_u.SetLengthDays(*v)
	}
	return _u
}

// AddLengthDays adds value to the "length_days" field.
func (_u *SprintUpdate) AddLengthDays(v int) *SprintUpdate {
	_u.mutation.AddLengthDays(v)
	return _u
}

// SetTotalEstimatedHours sets the "total_estimated_hours" field.
func (_u *SprintUpdate) SetTotalEstimatedHours(v float64) *SprintUpdate {
	_u.mutation.ResetTotalEstimatedHours()
	_u.mutation.SetTotalEstimatedHours(v)
	return _u
}

// SetNillableTotalEstimatedHours sets the "total_estimated_hours" field if the given value is not nil.
func (_u *SprintUpdate) SetNillableTotalEstimatedHours(v *float64) *SprintUpdate {
	if v != nil {
		_u.SetTotalEstimatedHours(*v)
	}
	return _u
}

// AddTotalEstimatedHours adds value to the "total_estimated_hours" field.
func (_u *SprintUpdate) AddTotalEstimatedHours(v float64) *SprintUpdate {
	_u.mutation.AddTotalEstimatedHours(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SprintUpdate) SetDifficulty(v string) *SprintUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SprintUpdate) SetNillableDifficulty(v *string) *SprintUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SprintUpdate) SetStatus(v sprint.Status) *SprintUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SprintUpdate) SetNillableStatus(v *sprint.Status) *SprintUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPlannerInput sets the "planner_input" field.
func (_u *SprintUpdate) SetPlannerInput(v map[string]interface{}) *SprintUpdate {
	_u.mutation.SetPlannerInput(v)
	return _u
}

// ClearPlannerInput clears the value of the "planner_input" field.
func (_u *SprintUpdate) ClearPlannerInput() *SprintUpdate {
	_u.mutation.ClearPlannerInput()
	return _u
}

// SetPlannerOutput sets the "planner_output" field.
func (_u *SprintUpdate) SetPlannerOutput(v map[string]interface{}) *SprintUpdate {
	_u.mutation.SetPlannerOutput(v)
	return _u
}

// ClearPlannerOutput clears the value of the "planner_output" field.
func (_u *SprintUpdate) ClearPlannerOutput() *SprintUpdate {
	_u.mutation.ClearPlannerOutput()
	return _u
}

// SetAdaptiveMetadata sets the "adaptive_metadata" field.
func (_u *SprintUpdate) SetAdaptiveMetadata(v map[string]interface{}) *SprintUpdate {
	_u.mutation.SetAdaptiveMetadata(v)
	return _u
}

// ClearAdaptiveMetadata clears the value of the "adaptive_metadata" field.
func (_u *SprintUpdate) ClearAdaptiveMetadata() *SprintUpdate {
	_u.mutation.ClearAdaptiveMetadata()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SprintUpdate) SetStartedAt(v time.Time) *SprintUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SprintUpdate) SetNillableStartedAt(v *time.Time) *SprintUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SprintUpdate) ClearStartedAt() *SprintUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SprintUpdate) SetCompletedAt(v time.Time) *SprintUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SprintUpdate) SetNillableCompletedAt(v *time.Time) *SprintUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SprintUpdate) ClearCompletedAt() *SprintUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCompletionPercentage sets the "completion_percentage" field.
func (_u *SprintUpdate) SetCompletionPercentage(v float64) *SprintUpdate {
	_u.mutation.ResetCompletionPercentage()
	_u.mutation.SetCompletionPercentage(v)
	return _u
}

// SetNillableCompletionPercentage sets the "completion_percentage" field if the given value is not nil.
func (_u *SprintUpdate) SetNillableCompletionPercentage(v *float64) *SprintUpdate {
	if v != nil {
		_u.SetCompletionPercentage(*v)
	}
	return _u
}

// AddCompletionPercentage adds value to the "completion_percentage" field.
func (_u *SprintUpdate) AddCompletionPercentage(v float64) *SprintUpdate {
	_u.mutation.AddCompletionPercentage(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *SprintUpdate) SetScore(v float64) *SprintUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SprintUpdate) SetNillableScore(v *float64) *SprintUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SprintUpdate) AddScore(v float64) *SprintUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *SprintUpdate) ClearScore() *SprintUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetReviewerSummary sets the "reviewer_summary" field.
func (_u *SprintUpdate) SetReviewerSummary(v string) *SprintUpdate {
	_u.mutation.SetReviewerSummary(v)
	return _u
}

// SetNillableReviewerSummary sets the "reviewer_summary" field if the given value is not nil.
func (_u *SprintUpdate) SetNillableReviewerSummary(v *string) *SprintUpdate {
	if v != nil {
		_u.SetReviewerSummary(*v)
	}
	return _u
}

// SetSelfEvaluationConfidence sets the "self_evaluation_confidence" field.
func (_u *SprintUpdate) SetSelfEvaluationConfidence(v int) *SprintUpdate {
	_u.mutation.ResetSelfEvaluationConfidence()
	_u.mutation.SetSelfEvaluationConfidence(v)
	return _u
}

// SetNillableSelfEvaluationConfidence sets the "self_evaluation_confidence" field if the given value is not nil.
func (_u *SprintUpdate) SetNillableSelfEvaluationConfidence(v *int) *SprintUpdate {
	if v != nil {
		_u.SetSelfEvaluationConfidence(*v)
	}
	return _u
}

// AddSelfEvaluationConfidence adds value to the "self_evaluation_confidence" field.
func (_u *SprintUpdate) AddSelfEvaluationConfidence(v int) *SprintUpdate {
	_u.mutation.AddSelfEvaluationConfidence(v)
	return _u
}

// ClearSelfEvaluationConfidence clears the value of the "self_evaluation_confidence" field.
func (_u *SprintUpdate) ClearSelfEvaluationConfidence() *SprintUpdate {
	_u.mutation.ClearSelfEvaluationConfidence()
	return _u
}

// SetSelfEvaluationReflection sets the "self_evaluation_reflection" field.
func (_u *SprintUpdate) SetSelfEvaluationReflection(v string) *SprintUpdate {
	_u.mutation.SetSelfEvaluationReflection(v)
	return _u
}

// SetNillableSelfEvaluationReflection sets the "self_evaluation_reflection" field if the given value is not nil.
func (_u *SprintUpdate) SetNillableSelfEvaluationReflection(v *string) *SprintUpdate {
	if v != nil {
		_u.SetSelfEvaluationReflection(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SprintUpdate) SetUpdatedAt(v time.Time) *SprintUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SprintMutation object of the builder.
func (_u *SprintUpdate) Mutation() *SprintMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SprintUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SprintUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SprintUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SprintUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SprintUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sprint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SprintUpdate) check() error {
	if v, ok := _u.mutation.ObjectiveID(); ok {
		if err := sprint.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "Sprint.objective_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DayNumber(); ok {
		if err := sprint.DayNumberValidator(v); err != nil {
			return &ValidationError{Name: "day_number", err: fmt.Errorf(`ent: validator failed for field "Sprint.day_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sprint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Sprint.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SprintUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sprint.Table, sprint.Columns, sqlgraph.NewFieldSpec(sprint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(sprint.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DayNumber(); ok {
		_spec.SetField(sprint.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayNumber(); ok {
		_spec.AddField(sprint.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LengthDays(); ok {
		_spec.SetField(sprint.FieldLengthDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLengthDays(); ok {
		_spec.AddField(sprint.FieldLengthDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalEstimatedHours(); ok {
		_spec.SetField(sprint.FieldTotalEstimatedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalEstimatedHours(); ok {
		_spec.AddField(sprint.FieldTotalEstimatedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(sprint.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sprint.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PlannerInput(); ok {
		_spec.SetField(sprint.FieldPlannerInput, field.TypeJSON, value)
	}
	if _u.mutation.PlannerInputCleared() {
		_spec.ClearField(sprint.FieldPlannerInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlannerOutput(); ok {
		_spec.SetField(sprint.FieldPlannerOutput, field.TypeJSON, value)
	}
	if _u.mutation.PlannerOutputCleared() {
		_spec.ClearField(sprint.FieldPlannerOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.AdaptiveMetadata(); ok {
		_spec.SetField(sprint.FieldAdaptiveMetadata, field.TypeJSON, value)
	}
	if _u.mutation.AdaptiveMetadataCleared() {
		_spec.ClearField(sprint.FieldAdaptiveMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sprint.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(sprint.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sprint.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sprint.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletionPercentage(); ok {
		_spec.SetField(sprint.FieldCompletionPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionPercentage(); ok {
		_spec.AddField(sprint.FieldCompletionPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sprint.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(sprint.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(sprint.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReviewerSummary(); ok {
		_spec.SetField(sprint.FieldReviewerSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelfEvaluationConfidence(); ok {
		_spec.SetField(sprint.FieldSelfEvaluationConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelfEvaluationConfidence(); ok {
		_spec.AddField(sprint.FieldSelfEvaluationConfidence, field.TypeInt, value)
	}
	if _u.mutation.SelfEvaluationConfidenceCleared() {
		_spec.ClearField(sprint.FieldSelfEvaluationConfidence, field.TypeInt)
	}
	if value, ok := _u.mutation.SelfEvaluationReflection(); ok {
		_spec.SetField(sprint.FieldSelfEvaluationReflection, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sprint.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SprintUpdateOne is the builder for updating a single Sprint entity.
type SprintUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SprintMutation
}

// SetObjectiveID sets the "objective_id" field.
func (_u *SprintUpdateOne) SetObjectiveID(v string) *SprintUpdateOne {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *SprintUpdateOne) SetNillableObjectiveID(v *string) *SprintUpdateOne {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetDayNumber sets the "day_number" field.
func (_u *SprintUpdateOne) SetDayNumber(v int) *SprintUpdateOne {
	_u.mutation.ResetDayNumber()
	_u.mutation.SetDayNumber(v)
	return _u
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_u *SprintUpdateOne) SetNillableDayNumber(v *int) *SprintUpdateOne {
	if v != nil {
		_u.SetDayNumber(*v)
	}
	return _u
}

// AddDayNumber adds value to the "day_number" field.
func (_u *SprintUpdateOne) AddDayNumber(v int) *SprintUpdateOne {
	_u.mutation.AddDayNumber(v)
	return _u
}

// SetLengthDays sets the "length_days" field.
func (_u *SprintUpdateOne) SetLengthDays(v int) *SprintUpdateOne {
	_u.mutation.ResetLengthDays()
	_u.mutation.SetLengthDays(v)
	return _u
}

// SetNillableLengthDays sets the "length_days" field if the given value is not nil.
func (_u *SprintUpdateOne) SetNillableLengthDays(v *int) *SprintUpdateOne {
	if v != nil {
		_u.SetLengthDays(*v)
	}
	return _u
}

// AddLengthDays adds value to the "length_days" field.
func (_u *SprintUpdateOne) AddLengthDays(v int) *SprintUpdateOne {
	_u.mutation.AddLengthDays(v)
	return _u
}

// SetTotalEstimatedHours sets the "total_estimated_hours" field.
func (_u *SprintUpdateOne) SetTotalEstimatedHours(v float64) *SprintUpdateOne {
	_u.mutation.ResetTotalEstimatedHours()
	_u.mutation.SetTotalEstimatedHours(v)
	return _u
}

// SetNillableTotalEstimatedHours sets the "total_estimated_hours" field if the given value is not nil.
func (_u *SprintUpdateOne) SetNillableTotalEstimatedHours(v *float64) *SprintUpdateOne {
	if v != nil {
		_u.SetTotalEstimatedHours(*v)
	}
	return _u
}

// AddTotalEstimatedHours adds value to the "total_estimated_hours" field.
func (_u *SprintUpdateOne) AddTotalEstimatedHours(v float64) *SprintUpdateOne {
	_u.mutation.AddTotalEstimatedHours(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SprintUpdateOne) SetDifficulty(v string) *SprintUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SprintUpdateOne) SetNillableDifficulty(v *string) *SprintUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SprintUpdateOne) SetStatus(v sprint.Status) *SprintUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SprintUpdateOne) SetNillableStatus(v *sprint.Status) *SprintUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPlannerInput sets the "planner_input" field.
func (_u *SprintUpdateOne) SetPlannerInput(v map[string]interface{}) *SprintUpdateOne {
	_u.mutation.SetPlannerInput(v)
	return _u
}

// ClearPlannerInput clears the value of the "planner_input" field.
func (_u *SprintUpdateOne) ClearPlannerInput() *SprintUpdateOne {
	_u.mutation.ClearPlannerInput()
	return _u
}

// SetPlannerOutput sets the "planner_output" field.
func (_u *SprintUpdateOne) SetPlannerOutput(v map[string]interface{}) *SprintUpdateOne {
	_u.mutation.SetPlannerOutput(v)
	return _u
}

// ClearPlannerOutput clears the value of the "planner_output" field.
func (_u *SprintUpdateOne) ClearPlannerOutput() *SprintUpdateOne {
	_u.mutation.ClearPlannerOutput()
	return _u
}

// SetAdaptiveMetadata sets the "adaptive_metadata" field.
func (_u *SprintUpdateOne) SetAdaptiveMetadata(v map[string]interface{}) *SprintUpdateOne {
	_u.mutation.SetAdaptiveMetadata(v)
	return _u
}

// ClearAdaptiveMetadata clears the value of the "adaptive_metadata" field.
func (_u *SprintUpdateOne) ClearAdaptiveMetadata() *SprintUpdateOne {
	_u.mutation.ClearAdaptiveMetadata()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SprintUpdateOne) SetStartedAt(v time.Time) *SprintUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SprintUpdateOne) SetNillableStartedAt(v *time.Time) *SprintUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SprintUpdateOne) ClearStartedAt() *SprintUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SprintUpdateOne) SetCompletedAt(v time.Time) *SprintUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SprintUpdateOne) SetNillableCompletedAt(v *time.Time) *SprintUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SprintUpdateOne) ClearCompletedAt() *SprintUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCompletionPercentage sets the "completion_percentage" field.
func (_u *SprintUpdateOne) SetCompletionPercentage(v float64) *SprintUpdateOne {
	_u.mutation.ResetCompletionPercentage()
	_u.mutation.SetCompletionPercentage(v)
	return _u
}

// SetNillableCompletionPercentage sets the "completion_percentage" field if the given value is not nil.
func (_u *SprintUpdateOne) SetNillableCompletionPercentage(v *float64) *SprintUpdateOne {
	if v != nil {
		_u.SetCompletionPercentage(*v)
	}
	return _u
}

// AddCompletionPercentage adds value to the "completion_percentage" field.
func (_u *SprintUpdateOne) AddCompletionPercentage(v float64) *SprintUpdateOne {
	_u.mutation.AddCompletionPercentage(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *SprintUpdateOne) SetScore(v float64) *SprintUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SprintUpdateOne) SetNillableScore(v *float64) *SprintUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SprintUpdateOne) AddScore(v float64) *SprintUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *SprintUpdateOne) ClearScore() *SprintUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetReviewerSummary sets the "reviewer_summary" field.
func (_u *SprintUpdateOne) SetReviewerSummary(v string) *SprintUpdateOne {
	_u.mutation.SetReviewerSummary(v)
	return _u
}

// SetNillableReviewerSummary sets the "reviewer_summary" field if the given value is not nil.
func (_u *SprintUpdateOne) SetNillableReviewerSummary(v *string) *SprintUpdateOne {
	if v != nil {
		_u.SetReviewerSummary(*v)
	}
	return _u
}

// SetSelfEvaluationConfidence sets the "self_evaluation_confidence" field.
func (_u *SprintUpdateOne) SetSelfEvaluationConfidence(v int) *SprintUpdateOne {
	_u.mutation.ResetSelfEvaluationConfidence()
	_u.mutation.SetSelfEvaluationConfidence(v)
	return _u
}

// SetNillableSelfEvaluationConfidence sets the "self_evaluation_confidence" field if the given value is not nil.
func (_u *SprintUpdateOne) SetNillableSelfEvaluationConfidence(v *int) *SprintUpdateOne {
	if v != nil {
		_u.SetSelfEvaluationConfidence(*v)
	}
	return _u
}

// AddSelfEvaluationConfidence adds value to the "self_evaluation_confidence" field.
func (_u *SprintUpdateOne) AddSelfEvaluationConfidence(v int) *SprintUpdateOne {
	_u.mutation.AddSelfEvaluationConfidence(v)
	return _u
}

// ClearSelfEvaluationConfidence clears the value of the "self_evaluation_confidence" field.
func (_u *SprintUpdateOne) ClearSelfEvaluationConfidence() *SprintUpdateOne {
	_u.mutation.ClearSelfEvaluationConfidence()
	return _u
}

// SetSelfEvaluationReflection sets the "self_evaluation_reflection" field.
func (_u *SprintUpdateOne) SetSelfEvaluationReflection(v string) *SprintUpdateOne {
	_u.mutation.SetSelfEvaluationReflection(v)
	return _u
}

// SetNillableSelfEvaluationReflection sets the "self_evaluation_reflection" field if the given value is not nil.
func (_u *SprintUpdateOne) SetNillableSelfEvaluationReflection(v *string) *SprintUpdateOne {
	if v != nil {
		_u.SetSelfEvaluationReflection(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SprintUpdateOne) SetUpdatedAt(v time.Time) *SprintUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SprintMutation object of the builder.
func (_u *SprintUpdateOne) Mutation() *SprintMutation {
	return _u.mutation
}

// Where appends a list predicates to the SprintUpdate builder.
func (_u *SprintUpdateOne) Where(ps ...predicate.Sprint) *SprintUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SprintUpdateOne) Select(field string, fields ...string) *SprintUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Sprint entity.
func (_u *SprintUpdateOne) Save(ctx context.Context) (*Sprint, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SprintUpdateOne) SaveX(ctx context.Context) *Sprint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SprintUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SprintUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SprintUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sprint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SprintUpdateOne) check() error {
	if v, ok := _u.mutation.ObjectiveID(); ok {
		if err := sprint.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "Sprint.objective_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DayNumber(); ok {
		if err := sprint.DayNumberValidator(v); err != nil {
			return &ValidationError{Name: "day_number", err: fmt.Errorf(`ent: validator failed for field "Sprint.day_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sprint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Sprint.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SprintUpdateOne) sqlSave(ctx context.Context) (_node *Sprint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sprint.Table, sprint.Columns, sqlgraph.NewFieldSpec(sprint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Sprint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sprint.FieldID)
		for _, f := range fields {
			if !sprint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sprint.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(sprint.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DayNumber(); ok {
		_spec.SetField(sprint.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayNumber(); ok {
		_spec.AddField(sprint.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LengthDays(); ok {
		_spec.SetField(sprint.FieldLengthDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLengthDays(); ok {
		_spec.AddField(sprint.FieldLengthDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalEstimatedHours(); ok {
		_spec.SetField(sprint.FieldTotalEstimatedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalEstimatedHours(); ok {
		_spec.AddField(sprint.FieldTotalEstimatedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(sprint.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sprint.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PlannerInput(); ok {
		_spec.SetField(sprint.FieldPlannerInput, field.TypeJSON, value)
	}
	if _u.mutation.PlannerInputCleared() {
		_spec.ClearField(sprint.FieldPlannerInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlannerOutput(); ok {
		_spec.SetField(sprint.FieldPlannerOutput, field.TypeJSON, value)
	}
	if _u.mutation.PlannerOutputCleared() {
		_spec.ClearField(sprint.FieldPlannerOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.AdaptiveMetadata(); ok {
		_spec.SetField(sprint.FieldAdaptiveMetadata, field.TypeJSON, value)
	}
	if _u.mutation.AdaptiveMetadataCleared() {
		_spec.ClearField(sprint.FieldAdaptiveMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sprint.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(sprint.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sprint.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sprint.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletionPercentage(); ok {
		_spec.SetField(sprint.FieldCompletionPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionPercentage(); ok {
		_spec.AddField(sprint.FieldCompletionPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sprint.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(sprint.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(sprint.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReviewerSummary(); ok {
		_spec.SetField(sprint.FieldReviewerSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelfEvaluationConfidence(); ok {
		_spec.SetField(sprint.FieldSelfEvaluationConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelfEvaluationConfidence(); ok {
		_spec.AddField(sprint.FieldSelfEvaluationConfidence, field.TypeInt, value)
	}
	if _u.mutation.SelfEvaluationConfidenceCleared() {
		_spec.ClearField(sprint.FieldSelfEvaluationConfidence, field.TypeInt)
	}
	if value, ok := _u.mutation.SelfEvaluationReflection(); ok {
		_spec.SetField(sprint.FieldSelfEvaluationReflection, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sprint.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Sprint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
