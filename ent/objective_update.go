// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/objective"
	"github.com/abhisek/cadence/ent/predicate"
)

// ObjectiveUpdate is the builder for updating Objective entities.
type ObjectiveUpdate struct {
	config
	hooks    []Hook
	mutation *ObjectiveMutation
}

// Where appends a list predicates to the ObjectiveUpdate builder.
func (_u *ObjectiveUpdate) Where(ps ...predicate.Objective) *ObjectiveUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ObjectiveUpdate) SetUserID(v string) *ObjectiveUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ObjectiveUpdate) SetNillableUserID(v *string) *ObjectiveUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ObjectiveUpdate) SetTitle(v string) *ObjectiveUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ObjectiveUpdate) SetNillableTitle(v *string) *ObjectiveUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ObjectiveUpdate) SetDescription(v string) *ObjectiveUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ObjectiveUpdate) SetNillableDescription(v *string) *ObjectiveUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSuccessCriteria sets the "success_criteria" field.
func (_u *ObjectiveUpdate) SetSuccessCriteria(v []string) *ObjectiveUpdate {
	_u.mutation.SetSuccessCriteria(v)
	return _u
}

// AppendSuccessCriteria appends value to the "success_criteria" field.
func (_u *ObjectiveUpdate) AppendSuccessCriteria(v []string) *ObjectiveUpdate {
	_u.mutation.AppendSuccessCriteria(v)
	return _u
}

// ClearSuccessCriteria clears the value of the "success_criteria" field.
func (_u *ObjectiveUpdate) ClearSuccessCriteria() *ObjectiveUpdate {
	_u.mutation.ClearSuccessCriteria()
	return _u
}

// SetRequiredSkills sets the "required_skills" field.
func (_u *ObjectiveUpdate) SetRequiredSkills(v []string) *ObjectiveUpdate {
	_u.mutation.SetRequiredSkills(v)
	return _u
}

// AppendRequiredSkills appends value to the "required_skills" field.
func (_u *ObjectiveUpdate) AppendRequiredSkills(v []string) *ObjectiveUpdate {
	_u.mutation.AppendRequiredSkills(v)
	return _u
}

// ClearRequiredSkills clears the value of the "required_skills" field.
func (_u *ObjectiveUpdate) ClearRequiredSkills() *ObjectiveUpdate {
	_u.mutation.ClearRequiredSkills()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ObjectiveUpdate) SetPriority(v string) *ObjectiveUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ObjectiveUpdate) SetNillablePriority(v *string) *ObjectiveUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ObjectiveUpdate) SetStatus(v objective.Status) *ObjectiveUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ObjectiveUpdate) SetNillableStatus(v *objective.Status) *ObjectiveUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEstimatedTotalDays sets the "estimated_total_days" field.
func (_u *ObjectiveUpdate) SetEstimatedTotalDays(v int) *ObjectiveUpdate {
	_u.mutation.ResetEstimatedTotalDays()
	_u.mutation.SetEstimatedTotalDays(v)
	return _u
}

// SetNillableEstimatedTotalDays sets the "estimated_total_days" field if the given value is not nil.
func (_u *ObjectiveUpdate) SetNillableEstimatedTotalDays(v *int) *ObjectiveUpdate {
	if v != nil {
		_u.SetEstimatedTotalDays(*v)
	}
	return _u
}

// AddEstimatedTotalDays adds value to the "estimated_total_days" field.
func (_u *ObjectiveUpdate) AddEstimatedTotalDays(v int) *ObjectiveUpdate {
	_u.mutation.AddEstimatedTotalDays(v)
	return _u
}

// SetCompletedDays sets the "completed_days" field.
func (_u *ObjectiveUpdate) SetCompletedDays(v int) *ObjectiveUpdate {
	_u.mutation.ResetCompletedDays()
	_u.mutation.SetCompletedDays(v)
	return _u
}

// SetNillableCompletedDays sets the "completed_days" field if the given value is not nil.
func (_u *ObjectiveUpdate) SetNillableCompletedDays(v *int) *ObjectiveUpdate {
	if v != nil {
		_u.SetCompletedDays(*v)
	}
	return _u
}

// AddCompletedDays adds value to the "completed_days" field.
func (_u *ObjectiveUpdate) AddCompletedDays(v int) *ObjectiveUpdate {
	_u.mutation.AddCompletedDays(v)
	return _u
}

// SetCurrentDifficulty sets the "current_difficulty" field.
func (_u *ObjectiveUpdate) SetCurrentDifficulty(v int) *ObjectiveUpdate {
	_u.mutation.ResetCurrentDifficulty()
	_u.mutation.SetCurrentDifficulty(v)
	return _u
}

// SetNillableCurrentDifficulty sets the "current_difficulty" field if the given value is not nil.
func (_u *ObjectiveUpdate) SetNillableCurrentDifficulty(v *int) *ObjectiveUpdate {
	if v != nil {
		_u.SetCurrentDifficulty(*v)
	}
	return _u
}

// AddCurrentDifficulty adds value to the "current_difficulty" field.
func (_u *ObjectiveUpdate) AddCurrentDifficulty(v int) *ObjectiveUpdate {
	_u.mutation.AddCurrentDifficulty(v)
	return _u
}

// SetLearningVelocity sets the "learning_velocity" field.
func (_u *ObjectiveUpdate) SetLearningVelocity(v float64) *ObjectiveUpdate {
	_u.mutation.ResetLearningVelocity()
	_u.mutation.SetLearningVelocity(v)
	return _u
}

// SetNillableLearningVelocity sets the "learning_velocity" field if the given value is not nil.
func (_u *ObjectiveUpdate) SetNillableLearningVelocity(v *float64) *ObjectiveUpdate {
	if v != nil {
		_u.SetLearningVelocity(*v)
	}
	return _u
}

// AddLearningVelocity adds value to the "learning_velocity" field.
func (_u *ObjectiveUpdate) AddLearningVelocity(v float64) *ObjectiveUpdate {
	_u.mutation.AddLearningVelocity(v)
	return _u
}

// SetRecalibrationCount sets the "recalibration_count" field.
func (_u *ObjectiveUpdate) SetRecalibrationCount(v int) *ObjectiveUpdate {
	_u.mutation.ResetRecalibrationCount()
	_u.mutation.SetRecalibrationCount(v)
	return _u
}

// SetNillableRecalibrationCount sets the "recalibration_count" field if the given value is not nil.
func (_u *ObjectiveUpdate) SetNillableRecalibrationCount(v *int) *ObjectiveUpdate {
	if v != nil {
		_u.SetRecalibrationCount(*v)
	}
	return _u
}

// AddRecalibrationCount adds value to the "recalibration_count" field.
func (_u *ObjectiveUpdate) AddRecalibrationCount(v int) *ObjectiveUpdate {
	_u.mutation.AddRecalibrationCount(v)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *ObjectiveUpdate) SetCurrentStreak(v int) *ObjectiveUpdate {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *ObjectiveUpdate) SetNillableCurrentStreak(v *int) *ObjectiveUpdate {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *ObjectiveUpdate) AddCurrentStreak(v int) *ObjectiveUpdate {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetLongestStreak sets the "longest_streak" field.
func (_u *ObjectiveUpdate) SetLongestStreak(v int) *ObjectiveUpdate {
	_u.mutation.ResetLongestStreak()
	_u.mutation.SetLongestStreak(v)
	return _u
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_u *ObjectiveUpdate) SetNillableLongestStreak(v *int) *ObjectiveUpdate {
	if v != nil {
		_u.SetLongestStreak(*v)
	}
	return _u
}

// AddLongestStreak adds value to the "longest_streak" field.
func (_u *ObjectiveUpdate) AddLongestStreak(v int) *ObjectiveUpdate {
	_u.mutation.AddLongestStreak(v)
	return _u
}

// SetLastCompletedAt sets the "last_completed_at" field.
func (_u *ObjectiveUpdate) SetLastCompletedAt(v time.Time) *ObjectiveUpdate {
	_u.mutation.SetLastCompletedAt(v)
	return _u
}

// SetNillableLastCompletedAt sets the "last_completed_at" field if the given value is not nil.
func (_u *ObjectiveUpdate) SetNillableLastCompletedAt(v *time.Time) *ObjectiveUpdate {
	if v != nil {
		_u.SetLastCompletedAt(*v)
	}
	return _u
}

// ClearLastCompletedAt clears the value of the "last_completed_at" field.
func (_u *ObjectiveUpdate) ClearLastCompletedAt() *ObjectiveUpdate {
	_u.mutation.ClearLastCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ObjectiveUpdate) SetUpdatedAt(v time.Time) *ObjectiveUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ObjectiveMutation object of the builder.
func (_u *ObjectiveUpdate) Mutation() *ObjectiveMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ObjectiveUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObjectiveUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ObjectiveUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObjectiveUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ObjectiveUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := objective.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ObjectiveUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := objective.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Objective.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := objective.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Objective.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := objective.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Objective.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedTotalDays(); ok {
		if err := objective.EstimatedTotalDaysValidator(v); err != nil {
			return &ValidationError{Name: "estimated_total_days", err: fmt.Errorf(`ent: validator failed for field "Objective.estimated_total_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentDifficulty(); ok {
		if err := objective.CurrentDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "current_difficulty", err: fmt.Errorf(`ent: validator failed for field "Objective.current_difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *ObjectiveUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(objective.Table, objective.Columns, sqlgraph.NewFieldSpec(objective.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(objective.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(objective.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(objective.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuccessCriteria(); ok {
		_spec.SetField(objective.FieldSuccessCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuccessCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, objective.FieldSuccessCriteria, value)
		})
	}
	if _u.mutation.SuccessCriteriaCleared() {
		_spec.ClearField(objective.FieldSuccessCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequiredSkills(); ok {
		_spec.SetField(objective.FieldRequiredSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, objective.FieldRequiredSkills, value)
		})
	}
	if _u.mutation.RequiredSkillsCleared() {
		_spec.ClearField(objective.FieldRequiredSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(objective.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(objective.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EstimatedTotalDays(); ok {
		_spec.SetField(objective.FieldEstimatedTotalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedTotalDays(); ok {
		_spec.AddField(objective.FieldEstimatedTotalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedDays(); ok {
		_spec.SetField(objective.FieldCompletedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedDays(); ok {
		_spec.AddField(objective.FieldCompletedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentDifficulty(); ok {
		_spec.SetField(objective.FieldCurrentDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentDifficulty(); ok {
		_spec.AddField(objective.FieldCurrentDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearningVelocity(); ok {
		_spec.SetField(objective.FieldLearningVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLearningVelocity(); ok {
		_spec.AddField(objective.FieldLearningVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecalibrationCount(); ok {
		_spec.SetField(objective.FieldRecalibrationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecalibrationCount(); ok {
		_spec.AddField(objective.FieldRecalibrationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(objective.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(objective.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreak(); ok {
		_spec.SetField(objective.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreak(); ok {
		_spec.AddField(objective.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCompletedAt(); ok {
		_spec.SetField(objective.FieldLastCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.LastCompletedAtCleared() {
		_spec.ClearField(objective.FieldLastCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(objective.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{objective.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ObjectiveUpdateOne is the builder for updating a single Objective entity.
type ObjectiveUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ObjectiveMutation
}

// SetUserID sets the "user_id" field.
func (_u *ObjectiveUpdateOne) SetUserID(v string) *ObjectiveUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ObjectiveUpdateOne) SetNillableUserID(v *string) *ObjectiveUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ObjectiveUpdateOne) SetTitle(v string) *ObjectiveUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ObjectiveUpdateOne) SetNillableTitle(v *string) *ObjectiveUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ObjectiveUpdateOne) SetDescription(v string) *ObjectiveUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ObjectiveUpdateOne) SetNillableDescription(v *string) *ObjectiveUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSuccessCriteria sets the "success_criteria" field.
func (_u *ObjectiveUpdateOne) SetSuccessCriteria(v []string) *ObjectiveUpdateOne {
	_u.mutation.SetSuccessCriteria(v)
	return _u
}

// AppendSuccessCriteria appends value to the "success_criteria" field.
func (_u *ObjectiveUpdateOne) AppendSuccessCriteria(v []string) *ObjectiveUpdateOne {
	_u.mutation.AppendSuccessCriteria(v)
	return _u
}

// ClearSuccessCriteria clears the value of the "success_criteria" field.
func (_u *ObjectiveUpdateOne) ClearSuccessCriteria() *ObjectiveUpdateOne {
	_u.mutation.ClearSuccessCriteria()
	return _u
}

// SetRequiredSkills sets the "required_skills" field.
func (_u *ObjectiveUpdateOne) SetRequiredSkills(v []string) *ObjectiveUpdateOne {
	_u.mutation.SetRequiredSkills(v)
	return _u
}

// AppendRequiredSkills appends value to the "required_skills" field.
func (_u *ObjectiveUpdateOne) AppendRequiredSkills(v []string) *ObjectiveUpdateOne {
	_u.mutation.AppendRequiredSkills(v)
	return _u
}

// ClearRequiredSkills clears the value of the "required_skills" field.
func (_u *ObjectiveUpdateOne) ClearRequiredSkills() *ObjectiveUpdateOne {
	_u.mutation.ClearRequiredSkills()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ObjectiveUpdateOne) SetPriority(v string) *ObjectiveUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ObjectiveUpdateOne) SetNillablePriority(v *string) *ObjectiveUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ObjectiveUpdateOne) SetStatus(v objective.Status) *ObjectiveUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ObjectiveUpdateOne) SetNillableStatus(v *objective.Status) *ObjectiveUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEstimatedTotalDays sets the "estimated_total_days" field.
func (_u *ObjectiveUpdateOne) SetEstimatedTotalDays(v int) *ObjectiveUpdateOne {
	_u.mutation.ResetEstimatedTotalDays()
	_u.mutation.SetEstimatedTotalDays(v)
	return _u
}

// SetNillableEstimatedTotalDays sets the "estimated_total_days" field if the given value is not nil.
func (_u *ObjectiveUpdateOne) SetNillableEstimatedTotalDays(v *int) *ObjectiveUpdateOne {
	if v != nil {
		_u.SetEstimatedTotalDays(*v)
	}
	return _u
}

// AddEstimatedTotalDays adds value to the "estimated_total_days" field.
func (_u *ObjectiveUpdateOne) AddEstimatedTotalDays(v int) *ObjectiveUpdateOne {
	_u.mutation.AddEstimatedTotalDays(v)
	return _u
}

// SetCompletedDays sets the "completed_days" field.
func (_u *ObjectiveUpdateOne) SetCompletedDays(v int) *ObjectiveUpdateOne {
	_u.mutation.ResetCompletedDays()
	_u.mutation.SetCompletedDays(v)
	return _u
}

// SetNillableCompletedDays sets the "completed_days" field if the given value is not nil.
func (_u *ObjectiveUpdateOne) SetNillableCompletedDays(v *int) *ObjectiveUpdateOne {
	if v != nil {
		_u.SetCompletedDays(*v)
	}
	return _u
}

// AddCompletedDays adds value to the "completed_days" field.
func (_u *ObjectiveUpdateOne) AddCompletedDays(v int) *ObjectiveUpdateOne {
	_u.mutation.AddCompletedDays(v)
	return _u
}

// SetCurrentDifficulty sets the "current_difficulty" field.
func (_u *ObjectiveUpdateOne) SetCurrentDifficulty(v int) *ObjectiveUpdateOne {
	_u.mutation.ResetCurrentDifficulty()
	_u.mutation.SetCurrentDifficulty(v)
	return _u
}

// SetNillableCurrentDifficulty sets the "current_difficulty" field if the given value is not nil.
func (_u *ObjectiveUpdateOne) SetNillableCurrentDifficulty(v *int) *ObjectiveUpdateOne {
	if v != nil {
		_u.SetCurrentDifficulty(*v)
	}
	return _u
}

// AddCurrentDifficulty adds value to the "current_difficulty" field.
func (_u *ObjectiveUpdateOne) AddCurrentDifficulty(v int) *ObjectiveUpdateOne {
	_u.mutation.AddCurrentDifficulty(v)
	return _u
}

// SetLearningVelocity sets the "learning_velocity" field.
func (_u *ObjectiveUpdateOne) SetLearningVelocity(v float64) *ObjectiveUpdateOne {
	_u.mutation.ResetLearningVelocity()
	_u.mutation.SetLearningVelocity(v)
	return _u
}

// SetNillableLearningVelocity sets the "learning_velocity" field if the given value is not nil.
func (_u *ObjectiveUpdateOne) SetNillableLearningVelocity(v *float64) *ObjectiveUpdateOne {
	if v != nil {
		_u.SetLearningVelocity(*v)
	}
	return _u
}

// AddLearningVelocity adds value to the "learning_velocity" field.
func (_u *ObjectiveUpdateOne) AddLearningVelocity(v float64) *ObjectiveUpdateOne {
	_u.mutation.AddLearningVelocity(v)
	return _u
}

// SetRecalibrationCount sets the "recalibration_count" field.
func (_u *ObjectiveUpdateOne) SetRecalibrationCount(v int) *ObjectiveUpdateOne {
	_u.mutation.ResetRecalibrationCount()
	_u.mutation.SetRecalibrationCount(v)
	return _u
}

// SetNillableRecalibrationCount sets the "recalibration_count" field if the given value is not nil.
func (_u *ObjectiveUpdateOne) SetNillableRecalibrationCount(v *int) *ObjectiveUpdateOne {
	if v != nil {
		_u.SetRecalibrationCount(*v)
	}
	return _u
}

// AddRecalibrationCount adds value to the "recalibration_count" field.
func (_u *ObjectiveUpdateOne) AddRecalibrationCount(v int) *ObjectiveUpdateOne {
	_u.mutation.AddRecalibrationCount(v)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *ObjectiveUpdateOne) SetCurrentStreak(v int) *ObjectiveUpdateOne {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *ObjectiveUpdateOne) SetNillableCurrentStreak(v *int) *ObjectiveUpdateOne {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *ObjectiveUpdateOne) AddCurrentStreak(v int) *ObjectiveUpdateOne {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetLongestStreak sets the "longest_streak" field.
func (_u *ObjectiveUpdateOne) SetLongestStreak(v int) *ObjectiveUpdateOne {
	_u.mutation.ResetLongestStreak()
	_u.mutation.SetLongestStreak(v)
	return _u
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_u *ObjectiveUpdateOne) SetNillableLongestStreak(v *int) *ObjectiveUpdateOne {
	if v != nil {
		_u.SetLongestStreak(*v)
	}
	return _u
}

// AddLongestStreak adds value to the "longest_streak" field.
func (_u *ObjectiveUpdateOne) AddLongestStreak(v int) *ObjectiveUpdateOne {
	_u.mutation.AddLongestStreak(v)
	return _u
}

// SetLastCompletedAt sets the "last_completed_at" field.
func (_u *ObjectiveUpdateOne) SetLastCompletedAt(v time.Time) *ObjectiveUpdateOne {
	_u.mutation.SetLastCompletedAt(v)
	return _u
}

// SetNillableLastCompletedAt sets the "last_completed_at" field if the given value is not nil.
func (_u *ObjectiveUpdateOne) SetNillableLastCompletedAt(v *time.Time) *ObjectiveUpdateOne {
	if v != nil {
		_u.SetLastCompletedAt(*v)
	}
	return _u
}

// ClearLastCompletedAt clears the value of the "last_completed_at" field.
func (_u *ObjectiveUpdateOne) ClearLastCompletedAt() *ObjectiveUpdateOne {
	_u.mutation.ClearLastCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ObjectiveUpdateOne) SetUpdatedAt(v time.Time) *ObjectiveUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ObjectiveMutation object of the builder.
func (_u *ObjectiveUpdateOne) Mutation() *ObjectiveMutation {
	return _u.mutation
}

// Where appends a list predicates to the ObjectiveUpdate builder.
func (_u *ObjectiveUpdateOne) Where(ps ...predicate.Objective) *ObjectiveUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ObjectiveUpdateOne) Select(field string, fields ...string) *ObjectiveUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Objective entity.
func (_u *ObjectiveUpdateOne) Save(ctx context.Context) (*Objective, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObjectiveUpdateOne) SaveX(ctx context.Context) *Objective {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ObjectiveUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObjectiveUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ObjectiveUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := objective.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ObjectiveUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := objective.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Objective.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := objective.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Objective.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := objective.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Objective.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedTotalDays(); ok {
		if err := objective.EstimatedTotalDaysValidator(v); err != nil {
			return &ValidationError{Name: "estimated_total_days", err: fmt.Errorf(`ent: validator failed for field "Objective.estimated_total_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentDifficulty(); ok {
		if err := objective.CurrentDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "current_difficulty", err: fmt.Errorf(`ent: validator failed for field "Objective.current_difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *ObjectiveUpdateOne) sqlSave(ctx context.Context) (_node *Objective, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(objective.Table, objective.Columns, sqlgraph.NewFieldSpec(objective.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Objective.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, objective.FieldID)
		for _, f := range fields {
			if !objective.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != objective.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(objective.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(objective.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(objective.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuccessCriteria(); ok {
		_spec.SetField(objective.FieldSuccessCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuccessCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, objective.FieldSuccessCriteria, value)
		})
	}
	if _u.mutation.SuccessCriteriaCleared() {
		_spec.ClearField(objective.FieldSuccessCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequiredSkills(); ok {
		_spec.SetField(objective.FieldRequiredSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, objective.FieldRequiredSkills, value)
		})
	}
	if _u.mutation.RequiredSkillsCleared() {
		_spec.ClearField(objective.FieldRequiredSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(objective.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(objective.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EstimatedTotalDays(); ok {
		_spec.SetField(objective.FieldEstimatedTotalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedTotalDays(); ok {
		_spec.AddField(objective.FieldEstimatedTotalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedDays(); ok {
		_spec.SetField(objective.FieldCompletedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedDays(); ok {
		_spec.AddField(objective.FieldCompletedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentDifficulty(); ok {
		_spec.SetField(objective.FieldCurrentDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentDifficulty(); ok {
		_spec.AddField(objective.FieldCurrentDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearningVelocity(); ok {
		_spec.SetField(objective.FieldLearningVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLearningVelocity(); ok {
		_spec.AddField(objective.FieldLearningVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecalibrationCount(); ok {
		_spec.SetField(objective.FieldRecalibrationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecalibrationCount(); ok {
		_spec.AddField(objective.FieldRecalibrationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(objective.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(objective.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreak(); ok {
		_spec.SetField(objective.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreak(); ok {
		_spec.AddField(objective.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCompletedAt(); ok {
		_spec.SetField(objective.FieldLastCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.LastCompletedAtCleared() {
		_spec.ClearField(objective.FieldLastCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(objective.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Objective{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{objective.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
