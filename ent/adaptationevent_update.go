// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/adaptationevent"
	"github.com/abhisek/cadence/ent/predicate"
)

// AdaptationEventUpdate is the builder for updating AdaptationEvent entities.
type AdaptationEventUpdate struct {
	config
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (_u *AdaptationEventUpdate) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *AdaptationEventUpdate) SetObjectiveID(v string) *AdaptationEventUpdate {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableObjectiveID(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetAdjustmentType sets the "adjustment_type" field.
func (_u *AdaptationEventUpdate) SetAdjustmentType(v string) *AdaptationEventUpdate {
	_u.mutation.SetAdjustmentType(v)
	return _u
}

// SetNillableAdjustmentType sets the "adjustment_type" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableAdjustmentType(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetAdjustmentType(*v)
	}
	return _u
}

// SetPreviousDifficulty sets the "previous_difficulty" field.
func (_u *AdaptationEventUpdate) SetPreviousDifficulty(v int) *AdaptationEventUpdate {
	_u.mutation.ResetPreviousDifficulty()
	_u.mutation.SetPreviousDifficulty(v)
	return _u
}

// SetNillablePreviousDifficulty sets the "previous_difficulty" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillablePreviousDifficulty(v *int) *AdaptationEventUpdate {
	if v != nil {
		_u.SetPreviousDifficulty(*v)
	}
	return _u
}

// AddPreviousDifficulty adds value to the "previous_difficulty" field.
func (_u *AdaptationEventUpdate) AddPreviousDifficulty(v int) *AdaptationEventUpdate {
	_u.mutation.AddPreviousDifficulty(v)
	return _u
}

// SetNewDifficulty sets the "new_difficulty" field.
func (_u *AdaptationEventUpdate) SetNewDifficulty(v int) *AdaptationEventUpdate {
	_u.mutation.ResetNewDifficulty()
	_u.mutation.SetNewDifficulty(v)
	return _u
}

// SetNillableNewDifficulty sets the "new_difficulty" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableNewDifficulty(v *int) *AdaptationEventUpdate {
	if v != nil {
		_u.SetNewDifficulty(*v)
	}
	return _u
}

// AddNewDifficulty adds value to the "new_difficulty" field.
func (_u *AdaptationEventUpdate) AddNewDifficulty(v int) *AdaptationEventUpdate {
	_u.mutation.AddNewDifficulty(v)
	return _u
}

// SetPreviousVelocity sets the "previous_velocity" field.
func (_u *AdaptationEventUpdate) SetPreviousVelocity(v float64) *AdaptationEventUpdate {
	_u.mutation.ResetPreviousVelocity()
	_u.mutation.SetPreviousVelocity(v)
	return _u
}

// SetNillablePreviousVelocity sets the "previous_velocity" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillablePreviousVelocity(v *float64) *AdaptationEventUpdate {
	if v != nil {
		_u.SetPreviousVelocity(*v)
	}
	return _u
}

// AddPreviousVelocity adds value to the "previous_velocity" field.
func (_u *AdaptationEventUpdate) AddPreviousVelocity(v float64) *AdaptationEventUpdate {
	_u.mutation.AddPreviousVelocity(v)
	return _u
}

// SetNewVelocity sets the "new_velocity" field.
func (_u *AdaptationEventUpdate) SetNewVelocity(v float64) *AdaptationEventUpdate {
	_u.mutation.ResetNewVelocity()
	_u.mutation.SetNewVelocity(v)
	return _u
}

// SetNillableNewVelocity sets the "new_velocity" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableNewVelocity(v *float64) *AdaptationEventUpdate {
	if v != nil {
		_u.SetNewVelocity(*v)
	}
	return _u
}

// AddNewVelocity adds value to the "new_velocity" field.
func (_u *AdaptationEventUpdate) AddNewVelocity(v float64) *AdaptationEventUpdate {
	_u.mutation.AddNewVelocity(v)
	return _u
}

// SetPreviousEstimatedDays sets the "previous_estimated_days" field.
func (_u *AdaptationEventUpdate) SetPreviousEstimatedDays(v int) *AdaptationEventUpdate {
	_u.mutation.ResetPreviousEstimatedDays()
	_u.mutation.SetPreviousEstimatedDays(v)
	return _u
}

// SetNillablePreviousEstimatedDays sets the "previous_estimated_days" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillablePreviousEstimatedDays(v *int) *AdaptationEventUpdate {
	if v != nil {
		_u.SetPreviousEstimatedDays(*v)
	}
	return _u
}

// AddPreviousEstimatedDays adds value to the "previous_estimated_days" field.
func (_u *AdaptationEventUpdate) AddPreviousEstimatedDays(v int) *AdaptationEventUpdate {
	_u.mutation.AddPreviousEstimatedDays(v)
	return _u
}

// SetNewEstimatedDays sets the "new_estimated_days" field.
func (_u *AdaptationEventUpdate) SetNewEstimatedDays(v int) *AdaptationEventUpdate {
	_u.mutation.ResetNewEstimatedDays()
	_u.mutation.SetNewEstimatedDays(v)
	return _u
}

// SetNillableNewEstimatedDays sets the "new_estimated_days" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableNewEstimatedDays(v *int) *AdaptationEventUpdate {
	if v != nil {
		_u.SetNewEstimatedDays(*v)
	}
	return _u
}

// AddNewEstimatedDays adds value to the "new_estimated_days" field.
func (_u *AdaptationEventUpdate) AddNewEstimatedDays(v int) *AdaptationEventUpdate {
	_u.mutation.AddNewEstimatedDays(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *AdaptationEventUpdate) SetAverageScore(v float64) *AdaptationEventUpdate {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableAverageScore(v *float64) *AdaptationEventUpdate {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *AdaptationEventUpdate) AddAverageScore(v float64) *AdaptationEventUpdate {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *AdaptationEventUpdate) SetReason(v string) *AdaptationEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableReason(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AdaptationEventUpdate) SetSource(v string) *AdaptationEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableSource(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_u *AdaptationEventUpdate) Mutation() *AdaptationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdaptationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdaptationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptationEventUpdate) check() error {
	if v, ok := _u.mutation.ObjectiveID(); ok {
		if err := adaptationevent.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.objective_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AdjustmentType(); ok {
		if err := adaptationevent.AdjustmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "adjustment_type", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.adjustment_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(adaptationevent.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AdjustmentType(); ok {
		_spec.SetField(adaptationevent.FieldAdjustmentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreviousDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldPreviousDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreviousDifficulty(); ok {
		_spec.AddField(adaptationevent.FieldPreviousDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldNewDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewDifficulty(); ok {
		_spec.AddField(adaptationevent.FieldNewDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreviousVelocity(); ok {
		_spec.SetField(adaptationevent.FieldPreviousVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPreviousVelocity(); ok {
		_spec.AddField(adaptationevent.FieldPreviousVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NewVelocity(); ok {
		_spec.SetField(adaptationevent.FieldNewVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNewVelocity(); ok {
		_spec.AddField(adaptationevent.FieldNewVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PreviousEstimatedDays(); ok {
		_spec.SetField(adaptationevent.FieldPreviousEstimatedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreviousEstimatedDays(); ok {
		_spec.AddField(adaptationevent.FieldPreviousEstimatedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewEstimatedDays(); ok {
		_spec.SetField(adaptationevent.FieldNewEstimatedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewEstimatedDays(); ok {
		_spec.AddField(adaptationevent.FieldNewEstimatedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(adaptationevent.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(adaptationevent.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(adaptationevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(adaptationevent.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdaptationEventUpdateOne is the builder for updating a single AdaptationEvent entity.
type AdaptationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// SetObjectiveID sets the "objective_id" field.
func (_u *AdaptationEventUpdateOne) SetObjectiveID(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableObjectiveID(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetAdjustmentType sets the "adjustment_type" field.
func (_u *AdaptationEventUpdateOne) SetAdjustmentType(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetAdjustmentType(v)
	return _u
}

// SetNillableAdjustmentType sets the "adjustment_type" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableAdjustmentType(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetAdjustmentType(*v)
	}
	return _u
}

// SetPreviousDifficulty sets the "previous_difficulty" field.
func (_u *AdaptationEventUpdateOne) SetPreviousDifficulty(v int) *AdaptationEventUpdateOne {
	_u.mutation.ResetPreviousDifficulty()
	_u.mutation.SetPreviousDifficulty(v)
	return _u
}

// SetNillablePreviousDifficulty sets the "previous_difficulty" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillablePreviousDifficulty(v *int) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetPreviousDifficulty(*v)
	}
	return _u
}

// AddPreviousDifficulty adds value to the "previous_difficulty" field.
func (_u *AdaptationEventUpdateOne) AddPreviousDifficulty(v int) *AdaptationEventUpdateOne {
	_u.mutation.AddPreviousDifficulty(v)
	return _u
}

// SetNewDifficulty sets the "new_difficulty" field.
func (_u *AdaptationEventUpdateOne) SetNewDifficulty(v int) *AdaptationEventUpdateOne {
	_u.mutation.ResetNewDifficulty()
	_u.mutation.SetNewDifficulty(v)
	return _u
}

// SetNillableNewDifficulty sets the "new_difficulty" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableNewDifficulty(v *int) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetNewDifficulty(*v)
	}
	return _u
}

// AddNewDifficulty adds value to the "new_difficulty" field.
func (_u *AdaptationEventUpdateOne) AddNewDifficulty(v int) *AdaptationEventUpdateOne {
	_u.mutation.AddNewDifficulty(v)
	return _u
}

// SetPreviousVelocity sets the "previous_velocity" field.
func (_u *AdaptationEventUpdateOne) SetPreviousVelocity(v float64) *AdaptationEventUpdateOne {
	_u.mutation.ResetPreviousVelocity()
	_u.mutation.SetPreviousVelocity(v)
	return _u
}

// SetNillablePreviousVelocity sets the "previous_velocity" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillablePreviousVelocity(v *float64) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetPreviousVelocity(*v)
	}
	return _u
}

// AddPreviousVelocity adds value to the "previous_velocity" field.
func (_u *AdaptationEventUpdateOne) AddPreviousVelocity(v float64) *AdaptationEventUpdateOne {
	_u.mutation.AddPreviousVelocity(v)
	return _u
}

// SetNewVelocity sets the "new_velocity" field.
func (_u *AdaptationEventUpdateOne) SetNewVelocity(v float64) *AdaptationEventUpdateOne {
	_u.mutation.ResetNewVelocity()
	_u.mutation.SetNewVelocity(v)
	return _u
}

// SetNillableNewVelocity sets the "new_velocity" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableNewVelocity(v *float64) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetNewVelocity(*v)
	}
	return _u
}

// AddNewVelocity adds value to the "new_velocity" field.
func (_u *AdaptationEventUpdateOne) AddNewVelocity(v float64) *AdaptationEventUpdateOne {
	_u.mutation.AddNewVelocity(v)
	return _u
}

// SetPreviousEstimatedDays sets the "previous_estimated_days" field.
func (_u *AdaptationEventUpdateOne) SetPreviousEstimatedDays(v int) *AdaptationEventUpdateOne {
	_u.mutation.ResetPreviousEstimatedDays()
	_u.mutation.SetPreviousEstimatedDays(v)
	return _u
}

// SetNillablePreviousEstimatedDays sets the "previous_estimated_days" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillablePreviousEstimatedDays(v *int) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetPreviousEstimatedDays(*v)
	}
	return _u
}

// AddPreviousEstimatedDays adds value to the "previous_estimated_days" field.
func (_u *AdaptationEventUpdateOne) AddPreviousEstimatedDays(v int) *AdaptationEventUpdateOne {
	_u.mutation.AddPreviousEstimatedDays(v)
	return _u
}

// SetNewEstimatedDays sets the "new_estimated_days" field.
func (_u *AdaptationEventUpdateOne) SetNewEstimatedDays(v int) *AdaptationEventUpdateOne {
	_u.mutation.ResetNewEstimatedDays()
	_u.mutation.SetNewEstimatedDays(v)
	return _u
}

// SetNillableNewEstimatedDays sets the "new_estimated_days" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableNewEstimatedDays(v *int) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetNewEstimatedDays(*v)
	}
	return _u
}

// AddNewEstimatedDays adds value to the "new_estimated_days" field.
func (_u *AdaptationEventUpdateOne) AddNewEstimatedDays(v int) *AdaptationEventUpdateOne {
	_u.mutation.AddNewEstimatedDays(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *AdaptationEventUpdateOne) SetAverageScore(v float64) *AdaptationEventUpdateOne {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableAverageScore(v *float64) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *AdaptationEventUpdateOne) AddAverageScore(v float64) *AdaptationEventUpdateOne {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *AdaptationEventUpdateOne) SetReason(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableReason(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AdaptationEventUpdateOne) SetSource(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableSource(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_u *AdaptationEventUpdateOne) Mutation() *AdaptationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (_u *AdaptationEventUpdateOne) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdaptationEventUpdateOne) Select(field string, fields ...string) *AdaptationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdaptationEvent entity.
func (_u *AdaptationEventUpdateOne) Save(ctx context.Context) (*AdaptationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptationEventUpdateOne) SaveX(ctx context.Context) *AdaptationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdaptationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptationEventUpdateOne) check() error {
	if v, ok := _u.mutation.ObjectiveID(); ok {
		if err := adaptationevent.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.objective_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AdjustmentType(); ok {
		if err := adaptationevent.AdjustmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "adjustment_type", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.adjustment_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptationEventUpdateOne) sqlSave(ctx context.Context) (_node *AdaptationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdaptationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adaptationevent.FieldID)
		for _, f := range fields {
			if !adaptationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adaptationevent.FieldID {
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
		_spec.SetField(adaptationevent.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AdjustmentType(); ok {
		_spec.SetField(adaptationevent.FieldAdjustmentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreviousDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldPreviousDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreviousDifficulty(); ok {
		_spec.AddField(adaptationevent.FieldPreviousDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldNewDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewDifficulty(); ok {
		_spec.AddField(adaptationevent.FieldNewDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreviousVelocity(); ok {
		_spec.SetField(adaptationevent.FieldPreviousVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPreviousVelocity(); ok {
		_spec.AddField(adaptationevent.FieldPreviousVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NewVelocity(); ok {
		_spec.SetField(adaptationevent.FieldNewVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNewVelocity(); ok {
		_spec.AddField(adaptationevent.FieldNewVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PreviousEstimatedDays(); ok {
		_spec.SetField(adaptationevent.FieldPreviousEstimatedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreviousEstimatedDays(); ok {
		_spec.AddField(adaptationevent.FieldPreviousEstimatedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewEstimatedDays(); ok {
		_spec.SetField(adaptationevent.FieldNewEstimatedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewEstimatedDays(); ok {
		_spec.AddField(adaptationevent.FieldNewEstimatedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(adaptationevent.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(adaptationevent.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(adaptationevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(adaptationevent.FieldSource, field.TypeString, value)
	}
	_node = &AdaptationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
