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
	"github.com/abhisek/cadence/ent/milestone"
	"github.com/abhisek/cadence/ent/predicate"
)

// MilestoneUpdate is the builder for updating Milestone entities.
type MilestoneUpdate struct {
	config
	hooks    []Hook
	mutation *MilestoneMutation
}

// Where appends a list predicates to the MilestoneUpdate builder.
func (_u *MilestoneUpdate) Where(ps ...predicate.Milestone) *MilestoneUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *MilestoneUpdate) SetObjectiveID(v string) *MilestoneUpdate {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableObjectiveID(v *string) *MilestoneUpdate {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MilestoneUpdate) SetTitle(v string) *MilestoneUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableTitle(v *string) *MilestoneUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTargetDay sets the "target_day" field.
func (_u *MilestoneUpdate) SetTargetDay(v int) *MilestoneUpdate {
	_u.mutation.ResetTargetDay()
	_u.mutation.SetTargetDay(v)
	return _u
}

// SetNillableTargetDay sets the "target_day" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableTargetDay(v *int) *MilestoneUpdate {
	if v != nil {
		_u.SetTargetDay(*v)
	}
	return _u
}

// AddTargetDay adds value to the "target_day" field.
func (_u *MilestoneUpdate) AddTargetDay(v int) *MilestoneUpdate {
	_u.mutation.AddTargetDay(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *MilestoneUpdate) SetCompleted(v bool) *MilestoneUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableCompleted(v *bool) *MilestoneUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MilestoneUpdate) SetCompletedAt(v time.Time) *MilestoneUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableCompletedAt(v *time.Time) *MilestoneUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MilestoneUpdate) ClearCompletedAt() *MilestoneUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the MilestoneMutation object of the builder.
func (_u *MilestoneUpdate) Mutation() *MilestoneMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MilestoneUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MilestoneUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MilestoneUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MilestoneUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MilestoneUpdate) check() error {
	if v, ok := _u.mutation.ObjectiveID(); ok {
		if err := milestone.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "Milestone.objective_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := milestone.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Milestone.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetDay(); ok {
		if err := milestone.TargetDayValidator(v); err != nil {
			return &ValidationError{Name: "target_day", err: fmt.Errorf(`ent: validator failed for field "Milestone.target_day": %w`, err)}
		}
	}
	return nil
}

func (_u *MilestoneUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(milestone.Table, milestone.Columns, sqlgraph.NewFieldSpec(milestone.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(milestone.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(milestone.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetDay(); ok {
		_spec.SetField(milestone.FieldTargetDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetDay(); ok {
		_spec.AddField(milestone.FieldTargetDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(milestone.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(milestone.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(milestone.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{milestone.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MilestoneUpdateOne is the builder for updating a single Milestone entity.
type MilestoneUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MilestoneMutation
}

// SetObjectiveID sets the "objective_id" field.
func (_u *MilestoneUpdateOne) SetObjectiveID(v string) *MilestoneUpdateOne {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableObjectiveID(v *string) *MilestoneUpdateOne {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MilestoneUpdateOne) SetTitle(v string) *MilestoneUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableTitle(v *string) *MilestoneUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTargetDay sets the "target_day" field.
func (_u *MilestoneUpdateOne) SetTargetDay(v int) *MilestoneUpdateOne {
	_u.mutation.ResetTargetDay()
	_u.mutation.SetTargetDay(v)
	return _u
}

// SetNillableTargetDay sets the "target_day" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableTargetDay(v *int) *MilestoneUpdateOne {
	if v != nil {
		_u.SetTargetDay(*v)
	}
	return _u
}

// AddTargetDay adds value to the "target_day" field.
func (_u *MilestoneUpdateOne) AddTargetDay(v int) *MilestoneUpdateOne {
	_u.mutation.AddTargetDay(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *MilestoneUpdateOne) SetCompleted(v bool) *MilestoneUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableCompleted(v *bool) *MilestoneUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MilestoneUpdateOne) SetCompletedAt(v time.Time) *MilestoneUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableCompletedAt(v *time.Time) *MilestoneUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MilestoneUpdateOne) ClearCompletedAt() *MilestoneUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the MilestoneMutation object of the builder.
func (_u *MilestoneUpdateOne) Mutation() *MilestoneMutation {
	return _u.mutation
}

// Where appends a list predicates to the MilestoneUpdate builder.
func (_u *MilestoneUpdateOne) Where(ps ...predicate.Milestone) *MilestoneUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MilestoneUpdateOne) Select(field string, fields ...string) *MilestoneUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Milestone entity.
func (_u *MilestoneUpdateOne) Save(ctx context.Context) (*Milestone, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MilestoneUpdateOne) SaveX(ctx context.Context) *Milestone {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MilestoneUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MilestoneUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MilestoneUpdateOne) check() error {
	if v, ok := _u.mutation.ObjectiveID(); ok {
		if err := milestone.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "Milestone.objective_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := milestone.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Milestone.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetDay(); ok {
		if err := milestone.TargetDayValidator(v); err != nil {
			return &ValidationError{Name: "target_day", err: fmt.Errorf(`ent: validator failed for field "Milestone.target_day": %w`, err)}
		}
	}
	return nil
}

func (_u *MilestoneUpdateOne) sqlSave(ctx context.Context) (_node *Milestone, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(milestone.Table, milestone.Columns, sqlgraph.NewFieldSpec(milestone.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Milestone.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, milestone.FieldID)
		for _, f := range fields {
			if !milestone.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != milestone.FieldID {
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
		_spec.SetField(milestone.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(milestone.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetDay(); ok {
		_spec.SetField(milestone.FieldTargetDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetDay(); ok {
		_spec.AddField(milestone.FieldTargetDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(milestone.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(milestone.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(milestone.FieldCompletedAt, field.TypeTime)
	}
	_node = &Milestone{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{milestone.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
