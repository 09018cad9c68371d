// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/adaptationevent"
)

// AdaptationEventCreate is the builder for creating a AdaptationEvent entity.
type AdaptationEventCreate struct {
	config
	mutation *AdaptationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AdaptationEventCreate) SetSequence(v int64) *AdaptationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AdaptationEventCreate) SetTimestamp(v time.Time) *AdaptationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AdaptationEventCreate) SetNillableTimestamp(v *time.Time) *AdaptationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetObjectiveID sets the "objective_id" field.
func (_c *AdaptationEventCreate) SetObjectiveID(v string) *AdaptationEventCreate {
	_c.mutation.SetObjectiveID(v)
	return _c
}

// SetAdjustmentType sets the "adjustment_type" field.
func (_c *AdaptationEventCreate) SetAdjustmentType(v string) *AdaptationEventCreate {
	_c.mutation.SetAdjustmentType(v)
	return _c
}

// SetPreviousDifficulty sets the "previous_difficulty" field.
func (_c *AdaptationEventCreate) SetPreviousDifficulty(v int) *AdaptationEventCreate {
	_c.mutation.SetPreviousDifficulty(v)
	return _c
}

// SetNewDifficulty sets the "new_difficulty" field.
func (_c *AdaptationEventCreate) SetNewDifficulty(v int) *AdaptationEventCreate {
	_c.mutation.SetNewDifficulty(v)
	return _c
}

// SetPreviousVelocity sets the "previous_velocity" field.
func (_c *AdaptationEventCreate) SetPreviousVelocity(v float64) *AdaptationEventCreate {
	_c.mutation.SetPreviousVelocity(v)
	return _c
}

// SetNewVelocity sets the "new_velocity" field.
func (_c *AdaptationEventCreate) SetNewVelocity(v float64) *AdaptationEventCreate {
	_c.mutation.SetNewVelocity(v)
	return _c
}

// SetPreviousEstimatedDays sets the "previous_estimated_days" field.
func (_c *AdaptationEventCreate) SetPreviousEstimatedDays(v int) *AdaptationEventCreate {
	_c.mutation.SetPreviousEstimatedDays(v)
	return _c
}

// SetNewEstimatedDays sets the "new_estimated_days" field.
func (_c *AdaptationEventCreate) SetNewEstimatedDays(v int) *AdaptationEventCreate {
	_c.mutation.SetNewEstimatedDays(v)
	return _c
}

// SetAverageScore sets the "average_score" field.
func (_c *AdaptationEventCreate) SetAverageScore(v float64) *AdaptationEventCreate {
	_c.mutation.SetAverageScore(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *AdaptationEventCreate) SetReason(v string) *AdaptationEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *AdaptationEventCreate) SetNillableReason(v *string) *AdaptationEventCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *AdaptationEventCreate) SetSource(v string) *AdaptationEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *AdaptationEventCreate) SetNillableSource(v *string) *AdaptationEventCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_c *AdaptationEventCreate) Mutation() *AdaptationEventMutation {
	return _c.mutation
}

// Save creates the AdaptationEvent in the database.
func (_c *AdaptationEventCreate) Save(ctx context.Context) (*AdaptationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdaptationEventCreate) SaveX(ctx context.Context) *AdaptationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdaptationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdaptationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdaptationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := adaptationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Reason(); !ok {
		v := adaptationevent.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := adaptationevent.DefaultSource
		_c.mutation.SetSource(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdaptationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AdaptationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AdaptationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ObjectiveID(); !ok {
		return &ValidationError{Name: "objective_id", err: errors.New(`ent: missing required field "AdaptationEvent.objective_id"`)}
	}
	if v, ok := _c.mutation.ObjectiveID(); ok {
		if err := adaptationevent.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.objective_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AdjustmentType(); !ok {
		return &ValidationError{Name: "adjustment_type", err: errors.New(`ent: missing required field "AdaptationEvent.adjustment_type"`)}
	}
	if v, ok := _c.mutation.AdjustmentType(); ok {
		if err := adaptationevent.AdjustmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "adjustment_type", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.adjustment_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PreviousDifficulty(); !ok {
		return &ValidationError{Name: "previous_difficulty", err: errors.New(`ent: missing required field "AdaptationEvent.previous_difficulty"`)}
	}
	if _, ok := _c.mutation.NewDifficulty(); !ok {
		return &ValidationError{Name: "new_difficulty", err: errors.New(`ent: missing required field "AdaptationEvent.new_difficulty"`)}
	}
	if _, ok := _c.mutation.PreviousVelocity(); !ok {
		return &ValidationError{Name: "previous_velocity", err: errors.New(`ent: missing required field "AdaptationEvent.previous_velocity"`)}
	}
	if _, ok := _c.mutation.NewVelocity(); !ok {
		return &ValidationError{Name: "new_velocity", err: errors.New(`ent: missing required field "AdaptationEvent.new_velocity"`)}
	}
	if _, ok := _c.mutation.PreviousEstimatedDays(); !ok {
		return &ValidationError{Name: "previous_estimated_days", err: errors.New(`ent: missing required field "AdaptationEvent.previous_estimated_days"`)}
	}
	if _, ok := _c.mutation.NewEstimatedDays(); !ok {
		return &ValidationError{Name: "new_estimated_days", err: errors.New(`ent: missing required field "AdaptationEvent.new_estimated_days"`)}
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		return &ValidationError{Name: "average_score", err: errors.New(`ent: missing required field "AdaptationEvent.average_score"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "AdaptationEvent.reason"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "AdaptationEvent.source"`)}
	}
	return nil
}

func (_c *AdaptationEventCreate) sqlSave(ctx context.Context) (*AdaptationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AdaptationEventCreate) createSpec() (*AdaptationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AdaptationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(adaptationevent.Table, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(adaptationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(adaptationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ObjectiveID(); ok {
		_spec.SetField(adaptationevent.FieldObjectiveID, field.TypeString, value)
		_node.ObjectiveID = value
	}
	if value, ok := _c.mutation.AdjustmentType(); ok {
		_spec.SetField(adaptationevent.FieldAdjustmentType, field.TypeString, value)
		_node.AdjustmentType = value
	}
	if value, ok := _c.mutation.PreviousDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldPreviousDifficulty, field.TypeInt, value)
		_node.PreviousDifficulty = value
	}
	if value, ok := _c.mutation.NewDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldNewDifficulty, field.TypeInt, value)
		_node.NewDifficulty = value
	}
	if value, ok := _c.mutation.PreviousVelocity(); ok {
		_spec.SetField(adaptationevent.FieldPreviousVelocity, field.TypeFloat64, value)
		_node.PreviousVelocity = value
	}
	if value, ok := _c.mutation.NewVelocity(); ok {
		_spec.SetField(adaptationevent.FieldNewVelocity, field.TypeFloat64, value)
		_node.NewVelocity = value
	}
	if value, ok := _c.mutation.PreviousEstimatedDays(); ok {
		_spec.SetField(adaptationevent.FieldPreviousEstimatedDays, field.TypeInt, value)
		_node.PreviousEstimatedDays = value
	}
	if value, ok := _c.mutation.NewEstimatedDays(); ok {
		_spec.SetField(adaptationevent.FieldNewEstimatedDays, field.TypeInt, value)
		_node.NewEstimatedDays = value
	}
	if value, ok := _c.mutation.AverageScore(); ok {
		_spec.SetField(adaptationevent.FieldAverageScore, field.TypeFloat64, value)
		_node.AverageScore = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(adaptationevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(adaptationevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	return _node, _spec
}

// AdaptationEventCreateBulk is the builder for creating many AdaptationEvent entities in bulk.
type AdaptationEventCreateBulk struct {
	config
	err      error
	builders []*AdaptationEventCreate
}

// Save creates the AdaptationEvent entities in the database.
func (_c *AdaptationEventCreateBulk) Save(ctx context.Context) ([]*AdaptationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdaptationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdaptationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AdaptationEventCreateBulk) SaveX(ctx context.Context) []*AdaptationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdaptationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdaptationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
