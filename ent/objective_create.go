// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/objective"
)

// ObjectiveCreate is the builder for creating a Objective entity.
type ObjectiveCreate struct {
	config
	mutation *ObjectiveMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ObjectiveCreate) SetUserID(v string) *ObjectiveCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ObjectiveCreate) SetTitle(v string) *ObjectiveCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ObjectiveCreate) SetDescription(v string) *ObjectiveCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ObjectiveCreate) SetNillableDescription(v *string) *ObjectiveCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSuccessCriteria sets the "success_criteria" field.
func (_c *ObjectiveCreate) SetSuccessCriteria(v []string) *ObjectiveCreate {
	_c.mutation.SetSuccessCriteria(v)
	return _c
}

// SetRequiredSkills sets the "required_skills" field.
func (_c *ObjectiveCreate) SetRequiredSkills(v []string) *ObjectiveCreate {
	_c.mutation.SetRequiredSkills(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ObjectiveCreate) SetPriority(v string) *ObjectiveCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ObjectiveCreate) SetNillablePriority(v *string) *ObjectiveCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ObjectiveCreate) SetStatus(v objective.Status) *ObjectiveCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ObjectiveCreate) SetNillableStatus(v *objective.Status) *ObjectiveCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEstimatedTotalDays sets the "estimated_total_days" field.
func (_c *ObjectiveCreate) SetEstimatedTotalDays(v int) *ObjectiveCreate {
	_c.mutation.SetEstimatedTotalDays(v)
	return _c
}

// SetCompletedDays sets the "completed_days" field.
func (_c *ObjectiveCreate) SetCompletedDays(v int) *ObjectiveCreate {
	_c.mutation.SetCompletedDays(v)
	return _c
}

// SetNillableCompletedDays sets the "completed_days" field if the given value is not nil.
func (_c *ObjectiveCreate) SetNillableCompletedDays(v *int) *ObjectiveCreate {
	if v != nil {
		_c.SetCompletedDays(*v)
	}
	return _c
}

// SetCurrentDifficulty sets the "current_difficulty" field.
func (_c *ObjectiveCreate) SetCurrentDifficulty(v int) *ObjectiveCreate {
	_c.mutation.SetCurrentDifficulty(v)
	return _c
}

// SetNillableCurrentDifficulty sets the "current_difficulty" field if the given value is not nil.
func (_c *ObjectiveCreate) SetNillableCurrentDifficulty(v *int) *ObjectiveCreate {
	if v != nil {
		_c.SetCurrentDifficulty(*v)
	}
	return _c
}

// SetLearningVelocity sets the "learning_velocity" field.
func (_c *ObjectiveCreate) SetLearningVelocity(v float64) *ObjectiveCreate {
	_c.mutation.SetLearningVelocity(v)
	return _c
}

// SetNillableLearningVelocity sets the "learning_velocity" field if the given value is not nil.
func (_c *ObjectiveCreate) SetNillableLearningVelocity(v *float64) *ObjectiveCreate {
	if v != nil {
		_c.SetLearningVelocity(*v)
	}
	return _c
}

// SetRecalibrationCount sets the "recalibration_count" field.
func (_c *ObjectiveCreate) SetRecalibrationCount(v int) *ObjectiveCreate {
	_c.mutation.SetRecalibrationCount(v)
	return _c
}

// SetNillableRecalibrationCount sets the "recalibration_count" field if the given value is not nil.
func (_c *ObjectiveCreate) SetNillableRecalibrationCount(v *int) *ObjectiveCreate {
	if v != nil {
		_c.SetRecalibrationCount(*v)
	}
	return _c
}

// SetCurrentStreak sets the "current_streak" field.
func (_c *ObjectiveCreate) SetCurrentStreak(v int) *ObjectiveCreate {
	_c.mutation.SetCurrentStreak(v)
	return _c
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_c *ObjectiveCreate) SetNillableCurrentStreak(v *int) *ObjectiveCreate {
	if v != nil {
		_c.SetCurrentStreak(*v)
	}
	return _c
}

// SetLongestStreak sets the "longest_streak" field.
func (_c *ObjectiveCreate) SetLongestStreak(v int) *ObjectiveCreate {
	_c.mutation.SetLongestStreak(v)
	return _c
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_c *ObjectiveCreate) SetNillableLongestStreak(v *int) *ObjectiveCreate {
	if v != nil {
		_c.SetLongestStreak(*v)
	}
	return _c
}

// SetLastCompletedAt sets the "last_completed_at" field.
func (_c *ObjectiveCreate) SetLastCompletedAt(v time.Time) *ObjectiveCreate {
	_c.mutation.SetLastCompletedAt(v)
	return _c
}

// SetNillableLastCompletedAt sets the "last_completed_at" field if the given value is not nil.
func (_c *ObjectiveCreate) SetNillableLastCompletedAt(v *time.Time) *ObjectiveCreate {
	if v != nil {
		_c.SetLastCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ObjectiveCreate) SetCreatedAt(v time.Time) *ObjectiveCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ObjectiveCreate) SetNillableCreatedAt(v *time.Time) *ObjectiveCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ObjectiveCreate) SetUpdatedAt(v time.Time) *ObjectiveCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ObjectiveCreate) SetNillableUpdatedAt(v *time.Time) *ObjectiveCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ObjectiveCreate) SetID(v string) *ObjectiveCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ObjectiveMutation object of the builder.
func (_c *ObjectiveCreate) Mutation() *ObjectiveMutation {
	return _c.mutation
}

// Save creates the Objective in the database.
func (_c *ObjectiveCreate) Save(ctx context.Context) (*Objective, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ObjectiveCreate) SaveX(ctx context.Context) *Objective {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObjectiveCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObjectiveCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ObjectiveCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := objective.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := objective.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := objective.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CompletedDays(); !ok {
		v := objective.DefaultCompletedDays
		_c.mutation.SetCompletedDays(v)
	}
	if _, ok := _c.mutation.CurrentDifficulty(); !ok {
		v := objective.DefaultCurrentDifficulty
		_c.mutation.SetCurrentDifficulty(v)
	}
	if _, ok := _c.mutation.LearningVelocity(); !ok {
		v := objective.DefaultLearningVelocity
		_c.mutation.SetLearningVelocity(v)
	}
	if _, ok := _c.mutation.RecalibrationCount(); !ok {
		v := objective.DefaultRecalibrationCount
		_c.mutation.SetRecalibrationCount(v)
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		v := objective.DefaultCurrentStreak
		_c.mutation.SetCurrentStreak(v)
	}
	if _, ok := _c.mutation.LongestStreak(); !ok {
		v := objective.DefaultLongestStreak
		_c.mutation.SetLongestStreak(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := objective.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := objective.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ObjectiveCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Objective.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := objective.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Objective.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Objective.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := objective.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Objective.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Objective.description"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Objective.priority"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Objective.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := objective.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Objective.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EstimatedTotalDays(); !ok {
		return &ValidationError{Name: "estimated_total_days", err: errors.New(`ent: missing required field "Objective.estimated_total_days"`)}
	}
	if v, ok := _c.mutation.EstimatedTotalDays(); ok {
		if err := objective.EstimatedTotalDaysValidator(v); err != nil {
			return &ValidationError{Name: "estimated_total_days", err: fmt.Errorf(`ent: validator failed for field "Objective.estimated_total_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedDays(); !ok {
		return &ValidationError{Name: "completed_days", err: errors.New(`ent: missing required field "Objective.completed_days"`)}
	}
	if _, ok := _c.mutation.CurrentDifficulty(); !ok {
		return &ValidationError{Name: "current_difficulty", err: errors.New(`ent: missing required field "Objective.current_difficulty"`)}
	}
	if v, ok := _c.mutation.CurrentDifficulty(); ok {
		if err := objective.CurrentDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "current_difficulty", err: fmt.Errorf(`ent: validator failed for field "Objective.current_difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearningVelocity(); !ok {
		return &ValidationError{Name: "learning_velocity", err: errors.New(`ent: missing required field "Objective.learning_velocity"`)}
	}
	if _, ok := _c.mutation.RecalibrationCount(); !ok {
		return &ValidationError{Name: "recalibration_count", err: errors.New(`ent: missing required field "Objective.recalibration_count"`)}
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		return &ValidationError{Name: "current_streak", err: errors.New(`ent: missing required field "Objective.current_streak"`)}
	}
	if _, ok := _c.mutation.LongestStreak(); !ok {
		return &ValidationError{Name: "longest_streak", err: errors.New(`ent: missing required field "Objective.longest_streak"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Objective.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Objective.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := objective.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Objective.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ObjectiveCreate) sqlSave(ctx context.Context) (*Objective, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Objective.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ObjectiveCreate) createSpec() (*Objective, *sqlgraph.CreateSpec) {
	var (
		_node = &Objective{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(objective.Table, sqlgraph.NewFieldSpec(objective.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(objective.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(objective.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(objective.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.SuccessCriteria(); ok {
		_spec.SetField(objective.FieldSuccessCriteria, field.TypeJSON, value)
		_node.SuccessCriteria = value
	}
	if value, ok := _c.mutation.RequiredSkills(); ok {
		_spec.SetField(objective.FieldRequiredSkills, field.TypeJSON, value)
		_node.RequiredSkills = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(objective.FieldPriority, field.TypeString, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(objective.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EstimatedTotalDays(); ok {
		_spec.SetField(objective.FieldEstimatedTotalDays, field.TypeInt, value)
		_node.EstimatedTotalDays = value
	}
	if value, ok := _c.mutation.CompletedDays(); ok {
		_spec.SetField(objective.FieldCompletedDays, field.TypeInt, value)
		_node.CompletedDays = value
	}
	if value, ok := _c.mutation.CurrentDifficulty(); ok {
		_spec.SetField(objective.FieldCurrentDifficulty, field.TypeInt, value)
		_node.CurrentDifficulty = value
	}
	if value, ok := _c.mutation.LearningVelocity(); ok {
		_spec.SetField(objective.FieldLearningVelocity, field.TypeFloat64, value)
		_node.LearningVelocity = value
	}
	if value, ok := _c.mutation.RecalibrationCount(); ok {
		_spec.SetField(objective.FieldRecalibrationCount, field.TypeInt, value)
		_node.RecalibrationCount = value
	}
	if value, ok := _c.mutation.CurrentStreak(); ok {
		_spec.SetField(objective.FieldCurrentStreak, field.TypeInt, value)
		_node.CurrentStreak = value
	}
	if value, ok := _c.mutation.LongestStreak(); ok {
		_spec.SetField(objective.FieldLongestStreak, field.TypeInt, value)
		_node.LongestStreak = value
	}
	if value, ok := _c.mutation.LastCompletedAt(); ok {
		_spec.SetField(objective.FieldLastCompletedAt, field.TypeTime, value)
		_node.LastCompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(objective.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(objective.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ObjectiveCreateBulk is the builder for creating many Objective entities in bulk.
type ObjectiveCreateBulk struct {
	config
	err      error
	builders []*ObjectiveCreate
}

// Save creates the Objective entities in the database.
func (_c *ObjectiveCreateBulk) Save(ctx context.Context) ([]*Objective, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Objective, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ObjectiveMutation)
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
func (_c *ObjectiveCreateBulk) SaveX(ctx context.Context) []*Objective {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObjectiveCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObjectiveCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
