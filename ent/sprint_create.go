// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/sprint"
)

// SprintCreate is the builder for creating a Sprint entity.
type SprintCreate struct {
	config
	mutation *SprintMutation
	hooks    []Hook
}

// SetObjectiveID sets the "objective_id" field.
func (_c *SprintCreate) SetObjectiveID(v string) *SprintCreate {
	_c.mutation.SetObjectiveID(v)
	return _c
}

// SetDayNumber sets the "day_number" field.
func (_c *SprintCreate) SetDayNumber(v int) *SprintCreate {
	_c.mutation.SetDayNumber(v)
	return _c
}

// SetLengthDays sets the "length_days" field.
func (_c *SprintCreate) SetLengthDays(v int) *SprintCreate {
	_c.mutation.SetLengthDays(v)
	return _c
}

// SetNillableLengthDays sets the "length_days" field if the given value is not nil.
func (_c *SprintCreate) SetNillableLengthDays(v *int) *SprintCreate {
	if v != nil {
		_c.SetLengthDays(*v)
	}
	return _c
}

// SetTotalEstimatedHours sets the "total_estimated_hours" field.
func (_c *SprintCreate) SetTotalEstimatedHours(v float64) *SprintCreate {
	_c.mutation.SetTotalEstimatedHours(v)
	return _c
}

// SetNillableTotalEstimatedHours sets the "total_estimated_hours" field if the given value is not nil.
func (_c *SprintCreate) SetNillableTotalEstimatedHours(v *float64) *SprintCreate {
	if v != nil {
		_c.SetTotalEstimatedHours(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *SprintCreate) SetDifficulty(v string) *SprintCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *SprintCreate) SetNillableDifficulty(v *string) *SprintCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SprintCreate) SetStatus(v sprint.Status) *SprintCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SprintCreate) SetNillableStatus(v *sprint.Status) *SprintCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPlannerInput sets the "planner_input" field.
func (_c *SprintCreate) SetPlannerInput(v map[string]interface{}) *SprintCreate {
	_c.mutation.SetPlannerInput(v)
	return _c
}

// SetPlannerOutput sets the "planner_output" field.
func (_c *SprintCreate) SetPlannerOutput(v map[string]interface{}) *SprintCreate {
	_c.mutation.SetPlannerOutput(v)
	return _c
}

// SetAdaptiveMetadata sets the "adaptive_metadata" field.
func (_c *SprintCreate) SetAdaptiveMetadata(v map[string]interface{}) *SprintCreate {
	_c.mutation.SetAdaptiveMetadata(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SprintCreate) SetStartedAt(v time.Time) *SprintCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SprintCreate) SetNillableStartedAt(v *time.Time) *SprintCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SprintCreate) SetCompletedAt(v time.Time) *SprintCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SprintCreate) SetNillableCompletedAt(v *time.Time) *SprintCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCompletionPercentage sets the "completion_percentage" field.
func (_c *SprintCreate) SetCompletionPercentage(v float64) *SprintCreate {
	_c.mutation.SetCompletionPercentage(v)
	return _c
}

// SetNillableCompletionPercentage sets the "completion_percentage" field if the given value is not nil.
func (_c *SprintCreate) SetNillableCompletionPercentage(v *float64) *SprintCreate {
	if v != nil {
		_c.SetCompletionPercentage(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *SprintCreate) SetScore(v float64) *SprintCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *SprintCreate) SetNillableScore(v *float64) *SprintCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetReviewerSummary sets the "reviewer_summary" field.
func (_c *SprintCreate) SetReviewerSummary(v string) *SprintCreate {
	_c.mutation.SetReviewerSummary(v)
	return _c
}

// SetNillableReviewerSummary sets the "reviewer_summary" field if the given value is not nil.
func (_c *SprintCreate) SetNillableReviewerSummary(v *string) *SprintCreate {
	if v != nil {
		_c.SetReviewerSummary(*v)
	}
	return _c
}

// SetSelfEvaluationConfidence sets the "self_evaluation_confidence" field.
func (_c *SprintCreate) SetSelfEvaluationConfidence(v int) *SprintCreate {
	_c.mutation.SetSelfEvaluationConfidence(v)
	return _c
}

// SetNillableSelfEvaluationConfidence sets the "self_evaluation_confidence" field if the given value is not nil.
func (_c *SprintCreate) SetNillableSelfEvaluationConfidence(v *int) *SprintCreate {
	if v != nil {
		_c.SetSelfEvaluationConfidence(*v)
	}
	return _c
}

// SetSelfEvaluationReflection sets the "self_evaluation_reflection" field.
func (_c *SprintCreate) SetSelfEvaluationReflection(v string) *SprintCreate {
	_c.mutation.SetSelfEvaluationReflection(v)
	return _c
}

// SetNillableSelfEvaluationReflection sets the "self_evaluation_reflection" field if the given value is not nil.
func (_c *SprintCreate) SetNillableSelfEvaluationReflection(v *string) *SprintCreate {
	if v != nil {
		_c.SetSelfEvaluationReflection(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SprintCreate) SetCreatedAt(v time.Time) *SprintCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SprintCreate) SetNillableCreatedAt(v *time.Time) *SprintCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SprintCreate) SetUpdatedAt(v time.Time) *SprintCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SprintCreate) SetNillableUpdatedAt(v *time.Time) *SprintCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SprintCreate) SetID(v string) *SprintCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SprintMutation object of the builder.
func (_c *SprintCreate) Mutation() *SprintMutation {
	return _c.mutation
}

// Save creates the Sprint in the database.
func (_c *SprintCreate) Save(ctx context.Context) (*Sprint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SprintCreate) SaveX(ctx context.Context) *Sprint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SprintCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SprintCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SprintCreate) defaults() {
	if _, ok := _c.mutation.LengthDays(); !ok {
		v := sprint.DefaultLengthDays
		_c.mutation.SetLengthDays(v)
	}
	if _, ok := _c.mutation.TotalEstimatedHours(); !ok {
		v := sprint.DefaultTotalEstimatedHours
		_c.mutation.SetTotalEstimatedHours(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := sprint.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := sprint.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CompletionPercentage(); !ok {
		v := sprint.DefaultCompletionPercentage
		_c.mutation.SetCompletionPercentage(v)
	}
	if _, ok := _c.mutation.ReviewerSummary(); !ok {
		v := sprint.DefaultReviewerSummary
		_c.mutation.SetReviewerSummary(v)
	}
	if _, ok := _c.mutation.SelfEvaluationReflection(); !ok {
		v := sprint.DefaultSelfEvaluationReflection
		_c.mutation.SetSelfEvaluationReflection(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sprint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sprint.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SprintCreate) check() error {
	if _, ok := _c.mutation.ObjectiveID(); !ok {
		return &ValidationError{Name: "objective_id", err: errors.New(`ent: missing required field "Sprint.objective_id"`)}
	}
	if v, ok := _c.mutation.ObjectiveID(); ok {
		if err := sprint.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "Sprint.objective_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DayNumber(); !ok {
		return &ValidationError{Name: "day_number", err: errors.New(`ent: missing required field "Sprint.day_number"`)}
	}
	if v, ok := _c.mutation.DayNumber(); ok {
		if err := sprint.DayNumberValidator(v); err != nil {
			return &ValidationError{Name: "day_number", err: fmt.Errorf(`ent: validator failed for field "Sprint.day_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LengthDays(); !ok {
		return &ValidationError{Name: "length_days", err: errors.New(`ent: missing required field "Sprint.length_days"`)}
	}
	if _, ok := _c.mutation.TotalEstimatedHours(); !ok {
		return &ValidationError{Name: "total_estimated_hours", err: errors.New(`ent: missing required field "Sprint.total_estimated_hours"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Sprint.difficulty"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Sprint.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sprint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Sprint.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletionPercentage(); !ok {
		return &ValidationError{Name: "completion_percentage", err: errors.New(`ent: missing required field "Sprint.completion_percentage"`)}
	}
	if _, ok := _c.mutation.ReviewerSummary(); !ok {
		return &ValidationError{Name: "reviewer_summary", err: errors.New(`ent: missing required field "Sprint.reviewer_summary"`)}
	}
	if _, ok := _c.mutation.SelfEvaluationReflection(); !ok {
		return &ValidationError{Name: "self_evaluation_reflection", err: errors.New(`ent: missing required field "Sprint.self_evaluation_reflection"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Sprint.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Sprint.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := sprint.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Sprint.id": %w`, err)}
		}
	}
	return nil
}

func (_c *SprintCreate) sqlSave(ctx context.Context) (*Sprint, error) {
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
			return nil, fmt.Errorf("unexpected Sprint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SprintCreate) createSpec() (*Sprint, *sqlgraph.CreateSpec) {
	var (
		_node = &Sprint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sprint.Table, sqlgraph.NewFieldSpec(sprint.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ObjectiveID(); ok {
		_spec.SetField(sprint.FieldObjectiveID, field.TypeString, value)
		_node.ObjectiveID = value
	}
	if value, ok := _c.mutation.DayNumber(); ok {
		_spec.SetField(sprint.FieldDayNumber, field.TypeInt, value)
		_node.DayNumber = value
	}
	if value, ok := _c.mutation.LengthDays(); ok {
		_spec.SetField(sprint.FieldLengthDays, field.TypeInt, value)
		_node.LengthDays = value
	}
	if value, ok := _c.mutation.TotalEstimatedHours(); ok {
		_spec.SetField(sprint.FieldTotalEstimatedHours, field.TypeFloat64, value)
		_node.TotalEstimatedHours = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(sprint.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sprint.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PlannerInput(); ok {
		_spec.SetField(sprint.FieldPlannerInput, field.TypeJSON, value)
		_node.PlannerInput = value
	}
	if value, ok := _c.mutation.PlannerOutput(); ok {
		_spec.SetField(sprint.FieldPlannerOutput, field.TypeJSON, value)
		_node.PlannerOutput = value
	}
	if value, ok := _c.mutation.AdaptiveMetadata(); ok {
		_spec.SetField(sprint.FieldAdaptiveMetadata, field.TypeJSON, value)
		_node.AdaptiveMetadata = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(sprint.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(sprint.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CompletionPercentage(); ok {
		_spec.SetField(sprint.FieldCompletionPercentage, field.TypeFloat64, value)
		_node.CompletionPercentage = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(sprint.FieldScore, field.TypeFloat64, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.ReviewerSummary(); ok {
		_spec.SetField(sprint.FieldReviewerSummary, field.TypeString, value)
		_node.ReviewerSummary = value
	}
	if value, ok := _c.mutation.SelfEvaluationConfidence(); ok {
		_spec.SetField(sprint.FieldSelfEvaluationConfidence, field.TypeInt, value)
		_node.SelfEvaluationConfidence = &value
	}
	if value, ok := _c.mutation.SelfEvaluationReflection(); ok {
		_spec.SetField(sprint.FieldSelfEvaluationReflection, field.TypeString, value)
		_node.SelfEvaluationReflection = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sprint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sprint.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SprintCreateBulk is the builder for creating many Sprint entities in bulk.
type SprintCreateBulk struct {
	config
	err      error
	builders []*SprintCreate
}

// Save creates the Sprint entities in the database.
func (_c *SprintCreateBulk) Save(ctx context.Context) ([]*Sprint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Sprint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SprintMutation)
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
func (_c *SprintCreateBulk) SaveX(ctx context.Context) []*Sprint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SprintCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SprintCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
