// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/sprintartifact"
)

// SprintArtifactCreate is the builder for creating a SprintArtifact entity.
type SprintArtifactCreate struct {
	config
	mutation *SprintArtifactMutation
	hooks    []Hook
}

// SetSprintID sets the "sprint_id" field.
func (_c *SprintArtifactCreate) SetSprintID(v string) *SprintArtifactCreate {
	_c.mutation.SetSprintID(v)
	return _c
}

// SetArtifactID sets the "artifact_id" field.
func (_c *SprintArtifactCreate) SetArtifactID(v string) *SprintArtifactCreate {
	_c.mutation.SetArtifactID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *SprintArtifactCreate) SetProjectID(v string) *SprintArtifactCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *SprintArtifactCreate) SetNillableProjectID(v *string) *SprintArtifactCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *SprintArtifactCreate) SetType(v sprintartifact.Type) *SprintArtifactCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SprintArtifactCreate) SetTitle(v string) *SprintArtifactCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *SprintArtifactCreate) SetNillableTitle(v *string) *SprintArtifactCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *SprintArtifactCreate) SetURL(v string) *SprintArtifactCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *SprintArtifactCreate) SetNillableURL(v *string) *SprintArtifactCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SprintArtifactCreate) SetStatus(v sprintartifact.Status) *SprintArtifactCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SprintArtifactCreate) SetNillableStatus(v *sprintartifact.Status) *SprintArtifactCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *SprintArtifactCreate) SetNotes(v string) *SprintArtifactCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *SprintArtifactCreate) SetNillableNotes(v *string) *SprintArtifactCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SprintArtifactCreate) SetCreatedAt(v time.Time) *SprintArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SprintArtifactCreate) SetNillableCreatedAt(v *time.Time) *SprintArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SprintArtifactCreate) SetUpdatedAt(v time.Time) *SprintArtifactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SprintArtifactCreate) SetNillableUpdatedAt(v *time.Time) *SprintArtifactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SprintArtifactCreate) SetID(v string) *SprintArtifactCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SprintArtifactMutation object of the builder.
func (_c *SprintArtifactCreate) Mutation() *SprintArtifactMutation {
	return _c.mutation
}

// Save creates the SprintArtifact in the database.
func (_c *SprintArtifactCreate) Save(ctx context.Context) (*SprintArtifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SprintArtifactCreate) SaveX(ctx context.Context) *SprintArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SprintArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SprintArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SprintArtifactCreate) defaults() {
	if _, ok := _c.mutation.ProjectID(); !ok {
		v := sprintartifact.DefaultProjectID
		_c.mutation.SetProjectID(v)
	}
	if _, ok := _c.mutation.Title(); !ok {
		v := sprintartifact.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.URL(); !ok {
		v := sprintartifact.DefaultURL
		_c.mutation.SetURL(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := sprintartifact.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Notes(); !ok {
		v := sprintartifact.DefaultNotes
		_c.mutation.SetNotes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sprintartifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sprintartifact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SprintArtifactCreate) check() error {
	if _, ok := _c.mutation.SprintID(); !ok {
		return &ValidationError{Name: "sprint_id", err: errors.New(`ent: missing required field "SprintArtifact.sprint_id"`)}
	}
	if v, ok := _c.mutation.SprintID(); ok {
		if err := sprintartifact.SprintIDValidator(v); err != nil {
			return &ValidationError{Name: "sprint_id", err: fmt.Errorf(`ent: validator failed for field "SprintArtifact.sprint_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ArtifactID(); !ok {
		return &ValidationError{Name: "artifact_id", err: errors.New(`ent: missing required field "SprintArtifact.artifact_id"`)}
	}
	if v, ok := _c.mutation.ArtifactID(); ok {
		if err := sprintartifact.ArtifactIDValidator(v); err != nil {
			return &ValidationError{Name: "artifact_id", err: fmt.Errorf(`ent: validator failed for field "SprintArtifact.artifact_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "SprintArtifact.project_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "SprintArtifact.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := sprintartifact.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "SprintArtifact.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "SprintArtifact.title"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "SprintArtifact.url"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SprintArtifact.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sprintartifact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SprintArtifact.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "SprintArtifact.notes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SprintArtifact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SprintArtifact.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := sprintartifact.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "SprintArtifact.id": %w`, err)}
		}
	}
	return nil
}

func (_c *SprintArtifactCreate) sqlSave(ctx context.Context) (*SprintArtifact, error) {
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
			return nil, fmt.Errorf("unexpected SprintArtifact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SprintArtifactCreate) createSpec() (*SprintArtifact, *sqlgraph.CreateSpec) {
	var (
		_node = &SprintArtifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sprintartifact.Table, sqlgraph.NewFieldSpec(sprintartifact.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SprintID(); ok {
		_spec.SetField(sprintartifact.FieldSprintID, field.TypeString, value)
		_node.SprintID = value
	}
	if value, ok := _c.mutation.ArtifactID(); ok {
		_spec.SetField(sprintartifact.FieldArtifactID, field.TypeString, value)
		_node.ArtifactID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(sprintartifact.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(sprintartifact.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(sprintartifact.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(sprintartifact.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sprintartifact.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(sprintartifact.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sprintartifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sprintartifact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SprintArtifactCreateBulk is the builder for creating many SprintArtifact entities in bulk.
type SprintArtifactCreateBulk struct {
	config
	err      error
	builders []*SprintArtifactCreate
}

// Save creates the SprintArtifact entities in the database.
func (_c *SprintArtifactCreateBulk) Save(ctx context.Context) ([]*SprintArtifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SprintArtifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SprintArtifactMutation)
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
func (_c *SprintArtifactCreateBulk) SaveX(ctx context.Context) []*SprintArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SprintArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SprintArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
