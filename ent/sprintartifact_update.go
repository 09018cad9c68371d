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
	"github.com/abhisek/cadence/ent/sprintartifact"
)

// SprintArtifactUpdate is the builder for updating SprintArtifact entities.
type SprintArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *SprintArtifactMutation
}

// Where appends a list predicates to the SprintArtifactUpdate builder.
func (_u *SprintArtifactUpdate) Where(ps ...predicate.SprintArtifact) *SprintArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSprintID sets the "sprint_id" field.
func (_u *SprintArtifactUpdate) SetSprintID(v string) *SprintArtifactUpdate {
	_u.mutation.SetSprintID(v)
	return _u
}

// SetNillableSprintID sets the "sprint_id" field if the given value is not nil.
func (_u *SprintArtifactUpdate) SetNillableSprintID(v *string) *SprintArtifactUpdate {
	if v != nil {
		_u.SetSprintID(*v)
	}
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *SprintArtifactUpdate) SetArtifactID(v string) *SprintArtifactUpdate {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *SprintArtifactUpdate) SetNillableArtifactID(v *string) *SprintArtifactUpdate {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *SprintArtifactUpdate) SetProjectID(v string) *SprintArtifactUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *SprintArtifactUpdate) SetNillableProjectID(v *string) *SprintArtifactUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *SprintArtifactUpdate) SetType(v sprintartifact.Type) *SprintArtifactUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *SprintArtifactUpdate) SetNillableType(v *sprintartifact.Type) *SprintArtifactUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SprintArtifactUpdate) SetTitle(v string) *SprintArtifactUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SprintArtifactUpdate) SetNillableTitle(v *string) *SprintArtifactUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *SprintArtifactUpdate) SetURL(v string) *SprintArtifactUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SprintArtifactUpdate) SetNillableURL(v *string) *SprintArtifactUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SprintArtifactUpdate) SetStatus(v sprintartifact.Status) *SprintArtifactUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SprintArtifactUpdate) SetNillableStatus(v *sprintartifact.Status) *SprintArtifactUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SprintArtifactUpdate) SetNotes(v string) *SprintArtifactUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SprintArtifactUpdate) SetNillableNotes(v *string) *SprintArtifactUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SprintArtifactUpdate) SetUpdatedAt(v time.Time) *SprintArtifactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SprintArtifactMutation object of the builder.
func (_u *SprintArtifactUpdate) Mutation() *SprintArtifactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SprintArtifactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SprintArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SprintArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SprintArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SprintArtifactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sprintartifact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SprintArtifactUpdate) check() error {
	if v, ok := _u.mutation.SprintID(); ok {
		if err := sprintartifact.SprintIDValidator(v); err != nil {
			return &ValidationError{Name: "sprint_id", err: fmt.Errorf(`ent: validator failed for field "SprintArtifact.sprint_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArtifactID(); ok {
		if err := sprintartifact.ArtifactIDValidator(v); err != nil {
			return &ValidationError{Name: "artifact_id", err: fmt.Errorf(`ent: validator failed for field "SprintArtifact.artifact_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := sprintartifact.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "SprintArtifact.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sprintartifact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SprintArtifact.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SprintArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sprintartifact.Table, sprintartifact.Columns, sqlgraph.NewFieldSpec(sprintartifact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SprintID(); ok {
		_spec.SetField(sprintartifact.FieldSprintID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactID(); ok {
		_spec.SetField(sprintartifact.FieldArtifactID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(sprintartifact.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(sprintartifact.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(sprintartifact.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(sprintartifact.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sprintartifact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(sprintartifact.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sprintartifact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sprintartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SprintArtifactUpdateOne is the builder for updating a single SprintArtifact entity.
type SprintArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SprintArtifactMutation
}

// SetSprintID sets the "sprint_id" field.
func (_u *SprintArtifactUpdateOne) SetSprintID(v string) *SprintArtifactUpdateOne {
	_u.mutation.SetSprintID(v)
	return _u
}

// SetNillableSprintID sets the "sprint_id" field if the given value is not nil.
func (_u *SprintArtifactUpdateOne) SetNillableSprintID(v *string) *SprintArtifactUpdateOne {
	if v != nil {
		_u.SetSprintID(*v)
	}
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *SprintArtifactUpdateOne) SetArtifactID(v string) *SprintArtifactUpdateOne {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *SprintArtifactUpdateOne) SetNillableArtifactID(v *string) *SprintArtifactUpdateOne {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *SprintArtifactUpdateOne) SetProjectID(v string) *SprintArtifactUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *SprintArtifactUpdateOne) SetNillableProjectID(v *string) *SprintArtifactUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *SprintArtifactUpdateOne) SetType(v sprintartifact.Type) *SprintArtifactUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *SprintArtifactUpdateOne) SetNillableType(v *sprintartifact.Type) *SprintArtifactUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SprintArtifactUpdateOne) SetTitle(v string) *SprintArtifactUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SprintArtifactUpdateOne) SetNillableTitle(v *string) *SprintArtifactUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *SprintArtifactUpdateOne) SetURL(v string) *SprintArtifactUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SprintArtifactUpdateOne) SetNillableURL(v *string) *SprintArtifactUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SprintArtifactUpdateOne) SetStatus(v sprintartifact.Status) *SprintArtifactUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SprintArtifactUpdateOne) SetNillableStatus(v *sprintartifact.Status) *SprintArtifactUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SprintArtifactUpdateOne) SetNotes(v string) *SprintArtifactUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SprintArtifactUpdateOne) SetNillableNotes(v *string) *SprintArtifactUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SprintArtifactUpdateOne) SetUpdatedAt(v time.Time) *SprintArtifactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SprintArtifactMutation object of the builder.
func (_u *SprintArtifactUpdateOne) Mutation() *SprintArtifactMutation {
	return _u.mutation
}

// Where appends a list predicates to the SprintArtifactUpdate builder.
func (_u *SprintArtifactUpdateOne) Where(ps ...predicate.SprintArtifact) *SprintArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SprintArtifactUpdateOne) Select(field string, fields ...string) *SprintArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SprintArtifact entity.
func (_u *SprintArtifactUpdateOne) Save(ctx context.Context) (*SprintArtifact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SprintArtifactUpdateOne) SaveX(ctx context.Context) *SprintArtifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SprintArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SprintArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SprintArtifactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sprintartifact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SprintArtifactUpdateOne) check() error {
	if v, ok := _u.mutation.SprintID(); ok {
		if err := sprintartifact.SprintIDValidator(v); err != nil {
			return &ValidationError{Name: "sprint_id", err: fmt.Errorf(`ent: validator failed for field "SprintArtifact.sprint_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArtifactID(); ok {
		if err := sprintartifact.ArtifactIDValidator(v); err != nil {
			return &ValidationError{Name: "artifact_id", err: fmt.Errorf(`ent: validator failed for field "SprintArtifact.artifact_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := sprintartifact.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "SprintArtifact.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sprintartifact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SprintArtifact.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SprintArtifactUpdateOne) sqlSave(ctx context.Context) (_node *SprintArtifact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sprintartifact.Table, sprintartifact.Columns, sqlgraph.NewFieldSpec(sprintartifact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SprintArtifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sprintartifact.FieldID)
		for _, f := range fields {
			if !sprintartifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sprintartifact.FieldID {
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
	if value, ok := _u.mutation.SprintID(); ok {
		_spec.SetField(sprintartifact.FieldSprintID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactID(); ok {
		_spec.SetField(sprintartifact.FieldArtifactID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(sprintartifact.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(sprintartifact.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(sprintartifact.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(sprintartifact.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sprintartifact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(sprintartifact.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sprintartifact.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SprintArtifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sprintartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
