// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/adaptationevent"
	"github.com/abhisek/cadence/ent/domainevent"
	"github.com/abhisek/cadence/ent/llmrequestevent"
	"github.com/abhisek/cadence/ent/milestone"
	"github.com/abhisek/cadence/ent/objective"
	"github.com/abhisek/cadence/ent/predicate"
	"github.com/abhisek/cadence/ent/sprint"
	"github.com/abhisek/cadence/ent/sprintartifact"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdaptationEvent = "AdaptationEvent"
	TypeDomainEvent     = "DomainEvent"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeMilestone       = "Milestone"
	TypeObjective       = "Objective"
	TypeSprint          = "Sprint"
	TypeSprintArtifact  = "SprintArtifact"
)

// AdaptationEventMutation represents an operation that mutates the AdaptationEvent nodes in the graph.
type AdaptationEventMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	sequence                   *int64
	addsequence                *int64
	timestamp                  *time.Time
	objective_id               *string
	adjustment_type            *string
	previous_difficulty        *int
	addprevious_difficulty     *int
	new_difficulty             *int
	addnew_difficulty          *int
	previous_velocity          *float64
	addprevious_velocity       *float64
	new_velocity               *float64
	addnew_velocity            *float64
	previous_estimated_days    *int
	addprevious_estimated_days *int
	new_estimated_days         *int
	addnew_estimated_days      *int
	average_score              *float64
	addaverage_score           *float64
	reason                     *string
	source                     *string
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*AdaptationEvent, error)
	predicates                 []predicate.AdaptationEvent
}

var _ ent.Mutation = (*AdaptationEventMutation)(nil)

// adaptationeventOption allows management of the mutation configuration using functional options.
type adaptationeventOption func(*AdaptationEventMutation)

// newAdaptationEventMutation creates new mutation for the AdaptationEvent entity.
func newAdaptationEventMutation(c config, op Op, opts ...adaptationeventOption) *AdaptationEventMutation {
	m := &AdaptationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAdaptationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdaptationEventID sets the ID field of the mutation.
func withAdaptationEventID(id int) adaptationeventOption {
	return func(m *AdaptationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AdaptationEvent
		)
		m.oldValue = func(ctx context.Context) (*AdaptationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdaptationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdaptationEvent sets the old AdaptationEvent of the mutation.
func withAdaptationEvent(node *AdaptationEvent) adaptationeventOption {
	return func(m *AdaptationEventMutation) {
		m.oldValue = func(context.Context) (*AdaptationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdaptationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdaptationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdaptationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdaptationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdaptationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AdaptationEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AdaptationEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AdaptationEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AdaptationEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AdaptationEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AdaptationEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AdaptationEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AdaptationEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetObjectiveID sets the "objective_id" field.
func (m *AdaptationEventMutation) SetObjectiveID(s string) {
	m.objective_id = &s
}

// ObjectiveID returns the value of the "objective_id" field in the mutation.
func (m *AdaptationEventMutation) ObjectiveID() (r string, exists bool) {
	v := m.objective_id
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectiveID returns the old "objective_id" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldObjectiveID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectiveID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectiveID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectiveID: %w", err)
	}
	return oldValue.ObjectiveID, nil
}

// ResetObjectiveID resets all changes to the "objective_id" field.
func (m *AdaptationEventMutation) ResetObjectiveID() {
	m.objective_id = nil
}

// SetAdjustmentType sets the "adjustment_type" field.
func (m *AdaptationEventMutation) SetAdjustmentType(s string) {
	m.adjustment_type = &s
}

// AdjustmentType returns the value of the "adjustment_type" field in the mutation.
func (m *AdaptationEventMutation) AdjustmentType() (r string, exists bool) {
	v := m.adjustment_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAdjustmentType returns the old "adjustment_type" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldAdjustmentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdjustmentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdjustmentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdjustmentType: %w", err)
	}
	return oldValue.AdjustmentType, nil
}

// ResetAdjustmentType resets all changes to the "adjustment_type" field.
func (m *AdaptationEventMutation) ResetAdjustmentType() {
	m.adjustment_type = nil
}

// SetPreviousDifficulty sets the "previous_difficulty" field.
func (m *AdaptationEventMutation) SetPreviousDifficulty(i int) {
	m.previous_difficulty = &i
	m.addprevious_difficulty = nil
}

// PreviousDifficulty returns the value of the "previous_difficulty" field in the mutation.
func (m *AdaptationEventMutation) PreviousDifficulty() (r int, exists bool) {
	v := m.previous_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousDifficulty returns the old "previous_difficulty" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldPreviousDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousDifficulty: %w", err)
	}
	return oldValue.PreviousDifficulty, nil
}

// AddPreviousDifficulty adds i to the "previous_difficulty" field.
func (m *AdaptationEventMutation) AddPreviousDifficulty(i int) {
	if m.addprevious_difficulty != nil {
		*m.addprevious_difficulty += i
	} else {
		m.addprevious_difficulty = &i
	}
}

// AddedPreviousDifficulty returns the value that was added to the "previous_difficulty" field in this mutation.
func (m *AdaptationEventMutation) AddedPreviousDifficulty() (r int, exists bool) {
	v := m.addprevious_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetPreviousDifficulty resets all changes to the "previous_difficulty" field.
func (m *AdaptationEventMutation) ResetPreviousDifficulty() {
	m.previous_difficulty = nil
	m.addprevious_difficulty = nil
}

// SetNewDifficulty sets the "new_difficulty" field.
func (m *AdaptationEventMutation) SetNewDifficulty(i int) {
	m.new_difficulty = &i
	m.addnew_difficulty = nil
}

// NewDifficulty returns the value of the "new_difficulty" field in the mutation.
func (m *AdaptationEventMutation) NewDifficulty() (r int, exists bool) {
	v := m.new_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldNewDifficulty returns the old "new_difficulty" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldNewDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewDifficulty: %w", err)
	}
	return oldValue.NewDifficulty, nil
}

// AddNewDifficulty adds i to the "new_difficulty" field.
func (m *AdaptationEventMutation) AddNewDifficulty(i int) {
	if m.addnew_difficulty != nil {
		*m.addnew_difficulty += i
	} else {
		m.addnew_difficulty = &i
	}
}

// AddedNewDifficulty returns the value that was added to the "new_difficulty" field in this mutation.
func (m *AdaptationEventMutation) AddedNewDifficulty() (r int, exists bool) {
	v := m.addnew_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewDifficulty resets all changes to the "new_difficulty" field.
func (m *AdaptationEventMutation) ResetNewDifficulty() {
	m.new_difficulty = nil
	m.addnew_difficulty = nil
}

// SetPreviousVelocity sets the "previous_velocity" field.
func (m *AdaptationEventMutation) SetPreviousVelocity(f float64) {
	m.previous_velocity = &f
	m.addprevious_velocity = nil
}

// PreviousVelocity returns the value of the "previous_velocity" field in the mutation.
func (m *AdaptationEventMutation) PreviousVelocity() (r float64, exists bool) {
	v := m.previous_velocity
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousVelocity returns the old "previous_velocity" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldPreviousVelocity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousVelocity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousVelocity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousVelocity: %w", err)
	}
	return oldValue.PreviousVelocity, nil
}

// AddPreviousVelocity adds f to the "previous_velocity" field.
func (m *AdaptationEventMutation) AddPreviousVelocity(f float64) {
	if m.addprevious_velocity != nil {
		*m.addprevious_velocity += f
	} else {
		m.addprevious_velocity = &f
	}
}

// AddedPreviousVelocity returns the value that was added to the "previous_velocity" field in this mutation.
func (m *AdaptationEventMutation) AddedPreviousVelocity() (r float64, exists bool) {
	v := m.addprevious_velocity
	if v == nil {
		return
	}
	return *v, true
}

// ResetPreviousVelocity resets all changes to the "previous_velocity" field.
func (m *AdaptationEventMutation) ResetPreviousVelocity() {
	m.previous_velocity = nil
	m.addprevious_velocity = nil
}

// SetNewVelocity sets the "new_velocity" field.
func (m *AdaptationEventMutation) SetNewVelocity(f float64) {
	m.new_velocity = &f
	m.addnew_velocity = nil
}

// NewVelocity returns the value of the "new_velocity" field in the mutation.
func (m *AdaptationEventMutation) NewVelocity() (r float64, exists bool) {
	v := m.new_velocity
	if v == nil {
		return
	}
	return *v, true
}

// OldNewVelocity returns the old "new_velocity" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldNewVelocity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewVelocity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewVelocity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewVelocity: %w", err)
	}
	return oldValue.NewVelocity, nil
}

// AddNewVelocity adds f to the "new_velocity" field.
func (m *AdaptationEventMutation) AddNewVelocity(f float64) {
	if m.addnew_velocity != nil {
		*m.addnew_velocity += f
	} else {
		m.addnew_velocity = &f
	}
}

// AddedNewVelocity returns the value that was added to the "new_velocity" field in this mutation.
func (m *AdaptationEventMutation) AddedNewVelocity() (r float64, exists bool) {
	v := m.addnew_velocity
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewVelocity resets all changes to the "new_velocity" field.
func (m *AdaptationEventMutation) ResetNewVelocity() {
	m.new_velocity = nil
	m.addnew_velocity = nil
}

// SetPreviousEstimatedDays sets the "previous_estimated_days" field.
func (m *AdaptationEventMutation) SetPreviousEstimatedDays(i int) {
	m.previous_estimated_days = &i
	m.addprevious_estimated_days = nil
}

// PreviousEstimatedDays returns the value of the "previous_estimated_days" field in the mutation.
func (m *AdaptationEventMutation) PreviousEstimatedDays() (r int, exists bool) {
	v := m.previous_estimated_days
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousEstimatedDays returns the old "previous_estimated_days" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldPreviousEstimatedDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousEstimatedDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousEstimatedDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousEstimatedDays: %w", err)
	}
	return oldValue.PreviousEstimatedDays, nil
}

// AddPreviousEstimatedDays adds i to the "previous_estimated_days" field.
func (m *AdaptationEventMutation) AddPreviousEstimatedDays(i int) {
	if m.addprevious_estimated_days != nil {
		*m.addprevious_estimated_days += i
	} else {
		m.addprevious_estimated_days = &i
	}
}

// AddedPreviousEstimatedDays returns the value that was added to the "previous_estimated_days" field in this mutation.
func (m *AdaptationEventMutation) AddedPreviousEstimatedDays() (r int, exists bool) {
	v := m.addprevious_estimated_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetPreviousEstimatedDays resets all changes to the "previous_estimated_days" field.
func (m *AdaptationEventMutation) ResetPreviousEstimatedDays() {
	m.previous_estimated_days = nil
	m.addprevious_estimated_days = nil
}

// SetNewEstimatedDays sets the "new_estimated_days" field.
func (m *AdaptationEventMutation) SetNewEstimatedDays(i int) {
	m.new_estimated_days = &i
	m.addnew_estimated_days = nil
}

// NewEstimatedDays returns the value of the "new_estimated_days" field in the mutation.
func (m *AdaptationEventMutation) NewEstimatedDays() (r int, exists bool) {
	v := m.new_estimated_days
	if v == nil {
		return
	}
	return *v, true
}

// OldNewEstimatedDays returns the old "new_estimated_days" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldNewEstimatedDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewEstimatedDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewEstimatedDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewEstimatedDays: %w", err)
	}
	return oldValue.NewEstimatedDays, nil
}

// AddNewEstimatedDays adds i to the "new_estimated_days" field.
func (m *AdaptationEventMutation) AddNewEstimatedDays(i int) {
	if m.addnew_estimated_days != nil {
		*m.addnew_estimated_days += i
	} else {
		m.addnew_estimated_days = &i
	}
}

// AddedNewEstimatedDays returns the value that was added to the "new_estimated_days" field in this mutation.
func (m *AdaptationEventMutation) AddedNewEstimatedDays() (r int, exists bool) {
	v := m.addnew_estimated_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewEstimatedDays resets all changes to the "new_estimated_days" field.
func (m *AdaptationEventMutation) ResetNewEstimatedDays() {
	m.new_estimated_days = nil
	m.addnew_estimated_days = nil
}

// SetAverageScore sets the "average_score" field.
func (m *AdaptationEventMutation) SetAverageScore(f float64) {
	m.average_score = &f
	m.addaverage_score = nil
}

// AverageScore returns the value of the "average_score" field in the mutation.
func (m *AdaptationEventMutation) AverageScore() (r float64, exists bool) {
	v := m.average_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageScore returns the old "average_score" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldAverageScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageScore: %w", err)
	}
	return oldValue.AverageScore, nil
}

// AddAverageScore adds f to the "average_score" field.
func (m *AdaptationEventMutation) AddAverageScore(f float64) {
	if m.addaverage_score != nil {
		*m.addaverage_score += f
	} else {
		m.addaverage_score = &f
	}
}

// AddedAverageScore returns the value that was added to the "average_score" field in this mutation.
func (m *AdaptationEventMutation) AddedAverageScore() (r float64, exists bool) {
	v := m.addaverage_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageScore resets all changes to the "average_score" field.
func (m *AdaptationEventMutation) ResetAverageScore() {
	m.average_score = nil
	m.addaverage_score = nil
}

// SetReason sets the "reason" field.
func (m *AdaptationEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *AdaptationEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *AdaptationEventMutation) ResetReason() {
	m.reason = nil
}

// SetSource sets the "source" field.
func (m *AdaptationEventMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *AdaptationEventMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *AdaptationEventMutation) ResetSource() {
	m.source = nil
}

// Where appends a list predicates to the AdaptationEventMutation builder.
func (m *AdaptationEventMutation) Where(ps ...predicate.AdaptationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdaptationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdaptationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdaptationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdaptationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdaptationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdaptationEvent).
func (m *AdaptationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdaptationEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.sequence != nil {
		fields = append(fields, adaptationevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, adaptationevent.FieldTimestamp)
	}
	if m.objective_id != nil {
		fields = append(fields, adaptationevent.FieldObjectiveID)
	}
	if m.adjustment_type != nil {
		fields = append(fields, adaptationevent.FieldAdjustmentType)
	}
	if m.previous_difficulty != nil {
		fields = append(fields, adaptationevent.FieldPreviousDifficulty)
	}
	if m.new_difficulty != nil {
		fields = append(fields, adaptationevent.FieldNewDifficulty)
	}
	if m.previous_velocity != nil {
		fields = append(fields, adaptationevent.FieldPreviousVelocity)
	}
	if m.new_velocity != nil {
		fields = append(fields, adaptationevent.FieldNewVelocity)
	}
	if m.previous_estimated_days != nil {
		fields = append(fields, adaptationevent.FieldPreviousEstimatedDays)
	}
	if m.new_estimated_days != nil {
		fields = append(fields, adaptationevent.FieldNewEstimatedDays)
	}
	if m.average_score != nil {
		fields = append(fields, adaptationevent.FieldAverageScore)
	}
	if m.reason != nil {
		fields = append(fields, adaptationevent.FieldReason)
	}
	if m.source != nil {
		fields = append(fields, adaptationevent.FieldSource)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdaptationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case adaptationevent.FieldSequence:
		return m.Sequence()
	case adaptationevent.FieldTimestamp:
		return m.Timestamp()
	case adaptationevent.FieldObjectiveID:
		return m.ObjectiveID()
	case adaptationevent.FieldAdjustmentType:
		return m.AdjustmentType()
	case adaptationevent.FieldPreviousDifficulty:
		return m.PreviousDifficulty()
	case adaptationevent.FieldNewDifficulty:
		return m.NewDifficulty()
	case adaptationevent.FieldPreviousVelocity:
		return m.PreviousVelocity()
	case adaptationevent.FieldNewVelocity:
		return m.NewVelocity()
	case adaptationevent.FieldPreviousEstimatedDays:
		return m.PreviousEstimatedDays()
	case adaptationevent.FieldNewEstimatedDays:
		return m.NewEstimatedDays()
	case adaptationevent.FieldAverageScore:
		return m.AverageScore()
	case adaptationevent.FieldReason:
		return m.Reason()
	case adaptationevent.FieldSource:
		return m.Source()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdaptationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case adaptationevent.FieldSequence:
		return m.OldSequence(ctx)
	case adaptationevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case adaptationevent.FieldObjectiveID:
		return m.OldObjectiveID(ctx)
	case adaptationevent.FieldAdjustmentType:
		return m.OldAdjustmentType(ctx)
	case adaptationevent.FieldPreviousDifficulty:
		return m.OldPreviousDifficulty(ctx)
	case adaptationevent.FieldNewDifficulty:
		return m.OldNewDifficulty(ctx)
	case adaptationevent.FieldPreviousVelocity:
		return m.OldPreviousVelocity(ctx)
	case adaptationevent.FieldNewVelocity:
		return m.OldNewVelocity(ctx)
	case adaptationevent.FieldPreviousEstimatedDays:
		return m.OldPreviousEstimatedDays(ctx)
	case adaptationevent.FieldNewEstimatedDays:
		return m.OldNewEstimatedDays(ctx)
	case adaptationevent.FieldAverageScore:
		return m.OldAverageScore(ctx)
	case adaptationevent.FieldReason:
		return m.OldReason(ctx)
	case adaptationevent.FieldSource:
		return m.OldSource(ctx)
	}
	return nil, fmt.Errorf("unknown AdaptationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdaptationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case adaptationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case adaptationevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case adaptationevent.FieldObjectiveID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectiveID(v)
		return nil
	case adaptationevent.FieldAdjustmentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdjustmentType(v)
		return nil
	case adaptationevent.FieldPreviousDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousDifficulty(v)
		return nil
	case adaptationevent.FieldNewDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewDifficulty(v)
		return nil
	case adaptationevent.FieldPreviousVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousVelocity(v)
		return nil
	case adaptationevent.FieldNewVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewVelocity(v)
		return nil
	case adaptationevent.FieldPreviousEstimatedDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousEstimatedDays(v)
		return nil
	case adaptationevent.FieldNewEstimatedDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewEstimatedDays(v)
		return nil
	case adaptationevent.FieldAverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageScore(v)
		return nil
	case adaptationevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case adaptationevent.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdaptationEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, adaptationevent.FieldSequence)
	}
	if m.addprevious_difficulty != nil {
		fields = append(fields, adaptationevent.FieldPreviousDifficulty)
	}
	if m.addnew_difficulty != nil {
		fields = append(fields, adaptationevent.FieldNewDifficulty)
	}
	if m.addprevious_velocity != nil {
		fields = append(fields, adaptationevent.FieldPreviousVelocity)
	}
	if m.addnew_velocity != nil {
		fields = append(fields, adaptationevent.FieldNewVelocity)
	}
	if m.addprevious_estimated_days != nil {
		fields = append(fields, adaptationevent.FieldPreviousEstimatedDays)
	}
	if m.addnew_estimated_days != nil {
		fields = append(fields, adaptationevent.FieldNewEstimatedDays)
	}
	if m.addaverage_score != nil {
		fields = append(fields, adaptationevent.FieldAverageScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdaptationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case adaptationevent.FieldSequence:
		return m.AddedSequence()
	case adaptationevent.FieldPreviousDifficulty:
		return m.AddedPreviousDifficulty()
	case adaptationevent.FieldNewDifficulty:
		return m.AddedNewDifficulty()
	case adaptationevent.FieldPreviousVelocity:
		return m.AddedPreviousVelocity()
	case adaptationevent.FieldNewVelocity:
		return m.AddedNewVelocity()
	case adaptationevent.FieldPreviousEstimatedDays:
		return m.AddedPreviousEstimatedDays()
	case adaptationevent.FieldNewEstimatedDays:
		return m.AddedNewEstimatedDays()
	case adaptationevent.FieldAverageScore:
		return m.AddedAverageScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdaptationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case adaptationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case adaptationevent.FieldPreviousDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPreviousDifficulty(v)
		return nil
	case adaptationevent.FieldNewDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewDifficulty(v)
		return nil
	case adaptationevent.FieldPreviousVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPreviousVelocity(v)
		return nil
	case adaptationevent.FieldNewVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewVelocity(v)
		return nil
	case adaptationevent.FieldPreviousEstimatedDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPreviousEstimatedDays(v)
		return nil
	case adaptationevent.FieldNewEstimatedDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewEstimatedDays(v)
		return nil
	case adaptationevent.FieldAverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageScore(v)
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdaptationEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdaptationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdaptationEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AdaptationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdaptationEventMutation) ResetField(name string) error {
	switch name {
	case adaptationevent.FieldSequence:
		m.ResetSequence()
		return nil
	case adaptationevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case adaptationevent.FieldObjectiveID:
		m.ResetObjectiveID()
		return nil
	case adaptationevent.FieldAdjustmentType:
		m.ResetAdjustmentType()
		return nil
	case adaptationevent.FieldPreviousDifficulty:
		m.ResetPreviousDifficulty()
		return nil
	case adaptationevent.FieldNewDifficulty:
		m.ResetNewDifficulty()
		return nil
	case adaptationevent.FieldPreviousVelocity:
		m.ResetPreviousVelocity()
		return nil
	case adaptationevent.FieldNewVelocity:
		m.ResetNewVelocity()
		return nil
	case adaptationevent.FieldPreviousEstimatedDays:
		m.ResetPreviousEstimatedDays()
		return nil
	case adaptationevent.FieldNewEstimatedDays:
		m.ResetNewEstimatedDays()
		return nil
	case adaptationevent.FieldAverageScore:
		m.ResetAverageScore()
		return nil
	case adaptationevent.FieldReason:
		m.ResetReason()
		return nil
	case adaptationevent.FieldSource:
		m.ResetSource()
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdaptationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdaptationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdaptationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdaptationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdaptationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdaptationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdaptationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AdaptationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdaptationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AdaptationEvent edge %s", name)
}

// DomainEventMutation represents an operation that mutates the DomainEvent nodes in the graph.
type DomainEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	event_type    *string
	payload       *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DomainEvent, error)
	predicates    []predicate.DomainEvent
}

var _ ent.Mutation = (*DomainEventMutation)(nil)

// domaineventOption allows management of the mutation configuration using functional options.
type domaineventOption func(*DomainEventMutation)

// newDomainEventMutation creates new mutation for the DomainEvent entity.
func newDomainEventMutation(c config, op Op, opts ...domaineventOption) *DomainEventMutation {
	m := &DomainEventMutation{
		config:        c,
		op:            op,
		typ:           TypeDomainEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDomainEventID sets the ID field of the mutation.
func withDomainEventID(id int) domaineventOption {
	return func(m *DomainEventMutation) {
		var (
			err   error
			once  sync.Once
			value *DomainEvent
		)
		m.oldValue = func(ctx context.Context) (*DomainEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DomainEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDomainEvent sets the old DomainEvent of the mutation.
func withDomainEvent(node *DomainEvent) domaineventOption {
	return func(m *DomainEventMutation) {
		m.oldValue = func(context.Context) (*DomainEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DomainEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DomainEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DomainEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DomainEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DomainEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *DomainEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *DomainEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the DomainEvent entity.
// If the DomainEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *DomainEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *DomainEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *DomainEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *DomainEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *DomainEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the DomainEvent entity.
// If the DomainEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *DomainEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetEventType sets the "event_type" field.
func (m *DomainEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *DomainEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the DomainEvent entity.
// If the DomainEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *DomainEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *DomainEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *DomainEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the DomainEvent entity.
// If the DomainEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *DomainEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[domainevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *DomainEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[domainevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *DomainEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, domainevent.FieldPayload)
}

// Where appends a list predicates to the DomainEventMutation builder.
func (m *DomainEventMutation) Where(ps ...predicate.DomainEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DomainEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DomainEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DomainEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DomainEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DomainEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DomainEvent).
func (m *DomainEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DomainEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.sequence != nil {
		fields = append(fields, domainevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, domainevent.FieldTimestamp)
	}
	if m.event_type != nil {
		fields = append(fields, domainevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, domainevent.FieldPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DomainEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case domainevent.FieldSequence:
		return m.Sequence()
	case domainevent.FieldTimestamp:
		return m.Timestamp()
	case domainevent.FieldEventType:
		return m.EventType()
	case domainevent.FieldPayload:
		return m.Payload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DomainEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case domainevent.FieldSequence:
		return m.OldSequence(ctx)
	case domainevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case domainevent.FieldEventType:
		return m.OldEventType(ctx)
	case domainevent.FieldPayload:
		return m.OldPayload(ctx)
	}
	return nil, fmt.Errorf("unknown DomainEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case domainevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case domainevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case domainevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case domainevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	}
	return fmt.Errorf("unknown DomainEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DomainEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, domainevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DomainEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case domainevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case domainevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown DomainEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DomainEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(domainevent.FieldPayload) {
		fields = append(fields, domainevent.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DomainEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DomainEventMutation) ClearField(name string) error {
	switch name {
	case domainevent.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown DomainEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DomainEventMutation) ResetField(name string) error {
	switch name {
	case domainevent.FieldSequence:
		m.ResetSequence()
		return nil
	case domainevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case domainevent.FieldEventType:
		m.ResetEventType()
		return nil
	case domainevent.FieldPayload:
		m.ResetPayload()
		return nil
	}
	return fmt.Errorf("unknown DomainEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DomainEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DomainEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DomainEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DomainEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DomainEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DomainEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DomainEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DomainEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DomainEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DomainEvent edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	prompt_hash      *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetPromptHash sets the "prompt_hash" field.
func (m *LLMRequestEventMutation) SetPromptHash(s string) {
	m.prompt_hash = &s
}

// PromptHash returns the value of the "prompt_hash" field in the mutation.
func (m *LLMRequestEventMutation) PromptHash() (r string, exists bool) {
	v := m.prompt_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptHash returns the old "prompt_hash" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPromptHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptHash: %w", err)
	}
	return oldValue.PromptHash, nil
}

// ResetPromptHash resets all changes to the "prompt_hash" field.
func (m *LLMRequestEventMutation) ResetPromptHash() {
	m.prompt_hash = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.prompt_hash != nil {
		fields = append(fields, llmrequestevent.FieldPromptHash)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldPromptHash:
		return m.PromptHash()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldPromptHash:
		return m.OldPromptHash(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldPromptHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptHash(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldPromptHash:
		m.ResetPromptHash()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// MilestoneMutation represents an operation that mutates the Milestone nodes in the graph.
type MilestoneMutation struct {
	config
	op            Op
	typ           string
	id            *string
	objective_id  *string
	title         *string
	target_day    *int
	addtarget_day *int
	completed     *bool
	completed_at  *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Milestone, error)
	predicates    []predicate.Milestone
}

var _ ent.Mutation = (*MilestoneMutation)(nil)

// milestoneOption allows management of the mutation configuration using functional options.
type milestoneOption func(*MilestoneMutation)

// newMilestoneMutation creates new mutation for the Milestone entity.
func newMilestoneMutation(c config, op Op, opts ...milestoneOption) *MilestoneMutation {
	m := &MilestoneMutation{
		config:        c,
		op:            op,
		typ:           TypeMilestone,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMilestoneID sets the ID field of the mutation.
func withMilestoneID(id string) milestoneOption {
	return func(m *MilestoneMutation) {
		var (
			err   error
			once  sync.Once
			value *Milestone
		)
		m.oldValue = func(ctx context.Context) (*Milestone, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Milestone.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMilestone sets the old Milestone of the mutation.
func withMilestone(node *Milestone) milestoneOption {
	return func(m *MilestoneMutation) {
		m.oldValue = func(context.Context) (*Milestone, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MilestoneMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MilestoneMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Milestone entities.
func (m *MilestoneMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MilestoneMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MilestoneMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Milestone.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetObjectiveID sets the "objective_id" field.
func (m *MilestoneMutation) SetObjectiveID(s string) {
	m.objective_id = &s
}

// ObjectiveID returns the value of the "objective_id" field in the mutation.
func (m *MilestoneMutation) ObjectiveID() (r string, exists bool) {
	v := m.objective_id
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectiveID returns the old "objective_id" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldObjectiveID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectiveID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectiveID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectiveID: %w", err)
	}
	return oldValue.ObjectiveID, nil
}

// ResetObjectiveID resets all changes to the "objective_id" field.
func (m *MilestoneMutation) ResetObjectiveID() {
	m.objective_id = nil
}

// SetTitle sets the "title" field.
func (m *MilestoneMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *MilestoneMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *MilestoneMutation) ResetTitle() {
	m.title = nil
}

// SetTargetDay sets the "target_day" field.
func (m *MilestoneMutation) SetTargetDay(i int) {
	m.target_day = &i
	m.addtarget_day = nil
}

// TargetDay returns the value of the "target_day" field in the mutation.
func (m *MilestoneMutation) TargetDay() (r int, exists bool) {
	v := m.target_day
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetDay returns the old "target_day" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldTargetDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetDay: %w", err)
	}
	return oldValue.TargetDay, nil
}

// AddTargetDay adds i to the "target_day" field.
func (m *MilestoneMutation) AddTargetDay(i int) {
	if m.addtarget_day != nil {
		*m.addtarget_day += i
	} else {
		m.addtarget_day = &i
	}
}

// AddedTargetDay returns the value that was added to the "target_day" field in this mutation.
func (m *MilestoneMutation) AddedTargetDay() (r int, exists bool) {
	v := m.addtarget_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetDay resets all changes to the "target_day" field.
func (m *MilestoneMutation) ResetTargetDay() {
	m.target_day = nil
	m.addtarget_day = nil
}

// SetCompleted sets the "completed" field.
func (m *MilestoneMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *MilestoneMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *MilestoneMutation) ResetCompleted() {
	m.completed = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *MilestoneMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *MilestoneMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *MilestoneMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[milestone.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *MilestoneMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[milestone.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *MilestoneMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, milestone.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *MilestoneMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MilestoneMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MilestoneMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MilestoneMutation builder.
func (m *MilestoneMutation) Where(ps ...predicate.Milestone) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MilestoneMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MilestoneMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Milestone, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MilestoneMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MilestoneMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Milestone).
func (m *MilestoneMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MilestoneMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.objective_id != nil {
		fields = append(fields, milestone.FieldObjectiveID)
	}
	if m.title != nil {
		fields = append(fields, milestone.FieldTitle)
	}
	if m.target_day != nil {
		fields = append(fields, milestone.FieldTargetDay)
	}
	if m.completed != nil {
		fields = append(fields, milestone.FieldCompleted)
	}
	if m.completed_at != nil {
		fields = append(fields, milestone.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, milestone.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MilestoneMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case milestone.FieldObjectiveID:
		return m.ObjectiveID()
	case milestone.FieldTitle:
		return m.Title()
	case milestone.FieldTargetDay:
		return m.TargetDay()
	case milestone.FieldCompleted:
		return m.Completed()
	case milestone.FieldCompletedAt:
		return m.CompletedAt()
	case milestone.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MilestoneMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case milestone.FieldObjectiveID:
		return m.OldObjectiveID(ctx)
	case milestone.FieldTitle:
		return m.OldTitle(ctx)
	case milestone.FieldTargetDay:
		return m.OldTargetDay(ctx)
	case milestone.FieldCompleted:
		return m.OldCompleted(ctx)
	case milestone.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case milestone.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Milestone field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MilestoneMutation) SetField(name string, value ent.Value) error {
	switch name {
	case milestone.FieldObjectiveID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectiveID(v)
		return nil
	case milestone.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case milestone.FieldTargetDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetDay(v)
		return nil
	case milestone.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case milestone.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case milestone.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Milestone field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MilestoneMutation) AddedFields() []string {
	var fields []string
	if m.addtarget_day != nil {
		fields = append(fields, milestone.FieldTargetDay)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MilestoneMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case milestone.FieldTargetDay:
		return m.AddedTargetDay()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MilestoneMutation) AddField(name string, value ent.Value) error {
	switch name {
	case milestone.FieldTargetDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetDay(v)
		return nil
	}
	return fmt.Errorf("unknown Milestone numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MilestoneMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(milestone.FieldCompletedAt) {
		fields = append(fields, milestone.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MilestoneMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MilestoneMutation) ClearField(name string) error {
	switch name {
	case milestone.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Milestone nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MilestoneMutation) ResetField(name string) error {
	switch name {
	case milestone.FieldObjectiveID:
		m.ResetObjectiveID()
		return nil
	case milestone.FieldTitle:
		m.ResetTitle()
		return nil
	case milestone.FieldTargetDay:
		m.ResetTargetDay()
		return nil
	case milestone.FieldCompleted:
		m.ResetCompleted()
		return nil
	case milestone.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case milestone.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Milestone field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MilestoneMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MilestoneMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MilestoneMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MilestoneMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MilestoneMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MilestoneMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MilestoneMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Milestone unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MilestoneMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Milestone edge %s", name)
}

// ObjectiveMutation represents an operation that mutates the Objective nodes in the graph.
type ObjectiveMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	user_id                 *string
	title                   *string
	description             *string
	success_criteria        *[]string
	appendsuccess_criteria  []string
	required_skills         *[]string
	appendrequired_skills   []string
	priority                *string
	status                  *objective.Status
	estimated_total_days    *int
	addestimated_total_days *int
	completed_days          *int
	addcompleted_days       *int
	current_difficulty      *int
	addcurrent_difficulty   *int
	learning_velocity       *float64
	addlearning_velocity    *float64
	recalibration_count     *int
	addrecalibration_count  *int
	current_streak          *int
	addcurrent_streak       *int
	longest_streak          *int
	addlongest_streak       *int
	last_completed_at       *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*Objective, error)
	predicates              []predicate.Objective
}

var _ ent.Mutation = (*ObjectiveMutation)(nil)

// objectiveOption allows management of the mutation configuration using functional options.
type objectiveOption func(*ObjectiveMutation)

// newObjectiveMutation creates new mutation for the Objective entity.
func newObjectiveMutation(c config, op Op, opts ...objectiveOption) *ObjectiveMutation {
	m := &ObjectiveMutation{
		config:        c,
		op:            op,
		typ:           TypeObjective,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withObjectiveID sets the ID field of the mutation.
func withObjectiveID(id string) objectiveOption {
	return func(m *ObjectiveMutation) {
		var (
			err   error
			once  sync.Once
			value *Objective
		)
		m.oldValue = func(ctx context.Context) (*Objective, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Objective.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withObjective sets the old Objective of the mutation.
func withObjective(node *Objective) objectiveOption {
	return func(m *ObjectiveMutation) {
		m.oldValue = func(context.Context) (*Objective, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ObjectiveMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ObjectiveMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Objective entities.
func (m *ObjectiveMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ObjectiveMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ObjectiveMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Objective.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ObjectiveMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ObjectiveMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ObjectiveMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *ObjectiveMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ObjectiveMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ObjectiveMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ObjectiveMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ObjectiveMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ObjectiveMutation) ResetDescription() {
	m.description = nil
}

// SetSuccessCriteria sets the "success_criteria" field.
func (m *ObjectiveMutation) SetSuccessCriteria(s []string) {
	m.success_criteria = &s
	m.appendsuccess_criteria = nil
}

// SuccessCriteria returns the value of the "success_criteria" field in the mutation.
func (m *ObjectiveMutation) SuccessCriteria() (r []string, exists bool) {
	v := m.success_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessCriteria returns the old "success_criteria" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldSuccessCriteria(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessCriteria: %w", err)
	}
	return oldValue.SuccessCriteria, nil
}

// AppendSuccessCriteria adds s to the "success_criteria" field.
func (m *ObjectiveMutation) AppendSuccessCriteria(s []string) {
	m.appendsuccess_criteria = append(m.appendsuccess_criteria, s...)
}

// AppendedSuccessCriteria returns the list of values that were appended to the "success_criteria" field in this mutation.
func (m *ObjectiveMutation) AppendedSuccessCriteria() ([]string, bool) {
	if len(m.appendsuccess_criteria) == 0 {
		return nil, false
	}
	return m.appendsuccess_criteria, true
}

// ClearSuccessCriteria clears the value of the "success_criteria" field.
func (m *ObjectiveMutation) ClearSuccessCriteria() {
	m.success_criteria = nil
	m.appendsuccess_criteria = nil
	m.clearedFields[objective.FieldSuccessCriteria] = struct{}{}
}

// SuccessCriteriaCleared returns if the "success_criteria" field was cleared in this mutation.
func (m *ObjectiveMutation) SuccessCriteriaCleared() bool {
	_, ok := m.clearedFields[objective.FieldSuccessCriteria]
	return ok
}

// ResetSuccessCriteria resets all changes to the "success_criteria" field.
func (m *ObjectiveMutation) ResetSuccessCriteria() {
	m.success_criteria = nil
	m.appendsuccess_criteria = nil
	delete(m.clearedFields, objective.FieldSuccessCriteria)
}

// SetRequiredSkills sets the "required_skills" field.
func (m *ObjectiveMutation) SetRequiredSkills(s []string) {
	m.required_skills = &s
	m.appendrequired_skills = nil
}

// RequiredSkills returns the value of the "required_skills" field in the mutation.
func (m *ObjectiveMutation) RequiredSkills() (r []string, exists bool) {
	v := m.required_skills
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredSkills returns the old "required_skills" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldRequiredSkills(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredSkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredSkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredSkills: %w", err)
	}
	return oldValue.RequiredSkills, nil
}

// AppendRequiredSkills adds s to the "required_skills" field.
func (m *ObjectiveMutation) AppendRequiredSkills(s []string) {
	m.appendrequired_skills = append(m.appendrequired_skills, s...)
}

// AppendedRequiredSkills returns the list of values that were appended to the "required_skills" field in this mutation.
func (m *ObjectiveMutation) AppendedRequiredSkills() ([]string, bool) {
	if len(m.appendrequired_skills) == 0 {
		return nil, false
	}
	return m.appendrequired_skills, true
}

// ClearRequiredSkills clears the value of the "required_skills" field.
func (m *ObjectiveMutation) ClearRequiredSkills() {
	m.required_skills = nil
	m.appendrequired_skills = nil
	m.clearedFields[objective.FieldRequiredSkills] = struct{}{}
}

// RequiredSkillsCleared returns if the "required_skills" field was cleared in this mutation.
func (m *ObjectiveMutation) RequiredSkillsCleared() bool {
	_, ok := m.clearedFields[objective.FieldRequiredSkills]
	return ok
}

// ResetRequiredSkills resets all changes to the "required_skills" field.
func (m *ObjectiveMutation) ResetRequiredSkills() {
	m.required_skills = nil
	m.appendrequired_skills = nil
	delete(m.clearedFields, objective.FieldRequiredSkills)
}

// SetPriority sets the "priority" field.
func (m *ObjectiveMutation) SetPriority(s string) {
	m.priority = &s
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ObjectiveMutation) Priority() (r string, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldPriority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *ObjectiveMutation) ResetPriority() {
	m.priority = nil
}

// SetStatus sets the "status" field.
func (m *ObjectiveMutation) SetStatus(o objective.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *ObjectiveMutation) Status() (r objective.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldStatus(ctx context.Context) (v objective.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ObjectiveMutation) ResetStatus() {
	m.status = nil
}

// SetEstimatedTotalDays sets the "estimated_total_days" field.
func (m *ObjectiveMutation) SetEstimatedTotalDays(i int) {
	m.estimated_total_days = &i
	m.addestimated_total_days = nil
}

// EstimatedTotalDays returns the value of the "estimated_total_days" field in the mutation.
func (m *ObjectiveMutation) EstimatedTotalDays() (r int, exists bool) {
	v := m.estimated_total_days
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedTotalDays returns the old "estimated_total_days" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldEstimatedTotalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedTotalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedTotalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedTotalDays: %w", err)
	}
	return oldValue.EstimatedTotalDays, nil
}

// AddEstimatedTotalDays adds i to the "estimated_total_days" field.
func (m *ObjectiveMutation) AddEstimatedTotalDays(i int) {
	if m.addestimated_total_days != nil {
		*m.addestimated_total_days += i
	} else {
		m.addestimated_total_days = &i
	}
}

// AddedEstimatedTotalDays returns the value that was added to the "estimated_total_days" field in this mutation.
func (m *ObjectiveMutation) AddedEstimatedTotalDays() (r int, exists bool) {
	v := m.addestimated_total_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedTotalDays resets all changes to the "estimated_total_days" field.
func (m *ObjectiveMutation) ResetEstimatedTotalDays() {
	m.estimated_total_days = nil
	m.addestimated_total_days = nil
}

// SetCompletedDays sets the "completed_days" field.
func (m *ObjectiveMutation) SetCompletedDays(i int) {
	m.completed_days = &i
	m.addcompleted_days = nil
}

// CompletedDays returns the value of the "completed_days" field in the mutation.
func (m *ObjectiveMutation) CompletedDays() (r int, exists bool) {
	v := m.completed_days
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedDays returns the old "completed_days" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldCompletedDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedDays: %w", err)
	}
	return oldValue.CompletedDays, nil
}

// AddCompletedDays adds i to the "completed_days" field.
func (m *ObjectiveMutation) AddCompletedDays(i int) {
	if m.addcompleted_days != nil {
		*m.addcompleted_days += i
	} else {
		m.addcompleted_days = &i
	}
}

// AddedCompletedDays returns the value that was added to the "completed_days" field in this mutation.
func (m *ObjectiveMutation) AddedCompletedDays() (r int, exists bool) {
	v := m.addcompleted_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedDays resets all changes to the "completed_days" field.
func (m *ObjectiveMutation) ResetCompletedDays() {
	m.completed_days = nil
	m.addcompleted_days = nil
}

// SetCurrentDifficulty sets the "current_difficulty" field.
func (m *ObjectiveMutation) SetCurrentDifficulty(i int) {
	m.current_difficulty = &i
	m.addcurrent_difficulty = nil
}

// CurrentDifficulty returns the value of the "current_difficulty" field in the mutation.
func (m *ObjectiveMutation) CurrentDifficulty() (r int, exists bool) {
	v := m.current_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentDifficulty returns the old "current_difficulty" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldCurrentDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentDifficulty: %w", err)
	}
	return oldValue.CurrentDifficulty, nil
}

// AddCurrentDifficulty adds i to the "current_difficulty" field.
func (m *ObjectiveMutation) AddCurrentDifficulty(i int) {
	if m.addcurrent_difficulty != nil {
		*m.addcurrent_difficulty += i
	} else {
		m.addcurrent_difficulty = &i
	}
}

// AddedCurrentDifficulty returns the value that was added to the "current_difficulty" field in this mutation.
func (m *ObjectiveMutation) AddedCurrentDifficulty() (r int, exists bool) {
	v := m.addcurrent_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentDifficulty resets all changes to the "current_difficulty" field.
func (m *ObjectiveMutation) ResetCurrentDifficulty() {
	m.current_difficulty = nil
	m.addcurrent_difficulty = nil
}

// SetLearningVelocity sets the "learning_velocity" field.
func (m *ObjectiveMutation) SetLearningVelocity(f float64) {
	m.learning_velocity = &f
	m.addlearning_velocity = nil
}

// LearningVelocity returns the value of the "learning_velocity" field in the mutation.
func (m *ObjectiveMutation) LearningVelocity() (r float64, exists bool) {
	v := m.learning_velocity
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningVelocity returns the old "learning_velocity" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldLearningVelocity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningVelocity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningVelocity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningVelocity: %w", err)
	}
	return oldValue.LearningVelocity, nil
}

// AddLearningVelocity adds f to the "learning_velocity" field.
func (m *ObjectiveMutation) AddLearningVelocity(f float64) {
	if m.addlearning_velocity != nil {
		*m.addlearning_velocity += f
	} else {
		m.addlearning_velocity = &f
	}
}

// AddedLearningVelocity returns the value that was added to the "learning_velocity" field in this mutation.
func (m *ObjectiveMutation) AddedLearningVelocity() (r float64, exists bool) {
	v := m.addlearning_velocity
	if v == nil {
		return
	}
	return *v, true
}

// ResetLearningVelocity resets all changes to the "learning_velocity" field.
func (m *ObjectiveMutation) ResetLearningVelocity() {
	m.learning_velocity = nil
	m.addlearning_velocity = nil
}

// SetRecalibrationCount sets the "recalibration_count" field.
func (m *ObjectiveMutation) SetRecalibrationCount(i int) {
	m.recalibration_count = &i
	m.addrecalibration_count = nil
}

// RecalibrationCount returns the value of the "recalibration_count" field in the mutation.
func (m *ObjectiveMutation) RecalibrationCount() (r int, exists bool) {
	v := m.recalibration_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRecalibrationCount returns the old "recalibration_count" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldRecalibrationCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecalibrationCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecalibrationCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecalibrationCount: %w", err)
	}
	return oldValue.RecalibrationCount, nil
}

// AddRecalibrationCount adds i to the "recalibration_count" field.
func (m *ObjectiveMutation) AddRecalibrationCount(i int) {
	if m.addrecalibration_count != nil {
		*m.addrecalibration_count += i
	} else {
		m.addrecalibration_count = &i
	}
}

// AddedRecalibrationCount returns the value that was added to the "recalibration_count" field in this mutation.
func (m *ObjectiveMutation) AddedRecalibrationCount() (r int, exists bool) {
	v := m.addrecalibration_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecalibrationCount resets all changes to the "recalibration_count" field.
func (m *ObjectiveMutation) ResetRecalibrationCount() {
	m.recalibration_count = nil
	m.addrecalibration_count = nil
}

// SetCurrentStreak sets the "current_streak" field.
func (m *ObjectiveMutation) SetCurrentStreak(i int) {
	m.current_streak = &i
	m.addcurrent_streak = nil
}

// CurrentStreak returns the value of the "current_streak" field in the mutation.
func (m *ObjectiveMutation) CurrentStreak() (r int, exists bool) {
	v := m.current_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStreak returns the old "current_streak" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldCurrentStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStreak: %w", err)
	}
	return oldValue.CurrentStreak, nil
}

// AddCurrentStreak adds i to the "current_streak" field.
func (m *ObjectiveMutation) AddCurrentStreak(i int) {
	if m.addcurrent_streak != nil {
		*m.addcurrent_streak += i
	} else {
		m.addcurrent_streak = &i
	}
}

// AddedCurrentStreak returns the value that was added to the "current_streak" field in this mutation.
func (m *ObjectiveMutation) AddedCurrentStreak() (r int, exists bool) {
	v := m.addcurrent_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStreak resets all changes to the "current_streak" field.
func (m *ObjectiveMutation) ResetCurrentStreak() {
	m.current_streak = nil
	m.addcurrent_streak = nil
}

// SetLongestStreak sets the "longest_streak" field.
func (m *ObjectiveMutation) SetLongestStreak(i int) {
	m.longest_streak = &i
	m.addlongest_streak = nil
}

// LongestStreak returns the value of the "longest_streak" field in the mutation.
func (m *ObjectiveMutation) LongestStreak() (r int, exists bool) {
	v := m.longest_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldLongestStreak returns the old "longest_streak" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldLongestStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongestStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongestStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongestStreak: %w", err)
	}
	return oldValue.LongestStreak, nil
}

// AddLongestStreak adds i to the "longest_streak" field.
func (m *ObjectiveMutation) AddLongestStreak(i int) {
	if m.addlongest_streak != nil {
		*m.addlongest_streak += i
	} else {
		m.addlongest_streak = &i
	}
}

// AddedLongestStreak returns the value that was added to the "longest_streak" field in this mutation.
func (m *ObjectiveMutation) AddedLongestStreak() (r int, exists bool) {
	v := m.addlongest_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetLongestStreak resets all changes to the "longest_streak" field.
func (m *ObjectiveMutation) ResetLongestStreak() {
	m.longest_streak = nil
	m.addlongest_streak = nil
}

// SetLastCompletedAt sets the "last_completed_at" field.
func (m *ObjectiveMutation) SetLastCompletedAt(t time.Time) {
	m.last_completed_at = &t
}

// LastCompletedAt returns the value of the "last_completed_at" field in the mutation.
func (m *ObjectiveMutation) LastCompletedAt() (r time.Time, exists bool) {
	v := m.last_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCompletedAt returns the old "last_completed_at" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldLastCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCompletedAt: %w", err)
	}
	return oldValue.LastCompletedAt, nil
}

// ClearLastCompletedAt clears the value of the "last_completed_at" field.
func (m *ObjectiveMutation) ClearLastCompletedAt() {
	m.last_completed_at = nil
	m.clearedFields[objective.FieldLastCompletedAt] = struct{}{}
}

// LastCompletedAtCleared returns if the "last_completed_at" field was cleared in this mutation.
func (m *ObjectiveMutation) LastCompletedAtCleared() bool {
	_, ok := m.clearedFields[objective.FieldLastCompletedAt]
	return ok
}

// ResetLastCompletedAt resets all changes to the "last_completed_at" field.
func (m *ObjectiveMutation) ResetLastCompletedAt() {
	m.last_completed_at = nil
	delete(m.clearedFields, objective.FieldLastCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ObjectiveMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ObjectiveMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ObjectiveMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ObjectiveMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ObjectiveMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ObjectiveMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ObjectiveMutation builder.
func (m *ObjectiveMutation) Where(ps ...predicate.Objective) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ObjectiveMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ObjectiveMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Objective, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ObjectiveMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ObjectiveMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Objective).
func (m *ObjectiveMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ObjectiveMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.user_id != nil {
		fields = append(fields, objective.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, objective.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, objective.FieldDescription)
	}
	if m.success_criteria != nil {
		fields = append(fields, objective.FieldSuccessCriteria)
	}
	if m.required_skills != nil {
		fields = append(fields, objective.FieldRequiredSkills)
	}
	if m.priority != nil {
		fields = append(fields, objective.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, objective.FieldStatus)
	}
	if m.estimated_total_days != nil {
		fields = append(fields, objective.FieldEstimatedTotalDays)
	}
	if m.completed_days != nil {
		fields = append(fields, objective.FieldCompletedDays)
	}
	if m.current_difficulty != nil {
		fields = append(fields, objective.FieldCurrentDifficulty)
	}
	if m.learning_velocity != nil {
		fields = append(fields, objective.FieldLearningVelocity)
	}
	if m.recalibration_count != nil {
		fields = append(fields, objective.FieldRecalibrationCount)
	}
	if m.current_streak != nil {
		fields = append(fields, objective.FieldCurrentStreak)
	}
	if m.longest_streak != nil {
		fields = append(fields, objective.FieldLongestStreak)
	}
	if m.last_completed_at != nil {
		fields = append(fields, objective.FieldLastCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, objective.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, objective.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ObjectiveMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case objective.FieldUserID:
		return m.UserID()
	case objective.FieldTitle:
		return m.Title()
	case objective.FieldDescription:
		return m.Description()
	case objective.FieldSuccessCriteria:
		return m.SuccessCriteria()
	case objective.FieldRequiredSkills:
		return m.RequiredSkills()
	case objective.FieldPriority:
		return m.Priority()
	case objective.FieldStatus:
		return m.Status()
	case objective.FieldEstimatedTotalDays:
		return m.EstimatedTotalDays()
	case objective.FieldCompletedDays:
		return m.CompletedDays()
	case objective.FieldCurrentDifficulty:
		return m.CurrentDifficulty()
	case objective.FieldLearningVelocity:
		return m.LearningVelocity()
	case objective.FieldRecalibrationCount:
		return m.RecalibrationCount()
	case objective.FieldCurrentStreak:
		return m.CurrentStreak()
	case objective.FieldLongestStreak:
		return m.LongestStreak()
	case objective.FieldLastCompletedAt:
		return m.LastCompletedAt()
	case objective.FieldCreatedAt:
		return m.CreatedAt()
	case objective.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ObjectiveMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case objective.FieldUserID:
		return m.OldUserID(ctx)
	case objective.FieldTitle:
		return m.OldTitle(ctx)
	case objective.FieldDescription:
		return m.OldDescription(ctx)
	case objective.FieldSuccessCriteria:
		return m.OldSuccessCriteria(ctx)
	case objective.FieldRequiredSkills:
		return m.OldRequiredSkills(ctx)
	case objective.FieldPriority:
		return m.OldPriority(ctx)
	case objective.FieldStatus:
		return m.OldStatus(ctx)
	case objective.FieldEstimatedTotalDays:
		return m.OldEstimatedTotalDays(ctx)
	case objective.FieldCompletedDays:
		return m.OldCompletedDays(ctx)
	case objective.FieldCurrentDifficulty:
		return m.OldCurrentDifficulty(ctx)
	case objective.FieldLearningVelocity:
		return m.OldLearningVelocity(ctx)
	case objective.FieldRecalibrationCount:
		return m.OldRecalibrationCount(ctx)
	case objective.FieldCurrentStreak:
		return m.OldCurrentStreak(ctx)
	case objective.FieldLongestStreak:
		return m.OldLongestStreak(ctx)
	case objective.FieldLastCompletedAt:
		return m.OldLastCompletedAt(ctx)
	case objective.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case objective.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Objective field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ObjectiveMutation) SetField(name string, value ent.Value) error {
	switch name {
	case objective.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case objective.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case objective.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case objective.FieldSuccessCriteria:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessCriteria(v)
		return nil
	case objective.FieldRequiredSkills:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredSkills(v)
		return nil
	case objective.FieldPriority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case objective.FieldStatus:
		v, ok := value.(objective.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case objective.FieldEstimatedTotalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedTotalDays(v)
		return nil
	case objective.FieldCompletedDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedDays(v)
		return nil
	case objective.FieldCurrentDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentDifficulty(v)
		return nil
	case objective.FieldLearningVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningVelocity(v)
		return nil
	case objective.FieldRecalibrationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecalibrationCount(v)
		return nil
	case objective.FieldCurrentStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStreak(v)
		return nil
	case objective.FieldLongestStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongestStreak(v)
		return nil
	case objective.FieldLastCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCompletedAt(v)
		return nil
	case objective.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case objective.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Objective field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ObjectiveMutation) AddedFields() []string {
	var fields []string
	if m.addestimated_total_days != nil {
		fields = append(fields, objective.FieldEstimatedTotalDays)
	}
	if m.addcompleted_days != nil {
		fields = append(fields, objective.FieldCompletedDays)
	}
	if m.addcurrent_difficulty != nil {
		fields = append(fields, objective.FieldCurrentDifficulty)
	}
	if m.addlearning_velocity != nil {
		fields = append(fields, objective.FieldLearningVelocity)
	}
	if m.addrecalibration_count != nil {
		fields = append(fields, objective.FieldRecalibrationCount)
	}
	if m.addcurrent_streak != nil {
		fields = append(fields, objective.FieldCurrentStreak)
	}
	if m.addlongest_streak != nil {
		fields = append(fields, objective.FieldLongestStreak)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ObjectiveMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case objective.FieldEstimatedTotalDays:
		return m.AddedEstimatedTotalDays()
	case objective.FieldCompletedDays:
		return m.AddedCompletedDays()
	case objective.FieldCurrentDifficulty:
		return m.AddedCurrentDifficulty()
	case objective.FieldLearningVelocity:
		return m.AddedLearningVelocity()
	case objective.FieldRecalibrationCount:
		return m.AddedRecalibrationCount()
	case objective.FieldCurrentStreak:
		return m.AddedCurrentStreak()
	case objective.FieldLongestStreak:
		return m.AddedLongestStreak()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ObjectiveMutation) AddField(name string, value ent.Value) error {
	switch name {
	case objective.FieldEstimatedTotalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedTotalDays(v)
		return nil
	case objective.FieldCompletedDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedDays(v)
		return nil
	case objective.FieldCurrentDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentDifficulty(v)
		return nil
	case objective.FieldLearningVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLearningVelocity(v)
		return nil
	case objective.FieldRecalibrationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecalibrationCount(v)
		return nil
	case objective.FieldCurrentStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStreak(v)
		return nil
	case objective.FieldLongestStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongestStreak(v)
		return nil
	}
	return fmt.Errorf("unknown Objective numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ObjectiveMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(objective.FieldSuccessCriteria) {
		fields = append(fields, objective.FieldSuccessCriteria)
	}
	if m.FieldCleared(objective.FieldRequiredSkills) {
		fields = append(fields, objective.FieldRequiredSkills)
	}
	if m.FieldCleared(objective.FieldLastCompletedAt) {
		fields = append(fields, objective.FieldLastCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ObjectiveMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ObjectiveMutation) ClearField(name string) error {
	switch name {
	case objective.FieldSuccessCriteria:
		m.ClearSuccessCriteria()
		return nil
	case objective.FieldRequiredSkills:
		m.ClearRequiredSkills()
		return nil
	case objective.FieldLastCompletedAt:
		m.ClearLastCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Objective nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ObjectiveMutation) ResetField(name string) error {
	switch name {
	case objective.FieldUserID:
		m.ResetUserID()
		return nil
	case objective.FieldTitle:
		m.ResetTitle()
		return nil
	case objective.FieldDescription:
		m.ResetDescription()
		return nil
	case objective.FieldSuccessCriteria:
		m.ResetSuccessCriteria()
		return nil
	case objective.FieldRequiredSkills:
		m.ResetRequiredSkills()
		return nil
	case objective.FieldPriority:
		m.ResetPriority()
		return nil
	case objective.FieldStatus:
		m.ResetStatus()
		return nil
	case objective.FieldEstimatedTotalDays:
		m.ResetEstimatedTotalDays()
		return nil
	case objective.FieldCompletedDays:
		m.ResetCompletedDays()
		return nil
	case objective.FieldCurrentDifficulty:
		m.ResetCurrentDifficulty()
		return nil
	case objective.FieldLearningVelocity:
		m.ResetLearningVelocity()
		return nil
	case objective.FieldRecalibrationCount:
		m.ResetRecalibrationCount()
		return nil
	case objective.FieldCurrentStreak:
		m.ResetCurrentStreak()
		return nil
	case objective.FieldLongestStreak:
		m.ResetLongestStreak()
		return nil
	case objective.FieldLastCompletedAt:
		m.ResetLastCompletedAt()
		return nil
	case objective.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case objective.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Objective field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ObjectiveMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ObjectiveMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ObjectiveMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ObjectiveMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ObjectiveMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ObjectiveMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ObjectiveMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Objective unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ObjectiveMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Objective edge %s", name)
}

// SprintMutation represents an operation that mutates the Sprint nodes in the graph.
type SprintMutation struct {
	config
	op                            Op
	typ                           string
	id                            *string
	objective_id                  *string
	day_number                    *int
	addday_number                 *int
	length_days                   *int
	addlength_days                *int
	total_estimated_hours         *float64
	addtotal_estimated_hours      *float64
	difficulty                    *string
	status                        *sprint.Status
	planner_input                 *map[string]interface{}
	planner_output                *map[string]interface{}
	adaptive_metadata             *map[string]interface{}
	started_at                    *time.Time
	completed_at                  *time.Time
	completion_percentage         *float64
	addcompletion_percentage      *float64
	score                         *float64
	addscore                      *float64
	reviewer_summary              *string
	self_evaluation_confidence    *int
	addself_evaluation_confidence *int
	self_evaluation_reflection    *string
	created_at                    *time.Time
	updated_at                    *time.Time
	clearedFields                 map[string]struct{}
	done                          bool
	oldValue                      func(context.Context) (*Sprint, error)
	predicates                    []predicate.Sprint
}

var _ ent.Mutation = (*SprintMutation)(nil)

// sprintOption allows management of the mutation configuration using functional options.
type sprintOption func(*SprintMutation)

// newSprintMutation creates new mutation for the Sprint entity.
func newSprintMutation(c config, op Op, opts ...sprintOption) *SprintMutation {
	m := &SprintMutation{
		config:        c,
		op:            op,
		typ:           TypeSprint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSprintID sets the ID field of the mutation.
func withSprintID(id string) sprintOption {
	return func(m *SprintMutation) {
		var (
			err   error
			once  sync.Once
			value *Sprint
		)
		m.oldValue = func(ctx context.Context) (*Sprint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Sprint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSprint sets the old Sprint of the mutation.
func withSprint(node *Sprint) sprintOption {
	return func(m *SprintMutation) {
		m.oldValue = func(context.Context) (*Sprint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SprintMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SprintMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Sprint entities.
func (m *SprintMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SprintMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SprintMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Sprint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetObjectiveID sets the "objective_id" field.
func (m *SprintMutation) SetObjectiveID(s string) {
	m.objective_id = &s
}

// ObjectiveID returns the value of the "objective_id" field in the mutation.
func (m *SprintMutation) ObjectiveID() (r string, exists bool) {
	v := m.objective_id
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectiveID returns the old "objective_id" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldObjectiveID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectiveID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectiveID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectiveID: %w", err)
	}
	return oldValue.ObjectiveID, nil
}

// ResetObjectiveID resets all changes to the "objective_id" field.
func (m *SprintMutation) ResetObjectiveID() {
	m.objective_id = nil
}

// SetDayNumber sets the "day_number" field.
func (m *SprintMutation) SetDayNumber(i int) {
	m.day_number = &i
	m.addday_number = nil
}

// DayNumber returns the value of the "day_number" field in the mutation.
func (m *SprintMutation) DayNumber() (r int, exists bool) {
	v := m.day_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDayNumber returns the old "day_number" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldDayNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayNumber: %w", err)
	}
	return oldValue.DayNumber, nil
}

// AddDayNumber adds i to the "day_number" field.
func (m *SprintMutation) AddDayNumber(i int) {
	if m.addday_number != nil {
		*m.addday_number += i
	} else {
		m.addday_number = &i
	}
}

// AddedDayNumber returns the value that was added to the "day_number" field in this mutation.
func (m *SprintMutation) AddedDayNumber() (r int, exists bool) {
	v := m.addday_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetDayNumber resets all changes to the "day_number" field.
func (m *SprintMutation) ResetDayNumber() {
	m.day_number = nil
	m.addday_number = nil
}

// SetLengthDays sets the "length_days" field.
func (m *SprintMutation) SetLengthDays(i int) {
	m.length_days = &i
	m.addlength_days = nil
}

// LengthDays returns the value of the "length_days" field in the mutation.
func (m *SprintMutation) LengthDays() (r int, exists bool) {
	v := m.length_days
	if v == nil {
		return
	}
	return *v, true
}

// OldLengthDays returns the old "length_days" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldLengthDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLengthDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLengthDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLengthDays: %w", err)
	}
	return oldValue.LengthDays, nil
}

// AddLengthDays adds i to the "length_days" field.
func (m *SprintMutation) AddLengthDays(i int) {
	if m.addlength_days != nil {
		*m.addlength_days += i
	} else {
		m.addlength_days = &i
	}
}

// AddedLengthDays returns the value that was added to the "length_days" field in this mutation.
func (m *SprintMutation) AddedLengthDays() (r int, exists bool) {
	v := m.addlength_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetLengthDays resets all changes to the "length_days" field.
func (m *SprintMutation) ResetLengthDays() {
	m.length_days = nil
	m.addlength_days = nil
}

// SetTotalEstimatedHours sets the "total_estimated_hours" field.
func (m *SprintMutation) SetTotalEstimatedHours(f float64) {
	m.total_estimated_hours = &f
	m.addtotal_estimated_hours = nil
}

// TotalEstimatedHours returns the value of the "total_estimated_hours" field in the mutation.
func (m *SprintMutation) TotalEstimatedHours() (r float64, exists bool) {
	v := m.total_estimated_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalEstimatedHours returns the old "total_estimated_hours" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldTotalEstimatedHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalEstimatedHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalEstimatedHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalEstimatedHours: %w", err)
	}
	return oldValue.TotalEstimatedHours, nil
}

// AddTotalEstimatedHours adds f to the "total_estimated_hours" field.
func (m *SprintMutation) AddTotalEstimatedHours(f float64) {
	if m.addtotal_estimated_hours != nil {
		*m.addtotal_estimated_hours += f
	} else {
		m.addtotal_estimated_hours = &f
	}
}

// AddedTotalEstimatedHours returns the value that was added to the "total_estimated_hours" field in this mutation.
func (m *SprintMutation) AddedTotalEstimatedHours() (r float64, exists bool) {
	v := m.addtotal_estimated_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalEstimatedHours resets all changes to the "total_estimated_hours" field.
func (m *SprintMutation) ResetTotalEstimatedHours() {
	m.total_estimated_hours = nil
	m.addtotal_estimated_hours = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *SprintMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *SprintMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *SprintMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetStatus sets the "status" field.
func (m *SprintMutation) SetStatus(s sprint.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SprintMutation) Status() (r sprint.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldStatus(ctx context.Context) (v sprint.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SprintMutation) ResetStatus() {
	m.status = nil
}

// SetPlannerInput sets the "planner_input" field.
func (m *SprintMutation) SetPlannerInput(value map[string]interface{}) {
	m.planner_input = &value
}

// PlannerInput returns the value of the "planner_input" field in the mutation.
func (m *SprintMutation) PlannerInput() (r map[string]interface{}, exists bool) {
	v := m.planner_input
	if v == nil {
		return
	}
	return *v, true
}

// OldPlannerInput returns the old "planner_input" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldPlannerInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlannerInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlannerInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlannerInput: %w", err)
	}
	return oldValue.PlannerInput, nil
}

// ClearPlannerInput clears the value of the "planner_input" field.
func (m *SprintMutation) ClearPlannerInput() {
	m.planner_input = nil
	m.clearedFields[sprint.FieldPlannerInput] = struct{}{}
}

// PlannerInputCleared returns if the "planner_input" field was cleared in this mutation.
func (m *SprintMutation) PlannerInputCleared() bool {
	_, ok := m.clearedFields[sprint.FieldPlannerInput]
	return ok
}

// ResetPlannerInput resets all changes to the "planner_input" field.
func (m *SprintMutation) ResetPlannerInput() {
	m.planner_input = nil
	delete(m.clearedFields, sprint.FieldPlannerInput)
}

// SetPlannerOutput sets the "planner_output" field.
func (m *SprintMutation) SetPlannerOutput(value map[string]interface{}) {
	m.planner_output = &value
}

// PlannerOutput returns the value of the "planner_output" field in the mutation.
func (m *SprintMutation) PlannerOutput() (r map[string]interface{}, exists bool) {
	v := m.planner_output
	if v == nil {
		return
	}
	return *v, true
}

// OldPlannerOutput returns the old "planner_output" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldPlannerOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlannerOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlannerOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlannerOutput: %w", err)
	}
	return oldValue.PlannerOutput, nil
}

// ClearPlannerOutput clears the value of the "planner_output" field.
func (m *SprintMutation) ClearPlannerOutput() {
	m.planner_output = nil
	m.clearedFields[sprint.FieldPlannerOutput] = struct{}{}
}

// PlannerOutputCleared returns if the "planner_output" field was cleared in this mutation.
func (m *SprintMutation) PlannerOutputCleared() bool {
	_, ok := m.clearedFields[sprint.FieldPlannerOutput]
	return ok
}

// ResetPlannerOutput resets all changes to the "planner_output" field.
func (m *SprintMutation) ResetPlannerOutput() {
	m.planner_output = nil
	delete(m.clearedFields, sprint.FieldPlannerOutput)
}

// SetAdaptiveMetadata sets the "adaptive_metadata" field.
func (m *SprintMutation) SetAdaptiveMetadata(value map[string]interface{}) {
	m.adaptive_metadata = &value
}

// AdaptiveMetadata returns the value of the "adaptive_metadata" field in the mutation.
func (m *SprintMutation) AdaptiveMetadata() (r map[string]interface{}, exists bool) {
	v := m.adaptive_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldAdaptiveMetadata returns the old "adaptive_metadata" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldAdaptiveMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdaptiveMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdaptiveMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdaptiveMetadata: %w", err)
	}
	return oldValue.AdaptiveMetadata, nil
}

// ClearAdaptiveMetadata clears the value of the "adaptive_metadata" field.
func (m *SprintMutation) ClearAdaptiveMetadata() {
	m.adaptive_metadata = nil
	m.clearedFields[sprint.FieldAdaptiveMetadata] = struct{}{}
}

// AdaptiveMetadataCleared returns if the "adaptive_metadata" field was cleared in this mutation.
func (m *SprintMutation) AdaptiveMetadataCleared() bool {
	_, ok := m.clearedFields[sprint.FieldAdaptiveMetadata]
	return ok
}

// ResetAdaptiveMetadata resets all changes to the "adaptive_metadata" field.
func (m *SprintMutation) ResetAdaptiveMetadata() {
	m.adaptive_metadata = nil
	delete(m.clearedFields, sprint.FieldAdaptiveMetadata)
}

// SetStartedAt sets the "started_at" field.
func (m *SprintMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SprintMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *SprintMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[sprint.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SprintMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[sprint.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SprintMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, sprint.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SprintMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SprintMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SprintMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[sprint.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SprintMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[sprint.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SprintMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, sprint.FieldCompletedAt)
}

// SetCompletionPercentage sets the "completion_percentage" field.
func (m *SprintMutation) SetCompletionPercentage(f float64) {
	m.completion_percentage = &f
	m.addcompletion_percentage = nil
}

// CompletionPercentage returns the value of the "completion_percentage" field in the mutation.
func (m *SprintMutation) CompletionPercentage() (r float64, exists bool) {
	v := m.completion_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionPercentage returns the old "completion_percentage" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldCompletionPercentage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionPercentage: %w", err)
	}
	return oldValue.CompletionPercentage, nil
}

// AddCompletionPercentage adds f to the "completion_percentage" field.
func (m *SprintMutation) AddCompletionPercentage(f float64) {
	if m.addcompletion_percentage != nil {
		*m.addcompletion_percentage += f
	} else {
		m.addcompletion_percentage = &f
	}
}

// AddedCompletionPercentage returns the value that was added to the "completion_percentage" field in this mutation.
func (m *SprintMutation) AddedCompletionPercentage() (r float64, exists bool) {
	v := m.addcompletion_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionPercentage resets all changes to the "completion_percentage" field.
func (m *SprintMutation) ResetCompletionPercentage() {
	m.completion_percentage = nil
	m.addcompletion_percentage = nil
}

// SetScore sets the "score" field.
func (m *SprintMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *SprintMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *SprintMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *SprintMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *SprintMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[sprint.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *SprintMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[sprint.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *SprintMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, sprint.FieldScore)
}

// SetReviewerSummary sets the "reviewer_summary" field.
func (m *SprintMutation) SetReviewerSummary(s string) {
	m.reviewer_summary = &s
}

// ReviewerSummary returns the value of the "reviewer_summary" field in the mutation.
func (m *SprintMutation) ReviewerSummary() (r string, exists bool) {
	v := m.reviewer_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewerSummary returns the old "reviewer_summary" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldReviewerSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewerSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewerSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewerSummary: %w", err)
	}
	return oldValue.ReviewerSummary, nil
}

// ResetReviewerSummary resets all changes to the "reviewer_summary" field.
func (m *SprintMutation) ResetReviewerSummary() {
	m.reviewer_summary = nil
}

// SetSelfEvaluationConfidence sets the "self_evaluation_confidence" field.
func (m *SprintMutation) SetSelfEvaluationConfidence(i int) {
	m.self_evaluation_confidence = &i
	m.addself_evaluation_confidence = nil
}

// SelfEvaluationConfidence returns the value of the "self_evaluation_confidence" field in the mutation.
func (m *SprintMutation) SelfEvaluationConfidence() (r int, exists bool) {
	v := m.self_evaluation_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldSelfEvaluationConfidence returns the old "self_evaluation_confidence" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldSelfEvaluationConfidence(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelfEvaluationConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelfEvaluationConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelfEvaluationConfidence: %w", err)
	}
	return oldValue.SelfEvaluationConfidence, nil
}

// AddSelfEvaluationConfidence adds i to the "self_evaluation_confidence" field.
func (m *SprintMutation) AddSelfEvaluationConfidence(i int) {
	if m.addself_evaluation_confidence != nil {
		*m.addself_evaluation_confidence += i
	} else {
		m.addself_evaluation_confidence = &i
	}
}

// AddedSelfEvaluationConfidence returns the value that was added to the "self_evaluation_confidence" field in this mutation.
func (m *SprintMutation) AddedSelfEvaluationConfidence() (r int, exists bool) {
	v := m.addself_evaluation_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearSelfEvaluationConfidence clears the value of the "self_evaluation_confidence" field.
func (m *SprintMutation) ClearSelfEvaluationConfidence() {
	m.self_evaluation_confidence = nil
	m.addself_evaluation_confidence = nil
	m.clearedFields[sprint.FieldSelfEvaluationConfidence] = struct{}{}
}

// SelfEvaluationConfidenceCleared returns if the "self_evaluation_confidence" field was cleared in this mutation.
func (m *SprintMutation) SelfEvaluationConfidenceCleared() bool {
	_, ok := m.clearedFields[sprint.FieldSelfEvaluationConfidence]
	return ok
}

// ResetSelfEvaluationConfidence resets all changes to the "self_evaluation_confidence" field.
func (m *SprintMutation) ResetSelfEvaluationConfidence() {
	m.self_evaluation_confidence = nil
	m.addself_evaluation_confidence = nil
	delete(m.clearedFields, sprint.FieldSelfEvaluationConfidence)
}

// SetSelfEvaluationReflection sets the "self_evaluation_reflection" field.
func (m *SprintMutation) SetSelfEvaluationReflection(s string) {
	m.self_evaluation_reflection = &s
}

// SelfEvaluationReflection returns the value of the "self_evaluation_reflection" field in the mutation.
func (m *SprintMutation) SelfEvaluationReflection() (r string, exists bool) {
	v := m.self_evaluation_reflection
	if v == nil {
		return
	}
	return *v, true
}

// OldSelfEvaluationReflection returns the old "self_evaluation_reflection" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldSelfEvaluationReflection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelfEvaluationReflection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelfEvaluationReflection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelfEvaluationReflection: %w", err)
	}
	return oldValue.SelfEvaluationReflection, nil
}

// ResetSelfEvaluationReflection resets all changes to the "self_evaluation_reflection" field.
func (m *SprintMutation) ResetSelfEvaluationReflection() {
	m.self_evaluation_reflection = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SprintMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SprintMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SprintMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SprintMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SprintMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Sprint entity.
// If the Sprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SprintMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SprintMutation builder.
func (m *SprintMutation) Where(ps ...predicate.Sprint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SprintMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SprintMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Sprint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SprintMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SprintMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Sprint).
func (m *SprintMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SprintMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.objective_id != nil {
		fields = append(fields, sprint.FieldObjectiveID)
	}
	if m.day_number != nil {
		fields = append(fields, sprint.FieldDayNumber)
	}
	if m.length_days != nil {
		fields = append(fields, sprint.FieldLengthDays)
	}
	if m.total_estimated_hours != nil {
		fields = append(fields, sprint.FieldTotalEstimatedHours)
	}
	if m.difficulty != nil {
		fields = append(fields, sprint.FieldDifficulty)
	}
	if m.status != nil {
		fields = append(fields, sprint.FieldStatus)
	}
	if m.planner_input != nil {
		fields = append(fields, sprint.FieldPlannerInput)
	}
	if m.planner_output != nil {
		fields = append(fields, sprint.FieldPlannerOutput)
	}
	if m.adaptive_metadata != nil {
		fields = append(fields, sprint.FieldAdaptiveMetadata)
	}
	if m.started_at != nil {
		fields = append(fields, sprint.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, sprint.FieldCompletedAt)
	}
	if m.completion_percentage != nil {
		fields = append(fields, sprint.FieldCompletionPercentage)
	}
	if m.score != nil {
		fields = append(fields, sprint.FieldScore)
	}
	if m.reviewer_summary != nil {
		fields = append(fields, sprint.FieldReviewerSummary)
	}
	if m.self_evaluation_confidence != nil {
		fields = append(fields, sprint.FieldSelfEvaluationConfidence)
	}
	if m.self_evaluation_reflection != nil {
		fields = append(fields, sprint.FieldSelfEvaluationReflection)
	}
	if m.created_at != nil {
		fields = append(fields, sprint.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sprint.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SprintMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sprint.FieldObjectiveID:
		return m.ObjectiveID()
	case sprint.FieldDayNumber:
		return m.DayNumber()
	case sprint.FieldLengthDays:
		return m.LengthDays()
	case sprint.FieldTotalEstimatedHours:
		return m.TotalEstimatedHours()
	case sprint.FieldDifficulty:
		return m.Difficulty()
	case sprint.FieldStatus:
		return m.Status()
	case sprint.FieldPlannerInput:
		return m.PlannerInput()
	case sprint.FieldPlannerOutput:
		return m.PlannerOutput()
	case sprint.FieldAdaptiveMetadata:
		return m.AdaptiveMetadata()
	case sprint.FieldStartedAt:
		return m.StartedAt()
	case sprint.FieldCompletedAt:
		return m.CompletedAt()
	case sprint.FieldCompletionPercentage:
		return m.CompletionPercentage()
	case sprint.FieldScore:
		return m.Score()
	case sprint.FieldReviewerSummary:
		return m.ReviewerSummary()
	case sprint.FieldSelfEvaluationConfidence:
		return m.SelfEvaluationConfidence()
	case sprint.FieldSelfEvaluationReflection:
		return m.SelfEvaluationReflection()
	case sprint.FieldCreatedAt:
		return m.CreatedAt()
	case sprint.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SprintMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sprint.FieldObjectiveID:
		return m.OldObjectiveID(ctx)
	case sprint.FieldDayNumber:
		return m.OldDayNumber(ctx)
	case sprint.FieldLengthDays:
		return m.OldLengthDays(ctx)
	case sprint.FieldTotalEstimatedHours:
		return m.OldTotalEstimatedHours(ctx)
	case sprint.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case sprint.FieldStatus:
		return m.OldStatus(ctx)
	case sprint.FieldPlannerInput:
		return m.OldPlannerInput(ctx)
	case sprint.FieldPlannerOutput:
		return m.OldPlannerOutput(ctx)
	case sprint.FieldAdaptiveMetadata:
		return m.OldAdaptiveMetadata(ctx)
	case sprint.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case sprint.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case sprint.FieldCompletionPercentage:
		return m.OldCompletionPercentage(ctx)
	case sprint.FieldScore:
		return m.OldScore(ctx)
	case sprint.FieldReviewerSummary:
		return m.OldReviewerSummary(ctx)
	case sprint.FieldSelfEvaluationConfidence:
		return m.OldSelfEvaluationConfidence(ctx)
	case sprint.FieldSelfEvaluationReflection:
		return m.OldSelfEvaluationReflection(ctx)
	case sprint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sprint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Sprint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SprintMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sprint.FieldObjectiveID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectiveID(v)
		return nil
	case sprint.FieldDayNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayNumber(v)
		return nil
	case sprint.FieldLengthDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLengthDays(v)
		return nil
	case sprint.FieldTotalEstimatedHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalEstimatedHours(v)
		return nil
	case sprint.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case sprint.FieldStatus:
		v, ok := value.(sprint.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sprint.FieldPlannerInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlannerInput(v)
		return nil
	case sprint.FieldPlannerOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlannerOutput(v)
		return nil
	case sprint.FieldAdaptiveMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdaptiveMetadata(v)
		return nil
	case sprint.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case sprint.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case sprint.FieldCompletionPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionPercentage(v)
		return nil
	case sprint.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case sprint.FieldReviewerSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewerSummary(v)
		return nil
	case sprint.FieldSelfEvaluationConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelfEvaluationConfidence(v)
		return nil
	case sprint.FieldSelfEvaluationReflection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelfEvaluationReflection(v)
		return nil
	case sprint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sprint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Sprint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SprintMutation) AddedFields() []string {
	var fields []string
	if m.addday_number != nil {
		fields = append(fields, sprint.FieldDayNumber)
	}
	if m.addlength_days != nil {
		fields = append(fields, sprint.FieldLengthDays)
	}
	if m.addtotal_estimated_hours != nil {
		fields = append(fields, sprint.FieldTotalEstimatedHours)
	}
	if m.addcompletion_percentage != nil {
		fields = append(fields, sprint.FieldCompletionPercentage)
	}
	if m.addscore != nil {
		fields = append(fields, sprint.FieldScore)
	}
	if m.addself_evaluation_confidence != nil {
		fields = append(fields, sprint.FieldSelfEvaluationConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SprintMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sprint.FieldDayNumber:
		return m.AddedDayNumber()
	case sprint.FieldLengthDays:
		return m.AddedLengthDays()
	case sprint.FieldTotalEstimatedHours:
		return m.AddedTotalEstimatedHours()
	case sprint.FieldCompletionPercentage:
		return m.AddedCompletionPercentage()
	case sprint.FieldScore:
		return m.AddedScore()
	case sprint.FieldSelfEvaluationConfidence:
		return m.AddedSelfEvaluationConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SprintMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sprint.FieldDayNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayNumber(v)
		return nil
	case sprint.FieldLengthDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLengthDays(v)
		return nil
	case sprint.FieldTotalEstimatedHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalEstimatedHours(v)
		return nil
	case sprint.FieldCompletionPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionPercentage(v)
		return nil
	case sprint.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case sprint.FieldSelfEvaluationConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSelfEvaluationConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Sprint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SprintMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sprint.FieldPlannerInput) {
		fields = append(fields, sprint.FieldPlannerInput)
	}
	if m.FieldCleared(sprint.FieldPlannerOutput) {
		fields = append(fields, sprint.FieldPlannerOutput)
	}
	if m.FieldCleared(sprint.FieldAdaptiveMetadata) {
		fields = append(fields, sprint.FieldAdaptiveMetadata)
	}
	if m.FieldCleared(sprint.FieldStartedAt) {
		fields = append(fields, sprint.FieldStartedAt)
	}
	if m.FieldCleared(sprint.FieldCompletedAt) {
		fields = append(fields, sprint.FieldCompletedAt)
	}
	if m.FieldCleared(sprint.FieldScore) {
		fields = append(fields, sprint.FieldScore)
	}
	if m.FieldCleared(sprint.FieldSelfEvaluationConfidence) {
		fields = append(fields, sprint.FieldSelfEvaluationConfidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SprintMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SprintMutation) ClearField(name string) error {
	switch name {
	case sprint.FieldPlannerInput:
		m.ClearPlannerInput()
		return nil
	case sprint.FieldPlannerOutput:
		m.ClearPlannerOutput()
		return nil
	case sprint.FieldAdaptiveMetadata:
		m.ClearAdaptiveMetadata()
		return nil
	case sprint.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case sprint.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case sprint.FieldScore:
		m.ClearScore()
		return nil
	case sprint.FieldSelfEvaluationConfidence:
		m.ClearSelfEvaluationConfidence()
		return nil
	}
	return fmt.Errorf("unknown Sprint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SprintMutation) ResetField(name string) error {
	switch name {
	case sprint.FieldObjectiveID:
		m.ResetObjectiveID()
		return nil
	case sprint.FieldDayNumber:
		m.ResetDayNumber()
		return nil
	case sprint.FieldLengthDays:
		m.ResetLengthDays()
		return nil
	case sprint.FieldTotalEstimatedHours:
		m.ResetTotalEstimatedHours()
		return nil
	case sprint.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case sprint.FieldStatus:
		m.ResetStatus()
		return nil
	case sprint.FieldPlannerInput:
		m.ResetPlannerInput()
		return nil
	case sprint.FieldPlannerOutput:
		m.ResetPlannerOutput()
		return nil
	case sprint.FieldAdaptiveMetadata:
		m.ResetAdaptiveMetadata()
		return nil
	case sprint.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case sprint.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case sprint.FieldCompletionPercentage:
		m.ResetCompletionPercentage()
		return nil
	case sprint.FieldScore:
		m.ResetScore()
		return nil
	case sprint.FieldReviewerSummary:
		m.ResetReviewerSummary()
		return nil
	case sprint.FieldSelfEvaluationConfidence:
		m.ResetSelfEvaluationConfidence()
		return nil
	case sprint.FieldSelfEvaluationReflection:
		m.ResetSelfEvaluationReflection()
		return nil
	case sprint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sprint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Sprint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SprintMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SprintMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SprintMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SprintMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SprintMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SprintMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SprintMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Sprint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SprintMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Sprint edge %s", name)
}

// SprintArtifactMutation represents an operation that mutates the SprintArtifact nodes in the graph.
type SprintArtifactMutation struct {
	config
	op            Op
	typ           string
	id            *string
	sprint_id     *string
	artifact_id   *string
	project_id    *string
	_type         *sprintartifact.Type
	title         *string
	url           *string
	status        *sprintartifact.Status
	notes         *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SprintArtifact, error)
	predicates    []predicate.SprintArtifact
}

var _ ent.Mutation = (*SprintArtifactMutation)(nil)

// sprintartifactOption allows management of the mutation configuration using functional options.
type sprintartifactOption func(*SprintArtifactMutation)

// newSprintArtifactMutation creates new mutation for the SprintArtifact entity.
func newSprintArtifactMutation(c config, op Op, opts ...sprintartifactOption) *SprintArtifactMutation {
	m := &SprintArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeSprintArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSprintArtifactID sets the ID field of the mutation.
func withSprintArtifactID(id string) sprintartifactOption {
	return func(m *SprintArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *SprintArtifact
		)
		m.oldValue = func(ctx context.Context) (*SprintArtifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SprintArtifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSprintArtifact sets the old SprintArtifact of the mutation.
func withSprintArtifact(node *SprintArtifact) sprintartifactOption {
	return func(m *SprintArtifactMutation) {
		m.oldValue = func(context.Context) (*SprintArtifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SprintArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SprintArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SprintArtifact entities.
func (m *SprintArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SprintArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SprintArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SprintArtifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSprintID sets the "sprint_id" field.
func (m *SprintArtifactMutation) SetSprintID(s string) {
	m.sprint_id = &s
}

// SprintID returns the value of the "sprint_id" field in the mutation.
func (m *SprintArtifactMutation) SprintID() (r string, exists bool) {
	v := m.sprint_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSprintID returns the old "sprint_id" field's value of the SprintArtifact entity.
// If the SprintArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintArtifactMutation) OldSprintID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSprintID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSprintID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSprintID: %w", err)
	}
	return oldValue.SprintID, nil
}

// ResetSprintID resets all changes to the "sprint_id" field.
func (m *SprintArtifactMutation) ResetSprintID() {
	m.sprint_id = nil
}

// SetArtifactID sets the "artifact_id" field.
func (m *SprintArtifactMutation) SetArtifactID(s string) {
	m.artifact_id = &s
}

// ArtifactID returns the value of the "artifact_id" field in the mutation.
func (m *SprintArtifactMutation) ArtifactID() (r string, exists bool) {
	v := m.artifact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactID returns the old "artifact_id" field's value of the SprintArtifact entity.
// If the SprintArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintArtifactMutation) OldArtifactID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactID: %w", err)
	}
	return oldValue.ArtifactID, nil
}

// ResetArtifactID resets all changes to the "artifact_id" field.
func (m *SprintArtifactMutation) ResetArtifactID() {
	m.artifact_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *SprintArtifactMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SprintArtifactMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the SprintArtifact entity.
// If the SprintArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintArtifactMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SprintArtifactMutation) ResetProjectID() {
	m.project_id = nil
}

// SetType sets the "type" field.
func (m *SprintArtifactMutation) SetType(s sprintartifact.Type) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *SprintArtifactMutation) GetType() (r sprintartifact.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the SprintArtifact entity.
// If the SprintArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintArtifactMutation) OldType(ctx context.Context) (v sprintartifact.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *SprintArtifactMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *SprintArtifactMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SprintArtifactMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the SprintArtifact entity.
// If the SprintArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintArtifactMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SprintArtifactMutation) ResetTitle() {
	m.title = nil
}

// SetURL sets the "url" field.
func (m *SprintArtifactMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *SprintArtifactMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the SprintArtifact entity.
// If the SprintArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintArtifactMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *SprintArtifactMutation) ResetURL() {
	m.url = nil
}

// SetStatus sets the "status" field.
func (m *SprintArtifactMutation) SetStatus(s sprintartifact.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SprintArtifactMutation) Status() (r sprintartifact.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SprintArtifact entity.
// If the SprintArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintArtifactMutation) OldStatus(ctx context.Context) (v sprintartifact.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SprintArtifactMutation) ResetStatus() {
	m.status = nil
}

// SetNotes sets the "notes" field.
func (m *SprintArtifactMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *SprintArtifactMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the SprintArtifact entity.
// If the SprintArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintArtifactMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ResetNotes resets all changes to the "notes" field.
func (m *SprintArtifactMutation) ResetNotes() {
	m.notes = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SprintArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SprintArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SprintArtifact entity.
// If the SprintArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SprintArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SprintArtifactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SprintArtifactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SprintArtifact entity.
// If the SprintArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SprintArtifactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SprintArtifactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SprintArtifactMutation builder.
func (m *SprintArtifactMutation) Where(ps ...predicate.SprintArtifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SprintArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SprintArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SprintArtifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SprintArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SprintArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SprintArtifact).
func (m *SprintArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SprintArtifactMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sprint_id != nil {
		fields = append(fields, sprintartifact.FieldSprintID)
	}
	if m.artifact_id != nil {
		fields = append(fields, sprintartifact.FieldArtifactID)
	}
	if m.project_id != nil {
		fields = append(fields, sprintartifact.FieldProjectID)
	}
	if m._type != nil {
		fields = append(fields, sprintartifact.FieldType)
	}
	if m.title != nil {
		fields = append(fields, sprintartifact.FieldTitle)
	}
	if m.url != nil {
		fields = append(fields, sprintartifact.FieldURL)
	}
	if m.status != nil {
		fields = append(fields, sprintartifact.FieldStatus)
	}
	if m.notes != nil {
		fields = append(fields, sprintartifact.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, sprintartifact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sprintartifact.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SprintArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sprintartifact.FieldSprintID:
		return m.SprintID()
	case sprintartifact.FieldArtifactID:
		return m.ArtifactID()
	case sprintartifact.FieldProjectID:
		return m.ProjectID()
	case sprintartifact.FieldType:
		return m.GetType()
	case sprintartifact.FieldTitle:
		return m.Title()
	case sprintartifact.FieldURL:
		return m.URL()
	case sprintartifact.FieldStatus:
		return m.Status()
	case sprintartifact.FieldNotes:
		return m.Notes()
	case sprintartifact.FieldCreatedAt:
		return m.CreatedAt()
	case sprintartifact.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SprintArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sprintartifact.FieldSprintID:
		return m.OldSprintID(ctx)
	case sprintartifact.FieldArtifactID:
		return m.OldArtifactID(ctx)
	case sprintartifact.FieldProjectID:
		return m.OldProjectID(ctx)
	case sprintartifact.FieldType:
		return m.OldType(ctx)
	case sprintartifact.FieldTitle:
		return m.OldTitle(ctx)
	case sprintartifact.FieldURL:
		return m.OldURL(ctx)
	case sprintartifact.FieldStatus:
		return m.OldStatus(ctx)
	case sprintartifact.FieldNotes:
		return m.OldNotes(ctx)
	case sprintartifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sprintartifact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SprintArtifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SprintArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sprintartifact.FieldSprintID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSprintID(v)
		return nil
	case sprintartifact.FieldArtifactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactID(v)
		return nil
	case sprintartifact.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case sprintartifact.FieldType:
		v, ok := value.(sprintartifact.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case sprintartifact.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case sprintartifact.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case sprintartifact.FieldStatus:
		v, ok := value.(sprintartifact.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sprintartifact.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case sprintartifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sprintartifact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SprintArtifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SprintArtifactMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SprintArtifactMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SprintArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SprintArtifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SprintArtifactMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SprintArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SprintArtifactMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SprintArtifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SprintArtifactMutation) ResetField(name string) error {
	switch name {
	case sprintartifact.FieldSprintID:
		m.ResetSprintID()
		return nil
	case sprintartifact.FieldArtifactID:
		m.ResetArtifactID()
		return nil
	case sprintartifact.FieldProjectID:
		m.ResetProjectID()
		return nil
	case sprintartifact.FieldType:
		m.ResetType()
		return nil
	case sprintartifact.FieldTitle:
		m.ResetTitle()
		return nil
	case sprintartifact.FieldURL:
		m.ResetURL()
		return nil
	case sprintartifact.FieldStatus:
		m.ResetStatus()
		return nil
	case sprintartifact.FieldNotes:
		m.ResetNotes()
		return nil
	case sprintartifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sprintartifact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SprintArtifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SprintArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SprintArtifactMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SprintArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SprintArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SprintArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SprintArtifactMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SprintArtifactMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SprintArtifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SprintArtifactMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SprintArtifact edge %s", name)
}
