// Package autogen maintains the look-ahead buffer of planned sprints per
// objective and decides when the next sprint should be generated.
package autogen

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/cadence/internal/plan"
	"github.com/abhisek/cadence/internal/store"
)

// DefaultBufferTarget is how many planned sprints are kept ready beyond
// the learner's current day.
const DefaultBufferTarget = 3

// ErrGenerationInFlight indicates generation for the objective is already
// running. Callers treat it as a benign no-op, never as a failure.
var ErrGenerationInFlight = errors.New("sprint generation already in flight for objective")

// Planner is the slice of the sprint planner the scheduler needs.
type Planner interface {
	Plan(ctx context.Context, in plan.Input) (*plan.Document, error)
}

// Scheduler generates sprints and maintains the look-ahead buffer.
type Scheduler struct {
	planner      Planner
	objectives   store.ObjectiveRepo
	sprints      store.SprintRepo
	bufferTarget int
	locks        *objectiveLocks
}

// NewScheduler creates an auto-generation scheduler.
func NewScheduler(planner Planner, objectives store.ObjectiveRepo, sprints store.SprintRepo) *Scheduler {
	return &Scheduler{
		planner:      planner,
		objectives:   objectives,
		sprints:      sprints,
		bufferTarget: DefaultBufferTarget,
		locks:        newObjectiveLocks(),
	}
}

// ShouldGenerateNext reports whether a sprint beyond the given current
// sprint exists yet.
func (s *Scheduler) ShouldGenerateNext(ctx context.Context, objectiveID, currentSprintID string) (bool, error) {
	current, err := s.sprints.Get(ctx, currentSprintID)
	if err != nil {
		return false, err
	}

	obj, err := s.objectives.Get(ctx, objectiveID)
	if err != nil {
		return false, err
	}
	if obj.Status == "completed" {
		return false, nil
	}

	lastDay, err := s.sprints.LastDayNumber(ctx, objectiveID)
	if err != nil {
		return false, err
	}

	return lastDay <= current.DayNumber, nil
}

// GenerateNextSprint generates the next sprint for the objective under the
// per-objective lock. A duplicate trigger while generation is in flight
// returns ErrGenerationInFlight without touching the store.
func (s *Scheduler) GenerateNextSprint(ctx context.Context, objectiveID, userID string) (*store.Sprint, error) {
	lock, ok := s.locks.tryAcquire(objectiveID)
	if !ok {
		return nil, ErrGenerationInFlight
	}
	defer s.locks.release(lock)

	return s.generateLocked(ctx, objectiveID, userID)
}

// GenerateSprintBatch generates up to count sprints in one call, stopping
// at the first failure and returning what was created.
func (s *Scheduler) GenerateSprintBatch(ctx context.Context, objectiveID, userID string, count int) ([]*store.Sprint, error) {
	lock, ok := s.locks.tryAcquire(objectiveID)
	if !ok {
		return nil, ErrGenerationInFlight
	}
	defer s.locks.release(lock)

	var created []*store.Sprint
	for range count {
		sp, err := s.generateLocked(ctx, objectiveID, userID)
		if err != nil {
			return created, err
		}
		created = append(created, sp)
	}
	return created, nil
}

// MaintainBuffer tops the look-ahead buffer up to the target. Best-effort
// by contract: a concurrent generation trigger makes this a no-op, and a
// missing buffer sprint is cheap to regenerate on the next trigger.
func (s *Scheduler) MaintainBuffer(ctx context.Context, objectiveID, userID string) error {
	lock, ok := s.locks.tryAcquire(objectiveID)
	if !ok {
		return nil
	}
	defer s.locks.release(lock)

	for {
		currentDay, lastDay, err := s.days(ctx, objectiveID)
		if err != nil {
			return err
		}
		if lastDay-currentDay >= s.bufferTarget {
			return nil
		}
		if _, err := s.generateLocked(ctx, objectiveID, userID); err != nil {
			return err
		}
	}
}

// GenerationStatus describes the buffer state for an objective.
type GenerationStatus struct {
	CurrentDay       int
	LastGeneratedDay int
	BufferDays       int
	IsGenerating     bool
	NextSprintReady  bool
}

// GetGenerationStatus reports the buffer state for an objective.
func (s *Scheduler) GetGenerationStatus(ctx context.Context, objectiveID string) (*GenerationStatus, error) {
	currentDay, lastDay, err := s.days(ctx, objectiveID)
	if err != nil {
		return nil, err
	}

	return &GenerationStatus{
		CurrentDay:       currentDay,
		LastGeneratedDay: lastDay,
		BufferDays:       lastDay - currentDay,
		IsGenerating:     s.locks.isGenerating(objectiveID),
		NextSprintReady:  lastDay > currentDay,
	}, nil
}

// days returns the learner's current day and the last generated day.
func (s *Scheduler) days(ctx context.Context, objectiveID string) (currentDay, lastDay int, err error) {
	obj, err := s.objectives.Get(ctx, objectiveID)
	if err != nil {
		return 0, 0, err
	}

	currentDay = obj.CompletedDays + 1
	if current, err := s.sprints.Current(ctx, objectiveID); err != nil {
		return 0, 0, err
	} else if current != nil {
		currentDay = current.DayNumber
	}

	lastDay, err = s.sprints.LastDayNumber(ctx, objectiveID)
	if err != nil {
		return 0, 0, err
	}
	return currentDay, lastDay, nil
}

// generateLocked creates the next sprint. Caller holds the objective lock.
// The day number is re-read under the lock, so duplicate day numbers
// cannot be allocated; the store's unique index is the final backstop.
func (s *Scheduler) generateLocked(ctx context.Context, objectiveID, userID string) (*store.Sprint, error) {
	obj, err := s.objectives.Get(ctx, objectiveID)
	if err != nil {
		return nil, err
	}
	if obj.UserID != userID {
		return nil, fmt.Errorf("objective %s is not owned by user %s", objectiveID, userID)
	}

	lastDay, err := s.sprints.LastDayNumber(ctx, objectiveID)
	if err != nil {
		return nil, err
	}
	nextDay := lastDay + 1

	in, err := s.buildInput(ctx, obj, nextDay)
	if err != nil {
		return nil, err
	}

	doc, err := s.planner.Plan(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("generate sprint for day %d: %w", nextDay, err)
	}

	inputMap, err := plan.InputToMap(in)
	if err != nil {
		return nil, fmt.Errorf("snapshot planner input: %w", err)
	}
	outputMap, err := doc.ToMap()
	if err != nil {
		return nil, fmt.Errorf("encode plan document: %w", err)
	}

	sp := &store.Sprint{
		ID:                  uuid.NewString(),
		ObjectiveID:         objectiveID,
		DayNumber:           nextDay,
		LengthDays:          doc.LengthDays,
		TotalEstimatedHours: doc.TotalEstimatedHours,
		Difficulty:          doc.Difficulty,
		Status:              store.SprintPlanned,
		PlannerInput:        inputMap,
		PlannerOutput:       outputMap,
		AdaptiveMetadata: map[string]any{
			"difficulty": obj.CurrentDifficulty,
			"velocity":   obj.LearningVelocity,
		},
	}

	if err := s.sprints.Create(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// buildInput assembles the planner request: skeleton for the first sprint
// of an objective, expansion from the latest plan otherwise.
func (s *Scheduler) buildInput(ctx context.Context, obj *store.Objective, nextDay int) (plan.Input, error) {
	in := plan.Input{
		Objective: plan.ObjectiveSnapshot{
			ID:              obj.ID,
			Title:           obj.Title,
			Description:     obj.Description,
			SuccessCriteria: obj.SuccessCriteria,
			RequiredSkills:  obj.RequiredSkills,
			Priority:        obj.Priority,
			Status:          obj.Status,
		},
		PreferLength: 1,
		Context:      fmt.Sprintf("Day %d of %d. Difficulty %d/100, pace multiplier %.2f.", nextDay, obj.EstimatedTotalDays, obj.CurrentDifficulty, obj.LearningVelocity),
		Mode:         plan.ModeSkeleton,
	}

	if nextDay == 1 {
		return in, nil
	}

	all, err := s.sprints.ByObjective(ctx, obj.ID)
	if err != nil {
		return plan.Input{}, err
	}
	if len(all) == 0 {
		return in, nil
	}

	latest := all[len(all)-1]
	if latest.PlannerOutput == nil {
		return in, nil
	}

	current, err := plan.FromMap(latest.PlannerOutput)
	if err != nil {
		return plan.Input{}, fmt.Errorf("decode latest plan: %w", err)
	}

	in.Mode = plan.ModeExpansion
	in.CurrentPlan = current
	in.PreferLength = latest.LengthDays
	in.Expansion = &plan.ExpansionGoal{
		TargetLengthDays:     latest.LengthDays,
		AdditionalMicroTasks: 3,
	}
	return in, nil
}
