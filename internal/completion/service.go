// Package completion validates and applies sprint-completion
// submissions: precondition checks, streak and milestone bookkeeping,
// domain events, and best-effort next-sprint generation.
package completion

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cadence/internal/events"
	"github.com/abhisek/cadence/internal/store"
)

// minCompletionRate is the hard floor for accepting a completion.
const minCompletionRate = 0.5

// Generator is the slice of the auto-generation scheduler the
// completion handler needs.
type Generator interface {
	ShouldGenerateNext(ctx context.Context, objectiveID, currentSprintID string) (bool, error)
	GenerateNextSprint(ctx context.Context, objectiveID, userID string) (*store.Sprint, error)
	MaintainBuffer(ctx context.Context, objectiveID, userID string) error
}

// Service handles sprint completion and partial progress updates.
type Service struct {
	sprints    store.SprintRepo
	objectives store.ObjectiveRepo
	milestones store.MilestoneRepo
	emitter    events.Emitter
	generator  Generator
	effort     BestEffort
	now        func() time.Time
}

// NewService wires a completion handler. generator may be nil when
// auto-generation is disabled.
func NewService(sprints store.SprintRepo, objectives store.ObjectiveRepo, milestones store.MilestoneRepo, emitter events.Emitter, generator Generator) *Service {
	return &Service{
		sprints:    sprints,
		objectives: objectives,
		milestones: milestones,
		emitter:    emitter,
		generator:  generator,
		effort:     NewBestEffort(nil),
		now:        time.Now,
	}
}

// WithClock overrides the time source. Used in tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Complete validates and applies a completion submission. All
// preconditions are checked before any mutation; once the sprint is
// marked complete the remaining side effects are each independently
// fault-tolerant.
func (s *Service) Complete(ctx context.Context, sprintID, userID string, data CompletionData) (*CompletionResult, error) {
	sprint, err := s.sprints.Get(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	if sprint.IsCompleted() {
		return nil, &ErrAlreadyCompleted{SprintID: sprintID}
	}

	obj, err := s.objectives.Get(ctx, sprint.ObjectiveID)
	if err != nil {
		return nil, err
	}
	if obj.UserID != userID {
		return nil, &ErrUnauthorized{UserID: userID, ObjectiveID: obj.ID}
	}

	rate, missing := validate(data)
	if len(missing) > 0 {
		return nil, &ErrValidation{SprintID: sprintID, Missing: missing}
	}

	result := &CompletionResult{
		SprintID:        sprintID,
		SprintCompleted: true,
		CompletionRate:  rate,
	}
	if !data.EvidenceSubmitted {
		result.Warnings = append(result.Warnings, "no evidence submitted for this sprint")
	}

	now := s.now()

	sprint.Status = store.SprintSubmitted
	sprint.CompletedAt = &now
	sprint.CompletionPercentage = rate * 100
	if data.Reflection != "" {
		sprint.SelfEvaluationReflection = data.Reflection
	}
	if sprint.AdaptiveMetadata == nil {
		sprint.AdaptiveMetadata = map[string]any{}
	}
	sprint.AdaptiveMetadata["hoursSpent"] = data.HoursSpent
	if err := s.sprints.Update(ctx, sprint); err != nil {
		return nil, fmt.Errorf("mark sprint complete: %w", err)
	}

	s.applyStreak(obj, now)
	obj.CompletedDays++
	obj.LastCompletedAt = &now
	if err := s.objectives.Update(ctx, obj); err != nil {
		return nil, fmt.Errorf("update objective progress: %w", err)
	}
	result.CurrentStreak = obj.CurrentStreak

	s.emitter.Emit(ctx, "sprint_completed", map[string]any{
		"objectiveId":    obj.ID,
		"sprintId":       sprint.ID,
		"dayNumber":      sprint.DayNumber,
		"completionRate": rate,
		"hoursSpent":     data.HoursSpent,
	})

	s.effort.Run("milestone check", func() error {
		return s.flipMilestones(ctx, obj)
	})

	if obj.CurrentStreak > 0 && obj.CurrentStreak%7 == 0 {
		result.Notifications = append(result.Notifications, Notification{
			Type:    NotifyStreakMilestone,
			Message: fmt.Sprintf("%d days in a row. Keep the streak alive.", obj.CurrentStreak),
		})
	}

	if s.generator != nil {
		s.effort.Run("next sprint generation", func() error {
			should, err := s.generator.ShouldGenerateNext(ctx, obj.ID, sprint.ID)
			if err != nil || !should {
				return err
			}
			if _, err := s.generator.GenerateNextSprint(ctx, obj.ID, userID); err != nil {
				return err
			}
			result.NextSprintGenerated = true
			return nil
		})
		s.effort.Run("sprint buffer top-up", func() error {
			return s.generator.MaintainBuffer(ctx, obj.ID, userID)
		})
	}

	progress, err := s.computeProgress(ctx, obj)
	if err != nil {
		return nil, fmt.Errorf("recompute progress: %w", err)
	}
	result.Progress = progress

	// The objective is never auto-completed. Wrapping up is the
	// learner's call; the engine only points it out.
	if obj.CompletedDays >= obj.EstimatedTotalDays {
		result.Notifications = append(result.Notifications, Notification{
			Type:    NotifyReadyToWrapUp,
			Message: fmt.Sprintf("All %d estimated days of %q are done. Ready to wrap it up?", obj.EstimatedTotalDays, obj.Title),
		})
	}

	return result, nil
}

// UpdateProgress records partial progress on a sprint without
// finalizing it. A planned sprint moves to in_progress on first update.
func (s *Service) UpdateProgress(ctx context.Context, sprintID string, percentage, hoursSpent float64) error {
	sprint, err := s.sprints.Get(ctx, sprintID)
	if err != nil {
		return err
	}
	if sprint.IsCompleted() {
		return &ErrAlreadyCompleted{SprintID: sprintID}
	}

	sprint.CompletionPercentage = clampPercent(percentage)
	if sprint.Status == store.SprintPlanned {
		now := s.now()
		sprint.Status = store.SprintInProgress
		sprint.StartedAt = &now
	}
	if hoursSpent > 0 {
		if sprint.AdaptiveMetadata == nil {
			sprint.AdaptiveMetadata = map[string]any{}
		}
		sprint.AdaptiveMetadata["hoursSpent"] = hoursSpent
	}
	return s.sprints.Update(ctx, sprint)
}

// GetCompletionStatus reports where a sprint stands.
func (s *Service) GetCompletionStatus(ctx context.Context, sprintID string) (*CompletionStatus, error) {
	sprint, err := s.sprints.Get(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	return &CompletionStatus{
		SprintID:             sprint.ID,
		Status:               sprint.Status,
		Completed:            sprint.IsCompleted(),
		CompletedAt:          sprint.CompletedAt,
		CompletionPercentage: sprint.CompletionPercentage,
		Score:                sprint.Score,
		DayNumber:            sprint.DayNumber,
	}, nil
}

// GetProgress recomputes the aggregate progress view for an objective.
func (s *Service) GetProgress(ctx context.Context, objectiveID string) (*Progress, error) {
	obj, err := s.objectives.Get(ctx, objectiveID)
	if err != nil {
		return nil, err
	}
	return s.computeProgress(ctx, obj)
}

// validate returns the completion rate and any hard failures. Missing
// evidence is deliberately not on the list; it only warrants a warning.
func validate(data CompletionData) (float64, []string) {
	var missing []string
	if data.TotalTasks <= 0 {
		missing = append(missing, "at least one task must be reported")
		return 0, missing
	}
	rate := float64(data.TasksCompleted) / float64(data.TotalTasks)
	if rate < minCompletionRate {
		missing = append(missing, fmt.Sprintf("at least 50%% of tasks must be completed (%d of %d done)", data.TasksCompleted, data.TotalTasks))
	}
	return rate, missing
}

// applyStreak updates the objective's streak counters for a completion
// happening at now. Completing again on the same calendar day leaves
// the streak unchanged; exactly one day after the last completion
// extends it; a longer gap starts a new one-day streak.
func (s *Service) applyStreak(obj *store.Objective, now time.Time) {
	switch {
	case obj.LastCompletedAt == nil:
		obj.CurrentStreak = 1
	default:
		switch daysBetween(*obj.LastCompletedAt, now) {
		case 0:
			// Same day, nothing to do.
		case 1:
			obj.CurrentStreak++
		default:
			obj.CurrentStreak = 1
		}
	}
	if obj.CurrentStreak > obj.LongestStreak {
		obj.LongestStreak = obj.CurrentStreak
	}
}

// flipMilestones completes every milestone whose target day has been
// reached and emits a milestone_reached event per flip.
func (s *Service) flipMilestones(ctx context.Context, obj *store.Objective) error {
	milestones, err := s.milestones.ByObjective(ctx, obj.ID)
	if err != nil {
		return err
	}
	for _, m := range milestones {
		if m.Completed || obj.CompletedDays < m.TargetDay {
			continue
		}
		if err := s.milestones.MarkCompleted(ctx, m.ID, s.now()); err != nil {
			return err
		}
		s.emitter.Emit(ctx, "milestone_reached", map[string]any{
			"objectiveId": obj.ID,
			"milestoneId": m.ID,
			"title":       m.Title,
			"targetDay":   m.TargetDay,
		})
	}
	return nil
}

func (s *Service) computeProgress(ctx context.Context, obj *store.Objective) (*Progress, error) {
	sprints, err := s.sprints.ByObjective(ctx, obj.ID)
	if err != nil {
		return nil, err
	}
	currentDay := 0
	for _, sp := range sprints {
		if sp.IsCompleted() && sp.DayNumber > currentDay {
			currentDay = sp.DayNumber
		}
	}

	percent := 0.0
	if obj.EstimatedTotalDays > 0 {
		percent = float64(obj.CompletedDays) / float64(obj.EstimatedTotalDays) * 100
		if percent > 100 {
			percent = 100
		}
	}

	return &Progress{
		ObjectiveID:     obj.ID,
		CurrentDay:      currentDay,
		CompletedDays:   obj.CompletedDays,
		EstimatedDays:   obj.EstimatedTotalDays,
		PercentComplete: percent,
		CurrentStreak:   obj.CurrentStreak,
		LongestStreak:   obj.LongestStreak,
	}, nil
}

// daysBetween counts calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
