package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cadence/ent"
	"github.com/abhisek/cadence/ent/sprint"
)

// sprintRepo implements SprintRepo using the ent client.
type sprintRepo struct {
	client *ent.Client
}

func (r *sprintRepo) Create(ctx context.Context, s *Sprint) error {
	builder := r.client.Sprint.Create().
		SetID(s.ID).
		SetObjectiveID(s.ObjectiveID).
		SetDayNumber(s.DayNumber).
		SetLengthDays(s.LengthDays).
		SetTotalEstimatedHours(s.TotalEstimatedHours).
		SetDifficulty(s.Difficulty).
		SetStatus(sprint.Status(s.Status)).
		SetCompletionPercentage(s.CompletionPercentage).
		SetReviewerSummary(s.ReviewerSummary).
		SetSelfEvaluationReflection(s.SelfEvaluationReflection).
		SetNillableStartedAt(s.StartedAt).
		SetNillableCompletedAt(s.CompletedAt).
		SetNillableScore(s.Score).
		SetNillableSelfEvaluationConfidence(s.SelfEvaluationConfidence)

	if s.PlannerInput != nil {
		builder = builder.SetPlannerInput(s.PlannerInput)
	}
	if s.PlannerOutput != nil {
		builder = builder.SetPlannerOutput(s.PlannerOutput)
	}
	if s.AdaptiveMetadata != nil {
		builder = builder.SetAdaptiveMetadata(s.AdaptiveMetadata)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("create sprint: %w", err)
	}
	s.CreatedAt = created.CreatedAt
	s.UpdatedAt = created.UpdatedAt
	return nil
}

func (r *sprintRepo) Get(ctx context.Context, id string) (*Sprint, error) {
	e, err := r.client.Sprint.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &NotFoundError{Entity: "sprint", ID: id}
		}
		return nil, fmt.Errorf("get sprint: %w", err)
	}
	return entSprint(e), nil
}

func (r *sprintRepo) Update(ctx context.Context, s *Sprint) error {
	builder := r.client.Sprint.UpdateOneID(s.ID).
		SetStatus(sprint.Status(s.Status)).
		SetLengthDays(s.LengthDays).
		SetTotalEstimatedHours(s.TotalEstimatedHours).
		SetDifficulty(s.Difficulty).
		SetCompletionPercentage(s.CompletionPercentage).
		SetReviewerSummary(s.ReviewerSummary).
		SetSelfEvaluationReflection(s.SelfEvaluationReflection).
		SetNillableStartedAt(s.StartedAt).
		SetNillableCompletedAt(s.CompletedAt).
		SetNillableScore(s.Score).
		SetNillableSelfEvaluationConfidence(s.SelfEvaluationConfidence)

	if s.PlannerInput != nil {
		builder = builder.SetPlannerInput(s.PlannerInput)
	}
	if s.PlannerOutput != nil {
		builder = builder.SetPlannerOutput(s.PlannerOutput)
	}
	if s.AdaptiveMetadata != nil {
		builder = builder.SetAdaptiveMetadata(s.AdaptiveMetadata)
	}

	e, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &NotFoundError{Entity: "sprint", ID: s.ID}
		}
		return fmt.Errorf("update sprint: %w", err)
	}
	s.UpdatedAt = e.UpdatedAt
	return nil
}

func (r *sprintRepo) ByObjective(ctx context.Context, objectiveID string) ([]*Sprint, error) {
	rows, err := r.client.Sprint.Query().
		Where(sprint.ObjectiveID(objectiveID)).
		Order(ent.Asc(sprint.FieldDayNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sprints: %w", err)
	}
	return entSprints(rows), nil
}

func (r *sprintRepo) Current(ctx context.Context, objectiveID string) (*Sprint, error) {
	e, err := r.client.Sprint.Query().
		Where(
			sprint.ObjectiveID(objectiveID),
			sprint.StatusIn(sprint.StatusPlanned, sprint.StatusInProgress),
		).
		Order(ent.Asc(sprint.FieldDayNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query current sprint: %w", err)
	}
	return entSprint(e), nil
}

func (r *sprintRepo) LastDayNumber(ctx context.Context, objectiveID string) (int, error) {
	e, err := r.client.Sprint.Query().
		Where(sprint.ObjectiveID(objectiveID)).
		Order(ent.Desc(sprint.FieldDayNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query last day number: %w", err)
	}
	return e.DayNumber, nil
}

func (r *sprintRepo) RecentReviewed(ctx context.Context, objectiveID string, limit int) ([]*Sprint, error) {
	rows, err := r.client.Sprint.Query().
		Where(
			sprint.ObjectiveID(objectiveID),
			sprint.StatusEQ(sprint.StatusReviewed),
			sprint.ScoreNotNil(),
		).
		Order(ent.Desc(sprint.FieldDayNumber)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reviewed sprints: %w", err)
	}
	return entSprints(rows), nil
}

func entSprints(rows []*ent.Sprint) []*Sprint {
	out := make([]*Sprint, len(rows))
	for i, e := range rows {
		out[i] = entSprint(e)
	}
	return out
}

// entSprint converts an ent row to a store Sprint.
func entSprint(e *ent.Sprint) *Sprint {
	return &Sprint{
		ID:                       e.ID,
		ObjectiveID:              e.ObjectiveID,
		DayNumber:                e.DayNumber,
		LengthDays:               e.LengthDays,
		TotalEstimatedHours:      e.TotalEstimatedHours,
		Difficulty:               e.Difficulty,
		Status:                   string(e.Status),
		PlannerInput:             e.PlannerInput,
		PlannerOutput:            e.PlannerOutput,
		AdaptiveMetadata:         e.AdaptiveMetadata,
		StartedAt:                e.StartedAt,
		CompletedAt:              e.CompletedAt,
		CompletionPercentage:     e.CompletionPercentage,
		Score:                    e.Score,
		ReviewerSummary:          e.ReviewerSummary,
		SelfEvaluationConfidence: e.SelfEvaluationConfidence,
		SelfEvaluationReflection: e.SelfEvaluationReflection,
		CreatedAt:                e.CreatedAt,
		UpdatedAt:                e.UpdatedAt,
	}
}
