package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cadence/ent"
	"github.com/abhisek/cadence/ent/milestone"
)

// milestoneRepo implements MilestoneRepo using the ent client.
type milestoneRepo struct {
	client *ent.Client
}

func (r *milestoneRepo) Create(ctx context.Context, m *Milestone) error {
	created, err := r.client.Milestone.Create().
		SetID(m.ID).
		SetObjectiveID(m.ObjectiveID).
		SetTitle(m.Title).
		SetTargetDay(m.TargetDay).
		SetCompleted(m.Completed).
		SetNillableCompletedAt(m.CompletedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create milestone: %w", err)
	}
	m.CreatedAt = created.CreatedAt
	return nil
}

func (r *milestoneRepo) ByObjective(ctx context.Context, objectiveID string) ([]*Milestone, error) {
	rows, err := r.client.Milestone.Query().
		Where(milestone.ObjectiveID(objectiveID)).
		Order(ent.Asc(milestone.FieldTargetDay)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query milestones: %w", err)
	}

	out := make([]*Milestone, len(rows))
	for i, e := range rows {
		out[i] = &Milestone{
			ID:          e.ID,
			ObjectiveID: e.ObjectiveID,
			Title:       e.Title,
			TargetDay:   e.TargetDay,
			Completed:   e.Completed,
			CompletedAt: e.CompletedAt,
			CreatedAt:   e.CreatedAt,
		}
	}
	return out, nil
}

func (r *milestoneRepo) MarkCompleted(ctx context.Context, id string, at time.Time) error {
	err := r.client.Milestone.UpdateOneID(id).
		SetCompleted(true).
		SetCompletedAt(at).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &NotFoundError{Entity: "milestone", ID: id}
		}
		return fmt.Errorf("complete milestone: %w", err)
	}
	return nil
}
