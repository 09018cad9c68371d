package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cadence/ent"
	"github.com/abhisek/cadence/ent/objective"
)

// objectiveRepo implements ObjectiveRepo using the ent client.
type objectiveRepo struct {
	client *ent.Client
}

func (r *objectiveRepo) Create(ctx context.Context, o *Objective) error {
	created, err := r.client.Objective.Create().
		SetID(o.ID).
		SetUserID(o.UserID).
		SetTitle(o.Title).
		SetDescription(o.Description).
		SetSuccessCriteria(o.SuccessCriteria).
		SetRequiredSkills(o.RequiredSkills).
		SetPriority(o.Priority).
		SetStatus(objective.Status(o.Status)).
		SetEstimatedTotalDays(o.EstimatedTotalDays).
		SetCompletedDays(o.CompletedDays).
		SetCurrentDifficulty(o.CurrentDifficulty).
		SetLearningVelocity(o.LearningVelocity).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create objective: %w", err)
	}
	o.CreatedAt = created.CreatedAt
	o.UpdatedAt = created.UpdatedAt
	return nil
}

func (r *objectiveRepo) Get(ctx context.Context, id string) (*Objective, error) {
	e, err := r.client.Objective.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &NotFoundError{Entity: "objective", ID: id}
		}
		return nil, fmt.Errorf("get objective: %w", err)
	}
	return entObjective(e), nil
}

func (r *objectiveRepo) Update(ctx context.Context, o *Objective) error {
	builder := r.client.Objective.UpdateOneID(o.ID).
		SetTitle(o.Title).
		SetDescription(o.Description).
		SetSuccessCriteria(o.SuccessCriteria).
		SetRequiredSkills(o.RequiredSkills).
		SetPriority(o.Priority).
		SetStatus(objective.Status(o.Status)).
		SetEstimatedTotalDays(o.EstimatedTotalDays).
		SetCompletedDays(o.CompletedDays).
		SetCurrentDifficulty(o.CurrentDifficulty).
		SetLearningVelocity(o.LearningVelocity).
		SetRecalibrationCount(o.RecalibrationCount).
		SetCurrentStreak(o.CurrentStreak).
		SetLongestStreak(o.LongestStreak).
		SetNillableLastCompletedAt(o.LastCompletedAt)

	e, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &NotFoundError{Entity: "objective", ID: o.ID}
		}
		return fmt.Errorf("update objective: %w", err)
	}
	o.UpdatedAt = e.UpdatedAt
	return nil
}

// entObjective converts an ent row to a store Objective.
func entObjective(e *ent.Objective) *Objective {
	return &Objective{
		ID:                 e.ID,
		UserID:             e.UserID,
		Title:              e.Title,
		Description:        e.Description,
		SuccessCriteria:    e.SuccessCriteria,
		RequiredSkills:     e.RequiredSkills,
		Priority:           e.Priority,
		Status:             string(e.Status),
		EstimatedTotalDays: e.EstimatedTotalDays,
		CompletedDays:      e.CompletedDays,
		CurrentDifficulty:  e.CurrentDifficulty,
		LearningVelocity:   e.LearningVelocity,
		RecalibrationCount: e.RecalibrationCount,
		CurrentStreak:      e.CurrentStreak,
		LongestStreak:      e.LongestStreak,
		LastCompletedAt:    e.LastCompletedAt,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}
