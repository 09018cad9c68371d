package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cadence/ent"
	"github.com/abhisek/cadence/ent/adaptationevent"
)

// adaptationRepo implements AdaptationRepo backed by ent and the global
// sequence counter.
type adaptationRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *adaptationRepo) Append(ctx context.Context, a *Adaptation) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	created, err := r.client.AdaptationEvent.Create().
		SetSequence(seqNum).
		SetObjectiveID(a.ObjectiveID).
		SetAdjustmentType(a.AdjustmentType).
		SetPreviousDifficulty(a.PreviousDifficulty).
		SetNewDifficulty(a.NewDifficulty).
		SetPreviousVelocity(a.PreviousVelocity).
		SetNewVelocity(a.NewVelocity).
		SetPreviousEstimatedDays(a.PreviousEstimatedDays).
		SetNewEstimatedDays(a.NewEstimatedDays).
		SetAverageScore(a.AverageScore).
		SetReason(a.Reason).
		SetSource(a.Source).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save adaptation event: %w", err)
	}

	a.ID = created.ID
	a.Sequence = created.Sequence
	a.Timestamp = created.Timestamp
	return nil
}

func (r *adaptationRepo) ByObjective(ctx context.Context, objectiveID string, limit int) ([]*Adaptation, error) {
	q := r.client.AdaptationEvent.Query().
		Where(adaptationevent.ObjectiveID(objectiveID)).
		Order(ent.Desc(adaptationevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query adaptation events: %w", err)
	}

	out := make([]*Adaptation, len(rows))
	for i, e := range rows {
		out[i] = &Adaptation{
			ID:                    e.ID,
			Sequence:              e.Sequence,
			Timestamp:             e.Timestamp,
			ObjectiveID:           e.ObjectiveID,
			AdjustmentType:        e.AdjustmentType,
			PreviousDifficulty:    e.PreviousDifficulty,
			NewDifficulty:         e.NewDifficulty,
			PreviousVelocity:      e.PreviousVelocity,
			NewVelocity:           e.NewVelocity,
			PreviousEstimatedDays: e.PreviousEstimatedDays,
			NewEstimatedDays:      e.NewEstimatedDays,
			AverageScore:          e.AverageScore,
			Reason:                e.Reason,
			Source:                e.Source,
		}
	}
	return out, nil
}
