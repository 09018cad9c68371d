package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cadence/ent"
	"github.com/abhisek/cadence/ent/sprintartifact"
)

// artifactRepo implements ArtifactRepo using the ent client.
type artifactRepo struct {
	client *ent.Client
}

func (r *artifactRepo) Upsert(ctx context.Context, a *Artifact) error {
	existing, err := r.client.SprintArtifact.Query().
		Where(
			sprintartifact.SprintID(a.SprintID),
			sprintartifact.ArtifactID(a.ArtifactID),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query artifact: %w", err)
	}

	if existing != nil {
		e, err := r.client.SprintArtifact.UpdateOneID(existing.ID).
			SetProjectID(a.ProjectID).
			SetType(sprintartifact.Type(a.Type)).
			SetTitle(a.Title).
			SetURL(a.URL).
			SetStatus(sprintartifact.Status(a.Status)).
			SetNotes(a.Notes).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update artifact: %w", err)
		}
		a.ID = e.ID
		a.CreatedAt = e.CreatedAt
		a.UpdatedAt = e.UpdatedAt
		return nil
	}

	created, err := r.client.SprintArtifact.Create().
		SetID(a.ID).
		SetSprintID(a.SprintID).
		SetArtifactID(a.ArtifactID).
		SetProjectID(a.ProjectID).
		SetType(sprintartifact.Type(a.Type)).
		SetTitle(a.Title).
		SetURL(a.URL).
		SetStatus(sprintartifact.Status(a.Status)).
		SetNotes(a.Notes).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	a.CreatedAt = created.CreatedAt
	a.UpdatedAt = created.UpdatedAt
	return nil
}

func (r *artifactRepo) BySprint(ctx context.Context, sprintID string) ([]*Artifact, error) {
	rows, err := r.client.SprintArtifact.Query().
		Where(sprintartifact.SprintID(sprintID)).
		Order(ent.Asc(sprintartifact.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query artifacts: %w", err)
	}

	out := make([]*Artifact, len(rows))
	for i, e := range rows {
		out[i] = &Artifact{
			ID:         e.ID,
			SprintID:   e.SprintID,
			ArtifactID: e.ArtifactID,
			ProjectID:  e.ProjectID,
			Type:       string(e.Type),
			Title:      e.Title,
			URL:        e.URL,
			Status:     string(e.Status),
			Notes:      e.Notes,
			CreatedAt:  e.CreatedAt,
			UpdatedAt:  e.UpdatedAt,
		}
	}
	return out, nil
}
