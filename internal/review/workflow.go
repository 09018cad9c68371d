package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/cadence/internal/events"
	"github.com/abhisek/cadence/internal/plan"
	"github.com/abhisek/cadence/internal/store"
)

// Workflow runs a full sprint review: load the stored plan and evidence,
// score each project, and persist the result on the sprint.
type Workflow struct {
	svc       *Service
	sprints   store.SprintRepo
	artifacts store.ArtifactRepo
	emitter   events.Emitter
	now       func() time.Time
}

// NewWorkflow wires a review workflow.
func NewWorkflow(svc *Service, sprints store.SprintRepo, artifacts store.ArtifactRepo, emitter events.Emitter) *Workflow {
	return &Workflow{
		svc:       svc,
		sprints:   sprints,
		artifacts: artifacts,
		emitter:   emitter,
		now:       time.Now,
	}
}

// ReviewSprint reviews a submitted sprint and moves it to reviewed.
// A reviewed sprint is never re-reviewed.
func (w *Workflow) ReviewSprint(ctx context.Context, sprintID string) (*Aggregate, error) {
	sprint, err := w.sprints.Get(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	switch sprint.Status {
	case store.SprintSubmitted:
		// eligible
	case store.SprintReviewed:
		return nil, fmt.Errorf("sprint %s is already reviewed", sprintID)
	default:
		return nil, fmt.Errorf("sprint %s has no submitted evidence to review (status %s)", sprintID, sprint.Status)
	}

	doc, err := plan.FromMap(sprint.PlannerOutput)
	if err != nil {
		return nil, fmt.Errorf("load sprint plan: %w", err)
	}

	stored, err := w.artifacts.BySprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	sub := Submission{
		Projects:           doc.Projects,
		ArtifactsByProject: groupEvidence(stored),
	}
	if sprint.SelfEvaluationConfidence != nil || sprint.SelfEvaluationReflection != "" {
		sub.SelfEvaluation = &SelfEvaluation{
			Confidence: sprint.SelfEvaluationConfidence,
			Reflection: sprint.SelfEvaluationReflection,
		}
	}

	agg, err := w.svc.Review(ctx, sub)
	if err != nil {
		return nil, err
	}

	score := agg.Score
	sprint.Status = store.SprintReviewed
	sprint.Score = &score
	sprint.ReviewerSummary = summarize(agg)
	if sprint.CompletedAt == nil {
		now := w.now()
		sprint.CompletedAt = &now
	}
	if err := w.sprints.Update(ctx, sprint); err != nil {
		return nil, fmt.Errorf("persist review: %w", err)
	}

	w.emitter.Emit(ctx, "sprint_reviewed", map[string]any{
		"sprintId":    sprint.ID,
		"objectiveId": sprint.ObjectiveID,
		"score":       agg.Score,
		"pass":        agg.Pass,
		"source":      agg.Source,
	})

	return agg, nil
}

// groupEvidence converts stored artifact rows to review evidence keyed
// by project ID.
func groupEvidence(stored []*store.Artifact) map[string][]ArtifactEvidence {
	byProject := make(map[string][]ArtifactEvidence, len(stored))
	for _, a := range stored {
		byProject[a.ProjectID] = append(byProject[a.ProjectID], ArtifactEvidence{
			ArtifactID: a.ArtifactID,
			Type:       a.Type,
			Title:      a.Title,
			URL:        a.URL,
			Status:     a.Status,
			Notes:      a.Notes,
		})
	}
	return byProject
}

// summarize renders the aggregate into a short stored summary line.
func summarize(agg *Aggregate) string {
	verdict := "pass"
	if !agg.Pass {
		verdict = "needs work"
	}
	parts := []string{fmt.Sprintf("%.0f%% (%s, %s)", agg.Score*100, verdict, agg.Source)}
	if len(agg.Achieved) > 0 {
		parts = append(parts, "achieved: "+strings.Join(agg.Achieved, ", "))
	}
	if len(agg.Missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(agg.Missing, ", "))
	}
	return strings.Join(parts, " | ")
}
