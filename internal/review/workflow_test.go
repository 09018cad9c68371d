package review

import (
	"context"
	"testing"

	"github.com/abhisek/cadence/internal/events"
	"github.com/abhisek/cadence/internal/llm"
	"github.com/abhisek/cadence/internal/plan"
	"github.com/abhisek/cadence/internal/store"
	"github.com/google/uuid"
)

func submittedSprint(t *testing.T, s *store.Store) *store.Sprint {
	t.Helper()
	ctx := context.Background()

	obj := &store.Objective{
		ID:                 uuid.NewString(),
		UserID:             "user-1",
		Title:              "Ship something real",
		Status:             "active",
		EstimatedTotalDays: 7,
		CurrentDifficulty:  50,
		LearningVelocity:   1.0,
	}
	if err := s.Objectives().Create(ctx, obj); err != nil {
		t.Fatalf("create objective: %v", err)
	}

	doc := &plan.Document{
		ID:         "plan-1",
		LengthDays: 1,
		Difficulty: "intermediate",
		Projects:   []plan.Project{testProject()},
	}
	out, err := doc.ToMap()
	if err != nil {
		t.Fatalf("plan to map: %v", err)
	}

	sp := &store.Sprint{
		ID:            uuid.NewString(),
		ObjectiveID:   obj.ID,
		DayNumber:     1,
		LengthDays:    1,
		Difficulty:    "intermediate",
		Status:        store.SprintSubmitted,
		PlannerOutput: out,
	}
	if err := s.Sprints().Create(ctx, sp); err != nil {
		t.Fatalf("create sprint: %v", err)
	}
	return sp
}

func TestWorkflow_ReviewSprintFallback(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	sp := submittedSprint(t, s)
	if err := s.Artifacts().Upsert(ctx, &store.Artifact{
		ID:         uuid.NewString(),
		SprintID:   sp.ID,
		ArtifactID: "art-repo",
		ProjectID:  "proj-1",
		Type:       "repository",
		Status:     "ok",
	}); err != nil {
		t.Fatalf("upsert artifact: %v", err)
	}

	recorder := &events.Recorder{}
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProvider{}})
	wf := NewWorkflow(NewService(mock, DefaultConfig()), s.Sprints(), s.Artifacts(), recorder)

	agg, err := wf.ReviewSprint(ctx, sp.ID)
	if err != nil {
		t.Fatalf("review sprint: %v", err)
	}
	if agg.Source != SourceFallback {
		t.Errorf("source = %s, want fallback", agg.Source)
	}

	got, err := s.Sprints().Get(ctx, sp.ID)
	if err != nil {
		t.Fatalf("get sprint: %v", err)
	}
	if got.Status != store.SprintReviewed {
		t.Errorf("status = %s, want reviewed", got.Status)
	}
	if got.Score == nil || *got.Score != agg.Score {
		t.Error("score not persisted")
	}
	if got.ReviewerSummary == "" {
		t.Error("expected a reviewer summary")
	}
	if !recorder.Has("sprint_reviewed") {
		t.Error("expected sprint_reviewed event")
	}

	// Reviewed sprints are never re-reviewed.
	if _, err := wf.ReviewSprint(ctx, sp.ID); err == nil {
		t.Fatal("expected error reviewing twice")
	}
}

func TestWorkflow_PlannedSprintRejected(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	sp := submittedSprint(t, s)
	sp.Status = store.SprintPlanned
	if err := s.Sprints().Update(ctx, sp); err != nil {
		t.Fatalf("update: %v", err)
	}

	wf := NewWorkflow(NewService(llm.NewMockProvider(), DefaultConfig()), s.Sprints(), s.Artifacts(), events.NopEmitter{})
	if _, err := wf.ReviewSprint(ctx, sp.ID); err == nil {
		t.Fatal("expected rejection for a sprint without submitted evidence")
	}
}
