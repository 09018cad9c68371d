package adapt

import (
	"context"
	"testing"

	"github.com/abhisek/cadence/internal/llm"
	"github.com/abhisek/cadence/internal/store"
	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedObjective(t *testing.T, s *store.Store, userID string) *store.Objective {
	t.Helper()
	obj := &store.Objective{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Title:              "Learn systems programming",
		Status:             "active",
		EstimatedTotalDays: 14,
		CurrentDifficulty:  50,
		LearningVelocity:   1.0,
	}
	if err := s.Objectives().Create(context.Background(), obj); err != nil {
		t.Fatalf("create objective: %v", err)
	}
	return obj
}

func newTestService(t *testing.T, s *store.Store, provider llm.Provider) *Service {
	t.Helper()
	return NewService(provider, DefaultConfig(), s.Objectives(), s.Sprints(), s.Adaptations(), nil)
}

func TestRecalibrate_FallbackAppliedAndRecorded(t *testing.T) {
	s := openTestStore(t)
	obj := seedObjective(t, s, "user-1")
	ctx := context.Background()

	// Provider fails, so the rule-based fallback decides.
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrClientTimeout{}})
	svc := newTestService(t, s, mock)

	analysis := &PerformanceAnalysis{
		ObjectiveID:      obj.ID,
		SprintsAnalyzed:  3,
		AverageScore:     0.93,
		Scores:           []float64{0.92, 0.93, 0.94},
		ConsistentlyHigh: true,
	}

	d, err := svc.Recalibrate(ctx, obj.ID, "user-1", analysis)
	if err != nil {
		t.Fatalf("recalibrate: %v", err)
	}
	if d.Source != "fallback" || d.AdjustmentType != AdjustIncrease {
		t.Fatalf("unexpected decision %+v", d)
	}

	got, err := s.Objectives().Get(ctx, obj.ID)
	if err != nil {
		t.Fatalf("get objective: %v", err)
	}
	if got.CurrentDifficulty != 70 {
		t.Errorf("difficulty = %d, want 70", got.CurrentDifficulty)
	}
	if got.LearningVelocity != 1.3 {
		t.Errorf("velocity = %v, want 1.3", got.LearningVelocity)
	}
	if got.RecalibrationCount != 1 {
		t.Errorf("recalibration count = %d, want 1", got.RecalibrationCount)
	}

	history, err := s.Adaptations().ByObjective(ctx, obj.ID, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history entries = %d, want 1", len(history))
	}
	if history[0].PreviousDifficulty != 50 || history[0].NewDifficulty != 70 {
		t.Errorf("history difficulty %d->%d, want 50->70",
			history[0].PreviousDifficulty, history[0].NewDifficulty)
	}
	if history[0].Source != "fallback" {
		t.Errorf("history source = %q", history[0].Source)
	}
}

func TestRecalibrate_MaintainLeavesObjectiveUntouched(t *testing.T) {
	s := openTestStore(t)
	obj := seedObjective(t, s, "user-1")
	ctx := context.Background()

	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProvider{}})
	svc := newTestService(t, s, mock)

	d, err := svc.Recalibrate(ctx, obj.ID, "user-1", &PerformanceAnalysis{
		ObjectiveID: obj.ID,
		Scores:      []float64{0.8, 0.78},
	})
	if err != nil {
		t.Fatalf("recalibrate: %v", err)
	}
	if d.ShouldAdjust {
		t.Fatal("expected maintain")
	}

	got, err := s.Objectives().Get(ctx, obj.ID)
	if err != nil {
		t.Fatalf("get objective: %v", err)
	}
	if got.RecalibrationCount != 0 {
		t.Error("maintain must not increment the recalibration count")
	}

	history, _ := s.Adaptations().ByObjective(ctx, obj.ID, 10)
	if len(history) != 0 {
		t.Error("maintain must not append history")
	}
}

func TestRecalibrate_RemoteDecisionClamped(t *testing.T) {
	s := openTestStore(t)
	obj := seedObjective(t, s, "user-1")
	ctx := context.Background()

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: []byte(`{
			"shouldAdjust": true,
			"adjustmentType": "increase",
			"newDifficulty": 100,
			"newVelocity": 2.0,
			"reasoning": "Strong run of sprints.",
			"recommendations": ["take on a stretch project"]
		}`),
	})
	svc := newTestService(t, s, mock)

	d, err := svc.Recalibrate(ctx, obj.ID, "user-1", &PerformanceAnalysis{
		ObjectiveID:      obj.ID,
		ConsistentlyHigh: true,
	})
	if err != nil {
		t.Fatalf("recalibrate: %v", err)
	}
	if d.Source != "remote" {
		t.Errorf("source = %q, want remote", d.Source)
	}

	got, _ := s.Objectives().Get(ctx, obj.ID)
	if got.CurrentDifficulty != 100 || got.LearningVelocity != 2.0 {
		t.Errorf("applied %d/%v, want 100/2.0", got.CurrentDifficulty, got.LearningVelocity)
	}
}

func seedSprint(t *testing.T, s *store.Store, objectiveID string, day int, status string) *store.Sprint {
	t.Helper()
	sp := &store.Sprint{
		ID:          uuid.NewString(),
		ObjectiveID: objectiveID,
		DayNumber:   day,
		LengthDays:  1,
		Difficulty:  "intermediate",
		Status:      status,
	}
	if err := s.Sprints().Create(context.Background(), sp); err != nil {
		t.Fatalf("create sprint: %v", err)
	}
	return sp
}

func TestAdjustNextSprintDifficulty_RelabelsPlannedSprint(t *testing.T) {
	s := openTestStore(t)
	obj := seedObjective(t, s, "user-1")
	ctx := context.Background()
	sp := seedSprint(t, s, obj.ID, 1, store.SprintPlanned)

	svc := newTestService(t, s, llm.NewMockProvider())
	if err := svc.AdjustNextSprintDifficulty(ctx, obj.ID, 80); err != nil {
		t.Fatalf("adjust: %v", err)
	}

	got, err := s.Sprints().Get(ctx, sp.ID)
	if err != nil {
		t.Fatalf("get sprint: %v", err)
	}
	if got.Difficulty != "advanced" {
		t.Errorf("difficulty label = %q, want advanced", got.Difficulty)
	}
	if got.AdaptiveMetadata["difficulty"] != float64(80) && got.AdaptiveMetadata["difficulty"] != 80 {
		t.Errorf("metadata difficulty = %v, want 80", got.AdaptiveMetadata["difficulty"])
	}
}

func TestAdjustNextSprintDifficulty_SkipsStartedSprint(t *testing.T) {
	s := openTestStore(t)
	obj := seedObjective(t, s, "user-1")
	ctx := context.Background()
	sp := seedSprint(t, s, obj.ID, 1, store.SprintInProgress)

	svc := newTestService(t, s, llm.NewMockProvider())
	if err := svc.AdjustNextSprintDifficulty(ctx, obj.ID, 80); err != nil {
		t.Fatalf("adjust: %v", err)
	}

	got, _ := s.Sprints().Get(ctx, sp.ID)
	if got.Difficulty != "intermediate" {
		t.Errorf("started sprint relabeled to %q", got.Difficulty)
	}
}

func TestAdjustEstimatedDays(t *testing.T) {
	s := openTestStore(t)
	obj := seedObjective(t, s, "user-1")
	ctx := context.Background()

	svc := newTestService(t, s, llm.NewMockProvider())
	if err := svc.AdjustEstimatedDays(ctx, obj.ID, 21); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	got, _ := s.Objectives().Get(ctx, obj.ID)
	if got.EstimatedTotalDays != 21 {
		t.Errorf("estimated days = %d, want 21", got.EstimatedTotalDays)
	}

	// The estimate never drops below a single day.
	if err := svc.AdjustEstimatedDays(ctx, obj.ID, -5); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	got, _ = s.Objectives().Get(ctx, obj.ID)
	if got.EstimatedTotalDays != 1 {
		t.Errorf("estimated days = %d, want floor of 1", got.EstimatedTotalDays)
	}
}

func TestRecalibrate_WrongOwnerRejected(t *testing.T) {
	s := openTestStore(t)
	obj := seedObjective(t, s, "user-1")

	svc := newTestService(t, s, llm.NewMockProvider())
	_, err := svc.Recalibrate(context.Background(), obj.ID, "someone-else", &PerformanceAnalysis{})
	if err == nil {
		t.Fatal("expected ownership rejection")
	}
}
