package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newObjective(userID string) *Objective {
	return &Objective{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Title:              "Learn distributed systems",
		Description:        "Raft, then a toy KV store.",
		SuccessCriteria:    []string{"a working replicated log"},
		RequiredSkills:     []string{"go", "networking"},
		Priority:           "high",
		Status:             "active",
		EstimatedTotalDays: 14,
		CurrentDifficulty:  50,
		LearningVelocity:   1.0,
	}
}

func newSprint(objectiveID string, day int) *Sprint {
	return &Sprint{
		ID:          uuid.NewString(),
		ObjectiveID: objectiveID,
		DayNumber:   day,
		LengthDays:  1,
		Difficulty:  "intermediate",
		Status:      SprintPlanned,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Errorf("seq %d not greater than previous %d", seq, prev)
		}
		prev = seq
	}
}

func TestObjectiveRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	obj := newObjective("user-1")
	if err := s.Objectives().Create(ctx, obj); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.Objectives().Get(ctx, obj.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != obj.Title || got.UserID != "user-1" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.SuccessCriteria) != 1 || got.SuccessCriteria[0] != "a working replicated log" {
		t.Errorf("success criteria = %v", got.SuccessCriteria)
	}
	if got.LearningVelocity != 1.0 {
		t.Errorf("velocity = %v", got.LearningVelocity)
	}

	got.CompletedDays = 3
	got.CurrentStreak = 3
	now := time.Now().UTC()
	got.LastCompletedAt = &now
	if err := s.Objectives().Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}

	again, err := s.Objectives().Get(ctx, obj.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if again.CompletedDays != 3 || again.CurrentStreak != 3 {
		t.Errorf("update not persisted: %+v", again)
	}
	if again.LastCompletedAt == nil {
		t.Error("last completed at not persisted")
	}
}

func TestObjectiveNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Objectives().Get(context.Background(), "missing")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestSprintUniqueDayNumber(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	obj := newObjective("user-1")
	if err := s.Objectives().Create(ctx, obj); err != nil {
		t.Fatalf("create objective: %v", err)
	}

	if err := s.Sprints().Create(ctx, newSprint(obj.ID, 1)); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if err := s.Sprints().Create(ctx, newSprint(obj.ID, 1)); err == nil {
		t.Fatal("expected unique constraint violation for duplicate day")
	}
}

func TestSprintCurrentAndLastDay(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	obj := newObjective("user-1")
	if err := s.Objectives().Create(ctx, obj); err != nil {
		t.Fatalf("create objective: %v", err)
	}

	var first *Sprint
	for day := 1; day <= 3; day++ {
		sp := newSprint(obj.ID, day)
		if err := s.Sprints().Create(ctx, sp); err != nil {
			t.Fatalf("create day %d: %v", day, err)
		}
		if day == 1 {
			first = sp
		}
	}

	last, err := s.Sprints().LastDayNumber(ctx, obj.ID)
	if err != nil {
		t.Fatalf("last day: %v", err)
	}
	if last != 3 {
		t.Errorf("last day = %d, want 3", last)
	}

	current, err := s.Sprints().Current(ctx, obj.ID)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current == nil || current.DayNumber != 1 {
		t.Fatalf("current = %+v, want day 1", current)
	}

	// Finish day 1; day 2 becomes current.
	now := time.Now().UTC()
	first.Status = SprintSubmitted
	first.CompletedAt = &now
	if err := s.Sprints().Update(ctx, first); err != nil {
		t.Fatalf("update: %v", err)
	}

	current, err = s.Sprints().Current(ctx, obj.ID)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current == nil || current.DayNumber != 2 {
		t.Fatalf("current = %+v, want day 2", current)
	}
}

func TestSprintRecentReviewed(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	obj := newObjective("user-1")
	if err := s.Objectives().Create(ctx, obj); err != nil {
		t.Fatalf("create objective: %v", err)
	}

	now := time.Now().UTC()
	for day := 1; day <= 4; day++ {
		sp := newSprint(obj.ID, day)
		sp.Status = SprintReviewed
		score := 0.6 + float64(day)*0.05
		sp.Score = &score
		sp.CompletedAt = &now
		if err := s.Sprints().Create(ctx, sp); err != nil {
			t.Fatalf("create day %d: %v", day, err)
		}
	}
	// A planned sprint with no score must be excluded.
	if err := s.Sprints().Create(ctx, newSprint(obj.ID, 5)); err != nil {
		t.Fatalf("create planned: %v", err)
	}

	recent, err := s.Sprints().RecentReviewed(ctx, obj.ID, 3)
	if err != nil {
		t.Fatalf("recent reviewed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("recent = %d, want 3", len(recent))
	}
	// Most recent day first.
	for i, want := range []int{4, 3, 2} {
		if recent[i].DayNumber != want {
			t.Errorf("recent[%d].day = %d, want %d", i, recent[i].DayNumber, want)
		}
	}
}

func TestSprintPlanRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	obj := newObjective("user-1")
	if err := s.Objectives().Create(ctx, obj); err != nil {
		t.Fatalf("create objective: %v", err)
	}

	sp := newSprint(obj.ID, 1)
	sp.PlannerOutput = map[string]any{
		"id":         "plan-1",
		"lengthDays": float64(1),
		"projects":   []any{map[string]any{"id": "proj-1"}},
	}
	if err := s.Sprints().Create(ctx, sp); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.Sprints().Get(ctx, sp.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PlannerOutput["id"] != "plan-1" {
		t.Errorf("planner output = %v", got.PlannerOutput)
	}
}

func TestArtifactUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	obj := newObjective("user-1")
	if err := s.Objectives().Create(ctx, obj); err != nil {
		t.Fatalf("create objective: %v", err)
	}
	sp := newSprint(obj.ID, 1)
	if err := s.Sprints().Create(ctx, sp); err != nil {
		t.Fatalf("create sprint: %v", err)
	}

	a := &Artifact{
		ID:         uuid.NewString(),
		SprintID:   sp.ID,
		ArtifactID: "art-repo",
		ProjectID:  "proj-1",
		Type:       "repository",
		Status:     "unknown",
		URL:        "https://example.com/repo",
	}
	if err := s.Artifacts().Upsert(ctx, a); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Second upsert with the same (sprint, artifact) key updates in place.
	a2 := *a
	a2.ID = uuid.NewString()
	a2.Status = "ok"
	if err := s.Artifacts().Upsert(ctx, &a2); err != nil {
		t.Fatalf("upsert update: %v", err)
	}

	all, err := s.Artifacts().BySprint(ctx, sp.ID)
	if err != nil {
		t.Fatalf("by sprint: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("artifacts = %d, want 1 after upsert", len(all))
	}
	if all[0].Status != "ok" {
		t.Errorf("status = %q, want ok", all[0].Status)
	}
}

func TestMilestoneMarkCompleted(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	obj := newObjective("user-1")
	if err := s.Objectives().Create(ctx, obj); err != nil {
		t.Fatalf("create objective: %v", err)
	}

	m := &Milestone{
		ID:          uuid.NewString(),
		ObjectiveID: obj.ID,
		Title:       "First deploy",
		TargetDay:   3,
	}
	if err := s.Milestones().Create(ctx, m); err != nil {
		t.Fatalf("create: %v", err)
	}

	at := time.Now().UTC()
	if err := s.Milestones().MarkCompleted(ctx, m.ID, at); err != nil {
		t.Fatalf("mark completed: %v", err)
	}

	all, err := s.Milestones().ByObjective(ctx, obj.ID)
	if err != nil {
		t.Fatalf("by objective: %v", err)
	}
	if len(all) != 1 || !all[0].Completed || all[0].CompletedAt == nil {
		t.Errorf("milestone not flipped: %+v", all[0])
	}
}

func TestLLMEventsAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "test-model",
			Purpose:      "sprint-plan",
			PromptHash:   "abc123",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    200,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "other-model",
		Purpose:      "sprint-plan",
		InputTokens:  10,
		OutputTokens: 5,
		LatencyMs:    100,
		Success:      true,
	}); err != nil {
		t.Fatalf("append other model: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Error("expected newest first")
	}

	usage, err := repo.LLMUsageBreakdown(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	// One row per purpose/model pairing.
	var testModel, otherModel *LLMUsage
	for _, u := range usage {
		if u.Purpose != "sprint-plan" {
			continue
		}
		switch u.Model {
		case "test-model":
			testModel = u
		case "other-model":
			otherModel = u
		}
	}
	if testModel == nil || otherModel == nil {
		t.Fatalf("missing usage rows: %+v", usage)
	}
	if testModel.Calls != 3 || testModel.InputTokens != 300 || testModel.OutputTokens != 150 {
		t.Errorf("test-model usage = %+v", testModel)
	}
	if testModel.AvgLatencyMs != 200 {
		t.Errorf("avg latency = %d, want 200", testModel.AvgLatencyMs)
	}
	if otherModel.Calls != 1 || otherModel.InputTokens != 10 {
		t.Errorf("other-model usage = %+v", otherModel)
	}
}

func TestDomainEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendDomainEvent(ctx, "sprint_completed", map[string]any{"dayNumber": 1})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM domain_events").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count < 1 {
		t.Error("expected a persisted domain event")
	}
}
