package skills

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/cadence/internal/store"
	"github.com/google/uuid"
)

func setup(t *testing.T) (*store.Store, *store.Objective, *Tracker) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	obj := &store.Objective{
		ID:                 uuid.NewString(),
		UserID:             "user-1",
		Title:              "Master container orchestration",
		RequiredSkills:     []string{"docker", "kubernetes"},
		Status:             "active",
		EstimatedTotalDays: 14,
		CurrentDifficulty:  50,
		LearningVelocity:   1.0,
	}
	if err := s.Objectives().Create(context.Background(), obj); err != nil {
		t.Fatalf("create objective: %v", err)
	}
	return s, obj, NewTracker(s.Objectives(), s.Sprints())
}

func addReviewed(t *testing.T, s *store.Store, objectiveID string, day int, score float64) {
	t.Helper()
	now := time.Now().UTC()
	sp := &store.Sprint{
		ID:          uuid.NewString(),
		ObjectiveID: objectiveID,
		DayNumber:   day,
		LengthDays:  1,
		Difficulty:  "intermediate",
		Status:      store.SprintReviewed,
		Score:       &score,
		CompletedAt: &now,
	}
	if err := s.Sprints().Create(context.Background(), sp); err != nil {
		t.Fatalf("create sprint: %v", err)
	}
}

func TestSkillMap_MasteredAfterHighScores(t *testing.T) {
	s, obj, tracker := setup(t)
	addReviewed(t, s, obj.ID, 1, 0.95)
	addReviewed(t, s, obj.ID, 2, 0.92)

	m, err := tracker.GetUserSkillMap("user-1", obj.ID)
	if err != nil {
		t.Fatalf("skill map: %v", err)
	}
	if len(m.MasteredSkills) != 2 {
		t.Errorf("mastered = %v, want both required skills", m.MasteredSkills)
	}
	if len(m.StrugglingAreas) != 0 {
		t.Errorf("struggling = %v, want none", m.StrugglingAreas)
	}
}

func TestSkillMap_StrugglingAfterLowScores(t *testing.T) {
	s, obj, tracker := setup(t)
	addReviewed(t, s, obj.ID, 1, 0.5)
	addReviewed(t, s, obj.ID, 2, 0.6)

	m, err := tracker.GetUserSkillMap("user-1", obj.ID)
	if err != nil {
		t.Fatalf("skill map: %v", err)
	}
	if len(m.StrugglingAreas) != 2 {
		t.Errorf("struggling = %v, want both required skills", m.StrugglingAreas)
	}
}

func TestSkillMap_SparseHistoryIsEmpty(t *testing.T) {
	s, obj, tracker := setup(t)
	addReviewed(t, s, obj.ID, 1, 0.95)

	m, err := tracker.GetUserSkillMap("user-1", obj.ID)
	if err != nil {
		t.Fatalf("skill map: %v", err)
	}
	if len(m.MasteredSkills) != 0 || len(m.StrugglingAreas) != 0 {
		t.Errorf("one sprint is not enough evidence: %+v", m)
	}
}

func TestSkillMap_WrongOwner(t *testing.T) {
	_, obj, tracker := setup(t)
	if _, err := tracker.GetUserSkillMap("intruder", obj.ID); err == nil {
		t.Fatal("expected ownership rejection")
	}
}
