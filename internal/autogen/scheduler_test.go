package autogen

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/cadence/internal/plan"
	"github.com/abhisek/cadence/internal/store"
	"github.com/google/uuid"
)

// stubPlanner returns a fresh minimal plan per call and can be made to
// fail or block.
type stubPlanner struct {
	mu      sync.Mutex
	calls   int
	failErr error
	block   chan struct{}
}

func (p *stubPlanner) Plan(_ context.Context, in plan.Input) (*plan.Document, error) {
	p.mu.Lock()
	p.calls++
	n := p.calls
	block := p.block
	failErr := p.failErr
	p.mu.Unlock()

	if block != nil {
		<-block
	}
	if failErr != nil {
		return nil, failErr
	}

	return &plan.Document{
		ID:         fmt.Sprintf("plan-%d", n),
		Title:      "Daily sprint",
		LengthDays: 1,
		Difficulty: "intermediate",
	}, nil
}

func (p *stubPlanner) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedObjective(t *testing.T, s *store.Store) *store.Objective {
	t.Helper()
	obj := &store.Objective{
		ID:                 uuid.NewString(),
		UserID:             "user-1",
		Title:              "Ship a side project",
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

func TestGenerateNextSprint_MonotonicDayNumbers(t *testing.T) {
	s := openTestStore(t)
	obj := seedObjective(t, s)
	sched := NewScheduler(&stubPlanner{}, s.Objectives(), s.Sprints())
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		sp, err := sched.GenerateNextSprint(ctx, obj.ID, "user-1")
		if err != nil {
			t.Fatalf("generate %d: %v", want, err)
		}
		if sp.DayNumber != want {
			t.Errorf("day = %d, want %d", sp.DayNumber, want)
		}
		if sp.Status != store.SprintPlanned {
			t.Errorf("status = %s, want planned", sp.Status)
		}
	}

	all, err := s.Sprints().ByObjective(ctx, obj.ID)
	if err != nil {
		t.Fatalf("list sprints: %v", err)
	}
	seen := make(map[int]bool)
	for _, sp := range all {
		if seen[sp.DayNumber] {
			t.Fatalf("duplicate day number %d", sp.DayNumber)
		}
		seen[sp.DayNumber] = true
	}
}

func TestGenerateNextSprint_InFlightIsNoOp(t *testing.T) {
	s := openTestStore(t)
	obj := seedObjective(t, s)

	planner := &stubPlanner{block: make(chan struct{})}
	sched := NewScheduler(planner, s.Objectives(), s.Sprints())
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := sched.GenerateNextSprint(ctx, obj.ID, "user-1")
		done <- err
	}()

	// Wait until the first generation holds the lock.
	deadline := time.Now().Add(5 * time.Second)
	for planner.callCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if planner.callCount() == 0 {
		t.Fatal("first generation never started")
	}

	_, err := sched.GenerateNextSprint(ctx, obj.ID, "user-1")
	if !errors.Is(err, ErrGenerationInFlight) {
		t.Fatalf("expected ErrGenerationInFlight, got %v", err)
	}

	status, err := sched.GetGenerationStatus(ctx, obj.ID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !status.IsGenerating {
		t.Error("expected IsGenerating while the lock is held")
	}

	close(planner.block)
	if err := <-done; err != nil {
		t.Fatalf("first generation: %v", err)
	}
}

func TestGenerateNextSprint_WrongOwner(t *testing.T) {
	s := openTestStore(t)
	obj := seedObjective(t, s)
	sched := NewScheduler(&stubPlanner{}, s.Objectives(), s.Sprints())

	_, err := sched.GenerateNextSprint(context.Background(), obj.ID, "intruder")
	if err == nil {
		t.Fatal("expected ownership rejection")
	}
}

func TestMaintainBuffer_TopsUpToTarget(t *testing.T) {
	s := openTestStore(t)
	obj := seedObjective(t, s)
	sched := NewScheduler(&stubPlanner{}, s.Objectives(), s.Sprints())
	ctx := context.Background()

	if err := sched.MaintainBuffer(ctx, obj.ID, "user-1"); err != nil {
		t.Fatalf("maintain: %v", err)
	}

	status, err := sched.GetGenerationStatus(ctx, obj.ID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.BufferDays < DefaultBufferTarget {
		t.Errorf("buffer = %d, want >= %d", status.BufferDays, DefaultBufferTarget)
	}
	if !status.NextSprintReady {
		t.Error("expected a ready next sprint after top-up")
	}

	// A second maintenance run generates nothing new.
	before, _ := s.Sprints().LastDayNumber(ctx, obj.ID)
	if err := sched.MaintainBuffer(ctx, obj.ID, "user-1"); err != nil {
		t.Fatalf("second maintain: %v", err)
	}
	after, _ := s.Sprints().LastDayNumber(ctx, obj.ID)
	if after != before {
		t.Errorf("second maintain generated days %d -> %d", before, after)
	}
}

func TestShouldGenerateNext(t *testing.T) {
	s := openTestStore(t)
	obj := seedObjective(t, s)
	sched := NewScheduler(&stubPlanner{}, s.Objectives(), s.Sprints())
	ctx := context.Background()

	first, err := sched.GenerateNextSprint(ctx, obj.ID, "user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	should, err := sched.ShouldGenerateNext(ctx, obj.ID, first.ID)
	if err != nil {
		t.Fatalf("should: %v", err)
	}
	if !should {
		t.Error("no sprint beyond the current one; expected true")
	}

	if _, err := sched.GenerateNextSprint(ctx, obj.ID, "user-1"); err != nil {
		t.Fatalf("generate second: %v", err)
	}
	should, err = sched.ShouldGenerateNext(ctx, obj.ID, first.ID)
	if err != nil {
		t.Fatalf("should: %v", err)
	}
	if should {
		t.Error("a later sprint exists; expected false")
	}
}

func TestShouldGenerateNext_CompletedObjective(t *testing.T) {
	s := openTestStore(t)
	obj := seedObjective(t, s)
	sched := NewScheduler(&stubPlanner{}, s.Objectives(), s.Sprints())
	ctx := context.Background()

	sp, err := sched.GenerateNextSprint(ctx, obj.ID, "user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	obj.Status = "completed"
	if err := s.Objectives().Update(ctx, obj); err != nil {
		t.Fatalf("update objective: %v", err)
	}

	should, err := sched.ShouldGenerateNext(ctx, obj.ID, sp.ID)
	if err != nil {
		t.Fatalf("should: %v", err)
	}
	if should {
		t.Error("completed objectives never generate")
	}
}

func TestGenerateSprintBatch(t *testing.T) {
	s := openTestStore(t)
	obj := seedObjective(t, s)
	sched := NewScheduler(&stubPlanner{}, s.Objectives(), s.Sprints())

	created, err := sched.GenerateSprintBatch(context.Background(), obj.ID, "user-1", 3)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("created = %d, want 3", len(created))
	}
	for i, sp := range created {
		if sp.DayNumber != i+1 {
			t.Errorf("sprint %d day = %d, want %d", i, sp.DayNumber, i+1)
		}
	}
}

func TestGenerateSprintBatch_StopsAtFirstFailure(t *testing.T) {
	s := openTestStore(t)
	obj := seedObjective(t, s)

	planner := &stubPlanner{failErr: errors.New("provider down")}
	sched := NewScheduler(planner, s.Objectives(), s.Sprints())

	created, err := sched.GenerateSprintBatch(context.Background(), obj.ID, "user-1", 3)
	if err == nil {
		t.Fatal("expected failure to propagate")
	}
	if len(created) != 0 {
		t.Errorf("created = %d, want 0", len(created))
	}
}
