package completion

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/cadence/internal/events"
	"github.com/abhisek/cadence/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// stubGenerator satisfies Generator with scripted behavior.
type stubGenerator struct {
	should      bool
	generateErr error
	bufferErr   error
	generated   int
	buffered    int
}

func (g *stubGenerator) ShouldGenerateNext(context.Context, string, string) (bool, error) {
	return g.should, nil
}

func (g *stubGenerator) GenerateNextSprint(context.Context, string, string) (*store.Sprint, error) {
	if g.generateErr != nil {
		return nil, g.generateErr
	}
	g.generated++
	return &store.Sprint{ID: uuid.NewString()}, nil
}

func (g *stubGenerator) MaintainBuffer(context.Context, string, string) error {
	g.buffered++
	return g.bufferErr
}

type fixture struct {
	store    *store.Store
	recorder *events.Recorder
	gen      *stubGenerator
	svc      *Service
	obj      *store.Objective
	clock    time.Time
}

func newFixture(t *testing.T, estimatedDays int) *fixture {
	t.Helper()

	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	obj := &store.Objective{
		ID:                 uuid.NewString(),
		UserID:             "user-1",
		Title:              "Build a portfolio app",
		Status:             "active",
		EstimatedTotalDays: estimatedDays,
		CurrentDifficulty:  50,
		LearningVelocity:   1.0,
	}
	require.NoError(t, s.Objectives().Create(context.Background(), obj))

	f := &fixture{
		store:    s,
		recorder: &events.Recorder{},
		gen:      &stubGenerator{should: true},
		obj:      obj,
		clock:    time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(s.Sprints(), s.Objectives(), s.Milestones(), f.recorder, f.gen).
		WithClock(func() time.Time { return f.clock })
	return f
}

func (f *fixture) addSprint(t *testing.T, day int) *store.Sprint {
	t.Helper()
	sp := &store.Sprint{
		ID:          uuid.NewString(),
		ObjectiveID: f.obj.ID,
		DayNumber:   day,
		LengthDays:  1,
		Difficulty:  "intermediate",
		Status:      store.SprintPlanned,
	}
	require.NoError(t, f.store.Sprints().Create(context.Background(), sp))
	return sp
}

func validData() CompletionData {
	return CompletionData{
		TasksCompleted:    3,
		TotalTasks:        3,
		HoursSpent:        2,
		EvidenceSubmitted: true,
	}
}

func TestComplete_HappyPath(t *testing.T) {
	f := newFixture(t, 14)
	sp := f.addSprint(t, 1)
	ctx := context.Background()

	result, err := f.svc.Complete(ctx, sp.ID, "user-1", validData())
	require.NoError(t, err)

	require.True(t, result.SprintCompleted)
	require.Equal(t, 1.0, result.CompletionRate)
	require.Equal(t, 1, result.CurrentStreak)
	require.True(t, result.NextSprintGenerated)
	require.Empty(t, result.Warnings)

	got, err := f.store.Sprints().Get(ctx, sp.ID)
	require.NoError(t, err)
	require.Equal(t, store.SprintSubmitted, got.Status)
	require.NotNil(t, got.CompletedAt)

	obj, err := f.store.Objectives().Get(ctx, f.obj.ID)
	require.NoError(t, err)
	require.Equal(t, 1, obj.CompletedDays)

	require.True(t, f.recorder.Has("sprint_completed"))
	require.Equal(t, 1, f.gen.buffered)
}

func TestComplete_BelowHalfRejected(t *testing.T) {
	f := newFixture(t, 14)
	sp := f.addSprint(t, 1)

	data := validData()
	data.TasksCompleted = 4
	data.TotalTasks = 10

	_, err := f.svc.Complete(context.Background(), sp.ID, "user-1", data)
	require.Error(t, err)
	require.Equal(t, CodeValidationFailed, ErrorCode(err))

	var verr *ErrValidation
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Missing)

	// Rejection makes no state changes.
	got, err := f.store.Sprints().Get(context.Background(), sp.ID)
	require.NoError(t, err)
	require.Nil(t, got.CompletedAt)
	require.False(t, f.recorder.Has("sprint_completed"))
}

func TestComplete_MissingEvidenceIsWarningOnly(t *testing.T) {
	f := newFixture(t, 14)
	sp := f.addSprint(t, 1)

	data := validData()
	data.EvidenceSubmitted = false
	data.TasksCompleted = 5
	data.TotalTasks = 10 // exactly 50% passes

	result, err := f.svc.Complete(context.Background(), sp.ID, "user-1", data)
	require.NoError(t, err)
	require.True(t, result.SprintCompleted)
	require.Len(t, result.Warnings, 1)
}

func TestComplete_TwiceFailsIdempotently(t *testing.T) {
	f := newFixture(t, 14)
	sp := f.addSprint(t, 1)
	ctx := context.Background()

	_, err := f.svc.Complete(ctx, sp.ID, "user-1", validData())
	require.NoError(t, err)

	obj, err := f.store.Objectives().Get(ctx, f.obj.ID)
	require.NoError(t, err)

	_, err = f.svc.Complete(ctx, sp.ID, "user-1", validData())
	require.Error(t, err)
	require.Equal(t, CodeAlreadyCompleted, ErrorCode(err))

	// Second call changed nothing.
	after, err := f.store.Objectives().Get(ctx, f.obj.ID)
	require.NoError(t, err)
	require.Equal(t, obj.CompletedDays, after.CompletedDays)
	require.Equal(t, obj.CurrentStreak, after.CurrentStreak)
}

func TestComplete_WrongUserUnauthorized(t *testing.T) {
	f := newFixture(t, 14)
	sp := f.addSprint(t, 1)

	_, err := f.svc.Complete(context.Background(), sp.ID, "intruder", validData())
	require.Error(t, err)
	require.Equal(t, CodeUnauthorized, ErrorCode(err))
}

func TestComplete_UnknownSprint(t *testing.T) {
	f := newFixture(t, 14)
	_, err := f.svc.Complete(context.Background(), "no-such-sprint", "user-1", validData())
	require.Error(t, err)
	require.True(t, store.IsNotFound(err))
}

func TestComplete_GenerationFailureSwallowed(t *testing.T) {
	f := newFixture(t, 14)
	f.gen.generateErr = errors.New("provider timeout")
	sp := f.addSprint(t, 1)

	result, err := f.svc.Complete(context.Background(), sp.ID, "user-1", validData())
	require.NoError(t, err, "generation failure must not fail completion")
	require.True(t, result.SprintCompleted)
	require.False(t, result.NextSprintGenerated)
}

func TestComplete_BufferFailureSwallowed(t *testing.T) {
	f := newFixture(t, 14)
	f.gen.bufferErr = errors.New("provider down")
	sp := f.addSprint(t, 1)

	_, err := f.svc.Complete(context.Background(), sp.ID, "user-1", validData())
	require.NoError(t, err)
}

func TestComplete_MilestoneFlipped(t *testing.T) {
	f := newFixture(t, 14)
	ctx := context.Background()

	m := &store.Milestone{
		ID:          uuid.NewString(),
		ObjectiveID: f.obj.ID,
		Title:       "First working prototype",
		TargetDay:   2,
	}
	require.NoError(t, f.store.Milestones().Create(ctx, m))

	for day := 1; day <= 2; day++ {
		sp := f.addSprint(t, day)
		_, err := f.svc.Complete(ctx, sp.ID, "user-1", validData())
		require.NoError(t, err)
		f.clock = f.clock.Add(24 * time.Hour)
	}

	milestones, err := f.store.Milestones().ByObjective(ctx, f.obj.ID)
	require.NoError(t, err)
	require.Len(t, milestones, 1)
	require.True(t, milestones[0].Completed)
	require.True(t, f.recorder.Has("milestone_reached"))
}

func TestComplete_StreakResetAfterGap(t *testing.T) {
	f := newFixture(t, 14)
	ctx := context.Background()

	sp := f.addSprint(t, 1)
	_, err := f.svc.Complete(ctx, sp.ID, "user-1", validData())
	require.NoError(t, err)

	f.clock = f.clock.Add(24 * time.Hour)
	sp = f.addSprint(t, 2)
	result, err := f.svc.Complete(ctx, sp.ID, "user-1", validData())
	require.NoError(t, err)
	require.Equal(t, 2, result.CurrentStreak)

	// Three-day gap kills the streak; the new completion starts over.
	f.clock = f.clock.Add(3 * 24 * time.Hour)
	sp = f.addSprint(t, 3)
	result, err = f.svc.Complete(ctx, sp.ID, "user-1", validData())
	require.NoError(t, err)
	require.Equal(t, 1, result.CurrentStreak)

	obj, err := f.store.Objectives().Get(ctx, f.obj.ID)
	require.NoError(t, err)
	require.Equal(t, 2, obj.LongestStreak)
}

func TestComplete_SameDayLeavesStreakUnchanged(t *testing.T) {
	f := newFixture(t, 14)
	ctx := context.Background()

	sp := f.addSprint(t, 1)
	_, err := f.svc.Complete(ctx, sp.ID, "user-1", validData())
	require.NoError(t, err)

	// Second sprint completed the same calendar day.
	sp = f.addSprint(t, 2)
	result, err := f.svc.Complete(ctx, sp.ID, "user-1", validData())
	require.NoError(t, err)
	require.Equal(t, 1, result.CurrentStreak)
}

func TestComplete_SevenDayRun(t *testing.T) {
	f := newFixture(t, 7)
	ctx := context.Background()

	var last *CompletionResult
	for day := 1; day <= 7; day++ {
		sp := f.addSprint(t, day)
		data := validData()
		if day == 7 {
			data = CompletionData{
				TasksCompleted:    9,
				TotalTasks:        10,
				HoursSpent:        2,
				EvidenceSubmitted: true,
			}
		}
		result, err := f.svc.Complete(ctx, sp.ID, "user-1", data)
		require.NoError(t, err, "day %d", day)
		last = result
		f.clock = f.clock.Add(24 * time.Hour)
	}

	require.True(t, last.SprintCompleted)
	require.Equal(t, 7, last.CurrentStreak)

	types := make(map[string]bool)
	for _, n := range last.Notifications {
		types[n.Type] = true
	}
	require.True(t, types[NotifyStreakMilestone], "7 is a multiple of 7")
	require.True(t, types[NotifyReadyToWrapUp], "all estimated days are done")

	// Never auto-completed.
	obj, err := f.store.Objectives().Get(ctx, f.obj.ID)
	require.NoError(t, err)
	require.Equal(t, "active", obj.Status)
	require.Equal(t, 7, obj.CompletedDays)

	require.NotNil(t, last.Progress)
	require.Equal(t, 100.0, last.Progress.PercentComplete)
}

func TestUpdateProgress(t *testing.T) {
	f := newFixture(t, 14)
	sp := f.addSprint(t, 1)
	ctx := context.Background()

	require.NoError(t, f.svc.UpdateProgress(ctx, sp.ID, 40, 1.5))

	got, err := f.store.Sprints().Get(ctx, sp.ID)
	require.NoError(t, err)
	require.Equal(t, 40.0, got.CompletionPercentage)
	require.Equal(t, store.SprintInProgress, got.Status)
	require.NotNil(t, got.StartedAt)
	require.Nil(t, got.CompletedAt)
}

func TestUpdateProgress_CompletedSprintRejected(t *testing.T) {
	f := newFixture(t, 14)
	sp := f.addSprint(t, 1)
	ctx := context.Background()

	_, err := f.svc.Complete(ctx, sp.ID, "user-1", validData())
	require.NoError(t, err)

	err = f.svc.UpdateProgress(ctx, sp.ID, 80, 0)
	require.Error(t, err)
	require.Equal(t, CodeAlreadyCompleted, ErrorCode(err))
}

func TestGetCompletionStatus(t *testing.T) {
	f := newFixture(t, 14)
	sp := f.addSprint(t, 1)
	ctx := context.Background()

	status, err := f.svc.GetCompletionStatus(ctx, sp.ID)
	require.NoError(t, err)
	require.False(t, status.Completed)
	require.Equal(t, 1, status.DayNumber)

	_, err = f.svc.Complete(ctx, sp.ID, "user-1", validData())
	require.NoError(t, err)

	status, err = f.svc.GetCompletionStatus(ctx, sp.ID)
	require.NoError(t, err)
	require.True(t, status.Completed)
	require.NotNil(t, status.CompletedAt)
}

func TestValidate_ZeroTotalTasks(t *testing.T) {
	_, missing := validate(CompletionData{TotalTasks: 0})
	if len(missing) == 0 {
		t.Fatal("expected a validation failure for zero tasks")
	}
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2026, 3, 2, 23, 50, 0, 0, time.UTC)
	tests := []struct {
		name string
		b    time.Time
		want int
	}{
		{"same day", base.Add(5 * time.Minute), 0},
		{"next day across midnight", base.Add(20 * time.Minute), 1},
		{"next day", base.Add(24 * time.Hour), 1},
		{"two days", base.Add(48 * time.Hour), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daysBetween(base, tt.b); got != tt.want {
				t.Errorf("daysBetween = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBestEffort(t *testing.T) {
	var logged []string
	b := NewBestEffort(func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	})

	if ok := b.Run("works", func() error { return nil }); !ok {
		t.Error("expected success")
	}
	if ok := b.Run("breaks", func() error { return errors.New("boom") }); ok {
		t.Error("expected reported failure")
	}
	if len(logged) != 1 {
		t.Fatalf("logged = %d lines, want 1", len(logged))
	}
}
