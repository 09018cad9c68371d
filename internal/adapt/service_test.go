package adapt

import (
	"testing"

	"github.com/abhisek/cadence/internal/store"
)

func TestFallback_ConsistentlyHighIncreases(t *testing.T) {
	obj := &store.Objective{CurrentDifficulty: 50, LearningVelocity: 1.0}
	a := &PerformanceAnalysis{
		Scores:           []float64{0.92, 0.95, 0.91},
		ConsistentlyHigh: true,
	}

	d := fallbackDecision(obj, a)
	if !d.ShouldAdjust || d.AdjustmentType != AdjustIncrease {
		t.Fatalf("expected increase, got %+v", d)
	}
	if d.NewDifficulty != 70 {
		t.Errorf("difficulty = %d, want 70", d.NewDifficulty)
	}
	if d.NewVelocity != 1.3 {
		t.Errorf("velocity = %v, want 1.3", d.NewVelocity)
	}
	if d.Source != "fallback" {
		t.Errorf("source = %q, want fallback", d.Source)
	}
}

func TestFallback_DifficultyCappedAt100(t *testing.T) {
	obj := &store.Objective{CurrentDifficulty: 95, LearningVelocity: 1.8}
	d := fallbackDecision(obj, &PerformanceAnalysis{ConsistentlyHigh: true})
	if d.NewDifficulty != 100 {
		t.Errorf("difficulty = %d, want 100", d.NewDifficulty)
	}
	if d.NewVelocity != 2.0 {
		t.Errorf("velocity = %v, want 2.0 cap", d.NewVelocity)
	}
}

func TestFallback_ConsistentlyLowDecreases(t *testing.T) {
	obj := &store.Objective{CurrentDifficulty: 50, LearningVelocity: 1.0}
	d := fallbackDecision(obj, &PerformanceAnalysis{ConsistentlyLow: true})
	if d.AdjustmentType != AdjustDecrease {
		t.Fatalf("expected decrease, got %s", d.AdjustmentType)
	}
	if d.NewDifficulty != 30 {
		t.Errorf("difficulty = %d, want 30", d.NewDifficulty)
	}
	if d.NewVelocity != 0.7 {
		t.Errorf("velocity = %v, want 0.7", d.NewVelocity)
	}
}

func TestFallback_VelocityFloored(t *testing.T) {
	obj := &store.Objective{CurrentDifficulty: 10, LearningVelocity: 0.6}
	d := fallbackDecision(obj, &PerformanceAnalysis{ConsistentlyLow: true})
	if d.NewDifficulty != 0 {
		t.Errorf("difficulty = %d, want 0", d.NewDifficulty)
	}
	if d.NewVelocity != 0.5 {
		t.Errorf("velocity = %v, want 0.5 floor", d.NewVelocity)
	}
}

func TestFallback_NoSignalMaintains(t *testing.T) {
	obj := &store.Objective{CurrentDifficulty: 50, LearningVelocity: 1.0}
	d := fallbackDecision(obj, &PerformanceAnalysis{Scores: []float64{0.8, 0.75, 0.82}})
	if d.ShouldAdjust {
		t.Fatal("expected no adjustment")
	}
	if d.AdjustmentType != AdjustMaintain {
		t.Errorf("type = %s, want maintain", d.AdjustmentType)
	}
	if d.NewDifficulty != 50 || d.NewVelocity != 1.0 {
		t.Error("maintain must keep current values")
	}
}

func TestConsistentlyHigh(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   bool
	}{
		{"three high of five", []float64{0.5, 0.92, 0.95, 0.6, 0.91}, true},
		{"two high of five", []float64{0.5, 0.92, 0.95, 0.6, 0.7}, false},
		{"two of two high", []float64{0.95, 0.92}, true},
		{"one of two high", []float64{0.95, 0.5}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := consistentlyHigh(tt.scores); got != tt.want {
				t.Errorf("consistentlyHigh(%v) = %v, want %v", tt.scores, got, tt.want)
			}
		})
	}
}

func TestConsistentlyLow(t *testing.T) {
	if !consistentlyLow([]float64{0.6, 0.9, 0.5}) {
		t.Error("two scores below 0.7 should flag low")
	}
	if consistentlyLow([]float64{0.6, 0.9, 0.8}) {
		t.Error("one low score should not flag")
	}
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   string
	}{
		{"improving", []float64{0.5, 0.6, 0.8, 0.9}, TrendImproving},
		{"declining", []float64{0.9, 0.8, 0.6, 0.5}, TrendDeclining},
		{"flat", []float64{0.8, 0.8, 0.81, 0.8}, TrendStable},
		{"single score", []float64{0.8}, TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trend(tt.scores); got != tt.want {
				t.Errorf("trend(%v) = %s, want %s", tt.scores, got, tt.want)
			}
		})
	}
}

func TestDifficultyLabel(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "beginner"}, {33, "beginner"}, {34, "intermediate"},
		{66, "intermediate"}, {67, "advanced"}, {100, "advanced"},
	}
	for _, tt := range tests {
		if got := DifficultyLabel(tt.in); got != tt.want {
			t.Errorf("DifficultyLabel(%d) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
