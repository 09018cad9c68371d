package adapt

import (
	"fmt"
	"strings"
)

const adaptSystemPrompt = `You are a learning pace calibrator. Given a ` +
	`learner's recent sprint performance, you decide whether to adjust the ` +
	`difficulty (0-100) and pace multiplier (0.5-2.0) of their objective. ` +
	`Adjust only on a clear signal; small fluctuations mean maintain. ` +
	`You respond only with JSON conforming to the provided schema.`

// buildAdaptUserMessage renders the recalibration request.
func buildAdaptUserMessage(a PerformanceAnalysis, currentDifficulty int, currentVelocity float64, estimatedDays int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Current difficulty: %d/100\n", currentDifficulty)
	fmt.Fprintf(&b, "Current pace multiplier: %.2f\n", currentVelocity)
	fmt.Fprintf(&b, "Estimated total days: %d\n\n", estimatedDays)

	fmt.Fprintf(&b, "Sprints analyzed: %d\n", a.SprintsAnalyzed)
	fmt.Fprintf(&b, "Average score: %.2f\n", a.AverageScore)
	fmt.Fprintf(&b, "Trend: %s\n", a.Trend)
	fmt.Fprintf(&b, "Consistently high (>=0.9): %v\n", a.ConsistentlyHigh)
	fmt.Fprintf(&b, "Consistently low (<0.7): %v\n", a.ConsistentlyLow)

	if len(a.Scores) > 0 {
		b.WriteString("Scores (oldest first):")
		for _, s := range a.Scores {
			fmt.Fprintf(&b, " %.2f", s)
		}
		b.WriteString("\n")
	}

	if len(a.StrugglingAreas) > 0 {
		fmt.Fprintf(&b, "Struggling areas: %s\n", strings.Join(a.StrugglingAreas, ", "))
	}
	if len(a.MasteredSkills) > 0 {
		fmt.Fprintf(&b, "Mastered skills: %s\n", strings.Join(a.MasteredSkills, ", "))
	}

	b.WriteString("\nDecide whether to adjust difficulty, pace, or the day estimate.")
	return b.String()
}
