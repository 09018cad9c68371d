package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var recalibrateCmd = &cobra.Command{
	Use:   "recalibrate <objective-id>",
	Short: "Recalibrate an objective's difficulty and pace from recent performance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		window, _ := cmd.Flags().GetInt("window")
		days, _ := cmd.Flags().GetInt("days")

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		ctx := context.Background()

		svc, err := e.recalibrator()
		if err != nil {
			return err
		}

		// Manual day-estimate override skips the analysis entirely.
		if cmd.Flags().Changed("days") {
			if err := svc.AdjustEstimatedDays(ctx, args[0], days); err != nil {
				return err
			}
			fmt.Printf("Estimated total days set to %d.\n", max(1, days))
			return nil
		}

		analysis, err := svc.AnalyzePerformance(ctx, args[0], e.user, window)
		if err != nil {
			return err
		}
		if analysis.SprintsAnalyzed == 0 {
			fmt.Println("No reviewed sprints to analyze yet.")
			return nil
		}
		fmt.Printf("Analyzed %d sprint(s): average %.0f%%, trend %s\n",
			analysis.SprintsAnalyzed, analysis.AverageScore*100, analysis.Trend)

		decision, err := svc.Recalibrate(ctx, args[0], e.user, analysis)
		if err != nil {
			return err
		}
		if !decision.ShouldAdjust {
			fmt.Printf("No adjustment: %s\n", decision.Reasoning)
			return nil
		}
		fmt.Printf("Adjustment: %s (%s)\n", decision.AdjustmentType, decision.Source)
		fmt.Printf("Difficulty %d, velocity %.2fx\n", decision.NewDifficulty, decision.NewVelocity)

		// An applied decision relabels the upcoming planned sprint so the
		// learner sees the new level on their next day, not the one after.
		if err := svc.AdjustNextSprintDifficulty(ctx, args[0], decision.NewDifficulty); err != nil {
			fmt.Printf("warning: could not relabel next sprint: %v\n", err)
		}

		fmt.Println(decision.Reasoning)
		for _, r := range decision.Recommendations {
			fmt.Printf("  - %s\n", r)
		}
		return nil
	},
}

func init() {
	recalibrateCmd.Flags().Int("window", 0, "Number of recent reviewed sprints to analyze (default 5)")
	recalibrateCmd.Flags().Int("days", 0, "Set the objective's estimated total days directly")
}
