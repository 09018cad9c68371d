package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/cadence/internal/autogen"
	"github.com/abhisek/cadence/internal/completion"
	"github.com/spf13/cobra"
)

var sprintCmd = &cobra.Command{
	Use:   "sprint",
	Short: "Generate, complete, and review sprints",
}

var sprintGenerateCmd = &cobra.Command{
	Use:   "generate <objective-id>",
	Short: "Generate the next sprint for an objective",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		sched, err := e.scheduler()
		if err != nil {
			return err
		}

		sprint, err := sched.GenerateNextSprint(context.Background(), args[0], e.user)
		if errors.Is(err, autogen.ErrGenerationInFlight) {
			fmt.Println("Generation already in progress for this objective.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Generated sprint %s (day %d, %d days, %s)\n",
			sprint.ID, sprint.DayNumber, sprint.LengthDays, sprint.Difficulty)
		return nil
	},
}

var sprintBatchCmd = &cobra.Command{
	Use:   "batch <objective-id>",
	Short: "Generate several upcoming sprints at once",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		sched, err := e.scheduler()
		if err != nil {
			return err
		}

		sprints, err := sched.GenerateSprintBatch(context.Background(), args[0], e.user, count)
		if errors.Is(err, autogen.ErrGenerationInFlight) {
			fmt.Println("Generation already in progress for this objective.")
			return nil
		}
		if err != nil {
			return err
		}
		for _, s := range sprints {
			fmt.Printf("Generated sprint %s (day %d)\n", s.ID, s.DayNumber)
		}
		return nil
	},
}

var sprintBufferCmd = &cobra.Command{
	Use:   "buffer <objective-id>",
	Short: "Top up the look-ahead buffer of planned sprints",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		sched, err := e.scheduler()
		if err != nil {
			return err
		}
		if err := sched.MaintainBuffer(context.Background(), args[0], e.user); err != nil {
			return err
		}

		status, err := sched.GetGenerationStatus(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Buffer: %d planned day(s) ahead of day %d\n", status.BufferDays, status.CurrentDay)
		return nil
	},
}

var sprintStatusCmd = &cobra.Command{
	Use:   "status <objective-id>",
	Short: "Show sprint generation status for an objective",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		sched, err := e.scheduler()
		if err != nil {
			return err
		}
		status, err := sched.GetGenerationStatus(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Current day:        %d\n", status.CurrentDay)
		fmt.Printf("Last generated day: %d\n", status.LastGeneratedDay)
		fmt.Printf("Buffer days:        %d\n", status.BufferDays)
		fmt.Printf("Generating:         %v\n", status.IsGenerating)
		fmt.Printf("Next sprint ready:  %v\n", status.NextSprintReady)
		return nil
	},
}

var sprintListCmd = &cobra.Command{
	Use:   "list <objective-id>",
	Short: "List an objective's sprints",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		sprints, err := e.store.Sprints().ByObjective(context.Background(), args[0])
		if err != nil {
			return err
		}
		if len(sprints) == 0 {
			fmt.Println("No sprints yet.")
			return nil
		}

		fmt.Printf("%-36s  %-4s  %-4s  %-12s  %-11s  %s\n", "ID", "Day", "Len", "Difficulty", "Status", "Score")
		fmt.Println(strings.Repeat("─", 84))
		for _, s := range sprints {
			score := "-"
			if s.Score != nil {
				score = fmt.Sprintf("%.0f%%", *s.Score*100)
			}
			fmt.Printf("%-36s  %-4d  %-4d  %-12s  %-11s  %s\n",
				s.ID, s.DayNumber, s.LengthDays, s.Difficulty, s.Status, score)
		}
		return nil
	},
}

var sprintCompleteCmd = &cobra.Command{
	Use:   "complete <sprint-id>",
	Short: "Submit a sprint completion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := completionDataFromFlags(cmd)
		if err != nil {
			return err
		}

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		svc, err := e.completionService()
		if err != nil {
			return err
		}
		result, err := svc.Complete(context.Background(), args[0], e.user, data)
		if err != nil {
			return err
		}

		fmt.Printf("Sprint completed at %.0f%% task completion.\n", result.CompletionRate*100)
		for _, w := range result.Warnings {
			fmt.Printf("Warning: %s\n", w)
		}
		if result.CurrentStreak > 0 {
			fmt.Printf("Streak: %d day(s)\n", result.CurrentStreak)
		}
		if result.NextSprintGenerated {
			fmt.Println("Next sprint is ready.")
		}
		if p := result.Progress; p != nil {
			fmt.Printf("Progress: %d/%d days (%.0f%%)\n", p.CompletedDays, p.EstimatedDays, p.PercentComplete)
		}
		for _, n := range result.Notifications {
			fmt.Println(n.Message)
		}
		return nil
	},
}

var sprintProgressCmd = &cobra.Command{
	Use:   "progress <sprint-id>",
	Short: "Record partial progress on a sprint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		percent, _ := cmd.Flags().GetFloat64("percent")
		hours, _ := cmd.Flags().GetFloat64("hours")

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		svc, err := e.completionService()
		if err != nil {
			return err
		}
		if err := svc.UpdateProgress(context.Background(), args[0], percent, hours); err != nil {
			return err
		}
		fmt.Printf("Progress recorded: %.0f%%\n", percent)
		return nil
	},
}

var sprintReviewCmd = &cobra.Command{
	Use:   "review <sprint-id>",
	Short: "Review a submitted sprint's evidence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		wf, err := e.reviewWorkflow()
		if err != nil {
			return err
		}
		agg, err := wf.ReviewSprint(context.Background(), args[0])
		if err != nil {
			return err
		}

		verdict := "PASS"
		if !agg.Pass {
			verdict = "NEEDS WORK"
		}
		fmt.Printf("Score: %.0f%%  %s  (%s)\n", agg.Score*100, verdict, agg.Source)
		printSection("Achieved", agg.Achieved)
		printSection("Missing", agg.Missing)
		printSection("Next steps", agg.Recommendations)
		return nil
	},
}

func completionDataFromFlags(cmd *cobra.Command) (completion.CompletionData, error) {
	tasksCompleted, _ := cmd.Flags().GetInt("tasks-completed")
	totalTasks, _ := cmd.Flags().GetInt("total-tasks")
	hours, _ := cmd.Flags().GetFloat64("hours")
	evidence, _ := cmd.Flags().GetBool("evidence")
	reflection, _ := cmd.Flags().GetString("reflection")

	if totalTasks <= 0 {
		return completion.CompletionData{}, fmt.Errorf("--total-tasks is required")
	}
	return completion.CompletionData{
		TasksCompleted:    tasksCompleted,
		TotalTasks:        totalTasks,
		HoursSpent:        hours,
		EvidenceSubmitted: evidence,
		Reflection:        reflection,
	}, nil
}

func printSection(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Println(title + ":")
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}

func init() {
	sprintBatchCmd.Flags().IntP("count", "n", 3, "Number of sprints to generate")

	sprintCompleteCmd.Flags().Int("tasks-completed", 0, "Number of tasks completed")
	sprintCompleteCmd.Flags().Int("total-tasks", 0, "Total tasks in the sprint")
	sprintCompleteCmd.Flags().Float64("hours", 0, "Hours spent")
	sprintCompleteCmd.Flags().Bool("evidence", false, "Evidence artifacts were submitted")
	sprintCompleteCmd.Flags().String("reflection", "", "Short reflection on the sprint")

	sprintProgressCmd.Flags().Float64("percent", 0, "Completion percentage (0-100)")
	sprintProgressCmd.Flags().Float64("hours", 0, "Hours spent so far")

	sprintCmd.AddCommand(sprintGenerateCmd)
	sprintCmd.AddCommand(sprintBatchCmd)
	sprintCmd.AddCommand(sprintBufferCmd)
	sprintCmd.AddCommand(sprintStatusCmd)
	sprintCmd.AddCommand(sprintListCmd)
	sprintCmd.AddCommand(sprintCompleteCmd)
	sprintCmd.AddCommand(sprintProgressCmd)
	sprintCmd.AddCommand(sprintReviewCmd)
}
