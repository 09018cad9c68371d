package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/cadence/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var objectiveCmd = &cobra.Command{
	Use:   "objective",
	Short: "Create and inspect learning objectives",
}

var objectiveCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an objective",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		if title == "" {
			return fmt.Errorf("--title is required")
		}
		description, _ := cmd.Flags().GetString("description")
		days, _ := cmd.Flags().GetInt("days")
		priority, _ := cmd.Flags().GetString("priority")
		skills, _ := cmd.Flags().GetStringSlice("skill")
		criteria, _ := cmd.Flags().GetStringSlice("criterion")
		milestones, _ := cmd.Flags().GetStringSlice("milestone")

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		ctx := context.Background()

		obj := &store.Objective{
			ID:                 uuid.NewString(),
			UserID:             e.user,
			Title:              title,
			Description:        description,
			SuccessCriteria:    criteria,
			RequiredSkills:     skills,
			Priority:           priority,
			Status:             "active",
			EstimatedTotalDays: days,
			CurrentDifficulty:  50,
			LearningVelocity:   1.0,
		}
		if err := e.store.Objectives().Create(ctx, obj); err != nil {
			return fmt.Errorf("create objective: %w", err)
		}

		for _, spec := range milestones {
			title, day, err := parseMilestone(spec)
			if err != nil {
				return err
			}
			m := &store.Milestone{
				ID:          uuid.NewString(),
				ObjectiveID: obj.ID,
				Title:       title,
				TargetDay:   day,
			}
			if err := e.store.Milestones().Create(ctx, m); err != nil {
				return fmt.Errorf("create milestone %q: %w", title, err)
			}
		}

		fmt.Printf("Created objective %s (%d days)\n", obj.ID, obj.EstimatedTotalDays)
		return nil
	},
}

var objectiveShowCmd = &cobra.Command{
	Use:   "show <objective-id>",
	Short: "Show an objective's progress, milestones, and recalibration history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		ctx := context.Background()

		obj, err := e.store.Objectives().Get(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s  [%s, %s]\n", obj.Title, obj.Status, obj.Priority)
		if obj.Description != "" {
			fmt.Println(obj.Description)
		}
		fmt.Printf("Progress:      %d/%d days\n", obj.CompletedDays, obj.EstimatedTotalDays)
		fmt.Printf("Difficulty:    %d/100, velocity %.2fx (%d recalibrations)\n",
			obj.CurrentDifficulty, obj.LearningVelocity, obj.RecalibrationCount)
		fmt.Printf("Streak:        %d current, %d longest\n", obj.CurrentStreak, obj.LongestStreak)

		milestones, err := e.store.Milestones().ByObjective(ctx, obj.ID)
		if err != nil {
			return err
		}
		if len(milestones) > 0 {
			fmt.Println("\nMilestones")
			for _, m := range milestones {
				mark := " "
				if m.Completed {
					mark = "✓"
				}
				fmt.Printf("  [%s] day %2d  %s\n", mark, m.TargetDay, m.Title)
			}
		}

		history, err := e.store.Adaptations().ByObjective(ctx, obj.ID, 5)
		if err != nil {
			return err
		}
		if len(history) > 0 {
			fmt.Println("\nRecent recalibrations")
			for _, a := range history {
				fmt.Printf("  %s  %s  difficulty %d→%d, velocity %.2f→%.2f (%s)\n",
					a.Timestamp.Local().Format("2006-01-02"), a.AdjustmentType,
					a.PreviousDifficulty, a.NewDifficulty,
					a.PreviousVelocity, a.NewVelocity, a.Source)
			}
		}

		return nil
	},
}

var objectiveCompleteCmd = &cobra.Command{
	Use:   "complete <objective-id>",
	Short: "Mark an objective completed (explicit learner confirmation)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		ctx := context.Background()

		obj, err := e.store.Objectives().Get(ctx, args[0])
		if err != nil {
			return err
		}
		if obj.UserID != e.user {
			return fmt.Errorf("objective %s is not owned by user %s", obj.ID, e.user)
		}
		if obj.Status == "completed" {
			fmt.Println("Objective is already completed.")
			return nil
		}
		obj.Status = "completed"
		if err := e.store.Objectives().Update(ctx, obj); err != nil {
			return err
		}
		fmt.Printf("Objective %q marked completed after %d days.\n", obj.Title, obj.CompletedDays)
		return nil
	},
}

// parseMilestone parses a "Title:day" milestone spec.
func parseMilestone(spec string) (string, int, error) {
	i := strings.LastIndex(spec, ":")
	if i < 1 {
		return "", 0, fmt.Errorf("invalid milestone %q: expected \"Title:day\"", spec)
	}
	day, err := strconv.Atoi(spec[i+1:])
	if err != nil || day < 1 {
		return "", 0, fmt.Errorf("invalid milestone day in %q", spec)
	}
	return spec[:i], day, nil
}

func init() {
	objectiveCreateCmd.Flags().String("title", "", "Objective title (required)")
	objectiveCreateCmd.Flags().String("description", "", "What success looks like")
	objectiveCreateCmd.Flags().Int("days", 7, "Estimated total days")
	objectiveCreateCmd.Flags().String("priority", "medium", "Priority (low, medium, high)")
	objectiveCreateCmd.Flags().StringSlice("skill", nil, "Required skill (repeatable)")
	objectiveCreateCmd.Flags().StringSlice("criterion", nil, "Success criterion (repeatable)")
	objectiveCreateCmd.Flags().StringSlice("milestone", nil, "Milestone as \"Title:day\" (repeatable)")

	objectiveCmd.AddCommand(objectiveCreateCmd)
	objectiveCmd.AddCommand(objectiveShowCmd)
	objectiveCmd.AddCommand(objectiveCompleteCmd)
}
