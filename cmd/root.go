package cmd

import (
	"github.com/abhisek/cadence/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cadence",
	Short: "Adaptive sprint planning and completion engine",
	Long:  "Cadence plans day-by-day learning sprints for an objective, reviews submitted evidence, and recalibrates difficulty and pace from recent performance.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CADENCE_DB env var)")
	rootCmd.PersistentFlags().String("user", "local", "Learner profile the command acts as")

	rootCmd.AddCommand(objectiveCmd)
	rootCmd.AddCommand(sprintCmd)
	rootCmd.AddCommand(artifactCmd)
	rootCmd.AddCommand(recalibrateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CADENCE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
