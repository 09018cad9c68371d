package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/cadence/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var artifactCmd = &cobra.Command{
	Use:   "artifact",
	Short: "Attach evidence artifacts to a sprint",
}

var artifactAddCmd = &cobra.Command{
	Use:   "add <sprint-id>",
	Short: "Add or update an evidence artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, _ := cmd.Flags().GetString("project")
		artifactID, _ := cmd.Flags().GetString("id")
		artifactType, _ := cmd.Flags().GetString("type")
		title, _ := cmd.Flags().GetString("title")
		url, _ := cmd.Flags().GetString("url")
		status, _ := cmd.Flags().GetString("status")
		notes, _ := cmd.Flags().GetString("notes")

		if project == "" {
			return fmt.Errorf("--project is required")
		}
		if artifactID == "" {
			artifactID = uuid.NewString()
		}

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		a := &store.Artifact{
			ID:         uuid.NewString(),
			SprintID:   args[0],
			ArtifactID: artifactID,
			ProjectID:  project,
			Type:       artifactType,
			Title:      title,
			URL:        url,
			Status:     status,
			Notes:      notes,
		}
		if err := e.store.Artifacts().Upsert(context.Background(), a); err != nil {
			return fmt.Errorf("save artifact: %w", err)
		}
		fmt.Printf("Saved %s artifact %s\n", artifactType, artifactID)
		return nil
	},
}

var artifactListCmd = &cobra.Command{
	Use:   "list <sprint-id>",
	Short: "List a sprint's evidence artifacts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		artifacts, err := e.store.Artifacts().BySprint(context.Background(), args[0])
		if err != nil {
			return err
		}
		if len(artifacts) == 0 {
			fmt.Println("No artifacts submitted.")
			return nil
		}
		for _, a := range artifacts {
			fmt.Printf("%-12s  %-8s  %-24s  %s\n", a.Type, a.Status, a.ArtifactID, a.URL)
		}
		return nil
	},
}

func init() {
	artifactAddCmd.Flags().String("project", "", "Project ID within the sprint plan (required)")
	artifactAddCmd.Flags().String("id", "", "Stable artifact ID (generated when omitted)")
	artifactAddCmd.Flags().String("type", "repository", "Artifact type (repository, deployment, video, screenshot)")
	artifactAddCmd.Flags().String("title", "", "Artifact title")
	artifactAddCmd.Flags().String("url", "", "Artifact URL")
	artifactAddCmd.Flags().String("status", "unknown", "Artifact status (ok, broken, missing, unknown)")
	artifactAddCmd.Flags().String("notes", "", "Free-form notes")

	artifactCmd.AddCommand(artifactAddCmd)
	artifactCmd.AddCommand(artifactListCmd)
}
