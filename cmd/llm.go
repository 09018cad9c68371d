package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/cadence/internal/llm"
	"github.com/abhisek/cadence/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request/response events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		events, err := s.EventRepo().QueryLLMEvents(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-14s  %-10s  %-13s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Provider", "Tokens in/out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 84))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-19s  %-14s  %-10s  %6d/%-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				e.Provider,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		e, err := s.EventRepo().GetLLMEvent(ctx, id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("ID:        %d\n", e.ID)
		fmt.Printf("Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:  %s\n", e.Provider)
		fmt.Printf("Model:     %s\n", e.Model)
		fmt.Printf("Purpose:   %s\n", e.Purpose)
		if e.PromptHash != "" {
			fmt.Printf("Prompt:    %s\n", e.PromptHash)
		}
		fmt.Printf("Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Printf("Latency:   %dms\n", e.LatencyMs)
		fmt.Printf("Success:   %v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", e.ErrorMessage)
		}

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("REQUEST")
		fmt.Println(sep)
		if e.RequestBody != "" {
			fmt.Println(e.RequestBody)
		} else {
			fmt.Println("(not captured)")
		}

		fmt.Println(sep)
		fmt.Println("RESPONSE")
		fmt.Println(sep)
		if e.ResponseBody != "" {
			fmt.Println(e.ResponseBody)
		} else {
			fmt.Println("(not captured)")
		}

		return nil
	},
}

// purposeUsage folds the purpose/model usage pairs into one row per
// purpose so planning, review, and recalibration costs can be compared
// side by side.
type purposeUsage struct {
	purpose      string
	calls        int
	inputTokens  int
	outputTokens int
	latencySum   int64 // call-weighted, for the average column
	cost         float64
	costUnknown  bool
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost per purpose",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		rows, err := s.EventRepo().LLMUsageBreakdown(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		byPurpose := map[string]*purposeUsage{}
		unknownModels := map[string]bool{}
		for _, row := range rows {
			u, ok := byPurpose[row.Purpose]
			if !ok {
				u = &purposeUsage{purpose: row.Purpose}
				byPurpose[row.Purpose] = u
			}
			u.calls += row.Calls
			u.inputTokens += row.InputTokens
			u.outputTokens += row.OutputTokens
			u.latencySum += row.AvgLatencyMs * int64(row.Calls)

			if cost := llm.LookupCost(row.Model); cost != nil {
				u.cost += cost.Cost(row.InputTokens, row.OutputTokens)
			} else {
				u.costUnknown = true
				unknownModels[row.Model] = true
			}
		}

		usage := make([]*purposeUsage, 0, len(byPurpose))
		for _, u := range byPurpose {
			usage = append(usage, u)
		}
		sort.Slice(usage, func(i, j int) bool { return usage[i].purpose < usage[j].purpose })

		fmt.Println("Usage and Estimated Cost by Purpose")
		fmt.Println(strings.Repeat("─", 76))
		fmt.Printf("%-16s  %6s  %10s  %10s  %8s  %10s\n",
			"Purpose", "Calls", "Input", "Output", "Avg Ms", "Cost")
		fmt.Println(strings.Repeat("─", 76))

		var total purposeUsage
		for _, u := range usage {
			avgMs := int64(0)
			if u.calls > 0 {
				avgMs = u.latencySum / int64(u.calls)
			}
			fmt.Printf("%-16s  %6d  %10d  %10d  %8d  %10s\n",
				u.purpose, u.calls, u.inputTokens, u.outputTokens, avgMs,
				formatCost(u.cost, u.costUnknown))

			total.calls += u.calls
			total.inputTokens += u.inputTokens
			total.outputTokens += u.outputTokens
			total.cost += u.cost
			total.costUnknown = total.costUnknown || u.costUnknown
		}

		fmt.Println(strings.Repeat("─", 76))
		fmt.Printf("%-16s  %6d  %10d  %10d  %8s  %10s\n",
			"TOTAL", total.calls, total.inputTokens, total.outputTokens, "",
			formatCost(total.cost, total.costUnknown))

		if len(unknownModels) > 0 {
			names := make([]string, 0, len(unknownModels))
			for m := range unknownModels {
				names = append(names, m)
			}
			sort.Strings(names)
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(names, ", "))
		}

		return nil
	},
}

// formatCost renders an estimated USD figure; partial estimates (some
// models without pricing) carry a + suffix.
func formatCost(usd float64, partial bool) string {
	var out string
	if usd < 0.01 {
		out = fmt.Sprintf("$%.4f", usd)
	} else {
		out = fmt.Sprintf("$%.2f", usd)
	}
	if partial {
		out += "+"
	}
	return out
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. sprint-plan, sprint-review, recalibration)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
