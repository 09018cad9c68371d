package cmd

import (
	"fmt"

	"github.com/abhisek/cadence/internal/adapt"
	"github.com/abhisek/cadence/internal/autogen"
	"github.com/abhisek/cadence/internal/completion"
	"github.com/abhisek/cadence/internal/events"
	"github.com/abhisek/cadence/internal/llm"
	"github.com/abhisek/cadence/internal/plan"
	"github.com/abhisek/cadence/internal/review"
	"github.com/abhisek/cadence/internal/skills"
	"github.com/abhisek/cadence/internal/store"
	"github.com/spf13/cobra"
)

// engine bundles the wired services behind a command invocation.
// Providers are constructed lazily so read-only commands work without
// API keys.
type engine struct {
	store *store.Store
	user  string
}

func openEngine(cmd *cobra.Command) (*engine, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	user, _ := cmd.Flags().GetString("user")
	return &engine{store: s, user: user}, nil
}

func (e *engine) Close() error { return e.store.Close() }

func (e *engine) provider() (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return llm.NewProvider(cfg, e.store.EventRepo())
}

func (e *engine) emitter() events.Emitter {
	return events.NewStoreEmitter(e.store.EventRepo())
}

func (e *engine) scheduler() (*autogen.Scheduler, error) {
	p, err := e.provider()
	if err != nil {
		return nil, err
	}
	planner := plan.NewService(p, plan.DefaultConfig())
	return autogen.NewScheduler(planner, e.store.Objectives(), e.store.Sprints()), nil
}

func (e *engine) completionService() (*completion.Service, error) {
	gen, err := e.scheduler()
	if err != nil {
		return nil, err
	}
	return completion.NewService(e.store.Sprints(), e.store.Objectives(), e.store.Milestones(), e.emitter(), gen), nil
}

func (e *engine) reviewWorkflow() (*review.Workflow, error) {
	p, err := e.provider()
	if err != nil {
		return nil, err
	}
	svc := review.NewService(p, review.DefaultConfig())
	return review.NewWorkflow(svc, e.store.Sprints(), e.store.Artifacts(), e.emitter()), nil
}

func (e *engine) recalibrator() (*adapt.Service, error) {
	p, err := e.provider()
	if err != nil {
		return nil, err
	}
	lookup := skills.NewTracker(e.store.Objectives(), e.store.Sprints())
	return adapt.NewService(p, adapt.DefaultConfig(), e.store.Objectives(), e.store.Sprints(), e.store.Adaptations(), lookup), nil
}
