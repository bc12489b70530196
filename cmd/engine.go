package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/stackfour/internal/kb"
	"github.com/abhisek/stackfour/internal/knowledge"
	"github.com/abhisek/stackfour/internal/learning"
	"github.com/abhisek/stackfour/internal/llm"
	"github.com/abhisek/stackfour/internal/solver"
	"github.com/abhisek/stackfour/internal/store"
	"github.com/spf13/cobra"
)

// lookupRPS throttles knowledge-helper API calls during batch evaluation.
const lookupRPS = 2.0

// openStore resolves the DB path from flags and environment and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// buildEngine wires the full prediction pipeline over an open store. With
// noLLM set, or when no provider is configured, lookups fall back to the
// built-in fact table and no API calls are made.
func buildEngine(ctx context.Context, st *store.Store, noLLM bool) (*solver.Engine, *learning.Recorder) {
	recorder := learning.NewRecorder(st.LearningRepo())
	recorder.Load(ctx)

	helper := buildHelper(ctx, st, noLLM)
	return solver.New(kb.New(), recorder, helper), recorder
}

func buildHelper(ctx context.Context, st *store.Store, noLLM bool) knowledge.Helper {
	offline := knowledge.NewOffline()
	if noLLM {
		return offline
	}

	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return offline
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to the built-in intervention fact table.")
		return offline
	}

	return knowledge.NewCached(knowledge.NewLLMHelper(provider), offline, lookupRPS, 10*time.Second)
}
