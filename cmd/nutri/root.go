// ABOUTME: Root Cobra command for nutri CLI.
// ABOUTME: Handles config, store, and tracker lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/nutri/internal/config"
	"github.com/harperreed/nutri/internal/store"
	"github.com/harperreed/nutri/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	appStore store.Store
	app      *tracker.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "nutri",
	Short: "Personal nutrition tracker",
	Long: `Nutri is a CLI tool for tracking meals and nutrition.

WHAT IT TRACKS:

  Meals          name, calories, carbs, protein, fat, sodium per meal slot
  Scores         0-100 weekly nutrition balance, per-meal quality
  Achievements   day streaks, goal hits, perfect weeks, badges
  Fasting        intermittent fasting timer (16:8 by default)

QUICK START:

  $ nutri log "Kimchi Stew" 600 --carbs 60 --protein 30 --fat 20   # Log a meal
  $ nutri today                    # Today's totals vs. target
  $ nutri score                    # Weekly nutrition score
  $ nutri badges                   # Earned badges and streaks
  $ nutri fast start               # Start a fast

STATS:

  $ nutri stats --period weekly    # Calories bucketed by week
  $ nutri top                      # Most logged foods

MCP INTEGRATION:

  Run 'nutri mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "nutri": { "command": "nutri", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Meals, settings, badges, and fasting state are stored as JSON blobs in a
  local Badger database at ~/.local/share/nutri. Set backend "sqlite" for a
  single-file database or "charm" for E2E-encrypted cloud sync.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// migrate and sync open their own backends; holding the default
		// store here would deadlock against the backend's own lock.
		if cmd.Name() == "migrate" || cmd.HasParent() && cmd.Parent().Name() == "sync" || cmd.Name() == "sync" {
			return nil
		}

		appStore, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		app, err = tracker.Open(appStore)
		if err != nil {
			_ = appStore.Close()
			return fmt.Errorf("failed to open tracker: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appStore != nil {
			return appStore.Close()
		}
		return nil
	},
}
