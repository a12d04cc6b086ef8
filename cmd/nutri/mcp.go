// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/nutri/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants to interact with your nutrition data through a
standardized protocol. The server communicates via stdin/stdout.

CONFIGURATION:

  {
    "mcpServers": {
      "nutri": {
        "command": "nutri",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_meal         Record a meal from a nutrition estimate
  list_meals       List recent meals
  delete_meal      Delete a meal by id
  today_summary    Today's calories and macros vs. target
  weekly_score     Weekly nutrition balance score
  top_foods        Most frequently logged foods
  get_badges       Earned badges and counters
  fasting_status   Current fasting phase
  start_fast       Start a fasting phase
  end_fast         End the current phase

AVAILABLE RESOURCES:

  nutri://meals/today     Today's meals and totals
  nutri://score/weekly    Weekly score breakdown
  nutri://badges          Earned badges and counters`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(app)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
