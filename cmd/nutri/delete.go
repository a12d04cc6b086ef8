// ABOUTME: CLI command for deleting meals.
// ABOUTME: Deletes by the numeric id shown in list output.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a meal",
	Long: `Delete a meal by its id.

The id is shown in the first column of 'nutri list' output.

CAUTION:

  This permanently deletes the meal. There is no undo. Achievement
  counters already earned from this meal are not rolled back.

EXAMPLES:

  nutri delete 1756388912345`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid meal id: %s", args[0])
		}

		var name string
		for _, m := range app.Ledger.All() {
			if m.ID == id {
				name = m.Name
				break
			}
		}
		if name == "" {
			return fmt.Errorf("meal not found: %d", id)
		}

		if err := app.Ledger.Delete(id); err != nil {
			return fmt.Errorf("failed to delete meal: %w", err)
		}

		color.Yellow("✗ Deleted %s", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
