// ABOUTME: CLI command for the most frequently logged foods.
// ABOUTME: Sorted by count, ties broken by first appearance.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var topLimit int

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show most logged foods",
	Long: `Show the foods you log most often, with how many times each was
logged and its total calories.

EXAMPLES:

  nutri top            # Top 5 foods
  nutri top -n 10      # Top 10 foods`,
	RunE: func(cmd *cobra.Command, args []string) error {
		foods := app.Ledger.TopFoods(topLimit)
		if len(foods) == 0 {
			fmt.Println("No meals logged yet.")
			return nil
		}

		for i, f := range foods {
			fmt.Printf("%2d. %-24s %s  %s\n",
				i+1, truncate(f.Name, 24),
				color.New(color.Bold).Sprintf("×%d", f.Count),
				color.New(color.Faint).Sprintf("%d kcal total", f.TotalCalories))
		}
		return nil
	},
}

func init() {
	topCmd.Flags().IntVarP(&topLimit, "limit", "n", 5, "max results")
	rootCmd.AddCommand(topCmd)
}
