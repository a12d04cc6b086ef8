// ABOUTME: CLI command for listing logged meals.
// ABOUTME: Supports filtering by date and limiting results.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/nutri/internal/models"
	"github.com/spf13/cobra"
)

var (
	listDate  string
	listLimit int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List logged meals",
	Long: `List recent meals from your meal ledger, most recent first.

OUTPUT FORMAT:

  Each line shows: ID  DATE  NAME  CALORIES  TYPE

  The ID is used with 'nutri delete'.

EXAMPLES:

  nutri list                      # Show last 20 meals
  nutri list --date 2026-08-25    # Show meals for a specific day
  nutri list -n 50                # Show last 50 meals`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var meals []*models.Meal
		if listDate != "" {
			meals = app.Ledger.ByDate(listDate)
		} else {
			meals = app.Ledger.All()
		}
		if listLimit > 0 && len(meals) > listLimit {
			meals = meals[:listLimit]
		}

		if len(meals) == 0 {
			fmt.Println("No meals found.")
			return nil
		}

		for _, m := range meals {
			fmt.Printf("%s  %s  %-24s %5d kcal  %s\n",
				color.New(color.Faint).Sprintf("%d", m.ID),
				m.Date, truncate(m.Name, 24), m.Calories, m.MealType)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listDate, "date", "", "filter by date (YYYY-MM-DD)")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max results")
	rootCmd.AddCommand(listCmd)
}
