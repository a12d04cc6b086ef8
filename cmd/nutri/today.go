// ABOUTME: CLI command showing today's meals and totals against the target.
// ABOUTME: Prints remaining calories and a per-meal quality score.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/nutri/internal/score"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Show today's meals and totals",
	Long: `Show everything logged today: each meal with its quality score, plus
calorie and macro totals against your target.

EXAMPLES:

  nutri today`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := app.Today()

		fmt.Printf("%s\n\n", color.New(color.Bold).Sprint(s.Date))

		if len(s.Meals) == 0 {
			fmt.Println("No meals logged today.")
		}
		for _, m := range s.Meals {
			fmt.Printf("  %s %-24s %5d kcal  %s  score %d\n",
				color.New(color.Faint).Sprintf("%d", m.ID),
				truncate(m.Name, 24), m.Calories, m.MealType, score.Meal(m))
		}

		fmt.Println()
		fmt.Printf("  Calories  %d / %d kcal\n", s.Calories, s.Target)
		if s.Remaining >= 0 {
			color.Green("  Remaining %d kcal under target", s.Remaining)
		} else {
			color.Yellow("  Over target by %d kcal", -s.Remaining)
		}
		fmt.Printf("  Carbs %.1fg  Protein %.1fg  Fat %.1fg  Sodium %.0fmg\n",
			s.Carbs, s.Protein, s.Fat, s.Sodium)
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
