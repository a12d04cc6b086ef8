// ABOUTME: CLI command for period-bucketed calorie statistics.
// ABOUTME: Buckets by day, Sunday-start week, or month.
package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/harperreed/nutri/internal/ledger"
	"github.com/spf13/cobra"
)

var (
	statsPeriod string
	statsWindow int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show calorie statistics by period",
	Long: `Show total calories and meal counts bucketed by period.

PERIODS:

  daily     one bucket per calendar day
  weekly    one bucket per week, keyed by its Sunday
  monthly   one bucket per YYYY-MM month

Buckets are sorted by key; --recent limits output to the trailing N buckets.

EXAMPLES:

  nutri stats                     # Daily buckets
  nutri stats --period weekly     # Weekly buckets
  nutri stats -p monthly --recent 6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ledger.IsValidPeriod(statsPeriod) {
			return fmt.Errorf("unknown period: %s (use daily, weekly, or monthly)", statsPeriod)
		}

		stats := app.Ledger.StatsByPeriod(ledger.Period(statsPeriod))
		if len(stats) == 0 {
			fmt.Println("No meals logged yet.")
			return nil
		}

		keys := make([]string, 0, len(stats))
		for k := range stats {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if statsWindow > 0 && len(keys) > statsWindow {
			keys = keys[len(keys)-statsWindow:]
		}

		for _, k := range keys {
			s := stats[k]
			fmt.Printf("%s  %6d kcal  %s\n",
				color.New(color.Bold).Sprint(k), s.TotalCalories,
				color.New(color.Faint).Sprintf("%d meals", s.Count))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsPeriod, "period", "p", "daily", "bucket period (daily, weekly, monthly)")
	statsCmd.Flags().IntVar(&statsWindow, "recent", 0, "only show the trailing N buckets")
	rootCmd.AddCommand(statsCmd)
}
