// ABOUTME: CLI command for earned badges, streaks, and counters.
// ABOUTME: Earned badges are permanent; locked ones show their thresholds.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/nutri/internal/achieve"
	"github.com/spf13/cobra"
)

var badgesAll bool

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show achievements",
	Long: `Show your current streak, achievement counters, and earned badges.

EXAMPLES:

  nutri badges           # Earned badges and counters
  nutri badges --all     # Include locked badges with thresholds`,
	RunE: func(cmd *cobra.Command, args []string) error {
		counters := app.Achievements.Counters()
		earned := app.Achievements.Badges()

		fmt.Printf("Streak: %s (best %d)\n",
			color.New(color.Bold).Sprintf("%d days", counters.CurrentStreak),
			counters.MaxStreakEver)
		fmt.Printf("Goal hits %d  Perfect weeks %d  Veggie meals %d  Protein meals %d\n\n",
			counters.GoalHitCount, counters.PerfectWeekCount,
			counters.VegetableDayCount, counters.ProteinDayCount)

		if len(earned) == 0 {
			fmt.Println("No badges earned yet.")
		}
		have := make(map[string]bool, len(earned))
		for _, b := range earned {
			have[b.ID] = true
			fmt.Printf("  %s %-18s %s  %s\n", b.Icon, b.Name,
				color.New(color.Faint).Sprint(b.EarnedAt.Format("2006-01-02")),
				b.Description)
		}

		if badgesAll {
			fmt.Println()
			for _, entry := range achieve.Catalog {
				if have[entry.ID] {
					continue
				}
				fmt.Printf("  %s %s\n",
					color.New(color.Faint).Sprintf("🔒 %-18s", entry.Name),
					color.New(color.Faint).Sprint(entry.Description))
			}
		}
		return nil
	},
}

func init() {
	badgesCmd.Flags().BoolVar(&badgesAll, "all", false, "include locked badges")
	rootCmd.AddCommand(badgesCmd)
}
