// ABOUTME: CLI command for the weekly nutrition balance score.
// ABOUTME: Shows the component breakdown and the triggered notes.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the weekly nutrition score",
	Long: `Show the 0-100 nutrition balance score for the trailing 7-day window.

COMPONENTS:

  Macro balance        40 pts   carb/protein/fat calorie shares
  Calorie consistency  30 pts   daily average vs. your target
  Sodium control       20 pts   daily sodium average
  Protein adequacy     10 pts   daily protein average

Notes list every threshold that cost points.

EXAMPLES:

  nutri score`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := app.WeeklyScore()

		heading := color.New(color.Bold)
		switch {
		case w.Score >= 90:
			heading = color.New(color.Bold, color.FgGreen)
		case w.Score < 50:
			heading = color.New(color.Bold, color.FgYellow)
		}
		fmt.Printf("Weekly score: %s\n\n", heading.Sprintf("%d / 100", w.Score))

		fmt.Printf("  Macro balance        %2d / 40\n", w.Macro)
		fmt.Printf("  Calorie consistency  %2d / 30\n", w.Consistency)
		fmt.Printf("  Sodium control       %2d / 20\n", w.Sodium)
		fmt.Printf("  Protein adequacy     %2d / 10\n", w.Protein)

		if len(w.Notes) > 0 {
			fmt.Println()
			for _, n := range w.Notes {
				fmt.Printf("  • %s\n", n)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
