// ABOUTME: CLI commands for the intermittent fasting timer.
// ABOUTME: Explicit start/eat/end transitions; status never auto-switches.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/nutri/internal/models"
	"github.com/spf13/cobra"
)

var fastCmd = &cobra.Command{
	Use:   "fast",
	Short: "Intermittent fasting timer",
	Long: `Control the intermittent fasting timer.

The timer tracks a fasting phase followed by an eating window (16:8 by
default). It never switches phases on its own: when a phase completes,
status shows a prompt and you run 'nutri fast eat' or 'nutri fast start'.

COMMANDS:

  status    Show current phase, elapsed, remaining, and progress
  on        Enable the timer
  off       Disable the timer (keeps timestamps, resumes nothing)
  start     Start a fasting phase
  eat       Switch to the eating window
  end       End the current phase
  mode      Set the schedule, e.g. 'nutri fast mode 18:6'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fastStatus()
	},
}

var fastStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show fasting status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return fastStatus()
	},
}

func fastStatus() error {
	s := app.Fasting.Status()

	if !s.Enabled {
		fmt.Println("Fasting timer is off. Enable with 'nutri fast on'.")
		return nil
	}

	switch s.Phase {
	case models.PhaseIdle:
		fmt.Printf("Idle on a %s schedule. Start with 'nutri fast start'.\n", s.Mode)
	case models.PhaseFasting, models.PhaseEating:
		verb := "Fasting"
		if s.Phase == models.PhaseEating {
			verb = "Eating window"
		}
		fmt.Printf("%s  %dh %dm elapsed  %.0f%%\n",
			color.New(color.Bold).Sprint(verb),
			s.ElapsedHours, s.ElapsedMinutes, s.Progress)
		if s.Complete {
			color.Green("✓ Phase complete — switch with 'nutri fast eat' or 'nutri fast start'")
		} else {
			fmt.Printf("  %s remaining\n", s.Remaining.Round(time.Minute))
		}
	}
	return nil
}

var fastOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Enable the fasting timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Fasting.Enable(true); err != nil {
			return err
		}
		color.Green("✓ Fasting timer enabled (%s)", app.Fasting.State().Mode)
		return nil
	},
}

var fastOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable the fasting timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Fasting.Enable(false); err != nil {
			return err
		}
		color.Yellow("✗ Fasting timer disabled")
		return nil
	},
}

var fastStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a fasting phase",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Fasting.StartFasting(); err != nil {
			return err
		}
		st := app.Fasting.State()
		color.Green("✓ Fasting started — %d hours to go", st.Mode.FastHours)
		return nil
	},
}

var fastEatCmd = &cobra.Command{
	Use:   "eat",
	Short: "Switch to the eating window",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Fasting.StartEating(); err != nil {
			return err
		}
		st := app.Fasting.State()
		color.Green("✓ Eating window open for %d hours", st.Mode.EatHours)
		return nil
	},
}

var fastEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the current phase",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Fasting.End(); err != nil {
			return err
		}
		color.Yellow("✗ Phase ended")
		return nil
	},
}

var fastModeCmd = &cobra.Command{
	Use:   "mode <fast:eat>",
	Short: "Set the fasting schedule",
	Long: `Set the fasting schedule as fasting-hours:eating-hours.

EXAMPLES:

  nutri fast mode 16:8
  nutri fast mode 18:6`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := models.ParseMode(args[0])
		if err != nil {
			return err
		}
		if err := app.Fasting.SetMode(mode); err != nil {
			return err
		}
		color.Green("✓ Schedule set to %s", mode)
		return nil
	},
}

func init() {
	fastCmd.AddCommand(fastStatusCmd, fastOnCmd, fastOffCmd,
		fastStartCmd, fastEatCmd, fastEndCmd, fastModeCmd)
	rootCmd.AddCommand(fastCmd)
}
