// ABOUTME: CLI command for viewing and editing user settings.
// ABOUTME: Settings are one record, overwritten wholesale on save.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	setGender   string
	setAge      int
	setHeight   float64
	setWeight   float64
	setActivity string
	setGoal     string
	setTarget   int
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Show the user profile, or change it by passing flags.

The recommended calorie target is computed from the profile (Mifflin-St
Jeor, adjusted for activity and goal) but only --target changes what the
scorer actually uses.

EXAMPLES:

  nutri settings                          # Show current settings
  nutri settings --target 1800            # Set the calorie target
  nutri settings --weight 72 --goal lose  # Update profile fields`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := app.Settings()

		changed := false
		if cmd.Flags().Changed("gender") {
			s.Gender = setGender
			changed = true
		}
		if cmd.Flags().Changed("age") {
			s.Age = setAge
			changed = true
		}
		if cmd.Flags().Changed("height") {
			s.HeightCm = setHeight
			changed = true
		}
		if cmd.Flags().Changed("weight") {
			s.WeightKg = setWeight
			changed = true
		}
		if cmd.Flags().Changed("activity") {
			s.ActivityLevel = setActivity
			changed = true
		}
		if cmd.Flags().Changed("goal") {
			s.Goal = setGoal
			changed = true
		}
		if cmd.Flags().Changed("target") {
			s.TargetCalories = setTarget
			changed = true
		}

		if changed {
			if err := app.SaveSettings(s); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
			color.Green("✓ Settings saved")
			fmt.Println()
		}

		fmt.Printf("  Gender    %s\n", s.Gender)
		fmt.Printf("  Age       %d\n", s.Age)
		fmt.Printf("  Height    %.0f cm\n", s.HeightCm)
		fmt.Printf("  Weight    %.1f kg\n", s.WeightKg)
		fmt.Printf("  Activity  %s\n", s.ActivityLevel)
		fmt.Printf("  Goal      %s\n", s.Goal)
		fmt.Printf("  Target    %d kcal %s\n", s.Target(),
			color.New(color.Faint).Sprintf("(recommended %d)", s.RecommendedCalories()))
		return nil
	},
}

func init() {
	settingsCmd.Flags().StringVar(&setGender, "gender", "", "gender (male, female)")
	settingsCmd.Flags().IntVar(&setAge, "age", 0, "age in years")
	settingsCmd.Flags().Float64Var(&setHeight, "height", 0, "height in cm")
	settingsCmd.Flags().Float64Var(&setWeight, "weight", 0, "weight in kg")
	settingsCmd.Flags().StringVar(&setActivity, "activity", "", "activity level (sedentary, light, moderate, active, very_active)")
	settingsCmd.Flags().StringVar(&setGoal, "goal", "", "goal (lose, maintain, gain)")
	settingsCmd.Flags().IntVar(&setTarget, "target", 0, "daily calorie target")
	rootCmd.AddCommand(settingsCmd)
}
