// ABOUTME: CLI command for logging meals.
// ABOUTME: Accepts a nutrition estimate and reports newly earned badges.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/nutri/internal/models"
	"github.com/spf13/cobra"
)

var (
	logCarbs    float64
	logProtein  float64
	logFat      float64
	logSodium   float64
	logMealType string
)

var logCmd = &cobra.Command{
	Use:     "log <name> <calories>",
	Aliases: []string{"add", "a"},
	Short:   "Log a meal",
	Long: `Log a meal from a nutrition estimate.

The name and calories are required; macros and sodium default to zero.
Negative values are clamped to zero.

MEAL SLOTS:

  breakfast, morning_snack, lunch, afternoon_snack, dinner, late_night

EXAMPLES:

  nutri log "Kimchi Stew" 600 --carbs 60 --protein 30 --fat 20 --sodium 400
  nutri log "Salad" 250 --type lunch
  nutri add "Protein Shake" 180 --protein 30 --type morning_snack`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		calories, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid calories: %s", args[1])
		}

		mealType := models.MealLunch
		if logMealType != "" {
			if !models.IsValidMealType(logMealType) {
				return fmt.Errorf("unknown meal type: %s\nValid types: breakfast, morning_snack, lunch, afternoon_snack, dinner, late_night", logMealType)
			}
			mealType = models.MealType(logMealType)
		}

		res, err := app.RecordMeal(models.Estimate{
			Name:     name,
			Calories: calories,
			Carbs:    logCarbs,
			Protein:  logProtein,
			Fat:      logFat,
			Sodium:   logSodium,
		}, mealType)
		if err != nil {
			return fmt.Errorf("failed to log meal: %w", err)
		}

		color.Green("✓ Logged %s", res.Meal.Name)
		fmt.Printf("  %s %d kcal  %s\n",
			color.New(color.Faint).Sprintf("%d", res.Meal.ID),
			res.Meal.Calories, res.Meal.MealType)

		for _, b := range res.NewBadges {
			color.Cyan("★ Badge earned: %s %s — %s", b.Icon, b.Name, b.Description)
		}
		return nil
	},
}

func init() {
	logCmd.Flags().Float64Var(&logCarbs, "carbs", 0, "carbohydrates in grams")
	logCmd.Flags().Float64Var(&logProtein, "protein", 0, "protein in grams")
	logCmd.Flags().Float64Var(&logFat, "fat", 0, "fat in grams")
	logCmd.Flags().Float64Var(&logSodium, "sodium", 0, "sodium in milligrams")
	logCmd.Flags().StringVarP(&logMealType, "type", "t", "", "meal slot (default lunch)")
	rootCmd.AddCommand(logCmd)
}
