// ABOUTME: Meal model, MealType enum, and the inbound Estimate contract.
// ABOUTME: Meals are immutable once recorded; the date is fixed at write time.
package models

import (
	"time"
)

// MealType represents the meal slot a meal was eaten in.
type MealType string

const (
	MealBreakfast      MealType = "breakfast"
	MealMorningSnack   MealType = "morning_snack"
	MealLunch          MealType = "lunch"
	MealAfternoonSnack MealType = "afternoon_snack"
	MealDinner         MealType = "dinner"
	MealLateNight      MealType = "late_night"
)

// AllMealTypes returns all valid meal types in day order.
var AllMealTypes = []MealType{
	MealBreakfast, MealMorningSnack, MealLunch,
	MealAfternoonSnack, MealDinner, MealLateNight,
}

// IsValidMealType checks if a string is a valid meal type.
func IsValidMealType(s string) bool {
	for _, mt := range AllMealTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// DateLayout is the calendar-day key format used throughout the store.
const DateLayout = "2006-01-02"

// Meal is a single recorded meal. Immutable once created except for
// deletion. Date is derived from Timestamp in local time when the meal is
// recorded and never recomputed, so later clock changes do not rewrite
// history.
type Meal struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Calories  int       `json:"calories"`
	Carbs     float64   `json:"carbs"`
	Protein   float64   `json:"protein"`
	Fat       float64   `json:"fat"`
	Sodium    float64   `json:"sodium"`
	MealType  MealType  `json:"meal_type"`
	Timestamp time.Time `json:"timestamp"`
	Date      string    `json:"date"`
}

// PlaceholderName is used when the analysis collaborator could not name
// the food.
const PlaceholderName = "Unknown food"

// Estimate is the nutrition estimate handed to the core by the vision
// analysis collaborator. Numeric fields default to zero, name defaults to
// PlaceholderName. The core performs no validation beyond non-negativity
// clamping.
type Estimate struct {
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Sodium   float64 `json:"sodium"`
}

// Clamped returns a copy with negative nutrients clamped to zero and an
// empty name replaced by the placeholder.
func (e Estimate) Clamped() Estimate {
	if e.Name == "" {
		e.Name = PlaceholderName
	}
	if e.Calories < 0 {
		e.Calories = 0
	}
	e.Carbs = clampNonNegative(e.Carbs)
	e.Protein = clampNonNegative(e.Protein)
	e.Fat = clampNonNegative(e.Fat)
	e.Sodium = clampNonNegative(e.Sodium)
	return e
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
