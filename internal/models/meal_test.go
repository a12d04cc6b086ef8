// ABOUTME: Tests for the Meal model, meal types, and estimate clamping.
// ABOUTME: Validates the non-negativity boundary and placeholder naming.
package models

import (
	"testing"
)

func TestIsValidMealType(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"breakfast", true},
		{"morning_snack", true},
		{"lunch", true},
		{"afternoon_snack", true},
		{"dinner", true},
		{"late_night", true},
		{"brunch", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidMealType(tt.input); got != tt.want {
				t.Errorf("IsValidMealType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEstimateClamped(t *testing.T) {
	e := Estimate{
		Name:     "Stew",
		Calories: -100,
		Carbs:    -5,
		Protein:  12,
		Fat:      -0.5,
		Sodium:   -300,
	}
	c := e.Clamped()

	if c.Calories != 0 {
		t.Errorf("Calories = %d, want 0", c.Calories)
	}
	if c.Carbs != 0 {
		t.Errorf("Carbs = %f, want 0", c.Carbs)
	}
	if c.Protein != 12 {
		t.Errorf("Protein = %f, want 12", c.Protein)
	}
	if c.Fat != 0 {
		t.Errorf("Fat = %f, want 0", c.Fat)
	}
	if c.Sodium != 0 {
		t.Errorf("Sodium = %f, want 0", c.Sodium)
	}
	if c.Name != "Stew" {
		t.Errorf("Name = %q, want Stew", c.Name)
	}
}

func TestEstimateClampedPlaceholderName(t *testing.T) {
	c := Estimate{Calories: 200}.Clamped()
	if c.Name != PlaceholderName {
		t.Errorf("Name = %q, want %q", c.Name, PlaceholderName)
	}
}
