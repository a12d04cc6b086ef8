// ABOUTME: User settings model with defaults and calorie recommendation.
// ABOUTME: Settings are a single record overwritten wholesale on save.
package models

// Activity levels for the calorie recommendation multiplier.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

// Goals for weight management.
const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

// DefaultTargetCalories is used whenever no target has been configured.
const DefaultTargetCalories = 2000

// Settings holds the user profile. A single mutable record, overwritten
// wholesale on save. Defaults are injected the first time the store is
// empty.
type Settings struct {
	Gender         string  `json:"gender"`
	Age            int     `json:"age"`
	HeightCm       float64 `json:"height_cm"`
	WeightKg       float64 `json:"weight_kg"`
	ActivityLevel  string  `json:"activity_level"`
	Goal           string  `json:"goal"`
	TargetCalories int     `json:"target_calories"`
}

// DefaultSettings returns the built-in profile used when the store has no
// settings yet.
func DefaultSettings() Settings {
	return Settings{
		Gender:         "female",
		Age:            30,
		HeightCm:       165,
		WeightKg:       60,
		ActivityLevel:  ActivityModerate,
		Goal:           GoalMaintain,
		TargetCalories: DefaultTargetCalories,
	}
}

// Target returns the configured calorie target, defaulting when unset.
func (s Settings) Target() int {
	if s.TargetCalories <= 0 {
		return DefaultTargetCalories
	}
	return s.TargetCalories
}

var activityFactors = map[string]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// RecommendedCalories estimates a daily calorie target from the profile
// using the Mifflin-St Jeor equation, adjusted ±15% for a lose/gain goal.
// Returns DefaultTargetCalories when the profile is incomplete.
func (s Settings) RecommendedCalories() int {
	if s.Age <= 0 || s.HeightCm <= 0 || s.WeightKg <= 0 {
		return DefaultTargetCalories
	}

	bmr := 10*s.WeightKg + 6.25*s.HeightCm - 5*float64(s.Age)
	if s.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	factor, ok := activityFactors[s.ActivityLevel]
	if !ok {
		factor = activityFactors[ActivityModerate]
	}
	tdee := bmr * factor

	switch s.Goal {
	case GoalLose:
		tdee *= 0.85
	case GoalGain:
		tdee *= 1.15
	}

	return int(tdee + 0.5)
}
