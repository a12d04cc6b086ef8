// ABOUTME: Nutrition scoring: per-meal quality and weekly balance scores.
// ABOUTME: Pure functions over meal aggregates; no store access.
package score

import (
	"fmt"
	"math"

	"github.com/harperreed/nutri/internal/models"
)

// Calories per gram of each macronutrient.
const (
	CarbCaloriesPerGram    = 4
	ProteinCaloriesPerGram = 4
	FatCaloriesPerGram     = 9
)

// Meal rates a single meal from 0 to 100. A meal with no macro content at
// all scores 0 (undefined food).
func Meal(m *models.Meal) int {
	proteinCal := m.Protein * ProteinCaloriesPerGram
	fatCal := m.Fat * FatCaloriesPerGram
	carbCal := m.Carbs * CarbCaloriesPerGram
	macroCal := proteinCal + fatCal + carbCal
	if macroCal == 0 {
		return 0
	}

	s := 100
	if proteinCal/macroCal < 0.15 {
		s -= 15
	}
	if m.Calories > 0 && fatCal/float64(m.Calories) > 0.35 {
		s -= 20
	}
	if m.Calories > 800 {
		s -= 15
	}
	if m.Sodium > 1000 {
		s -= 20
	}
	return clamp(s, 0, 100)
}

// Weekly is the result of the weekly balance score: the overall 0-100
// score, its four components, and the notes that triggered each penalty.
type Weekly struct {
	Score       int      `json:"score"`
	Macro       int      `json:"macro"`
	Consistency int      `json:"consistency"`
	Sodium      int      `json:"sodium"`
	Protein     int      `json:"protein"`
	Notes       []string `json:"notes"`
}

// WeeklyBalance scores the trailing-week meal window against the calorie
// target. Macros are aggregated across the whole window; calories, sodium,
// and protein are averaged over the days that actually have meals. A week
// with no macro data contributes nothing for the macro component (not a
// prorated share), so an empty week scores 0 overall.
func WeeklyBalance(meals []*models.Meal, targetCalories int) Weekly {
	w := Weekly{}
	if len(meals) == 0 {
		w.Notes = append(w.Notes, "No meals recorded this week")
		return w
	}
	if targetCalories <= 0 {
		targetCalories = models.DefaultTargetCalories
	}

	var carbs, protein, fat, sodium float64
	var calories int
	days := make(map[string]bool)
	for _, m := range meals {
		carbs += m.Carbs
		protein += m.Protein
		fat += m.Fat
		sodium += m.Sodium
		calories += m.Calories
		days[m.Date] = true
	}
	activeDays := float64(len(days))

	// Macro balance, 40 points.
	carbCal := carbs * CarbCaloriesPerGram
	proteinCal := protein * ProteinCaloriesPerGram
	fatCal := fat * FatCaloriesPerGram
	macroCal := carbCal + proteinCal + fatCal
	if macroCal > 0 {
		macro := 40
		carbShare := carbCal / macroCal
		proteinShare := proteinCal / macroCal
		fatShare := fatCal / macroCal

		if carbShare < 0.40 || carbShare > 0.70 {
			macro -= 15
			w.Notes = append(w.Notes, fmt.Sprintf("Carb share %.0f%% outside the 40-70%% range", carbShare*100))
		}
		if proteinShare < 0.15 {
			macro -= 15
			w.Notes = append(w.Notes, fmt.Sprintf("Protein share %.0f%% below 15%%", proteinShare*100))
		} else if proteinShare > 0.30 {
			macro -= 5
			w.Notes = append(w.Notes, fmt.Sprintf("Protein share %.0f%% above 30%%", proteinShare*100))
		}
		if fatShare > 0.35 {
			macro -= 10
			w.Notes = append(w.Notes, fmt.Sprintf("Fat share %.0f%% above 35%%", fatShare*100))
		} else if fatShare < 0.15 {
			macro -= 5
			w.Notes = append(w.Notes, fmt.Sprintf("Fat share %.0f%% below 15%%", fatShare*100))
		}
		if macro < 0 {
			macro = 0
		}
		w.Macro = macro
	} else {
		w.Notes = append(w.Notes, "No macro data recorded this week")
	}

	// Calorie consistency, 30 points.
	consistency := 30
	avgCalories := float64(calories) / activeDays
	deviation := math.Abs(avgCalories-float64(targetCalories)) / float64(targetCalories)
	if deviation > 0.30 {
		consistency -= 20
		w.Notes = append(w.Notes, fmt.Sprintf("Daily average %.0f kcal is more than 30%% off the %d kcal target", avgCalories, targetCalories))
	} else if deviation > 0.15 {
		consistency -= 10
		w.Notes = append(w.Notes, fmt.Sprintf("Daily average %.0f kcal is more than 15%% off the %d kcal target", avgCalories, targetCalories))
	}
	w.Consistency = consistency

	// Sodium control, 20 points.
	sodiumScore := 20
	avgSodium := sodium / activeDays
	if avgSodium > 2300 {
		sodiumScore -= 15
		w.Notes = append(w.Notes, fmt.Sprintf("Daily sodium average %.0f mg above 2300 mg", avgSodium))
	} else if avgSodium > 1800 {
		sodiumScore -= 8
		w.Notes = append(w.Notes, fmt.Sprintf("Daily sodium average %.0f mg above 1800 mg", avgSodium))
	}
	w.Sodium = sodiumScore

	// Protein adequacy, 10 points.
	proteinScore := 10
	avgProtein := protein / activeDays
	if avgProtein < 50 {
		proteinScore -= 8
		w.Notes = append(w.Notes, fmt.Sprintf("Daily protein average %.0f g below 50 g", avgProtein))
	} else if avgProtein < 60 {
		proteinScore -= 4
		w.Notes = append(w.Notes, fmt.Sprintf("Daily protein average %.0f g below 60 g", avgProtein))
	}
	w.Protein = proteinScore

	w.Score = clamp(w.Macro+w.Consistency+w.Sodium+w.Protein, 0, 100)
	return w
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
