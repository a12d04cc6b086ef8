// ABOUTME: Fixed badge catalog with counter kinds and thresholds.
// ABOUTME: Catalog entries are templates; earned badges copy them with a timestamp.
package achieve

import "github.com/harperreed/nutri/internal/models"

// CatalogEntry is a grantable badge template.
type CatalogEntry struct {
	ID          string
	Name        string
	Icon        string
	Description string
	Counter     models.CounterKind
	Threshold   int
}

// Catalog is the fixed badge table. Order determines grant order when one
// record call crosses several thresholds at once.
var Catalog = []CatalogEntry{
	{"streak3", "Getting Started", "🔥", "Log meals 3 days in a row", models.CounterStreak, 3},
	{"streak7", "One Week Strong", "⭐", "Log meals 7 days in a row", models.CounterStreak, 7},
	{"streak14", "Habit Formed", "🏅", "Log meals 14 days in a row", models.CounterStreak, 14},
	{"streak30", "Monthly Master", "🏆", "Log meals 30 days in a row", models.CounterStreak, 30},
	{"streak100", "Century Logger", "👑", "Log meals 100 days in a row", models.CounterStreak, 100},

	{"goal5", "Goal Getter", "🎯", "Finish within 10% of your calorie target 5 times", models.CounterGoalHit, 5},
	{"goal10", "On Target", "📈", "Finish within 10% of your calorie target 10 times", models.CounterGoalHit, 10},
	{"goal30", "Precision Eater", "🥇", "Finish within 10% of your calorie target 30 times", models.CounterGoalHit, 30},
	{"goal100", "Calorie Sniper", "💯", "Finish within 10% of your calorie target 100 times", models.CounterGoalHit, 100},

	{"perfect1", "Perfect Week", "🌟", "Reach a weekly nutrition score of 90+", models.CounterPerfectWeek, 1},
	{"perfect3", "Triple Perfect", "✨", "Reach a weekly nutrition score of 90+ three times", models.CounterPerfectWeek, 3},
	{"perfect10", "Nutrition Pro", "💎", "Reach a weekly nutrition score of 90+ ten times", models.CounterPerfectWeek, 10},

	{"veggie5", "Veggie Lover", "🥦", "Record 5 vegetable meals", models.CounterVegetableDay, 5},
	{"protein7", "Protein Power", "💪", "Record 7 high-protein meals", models.CounterProteinDay, 7},
}
