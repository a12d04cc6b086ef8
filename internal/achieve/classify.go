// ABOUTME: Data-driven meal classification rules for achievement counters.
// ABOUTME: New categories are added as table rows, not new branching logic.
package achieve

import (
	"strings"

	"github.com/harperreed/nutri/internal/models"
)

// Rule ties a counter to a meal predicate. Every rule whose predicate
// matches the just-recorded meal bumps its counter by one.
type Rule struct {
	Counter models.CounterKind
	Match   func(*models.Meal) bool
}

// highProteinGrams is the per-meal protein threshold for the high-protein
// counter.
const highProteinGrams = 20

var vegetableKeywords = []string{
	"salad", "vegetable", "veggie", "greens",
	"broccoli", "spinach", "kale", "cabbage",
	"carrot", "cucumber", "tomato", "zucchini",
}

// classifierRules is the active rule table.
var classifierRules = []Rule{
	{
		Counter: models.CounterVegetableDay,
		Match: func(m *models.Meal) bool {
			name := strings.ToLower(m.Name)
			for _, kw := range vegetableKeywords {
				if strings.Contains(name, kw) {
					return true
				}
			}
			return false
		},
	},
	{
		Counter: models.CounterProteinDay,
		Match: func(m *models.Meal) bool {
			return m.Protein >= highProteinGrams
		},
	},
}
