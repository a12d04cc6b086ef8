// ABOUTME: Append-only meal ledger over the blob store.
// ABOUTME: Supports date, window, and period-bucketed queries plus top foods.
package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/nutri/internal/models"
	"github.com/harperreed/nutri/internal/store"
)

// Period buckets for statsByPeriod queries.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// IsValidPeriod checks if a string is a valid period.
func IsValidPeriod(s string) bool {
	switch Period(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// PeriodStats aggregates the meals that fall into one period bucket.
type PeriodStats struct {
	TotalCalories int            `json:"total_calories"`
	Count         int            `json:"count"`
	Meals         []*models.Meal `json:"meals"`
}

// FoodCount is a frequency aggregation entry for topFoods.
type FoodCount struct {
	Name          string `json:"name"`
	Count         int    `json:"count"`
	TotalCalories int    `json:"total_calories"`
}

// Ledger owns the recorded-meal collection. Meals are stored most recent
// first under a single blob key; every write persists the full ledger.
type Ledger struct {
	store store.Store
	now   func() time.Time
}

// New creates a ledger over the given store.
func New(s store.Store) *Ledger {
	return &Ledger{store: s, now: time.Now}
}

// WithClock overrides the time source. Used by tests and by callers that
// must pin "now" for a whole logical operation.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// All returns every recorded meal, most recent first.
func (l *Ledger) All() []*models.Meal {
	return store.Load(l.store, store.KeyMeals, []*models.Meal{})
}

// Record clamps the estimate, assigns a monotonic id and the current local
// date, prepends the meal, and persists the full ledger. Nutrient
// plausibility is the caller's concern; only non-negativity is enforced.
func (l *Ledger) Record(est models.Estimate, mealType models.MealType) (*models.Meal, error) {
	est = est.Clamped()
	now := l.now()

	meals := l.All()

	// Ids are creation timestamps in milliseconds, bumped past the newest
	// existing id so same-millisecond records stay unique.
	id := now.UnixMilli()
	for _, m := range meals {
		if m.ID >= id {
			id = m.ID + 1
		}
	}

	meal := &models.Meal{
		ID:        id,
		Name:      est.Name,
		Calories:  est.Calories,
		Carbs:     est.Carbs,
		Protein:   est.Protein,
		Fat:       est.Fat,
		Sodium:    est.Sodium,
		MealType:  mealType,
		Timestamp: now,
		Date:      now.Format(models.DateLayout),
	}

	meals = append([]*models.Meal{meal}, meals...)
	if err := store.Save(l.store, store.KeyMeals, meals); err != nil {
		return nil, fmt.Errorf("persist ledger: %w", err)
	}
	return meal, nil
}

// ByDate returns the meals recorded on an exact local calendar date
// (YYYY-MM-DD), most recent first.
func (l *Ledger) ByDate(date string) []*models.Meal {
	var out []*models.Meal
	for _, m := range l.All() {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out
}

// Today returns the meals recorded on the current local date.
func (l *Ledger) Today() []*models.Meal {
	return l.ByDate(l.now().Format(models.DateLayout))
}

// Recent returns the meals whose date falls within the trailing window:
// date >= today - windowDays, inclusive.
func (l *Ledger) Recent(windowDays int) []*models.Meal {
	cutoff := l.now().AddDate(0, 0, -windowDays).Format(models.DateLayout)
	var out []*models.Meal
	for _, m := range l.All() {
		if m.Date >= cutoff {
			out = append(out, m)
		}
	}
	return out
}

// StatsByPeriod buckets all meals by period key. Daily keys are the date
// itself, weekly keys the ISO date of the Sunday starting that week, and
// monthly keys the YYYY-MM truncation. Key order is unspecified; callers
// sort lexicographically for display.
func (l *Ledger) StatsByPeriod(p Period) map[string]*PeriodStats {
	stats := make(map[string]*PeriodStats)
	for _, m := range l.All() {
		key := periodKey(m.Date, p)
		s, ok := stats[key]
		if !ok {
			s = &PeriodStats{}
			stats[key] = s
		}
		s.TotalCalories += m.Calories
		s.Count++
		s.Meals = append(s.Meals, m)
	}
	return stats
}

// periodKey computes the bucket key for a date. The week starts on Sunday
// regardless of locale: date minus its weekday index.
func periodKey(date string, p Period) string {
	switch p {
	case PeriodWeekly:
		t, err := time.Parse(models.DateLayout, date)
		if err != nil {
			return date
		}
		return t.AddDate(0, 0, -int(t.Weekday())).Format(models.DateLayout)
	case PeriodMonthly:
		if len(date) >= 7 {
			return date[:7]
		}
		return date
	default:
		return date
	}
}

// TopFoods returns the most frequently recorded food names, descending by
// count. Ties break by first appearance in ledger iteration order.
func (l *Ledger) TopFoods(limit int) []FoodCount {
	counts := make(map[string]*FoodCount)
	var order []string
	for _, m := range l.All() {
		fc, ok := counts[m.Name]
		if !ok {
			fc = &FoodCount{Name: m.Name}
			counts[m.Name] = fc
			order = append(order, m.Name)
		}
		fc.Count++
		fc.TotalCalories += m.Calories
	}

	firstSeen := make(map[string]int, len(order))
	for i, name := range order {
		firstSeen[name] = i
	}

	out := make([]FoodCount, 0, len(order))
	for _, name := range order {
		out = append(out, *counts[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Name] < firstSeen[out[j].Name]
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Delete removes a single meal by id and persists the ledger. Deleting an
// unknown id is a no-op.
func (l *Ledger) Delete(id int64) error {
	meals := l.All()
	kept := meals[:0]
	removed := false
	for _, m := range meals {
		if m.ID == id {
			removed = true
			continue
		}
		kept = append(kept, m)
	}
	if !removed {
		return nil
	}
	if err := store.Save(l.store, store.KeyMeals, kept); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}

// Count returns the number of recorded meals.
func (l *Ledger) Count() int {
	return len(l.All())
}

// Dates returns the set of distinct calendar dates with at least one meal.
func (l *Ledger) Dates() map[string]bool {
	dates := make(map[string]bool)
	for _, m := range l.All() {
		dates[m.Date] = true
	}
	return dates
}
