// ABOUTME: Tracker is the unit-of-work facade over ledger, engine, and timer.
// ABOUTME: RecordMeal chains append, counter update, and badge evaluation.
package tracker

import (
	"fmt"
	"time"

	"github.com/harperreed/nutri/internal/achieve"
	"github.com/harperreed/nutri/internal/fasting"
	"github.com/harperreed/nutri/internal/ledger"
	"github.com/harperreed/nutri/internal/models"
	"github.com/harperreed/nutri/internal/score"
	"github.com/harperreed/nutri/internal/store"
)

// Tracker wires the core components over one store handle. Construct once
// at startup and pass by reference; there is no hidden global.
type Tracker struct {
	store store.Store
	now   func() time.Time

	Ledger       *ledger.Ledger
	Achievements *achieve.Engine
	Fasting      *fasting.Timer
}

// Open builds a tracker over the store and injects default settings the
// first time the store has none.
func Open(s store.Store) (*Tracker, error) {
	l := ledger.New(s)
	t := &Tracker{
		store:        s,
		now:          time.Now,
		Ledger:       l,
		Achievements: achieve.New(s, l),
		Fasting:      fasting.New(s),
	}

	data, err := s.Get(store.KeySettings)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if data == nil {
		if err := store.Save(s, store.KeySettings, models.DefaultSettings()); err != nil {
			return nil, fmt.Errorf("write default settings: %w", err)
		}
	}
	return t, nil
}

// WithClock overrides the time source for the tracker and every component.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	t.Ledger.WithClock(now)
	t.Achievements.WithClock(now)
	t.Fasting.WithClock(now)
	return t
}

// Settings returns the stored settings, falling back to defaults on a
// corrupt blob.
func (t *Tracker) Settings() models.Settings {
	return store.Load(t.store, store.KeySettings, models.DefaultSettings())
}

// SaveSettings overwrites the settings record wholesale.
func (t *Tracker) SaveSettings(s models.Settings) error {
	if err := store.Save(t.store, store.KeySettings, s); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}

// RecordResult is what one RecordMeal call produced.
type RecordResult struct {
	Meal      *models.Meal
	NewBadges []models.Badge
}

// RecordMeal appends a meal, advances the achievement counters, and
// evaluates badge grants, returning the meal and any badges newly earned.
//
// The store has no cross-key transactions: the ledger write and the counter
// write are independent, and a crash between them leaves the counters one
// meal behind. Accepted limitation of the incremental-counter design.
func (t *Tracker) RecordMeal(est models.Estimate, mealType models.MealType) (*RecordResult, error) {
	meal, err := t.Ledger.Record(est, mealType)
	if err != nil {
		return nil, err
	}

	badges, err := t.Achievements.OnRecord(meal, t.Settings().Target())
	if err != nil {
		return nil, err
	}
	return &RecordResult{Meal: meal, NewBadges: badges}, nil
}

// TodayCalories sums the calories recorded today.
func (t *Tracker) TodayCalories() int {
	total := 0
	for _, m := range t.Ledger.Today() {
		total += m.Calories
	}
	return total
}

// TodaySummary is the day dashboard: totals against the target.
type TodaySummary struct {
	Date      string         `json:"date"`
	Calories  int            `json:"calories"`
	Target    int            `json:"target"`
	Remaining int            `json:"remaining"`
	Carbs     float64        `json:"carbs"`
	Protein   float64        `json:"protein"`
	Fat       float64        `json:"fat"`
	Sodium    float64        `json:"sodium"`
	Meals     []*models.Meal `json:"meals"`
}

// Today aggregates the current day's meals against the calorie target.
// Remaining may go negative when the target is exceeded.
func (t *Tracker) Today() TodaySummary {
	meals := t.Ledger.Today()
	s := TodaySummary{
		Date:   t.now().Format(models.DateLayout),
		Target: t.Settings().Target(),
		Meals:  meals,
	}
	for _, m := range meals {
		s.Calories += m.Calories
		s.Carbs += m.Carbs
		s.Protein += m.Protein
		s.Fat += m.Fat
		s.Sodium += m.Sodium
	}
	s.Remaining = s.Target - s.Calories
	return s
}

// WeeklyScore computes the weekly balance score over the trailing 7-day
// window.
func (t *Tracker) WeeklyScore() score.Weekly {
	return score.WeeklyBalance(t.Ledger.Recent(7), t.Settings().Target())
}
