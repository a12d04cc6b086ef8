// ABOUTME: Achievement engine: streak walk, counters, and badge grants.
// ABOUTME: Counters advance exactly once per recorded meal, never re-derived.
package achieve

import (
	"fmt"
	"math"
	"time"

	"github.com/harperreed/nutri/internal/ledger"
	"github.com/harperreed/nutri/internal/models"
	"github.com/harperreed/nutri/internal/score"
	"github.com/harperreed/nutri/internal/store"
)

// goalHitTolerance is the relative deviation from the calorie target that
// still counts as a goal hit.
const goalHitTolerance = 0.10

// perfectWeekScore is the weekly score at or above which a week counts as
// perfect.
const perfectWeekScore = 90

// Engine maintains the achievement counters and the earned-badge set.
// Counters are advanced incrementally on each record call; with the store's
// non-transactional writes this can drift from the ledger if a process dies
// between the two writes. Accepted limitation: counters are monotonic
// history, not a projection that self-heals.
type Engine struct {
	store  store.Store
	ledger *ledger.Ledger
	now    func() time.Time
}

// New creates an engine over the store and ledger.
func New(s store.Store, l *ledger.Ledger) *Engine {
	return &Engine{store: s, ledger: l, now: time.Now}
}

// WithClock overrides the time source.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Counters returns the persisted achievement counters.
func (e *Engine) Counters() models.Counters {
	return store.Load(e.store, store.KeyAchievements, models.Counters{})
}

// Badges returns the earned badges in grant order.
func (e *Engine) Badges() []models.Badge {
	return store.Load(e.store, store.KeyBadges, []models.Badge{})
}

// OnRecord advances the counters for a just-recorded meal and returns any
// badges newly granted by this call. The meal must already be in the
// ledger.
func (e *Engine) OnRecord(meal *models.Meal, targetCalories int) ([]models.Badge, error) {
	now := e.now()
	counters := e.Counters()

	counters.CurrentStreak = e.streak(now)
	if counters.CurrentStreak > counters.MaxStreakEver {
		counters.MaxStreakEver = counters.CurrentStreak
	}

	if targetCalories <= 0 {
		targetCalories = models.DefaultTargetCalories
	}
	todayCalories := 0
	for _, m := range e.ledger.Today() {
		todayCalories += m.Calories
	}
	deviation := math.Abs(float64(todayCalories-targetCalories)) / float64(targetCalories)
	if deviation <= goalHitTolerance {
		counters.GoalHitCount++
	}

	for _, rule := range classifierRules {
		if rule.Match(meal) {
			switch rule.Counter {
			case models.CounterVegetableDay:
				counters.VegetableDayCount++
			case models.CounterProteinDay:
				counters.ProteinDayCount++
			}
		}
	}

	weekly := score.WeeklyBalance(e.ledger.Recent(7), targetCalories)
	if weekly.Score >= perfectWeekScore {
		counters.PerfectWeekCount++
	}

	if err := store.Save(e.store, store.KeyAchievements, counters); err != nil {
		return nil, fmt.Errorf("persist counters: %w", err)
	}

	return e.grant(counters, now)
}

// streak walks backward day by day through the distinct ledger dates,
// stopping at the first gap. A day with no meal yet does not break a streak
// that is still live from yesterday.
func (e *Engine) streak(now time.Time) int {
	dates := e.ledger.Dates()
	day := now
	if !dates[day.Format(models.DateLayout)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for dates[day.Format(models.DateLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// grant scans the catalog and appends every entry whose counter has crossed
// its threshold and is not already earned. Earned badges are never
// re-evaluated or revoked.
func (e *Engine) grant(counters models.Counters, now time.Time) ([]models.Badge, error) {
	earned := e.Badges()
	have := make(map[string]bool, len(earned))
	for _, b := range earned {
		have[b.ID] = true
	}

	var granted []models.Badge
	for _, entry := range Catalog {
		if have[entry.ID] {
			continue
		}
		if counters.Value(entry.Counter) < entry.Threshold {
			continue
		}
		granted = append(granted, models.Badge{
			ID:          entry.ID,
			Name:        entry.Name,
			Icon:        entry.Icon,
			Description: entry.Description,
			Counter:     entry.Counter,
			Threshold:   entry.Threshold,
			EarnedAt:    now,
		})
	}

	if len(granted) == 0 {
		return nil, nil
	}
	if err := store.Save(e.store, store.KeyBadges, append(earned, granted...)); err != nil {
		return nil, fmt.Errorf("persist badges: %w", err)
	}
	return granted, nil
}
