// ABOUTME: Badge model, achievement counters, and counter kinds.
// ABOUTME: Earned badges are permanent; counters drive badge thresholds.
package models

import "time"

// CounterKind identifies which achievement counter a badge threshold is
// evaluated against.
type CounterKind string

const (
	CounterStreak       CounterKind = "streak"
	CounterGoalHit      CounterKind = "goal_hit"
	CounterPerfectWeek  CounterKind = "perfect_week"
	CounterVegetableDay CounterKind = "vegetable_day"
	CounterProteinDay   CounterKind = "protein_day"
)

// Counters holds the incrementally maintained achievement counters.
// All fields are non-negative. CurrentStreak may reset on a missed day;
// everything else only grows.
type Counters struct {
	CurrentStreak     int `json:"current_streak"`
	MaxStreakEver     int `json:"max_streak_ever"`
	GoalHitCount      int `json:"goal_hit_count"`
	PerfectWeekCount  int `json:"perfect_week_count"`
	VegetableDayCount int `json:"vegetable_day_count"`
	ProteinDayCount   int `json:"protein_day_count"`
}

// Value returns the counter value for a kind.
func (c Counters) Value(kind CounterKind) int {
	switch kind {
	case CounterStreak:
		return c.CurrentStreak
	case CounterGoalHit:
		return c.GoalHitCount
	case CounterPerfectWeek:
		return c.PerfectWeekCount
	case CounterVegetableDay:
		return c.VegetableDayCount
	case CounterProteinDay:
		return c.ProteinDayCount
	}
	return 0
}

// Badge is an earned achievement. Once granted it is permanent and
// immutable; the earned set never contains duplicate ids.
type Badge struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Icon        string      `json:"icon"`
	Description string      `json:"description"`
	Counter     CounterKind `json:"counter"`
	Threshold   int         `json:"threshold"`
	EarnedAt    time.Time   `json:"earned_at"`
}
