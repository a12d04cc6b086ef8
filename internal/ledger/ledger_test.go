// ABOUTME: Tests for the meal ledger: record order, queries, and stats.
// ABOUTME: Uses an in-memory store and a pinned clock.
package ledger

import (
	"testing"
	"time"

	"github.com/harperreed/nutri/internal/models"
	"github.com/harperreed/nutri/internal/store"
)

func testLedger(t *testing.T, now *time.Time) *Ledger {
	t.Helper()
	return New(store.NewMemory()).WithClock(func() time.Time { return *now })
}

func TestRecordAssignsDateAndOrder(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	l := testLedger(t, &now)

	first, err := l.Record(models.Estimate{Name: "Toast", Calories: 200}, models.MealBreakfast)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	second, err := l.Record(models.Estimate{Name: "Soup", Calories: 300}, models.MealLunch)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if first.Date != "2026-08-28" {
		t.Errorf("Date = %s, want 2026-08-28", first.Date)
	}

	all := l.All()
	if len(all) != 2 {
		t.Fatalf("len(All) = %d, want 2", len(all))
	}
	// Most recent first
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Errorf("All order = [%d %d], want [%d %d]", all[0].ID, all[1].ID, second.ID, first.ID)
	}
}

func TestRecordIDsUniqueSameMillisecond(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	l := testLedger(t, &now)

	a, _ := l.Record(models.Estimate{Name: "A", Calories: 1}, models.MealLunch)
	b, _ := l.Record(models.Estimate{Name: "B", Calories: 1}, models.MealLunch)
	c, _ := l.Record(models.Estimate{Name: "C", Calories: 1}, models.MealLunch)

	if a.ID == b.ID || b.ID == c.ID {
		t.Errorf("ids not unique: %d %d %d", a.ID, b.ID, c.ID)
	}
	if !(a.ID < b.ID && b.ID < c.ID) {
		t.Errorf("ids not monotonic: %d %d %d", a.ID, b.ID, c.ID)
	}
}

func TestRecordClampsNegatives(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	l := testLedger(t, &now)

	m, err := l.Record(models.Estimate{Name: "Odd", Calories: -10, Protein: -3}, models.MealDinner)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if m.Calories != 0 || m.Protein != 0 {
		t.Errorf("clamping failed: calories=%d protein=%f", m.Calories, m.Protein)
	}
}

func TestTodayAndByDate(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	l := testLedger(t, &now)

	l.Record(models.Estimate{Name: "Yesterday", Calories: 100}, models.MealDinner)
	// Move to the next day; yesterday's meal keeps its original date.
	now = now.AddDate(0, 0, 1)
	l.Record(models.Estimate{Name: "Today A", Calories: 200}, models.MealBreakfast)
	l.Record(models.Estimate{Name: "Today B", Calories: 300}, models.MealLunch)

	today := l.Today()
	if len(today) != 2 {
		t.Fatalf("len(Today) = %d, want 2", len(today))
	}
	if today[0].Name != "Today B" || today[1].Name != "Today A" {
		t.Errorf("Today order = [%s %s], want reverse-insertion", today[0].Name, today[1].Name)
	}

	prev := l.ByDate("2026-08-28")
	if len(prev) != 1 || prev[0].Name != "Yesterday" {
		t.Errorf("ByDate = %v", prev)
	}
}

func TestRecentWindow(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	l := testLedger(t, &now)

	l.Record(models.Estimate{Name: "Old", Calories: 100}, models.MealLunch)
	now = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	l.Record(models.Estimate{Name: "Edge", Calories: 100}, models.MealLunch)
	now = time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	l.Record(models.Estimate{Name: "New", Calories: 100}, models.MealLunch)

	recent := l.Recent(7)
	if len(recent) != 2 {
		t.Fatalf("len(Recent(7)) = %d, want 2", len(recent))
	}
	for _, m := range recent {
		if m.Name == "Old" {
			t.Error("Recent included a meal outside the window")
		}
	}
}

func TestStatsByPeriod(t *testing.T) {
	// 2026-08-26 is a Wednesday; its week starts Sunday 2026-08-23.
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	l := testLedger(t, &now)

	l.Record(models.Estimate{Name: "Wed", Calories: 400}, models.MealLunch)
	now = time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	l.Record(models.Estimate{Name: "Thu", Calories: 600}, models.MealDinner)

	daily := l.StatsByPeriod(PeriodDaily)
	if s := daily["2026-08-26"]; s == nil || s.TotalCalories != 400 || s.Count != 1 {
		t.Errorf("daily[2026-08-26] = %+v", s)
	}

	weekly := l.StatsByPeriod(PeriodWeekly)
	s, ok := weekly["2026-08-23"]
	if !ok {
		t.Fatalf("weekly keys = %v, want Sunday 2026-08-23", mapKeys(weekly))
	}
	if s.TotalCalories != 1000 || s.Count != 2 {
		t.Errorf("weekly bucket = %+v", s)
	}

	monthly := l.StatsByPeriod(PeriodMonthly)
	if s := monthly["2026-08"]; s == nil || s.TotalCalories != 1000 {
		t.Errorf("monthly[2026-08] = %+v", s)
	}
}

func TestWeeklyKeyOnSunday(t *testing.T) {
	// A Sunday maps to itself.
	if got := periodKey("2026-08-23", PeriodWeekly); got != "2026-08-23" {
		t.Errorf("periodKey(sunday) = %s, want 2026-08-23", got)
	}
	// A Saturday maps back to the preceding Sunday.
	if got := periodKey("2026-08-29", PeriodWeekly); got != "2026-08-23" {
		t.Errorf("periodKey(saturday) = %s, want 2026-08-23", got)
	}
}

func TestTopFoods(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	l := testLedger(t, &now)

	for i := 0; i < 3; i++ {
		l.Record(models.Estimate{Name: "Kimchi Stew", Calories: 500}, models.MealLunch)
	}
	for i := 0; i < 2; i++ {
		l.Record(models.Estimate{Name: "Salad", Calories: 200}, models.MealDinner)
	}

	top := l.TopFoods(1)
	if len(top) != 1 {
		t.Fatalf("len(TopFoods(1)) = %d, want 1", len(top))
	}
	if top[0].Name != "Kimchi Stew" || top[0].Count != 3 {
		t.Errorf("TopFoods(1) = %+v", top[0])
	}
	if top[0].TotalCalories != 1500 {
		t.Errorf("TotalCalories = %d, want 1500", top[0].TotalCalories)
	}
}

func TestDelete(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	l := testLedger(t, &now)

	m, _ := l.Record(models.Estimate{Name: "Gone", Calories: 100}, models.MealLunch)
	l.Record(models.Estimate{Name: "Kept", Calories: 100}, models.MealLunch)

	if err := l.Delete(m.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if l.Count() != 1 {
		t.Errorf("Count = %d, want 1", l.Count())
	}

	// Deleting an unknown id is a no-op.
	if err := l.Delete(999999); err != nil {
		t.Errorf("Delete of missing id returned error: %v", err)
	}
	if l.Count() != 1 {
		t.Errorf("Count after no-op delete = %d, want 1", l.Count())
	}
}

func TestCorruptLedgerDegradesToEmpty(t *testing.T) {
	s := store.NewMemory()
	_ = s.Set(store.KeyMeals, []byte("{definitely not json"))

	l := New(s)
	if got := l.Count(); got != 0 {
		t.Errorf("Count over corrupt blob = %d, want 0", got)
	}
}

func mapKeys(m map[string]*PeriodStats) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
