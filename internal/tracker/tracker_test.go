// ABOUTME: Tests for the tracker facade: record flow, day summary, settings
// ABOUTME: bootstrap, and export/import round trips.
package tracker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/harperreed/nutri/internal/models"
	"github.com/harperreed/nutri/internal/store"
)

func testTracker(t *testing.T) (*Tracker, *time.Time) {
	t.Helper()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	tr, err := Open(store.NewMemory())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	tr.WithClock(func() time.Time { return now })
	return tr, &now
}

func TestOpenInjectsDefaultSettingsOnce(t *testing.T) {
	s := store.NewMemory()
	tr, err := Open(s)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if got := tr.Settings(); got != models.DefaultSettings() {
		t.Errorf("Settings = %+v, want defaults", got)
	}

	// A modified record survives reopening.
	custom := tr.Settings()
	custom.TargetCalories = 1800
	if err := tr.SaveSettings(custom); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	tr2, err := Open(s)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if got := tr2.Settings().TargetCalories; got != 1800 {
		t.Errorf("TargetCalories after reopen = %d, want 1800", got)
	}
}

func TestRecordMeal(t *testing.T) {
	tr, _ := testTracker(t)

	res, err := tr.RecordMeal(models.Estimate{Name: "Bibimbap", Calories: 550, Protein: 20}, models.MealLunch)
	if err != nil {
		t.Fatalf("RecordMeal failed: %v", err)
	}
	if res.Meal.Name != "Bibimbap" {
		t.Errorf("Name = %s", res.Meal.Name)
	}
	if got := tr.Ledger.Count(); got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
	if got := tr.Achievements.Counters().ProteinDayCount; got != 1 {
		t.Errorf("ProteinDayCount = %d, want 1", got)
	}
}

func TestTodaySummary(t *testing.T) {
	tr, now := testTracker(t)

	tr.RecordMeal(models.Estimate{Name: "Oatmeal", Calories: 1100, Carbs: 60, Protein: 12, Fat: 8, Sodium: 150}, models.MealBreakfast)
	tr.RecordMeal(models.Estimate{Name: "Stew", Calories: 900, Carbs: 50, Protein: 40, Fat: 30, Sodium: 900}, models.MealDinner)

	s := tr.Today()
	if s.Date != "2026-08-28" {
		t.Errorf("Date = %s", s.Date)
	}
	if s.Calories != 2000 {
		t.Errorf("Calories = %d, want 2000", s.Calories)
	}
	// Default target is 2000: exactly on target, nothing remaining.
	if s.Remaining != 0 {
		t.Errorf("Remaining = %d, want 0", s.Remaining)
	}
	if s.Protein != 52 || s.Sodium != 1050 {
		t.Errorf("Protein = %f Sodium = %f", s.Protein, s.Sodium)
	}
	if len(s.Meals) != 2 {
		t.Errorf("len(Meals) = %d, want 2", len(s.Meals))
	}

	// Tomorrow the summary is empty again and remaining resets.
	*now = now.AddDate(0, 0, 1)
	s = tr.Today()
	if s.Calories != 0 || s.Remaining != 2000 {
		t.Errorf("next day: Calories = %d Remaining = %d", s.Calories, s.Remaining)
	}
}

func TestTodayCalories(t *testing.T) {
	tr, _ := testTracker(t)
	tr.RecordMeal(models.Estimate{Name: "Snack", Calories: 120}, models.MealMorningSnack)
	tr.RecordMeal(models.Estimate{Name: "Lunch", Calories: 480}, models.MealLunch)
	if got := tr.TodayCalories(); got != 600 {
		t.Errorf("TodayCalories = %d, want 600", got)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	tr, _ := testTracker(t)
	tr.RecordMeal(models.Estimate{Name: "Ramen", Calories: 650, Sodium: 1800}, models.MealDinner)
	custom := tr.Settings()
	custom.TargetCalories = 2200
	tr.SaveSettings(custom)

	data, err := tr.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var doc ExportDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if doc.ID == "" {
		t.Error("export doc has no id")
	}
	if doc.ExportDate.IsZero() {
		t.Error("export doc has no exportDate")
	}

	// Import into a fresh tracker.
	tr2, _ := testTracker(t)
	if err := tr2.Import(data); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if got := tr2.Ledger.Count(); got != 1 {
		t.Errorf("Count after import = %d, want 1", got)
	}
	if got := tr2.Ledger.All()[0].Name; got != "Ramen" {
		t.Errorf("imported meal name = %s", got)
	}
	if got := tr2.Settings().TargetCalories; got != 2200 {
		t.Errorf("imported TargetCalories = %d, want 2200", got)
	}
}

func TestExportYAML(t *testing.T) {
	tr, _ := testTracker(t)
	tr.RecordMeal(models.Estimate{Name: "Toast", Calories: 200}, models.MealBreakfast)

	data, err := tr.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty YAML export")
	}
}

func TestImportMalformedLeavesStoreUntouched(t *testing.T) {
	tr, _ := testTracker(t)
	tr.RecordMeal(models.Estimate{Name: "Keep Me", Calories: 300}, models.MealLunch)

	if err := tr.Import([]byte("{not json")); err == nil {
		t.Fatal("Import of malformed document succeeded")
	}
	if got := tr.Ledger.Count(); got != 1 {
		t.Errorf("Count after failed import = %d, want 1", got)
	}
	if got := tr.Ledger.All()[0].Name; got != "Keep Me" {
		t.Errorf("meal after failed import = %s", got)
	}
}

func TestImportMissingFieldsAreNoOps(t *testing.T) {
	tr, _ := testTracker(t)
	tr.RecordMeal(models.Estimate{Name: "Existing", Calories: 300}, models.MealLunch)
	custom := tr.Settings()
	custom.TargetCalories = 1700
	tr.SaveSettings(custom)

	// Document with only settings: meals stay put.
	if err := tr.Import([]byte(`{"settings":{"target_calories":2500}}`)); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if got := tr.Ledger.Count(); got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
	if got := tr.Settings().TargetCalories; got != 2500 {
		t.Errorf("TargetCalories = %d, want 2500", got)
	}

	// Document with only meals: settings stay put.
	if err := tr.Import([]byte(`{"meals":[]}`)); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if got := tr.Ledger.Count(); got != 0 {
		t.Errorf("Count after empty-meals import = %d, want 0", got)
	}
	if got := tr.Settings().TargetCalories; got != 2500 {
		t.Errorf("TargetCalories = %d, want 2500", got)
	}
}

func TestWeeklyScoreUsesTarget(t *testing.T) {
	tr, _ := testTracker(t)
	tr.RecordMeal(models.Estimate{Name: "Balanced", Calories: 2000, Carbs: 250, Protein: 125, Fat: 55.6, Sodium: 1500}, models.MealDinner)

	w := tr.WeeklyScore()
	if w.Score != 100 {
		t.Errorf("Score = %d, want 100 (notes: %v)", w.Score, w.Notes)
	}
}
