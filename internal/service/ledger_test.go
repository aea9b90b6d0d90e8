package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/saadjs/apexfuel/internal/model"
	"github.com/saadjs/apexfuel/internal/service"
)

func TestTotalsRecomputeOnAddAndDelete(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	date := "2024-06-01"

	day, err := service.AddLogEntry(st, date, model.LogEntry{
		ID: "e1", FoodID: "f1", FoodName: "Rice (cooked)", Carbs: 50, Protein: 10, Fat: 5,
	})
	if err != nil {
		t.Fatalf("add first entry: %v", err)
	}
	if day.TotalCarbs != 50 || day.TotalProtein != 10 || day.TotalFat != 5 {
		t.Fatalf("unexpected totals after first add: %+v", day)
	}

	day, err = service.AddLogEntry(st, date, model.LogEntry{
		ID: "e2", FoodID: "f5", FoodName: "Chicken breast (cooked)", Carbs: 30, Protein: 20, Fat: 0,
	})
	if err != nil {
		t.Fatalf("add second entry: %v", err)
	}
	if day.TotalCarbs != 80 || day.TotalProtein != 30 || day.TotalFat != 5 {
		t.Fatalf("unexpected totals after second add: %+v", day)
	}

	day, err = service.DeleteLogEntry(st, date, "e2")
	if err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	if day.TotalCarbs != 50 || day.TotalProtein != 10 || day.TotalFat != 5 {
		t.Fatalf("unexpected totals after delete: %+v", day)
	}
	if len(day.Entries) != 1 || day.Entries[0].ID != "e1" {
		t.Fatalf("expected only e1 to survive, got %+v", day.Entries)
	}

	// The change must have been persisted, not just returned.
	reloaded, err := service.LogForDate(st, date)
	if err != nil {
		t.Fatalf("reload log: %v", err)
	}
	if reloaded.TotalCarbs != 50 || len(reloaded.Entries) != 1 {
		t.Fatalf("persisted log out of sync: %+v", reloaded)
	}
}

func TestDeleteMissingEntryIsNoop(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	date := "2024-06-02"

	if _, err := service.AddLogEntry(st, date, model.LogEntry{ID: "e1", Carbs: 12, Protein: 3, Fat: 1}); err != nil {
		t.Fatalf("add entry: %v", err)
	}
	day, err := service.DeleteLogEntry(st, date, "no_such_entry")
	if err != nil {
		t.Fatalf("delete missing entry: %v", err)
	}
	if len(day.Entries) != 1 || day.TotalCarbs != 12 || day.TotalProtein != 3 || day.TotalFat != 1 {
		t.Fatalf("no-op delete changed the log: %+v", day)
	}

	// Missing date is equally harmless.
	day, err = service.DeleteLogEntry(st, "1999-01-01", "e1")
	if err != nil {
		t.Fatalf("delete on missing date: %v", err)
	}
	if len(day.Entries) != 0 {
		t.Fatalf("expected empty log for missing date, got %+v", day)
	}
}

func TestNewFoodEntryScalesPer100g(t *testing.T) {
	t.Parallel()
	food := model.FoodItem{
		ID: "f1", Name: "Rice (cooked)", Category: model.CategoryCarb,
		CarbsPer100g: 28, ProteinPer100g: 2.7, FatPer100g: 0.3,
	}
	entry := service.NewFoodEntry(food, 150, time.Now())

	if entry.Carbs != 42 {
		t.Fatalf("expected 42g carbs for 150g at 28/100g, got %d", entry.Carbs)
	}
	if entry.Protein != 4 { // round(4.05)
		t.Fatalf("expected 4g protein, got %d", entry.Protein)
	}
	if entry.Fat != 0 { // round(0.45)
		t.Fatalf("expected 0g fat, got %d", entry.Fat)
	}
	if entry.FoodID != "f1" || entry.FoodName != "Rice (cooked)" || entry.WeightGrams != 150 {
		t.Fatalf("entry did not snapshot food fields: %+v", entry)
	}
	if entry.ID == "" {
		t.Fatalf("expected generated entry id")
	}
}

func TestQuickAndManualSentinels(t *testing.T) {
	t.Parallel()
	now := time.Now()

	quick := service.NewQuickEntry(model.CategoryProtein, 25, now)
	if quick.FoodID != "quick_protein" || quick.FoodName != "QUICK PROTEIN" {
		t.Fatalf("unexpected quick sentinel: %+v", quick)
	}
	if quick.WeightGrams != 0 || quick.Carbs != 0 || quick.Protein != 25 || quick.Fat != 0 {
		t.Fatalf("quick entry should set only its own macro: %+v", quick)
	}

	manual := service.NewManualEntry(10, 20, 30, now)
	if manual.FoodID != service.FoodIDManualOverride || manual.FoodName != "MANUAL ENTRY" {
		t.Fatalf("unexpected manual sentinel: %+v", manual)
	}
	if manual.Carbs != 10 || manual.Protein != 20 || manual.Fat != 30 || manual.WeightGrams != 0 {
		t.Fatalf("unexpected manual macros: %+v", manual)
	}
}

func TestMutationsRefuseUnreadyStore(t *testing.T) {
	t.Parallel()
	st := newRawStore(t)

	if _, err := service.AddLogEntry(st, "2024-06-01", model.LogEntry{ID: "e1"}); !errors.Is(err, service.ErrNotReady) {
		t.Fatalf("expected ErrNotReady before initialization, got %v", err)
	}
	if err := service.ToggleChecklistItem(st, "leg_day", "l1", true); !errors.Is(err, service.ErrNotReady) {
		t.Fatalf("expected ErrNotReady for checklist mutation, got %v", err)
	}
}
