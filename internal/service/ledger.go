package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saadjs/apexfuel/internal/model"
	"github.com/saadjs/apexfuel/internal/store"
)

// Sentinel food ids for entries that do not reference a library food.
const (
	FoodIDManualOverride = "manual_override"
	quickFoodIDPrefix    = "quick_"
)

// AddLogEntry appends an entry to the given day, creating the day lazily, and
// persists the ledger with freshly recomputed totals. The updated day is
// returned.
func AddLogEntry(st *store.Store, date string, entry model.LogEntry) (model.DailyLog, error) {
	if err := ensureReady(st); err != nil {
		return model.DailyLog{}, err
	}
	logs, err := st.Logs()
	if err != nil {
		return model.DailyLog{}, err
	}
	day, ok := logs[date]
	if !ok {
		day = model.DailyLog{Date: date, Entries: []model.LogEntry{}}
	}
	day.Entries = append(append([]model.LogEntry{}, day.Entries...), entry)
	recomputeTotals(&day)
	logs[date] = day
	if err := st.PutLogs(logs); err != nil {
		return model.DailyLog{}, err
	}
	return day, nil
}

// DeleteLogEntry removes the entry with the given id from the day's log. A
// missing date or id is a silent no-op. The day object is kept even when its
// last entry goes, so the date stays present in the ledger with zero totals.
func DeleteLogEntry(st *store.Store, date, entryID string) (model.DailyLog, error) {
	if err := ensureReady(st); err != nil {
		return model.DailyLog{}, err
	}
	logs, err := st.Logs()
	if err != nil {
		return model.DailyLog{}, err
	}
	day, ok := logs[date]
	if !ok {
		return model.DailyLog{Date: date, Entries: []model.LogEntry{}}, nil
	}
	kept := make([]model.LogEntry, 0, len(day.Entries))
	for _, e := range day.Entries {
		if e.ID == entryID {
			continue
		}
		kept = append(kept, e)
	}
	day.Entries = kept
	recomputeTotals(&day)
	logs[date] = day
	if err := st.PutLogs(logs); err != nil {
		return model.DailyLog{}, err
	}
	return day, nil
}

// LogForDate returns the day's log, or an empty one when nothing has been
// logged for that date.
func LogForDate(st *store.Store, date string) (model.DailyLog, error) {
	logs, err := st.Logs()
	if err != nil {
		return model.DailyLog{}, err
	}
	day, ok := logs[date]
	if !ok {
		return model.DailyLog{Date: date, Entries: []model.LogEntry{}}, nil
	}
	return day, nil
}

// NewFoodEntry builds an entry from a library food and a weight, scaling the
// per-100g densities and snapshotting the food's name so later library edits
// never rewrite history.
func NewFoodEntry(food model.FoodItem, weightGrams int, now time.Time) model.LogEntry {
	scale := float64(weightGrams) / 100
	return model.LogEntry{
		ID:          uuid.NewString(),
		FoodID:      food.ID,
		FoodName:    food.Name,
		Timestamp:   now.UnixMilli(),
		WeightGrams: weightGrams,
		Carbs:       roundGrams(scale * food.CarbsPer100g),
		Protein:     roundGrams(scale * food.ProteinPer100g),
		Fat:         roundGrams(scale * food.FatPer100g),
	}
}

// NewQuickEntry builds a single-macro entry with the quick sentinel food id.
// Weight stays zero; the grams go straight into the chosen macro.
func NewQuickEntry(kind model.FoodCategory, grams int, now time.Time) model.LogEntry {
	entry := model.LogEntry{
		ID:        uuid.NewString(),
		FoodID:    quickFoodIDPrefix + strings.ToLower(string(kind)),
		FoodName:  "QUICK " + strings.ToUpper(string(kind)),
		Timestamp: now.UnixMilli(),
	}
	switch kind {
	case model.CategoryCarb:
		entry.Carbs = grams
	case model.CategoryProtein:
		entry.Protein = grams
	case model.CategoryFat:
		entry.Fat = grams
	}
	return entry
}

// NewManualEntry builds a manual override entry carrying explicit macro grams.
func NewManualEntry(carbs, protein, fat int, now time.Time) model.LogEntry {
	return model.LogEntry{
		ID:        uuid.NewString(),
		FoodID:    FoodIDManualOverride,
		FoodName:  "MANUAL ENTRY",
		Timestamp: now.UnixMilli(),
		Carbs:     carbs,
		Protein:   protein,
		Fat:       fat,
	}
}

// recomputeTotals rebuilds the day's totals from the full entry list. Totals
// are never adjusted incrementally.
func recomputeTotals(day *model.DailyLog) {
	day.TotalCarbs, day.TotalProtein, day.TotalFat = 0, 0, 0
	for _, e := range day.Entries {
		day.TotalCarbs += e.Carbs
		day.TotalProtein += e.Protein
		day.TotalFat += e.Fat
	}
}
