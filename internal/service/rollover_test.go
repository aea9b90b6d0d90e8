package service_test

import (
	"testing"
	"time"

	"github.com/saadjs/apexfuel/internal/model"
	"github.com/saadjs/apexfuel/internal/service"
)

func TestInitializeSeedsFirstRun(t *testing.T) {
	t.Parallel()
	st := newRawStore(t)
	now := time.Now()

	if err := service.Initialize(st, nil, now); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	foods, err := service.ListFoods(st)
	if err != nil {
		t.Fatalf("list foods: %v", err)
	}
	if len(foods) != 15 {
		t.Fatalf("expected 15 seeded foods, got %d", len(foods))
	}
	cats, err := service.Checklists(st)
	if err != nil {
		t.Fatalf("list checklists: %v", err)
	}
	if len(cats) != 3 {
		t.Fatalf("expected 3 seeded checklist categories, got %d", len(cats))
	}
	marker, ok, err := st.LastActiveDate()
	if err != nil || !ok {
		t.Fatalf("marker not stamped on first run: ok=%t err=%v", ok, err)
	}
	if marker != service.DateKey(now) {
		t.Fatalf("marker = %q, want today", marker)
	}
}

func TestInitializeResetsDailyCategoriesOnStaleMarker(t *testing.T) {
	t.Parallel()
	st := newRawStore(t)

	cats := []model.ChecklistCategory{
		{ID: "warmup", Title: "Warmup", ResetFrequency: model.ResetDaily, Items: []model.ChecklistItem{
			{ID: "w1", Text: "Stretch", Checked: true},
			{ID: "w2", Text: "Hydrate", Checked: true},
		}},
		{ID: "gear", Title: "Gear", ResetFrequency: model.ResetManual, Items: []model.ChecklistItem{
			{ID: "g1", Text: "Pack shoes", Checked: true},
		}},
	}
	if err := st.PutChecklists(cats, "2024-01-01"); err != nil {
		t.Fatalf("seed checklists: %v", err)
	}

	now := time.Now()
	if err := service.Initialize(st, nil, now); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	got, err := service.Checklists(st)
	if err != nil {
		t.Fatalf("list checklists: %v", err)
	}
	for _, it := range findCategory(t, got, "warmup").Items {
		if it.Checked {
			t.Fatalf("daily item %s survived the day-boundary reset", it.ID)
		}
	}
	if !findCategory(t, got, "gear").Items[0].Checked {
		t.Fatalf("manual category must keep its state across days")
	}
	marker, _, _ := st.LastActiveDate()
	if marker != service.DateKey(now) {
		t.Fatalf("marker = %q, want today after reset", marker)
	}
}

func TestInitializeKeepsSameDayProgress(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if err := service.ToggleChecklistItem(st, "leg_day", "l1", true); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// A second call on the same store is a no-op thanks to the ready gate.
	if err := service.Initialize(st, nil, time.Now()); err != nil {
		t.Fatalf("re-initialize: %v", err)
	}
	cats, _ := service.Checklists(st)
	if !findCategory(t, cats, "leg_day").Items[0].Checked {
		t.Fatalf("re-initialization wiped same-day progress")
	}
}

func TestNormalizeChecklistsDefaultsFrequency(t *testing.T) {
	t.Parallel()

	cats := []model.ChecklistCategory{
		{ID: "a", ResetFrequency: ""},
		{ID: "b", ResetFrequency: "WEEKLY"},
		{ID: "c", ResetFrequency: model.ResetManual},
	}
	cats, changed := service.NormalizeChecklists(cats)
	if !changed {
		t.Fatalf("expected normalization to report a change")
	}
	if cats[0].ResetFrequency != model.ResetDaily || cats[1].ResetFrequency != model.ResetDaily {
		t.Fatalf("invalid frequencies not defaulted: %+v", cats)
	}
	if cats[2].ResetFrequency != model.ResetManual {
		t.Fatalf("valid MANUAL frequency must be left alone")
	}

	if _, changed := service.NormalizeChecklists(cats); changed {
		t.Fatalf("already-normal records must not report a change")
	}
}
