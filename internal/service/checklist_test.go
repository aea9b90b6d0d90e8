package service_test

import (
	"testing"
	"time"

	"github.com/saadjs/apexfuel/internal/model"
	"github.com/saadjs/apexfuel/internal/service"
)

func findCategory(t *testing.T, cats []model.ChecklistCategory, id string) model.ChecklistCategory {
	t.Helper()
	for _, c := range cats {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("category %q not found", id)
	return model.ChecklistCategory{}
}

func TestToggleTwiceRestoresState(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if err := service.ToggleChecklistItem(st, "leg_day", "l2", true); err != nil {
		t.Fatalf("check item: %v", err)
	}
	cats, err := service.Checklists(st)
	if err != nil {
		t.Fatalf("list checklists: %v", err)
	}
	leg := findCategory(t, cats, "leg_day")
	for _, it := range leg.Items {
		want := it.ID == "l2"
		if it.Checked != want {
			t.Fatalf("item %s checked=%t, want %t", it.ID, it.Checked, want)
		}
	}

	if err := service.ToggleChecklistItem(st, "leg_day", "l2", false); err != nil {
		t.Fatalf("uncheck item: %v", err)
	}
	cats, _ = service.Checklists(st)
	for _, it := range findCategory(t, cats, "leg_day").Items {
		if it.Checked {
			t.Fatalf("item %s should be back to unchecked", it.ID)
		}
	}
}

func TestResetCategoryUnchecksAllItems(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	for _, id := range []string{"p1", "p2", "p3"} {
		if err := service.ToggleChecklistItem(st, "push_day", id, true); err != nil {
			t.Fatalf("check %s: %v", id, err)
		}
	}
	if err := service.ResetChecklistCategory(st, "push_day"); err != nil {
		t.Fatalf("reset category: %v", err)
	}
	cats, _ := service.Checklists(st)
	for _, it := range findCategory(t, cats, "push_day").Items {
		if it.Checked {
			t.Fatalf("item %s still checked after reset", it.ID)
		}
	}
}

func TestMissingIDsAreSilentNoops(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	before, _ := service.Checklists(st)
	if err := service.ToggleChecklistItem(st, "no_such_cat", "l1", true); err != nil {
		t.Fatalf("toggle unknown category: %v", err)
	}
	if err := service.ToggleChecklistItem(st, "leg_day", "no_such_item", true); err != nil {
		t.Fatalf("toggle unknown item: %v", err)
	}
	if err := service.DeleteChecklistCategory(st, "no_such_cat"); err != nil {
		t.Fatalf("delete unknown category: %v", err)
	}
	if err := service.DeleteChecklistItem(st, "leg_day", "no_such_item"); err != nil {
		t.Fatalf("delete unknown item: %v", err)
	}
	after, _ := service.Checklists(st)
	if len(before) != len(after) {
		t.Fatalf("no-op operations changed category count")
	}
	for i := range before {
		if len(before[i].Items) != len(after[i].Items) {
			t.Fatalf("no-op operations changed items of %s", before[i].ID)
		}
	}
}

func TestCategoryAndItemLifecycle(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	cat, err := service.AddChecklistCategory(st, "Race Day", model.ResetManual)
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	if cat.ResetFrequency != model.ResetManual || cat.Icon != "Box" {
		t.Fatalf("unexpected new category: %+v", cat)
	}

	item, err := service.AddChecklistItem(st, cat.ID, "Fuel bottles")
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	cats, _ := service.Checklists(st)
	got := findCategory(t, cats, cat.ID)
	if len(got.Items) != 1 || got.Items[0].Text != "Fuel bottles" || got.Items[0].Checked {
		t.Fatalf("unexpected items: %+v", got.Items)
	}

	daily := model.ResetDaily
	if err := service.UpdateChecklistCategory(st, cat.ID, service.ChecklistCategoryUpdate{ResetFrequency: &daily}); err != nil {
		t.Fatalf("update category: %v", err)
	}
	cats, _ = service.Checklists(st)
	if findCategory(t, cats, cat.ID).ResetFrequency != model.ResetDaily {
		t.Fatalf("frequency update not applied")
	}

	if err := service.DeleteChecklistItem(st, cat.ID, item.ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	if err := service.DeleteChecklistCategory(st, cat.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	cats, _ = service.Checklists(st)
	for _, c := range cats {
		if c.ID == cat.ID {
			t.Fatalf("category %s should be deleted", cat.ID)
		}
	}
}

func TestChecklistPersistenceBumpsMarker(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if err := service.ToggleChecklistItem(st, "cardio", "h1", true); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	marker, ok, err := st.LastActiveDate()
	if err != nil || !ok {
		t.Fatalf("marker missing after checklist persistence: ok=%t err=%v", ok, err)
	}
	if marker != service.DateKey(time.Now()) {
		t.Fatalf("marker = %q, want today", marker)
	}
}
