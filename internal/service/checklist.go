package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/saadjs/apexfuel/internal/model"
	"github.com/saadjs/apexfuel/internal/store"
)

// Checklist operations replace by id over nested ordered sequences. Identity
// is by id, never by position, and every missing-id case is a silent no-op.

func Checklists(st *store.Store) ([]model.ChecklistCategory, error) {
	cats, _, err := st.Checklists()
	return cats, err
}

// ToggleChecklistItem sets a single item's checked state.
func ToggleChecklistItem(st *store.Store, catID, itemID string, checked bool) error {
	return mutateChecklists(st, func(cats []model.ChecklistCategory) []model.ChecklistCategory {
		for ci := range cats {
			if cats[ci].ID != catID {
				continue
			}
			for ii := range cats[ci].Items {
				if cats[ci].Items[ii].ID == itemID {
					cats[ci].Items[ii].Checked = checked
				}
			}
		}
		return cats
	})
}

// ResetChecklistCategory unchecks every item in one category.
func ResetChecklistCategory(st *store.Store, catID string) error {
	return mutateChecklists(st, func(cats []model.ChecklistCategory) []model.ChecklistCategory {
		for ci := range cats {
			if cats[ci].ID != catID {
				continue
			}
			for ii := range cats[ci].Items {
				cats[ci].Items[ii].Checked = false
			}
		}
		return cats
	})
}

// AddChecklistCategory appends a new empty category. The icon is an opaque
// display hint and defaults to "Box", matching new user-created categories.
func AddChecklistCategory(st *store.Store, title string, freq model.ResetFrequency) (model.ChecklistCategory, error) {
	if err := ensureReady(st); err != nil {
		return model.ChecklistCategory{}, err
	}
	if freq != model.ResetManual {
		freq = model.ResetDaily
	}
	cat := model.ChecklistCategory{
		ID:             uuid.NewString(),
		Title:          title,
		Icon:           "Box",
		ResetFrequency: freq,
		Items:          []model.ChecklistItem{},
	}
	err := mutateChecklists(st, func(cats []model.ChecklistCategory) []model.ChecklistCategory {
		return append(cats, cat)
	})
	if err != nil {
		return model.ChecklistCategory{}, err
	}
	return cat, nil
}

func DeleteChecklistCategory(st *store.Store, id string) error {
	return mutateChecklists(st, func(cats []model.ChecklistCategory) []model.ChecklistCategory {
		kept := make([]model.ChecklistCategory, 0, len(cats))
		for _, c := range cats {
			if c.ID == id {
				continue
			}
			kept = append(kept, c)
		}
		return kept
	})
}

// ChecklistCategoryUpdate is a partial update; nil fields are left alone.
// Reset frequency is currently the only mutable category field.
type ChecklistCategoryUpdate struct {
	ResetFrequency *model.ResetFrequency
}

func UpdateChecklistCategory(st *store.Store, id string, upd ChecklistCategoryUpdate) error {
	return mutateChecklists(st, func(cats []model.ChecklistCategory) []model.ChecklistCategory {
		for ci := range cats {
			if cats[ci].ID != id {
				continue
			}
			if upd.ResetFrequency != nil {
				cats[ci].ResetFrequency = *upd.ResetFrequency
			}
		}
		return cats
	})
}

// AddChecklistItem appends an unchecked item to the category. Unknown
// category ids are a no-op; the returned item is only meaningful when the
// category exists.
func AddChecklistItem(st *store.Store, catID, text string) (model.ChecklistItem, error) {
	if err := ensureReady(st); err != nil {
		return model.ChecklistItem{}, err
	}
	item := model.ChecklistItem{ID: uuid.NewString(), Text: text}
	err := mutateChecklists(st, func(cats []model.ChecklistCategory) []model.ChecklistCategory {
		for ci := range cats {
			if cats[ci].ID == catID {
				cats[ci].Items = append(cats[ci].Items, item)
			}
		}
		return cats
	})
	if err != nil {
		return model.ChecklistItem{}, err
	}
	return item, nil
}

func DeleteChecklistItem(st *store.Store, catID, itemID string) error {
	return mutateChecklists(st, func(cats []model.ChecklistCategory) []model.ChecklistCategory {
		for ci := range cats {
			if cats[ci].ID != catID {
				continue
			}
			kept := make([]model.ChecklistItem, 0, len(cats[ci].Items))
			for _, it := range cats[ci].Items {
				if it.ID == itemID {
					continue
				}
				kept = append(kept, it)
			}
			cats[ci].Items = kept
		}
		return cats
	})
}

func mutateChecklists(st *store.Store, mutate func([]model.ChecklistCategory) []model.ChecklistCategory) error {
	if err := ensureReady(st); err != nil {
		return err
	}
	cats, _, err := st.Checklists()
	if err != nil {
		return err
	}
	cats = mutate(cats)
	return st.PutChecklists(cats, DateKey(time.Now()))
}
