package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/saadjs/apexfuel/internal/model"
	"github.com/saadjs/apexfuel/internal/store"
)

// Initialize runs the load-time lifecycle exactly once per process: seed
// missing documents, normalize legacy checklist records, apply the
// day-boundary reset, stamp the last-active-date marker, and open the ready
// gate. Calling it again after the store is ready is a no-op, so same-day
// progress is never wiped by a re-run.
func Initialize(st *store.Store, logger *zap.Logger, now time.Time) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if st.Ready() {
		return nil
	}
	today := DateKey(now)

	foods, haveFoods, err := st.Foods()
	if err != nil {
		return err
	}
	if !haveFoods {
		logger.Info("seeding default food library", zap.Int("foods", len(foods)))
		if err := st.PutFoods(foods); err != nil {
			return err
		}
	}

	cats, haveChecklists, err := st.Checklists()
	if err != nil {
		return err
	}
	cats, normalized := NormalizeChecklists(cats)
	if normalized {
		logger.Info("normalized legacy checklist records", zap.Int("categories", len(cats)))
	}

	marker, haveMarker, err := st.LastActiveDate()
	if err != nil {
		return err
	}
	stale := !haveMarker || marker != today
	if stale {
		logger.Info("new day detected, resetting daily checklists",
			zap.String("last_active_date", marker),
			zap.String("today", today))
		cats = applyDailyReset(cats)
	}

	// Persist when anything changed, and always on first run so the marker
	// exists from then on.
	if stale || normalized || !haveChecklists {
		if err := st.PutChecklists(cats, today); err != nil {
			return err
		}
	}

	st.MarkReady()
	return nil
}

// NormalizeChecklists defaults absent or unrecognized reset frequencies to
// DAILY. This is the single schema-tolerance pass for legacy documents;
// business logic downstream can rely on the field being present.
func NormalizeChecklists(cats []model.ChecklistCategory) ([]model.ChecklistCategory, bool) {
	changed := false
	for i := range cats {
		switch cats[i].ResetFrequency {
		case model.ResetDaily, model.ResetManual:
		default:
			cats[i].ResetFrequency = model.ResetDaily
			changed = true
		}
	}
	return cats, changed
}

// applyDailyReset unchecks every item of every DAILY category. MANUAL
// categories keep their state across days.
func applyDailyReset(cats []model.ChecklistCategory) []model.ChecklistCategory {
	for ci := range cats {
		if cats[ci].ResetFrequency != model.ResetDaily {
			continue
		}
		for ii := range cats[ci].Items {
			cats[ci].Items[ii].Checked = false
		}
	}
	return cats
}
