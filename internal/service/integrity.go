package service

import (
	"time"

	"github.com/saadjs/apexfuel/internal/model"
	"github.com/saadjs/apexfuel/internal/store"
)

type DoctorReport struct {
	DriftedDays        int `json:"drifted_days"`
	MislabeledDays     int `json:"mislabeled_days"`
	InvalidFrequencies int `json:"invalid_frequencies"`
	FixedDays          int `json:"fixed_days,omitempty"`
	FixedCategories    int `json:"fixed_categories,omitempty"`
}

// RunDoctor checks the derived state the engine promises to keep consistent:
// every day's stored totals must equal the recomputed sums, the log's date
// field must match its map key, and every checklist category must carry a
// valid reset frequency. With fix set, it rewrites the offending records.
func RunDoctor(st *store.Store, fix bool) (DoctorReport, error) {
	report := DoctorReport{}
	if err := ensureReady(st); err != nil {
		return report, err
	}

	logs, err := st.Logs()
	if err != nil {
		return report, err
	}
	logsDirty := false
	for key, day := range logs {
		recomputed := day
		recomputeTotals(&recomputed)
		drifted := recomputed.TotalCarbs != day.TotalCarbs ||
			recomputed.TotalProtein != day.TotalProtein ||
			recomputed.TotalFat != day.TotalFat
		mislabeled := day.Date != key
		if drifted {
			report.DriftedDays++
		}
		if mislabeled {
			report.MislabeledDays++
		}
		if fix && (drifted || mislabeled) {
			recomputed.Date = key
			logs[key] = recomputed
			report.FixedDays++
			logsDirty = true
		}
	}
	if logsDirty {
		if err := st.PutLogs(logs); err != nil {
			return report, err
		}
	}

	cats, _, err := st.Checklists()
	if err != nil {
		return report, err
	}
	for _, c := range cats {
		if c.ResetFrequency != model.ResetDaily && c.ResetFrequency != model.ResetManual {
			report.InvalidFrequencies++
		}
	}
	if fix && report.InvalidFrequencies > 0 {
		cats, _ = NormalizeChecklists(cats)
		if err := st.PutChecklists(cats, DateKey(time.Now())); err != nil {
			return report, err
		}
		report.FixedCategories = report.InvalidFrequencies
	}

	return report, nil
}
