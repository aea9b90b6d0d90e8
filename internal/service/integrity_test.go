package service_test

import (
	"testing"

	"github.com/saadjs/apexfuel/internal/model"
	"github.com/saadjs/apexfuel/internal/service"
)

func TestDoctorDetectsAndFixesDrift(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	logs := map[string]model.DailyLog{
		"2024-04-01": {
			Date: "2024-04-01",
			Entries: []model.LogEntry{
				{ID: "e1", Carbs: 50, Protein: 10, Fat: 5},
			},
			// Stored totals disagree with the entries.
			TotalCarbs: 999, TotalProtein: 10, TotalFat: 5,
		},
		"2024-04-02": {
			// Date field disagrees with the map key.
			Date: "2024-04-99",
			Entries: []model.LogEntry{
				{ID: "e2", Carbs: 20, Protein: 8, Fat: 2},
			},
			TotalCarbs: 20, TotalProtein: 8, TotalFat: 2,
		},
	}
	if err := st.PutLogs(logs); err != nil {
		t.Fatalf("seed logs: %v", err)
	}

	report, err := service.RunDoctor(st, false)
	if err != nil {
		t.Fatalf("doctor check: %v", err)
	}
	if report.DriftedDays != 1 || report.MislabeledDays != 1 {
		t.Fatalf("unexpected check report: %+v", report)
	}
	if report.FixedDays != 0 {
		t.Fatalf("check without fix must not rewrite anything: %+v", report)
	}

	report, err = service.RunDoctor(st, true)
	if err != nil {
		t.Fatalf("doctor fix: %v", err)
	}
	if report.FixedDays != 2 {
		t.Fatalf("expected 2 fixed days, got %+v", report)
	}

	day, err := service.LogForDate(st, "2024-04-01")
	if err != nil {
		t.Fatalf("reload day: %v", err)
	}
	if day.TotalCarbs != 50 {
		t.Fatalf("drifted totals not repaired: %+v", day)
	}
	day, _ = service.LogForDate(st, "2024-04-02")
	if day.Date != "2024-04-02" {
		t.Fatalf("mislabeled date not repaired: %+v", day)
	}

	report, err = service.RunDoctor(st, false)
	if err != nil {
		t.Fatalf("doctor recheck: %v", err)
	}
	if report.DriftedDays != 0 || report.MislabeledDays != 0 {
		t.Fatalf("issues remain after fix: %+v", report)
	}
}

func TestDoctorFlagsInvalidFrequencies(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	cats, _ := service.Checklists(st)
	cats[0].ResetFrequency = "HOURLY"
	if err := st.PutChecklists(cats, "2024-01-01"); err != nil {
		t.Fatalf("seed checklists: %v", err)
	}

	report, err := service.RunDoctor(st, true)
	if err != nil {
		t.Fatalf("doctor fix: %v", err)
	}
	if report.InvalidFrequencies != 1 || report.FixedCategories != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	cats, _ = service.Checklists(st)
	if cats[0].ResetFrequency != model.ResetDaily {
		t.Fatalf("invalid frequency not normalized: %+v", cats[0])
	}
}
