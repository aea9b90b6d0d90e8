package service

import (
	"time"

	"github.com/saadjs/apexfuel/internal/store"
)

type DayTotals struct {
	Date     string `json:"date"`
	Carbs    int    `json:"carbs"`
	Protein  int    `json:"protein"`
	Fat      int    `json:"fat"`
	Calories int    `json:"calories"`
}

type StatsReport struct {
	FromDate          string     `json:"from_date"`
	ToDate            string     `json:"to_date"`
	TotalCarbs        int        `json:"total_carbs"`
	TotalProtein      int        `json:"total_protein"`
	TotalFat          int        `json:"total_fat"`
	DaysWithEntries   int        `json:"days_with_entries"`
	AvgCarbsPerDay    float64    `json:"avg_carbs_per_day"`
	AvgProteinPerDay  float64    `json:"avg_protein_per_day"`
	AvgFatPerDay      float64    `json:"avg_fat_per_day"`
	AvgCaloriesPerDay float64    `json:"avg_calories_per_day"`
	HighestDay        *DayTotals `json:"highest_day,omitempty"`
	LowestDay         *DayTotals `json:"lowest_day,omitempty"`
	Days              []DayTotals `json:"days"`
}

// Stats aggregates the trailing window ending today. Averages are per day
// with entries, not per calendar day, so sparse logging does not dilute them.
// Highest and lowest days rank by derived calories.
func Stats(st *store.Store, windowDays int, today time.Time) (*StatsReport, error) {
	points, err := ProjectHistory(st, windowDays, today)
	if err != nil {
		return nil, err
	}
	logs, err := st.Logs()
	if err != nil {
		return nil, err
	}

	report := &StatsReport{
		FromDate: points[0].FullDate,
		ToDate:   points[len(points)-1].FullDate,
		Days:     make([]DayTotals, 0),
	}
	for _, p := range points {
		day, ok := logs[p.FullDate]
		if !ok || len(day.Entries) == 0 {
			continue
		}
		d := DayTotals{
			Date:     p.FullDate,
			Carbs:    day.TotalCarbs,
			Protein:  day.TotalProtein,
			Fat:      day.TotalFat,
			Calories: Calories(day.TotalCarbs, day.TotalProtein, day.TotalFat),
		}
		report.Days = append(report.Days, d)
		report.TotalCarbs += d.Carbs
		report.TotalProtein += d.Protein
		report.TotalFat += d.Fat
	}
	report.DaysWithEntries = len(report.Days)
	if report.DaysWithEntries == 0 {
		return report, nil
	}

	div := float64(report.DaysWithEntries)
	report.AvgCarbsPerDay = float64(report.TotalCarbs) / div
	report.AvgProteinPerDay = float64(report.TotalProtein) / div
	report.AvgFatPerDay = float64(report.TotalFat) / div
	report.AvgCaloriesPerDay = float64(Calories(report.TotalCarbs, report.TotalProtein, report.TotalFat)) / div

	high, low := report.Days[0], report.Days[0]
	for _, d := range report.Days[1:] {
		if d.Calories > high.Calories {
			high = d
		}
		if d.Calories < low.Calories {
			low = d
		}
	}
	report.HighestDay = &high
	report.LowestDay = &low
	return report, nil
}
