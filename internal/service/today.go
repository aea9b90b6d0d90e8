package service

import (
	"time"

	"github.com/saadjs/apexfuel/internal/store"
)

type TodayStatus struct {
	Date     string `json:"date"`
	Entries  int    `json:"entries"`
	Carbs    int    `json:"carbs"`
	Protein  int    `json:"protein"`
	Fat      int    `json:"fat"`
	Calories int    `json:"calories"`
}

// TodaySummary reports the given day's totals plus derived calories.
func TodaySummary(st *store.Store, today time.Time) (*TodayStatus, error) {
	day, err := LogForDate(st, DateKey(today))
	if err != nil {
		return nil, err
	}
	return &TodayStatus{
		Date:     day.Date,
		Entries:  len(day.Entries),
		Carbs:    day.TotalCarbs,
		Protein:  day.TotalProtein,
		Fat:      day.TotalFat,
		Calories: Calories(day.TotalCarbs, day.TotalProtein, day.TotalFat),
	}, nil
}

// Calories converts macro grams to kcal with the 4/4/9 factors.
func Calories(carbs, protein, fat int) int {
	return carbs*4 + protein*4 + fat*9
}
