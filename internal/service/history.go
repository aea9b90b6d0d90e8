package service

import (
	"fmt"
	"time"

	"github.com/saadjs/apexfuel/internal/store"
)

// HistoryPoint is one day of the projection: a short chart label plus the
// full date key so consumers can range-filter.
type HistoryPoint struct {
	Label    string `json:"date"`
	FullDate string `json:"fullDate"`
	Carbs    int    `json:"carbs"`
	Protein  int    `json:"protein"`
	Fat      int    `json:"fat"`
}

// ProjectHistory derives a time series of exactly windowDays consecutive
// calendar days ending today inclusive, oldest first. Days without a log
// project as zeros. The walk uses calendar arithmetic, so month and year
// boundaries and DST transitions come out right.
func ProjectHistory(st *store.Store, windowDays int, today time.Time) ([]HistoryPoint, error) {
	if windowDays < 1 {
		return nil, fmt.Errorf("history window must be >= 1 day, got %d", windowDays)
	}
	logs, err := st.Logs()
	if err != nil {
		return nil, err
	}
	points := make([]HistoryPoint, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		key := DateKey(today.AddDate(0, 0, -i))
		p := HistoryPoint{Label: key[5:], FullDate: key}
		if day, ok := logs[key]; ok {
			p.Carbs = day.TotalCarbs
			p.Protein = day.TotalProtein
			p.Fat = day.TotalFat
		}
		points = append(points, p)
	}
	return points, nil
}
