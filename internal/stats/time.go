package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/bikeshare/internal/model"
)

// TimeResult holds the most frequent travel times.
type TimeResult struct {
	Month     int
	DayOfWeek string
	Hour      int
}

// ComputeTime finds the most frequent month, weekday and start hour.
func ComputeTime(ds model.Dataset) (TimeResult, error) {
	if err := require(ds, model.ColStartTime); err != nil {
		return TimeResult{}, err
	}
	if ds.Len() == 0 {
		return TimeResult{}, ErrNoData
	}
	months := make([]int, 0, ds.Len())
	days := make([]string, 0, ds.Len())
	hours := make([]int, 0, ds.Len())
	for _, r := range ds.Records {
		months = append(months, r.Month)
		days = append(days, r.DayOfWeek)
		hours = append(hours, r.Hour())
	}
	var res TimeResult
	res.Month, _ = Mode(months)
	res.DayOfWeek, _ = Mode(days)
	res.Hour, _ = Mode(hours)
	return res, nil
}

// TimeStats prints the most frequent times of travel.
func TimeStats(w io.Writer, ds model.Dataset) error {
	res, err := ComputeTime(ds)
	if err != nil {
		return noDataOr(w, err)
	}
	monthLabel := fmt.Sprintf("%d", res.Month)
	if res.Month >= 1 && res.Month <= len(model.MonthNames) {
		monthLabel = fmt.Sprintf("%d (%s)", res.Month, model.MonthNames[res.Month-1])
	}
	return writeLines(w,
		fmt.Sprintf("Most frequent month: %s", monthLabel),
		fmt.Sprintf("Most frequent day of week: %s", res.DayOfWeek),
		fmt.Sprintf("Most frequent start hour: %d", res.Hour),
	)
}
