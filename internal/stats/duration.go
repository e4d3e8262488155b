package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/bikeshare/internal/model"
)

// DurationResult summarizes trip durations in seconds.
type DurationResult struct {
	Count int
	Total int64
	Mean  float64
	Max   int64
}

// ComputeDuration totals trip durations. An empty dataset yields ErrNoData.
func ComputeDuration(ds model.Dataset) (DurationResult, error) {
	if err := require(ds, model.ColDuration); err != nil {
		return DurationResult{}, err
	}
	if ds.Len() == 0 {
		return DurationResult{}, ErrNoData
	}
	res := DurationResult{Count: ds.Len()}
	for i, r := range ds.Records {
		res.Total += r.Duration
		if i == 0 || r.Duration > res.Max {
			res.Max = r.Duration
		}
	}
	res.Mean = float64(res.Total) / float64(res.Count)
	return res, nil
}

// DurationStats prints total, mean and maximum trip duration.
func DurationStats(w io.Writer, ds model.Dataset) error {
	res, err := ComputeDuration(ds)
	if err != nil {
		return noDataOr(w, err)
	}
	return writeLines(w,
		fmt.Sprintf("Total travel time: %d seconds", res.Total),
		fmt.Sprintf("Mean travel time: %.2f seconds", res.Mean),
		fmt.Sprintf("Maximum travel time: %d seconds", res.Max),
	)
}
