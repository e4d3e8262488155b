package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/bikeshare/internal/model"
)

// StationResult holds the most popular stations and trip.
type StationResult struct {
	Start    string
	End      string
	Combined string
}

// ComputeStations finds the most frequent start, end and start-end pair.
// Records with a blank station are left out of the affected counts.
func ComputeStations(ds model.Dataset) (StationResult, error) {
	if err := require(ds, model.ColStartStation, model.ColEndStation); err != nil {
		return StationResult{}, err
	}
	if ds.Len() == 0 {
		return StationResult{}, ErrNoData
	}
	starts := make([]string, 0, ds.Len())
	ends := make([]string, 0, ds.Len())
	combined := make([]string, 0, ds.Len())
	for _, r := range ds.Records {
		if r.StartStation != "" {
			starts = append(starts, r.StartStation)
		}
		if r.EndStation != "" {
			ends = append(ends, r.EndStation)
		}
		if r.StartStation != "" && r.EndStation != "" {
			combined = append(combined, r.CombinedStation())
		}
	}
	var res StationResult
	res.Start, _ = Mode(starts)
	res.End, _ = Mode(ends)
	res.Combined, _ = Mode(combined)
	return res, nil
}

// StationStats prints the most popular stations and trip.
func StationStats(w io.Writer, ds model.Dataset) error {
	res, err := ComputeStations(ds)
	if err != nil {
		return noDataOr(w, err)
	}
	return writeLines(w,
		"Most frequent start station:",
		"    "+orNA(res.Start),
		"Most frequent end station:",
		"    "+orNA(res.End),
		"Most frequent combination of start station and end station trip:",
		"    "+orNA(res.Combined),
	)
}

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}

// writeLines writes each line followed by a newline.
func writeLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
