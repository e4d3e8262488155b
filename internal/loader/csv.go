package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/bikeshare/internal/model"
)

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

// ReadTrips parses a delimited trip file. Headers are matched by name;
// unknown columns are ignored. The returned set lists the known columns
// present in the header.
func ReadTrips(r io.Reader) ([]model.TripRecord, map[model.Column]bool, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("trip file is empty")
		}
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}
	index := columnIndex(header)
	for _, required := range []model.Column{model.ColStartTime, model.ColDuration} {
		if _, ok := index[required]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", required)
		}
	}
	columns := make(map[model.Column]bool, len(index))
	for col := range index {
		columns[col] = true
	}

	var trips []model.TripRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read trip file: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if isBlank(row) {
			continue
		}
		trip, err := parseTrip(row, index)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		trips = append(trips, trip)
	}
	return trips, columns, nil
}

func columnIndex(header []string) map[model.Column]int {
	index := map[model.Column]int{}
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		for _, col := range model.KnownColumns {
			if strings.EqualFold(name, string(col)) {
				if _, dup := index[col]; !dup {
					index[col] = i
				}
			}
		}
	}
	return index
}

func parseTrip(row []string, index map[model.Column]int) (model.TripRecord, error) {
	field := func(col model.Column) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var trip model.TripRecord
	start, err := parseTime(field(model.ColStartTime))
	if err != nil {
		return trip, err
	}
	trip.StartTime = start
	trip.Month = int(start.Month())
	trip.DayOfWeek = start.Weekday().String()

	duration, err := parseDuration(field(model.ColDuration))
	if err != nil {
		return trip, err
	}
	trip.Duration = duration

	trip.StartStation = field(model.ColStartStation)
	trip.EndStation = field(model.ColEndStation)
	trip.UserType = field(model.ColUserType)
	trip.Gender = field(model.ColGender)

	if raw := field(model.ColBirthYear); raw != "" {
		year, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return trip, fmt.Errorf("invalid birth year %q", raw)
		}
		y := int(year)
		trip.BirthYear = &y
	}
	return trip, nil
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("missing start time")
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start time %q", raw)
}

func parseDuration(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("missing trip duration")
	}
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("invalid trip duration %q", raw)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("negative trip duration %q", raw)
	}
	return int64(math.Round(seconds)), nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
