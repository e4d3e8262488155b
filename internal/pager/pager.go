// Package pager shows raw trip records a page at a time.
package pager

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/verte-zerg/bikeshare/internal/console"
	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/render"
)

// DefaultPageSize is the number of records shown per page.
const DefaultPageSize = 5

const timeLayout = "2006-01-02 15:04:05"

// Page asks whether to show the next size records and prints them on "yes".
// Any other answer ends paging. It returns the final offset.
func Page(ctx context.Context, c *console.Console, ds model.Dataset, size int) (int, error) {
	if size <= 0 {
		size = DefaultPageSize
	}
	prompt := fmt.Sprintf("\nWould you like to see %d consecutive data records? Please type yes or no.\n", size)
	offset := 0
	for {
		answer, err := c.Ask(ctx, prompt)
		if err != nil {
			return offset, err
		}
		if strings.ToLower(answer) != "yes" {
			return offset, nil
		}
		records := ds.Slice(offset, offset+size)
		if len(records) == 0 {
			c.Println(render.Muted("No more records."))
		} else {
			headers, rows := Rows(ds, records, offset)
			for _, line := range render.Table(headers, rows, map[int]bool{0: true}, render.TerminalWidth()) {
				c.Println(line)
			}
		}
		offset += size
	}
}

// Rows formats records for display. Columns absent from the dataset are
// omitted. Row labels start at first.
func Rows(ds model.Dataset, records []model.TripRecord, first int) ([]string, [][]string) {
	headers := []string{"#"}
	for _, col := range model.KnownColumns {
		if ds.Has(col) {
			headers = append(headers, string(col))
		}
	}
	headers = append(headers, "month", "day_of_week")

	rows := make([][]string, 0, len(records))
	for i, r := range records {
		row := []string{strconv.Itoa(first + i)}
		for _, col := range model.KnownColumns {
			if ds.Has(col) {
				row = append(row, cell(r, col))
			}
		}
		row = append(row, strconv.Itoa(r.Month), r.DayOfWeek)
		rows = append(rows, row)
	}
	return headers, rows
}

func cell(r model.TripRecord, col model.Column) string {
	switch col {
	case model.ColStartTime:
		return r.StartTime.Format(timeLayout)
	case model.ColDuration:
		return strconv.FormatInt(r.Duration, 10)
	case model.ColStartStation:
		return r.StartStation
	case model.ColEndStation:
		return r.EndStation
	case model.ColUserType:
		return r.UserType
	case model.ColGender:
		return r.Gender
	case model.ColBirthYear:
		if r.BirthYear == nil {
			return ""
		}
		return strconv.Itoa(*r.BirthYear)
	default:
		return ""
	}
}
