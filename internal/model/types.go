// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// All is the filter value that disables a month or day filter.
const All = "all"

// City identifies one of the supported bike share systems.
type City string

// Supported cities.
const (
	Chicago    City = "chicago"
	NewYork    City = "new york"
	Washington City = "washington"
)

// Cities lists the supported cities in prompt order.
var Cities = []City{Chicago, NewYork, Washington}

// Title returns the display name of the city.
func (c City) Title() string {
	words := strings.Fields(string(c))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// MonthNames lists selectable month names in calendar order.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DayAbbrevs lists the three-letter weekday abbreviations accepted by the day filter.
var DayAbbrevs = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var dayNames = map[string]time.Weekday{
	"Mon": time.Monday,
	"Tue": time.Tuesday,
	"Wed": time.Wednesday,
	"Thu": time.Thursday,
	"Fri": time.Friday,
	"Sat": time.Saturday,
	"Sun": time.Sunday,
}

// DayName resolves a weekday abbreviation to its full name.
func DayName(abbrev string) (string, bool) {
	wd, ok := dayNames[abbrev]
	if !ok {
		return "", false
	}
	return wd.String(), true
}

// MonthIndex returns the 1-based calendar index of a month name.
func MonthIndex(name string) (int, bool) {
	for i, m := range MonthNames {
		if m == name {
			return i + 1, true
		}
	}
	return 0, false
}

// Filter selects the trips analysed in one session cycle.
type Filter struct {
	City  City
	Month string
	Day   string
}

// Validate checks that at most one of Month and Day is active.
func (f Filter) Validate() error {
	if f.Month == "" || f.Day == "" {
		return fmt.Errorf("filter month and day must be set (use %q)", All)
	}
	if f.Month != All && f.Day != All {
		return fmt.Errorf("cannot filter by month %q and day %q at the same time", f.Month, f.Day)
	}
	if f.Month != All {
		if _, ok := MonthIndex(f.Month); !ok {
			return fmt.Errorf("unknown month %q", f.Month)
		}
	}
	if f.Day != All {
		if _, ok := DayName(f.Day); !ok {
			return fmt.Errorf("unknown day %q", f.Day)
		}
	}
	return nil
}

func (f Filter) String() string {
	switch {
	case f.Month != All && f.Month != "":
		return fmt.Sprintf("%s, month=%s", f.City.Title(), f.Month)
	case f.Day != All && f.Day != "":
		return fmt.Sprintf("%s, day=%s", f.City.Title(), f.Day)
	default:
		return fmt.Sprintf("%s, no time filter", f.City.Title())
	}
}

// Column names a field of the backing trip file.
type Column string

// Known trip file columns.
const (
	ColStartTime    Column = "Start Time"
	ColDuration     Column = "Trip Duration"
	ColStartStation Column = "Start Station"
	ColEndStation   Column = "End Station"
	ColUserType     Column = "User Type"
	ColGender       Column = "Gender"
	ColBirthYear    Column = "Birth Year"
)

// KnownColumns lists the columns the loader understands, in display order.
var KnownColumns = []Column{
	ColStartTime,
	ColDuration,
	ColStartStation,
	ColEndStation,
	ColUserType,
	ColGender,
	ColBirthYear,
}

// TripRecord is one observed trip.
type TripRecord struct {
	StartTime    time.Time
	Duration     int64
	StartStation string
	EndStation   string
	UserType     string
	Gender       string
	BirthYear    *int

	// Derived at load time.
	Month     int
	DayOfWeek string
}

// Hour returns the start hour of the trip (0-23).
func (r TripRecord) Hour() int {
	return r.StartTime.Hour()
}

// CombinedStation joins start and end station names.
func (r TripRecord) CombinedStation() string {
	return r.StartStation + " - " + r.EndStation
}

// Dataset is the filtered sequence of trips for one city.
type Dataset struct {
	City    City
	Filter  Filter
	Columns map[Column]bool
	Records []TripRecord
}

// Has reports whether the backing file carried the column.
func (d Dataset) Has(col Column) bool {
	return d.Columns[col]
}

// Len returns the number of records.
func (d Dataset) Len() int {
	return len(d.Records)
}

// Slice returns records in [from, to) clamped to the dataset bounds.
func (d Dataset) Slice(from, to int) []TripRecord {
	if from < 0 {
		from = 0
	}
	if to > len(d.Records) {
		to = len(d.Records)
	}
	if from >= to {
		return nil
	}
	return d.Records[from:to]
}

// Config defines session settings.
type Config struct {
	DataDir  string
	Months   int
	PageSize int
}
