// Package filter validates and collects the city and time filter for a session.
package filter

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/bikeshare/internal/model"
)

// Mode selects which time dimension is filtered.
type Mode string

// Filter modes.
const (
	ModeMonth Mode = "month"
	ModeDay   Mode = "day"
	ModeNone  Mode = "none"
)

var modes = []Mode{ModeMonth, ModeDay, ModeNone}

// ValidationError describes a rejected answer.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
	Hint    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%q is not a valid %s. You must choose among %s.", e.Value, e.Field, joinChoices(e.Allowed, "and"))
}

// ParseCity matches a city name case-insensitively.
func ParseCity(input string) (model.City, error) {
	value := strings.ToLower(strings.TrimSpace(input))
	for _, city := range model.Cities {
		if value == string(city) {
			return city, nil
		}
	}
	allowed := make([]string, len(model.Cities))
	for i, city := range model.Cities {
		allowed[i] = city.Title()
	}
	return "", &ValidationError{Field: "city", Value: input, Allowed: allowed, Hint: "Please try again."}
}

// ParseMode matches a filter mode case-insensitively.
func ParseMode(input string) (Mode, error) {
	value := Mode(strings.ToLower(strings.TrimSpace(input)))
	for _, m := range modes {
		if value == m {
			return m, nil
		}
	}
	return "", &ValidationError{
		Field:   "filter",
		Value:   input,
		Allowed: []string{"month", "day", "'none'"},
		Hint:    "Please try again.",
	}
}

// ParseMonth title-cases input and accepts one of the first limit month names.
func ParseMonth(input string, limit int) (string, error) {
	allowed := SelectableMonths(limit)
	value := titleCase(strings.TrimSpace(input))
	for _, m := range allowed {
		if value == m {
			return m, nil
		}
	}
	return "", &ValidationError{
		Field:   "month",
		Value:   input,
		Allowed: allowed,
		Hint:    "Please type the month again.",
	}
}

// ParseDay title-cases input and accepts a three-letter weekday abbreviation.
func ParseDay(input string) (string, error) {
	value := titleCase(strings.TrimSpace(input))
	for _, d := range model.DayAbbrevs {
		if value == d {
			return d, nil
		}
	}
	return "", &ValidationError{
		Field:   "day",
		Value:   input,
		Allowed: model.DayAbbrevs,
		Hint:    "Please type the day again using three letters.",
	}
}

// SelectableMonths returns the month names accepted under the given limit.
func SelectableMonths(limit int) []string {
	if limit <= 0 || limit > len(model.MonthNames) {
		limit = len(model.MonthNames)
	}
	return model.MonthNames[:limit]
}

// New builds a filter from already-validated parts. An empty month or day means all.
func New(city, month, day string, limit int) (model.Filter, error) {
	c, err := ParseCity(city)
	if err != nil {
		return model.Filter{}, err
	}
	f := model.Filter{City: c, Month: model.All, Day: model.All}
	if month != "" && !strings.EqualFold(month, model.All) {
		if f.Month, err = ParseMonth(month, limit); err != nil {
			return model.Filter{}, err
		}
	}
	if day != "" && !strings.EqualFold(day, model.All) {
		if f.Day, err = ParseDay(day); err != nil {
			return model.Filter{}, err
		}
	}
	if err := f.Validate(); err != nil {
		return model.Filter{}, err
	}
	return f, nil
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func joinChoices(items []string, conj string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", " + conj + " " + items[len(items)-1]
}
