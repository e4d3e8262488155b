// Package loader reads a city's trip file and applies the session filter.
package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/store"
)

// Loader resolves cities to trip files and builds filtered datasets.
type Loader struct {
	files map[model.City]string
}

// New returns a Loader over the given city to file table.
func New(files map[model.City]string) *Loader {
	copied := make(map[model.City]string, len(files))
	for city, path := range files {
		copied[city] = path
	}
	return &Loader{files: copied}
}

// Path returns the trip file configured for city.
func (l *Loader) Path(city model.City) (string, bool) {
	path, ok := l.files[city]
	return path, ok
}

// Load reads the city's file and keeps the records matching f.
func (l *Loader) Load(ctx context.Context, f model.Filter) (model.Dataset, error) {
	if err := f.Validate(); err != nil {
		return model.Dataset{}, fmt.Errorf("invalid filter: %w", err)
	}
	path, ok := l.files[f.City]
	if !ok {
		return model.Dataset{}, fmt.Errorf("no trip file configured for %s", f.City.Title())
	}
	query, err := queryFor(f)
	if err != nil {
		return model.Dataset{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to open trip file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only trip file.
			_ = cerr
		}
	}()

	trips, columns, err := ReadTrips(file)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	st, err := store.Open(ctx)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to open trip table: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			// Best-effort close of the in-memory table.
			_ = cerr
		}
	}()
	if err := st.InsertTrips(ctx, trips); err != nil {
		return model.Dataset{}, fmt.Errorf("failed to load trips: %w", err)
	}
	records, err := st.ListTrips(ctx, query)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to filter trips: %w", err)
	}

	return model.Dataset{
		City:    f.City,
		Filter:  f,
		Columns: columns,
		Records: records,
	}, nil
}

func queryFor(f model.Filter) (store.Query, error) {
	var q store.Query
	if f.Month != model.All {
		idx, ok := model.MonthIndex(f.Month)
		if !ok {
			return q, fmt.Errorf("unknown month %q", f.Month)
		}
		q.Month = idx
	}
	if f.Day != model.All {
		name, ok := model.DayName(f.Day)
		if !ok {
			return q, fmt.Errorf("unknown day %q", f.Day)
		}
		q.DayOfWeek = name
	}
	return q, nil
}
