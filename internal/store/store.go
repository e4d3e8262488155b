// Package store holds trip records in an in-memory SQLite table and
// answers filtered queries over them.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/bikeshare/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps an in-memory SQLite database holding one city's trips.
type Store struct {
	db *sql.DB
}

// Query narrows the trips returned by ListTrips. Zero values disable a predicate.
type Query struct {
	Month     int
	DayOfWeek string
}

// Open creates an empty in-memory trip table.
func Open(ctx context.Context) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(ctx); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE trips (
			id INTEGER PRIMARY KEY,
			start_time TEXT NOT NULL,
			trip_duration INTEGER NOT NULL,
			start_station TEXT NOT NULL,
			end_station TEXT NOT NULL,
			user_type TEXT NOT NULL,
			gender TEXT,
			birth_year INTEGER,
			month INTEGER NOT NULL,
			day_of_week TEXT NOT NULL
		);`,
		`CREATE INDEX idx_trips_month ON trips(month);`,
		`CREATE INDEX idx_trips_day_of_week ON trips(day_of_week);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertTrips appends trips in order within a single transaction.
func (s *Store) InsertTrips(ctx context.Context, trips []model.TripRecord) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO trips (start_time, trip_duration, start_station, end_station, user_type, gender, birth_year, month, day_of_week)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	for _, trip := range trips {
		var gender sql.NullString
		if trip.Gender != "" {
			gender = sql.NullString{String: trip.Gender, Valid: true}
		}
		var birthYear sql.NullInt64
		if trip.BirthYear != nil {
			birthYear = sql.NullInt64{Int64: int64(*trip.BirthYear), Valid: true}
		}
		if _, err = stmt.ExecContext(ctx,
			trip.StartTime.Format(time.RFC3339Nano),
			trip.Duration,
			trip.StartStation,
			trip.EndStation,
			trip.UserType,
			gender,
			birthYear,
			trip.Month,
			trip.DayOfWeek,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListTrips returns trips matching q in insertion order.
func (s *Store) ListTrips(ctx context.Context, q Query) ([]model.TripRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if q.Month > 0 {
		clauses = append(clauses, "month = ?")
		args = append(args, q.Month)
	}
	if q.DayOfWeek != "" {
		clauses = append(clauses, "day_of_week = ?")
		args = append(args, q.DayOfWeek)
	}
	query := fmt.Sprintf(`SELECT start_time, trip_duration, start_station, end_station, user_type, gender, birth_year, month, day_of_week
		FROM trips
		WHERE %s
		ORDER BY id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var trips []model.TripRecord
	for rows.Next() {
		var trip model.TripRecord
		var startTime string
		var gender sql.NullString
		var birthYear sql.NullInt64
		if err := rows.Scan(&startTime, &trip.Duration, &trip.StartStation, &trip.EndStation, &trip.UserType,
			&gender, &birthYear, &trip.Month, &trip.DayOfWeek); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, startTime)
		if err != nil {
			return nil, err
		}
		trip.StartTime = parsed
		if gender.Valid {
			trip.Gender = gender.String
		}
		if birthYear.Valid {
			year := int(birthYear.Int64)
			trip.BirthYear = &year
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return trips, nil
}
