package stats

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/render"
)

// ErrNoData is returned when a dataset has no records to aggregate.
var ErrNoData = errors.New("no trip data available")

const noDataMessage = "No trip data available for the selected filter."

// Analysis is one independent, read-only pass over a dataset.
type Analysis struct {
	Name  string
	Title string
	Run   func(w io.Writer, ds model.Dataset) error
}

// Analyses returns the four analyses in report order.
func Analyses() []Analysis {
	return []Analysis{
		{Name: "time", Title: "Calculating the most frequent times of travel...", Run: TimeStats},
		{Name: "duration", Title: "Calculating trip duration...", Run: DurationStats},
		{Name: "station", Title: "Calculating the most popular stations and trip...", Run: StationStats},
		{Name: "user", Title: "Calculating user statistics...", Run: UserStats},
	}
}

// Engine runs analyses one after another, timing and isolating each.
type Engine struct {
	out      io.Writer
	analyses []Analysis
	now      func() time.Time
}

// NewEngine returns an Engine writing the standard analyses to out.
func NewEngine(out io.Writer) *Engine {
	return &Engine{out: out, analyses: Analyses(), now: time.Now}
}

// Run executes every analysis against ds. A failing analysis is reported
// and does not stop the ones after it. The returned slice holds one error
// per failed analysis.
func (e *Engine) Run(ds model.Dataset) []error {
	var failures []error
	for _, a := range e.analyses {
		if err := e.runOne(a, ds); err != nil {
			failures = append(failures, fmt.Errorf("%s stats: %w", a.Name, err))
		}
	}
	return failures
}

func (e *Engine) runOne(a Analysis, ds model.Dataset) error {
	defer func() {
		if err := render.Rule(e.out); err != nil {
			// Best-effort separator.
			_ = err
		}
	}()
	if _, err := fmt.Fprintf(e.out, "\n%s\n\n", render.Heading(a.Title)); err != nil {
		return err
	}
	start := e.now()
	err := a.Run(e.out, ds)
	elapsed := e.now().Sub(start)
	if err != nil {
		_, _ = fmt.Fprintf(e.out, "%s\n\n", render.Reject(fmt.Sprintf("Unexpected error: %v", err)))
		return err
	}
	_, werr := fmt.Fprintf(e.out, "\n%s\n\n", render.Muted(fmt.Sprintf("This took %.6f seconds.", elapsed.Seconds())))
	return werr
}

func require(ds model.Dataset, cols ...model.Column) error {
	for _, col := range cols {
		if !ds.Has(col) {
			return fmt.Errorf("missing column %q", col)
		}
	}
	return nil
}

// noDataOr reports ErrNoData as a message and passes other errors through.
func noDataOr(w io.Writer, err error) error {
	if errors.Is(err, ErrNoData) {
		return writeLines(w, noDataMessage)
	}
	return err
}
