package browse

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/bikeshare/internal/model"
)

func sampleDataset(n int) model.Dataset {
	records := make([]model.TripRecord, n)
	for i := range records {
		start := time.Date(2017, time.May, 1+i, 12, 0, 0, 0, time.UTC)
		records[i] = model.TripRecord{
			StartTime:    start,
			Duration:     120,
			StartStation: "Clark St & Lake St",
			EndStation:   "Canal St & Madison St",
			UserType:     "Subscriber",
			Month:        5,
			DayOfWeek:    start.Weekday().String(),
		}
	}
	return model.Dataset{
		City:   model.Chicago,
		Filter: model.Filter{City: model.Chicago, Month: "May", Day: model.All},
		Columns: map[model.Column]bool{
			model.ColStartTime:    true,
			model.ColDuration:     true,
			model.ColStartStation: true,
			model.ColEndStation:   true,
			model.ColUserType:     true,
		},
		Records: records,
	}
}

func TestNewModelBuildsOneRowPerRecord(t *testing.T) {
	m := NewModel(sampleDataset(4))
	if got := len(m.table.Rows()); got != 4 {
		t.Fatalf("expected 4 rows, got %d", got)
	}
	cols := m.table.Columns()
	if cols[0].Title != "#" || cols[len(cols)-1].Title != "day_of_week" {
		t.Fatalf("unexpected columns %+v", cols)
	}
}

func TestUpdateQuitsOnQ(t *testing.T) {
	m := NewModel(sampleDataset(1))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestUpdateMovesCursor(t *testing.T) {
	m := NewModel(sampleDataset(3))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if m.table.Cursor() != 2 {
		t.Fatalf("expected cursor at last row, got %d", m.table.Cursor())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if m.table.Cursor() != 0 {
		t.Fatalf("expected cursor at first row, got %d", m.table.Cursor())
	}
}

func TestViewShowsSummary(t *testing.T) {
	m := NewModel(sampleDataset(2))
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	view := m.View()
	for _, want := range []string{"Chicago, month=May", "(2 trips)", "Row 1/2"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewEmptyDataset(t *testing.T) {
	m := NewModel(sampleDataset(0))
	if !strings.Contains(m.View(), "No trip data available") {
		t.Fatalf("expected empty message")
	}
}
