// Package browse provides a Bubble Tea table over a loaded dataset.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/pager"
)

const maxColumnWidth = 32

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	tableStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea record browser.
type Model struct {
	ds    model.Dataset
	table table.Model

	width  int
	height int
}

// NewModel constructs a browser over ds.
func NewModel(ds model.Dataset) *Model {
	headers, rows := pager.Rows(ds, ds.Records, 0)
	t := table.New(
		table.WithColumns(buildColumns(headers, rows)),
		table.WithRows(buildRows(rows)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles())
	return &Model{ds: ds, table: t}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(1, msg.Height-3))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "g", "home":
			m.table.GotoTop()
			return m, nil
		case "G", "end":
			m.table.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	title := titleStyle.Render(fmt.Sprintf("%s  (%d trips)", m.ds.Filter, m.ds.Len()))
	if m.ds.Len() == 0 {
		return strings.Join([]string{title, "No trip data available for the selected filter.", m.renderHelp()}, "\n")
	}
	body := tableStyle.Render(m.table.View())
	return strings.Join([]string{title, body, m.renderHelp()}, "\n")
}

func (m *Model) renderHelp() string {
	pos := 0
	if m.ds.Len() > 0 {
		pos = m.table.Cursor() + 1
	}
	return headerStyle.Render(fmt.Sprintf("Row %d/%d  Scroll: up/down/pgup/pgdn  Top/Bottom: g/G  Quit: q", pos, m.ds.Len()))
}

func buildColumns(headers []string, rows [][]string) []table.Column {
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		width := runewidth.StringWidth(h)
		for _, row := range rows {
			if i < len(row) {
				width = max(width, runewidth.StringWidth(row[i]))
			}
		}
		columns[i] = table.Column{Title: h, Width: min(width, maxColumnWidth)}
	}
	return columns
}

func buildRows(rows [][]string) []table.Row {
	out := make([]table.Row, len(rows))
	for i, row := range rows {
		out[i] = table.Row(row)
	}
	return out
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}
