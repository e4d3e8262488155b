// Package render formats plain-text output shared by the interactive flows.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// Table formats rows under headers with space-separated, padded columns.
// Columns listed in rightAlignCols are right-aligned. When maxWidth is
// positive, the widest column is shrunk until the line fits.
func Table(headers []string, rows [][]string, rightAlignCols map[int]bool, maxWidth int) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	if maxWidth > 0 {
		shrinkWidths(widths, maxWidth)
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

// WriteTable writes Table output to w, one line per row.
func WriteTable(w io.Writer, headers []string, rows [][]string, rightAlignCols map[int]bool, maxWidth int) error {
	for _, line := range Table(headers, rows, rightAlignCols, maxWidth) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func shrinkWidths(widths []int, maxWidth int) {
	minCol := displayWidth(ellipsis) + 1
	for {
		total := len(widths) - 1
		widest := 0
		for i, w := range widths {
			total += w
			if w > widths[widest] {
				widest = i
			}
		}
		if total <= maxWidth || widths[widest] <= minCol {
			return
		}
		widths[widest]--
	}
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	if displayWidth(value) > width {
		value = runewidth.Truncate(value, width, ellipsis)
	}
	valueWidth := displayWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
