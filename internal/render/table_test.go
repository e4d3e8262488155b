package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableAlignsColumns(t *testing.T) {
	headers := []string{"User Type", "Count"}
	rows := [][]string{
		{"Subscriber", "2"},
		{"Customer", "1"},
	}
	rightAlign := map[int]bool{1: true}

	lines := Table(headers, rows, rightAlign, 0)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "User Type  Count" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Subscriber     2" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Customer       1" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestTableTrimsTrailingPadding(t *testing.T) {
	lines := Table([]string{"Station"}, [][]string{{"A"}}, nil, 0)
	if lines[1] != "A" {
		t.Fatalf("expected trailing padding to be trimmed, got %q", lines[1])
	}
}

func TestTableShrinksWidestColumn(t *testing.T) {
	headers := []string{"#", "Start Station"}
	rows := [][]string{{"0", "Lake Shore Dr & Monroe St"}}
	lines := Table(headers, rows, nil, 16)
	for _, line := range lines {
		if w := displayWidth(line); w > 16 {
			t.Fatalf("line %q is %d wide, expected at most 16", line, w)
		}
	}
	if !strings.HasSuffix(lines[1], ellipsis) {
		t.Fatalf("expected truncated cell to end with ellipsis, got %q", lines[1])
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, []string{"A"}, [][]string{{"x"}, {"y"}}, nil, 0); err != nil {
		t.Fatalf("write table: %v", err)
	}
	if buf.String() != "A\nx\ny\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
