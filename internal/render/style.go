package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	ruleWidth           = 40
	terminalWidthBackup = 80
)

var (
	confirmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#73C991"))
	rejectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// RuleLine is the separator printed after every stage.
var RuleLine = strings.Repeat("-", ruleWidth)

// Rule writes the separator line.
func Rule(w io.Writer) error {
	_, err := fmt.Fprintln(w, RuleLine)
	return err
}

// Confirm styles an acceptance message.
func Confirm(s string) string {
	return confirmStyle.Render(s)
}

// Reject styles a rejection or error message.
func Reject(s string) string {
	return rejectStyle.Render(s)
}

// Heading styles a section title.
func Heading(s string) string {
	return headingStyle.Render(s)
}

// Muted styles secondary text such as timings.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// TerminalWidth returns the width of stdout, or a fallback when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
