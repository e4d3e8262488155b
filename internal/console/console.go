// Package console provides line-oriented prompts over a reader and writer.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/bikeshare/internal/render"
)

// ErrInterrupted is returned when input ends or the context is cancelled
// while waiting for an answer.
var ErrInterrupted = errors.New("input interrupted")

type line struct {
	text string
	err  error
}

// Console reads answers from in and writes prompts to out.
type Console struct {
	out   io.Writer
	lines chan line
}

// New returns a Console. Lines are read from in on a background goroutine
// one at a time, so a pending read can be abandoned on cancellation.
func New(in io.Reader, out io.Writer) *Console {
	c := &Console{
		out:   out,
		lines: make(chan line),
	}
	go c.scan(in)
	return c
}

// scan has no line length limit; an over-long line is delivered whole.
func (c *Console) scan(in io.Reader) {
	defer close(c.lines)
	reader := bufio.NewReader(in)
	for {
		text, err := reader.ReadString('\n')
		if text != "" {
			c.lines <- line{text: strings.TrimRight(text, "\r\n")}
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, io.EOF) {
			c.lines <- line{err: err}
		}
		return
	}
}

// Out returns the writer prompts are printed to.
func (c *Console) Out() io.Writer {
	return c.out
}

// Ask prints the prompt and waits for one line of input. The trailing
// newline and surrounding whitespace are removed.
func (c *Console) Ask(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(c.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case l, ok := <-c.lines:
		if !ok {
			return "", ErrInterrupted
		}
		if l.err != nil {
			return "", fmt.Errorf("failed to read input: %w", l.err)
		}
		return strings.TrimSpace(l.text), nil
	}
}

// Printf writes formatted output.
func (c *Console) Printf(format string, args ...any) {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		// Best-effort console output.
		_ = err
	}
}

// Println writes a line of output.
func (c *Console) Println(args ...any) {
	if _, err := fmt.Fprintln(c.out, args...); err != nil {
		// Best-effort console output.
		_ = err
	}
}

// Rule writes the stage separator.
func (c *Console) Rule() {
	if err := render.Rule(c.out); err != nil {
		// Best-effort console output.
		_ = err
	}
}
