package filter

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/verte-zerg/bikeshare/internal/console"
	"github.com/verte-zerg/bikeshare/internal/model"
)

func runCollect(t *testing.T, input string) (model.Filter, string, error) {
	t.Helper()
	var out bytes.Buffer
	c := console.New(strings.NewReader(input), &out)
	f, err := Collect(context.Background(), c, 6)
	return f, out.String(), err
}

func TestCollectAcceptsCityOnFirstAttempt(t *testing.T) {
	for _, city := range []string{"chicago", "NEW YORK", "Washington", "cHiCaGo"} {
		f, out, err := runCollect(t, city+"\nnone\n")
		if err != nil {
			t.Fatalf("collect %q: %v", city, err)
		}
		if strings.Contains(out, "is not a valid city") {
			t.Fatalf("expected %q to be accepted on first attempt:\n%s", city, out)
		}
		if f.Month != model.All || f.Day != model.All {
			t.Fatalf("expected no time filter, got %+v", f)
		}
	}
}

func TestCollectRepromptsForMonthOutsideRange(t *testing.T) {
	f, out, err := runCollect(t, "chicago\nmonth\nJuly\nDecember\nmarch\n")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if strings.Count(out, "is not a valid month") != 2 {
		t.Fatalf("expected two month rejections:\n%s", out)
	}
	want := model.Filter{City: model.Chicago, Month: "March", Day: model.All}
	if f != want {
		t.Fatalf("got %+v, want %+v", f, want)
	}
	if !strings.Contains(out, "Which month? January, February, March, April, May, or June? ") {
		t.Fatalf("expected month prompt listing six months:\n%s", out)
	}
}

func TestCollectNeverReturnsInvalidMonth(t *testing.T) {
	f, _, err := runCollect(t, "chicago\nmonth\nAugust\n")
	if !errors.Is(err, console.ErrInterrupted) {
		t.Fatalf("expected interruption after invalid month, got %v", err)
	}
	if f.Month == "August" {
		t.Fatalf("invalid month was accepted")
	}
}

func TestCollectDayFilter(t *testing.T) {
	f, out, err := runCollect(t, "washington\nbogus\nDay\nFriday\nfri\n")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := model.Filter{City: model.Washington, Month: model.All, Day: "Fri"}
	if f != want {
		t.Fatalf("got %+v, want %+v", f, want)
	}
	if !strings.Contains(out, "is not a valid filter") || !strings.Contains(out, "is not a valid day") {
		t.Fatalf("expected mode and day rejections:\n%s", out)
	}
}

func TestCollectInterruptYieldsPartialFilter(t *testing.T) {
	f, out, err := runCollect(t, "new york\n")
	if !errors.Is(err, console.ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
	if f.City != model.NewYork || f.Month != "" || f.Day != "" {
		t.Fatalf("unexpected partial filter %+v", f)
	}
	if !strings.Contains(out, "No input taken") {
		t.Fatalf("expected interrupt message:\n%s", out)
	}
	if !strings.HasSuffix(out, strings.Repeat("-", 40)+"\n") {
		t.Fatalf("expected rule line after interrupted collection:\n%s", out)
	}
}

func TestCollectPrintsRuleOnSuccess(t *testing.T) {
	_, out, err := runCollect(t, "chicago\nnone\n")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if !strings.HasSuffix(out, strings.Repeat("-", 40)+"\n") {
		t.Fatalf("expected trailing rule line:\n%s", out)
	}
}

func TestCollectRejectsOverlongAnswer(t *testing.T) {
	f, out, err := runCollect(t, strings.Repeat("x", 70*1024)+"\nchicago\nnone\n")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if !strings.Contains(out, "is not a valid city") {
		t.Fatalf("expected over-long answer to be rejected")
	}
	want := model.Filter{City: model.Chicago, Month: model.All, Day: model.All}
	if f != want {
		t.Fatalf("got %+v, want %+v", f, want)
	}
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("stdin closed badly")
}

func TestCollectReportsReadErrorWithoutRetry(t *testing.T) {
	var out bytes.Buffer
	c := console.New(brokenReader{}, &out)
	_, err := Collect(context.Background(), c, 6)
	if err == nil || errors.Is(err, console.ErrInterrupted) {
		t.Fatalf("expected read error, got %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Unexpected error: failed to read input: stdin closed badly") {
		t.Fatalf("expected unexpected error report:\n%s", text)
	}
	if strings.Count(text, "Would you like to see data for") != 1 {
		t.Fatalf("expected a single city prompt:\n%s", text)
	}
	if !strings.HasSuffix(text, strings.Repeat("-", 40)+"\n") {
		t.Fatalf("expected trailing rule line:\n%s", text)
	}
}
