package filter

import (
	"context"
	"errors"
	"fmt"

	"github.com/verte-zerg/bikeshare/internal/console"
	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/render"
)

const (
	cityPrompt = "Hello! Let's explore some US bikeshare data!\n" +
		"Would you like to see data for Chicago, New York, or Washington? "
	modePrompt = `Would you like to filter the data by month, day, or not at all? Type "none" for no time filter. `
)

// Collect prompts until a complete filter is entered. On interruption it
// returns the values bound so far together with console.ErrInterrupted.
// Other errors are reported and returned without retrying. The separator
// line is printed in every case.
func Collect(ctx context.Context, c *console.Console, months int) (model.Filter, error) {
	var f model.Filter
	defer c.Rule()

	err := collect(ctx, c, months, &f)
	switch {
	case err == nil:
	case errors.Is(err, console.ErrInterrupted):
		c.Println()
		c.Println("No input taken")
		c.Println()
	default:
		c.Println(render.Reject(fmt.Sprintf("Unexpected error: %v", err)))
		c.Println()
	}
	return f, err
}

func collect(ctx context.Context, c *console.Console, months int, f *model.Filter) error {
	city, err := ask(ctx, c, cityPrompt, ParseCity)
	if err != nil {
		return err
	}
	f.City = city
	c.Println(render.Confirm(fmt.Sprintf("You have chosen to see the data for: %s.", city.Title())))
	c.Println()

	mode, err := ask(ctx, c, modePrompt, ParseMode)
	if err != nil {
		return err
	}

	switch mode {
	case ModeMonth:
		f.Day = model.All
		prompt := fmt.Sprintf("Which month? %s? ", joinChoices(SelectableMonths(months), "or"))
		month, err := ask(ctx, c, prompt, func(s string) (string, error) {
			return ParseMonth(s, months)
		})
		if err != nil {
			return err
		}
		f.Month = month
		c.Println(render.Confirm(fmt.Sprintf("You have chosen to filter the data by: %s. Let's see the statistics!", month)))
	case ModeDay:
		f.Month = model.All
		prompt := fmt.Sprintf("Which day? %s? ", joinChoices(model.DayAbbrevs, "or"))
		day, err := ask(ctx, c, prompt, ParseDay)
		if err != nil {
			return err
		}
		f.Day = day
		c.Println(render.Confirm(fmt.Sprintf("You have chosen to filter the data by: %s. Let's see the statistics!", day)))
	default:
		f.Month = model.All
		f.Day = model.All
		c.Println(render.Confirm("You have chosen no filter. Let's see the statistics!"))
	}
	c.Println()
	return nil
}

// ask re-prompts until parse accepts the answer. Only validation errors are retried.
func ask[T any](ctx context.Context, c *console.Console, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		answer, err := c.Ask(ctx, prompt)
		if err != nil {
			return zero, err
		}
		value, err := parse(answer)
		if err == nil {
			return value, nil
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return zero, err
		}
		prompt = render.Reject(verr.Error()) + " " + verr.Hint + " "
	}
}
