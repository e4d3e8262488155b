// Package session runs the interactive collect, load and report cycle.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/verte-zerg/bikeshare/internal/console"
	"github.com/verte-zerg/bikeshare/internal/filter"
	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/pager"
	"github.com/verte-zerg/bikeshare/internal/render"
	"github.com/verte-zerg/bikeshare/internal/stats"
)

// Loader builds the dataset for a filter.
type Loader interface {
	Load(ctx context.Context, f model.Filter) (model.Dataset, error)
}

type state int

const (
	stateCollecting state = iota
	stateReporting
)

// Controller sequences filter collection, loading, statistics and paging.
type Controller struct {
	console *console.Console
	loader  Loader
	engine  *stats.Engine
	cfg     model.Config
}

// New returns a Controller.
func New(c *console.Console, loader Loader, cfg model.Config) *Controller {
	return &Controller{
		console: c,
		loader:  loader,
		engine:  stats.NewEngine(c.Out()),
		cfg:     cfg,
	}
}

// Run cycles until input is interrupted, which ends the session without
// error. A failed load is reported and collection starts over.
func (s *Controller) Run(ctx context.Context) error {
	st := stateCollecting
	var ds model.Dataset
	for {
		switch st {
		case stateCollecting:
			f, err := filter.Collect(ctx, s.console, s.cfg.Months)
			if errors.Is(err, console.ErrInterrupted) {
				return nil
			}
			if err != nil {
				return err
			}
			ds, err = s.loader.Load(ctx, f)
			if err != nil {
				s.console.Println(render.Reject(fmt.Sprintf("Unexpected error: %v", err)))
				s.console.Println()
				s.console.Rule()
				continue
			}
			s.console.Printf("Loaded %d trips (%s).\n", ds.Len(), f)
			st = stateReporting
		case stateReporting:
			s.engine.Run(ds)
			_, err := pager.Page(ctx, s.console, ds, s.cfg.PageSize)
			if errors.Is(err, console.ErrInterrupted) {
				return nil
			}
			if err != nil {
				return err
			}
			ds = model.Dataset{}
			st = stateCollecting
		}
	}
}
