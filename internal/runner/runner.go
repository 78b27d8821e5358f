// internal/runner/runner.go
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"almanac/internal/input"
	"almanac/internal/puzzle"
)

// Options selects what to run and where inputs live.
type Options struct {
	Day      int // 0 = every registered day
	Part     int // 0 = every part
	InputDir string
	Pattern  string // file name pattern, see input.Path
	Env      puzzle.Env
}

// Summary counts the reports emitted by Run.
type Summary struct {
	Solved  int
	Failed  int
	Skipped int // days whose input could not be read
}

// ErrSelection marks a day/part selection that names no registered solver.
var ErrSelection = errors.New("invalid selection")

// Sink receives reports in order. A Sink error stops the run.
type Sink func(Report) error

// Run loads each selected day's input, solves each selected part, and hands
// every outcome to sink. A day with an unreadable input is reported and
// skipped; a failing part is reported and the run carries on.
func Run(ctx context.Context, o Options, sink Sink) (Summary, error) {
	log := o.Env.Logger
	if log == nil {
		log = zap.NewNop()
	}

	days, err := selectDays(o.Day)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %w", ErrSelection, err)
	}
	for _, d := range days {
		if o.Part < 0 || o.Part > len(d.Parts) {
			return Summary{}, fmt.Errorf("%w: day %d has no part %d", ErrSelection, d.Number, o.Part)
		}
	}

	var sum Summary
	for _, d := range days {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		dlog := log.With(zap.Int("day", d.Number))
		path := input.Path(o.InputDir, o.Pattern, d.Number)
		text, err := input.Load(path)
		if err != nil {
			dlog.Warn("input unreadable, skipping day", zap.String("path", path), zap.Error(err))
			sum.Skipped++
			if serr := sink(Report{Day: d.Number, Title: d.Title, Err: err}); serr != nil {
				return sum, serr
			}
			continue
		}

		for i, part := range d.Parts {
			p := i + 1
			if o.Part != 0 && o.Part != p {
				continue
			}
			env := o.Env
			env.Logger = dlog.With(zap.Int("part", p))

			t0 := time.Now()
			res, perr := part(ctx, env, text)
			elapsed := time.Since(t0)

			if perr != nil {
				if ctx.Err() != nil {
					return sum, ctx.Err()
				}
				env.Logger.Error("part failed", zap.Error(perr), zap.Duration("elapsed", elapsed))
				sum.Failed++
			} else {
				env.Logger.Info("part solved", zap.String("result", res), zap.Duration("elapsed", elapsed))
				sum.Solved++
			}
			if serr := sink(Report{Day: d.Number, Title: d.Title, Part: p, Result: res, Duration: elapsed, Err: perr}); serr != nil {
				return sum, serr
			}
		}
	}
	return sum, nil
}

func selectDays(n int) ([]puzzle.Day, error) {
	if n == 0 {
		return puzzle.Days(), nil
	}
	d, err := puzzle.Lookup(n)
	if err != nil {
		return nil, err
	}
	return []puzzle.Day{d}, nil
}
