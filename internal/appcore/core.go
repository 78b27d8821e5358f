// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"almanac/internal/runner"
	"almanac/internal/runutil"
	"almanac/internal/writers"
)

// Exit codes shared by every command.
const (
	ExitOK        = 0
	ExitFailed    = 1 // at least one day or part failed
	ExitUsage     = 2
	ExitIO        = 3
	ExitCancelled = 130
)

type Options struct {
	Run    runner.Options
	Format string
	Quiet  bool // suppress tuning warnings
}

// Run streams runner reports through the selected writer and maps the outcome
// to an exit code.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, log *zap.Logger) int {
	if log == nil {
		log = zap.NewNop()
	}
	if !writers.Known(o.Format) {
		fmt.Fprintf(stderr, "error: unknown output format %q (want one of %v)\n", o.Format, writers.Formats())
		return ExitUsage
	}

	if !o.Quiet {
		for _, w := range runutil.ValidateSearch(o.Run.Env.Search.Threads, o.Run.Env.Search.ChunkSize) {
			fmt.Fprintln(stderr, w)
		}
	}
	o.Run.Env.Search.Threads = runutil.EffectiveThreads(o.Run.Env.Search.Threads)
	if o.Run.Env.Logger == nil {
		o.Run.Env.Logger = log
	}

	outw := bufio.NewWriter(stdout)
	inCh, writeErr := writers.Start(outw, o.Format, 16)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sum, rerr := runner.Run(ctx, o.Run, func(r runner.Report) error {
		select {
		case inCh <- r:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)

	if werr := <-writeErr; werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitIO
	}

	if rerr != nil {
		switch {
		case errors.Is(rerr, context.Canceled), errors.Is(rerr, context.DeadlineExceeded):
			return ExitCancelled
		case errors.Is(rerr, runner.ErrSelection):
			fmt.Fprintf(stderr, "error: %v\n", rerr)
			return ExitUsage
		}
		fmt.Fprintln(stderr, rerr)
		return ExitIO
	}

	log.Info("run finished",
		zap.Int("solved", sum.Solved),
		zap.Int("failed", sum.Failed),
		zap.Int("skipped", sum.Skipped),
	)
	if sum.Failed > 0 || sum.Skipped > 0 {
		return ExitFailed
	}
	return ExitOK
}
