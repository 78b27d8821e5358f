// internal/search/search.go
package search

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"almanac/internal/almanac"
	"almanac/internal/runutil"
)

// Config controls the interval search worker pool.
type Config struct {
	Threads   int   // number of worker goroutines (0 = all CPUs)
	ChunkSize int64 // seeds per work unit (0 = auto, see runutil.ChunkSize)
	Logger    *zap.Logger
}

// IntervalMin is the minimum location found inside one interval.
// Empty is set for zero-length intervals, which have no minimum.
type IntervalMin struct {
	Interval almanac.Interval
	Min      int64
	Empty    bool
}

// Result of an interval search.
type Result struct {
	Min         int64
	PerInterval []IntervalMin
	Evaluated   int64 // number of seeds passed to Locate
	Chunks      int64 // number of work units executed
}

// Exact returns the smallest location over seeds, evaluated in order.
func Exact(loc Locator, seeds []int64) (int64, error) {
	if len(seeds) == 0 {
		return 0, &almanac.ParseError{Kind: almanac.KindEmptySeedSet, Msg: "no seeds to locate"}
	}
	best := loc.Locate(seeds[0])
	for _, s := range seeds[1:] {
		if v := loc.Locate(s); v < best {
			best = v
		}
	}
	return best, nil
}

type job struct {
	idx  int
	span almanac.Interval
}

type partial struct {
	idx  int
	min  int64
	seen int64
}

// Intervals evaluates loc on every seed of every interval and returns the
// smallest location. Each interval is cut into contiguous chunks which a fixed
// pool of cfg.Threads workers evaluates independently; chunk minima are reduced
// per interval and then across intervals.
//
// ctx is checked between chunks. On cancellation no result is returned.
func Intervals(ctx context.Context, cfg Config, loc Locator, ivs []almanac.Interval) (Result, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var total int64
	for _, iv := range ivs {
		if iv.Length > math.MaxInt64-total {
			total = math.MaxInt64
			break
		}
		total += iv.Length
	}
	if total == 0 {
		return Result{}, &almanac.ParseError{
			Kind: almanac.KindEmptySeedSet,
			Msg:  fmt.Sprintf("%d intervals contain no seeds", len(ivs)),
		}
	}

	threads := runutil.EffectiveThreads(cfg.Threads)
	started := time.Now()
	if ce := log.Check(zap.DebugLevel, "interval search started"); ce != nil {
		ce.Write(
			zap.Int("intervals", len(ivs)),
			zap.Int64("seeds", total),
			zap.Int("threads", threads),
			zap.Int64("chunk_size", cfg.ChunkSize),
			zap.Int64("chunks", ChunksFor(ivs, threads, cfg.ChunkSize)),
		)
	}

	jobs := make(chan job, threads*2)
	results := make(chan partial, threads*2)
	g, gctx := errgroup.WithContext(ctx)

	// Feed work
	g.Go(func() error {
		defer close(jobs)
		for i, iv := range ivs {
			size := runutil.ChunkSize(iv.Length, threads, cfg.ChunkSize)
			for lo := iv.Start; lo < iv.End(); {
				n := min(size, iv.End()-lo)
				select {
				case <-gctx.Done():
					return gctx.Err()
				case jobs <- job{idx: i, span: almanac.Interval{Start: lo, Length: n}}:
				}
				lo += n
			}
		}
		return nil
	})

	// Workers
	for w := 0; w < threads; w++ {
		g.Go(func() error {
			for j := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				p := partial{idx: j.idx, min: minOver(loc, j.span), seen: j.span.Length}
				select {
				case results <- p:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	var werr error
	go func() {
		werr = g.Wait()
		close(results)
	}()

	// Collector
	per := make([]IntervalMin, len(ivs))
	for i, iv := range ivs {
		per[i] = IntervalMin{Interval: iv, Min: math.MaxInt64, Empty: true}
	}
	res := Result{Min: math.MaxInt64}
	for p := range results {
		if p.min < per[p.idx].Min {
			per[p.idx].Min = p.min
		}
		per[p.idx].Empty = false
		res.Evaluated += p.seen
		res.Chunks++
	}
	if werr != nil {
		log.Debug("interval search aborted", zap.Error(werr), zap.Int64("evaluated", res.Evaluated))
		return Result{}, werr
	}

	for i := range per {
		if per[i].Empty {
			per[i].Min = 0
			continue
		}
		if per[i].Min < res.Min {
			res.Min = per[i].Min
		}
	}
	res.PerInterval = per

	log.Debug("interval search finished",
		zap.Int64("min", res.Min),
		zap.Int64("evaluated", res.Evaluated),
		zap.Int64("chunks", res.Chunks),
		zap.Duration("elapsed", time.Since(started)),
	)
	return res, nil
}

// ChunksFor reports how many work units Intervals will schedule.
func ChunksFor(ivs []almanac.Interval, threads int, chunkSize int64) int64 {
	var n int64
	for _, iv := range ivs {
		n += runutil.ChunkCount(iv.Length, runutil.ChunkSize(iv.Length, threads, chunkSize))
	}
	return n
}

// minOver is the inner loop: every seed of span, one at a time.
func minOver(loc Locator, span almanac.Interval) int64 {
	best := int64(math.MaxInt64)
	for s, end := span.Start, span.End(); s < end; s++ {
		if v := loc.Locate(s); v < best {
			best = v
		}
	}
	return best
}
