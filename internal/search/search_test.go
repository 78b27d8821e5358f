package search

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"almanac/internal/almanac"
	"almanac/internal/almanac/almanactest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Compile-time check: the concrete almanac satisfies the minimal contract.
var _ Locator = (*almanac.Almanac)(nil)

func TestExactSample(t *testing.T) {
	a := almanactest.MustParse(t, almanactest.Sample)
	got, err := Exact(a, a.Seeds())
	require.NoError(t, err)
	assert.Equal(t, int64(35), got)
}

func TestExactEmpty(t *testing.T) {
	_, err := Exact(LocatorFunc(func(s int64) int64 { return s }), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, almanac.ErrEmptySeedSet)
}

func TestIntervalsSample(t *testing.T) {
	a := almanactest.MustParse(t, almanactest.Sample)
	ivs, err := a.Intervals()
	require.NoError(t, err)

	res, err := Intervals(context.Background(), Config{Threads: 4, Logger: zaptest.NewLogger(t)}, a, ivs)
	require.NoError(t, err)
	assert.Equal(t, int64(46), res.Min)
	assert.Equal(t, int64(27), res.Evaluated)
	require.Len(t, res.PerInterval, 2)
	assert.False(t, res.PerInterval[0].Empty)
	assert.False(t, res.PerInterval[1].Empty)
}

func TestIntervalsInvariantUnderPoolShape(t *testing.T) {
	a := almanactest.MustParse(t, almanactest.Sample)
	ivs := []almanac.Interval{{Start: 0, Length: 120}, {Start: 40, Length: 3}, {Start: 95, Length: 10}}

	want, err := Intervals(context.Background(), Config{Threads: 1, ChunkSize: 1 << 20}, a, ivs)
	require.NoError(t, err)

	for _, threads := range []int{1, 2, 3, 8, 0} {
		for _, chunk := range []int64{0, 1, 2, 7, 64, 1000} {
			got, err := Intervals(context.Background(), Config{Threads: threads, ChunkSize: chunk}, a, ivs)
			require.NoError(t, err)
			assert.Equal(t, want.Min, got.Min, "threads=%d chunk=%d", threads, chunk)
			assert.Equal(t, want.PerInterval, got.PerInterval, "threads=%d chunk=%d", threads, chunk)
			assert.Equal(t, int64(133), got.Evaluated)
		}
	}
}

func TestIntervalsPartitionInvariance(t *testing.T) {
	a := almanactest.MustParse(t, almanactest.Sample)
	full := almanac.Interval{Start: 0, Length: 110}

	whole, err := Intervals(context.Background(), Config{Threads: 2}, a, []almanac.Interval{full})
	require.NoError(t, err)

	for _, size := range []int64{1, 9, 50, 109} {
		parts := full.Split(size)
		split, err := Intervals(context.Background(), Config{Threads: 3}, a, parts)
		require.NoError(t, err)

		best := split.PerInterval[0].Min
		for _, p := range split.PerInterval[1:] {
			best = min(best, p.Min)
		}
		assert.Equal(t, whole.Min, best, "split size %d", size)
		assert.Equal(t, whole.Min, split.Min, "split size %d", size)
	}
}

func TestIntervalsEvaluatesEverySeedOnce(t *testing.T) {
	var calls atomic.Int64
	seen := make([]atomic.Int32, 1000)
	loc := LocatorFunc(func(s int64) int64 {
		calls.Add(1)
		seen[s].Add(1)
		// Not monotone: the minimum sits in the middle of the second interval.
		return (s*7919 + 13) % 1009
	})
	ivs := []almanac.Interval{{Start: 0, Length: 400}, {Start: 400, Length: 600}}

	res, err := Intervals(context.Background(), Config{Threads: 5, ChunkSize: 33}, loc, ivs)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), calls.Load())
	assert.Equal(t, int64(1000), res.Evaluated)
	assert.Equal(t, ChunksFor(ivs, 5, 33), res.Chunks)
	for i := range seen {
		require.Equal(t, int32(1), seen[i].Load(), "seed %d", i)
	}

	want := int64(1 << 62)
	for s := int64(0); s < 1000; s++ {
		want = min(want, loc(s))
	}
	assert.Equal(t, want, res.Min)
}

func TestIntervalsOversizedChunk(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	loc := LocatorFunc(func(s int64) int64 { return 1000 - s })
	ivs := []almanac.Interval{{Start: 0, Length: 27}, {Start: 500, Length: 3}}

	res, err := Intervals(context.Background(), Config{Threads: 2, ChunkSize: math.MaxInt64, Logger: zap.New(core)}, loc, ivs)
	require.NoError(t, err)
	assert.Equal(t, int64(498), res.Min)
	assert.Equal(t, int64(2), res.Chunks)
	assert.Equal(t, int64(2), ChunksFor(ivs, 2, math.MaxInt64))

	started := logs.FilterMessage("interval search started").All()
	require.Len(t, started, 1)
	assert.Equal(t, int64(2), started[0].ContextMap()["chunks"])
}

func TestIntervalsEmpty(t *testing.T) {
	loc := LocatorFunc(func(s int64) int64 { return s })

	_, err := Intervals(context.Background(), Config{}, loc, nil)
	assert.ErrorIs(t, err, almanac.ErrEmptySeedSet)

	_, err = Intervals(context.Background(), Config{}, loc, []almanac.Interval{{Start: 5}, {Start: 9}})
	assert.ErrorIs(t, err, almanac.ErrEmptySeedSet)
}

func TestIntervalsSkipsZeroLength(t *testing.T) {
	loc := LocatorFunc(func(s int64) int64 { return 100 - s })
	res, err := Intervals(context.Background(), Config{Threads: 2}, loc,
		[]almanac.Interval{{Start: 50, Length: 0}, {Start: 10, Length: 5}})
	require.NoError(t, err)
	assert.Equal(t, int64(86), res.Min)
	assert.True(t, res.PerInterval[0].Empty)
	assert.Equal(t, int64(86), res.PerInterval[1].Min)
}

func TestIntervalsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loc := LocatorFunc(func(s int64) int64 { return s })
	_, err := Intervals(ctx, Config{Threads: 4, ChunkSize: 1}, loc,
		[]almanac.Interval{{Start: 0, Length: 1 << 40}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestIntervalsCancelMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var n atomic.Int64
	loc := LocatorFunc(func(s int64) int64 {
		if n.Add(1) == 5000 {
			cancel()
		}
		return s
	})
	_, err := Intervals(ctx, Config{Threads: 3, ChunkSize: 1000}, loc,
		[]almanac.Interval{{Start: 0, Length: 1 << 40}})
	assert.ErrorIs(t, err, context.Canceled)
}
