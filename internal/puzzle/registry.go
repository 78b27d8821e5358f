// internal/puzzle/registry.go
package puzzle

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"almanac/internal/search"
)

// Env carries what a part may need beyond its input text.
type Env struct {
	Search search.Config
	Logger *zap.Logger
}

// Part solves one half of a day and returns the answer as decimal text.
type Part func(ctx context.Context, env Env, input string) (string, error)

// Day is one registered puzzle.
type Day struct {
	Number int
	Title  string
	Parts  []Part
}

// Registry maps day numbers to solvers. Days register themselves in init().
var (
	mu   sync.RWMutex
	days = map[int]Day{}
)

// Register adds d (idempotent last-wins).
func Register(d Day) {
	mu.Lock()
	defer mu.Unlock()
	days[d.Number] = d
}

// Lookup returns the day registered under n.
func Lookup(n int) (Day, error) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := days[n]
	if !ok {
		return Day{}, fmt.Errorf("unknown day %d (no solver registered)", n)
	}
	return d, nil
}

// Days returns every registered day in ascending order.
func Days() []Day {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Day, 0, len(days))
	for _, d := range days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Solve runs part p (1-based) of day n.
func Solve(ctx context.Context, env Env, n, p int, input string) (string, error) {
	d, err := Lookup(n)
	if err != nil {
		return "", err
	}
	if p < 1 || p > len(d.Parts) {
		return "", fmt.Errorf("day %d has no part %d", n, p)
	}
	return d.Parts[p-1](ctx, env, input)
}

// textPart lifts a context-free solver into a Part.
func textPart(fn func(string) (string, error)) Part {
	return func(_ context.Context, _ Env, input string) (string, error) {
		return fn(input)
	}
}
