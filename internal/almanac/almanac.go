// Package almanac models the seed-to-location pipeline: seven range tables
// composed in a fixed order, plus the seed list read from the puzzle text.
//
// Values are built once by Parse and never mutated afterwards, so a single
// *Almanac may be shared by any number of goroutines without locking.
package almanac

import (
	"fmt"
	"math"
)

// Almanac is the ordered composition of one Table per stage plus the seeds.
type Almanac struct {
	tables []Table
	seeds  []int64
}

// New builds an Almanac from already-parsed tables (applied in slice order).
func New(seeds []int64, tables ...Table) *Almanac {
	a := &Almanac{
		tables: make([]Table, len(tables)),
		seeds:  make([]int64, len(seeds)),
	}
	copy(a.tables, tables)
	copy(a.seeds, seeds)
	return a
}

// Locate folds every table's Map over seed, first stage first.
func (a *Almanac) Locate(seed int64) int64 {
	v := seed
	for i := range a.tables {
		v = a.tables[i].Map(v)
	}
	return v
}

// Seeds returns the flat seed reading.
func (a *Almanac) Seeds() []int64 {
	out := make([]int64, len(a.seeds))
	copy(out, a.seeds)
	return out
}

// Tables returns the tables in pipeline order.
func (a *Almanac) Tables() []Table {
	out := make([]Table, len(a.tables))
	copy(out, a.tables)
	return out
}

// Table returns the table for stage, if present.
func (a *Almanac) Table(stage Stage) (Table, bool) {
	for _, t := range a.tables {
		if t.stage == stage {
			return t, true
		}
	}
	return Table{}, false
}

// Intervals reinterprets the seeds as consecutive (start, length) pairs.
func (a *Almanac) Intervals() ([]Interval, error) {
	return Pairs(a.seeds)
}

// Interval is the seed set [Start, Start+Length).
type Interval struct {
	Start  int64
	Length int64
}

// End is the exclusive upper bound.
func (iv Interval) End() int64 { return iv.Start + iv.Length }

// Split cuts iv into contiguous pieces of at most size seeds. size < 1 is
// treated as 1. An empty interval yields no pieces.
func (iv Interval) Split(size int64) []Interval {
	if iv.Length <= 0 {
		return nil
	}
	if size < 1 {
		size = 1
	}
	n := (iv.Length + size - 1) / size
	out := make([]Interval, 0, n)
	for lo := iv.Start; lo < iv.End(); lo += size {
		l := size
		if rem := iv.End() - lo; rem < l {
			l = rem
		}
		out = append(out, Interval{Start: lo, Length: l})
	}
	return out
}

// Pairs groups vals as (start, length) pairs. An odd count is an error, as is
// a pair whose end does not fit in int64.
func Pairs(vals []int64) ([]Interval, error) {
	if len(vals)%2 != 0 {
		return nil, &ParseError{
			Kind: KindUnpairedInterval,
			Msg:  fmt.Sprintf("%d seed values cannot form (start, length) pairs", len(vals)),
		}
	}
	out := make([]Interval, 0, len(vals)/2)
	for i := 0; i < len(vals); i += 2 {
		start, length := vals[i], vals[i+1]
		if start > math.MaxInt64-length {
			return nil, &ParseError{
				Kind:  KindBadToken,
				Msg:   fmt.Sprintf("interval %d overflows", i/2),
				Token: fmt.Sprintf("%d %d", start, length),
			}
		}
		out = append(out, Interval{Start: start, Length: length})
	}
	return out, nil
}
