// internal/almanac/rangemap.go
package almanac

// Stage names one remapping table of the pipeline.
type Stage string

// Stages is the canonical pipeline order. Parse and Locate both follow it.
var Stages = []Stage{
	"seed-to-soil",
	"soil-to-fertilizer",
	"fertilizer-to-water",
	"water-to-light",
	"light-to-temperature",
	"temperature-to-humidity",
	"humidity-to-location",
}

// Range maps [Src, Src+Length) onto [Dest, Dest+Length) by a constant offset.
type Range struct {
	Src    int64
	Dest   int64
	Length int64
}

// End is the exclusive upper bound of the source interval.
func (r Range) End() int64 { return r.Src + r.Length }

// Contains reports whether x lies in the source interval.
func (r Range) Contains(x int64) bool { return r.Src <= x && x-r.Src < r.Length }

// Map returns the image of x and true, or (x, false) when x is not covered.
func (r Range) Map(x int64) (int64, bool) {
	if !r.Contains(x) {
		return x, false
	}
	return r.Dest + (x - r.Src), true
}

// Table is the ordered list of ranges of one stage.
// Overlapping ranges are allowed; the first declared match wins.
type Table struct {
	stage  Stage
	ranges []Range
}

// NewTable copies ranges into a new Table.
func NewTable(stage Stage, ranges ...Range) Table {
	rs := make([]Range, len(ranges))
	copy(rs, ranges)
	return Table{stage: stage, ranges: rs}
}

func (t Table) Stage() Stage { return t.stage }
func (t Table) Len() int     { return len(t.ranges) }

// Ranges returns a copy of the table's ranges in declaration order.
func (t Table) Ranges() []Range {
	out := make([]Range, len(t.ranges))
	copy(out, t.ranges)
	return out
}

// Map applies the first range containing x; uncovered values map to themselves.
func (t Table) Map(x int64) int64 {
	for _, r := range t.ranges {
		if y, ok := r.Map(x); ok {
			return y
		}
	}
	return x
}
