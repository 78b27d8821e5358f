// Package almanactest provides the worked-example almanac for tests in other
// packages.
package almanactest

import (
	"testing"

	"almanac/internal/almanac"
)

// Sample is the canonical worked example. Exact minimum 35, interval minimum 46.
const Sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

// MustParse parses text or fails the test.
func MustParse(tb testing.TB, text string) *almanac.Almanac {
	tb.Helper()
	a, err := almanac.Parse(text)
	if err != nil {
		tb.Fatalf("almanac.Parse: %v", err)
	}
	return a
}
