// Package search finds the minimum location an Almanac-like Locator produces,
// either over an explicit seed list or over every seed of a set of intervals.
//
// The only contract to implement is Locator (Locate). Interval search fans
// chunks of each interval out to a fixed pool of workers and reduces with min,
// so the answer never depends on the worker count or chunk size.
package search
