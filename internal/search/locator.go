// internal/search/locator.go
package search

// Locator is the minimal capability the searches need.
// *almanac.Almanac satisfies it; tests substitute fakes.
// Implementations must be safe for concurrent use.
type Locator interface {
	Locate(seed int64) int64
}

// LocatorFunc adapts a plain function to Locator.
type LocatorFunc func(seed int64) int64

func (f LocatorFunc) Locate(seed int64) int64 { return f(seed) }
