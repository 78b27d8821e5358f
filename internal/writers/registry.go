// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"almanac/internal/runner"
)

// Format renders every report received on in to w.
type Format func(w io.Writer, in <-chan runner.Report) error

// Writer registry (format name → handler). Formats register in init().
var formats = map[string]Format{}

// Register adds a format (idempotent last-wins).
func Register(name string, fn Format) { formats[name] = fn }

// Formats lists registered format names.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for n := range formats {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Known reports whether name has a registered writer.
func Known(name string) bool {
	_, ok := formats[name]
	return ok
}

// Start spins up a writer goroutine for format. Close the returned channel when
// done and read the single error value. Broken pipes are not errors.
func Start(out io.Writer, format string, bufSize int) (chan<- runner.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 16
	}
	in := make(chan runner.Report, bufSize)
	done := make(chan error, 1)

	go func() {
		fn, ok := formats[format]
		if !ok {
			for range in {
			}
			done <- fmt.Errorf("unknown output format %q (no writer registered)", format)
			return
		}
		err := fn(out, in)
		// drain so senders never block on a failed writer
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		done <- err
	}()
	return in, done
}
