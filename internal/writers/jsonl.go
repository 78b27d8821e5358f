// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"almanac/internal/runner"
)

func init() {
	Register("json", WriteJSON)
	Register("jsonl", WriteJSONL)
}

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// WriteJSONL streams each report as one JSON line.
func WriteJSONL(w io.Writer, in <-chan runner.Report) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(w)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	for r := range in {
		if err := enc.Encode(ToWire(r)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteJSON buffers every report and writes one indented JSON array.
func WriteJSON(w io.Writer, in <-chan runner.Report) error {
	all := []Wire{}
	for r := range in {
		all = append(all, ToWire(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(all)
}
