package writers

import (
	"bufio"
	"fmt"
	"io"

	"almanac/internal/runner"
)

func init() { Register("text", WriteText) }

// WriteText streams the human format:
//
//	Day 5:
//		Part 1: 35, 1.2ms
//		Part 2: 46, 3.4s
//
// An unreadable input prints "Day N: Error while reading input: <err>".
func WriteText(w io.Writer, in <-chan runner.Report) error {
	bw := bufio.NewWriter(w)
	lastDay := -1
	for r := range in {
		var err error
		switch {
		case r.InputFailed():
			_, err = fmt.Fprintf(bw, "Day %d: Error while reading input: %v\n", r.Day, r.Err)
			lastDay = -1
		default:
			if r.Day != lastDay {
				if _, err = fmt.Fprintf(bw, "Day %d:\n", r.Day); err != nil {
					return err
				}
				lastDay = r.Day
			}
			if r.Failed() {
				_, err = fmt.Fprintf(bw, "\tPart %d: error: %v\n", r.Part, r.Err)
			} else {
				_, err = fmt.Fprintf(bw, "\tPart %d: %s, %v\n", r.Part, r.Result, r.Duration)
			}
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
