package runner

import "time"

// Report is the outcome of one part, or of a day whose input could not be
// loaded (Part == 0).
type Report struct {
	Day      int
	Title    string
	Part     int
	Result   string
	Duration time.Duration
	Err      error
}

// InputFailed reports whether r describes an unreadable input.
func (r Report) InputFailed() bool { return r.Part == 0 && r.Err != nil }

// Failed reports whether r carries any error.
func (r Report) Failed() bool { return r.Err != nil }
