package writers

import "almanac/internal/runner"

// Wire is the serialized shape of one report (JSON, JSONL, YAML).
type Wire struct {
	Day        int    `json:"day" yaml:"day"`
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Part       int    `json:"part,omitempty" yaml:"part,omitempty"`
	Result     string `json:"result,omitempty" yaml:"result,omitempty"`
	Duration   string `json:"duration,omitempty" yaml:"duration,omitempty"`
	DurationNS int64  `json:"duration_ns,omitempty" yaml:"duration_ns,omitempty"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
	InputError bool   `json:"input_error,omitempty" yaml:"input_error,omitempty"`
}

// ToWire converts r to its serialized shape.
func ToWire(r runner.Report) Wire {
	w := Wire{Day: r.Day, Title: r.Title, Part: r.Part, Result: r.Result}
	if r.Part > 0 {
		w.Duration = r.Duration.String()
		w.DurationNS = r.Duration.Nanoseconds()
	}
	if r.Err != nil {
		w.Error = r.Err.Error()
		w.InputError = r.InputFailed()
	}
	return w
}
