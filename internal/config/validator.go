package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError is a single invalid field.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid field found by Validate.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidOutputFormats lists the report formats.
func ValidOutputFormats() []string { return []string{"text", "json", "jsonl", "yaml"} }

// ValidLogLevels lists accepted logging.level values.
func ValidLogLevels() []string { return []string{"debug", "info", "warn", "error"} }

// ValidLogEncodings lists accepted logging.encoding values.
func ValidLogEncodings() []string { return []string{"console", "json"} }

// Validate returns every problem with c; nil means valid.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors
	add := func(field string, value any, msg string) {
		errs = append(errs, ValidationError{Field: field, Value: value, Message: msg})
	}

	if c.Input.Pattern == "" {
		add("input.pattern", c.Input.Pattern, "must not be empty")
	} else if strings.Count(c.Input.Pattern, "%d") != 1 {
		add("input.pattern", c.Input.Pattern, "must contain exactly one %d")
	}
	if c.Search.Threads < 0 {
		add("search.threads", c.Search.Threads, "must be >= 0 (0 = all CPUs)")
	}
	if c.Search.ChunkSize < 0 {
		add("search.chunk_size", c.Search.ChunkSize, "must be >= 0 (0 = auto)")
	}
	if !slices.Contains(ValidOutputFormats(), c.Output.Format) {
		add("output.format", c.Output.Format, "must be one of "+strings.Join(ValidOutputFormats(), ", "))
	}
	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		add("logging.level", c.Logging.Level, "must be one of "+strings.Join(ValidLogLevels(), ", "))
	}
	if !slices.Contains(ValidLogEncodings(), c.Logging.Encoding) {
		add("logging.encoding", c.Logging.Encoding, "must be one of "+strings.Join(ValidLogEncodings(), ", "))
	}
	return errs
}
