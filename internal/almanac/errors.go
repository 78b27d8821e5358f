package almanac

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies why an almanac could not be built or searched.
type Kind int

const (
	KindMissingSection Kind = iota + 1
	KindBadToken
	KindUnpairedInterval
	KindEmptySeedSet
)

func (k Kind) String() string {
	switch k {
	case KindMissingSection:
		return "missing section"
	case KindBadToken:
		return "bad token"
	case KindUnpairedInterval:
		return "unpaired interval"
	case KindEmptySeedSet:
		return "empty seed set"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is; every *ParseError matches the one for its Kind.
var (
	ErrMissingSection   = errors.New("missing section")
	ErrBadToken         = errors.New("bad token")
	ErrUnpairedInterval = errors.New("unpaired interval")
	ErrEmptySeedSet     = errors.New("empty seed set")
)

// ParseError describes malformed almanac input. Line is 1-based; 0 means the
// error is not tied to a single line.
type ParseError struct {
	Kind  Kind
	Stage Stage
	Line  int
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Stage != "" {
		fmt.Fprintf(&b, " in %q", string(e.Stage))
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Token != "" {
		fmt.Fprintf(&b, " (%q)", e.Token)
	}
	return b.String()
}

// Is lets errors.Is(err, ErrBadToken) and friends match on Kind.
func (e *ParseError) Is(target error) bool {
	return target == sentinel(e.Kind)
}

func sentinel(k Kind) error {
	switch k {
	case KindMissingSection:
		return ErrMissingSection
	case KindBadToken:
		return ErrBadToken
	case KindUnpairedInterval:
		return ErrUnpairedInterval
	case KindEmptySeedSet:
		return ErrEmptySeedSet
	}
	return nil
}

// KindOf extracts the Kind from err, or 0 if err is not a *ParseError.
func KindOf(err error) Kind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}
