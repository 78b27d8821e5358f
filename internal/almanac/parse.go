// internal/almanac/parse.go
package almanac

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const seedsPrefix = "seeds:"

// Parse reads the seeds line and every canonical stage table from text.
func Parse(text string) (*Almanac, error) {
	return ParseStages(text, Stages)
}

// ParseStages is Parse with a caller-supplied stage list. Tables are looked up
// by name, so their order in text does not matter; the returned Almanac applies
// them in the order of stages.
func ParseStages(text string, stages []Stage) (*Almanac, error) {
	lines := splitLines(text)
	seeds, err := parseSeeds(lines)
	if err != nil {
		return nil, err
	}
	tables := make([]Table, 0, len(stages))
	for _, st := range stages {
		t, err := parseTable(lines, st)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return New(seeds, tables...), nil
}

// ParseSeeds reads only the "seeds: ..." first line.
func ParseSeeds(text string) ([]int64, error) {
	return parseSeeds(splitLines(text))
}

// ParseTable reads the section headed "<stage> map:".
func ParseTable(text string, stage Stage) (Table, error) {
	return parseTable(splitLines(text), stage)
}

func parseSeeds(lines []string) ([]int64, error) {
	if len(lines) == 0 || !strings.HasPrefix(lines[0], seedsPrefix) {
		return nil, &ParseError{Kind: KindMissingSection, Stage: "seeds", Line: 1,
			Msg: `first line must start with "seeds:"`}
	}
	fields := strings.Fields(strings.TrimPrefix(lines[0], seedsPrefix))
	seeds := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := parseNumber(f)
		if err != nil {
			return nil, &ParseError{Kind: KindBadToken, Stage: "seeds", Line: 1, Token: f, Msg: err.Error()}
		}
		seeds = append(seeds, v)
	}
	return seeds, nil
}

func parseTable(lines []string, stage Stage) (Table, error) {
	header := string(stage) + " map:"
	start := -1
	for i, ln := range lines {
		if strings.HasPrefix(ln, header) {
			start = i
			break
		}
	}
	if start < 0 {
		return Table{}, &ParseError{Kind: KindMissingSection, Stage: stage,
			Msg: fmt.Sprintf("no %q header", header)}
	}

	var ranges []Range
	for i := start + 1; i < len(lines) && strings.TrimSpace(lines[i]) != ""; i++ {
		f := strings.Fields(lines[i])
		if len(f) != 3 {
			return Table{}, &ParseError{Kind: KindBadToken, Stage: stage, Line: i + 1, Token: lines[i],
				Msg: fmt.Sprintf("want 3 fields (dest src length), got %d", len(f))}
		}
		var v [3]int64
		for j, tok := range f {
			n, err := parseNumber(tok)
			if err != nil {
				return Table{}, &ParseError{Kind: KindBadToken, Stage: stage, Line: i + 1, Token: tok, Msg: err.Error()}
			}
			v[j] = n
		}
		if v[1] > math.MaxInt64-v[2] || v[0] > math.MaxInt64-v[2] {
			return Table{}, &ParseError{Kind: KindBadToken, Stage: stage, Line: i + 1, Token: lines[i],
				Msg: "range end overflows int64"}
		}
		ranges = append(ranges, Range{Dest: v[0], Src: v[1], Length: v[2]})
	}
	return Table{stage: stage, ranges: ranges}, nil
}

// parseNumber accepts a non-negative decimal int64.
func parseNumber(tok string) (int64, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok {
			return 0, fmt.Errorf("not an integer: %v", ne.Err)
		}
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative value")
	}
	return v, nil
}

// splitLines splits on '\n', dropping '\r' and trailing blanks of each line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " \t\r")
	}
	return lines
}
