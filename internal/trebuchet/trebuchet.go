// Package trebuchet recovers calibration values: the first and last digit of
// each line, read either as plain ASCII digits or also as spelled-out words.
package trebuchet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoDigit marks a line that carries no recognizable digit.
var ErrNoDigit = errors.New("no digit")

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i], if any.
func digitAt(s string, i int, spelled bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for n, w := range words {
		if strings.HasPrefix(s[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}

// Value is 10*first+last for one line. Spelled words may overlap
// ("eightwo" reads 8 then 2).
func Value(line string, spelled bool) (int, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(line, i, spelled); ok {
			first = d
			break
		}
	}
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, spelled); ok {
			last = d
			break
		}
	}
	if first < 0 {
		return 0, ErrNoDigit
	}
	return first*10 + last, nil
}

// Sum adds the calibration value of every non-empty line.
func Sum(input string, spelled bool) (int, error) {
	total := 0
	for n, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := Value(line, spelled)
		if err != nil {
			return 0, fmt.Errorf("line %d %q: %w", n+1, line, err)
		}
		total += v
	}
	return total, nil
}

// Part1 sums values built from ASCII digits only.
func Part1(input string) (string, error) {
	v, err := Sum(input, false)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(v), nil
}

// Part2 also accepts the words one..nine.
func Part2(input string) (string, error) {
	v, err := Sum(input, true)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(v), nil
}
