package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"almanac/internal/runner"
)

var reports = []runner.Report{
	{Day: 2, Title: "Cube Conundrum", Err: errors.New("open day2.txt: no such file or directory")},
	{Day: 5, Title: "If You Give A Seed A Fertilizer", Part: 1, Result: "35", Duration: 1500 * time.Microsecond},
	{Day: 5, Title: "If You Give A Seed A Fertilizer", Part: 2, Err: errors.New("unpaired interval")},
}

func render(t *testing.T, format string) string {
	t.Helper()
	var b bytes.Buffer
	in, done := Start(&b, format, 1)
	for _, r := range reports {
		in <- r
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("%s writer: %v", format, err)
	}
	return b.String()
}

func TestText(t *testing.T) {
	got := render(t, "text")
	want := "Day 2: Error while reading input: open day2.txt: no such file or directory\n" +
		"Day 5:\n" +
		"\tPart 1: 35, 1.5ms\n" +
		"\tPart 2: error: unpaired interval\n"
	if got != want {
		t.Fatalf("text output mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestJSONL(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(render(t, "jsonl")), "\n")
	if len(lines) != len(reports) {
		t.Fatalf("want %d lines, got %d", len(reports), len(lines))
	}
	var w Wire
	if err := json.Unmarshal([]byte(lines[1]), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if w.Day != 5 || w.Part != 1 || w.Result != "35" || w.DurationNS != 1_500_000 || w.Duration != "1.5ms" {
		t.Fatalf("unexpected line: %+v", w)
	}
	if !strings.Contains(lines[0], `"input_error":true`) {
		t.Errorf("input failure should be flagged: %s", lines[0])
	}
	if strings.Contains(lines[0], `"part"`) {
		t.Errorf("input failure has no part: %s", lines[0])
	}
}

func TestJSONArray(t *testing.T) {
	var ws []Wire
	if err := json.Unmarshal([]byte(render(t, "json")), &ws); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(ws) != 3 || ws[2].Error != "unpaired interval" || ws[2].InputError {
		t.Fatalf("unexpected array: %+v", ws)
	}
}

func TestJSONEmptyIsArray(t *testing.T) {
	var b bytes.Buffer
	in, done := Start(&b, "json", 0)
	close(in)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(b.String()) != "[]" {
		t.Fatalf("want [], got %q", b.String())
	}
}

func TestYAML(t *testing.T) {
	var ws []Wire
	if err := yaml.Unmarshal([]byte(render(t, "yaml")), &ws); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(ws) != 3 || ws[1].Title != "If You Give A Seed A Fertilizer" || ws[1].Result != "35" {
		t.Fatalf("unexpected yaml: %+v", ws)
	}
}

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := Start(&b, "nope-format", 1)
	in <- reports[0] // drained, not blocked
	close(in)
	err := <-done
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want 'unknown output format' error, got: %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("nothing should be written, got %q", b.String())
	}
}

func TestFormatsRegistered(t *testing.T) {
	want := "json,jsonl,text,yaml"
	if got := strings.Join(Formats(), ","); got != want {
		t.Fatalf("Formats() = %s, want %s", got, want)
	}
	if Known("tsv") {
		t.Fatal("tsv should not be registered")
	}
}

type pipeWriter struct{}

func (pipeWriter) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestBrokenPipeIsNotAnError(t *testing.T) {
	in, done := Start(pipeWriter{}, "jsonl", 1)
	for _, r := range reports {
		in <- r
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("broken pipe should be swallowed, got %v", err)
	}
	if !IsBrokenPipe(io.ErrClosedPipe) || IsBrokenPipe(nil) || IsBrokenPipe(errors.New("x")) {
		t.Fatal("IsBrokenPipe classification wrong")
	}
}
