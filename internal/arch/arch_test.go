// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

const module = "almanac/"

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	// Outer layers (cli, appcore, writers, runner) may import inner ones, never
	// the reverse.
	outer := []string{
		"almanac/internal/runner", "almanac/internal/writers",
		"almanac/internal/appcore", "almanac/internal/cli",
		"almanac/internal/config", "almanac/cmd/",
	}
	bans := map[string][]string{
		"almanac/internal/almanac": append([]string{
			"almanac/internal/search", "almanac/internal/puzzle",
			"almanac/internal/input", "almanac/internal/logging",
		}, outer...),
		"almanac/internal/search":    append([]string{"almanac/internal/puzzle", "almanac/internal/input"}, outer...),
		"almanac/internal/trebuchet": append([]string{"almanac/internal/puzzle"}, outer...),
		"almanac/internal/cubes":     append([]string{"almanac/internal/puzzle"}, outer...),
		"almanac/internal/puzzle":    append([]string{"almanac/internal/input"}, outer...),
		"almanac/internal/runner": {
			"almanac/internal/writers", "almanac/internal/appcore",
			"almanac/internal/cli", "almanac/internal/config", "almanac/cmd/",
		},
		"almanac/internal/writers": {
			"almanac/internal/appcore", "almanac/internal/cli", "almanac/internal/config",
			"almanac/internal/search", "almanac/internal/puzzle", "almanac/cmd/",
		},
		"almanac/internal/config": {
			"almanac/internal/appcore", "almanac/internal/cli",
			"almanac/internal/runner", "almanac/internal/writers", "almanac/cmd/",
		},
	}

	seen := 0
	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, module) {
			continue
		}
		seen++
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if imp != prefix && !strings.HasPrefix(imp, prefix+"/") {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, module) {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if seen == 0 {
		t.Fatal("go list returned no module packages")
	}
	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
