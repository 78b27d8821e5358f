package writers

import (
	"io"

	"gopkg.in/yaml.v3"

	"almanac/internal/runner"
)

func init() { Register("yaml", WriteYAML) }

// WriteYAML buffers every report and writes one YAML sequence.
func WriteYAML(w io.Writer, in <-chan runner.Report) error {
	all := []Wire{}
	for r := range in {
		all = append(all, ToWire(r))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(all); err != nil {
		return err
	}
	return enc.Close()
}
