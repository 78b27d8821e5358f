// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects level and encoding. Verbose forces debug.
type Options struct {
	Level    string // debug|info|warn|error
	Encoding string // console|json
	Verbose  bool
}

// New returns a logger writing to w, tagged with a fresh run_id. Diagnostics
// never go to stdout, so callers pass stderr.
func New(o Options, w io.Writer) (*zap.Logger, error) {
	lvl := zapcore.WarnLevel
	if o.Level != "" {
		if err := lvl.UnmarshalText([]byte(strings.ToLower(o.Level))); err != nil {
			return nil, fmt.Errorf("log level %q: %w", o.Level, err)
		}
	}
	if o.Verbose {
		lvl = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionConfig().EncoderConfig
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	switch o.Encoding {
	case "", "console":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log encoding %q", o.Encoding)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(lvl))
	return zap.New(core).With(zap.String("run_id", uuid.NewString())), nil
}
