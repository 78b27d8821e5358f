// internal/cli/root.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"almanac/internal/appcore"
	"almanac/internal/config"
	"almanac/internal/logging"
	"almanac/internal/puzzle"
	"almanac/internal/runner"
	"almanac/internal/search"
	"almanac/internal/version"
)

// exitError carries a non-default exit code out of a RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(format string, args ...any) error {
	return &exitError{code: appcore.ExitUsage, err: fmt.Errorf(format, args...)}
}

type app struct {
	stdout, stderr io.Writer
	v              *viper.Viper

	cfgFile string
	verbose bool
	day     int
	part    int
	quiet   bool

	cfg  *config.Config
	log  *zap.Logger
	code int
}

// Run parses argv, executes the selected command and returns the exit code.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, v: config.New()}
	root := a.rootCommand()
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		return appcore.ExitUsage
	}
	return a.code
}

// flag name → config key
var flagKeys = map[string]string{
	"input-dir":     "input.dir",
	"input-pattern": "input.pattern",
	"threads":       "search.threads",
	"chunk-size":    "search.chunk_size",
	"output":        "output.format",
	"log-level":     "logging.level",
	"log-encoding":  "logging.encoding",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

func (a *app) rootCommand() *cobra.Command {
	d := config.Default()
	root := &cobra.Command{
		Use:   "almanac",
		Short: "Solve almanac puzzles: seed-to-location pipelines and their minima",
		Long: `almanac runs the registered puzzle solvers against their inputs.

Each day reads <input-dir>/day<N>.txt (override with --input-pattern) and
prints one result per part. Day 5 follows every seed through the almanac's
seven stage tables and reports the lowest location, first for the listed
seeds and then for the seed ranges they describe.

Settings come from flags, ALMANAC_* environment variables, and an optional
almanac.yaml (./ or ` + config.ConfigDir() + `).`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.day < 0 || a.part < 0 {
				return usageError("--day and --part must be >= 0")
			}
			a.code = appcore.Run(cmd.Context(), a.stdout, a.stderr, appcore.Options{
				Run: runner.Options{
					Day:      a.day,
					Part:     a.part,
					InputDir: a.cfg.Input.Dir,
					Pattern:  a.cfg.Input.Pattern,
					Env: puzzle.Env{
						Search: search.Config{Threads: a.cfg.Search.Threads, ChunkSize: a.cfg.Search.ChunkSize},
						Logger: a.log,
					},
				},
				Format: a.cfg.Output.Format,
				Quiet:  a.quiet,
			}, a.log)
			return nil
		},
	}
	root.SetVersionTemplate("almanac version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default ./almanac.yaml, then "+config.ConfigFile()+")")
	pf.String("input-dir", d.Input.Dir, "directory holding the day inputs")
	pf.String("input-pattern", d.Input.Pattern, "input file name, %d is the day number")
	pf.IntP("threads", "t", d.Search.Threads, "interval search workers (0 = all CPUs)")
	pf.Int64("chunk-size", d.Search.ChunkSize, "seeds per work unit (0 = auto)")
	pf.StringP("output", "o", d.Output.Format, "output format: text|json|jsonl|yaml")
	pf.String("log-level", d.Logging.Level, "log level: debug|info|warn|error")
	pf.String("log-encoding", d.Logging.Encoding, "log encoding: console|json")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	f := root.Flags()
	f.IntVarP(&a.day, "day", "d", 0, "day to run (0 = every registered day)")
	f.IntVarP(&a.part, "part", "p", 0, "part to run (0 = every part)")
	f.BoolVarP(&a.quiet, "quiet", "q", false, "suppress tuning warnings")

	// Lookup never misses: every name in flagKeys is registered above.
	if err := bindFlags(a.v, pf); err != nil {
		panic(err)
	}

	root.AddCommand(a.locateCommand(), a.daysCommand())
	return root
}

// setup resolves configuration and the logger once flags are parsed.
func (a *app) setup() error {
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return usageError("%w", err)
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return usageError("invalid configuration: %w", err)
	}
	log, err := logging.New(logging.Options{
		Level:    cfg.Logging.Level,
		Encoding: cfg.Logging.Encoding,
		Verbose:  a.verbose,
	}, a.stderr)
	if err != nil {
		return usageError("%w", err)
	}
	a.cfg, a.log = cfg, log
	a.log.Debug("configuration loaded",
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.String("input_dir", cfg.Input.Dir),
		zap.Int("threads", cfg.Search.Threads),
		zap.Int64("chunk_size", cfg.Search.ChunkSize),
		zap.String("output", cfg.Output.Format),
	)
	return nil
}
