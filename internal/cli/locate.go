package cli

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"almanac/internal/almanac"
	"almanac/internal/appcore"
	"almanac/internal/input"
	"almanac/internal/writers"
)

// almanacDay is the day whose input is an almanac.
const almanacDay = 5

func (a *app) locateCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "locate [SEED...]",
		Short: "Print the location of each seed",
		Long: `locate follows each SEED through the almanac and prints "seed -> location".
Without SEED arguments the seeds listed in the almanac are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds := make([]int64, 0, len(args))
			for _, s := range args {
				v, err := strconv.ParseInt(s, 10, 64)
				if err != nil || v < 0 {
					return usageError("invalid seed %q: want a non-negative integer", s)
				}
				seeds = append(seeds, v)
			}

			if path == "" {
				path = input.Path(a.cfg.Input.Dir, a.cfg.Input.Pattern, almanacDay)
			}
			text, err := input.Load(path)
			if err != nil {
				return &exitError{code: appcore.ExitFailed, err: err}
			}
			alm, err := almanac.Parse(text)
			if err != nil {
				return &exitError{code: appcore.ExitFailed, err: fmt.Errorf("%s: %w", path, err)}
			}
			if len(seeds) == 0 {
				seeds = alm.Seeds()
			}

			w := bufio.NewWriter(a.stdout)
			for _, s := range seeds {
				fmt.Fprintf(w, "%d -> %d\n", s, alm.Locate(s))
			}
			if err := w.Flush(); err != nil && !writers.IsBrokenPipe(err) {
				return &exitError{code: appcore.ExitIO, err: err}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "input", "i", "", `almanac file, "-" for stdin (default: the day 5 input)`)
	return cmd
}
