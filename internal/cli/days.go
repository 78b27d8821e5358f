package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"almanac/internal/puzzle"
)

func (a *app) daysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, d := range puzzle.Days() {
				fmt.Fprintf(tw, "%d\t%s\t%d parts\n", d.Number, d.Title, len(d.Parts))
			}
			return tw.Flush()
		},
	}
}
