package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/printers"
)

func addCal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "cal",
		Aliases: []string{"calendar"},
		Short:   "Show the month of --date, days with notes in bold",
		Example: `
daybook cal --user me
daybook cal --user me --date 2025-2-1
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			sel, err := so.Selection()
			if err != nil {
				return err
			}
			month, err := time.Parse(time.DateOnly, sel.Day().String())
			if err != nil {
				return err
			}
			svc, done, err := openService()
			if err != nil {
				return err
			}
			defer done()
			counts, err := svc.MonthCounts(cmd.Context(), sel, month)
			if err != nil {
				return err
			}
			(&printers.PrettyPrint{Out: cmd.OutOrStdout()}).Month(month, counts)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
