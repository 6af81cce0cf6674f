package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/note"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	var from, to, last string
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Display completed notes grouped by day",
		Long: `Report lists completed notes grouped by day between --from and --to, inclusive.
Without --from the window ends at --to and spans --last.

Examples:
  daybook report --user me
  daybook report --user me --last 3d
  daybook report --user me --from 2025-10-01 --to 2025-10-07`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			sel, err := so.Selection()
			if err != nil {
				return oo.HandleError(err)
			}
			end, err := options.ParseDay(to)
			if err != nil {
				return oo.HandleError(err)
			}
			var start note.Day
			if cmd.Flags().Changed("from") {
				start, err = options.ParseDay(from)
			} else {
				var days int
				days, _, err = timeutil.ParseWindow(last)
				if err == nil {
					start, err = timeutil.Start(end, days)
				}
			}
			if err != nil {
				return oo.HandleError(err)
			}
			svc, done, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()
			result, err := svc.Report(cmd.Context(), sel, start, end)
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.JSON {
				return oo.HandleError(printJSON(result))
			}
			(&printers.PrettyPrint{ShowID: io.ShowID}).Report(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first day to include")
	cmd.Flags().StringVar(&last, "last", timeutil.DefaultWindow, "window ending at --to, for example 3d or 1w")
	cmd.Flags().StringVar(&to, "to", "today", "last day to include")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
