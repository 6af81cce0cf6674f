package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/printers"
)

func addMigrate(topLevel *cobra.Command) {
	var target string
	dryRun := false

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Carry open tasks forward to another day",
		Long: base.Wrap80("Copy every open task of --date to --to and mark the originals as moved. " +
			"Use --dry-run to list the tasks that would move."),
		Example: `
daybook migrate --user me --date yesterday
daybook migrate --user me --date 2025-10-06 --to 2025-10-08 --dry-run
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			sel, err := so.Selection()
			if err != nil {
				return oo.HandleError(err)
			}
			day, err := options.ParseDay(target)
			if err != nil {
				return oo.HandleError(err)
			}
			svc, done, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()

			pp := printers.PrettyPrint{}
			if dryRun {
				open, err := svc.MigrationCandidates(cmd.Context(), sel)
				if err != nil {
					return oo.HandleError(err)
				}
				if oo.JSON {
					return oo.HandleError(printJSON(open))
				}
				pp.Day(sel.Day(), open...)
				return nil
			}

			moved, err := svc.Migrate(cmd.Context(), sel, day)
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.JSON {
				return oo.HandleError(printJSON(moved))
			}
			pp.Migrations(moved)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "to", "today", "day the open tasks move to")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the open tasks without moving them")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
