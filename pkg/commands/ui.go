package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	teaui "tableflip.dev/daybook/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	debug := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
daybook ui --user me
daybook ui --user me --project garden --date yesterday
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := so.Selection()
			if err != nil {
				return err
			}
			svc, done, err := openService()
			if err != nil {
				return err
			}
			defer done()
			return teaui.Run(svc, teaui.Options{
				Selection: sel,
				Context:   cmd.Context(),
				Logger:    slog.Default(),
				Debug:     debug,
			})
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Show the event log pane.")

	topLevel.AddCommand(cmd)
}
