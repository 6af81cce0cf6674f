package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/printers"
)

func addExport(topLevel *cobra.Command) {
	format := string(printers.FormatJSON)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the notes of a day",
		Example: `
daybook export --user me --format yaml
daybook export --date 2025-10-07 --format toml > day.toml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			f, err := printers.ParseFormat(format)
			if err != nil {
				return err
			}
			sel, err := so.Selection()
			if err != nil {
				return err
			}
			svc, done, err := openService()
			if err != nil {
				return err
			}
			defer done()
			notes, err := svc.Notes(cmd.Context(), sel)
			if err != nil {
				return err
			}
			return printers.Export(cmd.OutOrStdout(), f, notes)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", format,
		fmt.Sprintf("Output format. One of %s.", strings.Join(printers.Formats(), ", ")))
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return printers.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
