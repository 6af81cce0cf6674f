package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/printers"
)

func addIcons(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "icons",
		Aliases: []string{"key"},
		Short:   "Print the bullet and context icons",
		Example: `
daybook icons
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			pp.Key(glyph.Bullets())
			pp.Key(glyph.Contexts())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
