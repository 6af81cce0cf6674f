package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/printers"
)

func addEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit <note id> [text]",
		Short: "Replace the text of a note",
		Example: `
daybook edit 0b6c1a7e-... call the plumber again
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a note id and text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()
			n, err := svc.Edit(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.JSON {
				return oo.HandleError(printJSON(n))
			}
			(&printers.PrettyPrint{ShowID: true}).Notes(n)
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
