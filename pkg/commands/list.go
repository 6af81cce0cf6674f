package commands

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/printers"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"get", "ls"},
		Short:   "List the notes of a day",
		Long: base.Wrap80("List the notes of a day for the selected user and project. " +
			"Without a user every note of the day is listed."),
		Example: `
daybook list --user me
daybook list --user me --project garden --date 2025-10-07
daybook list --date yesterday --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := so.Selection()
			if err != nil {
				return oo.HandleError(err)
			}
			svc, done, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()
			notes, err := svc.Notes(cmd.Context(), sel)
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.JSON {
				return oo.HandleError(printJSON(notes))
			}
			pp := printers.PrettyPrint{ShowID: io.ShowID}
			pp.Day(sel.Day(), notes...)
			return nil
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(color.Output, string(b))
	return err
}
