package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/snake"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TagOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a note to the day",
		Example: `
daybook add --user me call the plumber
daybook add --user me --bullet event --context priority standup at 10
daybook add --user me --date tomorrow -b note bring the ladder
daybook add --user me -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 && !i.Interactive {
				return errors.New("requires note text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := so.Selection()
			if err != nil {
				return oo.HandleError(err)
			}
			svc, done, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()
			text := strings.Join(args, " ")
			if i.Interactive {
				p := snake.Prompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
				a, err := p.PromptNote(text)
				if err != nil {
					return oo.HandleError(err)
				}
				text, to.Bullet, to.Context = a.Text, a.Bullet, a.Context
			}
			n, err := svc.Add(cmd.Context(), sel, text, to.Bullet, to.Context)
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.JSON {
				return oo.HandleError(printJSON(n))
			}
			pp := printers.PrettyPrint{ShowID: io.ShowID}
			pp.Notes(n)
			return nil
		},
	}

	options.AddTagArgs(cmd, to)
	options.AddShowIDArgs(cmd, io)
	options.InteractiveArgs(cmd, i)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
