package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/printers"
)

// demoNotes seed a day with one note per common icon.
var demoNotes = []struct {
	text, bullet, context string
}{
	{"renew passport", "task", "priority"},
	{"water the tomatoes", "completed", ""},
	{"book dentist", "moved", ""},
	{"team standup at 10", "event", ""},
	{"try the new ramen place", "note", "inspiration"},
	{"why is the build slow on fridays", "task", "investigation"},
}

func addDemo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:    "demo",
		Short:  "Seed the selected day with sample notes",
		Hidden: true,
		Example: `
daybook demo --user me && daybook ui --user me
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := so.Selection()
			if err != nil {
				return err
			}
			if !sel.HasUser() {
				return errors.New("demo requires --user")
			}
			svc, done, err := openService()
			if err != nil {
				return err
			}
			defer done()
			for _, d := range demoNotes {
				if _, err := svc.Add(cmd.Context(), sel, d.text, d.bullet, d.context); err != nil {
					return err
				}
			}
			notes, err := svc.Notes(cmd.Context(), sel)
			if err != nil {
				return err
			}
			(&printers.PrettyPrint{Out: cmd.OutOrStdout()}).Day(sel.Day(), notes...)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
