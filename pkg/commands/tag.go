package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/printers"
)

func addTag(topLevel *cobra.Command) {
	long := strings.Builder{}
	long.WriteString("Set the bullet or context icon of a note.\n\n")
	long.WriteString("An empty context icon clears the context.\n\n")
	for _, c := range []glyph.Catalog{glyph.Bullets(), glyph.Contexts()} {
		long.WriteString(fmt.Sprintf("%s icons:\n", c.Category()))
		for _, icon := range c.Icons() {
			long.WriteString(fmt.Sprintf("  %s %s\n", icon.Symbol, icon.Name))
		}
	}

	cmd := &cobra.Command{
		Use:   "tag <note id> <bullet|context> [icon]",
		Short: "Set an icon on a note",
		Long:  long.String(),
		Example: `
daybook tag 0b6c1a7e-... bullet completed
daybook tag 0b6c1a7e-... context priority
daybook tag 0b6c1a7e-... context
`,
		ValidArgs: []string{"bullet", "context"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 || len(args) > 3 {
				return errors.New("requires a note id, a category and optionally an icon")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := glyph.ParseCategory(args[1])
			if err != nil {
				return oo.HandleError(err)
			}
			icon := ""
			if len(args) == 3 {
				icon = args[2]
			}
			return oo.HandleError(setTag(cmd.Context(), args[0], category, icon))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addComplete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "complete <note id>",
		Aliases: []string{"completed", "done"},
		Short:   "Mark a note completed",
		Example: `
daybook complete <note id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a note id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(setTag(cmd.Context(), args[0], glyph.Bullet, glyph.BulletCompleted))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addStrike(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "strike <note id>",
		Aliases: []string{"irrelevant"},
		Short:   "Mark a note irrelevant",
		Example: `
daybook strike <note id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a note id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(setTag(cmd.Context(), args[0], glyph.Bullet, "irrelevant"))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func setTag(ctx context.Context, id string, category glyph.Category, icon string) error {
	svc, done, err := openService()
	if err != nil {
		return err
	}
	defer done()
	n, err := svc.SetTag(ctx, id, category, icon)
	if err != nil {
		return err
	}
	if oo.JSON {
		return printJSON(n)
	}
	(&printers.PrettyPrint{ShowID: true}).Notes(n)
	return nil
}
