package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/glyph"
)

// TagOptions carry the icons applied to a new note.
type TagOptions struct {
	Bullet  string
	Context string
}

func AddTagArgs(cmd *cobra.Command, o *TagOptions) {
	cmd.Flags().StringVarP(&o.Bullet, "bullet", "b", "task",
		"Bullet icon id or name, example: task, note, event.")
	cmd.Flags().StringVarP(&o.Context, "context", "c", "",
		"Context icon id or name, example: priority, inspiration.")
	_ = cmd.RegisterFlagCompletionFunc("bullet", iconCompletions(glyph.Bullets()))
	_ = cmd.RegisterFlagCompletionFunc("context", iconCompletions(glyph.Contexts()))
}

func iconCompletions(c glyph.Catalog) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		out := make([]string, 0, len(c.Icons()))
		for _, icon := range c.Icons() {
			out = append(out, icon.Name+"\t"+icon.Symbol+" "+c.Label(icon))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
