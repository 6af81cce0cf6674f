package options

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/daybook/pkg/journal"
)

// SelectionOptions scope a command to a day, project and user.
type SelectionOptions struct {
	Date    string
	Project string
	User    string
}

// AddSelectionArgs registers the selection flags on cmd and every
// subcommand. --user and --project fall back to DAYBOOK_USER and
// DAYBOOK_PROJECT or the config file.
func AddSelectionArgs(cmd *cobra.Command, o *SelectionOptions) {
	cmd.PersistentFlags().StringVar(&o.Date, "date", "today",
		`Journal day, example: --date="2025-10-07", --date="10/7" or --date=yesterday.`)
	cmd.PersistentFlags().StringVarP(&o.Project, "project", "p", "",
		"Project tag to scope notes to.")
	cmd.PersistentFlags().StringVarP(&o.User, "user", "u", "",
		"User id the notes belong to.")
	_ = viper.BindPFlag("project", cmd.PersistentFlags().Lookup("project"))
	_ = viper.BindPFlag("user", cmd.PersistentFlags().Lookup("user"))
}

// Selection resolves the flags into a journal selection.
func (o *SelectionOptions) Selection() (journal.Selection, error) {
	day, err := ParseDay(o.Date)
	if err != nil {
		return journal.Selection{}, err
	}
	return journal.Selection{
		Date:    day,
		Project: strings.TrimSpace(viper.GetString("project")),
		UserID:  strings.TrimSpace(viper.GetString("user")),
	}, nil
}
