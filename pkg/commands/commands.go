package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/logging"
	"tableflip.dev/daybook/pkg/store"
)

var (
	oo = &options.OutputOptions{}
	so = &options.SelectionOptions{}

	logCloser io.Closer
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daybook",
		Short: base.Wrap80("A daily journal of tagged notes, on the command line and in the terminal."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Reads .daybook.yaml and DAYBOOK_* so selection and log
			// settings can come from config as well as flags.
			if _, err := store.LoadConfig(); err != nil {
				return err
			}
			closer, err := logging.Install(options.LogOptions())
			if err != nil {
				return err
			}
			logCloser = closer
			slog.Debug("command starting", "command", cmd.CommandPath())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				_ = logCloser.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddSelectionArgs(cmd, so)
	options.AddStoreArgs(cmd)
	options.AddLogArgs(cmd)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addTag(topLevel)
	addComplete(topLevel)
	addStrike(topLevel)
	addList(topLevel)
	addIcons(topLevel)
	addExport(topLevel)
	addReport(topLevel)
	addMigrate(topLevel)
	addCal(topLevel)
	addDemo(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
	addVersion(topLevel)
}

// openService loads the configured store.
func openService() (*app.Service, func(), error) {
	p, err := store.Open(nil)
	if err != nil {
		return nil, nil, err
	}
	return &app.Service{Persistence: p}, func() { _ = p.Close() }, nil
}
