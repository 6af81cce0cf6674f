package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/daybook/pkg/logging"
)

// AddLogArgs registers the log destination flags.
func AddLogArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log", "",
		"Write debug logs to this file.")
	cmd.PersistentFlags().String("log-level", "debug",
		"Log level: debug, info, warn or error.")
	_ = viper.BindPFlag("log", cmd.PersistentFlags().Lookup("log"))
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
}

// LogOptions reads the bound log flags.
func LogOptions() logging.Options {
	return logging.Options{
		Path:  viper.GetString("log"),
		Level: viper.GetString("log_level"),
	}
}
