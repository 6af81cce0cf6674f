package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// AddStoreArgs registers the persistence flags. They override the path and
// backend read by store.LoadConfig.
func AddStoreArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("path", "",
		"Directory holding the journal, defaults to ~/.daybook.")
	cmd.PersistentFlags().String("backend", "",
		"Storage backend: diskv, bolt or sqlite.")
	_ = viper.BindPFlag("path", cmd.PersistentFlags().Lookup("path"))
	_ = viper.BindPFlag("backend", cmd.PersistentFlags().Lookup("backend"))
}
