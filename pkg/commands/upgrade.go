package commands

import (
	"bytes"
	"fmt"
	"github.com/spf13/cobra"
	"os/exec"
	"strings"
)

func addUpgrade(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade the daybook cli.",
		Example: `
daybook upgrade
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ex := exec.Command("go", "install", "tableflip.dev/daybook/cmd/daybook@latest")
			var out bytes.Buffer
			ex.Stdout = &out
			ex.Stderr = &out
			if err := ex.Run(); err != nil {
				return oo.HandleError(fmt.Errorf("%s: %w: %s", ex.String(), err, strings.TrimSpace(out.String())))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ex.String())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
