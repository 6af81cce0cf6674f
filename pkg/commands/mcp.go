package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/mcp"
	"tableflip.dev/daybook/pkg/store"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the journal to MCP clients.",
		Long: `Serve the journal to assistants over the Model Context Protocol.

Clients can list a day's notes for a user, add notes, rewrite their text and
set bullet or context icons. The icon catalogs and single notes are readable
as resources (daybook://icons, daybook://days/{date}, daybook://notes/{id}).
Writes land in the same store the ui watches, so an open ui refreshes.`,
		Example: `
# Serve on http://127.0.0.1:8080/mcp
daybook mcp

# Let an editor spawn daybook as a stdio server
daybook mcp --transport stdio

# Any free port, printed once bound
daybook mcp --port 0
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			transport, err := mcp.ParseTransport(mo.Transport)
			if err != nil {
				return err
			}
			addr, err := mo.Addr()
			if err != nil {
				return err
			}
			persistence, err := store.Open(nil)
			if err != nil {
				return err
			}
			defer func() { _ = persistence.Close() }()

			r := mcp.Runner{
				Persistence: persistence,
				Version:     version,
				Transport:   transport,
				Logger:      slog.Default(),
				Addr:        addr,
				Path:        mo.Path,
				TLSCert:     mo.TLSCert,
				TLSKey:      mo.TLSKey,
				Stdin:       cmd.InOrStdin(),
				Stdout:      cmd.OutOrStdout(),
				Listening: func(url string) {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "daybook mcp on %s\n", url)
				},
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddMCPArgs(cmd, mo)
	topLevel.AddCommand(cmd)
}
