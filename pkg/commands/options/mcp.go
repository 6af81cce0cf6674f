package options

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// MCPOptions locate the MCP endpoint.
type MCPOptions struct {
	Transport string
	Host      string
	Port      int
	Path      string
	TLSCert   string
	TLSKey    string
}

// AddMCPArgs registers the serve flags. Host and port may also come from the
// config file as mcp.host and mcp.port.
func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVarP(&o.Transport, "transport", "t", "http",
		"Serve over http or stdio.")
	cmd.Flags().StringVar(&o.Host, "host", "127.0.0.1",
		"Interface the http endpoint binds.")
	cmd.Flags().IntVar(&o.Port, "port", 8080,
		"Port for the http endpoint, 0 picks a free one.")
	cmd.Flags().StringVar(&o.Path, "endpoint", "/mcp",
		"URL path of the http endpoint.")
	cmd.Flags().StringVar(&o.TLSCert, "tls-cert", "",
		"Certificate file, serves https together with --tls-key.")
	cmd.Flags().StringVar(&o.TLSKey, "tls-key", "",
		"Private key file for --tls-cert.")
	_ = viper.BindPFlag("mcp.host", cmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("mcp.port", cmd.Flags().Lookup("port"))
}

// Addr joins host and port, preferring bound config values.
func (o *MCPOptions) Addr() (string, error) {
	host, port := o.Host, o.Port
	if v := viper.GetString("mcp.host"); v != "" {
		host = v
	}
	if viper.IsSet("mcp.port") {
		port = viper.GetInt("mcp.port")
	}
	if port < 0 || port > 65535 {
		return "", fmt.Errorf("port %d out of range", port)
	}
	return net.JoinHostPort(host, strconv.Itoa(port)), nil
}
