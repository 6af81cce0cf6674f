package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/daybook/pkg/store"
)

// Transport selects how notes are served.
type Transport string

const (
	TransportHTTP  Transport = "http"
	TransportStdio Transport = "stdio"
)

const (
	defaultAddr = "127.0.0.1:8080"
	defaultPath = "/mcp"

	instructions = "Read and write daybook notes. A note belongs to a day, a user and an " +
		"optional project, and carries one bullet and one context icon. Call list_icons " +
		"before tagging to learn the valid ids."
)

// ParseTransport accepts http, stdio or empty, which means http.
func ParseTransport(raw string) (Transport, error) {
	switch t := Transport(strings.ToLower(strings.TrimSpace(raw))); t {
	case "", TransportHTTP:
		return TransportHTTP, nil
	case TransportStdio:
		return t, nil
	default:
		return "", fmt.Errorf("mcp: unknown transport %q, want http or stdio", raw)
	}
}

// Runner serves the note tools over one transport until ctx is done.
type Runner struct {
	Persistence store.Persistence
	Version     string
	Transport   Transport
	Logger      *slog.Logger

	// Addr and Path locate the streamable HTTP endpoint.
	Addr    string
	Path    string
	TLSCert string
	TLSKey  string
	// Listening receives the endpoint URL once the socket is bound.
	Listening func(url string)

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

// Do serves until ctx is cancelled or the transport fails.
func (r Runner) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("mcp: runner requires persistence")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	srv := r.newServer()
	r.logger().Debug("mcp: serving notes", "transport", string(r.Transport))

	switch r.Transport {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		in, out := r.Stdin, r.Stdout
		if in == nil {
			in = os.Stdin
		}
		if out == nil {
			out = os.Stdout
		}
		return server.NewStdioServer(srv).Listen(ctx, in, out)
	default:
		return fmt.Errorf("mcp: unknown transport %q", r.Transport)
	}
}

func (r Runner) newServer() *server.MCPServer {
	version := r.Version
	if version == "" {
		version = "dev"
	}
	srv := server.NewMCPServer("daybook", version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions(instructions),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	svc := NewService(r.Persistence)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

func (r Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	secure := r.TLSCert != "" || r.TLSKey != ""
	if secure && (r.TLSCert == "" || r.TLSKey == "") {
		return errors.New("mcp: tls needs both a certificate and a key")
	}
	addr := r.Addr
	if addr == "" {
		addr = defaultAddr
	}
	path := EndpointPath(r.Path)

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("mcp: listen %s: %w", addr, err)
	}
	url := EndpointURL(ln.Addr(), path, secure)
	r.logger().Info("mcp: listening", "url", url)
	if r.Listening != nil {
		r.Listening(url)
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdown)
	}()

	if secure {
		err = httpSrv.ServeTLS(ln, r.TLSCert, r.TLSKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// EndpointPath trims p and roots it, defaulting to /mcp.
func EndpointPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return defaultPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// EndpointURL is the address clients dial. Wildcard binds are reported as
// loopback.
func EndpointURL(addr net.Addr, path string, secure bool) string {
	scheme := "http"
	if secure {
		scheme = "https"
	}
	host, port := addr.String(), ""
	if tcp, ok := addr.(*net.TCPAddr); ok {
		ip := tcp.IP
		if ip == nil || ip.IsUnspecified() {
			ip = net.IPv4(127, 0, 0, 1)
		}
		host, port = ip.String(), fmt.Sprint(tcp.Port)
	}
	if port != "" {
		host = net.JoinHostPort(host, port)
	}
	return scheme + "://" + host + path
}
