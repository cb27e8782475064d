// Package service hosts the netrun MCP server.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/netrun/internal/mcp/domain"
	"github.com/louisbranch/netrun/internal/platform/i18n"
	"github.com/louisbranch/netrun/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/text/language"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Netrun Table MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Config configures the MCP server.
type Config struct {
	// Locale selects the language of node labels and error messages.
	Locale language.Tag
	// Store backs table_save and table_load. Without one those tools are
	// not registered.
	Store storage.SnapshotStore
}

// Server hosts the MCP server and the tables it drives.
type Server struct {
	mcpServer *mcp.Server
	tables    *domain.Tables
}

// New creates a configured MCP server with an empty table registry.
func New(cfg Config) *Server {
	locale := cfg.Locale
	if locale == language.Und {
		locale = i18n.Default()
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	tables := domain.NewTables(locale)

	registerTableTools(mcpServer, tables)
	registerArchitectureTools(mcpServer, tables)
	registerTurnTools(mcpServer, tables)
	if cfg.Store != nil {
		registerStoreTools(mcpServer, tables, cfg.Store)
	}
	return &Server{mcpServer: mcpServer, tables: tables}
}

// Tables returns the server's table registry.
func (s *Server) Tables() *domain.Tables {
	return s.tables
}

// Run creates and serves the MCP server on stdio until the context ends.
func Run(ctx context.Context, cfg Config) error {
	return New(cfg).Serve(ctx)
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport runs the server over transport. Context cancellation is
// a clean stop.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
