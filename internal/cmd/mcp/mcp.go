// Package mcp parses MCP command flags and serves netrun tables over stdio.
package mcp

import (
	"context"
	"flag"
	"log"
	"strings"

	mcpservice "github.com/louisbranch/netrun/internal/mcp/service"
	"github.com/louisbranch/netrun/internal/platform/cmd"
	"github.com/louisbranch/netrun/internal/platform/config"
	"github.com/louisbranch/netrun/internal/platform/i18n"
	"github.com/louisbranch/netrun/internal/storage"
	"github.com/louisbranch/netrun/internal/storage/sqlite"
)

// Config holds MCP command configuration.
type Config struct {
	Locale string `env:"NETRUN_LOCALE" envDefault:"en"`
	config.Storage
	// NoStore disables table_save and table_load.
	NoStore bool `env:"NETRUN_MCP_NO_STORE"`
}

// ParseConfig parses environment and flags into a Config. A nil environ
// reads the process environment.
func ParseConfig(fs *flag.FlagSet, args, environ []string) (Config, error) {
	var cfg Config
	if err := cmd.ParseConfigFromArgs(&cfg, fs, args, environ, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "language of node labels and errors (en, de)")
		fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite file for saved tables")
		fs.BoolVar(&cfg.NoStore, "no-store", cfg.NoStore, "disable saving tables")
	}); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP server with tracing until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return cmd.RunWithTelemetry(ctx, cmd.ServiceMCP, func(ctx context.Context) error {
		serviceCfg := mcpservice.Config{Locale: i18n.ResolveTag(cfg.Locale)}
		if !cfg.NoStore && strings.TrimSpace(cfg.DBPath) != "" {
			store, err := sqlite.Open(ctx, cfg.DBPath)
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					log.Printf("close snapshot store: %v", err)
				}
			}()
			serviceCfg.Store = storage.SnapshotStore(store)
		}
		return mcpservice.Run(ctx, serviceCfg)
	})
}
