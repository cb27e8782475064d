// Package generate builds one netrun architecture from configuration and
// prints its session snapshot.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/louisbranch/netrun/internal/netrun/session"
	"github.com/louisbranch/netrun/internal/platform/cmd"
	"github.com/louisbranch/netrun/internal/platform/config"
	"github.com/louisbranch/netrun/internal/platform/otel"
	"github.com/louisbranch/netrun/internal/storage"
	"github.com/louisbranch/netrun/internal/storage/sqlite"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds generate command configuration.
type Config struct {
	config.Engine
	config.Storage
	// Save names the slot to store the snapshot under; empty skips saving.
	Save string `env:"NETRUN_SAVE"`
	// Compact prints the snapshot on one line.
	Compact bool
}

// ParseConfig parses environment and flags into a Config. A nil environ
// reads the process environment.
func ParseConfig(fs *flag.FlagSet, args, environ []string) (Config, error) {
	var cfg Config
	if err := cmd.ParseConfigFromArgs(&cfg, fs, args, environ, func(fs *flag.FlagSet, cfg *Config) {
		fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
		fs.StringVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "easy, standard, hard or deadly")
		fs.IntVar(&cfg.Depth, "depth", cfg.Depth, "architecture depth, clamped to 3-12 (0 = roll)")
		fs.BoolVar(&cfg.Branching, "branching", cfg.Branching, "allow branches")
		fs.BoolVar(&cfg.Guarantees, "guarantees", cfg.Guarantees, "ensure a File and a Control node")
		fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "language of node labels (en, de)")
		fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite file for saved tables")
		fs.StringVar(&cfg.Save, "save", cfg.Save, "save the snapshot under this name")
		fs.BoolVar(&cfg.Compact, "compact", cfg.Compact, "print the snapshot on one line")
	}); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run generates an architecture and writes the snapshot to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return cmd.RunWithTelemetry(ctx, cmd.ServiceGenerate, func(ctx context.Context) error {
		ctx, span := otel.Tracer("github.com/louisbranch/netrun/internal/cmd/generate").Start(ctx, "generate")
		defer span.End()

		opts, err := cfg.GeneratorOptions()
		if err != nil {
			return err
		}
		src, seed, err := cfg.Source()
		if err != nil {
			return err
		}
		engine := session.NewEngine(src, cfg.Tag())
		st := engine.NewState()
		res, err := engine.Generate(st, opts)
		if err != nil {
			return err
		}
		span.SetAttributes(
			attribute.Int64("netrun.seed", seed),
			attribute.String("netrun.difficulty", string(res.Difficulty)),
			attribute.Int("netrun.depth", res.Depth),
			attribute.Int("netrun.node_count", len(st.Nodes)),
		)
		log.Printf("generated %s architecture: depth %d, %d nodes, %d branches, seed %d",
			res.Difficulty, res.Depth, len(st.Nodes), res.Plan.Actual, seed)

		data, err := session.Marshal(st)
		if err != nil {
			return err
		}
		if name := strings.TrimSpace(cfg.Save); name != "" {
			if err := save(ctx, cfg.DBPath, storage.Snapshot{
				Name:       name,
				Difficulty: string(res.Difficulty),
				Seed:       seed,
				NodeCount:  len(st.Nodes),
				Data:       data,
			}); err != nil {
				return err
			}
			log.Printf("saved snapshot %q to %s", name, cfg.DBPath)
		}
		return writeSnapshot(out, data, cfg.Compact)
	})
}

func save(ctx context.Context, path string, snapshot storage.Snapshot) error {
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close snapshot store: %v", err)
		}
	}()
	if err := store.PutSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func writeSnapshot(out io.Writer, data []byte, compact bool) error {
	if !compact {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("format snapshot: %w", err)
		}
		data = buf.Bytes()
	}
	if _, err := fmt.Fprintln(out, string(data)); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
