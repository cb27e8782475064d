package generate

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/netrun/internal/netrun/architecture"
	"github.com/louisbranch/netrun/internal/netrun/session"
	apperrors "github.com/louisbranch/netrun/internal/platform/errors"
	"github.com/louisbranch/netrun/internal/storage/sqlite"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, []string{})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Difficulty != "standard" {
		t.Fatalf("expected standard difficulty, got %q", cfg.Difficulty)
	}
	if !cfg.Branching || !cfg.Guarantees {
		t.Fatalf("expected branching and guarantees on, got %v/%v", cfg.Branching, cfg.Guarantees)
	}
	if cfg.Seed != 0 || cfg.Depth != 0 || cfg.Save != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	environ := []string{"NETRUN_DIFFICULTY=hard", "NETRUN_SEED=9", "NETRUN_LOCALE=de"}
	args := []string{"-depth", "7", "-branching=false", "-seed", "11", "-save", "run"}
	cfg, err := ParseConfig(fs, args, environ)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Difficulty != "hard" || cfg.Locale != "de" {
		t.Fatalf("expected env difficulty/locale, got %q/%q", cfg.Difficulty, cfg.Locale)
	}
	if cfg.Seed != 11 || cfg.Depth != 7 || cfg.Branching || cfg.Save != "run" {
		t.Fatalf("expected flag overrides, got %+v", cfg)
	}
}

func testConfig(t *testing.T) Config {
	t.Helper()
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-seed", "2024", "-depth", "6"}, []string{})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	return cfg
}

func TestRunWritesSnapshot(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer
	if err := Run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	st, err := session.Unmarshal(out.Bytes())
	if err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if st.MaxDepth() != 6 {
		t.Fatalf("max depth = %d, want 6", st.MaxDepth())
	}
	if st.Count(architecture.TypeFile) == 0 || st.Count(architecture.TypeControl) == 0 {
		t.Fatal("expected guaranteed File and Control nodes")
	}
	if st.BranchPlan == nil {
		t.Fatal("expected branch plan in snapshot")
	}
}

func TestRunIsReproducible(t *testing.T) {
	cfg := testConfig(t)
	cfg.Compact = true
	var first, second bytes.Buffer
	if err := Run(context.Background(), cfg, &first); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := Run(context.Background(), cfg, &second); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first.String() != second.String() {
		t.Fatal("expected identical snapshots for the same seed")
	}
	if strings.Count(strings.TrimSpace(first.String()), "\n") != 0 {
		t.Fatal("expected compact output on one line")
	}
}

func TestRunSavesSnapshot(t *testing.T) {
	cfg := testConfig(t)
	cfg.DBPath = filepath.Join(t.TempDir(), "netrun.db")
	cfg.Save = "vault"
	if err := Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("run: %v", err)
	}

	store, err := sqlite.Open(context.Background(), cfg.DBPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	snapshot, err := store.GetSnapshot(context.Background(), "vault")
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if snapshot.Seed != 2024 || snapshot.Difficulty != "standard" {
		t.Fatalf("seed/difficulty = %d/%s, want 2024/standard", snapshot.Seed, snapshot.Difficulty)
	}
	if _, err := session.Unmarshal(snapshot.Data); err != nil {
		t.Fatalf("stored snapshot invalid: %v", err)
	}
}

func TestRunRejectsUnknownDifficulty(t *testing.T) {
	cfg := testConfig(t)
	cfg.Difficulty = "impossible"
	err := Run(context.Background(), cfg, nil)
	if !apperrors.HasCode(err, apperrors.CodeUnknownDifficulty) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeUnknownDifficulty)
	}
}
