package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/netrun/internal/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "netrun.db")
	store, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}
}

func TestPutGetSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 3, 21, 15, 0, 0, time.UTC)
	input := storage.Snapshot{
		Name:       "corpo-tower",
		Difficulty: "hard",
		Seed:       42,
		NodeCount:  9,
		Data:       []byte(`{"nodes":{"root":{"id":"root"}}}`),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := store.PutSnapshot(context.Background(), input); err != nil {
		t.Fatalf("put snapshot: %v", err)
	}

	got, err := store.GetSnapshot(context.Background(), "corpo-tower")
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if got.Name != input.Name || got.Difficulty != input.Difficulty || got.Seed != input.Seed || got.NodeCount != input.NodeCount {
		t.Fatalf("snapshot = %+v, want %+v", got, input)
	}
	if string(got.Data) != string(input.Data) {
		t.Fatalf("data = %s, want %s", got.Data, input.Data)
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps = %v/%v, want %v", got.CreatedAt, got.UpdatedAt, now)
	}
}

func TestPutSnapshotReplacesAndKeepsCreatedAt(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	created := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	if err := store.PutSnapshot(context.Background(), storage.Snapshot{
		Name: "slot", Difficulty: "easy", Data: []byte(`{"v":1}`), CreatedAt: created, UpdatedAt: created,
	}); err != nil {
		t.Fatalf("put first: %v", err)
	}
	if err := store.PutSnapshot(context.Background(), storage.Snapshot{
		Name: "slot", Difficulty: "deadly", Data: []byte(`{"v":2}`), CreatedAt: updated, UpdatedAt: updated,
	}); err != nil {
		t.Fatalf("put second: %v", err)
	}

	got, err := store.GetSnapshot(context.Background(), "slot")
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if string(got.Data) != `{"v":2}` || got.Difficulty != "deadly" {
		t.Fatalf("snapshot = %+v, want replaced payload", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, created)
	}
	if !got.UpdatedAt.Equal(updated) {
		t.Fatalf("updated_at = %v, want %v", got.UpdatedAt, updated)
	}
}

func TestPutSnapshotValidatesInput(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if err := store.PutSnapshot(context.Background(), storage.Snapshot{Data: []byte("{}")}); err == nil {
		t.Fatal("expected missing name error")
	}
	if err := store.PutSnapshot(context.Background(), storage.Snapshot{Name: "x"}); err == nil {
		t.Fatal("expected missing data error")
	}
}

func TestGetSnapshotNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.GetSnapshot(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetSnapshotReadsPlainJSONRows(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.sqlDB.Exec(
		`INSERT INTO snapshots (name, difficulty, seed, node_count, encoding, payload, created_at, updated_at)
		 VALUES ('legacy', 'standard', 0, 1, 'json', ?, 0, 0)`,
		[]byte(`{"legacy":true}`),
	); err != nil {
		t.Fatalf("insert legacy row: %v", err)
	}
	got, err := store.GetSnapshot(context.Background(), "legacy")
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if string(got.Data) != `{"legacy":true}` {
		t.Fatalf("data = %s", got.Data)
	}
}

func TestListSnapshotsOrdersByUpdatedAt(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	base := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"old", "newest", "middle"} {
		offsets := []time.Duration{0, 2 * time.Hour, time.Hour}
		at := base.Add(offsets[i])
		if err := store.PutSnapshot(context.Background(), storage.Snapshot{
			Name: name, Difficulty: "standard", Data: []byte("{}"), CreatedAt: at, UpdatedAt: at,
		}); err != nil {
			t.Fatalf("put %s: %v", name, err)
		}
	}

	got, err := store.ListSnapshots(context.Background())
	if err != nil {
		t.Fatalf("list snapshots: %v", err)
	}
	want := []string{"newest", "middle", "old"}
	if len(got) != len(want) {
		t.Fatalf("snapshots = %d, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("snapshot %d = %q, want %q", i, got[i].Name, name)
		}
		if len(got[i].Data) != 0 {
			t.Fatalf("snapshot %s carries data in list", name)
		}
	}
}

func TestDeleteSnapshot(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if err := store.PutSnapshot(context.Background(), storage.Snapshot{Name: "gone", Data: []byte("{}")}); err != nil {
		t.Fatalf("put snapshot: %v", err)
	}
	if err := store.DeleteSnapshot(context.Background(), "gone"); err != nil {
		t.Fatalf("delete snapshot: %v", err)
	}
	if _, err := store.GetSnapshot(context.Background(), "gone"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := store.DeleteSnapshot(context.Background(), "gone"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestStoreHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := store.PutSnapshot(ctx, storage.Snapshot{Name: "x", Data: []byte("{}")}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if _, err := store.ListSnapshots(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestNilStoreIsNotConfigured(t *testing.T) {
	t.Parallel()

	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
	if _, err := store.GetSnapshot(context.Background(), "x"); err == nil {
		t.Fatal("expected not configured error")
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "netrun.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
