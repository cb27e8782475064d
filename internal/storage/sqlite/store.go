// Package sqlite provides a SQLite-backed snapshot store.
//
// Payloads are snappy-compressed; the encoding column records how each row
// was written so older plain JSON rows stay readable.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/snappy"
	sqlitemigrate "github.com/louisbranch/netrun/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/netrun/internal/storage"
	"github.com/louisbranch/netrun/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const (
	encodingJSON   = "json"
	encodingSnappy = "snappy"
)

var _ storage.SnapshotStore = (*Store)(nil)

// Store persists snapshots in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite snapshot store and applies embedded migrations. The
// parent directory is created when missing.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutSnapshot creates or replaces one snapshot.
func (s *Store) PutSnapshot(ctx context.Context, snapshot storage.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name := strings.TrimSpace(snapshot.Name)
	if name == "" {
		return fmt.Errorf("snapshot name is required")
	}
	if len(snapshot.Data) == 0 {
		return fmt.Errorf("snapshot data is required")
	}
	updatedAt := snapshot.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	createdAt := snapshot.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = updatedAt
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO snapshots (
		   name,
		   difficulty,
		   seed,
		   node_count,
		   encoding,
		   payload,
		   created_at,
		   updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   difficulty = excluded.difficulty,
		   seed = excluded.seed,
		   node_count = excluded.node_count,
		   encoding = excluded.encoding,
		   payload = excluded.payload,
		   updated_at = excluded.updated_at`,
		name,
		strings.TrimSpace(snapshot.Difficulty),
		snapshot.Seed,
		snapshot.NodeCount,
		encodingSnappy,
		snappy.Encode(nil, snapshot.Data),
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}
	return nil
}

// GetSnapshot returns one snapshot with its decoded payload.
func (s *Store) GetSnapshot(ctx context.Context, name string) (storage.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return storage.Snapshot{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Snapshot{}, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.Snapshot{}, fmt.Errorf("snapshot name is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT name, difficulty, seed, node_count, encoding, payload, created_at, updated_at
		   FROM snapshots
		  WHERE name = ?`,
		name,
	)

	var snapshot storage.Snapshot
	var encoding string
	var payload []byte
	var createdAt int64
	var updatedAt int64
	err := row.Scan(
		&snapshot.Name,
		&snapshot.Difficulty,
		&snapshot.Seed,
		&snapshot.NodeCount,
		&encoding,
		&payload,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Snapshot{}, storage.ErrNotFound
		}
		return storage.Snapshot{}, fmt.Errorf("get snapshot: %w", err)
	}

	data, err := decodePayload(encoding, payload)
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("get snapshot %s: %w", name, err)
	}
	snapshot.Data = data
	snapshot.CreatedAt = fromMillis(createdAt)
	snapshot.UpdatedAt = fromMillis(updatedAt)
	return snapshot, nil
}

// ListSnapshots returns snapshot metadata, most recently updated first.
func (s *Store) ListSnapshots(ctx context.Context) ([]storage.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT name, difficulty, seed, node_count, created_at, updated_at
		   FROM snapshots
		  ORDER BY updated_at DESC, name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []storage.Snapshot
	for rows.Next() {
		var snapshot storage.Snapshot
		var createdAt int64
		var updatedAt int64
		if err := rows.Scan(
			&snapshot.Name,
			&snapshot.Difficulty,
			&snapshot.Seed,
			&snapshot.NodeCount,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snapshot.CreatedAt = fromMillis(createdAt)
		snapshot.UpdatedAt = fromMillis(updatedAt)
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snapshots, nil
}

// DeleteSnapshot removes one snapshot.
func (s *Store) DeleteSnapshot(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("snapshot name is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM snapshots WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func decodePayload(encoding string, payload []byte) ([]byte, error) {
	switch encoding {
	case encodingSnappy:
		data, err := snappy.Decode(nil, payload)
		if err != nil {
			return nil, fmt.Errorf("decode snappy payload: %w", err)
		}
		return data, nil
	case encodingJSON:
		return payload, nil
	default:
		return nil, fmt.Errorf("unknown payload encoding %q", encoding)
	}
}
