package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// Snapshot is one saved table.
type Snapshot struct {
	// Name is the save slot, unique per store.
	Name string
	// Difficulty of the architecture at save time.
	Difficulty string
	// Seed the table's random source was created with; zero when unknown.
	Seed      int64
	NodeCount int
	// Data is the JSON session snapshot. List results leave it empty.
	Data      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SnapshotStore persists saved tables.
type SnapshotStore interface {
	// PutSnapshot creates or replaces the snapshot named snapshot.Name.
	// Replacing keeps the original creation time.
	PutSnapshot(ctx context.Context, snapshot Snapshot) error
	GetSnapshot(ctx context.Context, name string) (Snapshot, error)
	// ListSnapshots returns metadata for every snapshot, most recently
	// updated first.
	ListSnapshots(ctx context.Context) ([]Snapshot, error)
	DeleteSnapshot(ctx context.Context, name string) error
}
