// Package storagefake provides in-memory storage fakes for tests.
package storagefake

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/netrun/internal/storage"
)

var _ storage.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is an in-memory SnapshotStore fake for tests.
type SnapshotStore struct {
	mu        sync.Mutex
	Snapshots map[string]storage.Snapshot
	// Now stamps writes that carry no UpdatedAt; nil uses time.Now.
	Now func() time.Time
	// PutErr, when set, is returned by every PutSnapshot call.
	PutErr error
}

// NewSnapshotStore constructs a SnapshotStore fake with an initialized map.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{Snapshots: make(map[string]storage.Snapshot)}
}

func (s *SnapshotStore) PutSnapshot(_ context.Context, snapshot storage.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PutErr != nil {
		return s.PutErr
	}
	name := strings.TrimSpace(snapshot.Name)
	if snapshot.UpdatedAt.IsZero() {
		snapshot.UpdatedAt = s.now()
	}
	if prev, ok := s.Snapshots[name]; ok {
		snapshot.CreatedAt = prev.CreatedAt
	} else if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = snapshot.UpdatedAt
	}
	snapshot.Name = name
	snapshot.Data = append([]byte(nil), snapshot.Data...)
	s.Snapshots[name] = snapshot
	return nil
}

func (s *SnapshotStore) GetSnapshot(_ context.Context, name string) (storage.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot, ok := s.Snapshots[strings.TrimSpace(name)]
	if !ok {
		return storage.Snapshot{}, storage.ErrNotFound
	}
	snapshot.Data = append([]byte(nil), snapshot.Data...)
	return snapshot, nil
}

func (s *SnapshotStore) ListSnapshots(_ context.Context) ([]storage.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]storage.Snapshot, 0, len(s.Snapshots))
	for _, snapshot := range s.Snapshots {
		snapshot.Data = nil
		out = append(out, snapshot)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *SnapshotStore) DeleteSnapshot(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	name = strings.TrimSpace(name)
	if _, ok := s.Snapshots[name]; !ok {
		return storage.ErrNotFound
	}
	delete(s.Snapshots, name)
	return nil
}

func (s *SnapshotStore) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
