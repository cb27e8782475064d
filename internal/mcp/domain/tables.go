package domain

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/netrun/internal/core/random"
	"github.com/louisbranch/netrun/internal/netrun/session"
	apperrors "github.com/louisbranch/netrun/internal/platform/errors"
	"github.com/louisbranch/netrun/internal/platform/id"
	"golang.org/x/text/language"
)

// Table is one live netrun session.
type Table struct {
	mu        sync.Mutex
	id        string
	seed      int64
	createdAt time.Time
	engine    *session.Engine
	state     *session.State
}

// ID returns the table identifier.
func (t *Table) ID() string {
	return t.id
}

// Seed returns the seed the table's random source started from.
func (t *Table) Seed() int64 {
	return t.seed
}

// CreatedAt returns when the table was opened.
func (t *Table) CreatedAt() time.Time {
	return t.createdAt
}

// Do runs fn with the table locked. fn may replace *st wholesale.
func (t *Table) Do(fn func(engine *session.Engine, st *session.State) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.engine, t.state)
}

// Tables is the registry of live tables.
type Tables struct {
	mu     sync.RWMutex
	tables map[string]*Table
	locale language.Tag
	newID  func() (string, error)
	now    func() time.Time
}

// NewTables returns an empty registry whose tables name nodes in locale.
func NewTables(locale language.Tag) *Tables {
	return &Tables{
		tables: make(map[string]*Table),
		locale: locale,
		newID:  id.NewID,
		now:    time.Now,
	}
}

// Locale returns the registry's default language.
func (r *Tables) Locale() language.Tag {
	return r.locale
}

// Create opens a table. A zero seed draws a fresh one.
func (r *Tables) Create(seed int64) (*Table, error) {
	var src *rand.Rand
	if seed == 0 {
		var err error
		src, seed, err = random.NewLive()
		if err != nil {
			return nil, err
		}
	} else {
		src = random.New(seed)
	}
	tableID, err := r.newID()
	if err != nil {
		return nil, err
	}

	engine := session.NewEngine(src, r.locale)
	table := &Table{
		id:        tableID,
		seed:      seed,
		createdAt: r.now().UTC(),
		engine:    engine,
		state:     engine.NewState(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[tableID] = table
	return table, nil
}

// Get returns a table by id or fails with CodeSessionNotFound.
func (r *Tables) Get(tableID string) (*Table, error) {
	tableID = strings.TrimSpace(tableID)
	r.mu.RLock()
	defer r.mu.RUnlock()
	table, ok := r.tables[tableID]
	if !ok {
		return nil, apperrors.WithMetadata(apperrors.CodeSessionNotFound,
			"table "+tableID+" not found", map[string]string{"TableID": tableID})
	}
	return table, nil
}

// Close drops a table from the registry.
func (r *Tables) Close(tableID string) error {
	table, err := r.Get(tableID)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tables, table.id)
	return nil
}

// List returns every live table, oldest first.
func (r *Tables) List() []*Table {
	r.mu.RLock()
	tables := make([]*Table, 0, len(r.tables))
	for _, table := range r.tables {
		tables = append(tables, table)
	}
	r.mu.RUnlock()

	sort.Slice(tables, func(i, j int) bool {
		if !tables[i].createdAt.Equal(tables[j].createdAt) {
			return tables[i].createdAt.Before(tables[j].createdAt)
		}
		return tables[i].id < tables[j].id
	})
	return tables
}
