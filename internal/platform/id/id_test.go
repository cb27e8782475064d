package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

// decode turns a table id back into the UUID it was encoded from.
func decode(t *testing.T, id string) uuid.UUID {
	t.Helper()
	raw, err := encoding.DecodeString(strings.ToUpper(id))
	if err != nil {
		t.Fatalf("decode %q: %v", id, err)
	}
	u, err := uuid.FromBytes(raw)
	if err != nil {
		t.Fatalf("uuid from %q: %v", id, err)
	}
	return u
}

func TestNewIDIsLowercaseBase32(t *testing.T) {
	id, err := NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if len(id) != 26 {
		t.Fatalf("len(id) = %d, want 26", len(id))
	}
	for _, r := range id {
		if (r < 'a' || r > 'z') && (r < '2' || r > '7') {
			t.Fatalf("id %q has character %q outside lowercase base32", id, r)
		}
	}
}

func TestNewIDWrapsRandomUUID(t *testing.T) {
	id, err := NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	u := decode(t, id)
	if u.Version() != 4 {
		t.Fatalf("version = %d, want 4", u.Version())
	}
	if u.Variant() != uuid.RFC4122 {
		t.Fatalf("variant = %v, want %v", u.Variant(), uuid.RFC4122)
	}
}

func TestNewIDIsUnique(t *testing.T) {
	seen := make(map[string]bool, 100)
	for i := 0; i < 100; i++ {
		id, err := NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if seen[id] {
			t.Fatalf("id %q generated twice", id)
		}
		seen[id] = true
	}
}
