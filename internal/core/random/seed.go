package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a deterministic source for the given seed.
//
// The same seed always yields the same sequence of draws, which is what makes
// generated architectures and dice chains replayable in tests.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewLive returns a source seeded from crypto/rand along with the seed used,
// so callers can record it for later replay.
func NewLive() (*rand.Rand, int64, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, 0, err
	}
	return New(seed), seed, nil
}
