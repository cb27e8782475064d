// Package difficulty holds the static table of architecture difficulty tiers.
package difficulty

import (
	"strings"

	apperrors "github.com/louisbranch/netrun/internal/platform/errors"
)

// Name identifies a difficulty tier.
type Name string

const (
	// Easy builds shallow architectures with weak defenses.
	Easy Name = "easy"
	// Standard is the default tier.
	Standard Name = "standard"
	// Hard builds deep architectures with steep DV growth.
	Hard Name = "hard"
	// Deadly builds the deepest, most hostile architectures.
	Deadly Name = "deadly"
)

// Default is the tier used when none was requested.
const Default = Standard

// Config holds the generation parameters for a tier.
type Config struct {
	// Depth range drawn from when no explicit depth is requested
	DepthMin int
	DepthMax int

	// DV of the root; deeper nodes add DVPerDepth per level below the root
	BaseDV     int
	DVPerDepth int

	// Weight driver for Black ICE selection, 0..1
	BlackIceProb float64

	// Damage dealt by hostile nodes
	IceDmg int

	// Chance that a frontier node splits into two children, 0..1
	BranchProb float64

	// Planned forced-branch count range before depth capping
	BranchMin int
	BranchMax int
}

var table = map[Name]Config{
	Easy: {
		DepthMin: 4, DepthMax: 6,
		BaseDV: 9, DVPerDepth: 1,
		BlackIceProb: 0.15, IceDmg: 2, BranchProb: 0.18,
		BranchMin: 1, BranchMax: 1,
	},
	Standard: {
		DepthMin: 6, DepthMax: 8,
		BaseDV: 11, DVPerDepth: 1,
		BlackIceProb: 0.25, IceDmg: 2, BranchProb: 0.25,
		BranchMin: 1, BranchMax: 2,
	},
	Hard: {
		DepthMin: 8, DepthMax: 10,
		BaseDV: 12, DVPerDepth: 2,
		BlackIceProb: 0.35, IceDmg: 3, BranchProb: 0.33,
		BranchMin: 2, BranchMax: 3,
	},
	Deadly: {
		DepthMin: 10, DepthMax: 12,
		BaseDV: 13, DVPerDepth: 2,
		BlackIceProb: 0.45, IceDmg: 4, BranchProb: 0.42,
		BranchMin: 2, BranchMax: 4,
	},
}

// All returns every tier name from easiest to hardest.
func All() []Name {
	return []Name{Easy, Standard, Hard, Deadly}
}

// Lookup returns the configuration for a tier.
func Lookup(name Name) (Config, bool) {
	cfg, ok := table[name]
	return cfg, ok
}

// LookupOrDefault returns the configuration for a tier, falling back to Default
// for unknown names.
func LookupOrDefault(name Name) Config {
	if cfg, ok := table[name]; ok {
		return cfg
	}
	return table[Default]
}

// Parse resolves a user-supplied tier name. An empty value yields Default.
func Parse(value string) (Name, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return Default, nil
	}
	name := Name(value)
	if _, ok := table[name]; !ok {
		return "", apperrors.WithMetadata(apperrors.CodeUnknownDifficulty,
			"unknown difficulty "+value, map[string]string{"Difficulty": value})
	}
	return name, nil
}

// DV computes the difficulty value of a node at depth with the given noise.
func (c Config) DV(depth, noise int) int {
	return c.BaseDV + max(0, depth-1)*c.DVPerDepth + noise
}
