package turn

import (
	"strings"

	apperrors "github.com/louisbranch/netrun/internal/platform/errors"
)

// Profile selects a rule set for the action economy.
type Profile string

const (
	// ProfileRAW follows the rules as written.
	ProfileRAW Profile = "RAW"
	// ProfileHouse is the house-rule variant with more actions and a wider scan.
	ProfileHouse Profile = "HOUSE"
)

type profileDefaults struct {
	actionsPerRound int
	scanDepth       int
}

var profiles = map[Profile]profileDefaults{
	ProfileRAW:   {actionsPerRound: 3, scanDepth: 1},
	ProfileHouse: {actionsPerRound: 4, scanDepth: 2},
}

// Profiles returns every rule profile.
func Profiles() []Profile {
	return []Profile{ProfileRAW, ProfileHouse}
}

// ParseProfile resolves a profile name case-insensitively.
func ParseProfile(value string) (Profile, error) {
	p := Profile(strings.ToUpper(strings.TrimSpace(value)))
	if _, ok := profiles[p]; !ok {
		return "", unknownProfile(value)
	}
	return p, nil
}

// Valid reports whether p is a known profile.
func (p Profile) Valid() bool {
	_, ok := profiles[p]
	return ok
}

// DefaultActionsPerRound is the per-round budget the profile grants before
// program bonuses.
func (p Profile) DefaultActionsPerRound() int {
	if d, ok := profiles[p]; ok {
		return d.actionsPerRound
	}
	return profiles[ProfileRAW].actionsPerRound
}

// DefaultScanDepth is the reveal radius of a scan under the profile.
func (p Profile) DefaultScanDepth() int {
	if d, ok := profiles[p]; ok {
		return d.scanDepth
	}
	return profiles[ProfileRAW].scanDepth
}

func unknownProfile(value string) error {
	return apperrors.WithMetadata(apperrors.CodeUnknownProfile,
		"unknown profile "+value, map[string]string{"Profile": value})
}
