// Package check resolves skill checks against a difficulty value.
package check

import (
	"github.com/louisbranch/netrun/internal/core/dice"
	"github.com/louisbranch/netrun/internal/core/random"
)

// MeetsDifficulty reports whether a check total reaches the DV.
func MeetsDifficulty(total, dv int) bool {
	return total >= dv
}

// Outcome is the resolved result of one skill check.
type Outcome struct {
	Roll dice.Result `json:"roll"`
	// DV is the threshold checked against; zero means none was given.
	DV int `json:"dv"`
	// HasDV is false for free rolls where success is undetermined.
	HasDV   bool `json:"hasDv"`
	Success bool `json:"success"`
	// Margin is Roll.Total - DV; positive beats the threshold.
	Margin int `json:"margin"`
}

// Resolve evaluates an existing roll against dv. A dv of zero or less is a
// free roll with no threshold.
func Resolve(roll dice.Result, dv int) Outcome {
	if dv <= 0 {
		return Outcome{Roll: roll}
	}
	return Outcome{
		Roll:    roll,
		DV:      dv,
		HasDV:   true,
		Success: MeetsDifficulty(roll.Total, dv),
		Margin:  roll.Total - dv,
	}
}

// Skill rolls an exploding d10 with skill as the modifier and resolves it
// against dv.
func Skill(src random.Source, skill, dv int) Outcome {
	return Resolve(dice.Roll(src, skill), dv)
}
