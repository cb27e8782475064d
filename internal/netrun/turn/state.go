// Package turn implements the round and action economy of a netrun session.
package turn

// State is the action economy of one session.
type State struct {
	Profile         Profile  `json:"profile"`
	Round           int      `json:"round"`
	ActionsPerRound int      `json:"actionsPerRound"`
	ActionsLeft     int      `json:"actionsLeft"`
	ScanDepth       int      `json:"scanDepth"`
	Programs        Programs `json:"programs"`

	// Sticky overrides keep manual settings across profile changes.
	UserSetActionsPerRound bool `json:"userSetActionsPerRound"`
	UserSetScanDepth       bool `json:"userSetScanDepth"`
}

// New returns the state at the start of a session: RAW rules, round one and a
// full action budget.
func New() State {
	return State{
		Profile:         ProfileRAW,
		Round:           1,
		ActionsPerRound: ProfileRAW.DefaultActionsPerRound(),
		ActionsLeft:     ProfileRAW.DefaultActionsPerRound(),
		ScanDepth:       ProfileRAW.DefaultScanDepth(),
	}
}

// ApplyProfile switches the rule set. Actions per round and scan depth take
// the profile defaults unless the user has set them. Actions left is not
// touched until the next reset.
func (s *State) ApplyProfile(p Profile) error {
	if !p.Valid() {
		return unknownProfile(string(p))
	}
	s.Profile = p
	if !s.UserSetActionsPerRound {
		s.ActionsPerRound = p.DefaultActionsPerRound()
	}
	if !s.UserSetScanDepth {
		s.ScanDepth = p.DefaultScanDepth()
	}
	return nil
}

// SetActionsPerRound overrides the per-round budget and keeps it across
// profile changes.
func (s *State) SetActionsPerRound(n int) {
	s.ActionsPerRound = n
	s.UserSetActionsPerRound = true
}

// SetScanDepth overrides the scan radius and keeps it across profile changes.
// Negative values are stored as zero.
func (s *State) SetScanDepth(n int) {
	s.ScanDepth = max(0, n)
	s.UserSetScanDepth = true
}

// SetProgram equips or removes a program by name.
func (s *State) SetProgram(name string, on bool) error {
	program, err := ParseProgram(name)
	if err != nil {
		return err
	}
	s.Programs.Set(program, on)
	return nil
}

// Mods derives the modifiers of the equipped programs.
func (s *State) Mods() Mods {
	return s.Programs.Mods()
}

// ResetActions refills the budget: actions per round plus program bonuses.
// A non-positive per-round value falls back to the profile default.
func (s *State) ResetActions() {
	base := s.ActionsPerRound
	if base <= 0 {
		base = s.Profile.DefaultActionsPerRound()
	}
	s.ActionsLeft = base + s.Mods().ExtraAction
}

// SpendAction uses one action. It returns false and changes nothing when the
// budget is exhausted.
func (s *State) SpendAction() bool {
	if s.ActionsLeft <= 0 {
		return false
	}
	s.ActionsLeft--
	return true
}

// EndTurn advances the round and refills the budget.
func (s *State) EndTurn() {
	s.Round++
	s.ResetActions()
}
