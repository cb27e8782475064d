package turn

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/netrun/internal/platform/errors"
)

func TestNewDefaults(t *testing.T) {
	s := New()
	if s.Profile != ProfileRAW || s.Round != 1 || s.ActionsPerRound != 3 || s.ActionsLeft != 3 || s.ScanDepth != 1 {
		t.Fatalf("state = %+v, want RAW round 1 with 3/3 actions and scan 1", s)
	}
	if s.Programs != (Programs{}) {
		t.Fatalf("programs = %+v, want none", s.Programs)
	}
}

func TestApplyProfile(t *testing.T) {
	tests := []struct {
		name      string
		profile   Profile
		actions   int
		scanDepth int
	}{
		{name: "raw", profile: ProfileRAW, actions: 3, scanDepth: 1},
		{name: "house", profile: ProfileHouse, actions: 4, scanDepth: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			if err := s.ApplyProfile(tt.profile); err != nil {
				t.Fatalf("apply: %v", err)
			}
			if s.ActionsPerRound != tt.actions || s.ScanDepth != tt.scanDepth {
				t.Fatalf("state = %+v, want %d actions and scan %d", s, tt.actions, tt.scanDepth)
			}
			if s.ActionsLeft != 3 {
				t.Fatalf("actions left = %d, want 3 until reset", s.ActionsLeft)
			}
		})
	}
}

func TestApplyProfileKeepsOverrides(t *testing.T) {
	s := New()
	s.SetActionsPerRound(6)
	if err := s.ApplyProfile(ProfileHouse); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if s.ActionsPerRound != 6 {
		t.Fatalf("actions per round = %d, want 6", s.ActionsPerRound)
	}
	if s.ScanDepth != 2 {
		t.Fatalf("scan depth = %d, want 2", s.ScanDepth)
	}

	s.SetScanDepth(5)
	if err := s.ApplyProfile(ProfileRAW); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if s.ActionsPerRound != 6 || s.ScanDepth != 5 {
		t.Fatalf("state = %+v, want overrides kept", s)
	}
}

func TestApplyProfileRejectsUnknown(t *testing.T) {
	s := New()
	err := s.ApplyProfile("WILD")
	if !errors.Is(err, apperrors.New(apperrors.CodeUnknownProfile, "")) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeUnknownProfile)
	}
	if s.Profile != ProfileRAW {
		t.Fatalf("profile = %s, want RAW", s.Profile)
	}
}

func TestParseProfile(t *testing.T) {
	if p, err := ParseProfile(" house "); err != nil || p != ProfileHouse {
		t.Fatalf("parse house = %q, %v", p, err)
	}
	if _, err := ParseProfile("nope"); !apperrors.HasCode(err, apperrors.CodeUnknownProfile) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeUnknownProfile)
	}
}

func TestMods(t *testing.T) {
	tests := []struct {
		name     string
		programs Programs
		want     Mods
	}{
		{name: "none", want: Mods{}},
		{name: "speedy", programs: Programs{Speedy: true}, want: Mods{ExtraAction: 1}},
		{name: "killer", programs: Programs{Killer: true}, want: Mods{VsBlackIceBonus: 2}},
		{name: "sword", programs: Programs{Sword: true}, want: Mods{DmgMelee: 2}},
		{name: "armor", programs: Programs{Armor: true}, want: Mods{IceDmgReduction: 1}},
		{
			name:     "all",
			programs: Programs{Sword: true, Killer: true, Armor: true, Speedy: true},
			want:     Mods{ExtraAction: 1, VsBlackIceBonus: 2, DmgMelee: 2, IceDmgReduction: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Programs = tt.programs
			if got := s.Mods(); got != tt.want {
				t.Fatalf("mods = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSetProgram(t *testing.T) {
	s := New()
	if err := s.SetProgram("speedy", true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !s.Programs.Speedy {
		t.Fatal("expected Speedy equipped")
	}
	if err := s.SetProgram("Speedy", false); err != nil {
		t.Fatalf("unset: %v", err)
	}
	if s.Programs.Speedy {
		t.Fatal("expected Speedy removed")
	}
	if err := s.SetProgram("Hellhound", true); !apperrors.HasCode(err, apperrors.CodeUnknownProgram) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeUnknownProgram)
	}
}

func TestResetActionsAddsSpeedy(t *testing.T) {
	s := New()
	s.Programs.Speedy = true
	s.ResetActions()
	if s.ActionsLeft != 4 {
		t.Fatalf("actions left = %d, want 4", s.ActionsLeft)
	}
}

func TestResetActionsFallsBackToProfileDefault(t *testing.T) {
	s := New()
	if err := s.ApplyProfile(ProfileHouse); err != nil {
		t.Fatalf("apply: %v", err)
	}
	s.ActionsPerRound = 0
	s.ResetActions()
	if s.ActionsLeft != 4 {
		t.Fatalf("actions left = %d, want 4", s.ActionsLeft)
	}
}

func TestSpendAction(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		if !s.SpendAction() {
			t.Fatalf("spend %d failed", i)
		}
	}
	if s.ActionsLeft != 0 {
		t.Fatalf("actions left = %d, want 0", s.ActionsLeft)
	}
	before := s
	if s.SpendAction() {
		t.Fatal("expected spend to fail with no actions left")
	}
	if s != before {
		t.Fatalf("state = %+v, want unchanged %+v", s, before)
	}
}

func TestEndTurn(t *testing.T) {
	s := New()
	s.SpendAction()
	s.SpendAction()
	s.EndTurn()
	if s.Round != 2 || s.ActionsLeft != 3 {
		t.Fatalf("state = %+v, want round 2 with 3 actions", s)
	}
}

func TestSetScanDepthClampsNegative(t *testing.T) {
	s := New()
	s.SetScanDepth(-3)
	if s.ScanDepth != 0 || !s.UserSetScanDepth {
		t.Fatalf("state = %+v, want scan 0 marked as user set", s)
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{in: "scan", want: ActionScan},
		{in: "Backdoor", want: ActionBackdoor},
		{in: "jack_in", want: ActionJackIn},
		{in: "Jack In", want: ActionJackIn},
	}
	for _, tt := range tests {
		got, err := ParseAction(tt.in)
		if err != nil || got != tt.want {
			t.Fatalf("parse %q = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseAction("hack"); !apperrors.HasCode(err, apperrors.CodeUnknownAction) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeUnknownAction)
	}
}

func TestActionCosts(t *testing.T) {
	for _, a := range Actions() {
		if got, want := a.Costs(), a != ActionJackIn; got != want {
			t.Fatalf("%s costs = %v, want %v", a, got, want)
		}
	}
}
