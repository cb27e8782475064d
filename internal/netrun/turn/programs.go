package turn

import (
	"strings"

	apperrors "github.com/louisbranch/netrun/internal/platform/errors"
)

// Program names an equippable capability.
type Program string

const (
	ProgramSword  Program = "Sword"
	ProgramKiller Program = "Killer"
	ProgramArmor  Program = "Armor"
	ProgramSpeedy Program = "Speedy"
)

// Programs holds which programs are equipped.
type Programs struct {
	Sword  bool `json:"Sword"`
	Killer bool `json:"Killer"`
	Armor  bool `json:"Armor"`
	Speedy bool `json:"Speedy"`
}

// Mods are the numeric effects of the equipped programs.
type Mods struct {
	ExtraAction     int `json:"extraAction"`
	VsBlackIceBonus int `json:"vsBlackIceBonus"`
	DmgMelee        int `json:"dmgMelee"`
	IceDmgReduction int `json:"iceDmgReduction"`
}

// ParseProgram resolves a program name case-insensitively.
func ParseProgram(value string) (Program, error) {
	for _, p := range []Program{ProgramSword, ProgramKiller, ProgramArmor, ProgramSpeedy} {
		if strings.EqualFold(string(p), strings.TrimSpace(value)) {
			return p, nil
		}
	}
	return "", apperrors.WithMetadata(apperrors.CodeUnknownProgram,
		"unknown program "+value, map[string]string{"Program": value})
}

// Mods derives the modifiers of the equipped programs.
func (p Programs) Mods() Mods {
	var m Mods
	if p.Speedy {
		m.ExtraAction = 1
	}
	if p.Killer {
		m.VsBlackIceBonus = 2
	}
	if p.Sword {
		m.DmgMelee = 2
	}
	if p.Armor {
		m.IceDmgReduction = 1
	}
	return m
}

// Set equips or removes one program.
func (p *Programs) Set(program Program, on bool) {
	switch program {
	case ProgramSword:
		p.Sword = on
	case ProgramKiller:
		p.Killer = on
	case ProgramArmor:
		p.Armor = on
	case ProgramSpeedy:
		p.Speedy = on
	}
}
