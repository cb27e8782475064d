package architecture

import (
	"github.com/louisbranch/netrun/internal/platform/i18n"
	"golang.org/x/text/language"
)

const (
	// DefaultRootDV is the entry node DV of a fresh session.
	DefaultRootDV = 11
	// DefaultIceDmg is the entry node damage of a fresh session.
	DefaultIceDmg = 2
)

// Labels holds the localized default display names.
type Labels struct {
	EntryPoint  string
	EntryNotes  string
	Password    string
	File        string
	Control     string
	BlackIce    string
	Placeholder string
	DataArchive string
}

// LabelsFor renders the default names for tag; the zero tag means English.
func LabelsFor(tag language.Tag) Labels {
	if tag == language.Und {
		tag = i18n.Default()
	}
	return Labels{
		EntryPoint:  i18n.Text(tag, i18n.KeyEntryPoint),
		EntryNotes:  i18n.Text(tag, i18n.KeyEntryNotes),
		Password:    i18n.Text(tag, i18n.KeyPassword),
		File:        i18n.Text(tag, i18n.KeyFile),
		Control:     i18n.Text(tag, i18n.KeyControl),
		BlackIce:    i18n.Text(tag, i18n.KeyBlackIce),
		Placeholder: i18n.Text(tag, i18n.KeyPlaceholder),
		DataArchive: i18n.Text(tag, i18n.KeyDataArchive),
	}
}

// For returns the default name of a node type. Empty nodes get the
// placeholder label.
func (l Labels) For(t NodeType) string {
	switch t {
	case TypePassword:
		return l.Password
	case TypeFile:
		return l.File
	case TypeControl:
		return l.Control
	case TypeBlackIce:
		return l.BlackIce
	default:
		return l.Placeholder
	}
}

// DefaultRoot builds the entry node of a fresh session.
func DefaultRoot(l Labels) Node {
	return Node{
		ID:      RootID,
		Name:    l.EntryPoint,
		Type:    TypePassword,
		DV:      DefaultRootDV,
		Depth:   1,
		Notes:   l.EntryNotes,
		Visible: true,
		Active:  true,
		IceDmg:  DefaultIceDmg,
	}
}
