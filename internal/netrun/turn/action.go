package turn

import (
	"strings"

	apperrors "github.com/louisbranch/netrun/internal/platform/errors"
)

// Action is a net action a runner can take on their turn.
type Action string

const (
	ActionScan     Action = "SCAN"
	ActionBackdoor Action = "BACKDOOR"
	ActionControl  Action = "CONTROL"
	ActionZap      Action = "ZAP"
	ActionSlide    Action = "SLIDE"
	ActionJackIn   Action = "JACKIN"
)

// Actions returns every net action in toolbar order.
func Actions() []Action {
	return []Action{ActionScan, ActionBackdoor, ActionControl, ActionZap, ActionSlide, ActionJackIn}
}

// ParseAction resolves an action name case-insensitively. Underscores and
// spaces are ignored so "jack_in" and "Jack In" both match JACKIN.
func ParseAction(value string) (Action, error) {
	normalized := strings.NewReplacer("_", "", " ", "", "-", "").Replace(strings.ToUpper(strings.TrimSpace(value)))
	for _, a := range Actions() {
		if string(a) == normalized {
			return a, nil
		}
	}
	return "", apperrors.WithMetadata(apperrors.CodeUnknownAction,
		"unknown action "+value, map[string]string{"Action": value})
}

// Costs reports whether the action spends one from the round's budget.
// Jacking in or out is free.
func (a Action) Costs() bool {
	return a != ActionJackIn
}
