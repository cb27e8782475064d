// Package session holds the aggregate state of one netrun table and the
// operations a GM or runner applies to it.
//
// A State is plain data that serializes to a JSON snapshot. Operations that
// need randomness live on Engine, which owns the random source; everything
// else is a method on State. Every operation either succeeds completely or
// leaves the state unchanged.
package session

import (
	"slices"

	"github.com/louisbranch/netrun/internal/netrun/architecture"
	"github.com/louisbranch/netrun/internal/netrun/difficulty"
	"github.com/louisbranch/netrun/internal/netrun/generator"
	"github.com/louisbranch/netrun/internal/netrun/pathfinder"
	"github.com/louisbranch/netrun/internal/netrun/turn"
	apperrors "github.com/louisbranch/netrun/internal/platform/errors"
	"github.com/louisbranch/netrun/internal/platform/i18n"
	"golang.org/x/text/language"
)

// State is the full table state: action economy, architecture graph and
// selection.
type State struct {
	turn.State
	architecture.Graph

	ActiveNodeID   string          `json:"activeNodeId"`
	LastDifficulty difficulty.Name `json:"lastDifficulty"`
	// BranchPlan is nil until an architecture has been generated.
	BranchPlan *generator.BranchPlan `json:"branchPlan"`
}

// New returns a fresh state with English labels.
func New() *State {
	return NewLocalized(i18n.Default())
}

// NewLocalized returns a fresh state whose entry node uses the labels of tag.
func NewLocalized(tag language.Tag) *State {
	return &State{
		State:          turn.New(),
		Graph:          *architecture.New(architecture.DefaultRoot(architecture.LabelsFor(tag))),
		ActiveNodeID:   architecture.RootID,
		LastDifficulty: difficulty.Default,
	}
}

// ActiveNode returns the selected node.
func (s *State) ActiveNode() (*architecture.Node, bool) {
	return s.Node(s.ActiveNodeID)
}

// Reveal marks nodes within depth hops of fromID visible and returns the ids
// that became visible.
func (s *State) Reveal(fromID string, depth int) ([]string, error) {
	return pathfinder.Reveal(&s.Graph, fromID, depth)
}

// RevealAll marks every node visible.
func (s *State) RevealAll() []string {
	return pathfinder.RevealAll(&s.Graph)
}

// Select makes id the only active node and reveals it.
func (s *State) Select(id string) (*architecture.Node, error) {
	n, ok := s.Node(id)
	if !ok {
		return nil, nodeNotFound(id)
	}
	for _, other := range s.Nodes {
		other.Active = false
	}
	n.Active = true
	n.Visible = true
	s.ActiveNodeID = id
	return n, nil
}

// DeleteNode removes a node and every link to it. Deleting the active node
// moves the selection back to the root. The root cannot be deleted.
func (s *State) DeleteNode(id string) error {
	if err := s.Delete(id); err != nil {
		return err
	}
	if s.ActiveNodeID == id {
		root := s.Root()
		root.Active = true
		s.ActiveNodeID = architecture.RootID
	}
	return nil
}

// NodePatch carries inspector edits. Nil fields are left unchanged.
type NodePatch struct {
	Name   *string
	Type   *architecture.NodeType
	DV     *int
	Depth  *int
	IceDmg *int
	Notes  *string
}

// UpdateNode applies an inspector edit. An empty name keeps the current one.
// Depth must stay at least 1.
func (s *State) UpdateNode(id string, patch NodePatch) (*architecture.Node, error) {
	n, ok := s.Node(id)
	if !ok {
		return nil, nodeNotFound(id)
	}
	if patch.Depth != nil && *patch.Depth < 1 {
		return nil, apperrors.WithMetadata(apperrors.CodeInvalidNodePatch,
			"depth must be at least 1", map[string]string{"NodeID": id})
	}
	if patch.Type != nil {
		if _, err := patch.Type.MarshalText(); err != nil {
			return nil, err
		}
	}

	if patch.Name != nil && *patch.Name != "" {
		n.Name = *patch.Name
	}
	if patch.Type != nil {
		n.Type = *patch.Type
	}
	if patch.DV != nil {
		n.DV = *patch.DV
	}
	if patch.Depth != nil {
		n.Depth = *patch.Depth
	}
	if patch.IceDmg != nil {
		n.IceDmg = *patch.IceDmg
	}
	if patch.Notes != nil {
		n.Notes = *patch.Notes
	}
	return n, nil
}

// ActionResult reports what a net action did.
type ActionResult struct {
	Action      turn.Action `json:"action"`
	Spent       bool        `json:"spent"`
	ActionsLeft int         `json:"actionsLeft"`
	// Revealed lists the nodes a scan made visible.
	Revealed []string `json:"revealed,omitempty"`
}

// Perform takes a net action. Every action but jacking in costs one action;
// with none left it fails with CodeNoActionsLeft and changes nothing. A scan
// reveals from the active node out to the scan depth. Names are parsed
// leniently, so "scan" and "jack_in" are accepted.
func (s *State) Perform(name turn.Action) (ActionResult, error) {
	action, err := turn.ParseAction(string(name))
	if err != nil {
		return ActionResult{}, err
	}
	if action == turn.ActionScan {
		if _, ok := s.ActiveNode(); !ok {
			return ActionResult{}, nodeNotFound(s.ActiveNodeID)
		}
	}

	res := ActionResult{Action: action}
	if action.Costs() {
		if !s.SpendAction() {
			return ActionResult{}, apperrors.New(apperrors.CodeNoActionsLeft, "no actions left this round")
		}
		res.Spent = true
	}
	if action == turn.ActionScan {
		revealed, err := s.Reveal(s.ActiveNodeID, s.ScanDepth)
		if err != nil {
			return ActionResult{}, err
		}
		res.Revealed = revealed
	}
	res.ActionsLeft = s.ActionsLeft
	return res, nil
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	c := *s
	c.Graph = *s.Graph.Clone()
	if s.BranchPlan != nil {
		plan := *s.BranchPlan
		plan.Depths = slices.Clone(plan.Depths)
		plan.UsedDepths = slices.Clone(plan.UsedDepths)
		c.BranchPlan = &plan
	}
	return &c
}

func nodeNotFound(id string) error {
	return apperrors.WithMetadata(apperrors.CodeNodeNotFound,
		"node "+id+" not found", map[string]string{"NodeID": id})
}
