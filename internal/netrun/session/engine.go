package session

import (
	"github.com/louisbranch/netrun/internal/core/check"
	"github.com/louisbranch/netrun/internal/core/dice"
	"github.com/louisbranch/netrun/internal/core/random"
	"github.com/louisbranch/netrun/internal/netrun/architecture"
	"github.com/louisbranch/netrun/internal/netrun/difficulty"
	"github.com/louisbranch/netrun/internal/netrun/generator"
	"golang.org/x/text/language"
)

// Engine applies the randomized operations to a State. An Engine is not safe
// for concurrent use; give each table its own.
type Engine struct {
	src    random.Source
	locale language.Tag
	labels architecture.Labels
}

// NewEngine returns an engine drawing from src and naming nodes in locale.
func NewEngine(src random.Source, locale language.Tag) *Engine {
	return &Engine{
		src:    src,
		locale: locale,
		labels: architecture.LabelsFor(locale),
	}
}

// Locale returns the language used for default node names.
func (e *Engine) Locale() language.Tag {
	return e.locale
}

// NewState returns a fresh state labeled in the engine's locale.
func (e *Engine) NewState() *State {
	return NewLocalized(e.locale)
}

// Generate replaces the architecture with a freshly generated one. The old
// graph stays in place if generation fails. On success only the root is
// visible and selected, the round restarts at one and the action budget is
// refilled.
func (e *Engine) Generate(st *State, opts generator.Options) (generator.Result, error) {
	if opts.Locale == language.Und {
		opts.Locale = e.locale
	}
	res, err := generator.Generate(e.src, opts)
	if err != nil {
		return generator.Result{}, err
	}

	st.Graph = *res.Graph
	for id, n := range st.Nodes {
		n.Visible = id == architecture.RootID
		n.Active = id == architecture.RootID
	}
	st.ActiveNodeID = architecture.RootID
	st.LastDifficulty = res.Difficulty
	plan := res.Plan
	st.BranchPlan = &plan

	st.Round = 1
	st.ResetActions()
	return res, nil
}

// CreateNode builds an unlinked node at depth. Its DV follows the last used
// difficulty plus noise in [-1, 1]. An empty name takes the type's default
// label.
func (e *Engine) CreateNode(st *State, t architecture.NodeType, depth int, name string) *architecture.Node {
	cfg := difficulty.LookupOrDefault(st.LastDifficulty)
	if name == "" {
		name = e.labels.For(t)
	}
	n := &architecture.Node{
		ID:     st.NewNodeID(e.src),
		Name:   name,
		Type:   t,
		Depth:  depth,
		IceDmg: cfg.IceDmg,
	}
	n.DV = cfg.DV(depth, random.Range(e.src, -1, 1))
	return n
}

// AddChild inserts a new node one level below parentID and links it. This is
// the editor path, so TypeEmpty is allowed.
func (e *Engine) AddChild(st *State, parentID string, t architecture.NodeType) (*architecture.Node, error) {
	parent, ok := st.Node(parentID)
	if !ok {
		return nil, nodeNotFound(parentID)
	}
	if _, err := t.MarshalText(); err != nil {
		return nil, err
	}
	n := e.CreateNode(st, t, parent.Depth+1, "")
	if err := st.Add(n); err != nil {
		return nil, err
	}
	if err := st.Link(parent.ID, n.ID); err != nil {
		delete(st.Nodes, n.ID)
		return nil, err
	}
	return n, nil
}

// D10 rolls one plain ten-sided die.
func (e *Engine) D10() int {
	return dice.D10(e.src)
}

// SkillCheck rolls an exploding d10 plus skill against dv. A dv of zero is a
// free roll.
func (e *Engine) SkillCheck(skill, dv int) check.Outcome {
	return check.Skill(e.src, skill, dv)
}

// CheckNode rolls skill against a node's DV. Killer adds its bonus against
// Black ICE.
func (e *Engine) CheckNode(st *State, nodeID string, skill int) (check.Outcome, error) {
	n, ok := st.Node(nodeID)
	if !ok {
		return check.Outcome{}, nodeNotFound(nodeID)
	}
	if n.Type == architecture.TypeBlackIce {
		skill += st.Mods().VsBlackIceBonus
	}
	return check.Skill(e.src, skill, n.DV), nil
}
