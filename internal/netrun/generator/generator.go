// Package generator builds randomized netrun architectures.
//
// Generation grows a rooted tree one depth level at a time. Each node on the
// current frontier gets one child, or two when a branch roll succeeds or when
// the level was planned as a forced branch. After growth, optional guarantees
// promote nodes so every architecture holds at least one File and one Control.
//
// All randomness comes from the random.Source passed to Generate; the same
// seed and options always rebuild the same architecture.
package generator

import (
	"math"
	"sort"

	"github.com/louisbranch/netrun/internal/core/random"
	"github.com/louisbranch/netrun/internal/netrun/architecture"
	"github.com/louisbranch/netrun/internal/netrun/difficulty"
	"golang.org/x/text/language"
)

const (
	// MinDepth is the shallowest architecture the generator builds.
	MinDepth = 3
	// MaxDepth is the deepest architecture the generator builds.
	MaxDepth = 12
)

// Options configures one generation run.
type Options struct {
	Difficulty difficulty.Name
	// Depth is the requested depth; zero draws one from the tier's range.
	Depth int
	// Branching enables branch rolls and forced branch depths.
	Branching bool
	// Guarantees ensures at least one File and one Control node.
	Guarantees bool
	// Locale selects the language of default node names.
	Locale language.Tag
}

// BranchPlan records how the generator intended to branch and what it built.
type BranchPlan struct {
	// Total is the planned number of forced branches.
	Total int `json:"total"`
	// Depths lists the distinct levels chosen for forced branches, ascending.
	Depths []int `json:"depths"`
	// Actual counts nodes with more than one child after generation.
	Actual int `json:"actual"`
	// UsedDepths lists the levels where a branch was actually forced, ascending.
	UsedDepths []int `json:"usedDepths"`
}

// Result is a freshly generated architecture.
type Result struct {
	Graph      *architecture.Graph
	Plan       BranchPlan
	Depth      int
	Difficulty difficulty.Name
}

// Generate builds a new architecture.
func Generate(src random.Source, opts Options) (Result, error) {
	name := opts.Difficulty
	if name == "" {
		name = difficulty.Default
	}
	if _, err := difficulty.Parse(string(name)); err != nil {
		return Result{}, err
	}
	cfg, _ := difficulty.Lookup(name)
	labels := architecture.LabelsFor(opts.Locale)

	depth := opts.Depth
	if depth == 0 {
		depth = random.Range(src, cfg.DepthMin, cfg.DepthMax)
	}
	depth = ClampDepth(depth)

	root := architecture.DefaultRoot(labels)
	root.DV = cfg.BaseDV
	g := architecture.New(root)

	b := &builder{
		src:    src,
		cfg:    cfg,
		labels: labels,
		graph:  g,
		all:    []*architecture.Node{g.Root()},
	}

	plan := planBranches(src, cfg, depth, opts.Branching)
	forced := make(map[int]bool, len(plan.Depths))
	for _, d := range plan.Depths {
		forced[d] = true
	}
	used := map[int]bool{}

	frontier := []*architecture.Node{g.Root()}
	for d := 2; d <= depth; d++ {
		var next []*architecture.Node
		for i, parent := range frontier {
			children := 1
			if opts.Branching && src.Float64() < cfg.BranchProb {
				children = 2
			}
			if opts.Branching && forced[d] && !used[d] && i == 0 {
				children = max(children, 2)
				used[d] = true
			}
			for c := 0; c < children; c++ {
				next = append(next, b.addChild(parent, d))
			}
		}
		frontier = next
	}

	if opts.Guarantees {
		b.ensureFile(frontier)
		b.ensureControl()
	}

	for _, n := range g.Nodes {
		if len(n.Edges) > 1 {
			plan.Actual++
		}
	}
	plan.UsedDepths = sortedKeys(used)

	return Result{
		Graph:      g,
		Plan:       plan,
		Depth:      depth,
		Difficulty: name,
	}, nil
}

// ClampDepth bounds a requested depth to [MinDepth, MaxDepth].
func ClampDepth(depth int) int {
	return max(MinDepth, min(MaxDepth, depth))
}

// BranchLimits returns the forced-branch range for a tier after capping it by
// what the depth can hold.
func BranchLimits(cfg difficulty.Config, depth int) (int, int) {
	capByDepth := max(1, (depth-1)/2)
	return min(cfg.BranchMin, capByDepth), min(cfg.BranchMax, capByDepth)
}

func planBranches(src random.Source, cfg difficulty.Config, depth int, branching bool) BranchPlan {
	plan := BranchPlan{Depths: []int{}, UsedDepths: []int{}}
	if !branching {
		return plan
	}
	lo, hi := BranchLimits(cfg, depth)
	plan.Total = random.Range(src, lo, hi)

	chosen := map[int]bool{}
	for len(chosen) < plan.Total {
		chosen[random.Range(src, 2, max(2, depth-1))] = true
	}
	plan.Depths = sortedKeys(chosen)
	return plan
}

// TypeWeights returns the weighted node-type table for a depth level.
func TypeWeights(cfg difficulty.Config, depth int) []random.Choice[architecture.NodeType] {
	password := 0.2
	if depth == 2 {
		password = 2
	}
	blackIce := max(1, math.Round(cfg.BlackIceProb*10))
	return []random.Choice[architecture.NodeType]{
		{Value: architecture.TypePassword, Weight: password},
		{Value: architecture.TypeFile, Weight: 3},
		{Value: architecture.TypeControl, Weight: 3},
		{Value: architecture.TypeBlackIce, Weight: blackIce},
	}
}

type builder struct {
	src    random.Source
	cfg    difficulty.Config
	labels architecture.Labels
	graph  *architecture.Graph
	// all holds nodes in creation order.
	all []*architecture.Node
}

func (b *builder) addChild(parent *architecture.Node, depth int) *architecture.Node {
	t := random.Weighted(b.src, TypeWeights(b.cfg, depth))
	node := &architecture.Node{
		ID:     b.graph.NewNodeID(b.src),
		Name:   b.labels.For(t),
		Type:   t,
		Depth:  depth,
		IceDmg: b.cfg.IceDmg,
	}
	node.DV = b.cfg.DV(depth, random.Range(b.src, -1, 1))
	// Ids are fresh and both endpoints exist, so neither call can fail.
	_ = b.graph.Add(node)
	_ = b.graph.Link(parent.ID, node.ID)
	b.all = append(b.all, node)
	return node
}

// ensureFile promotes the first node of the deepest layer to File when the
// architecture has none.
func (b *builder) ensureFile(deepest []*architecture.Node) {
	if b.graph.Count(architecture.TypeFile) > 0 || len(deepest) == 0 {
		return
	}
	n := deepest[0]
	if n.Name == b.labels.Placeholder || n.Name == b.labels.For(n.Type) {
		n.Name = b.labels.DataArchive
	}
	n.Type = architecture.TypeFile
}

// ensureControl promotes a node to Control when the architecture has none,
// preferring the first Password, then File, then Black ICE node in creation
// order, else the first non-root node that is not a File. A File is only
// taken when another File remains.
func (b *builder) ensureControl() {
	if b.graph.Count(architecture.TypeControl) > 0 {
		return
	}
	files := b.graph.Count(architecture.TypeFile)
	for _, t := range []architecture.NodeType{architecture.TypePassword, architecture.TypeFile, architecture.TypeBlackIce} {
		if t == architecture.TypeFile && files < 2 {
			continue
		}
		for _, n := range b.all {
			if n.Type == t {
				b.promoteControl(n)
				return
			}
		}
	}
	for _, n := range b.all[1:] {
		if n.Type != architecture.TypeFile {
			b.promoteControl(n)
			return
		}
	}
	if len(b.all) > 1 {
		b.promoteControl(b.all[1])
	}
}

func (b *builder) promoteControl(n *architecture.Node) {
	if n.Name == b.labels.For(n.Type) {
		n.Name = b.labels.Control
	}
	n.Type = architecture.TypeControl
}

func sortedKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
