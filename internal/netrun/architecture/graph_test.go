package architecture

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/louisbranch/netrun/internal/core/random"
	apperrors "github.com/louisbranch/netrun/internal/platform/errors"
	"github.com/louisbranch/netrun/internal/testkit/randfake"
)

func testRoot() Node {
	return Node{Name: "Entry Point", Type: TypePassword, DV: 11, Depth: 1, Visible: true, Active: true, IceDmg: 2}
}

// buildGraph links root -> a -> b and root -> c.
func buildGraph(t *testing.T) *Graph {
	t.Helper()
	g := New(testRoot())
	for _, n := range []*Node{
		{ID: "a", Type: TypeFile, Depth: 2},
		{ID: "b", Type: TypeControl, Depth: 3},
		{ID: "c", Type: TypeBlackIce, Depth: 2},
	} {
		if err := g.Add(n); err != nil {
			t.Fatalf("add %s: %v", n.ID, err)
		}
	}
	for _, e := range []Edge{{RootID, "a"}, {"a", "b"}, {RootID, "c"}} {
		if err := g.Link(e.From, e.To); err != nil {
			t.Fatalf("link %s->%s: %v", e.From, e.To, err)
		}
	}
	return g
}

func TestNewSeedsRoot(t *testing.T) {
	root := testRoot()
	root.ID = "something-else"
	root.Edges = []string{"ghost"}
	g := New(root)
	if len(g.Nodes) != 1 {
		t.Fatalf("nodes = %d, want 1", len(g.Nodes))
	}
	r := g.Root()
	if r == nil || r.ID != RootID {
		t.Fatalf("root = %+v, want id %q", r, RootID)
	}
	if len(r.Edges) != 0 || len(g.Edges) != 0 {
		t.Fatal("expected fresh root without edges")
	}
}

func TestLinkMirrorsAdjacency(t *testing.T) {
	g := buildGraph(t)
	if want := []string{"a", "c"}; !reflect.DeepEqual(g.Root().Edges, want) {
		t.Fatalf("root edges = %v, want %v", g.Root().Edges, want)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := g.CheckTree(); err != nil {
		t.Fatalf("check tree: %v", err)
	}
}

func TestLinkRejectsMissingEndpoints(t *testing.T) {
	g := buildGraph(t)
	before := g.Clone()
	if err := g.Link("ghost", "a"); !errors.Is(err, apperrors.New(apperrors.CodeNodeNotFound, "")) {
		t.Fatalf("link from ghost error = %v, want NODE_NOT_FOUND", err)
	}
	if err := g.Link("a", "ghost"); !errors.Is(err, apperrors.New(apperrors.CodeNodeNotFound, "")) {
		t.Fatalf("link to ghost error = %v, want NODE_NOT_FOUND", err)
	}
	if !reflect.DeepEqual(g, before) {
		t.Fatal("failed link mutated graph")
	}
}

func TestAddRejectsDuplicates(t *testing.T) {
	g := buildGraph(t)
	if err := g.Add(&Node{ID: "a", Depth: 2}); err == nil {
		t.Fatal("expected duplicate id error")
	}
	if err := g.Add(&Node{}); err == nil {
		t.Fatal("expected missing id error")
	}
}

func TestDeleteRootIsRejected(t *testing.T) {
	g := buildGraph(t)
	before := g.Clone()
	err := g.Delete(RootID)
	if !errors.Is(err, apperrors.New(apperrors.CodeRootProtected, "")) {
		t.Fatalf("delete root error = %v, want ROOT_PROTECTED", err)
	}
	if apperrors.GetCode(err).Kind() != apperrors.KindInvalidOperation {
		t.Fatalf("kind = %s, want %s", apperrors.GetCode(err).Kind(), apperrors.KindInvalidOperation)
	}
	if !reflect.DeepEqual(g, before) {
		t.Fatal("rejected delete mutated graph")
	}
}

func TestDeleteRemovesNodeAndReferences(t *testing.T) {
	g := buildGraph(t)
	if err := g.Delete("a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := g.Node("a"); ok {
		t.Fatal("expected a to be gone")
	}
	for _, e := range g.Edges {
		if e.From == "a" || e.To == "a" {
			t.Fatalf("edge %+v still references a", e)
		}
	}
	for id, n := range g.Nodes {
		for _, child := range n.Edges {
			if child == "a" {
				t.Fatalf("node %s adjacency still references a", id)
			}
		}
	}
	if _, ok := g.Node("b"); !ok {
		t.Fatal("expected orphaned child b to remain")
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("validate after delete: %v", err)
	}
}

func TestDeleteMissingNode(t *testing.T) {
	g := buildGraph(t)
	if err := g.Delete("ghost"); !errors.Is(err, apperrors.New(apperrors.CodeNodeNotFound, "")) {
		t.Fatalf("delete ghost error = %v, want NODE_NOT_FOUND", err)
	}
}

func TestNewNodeIDFormatAndCollision(t *testing.T) {
	g := New(testRoot())
	// First draw spells n000000, which is taken; the second spells n111111.
	script := make([]int, 0, 12)
	for i := 0; i < 6; i++ {
		script = append(script, 0)
	}
	for i := 0; i < 6; i++ {
		script = append(script, 1)
	}
	if err := g.Add(&Node{ID: "n000000", Depth: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	id := g.NewNodeID(&randfake.Source{Ints: script})
	if id != "n111111" {
		t.Fatalf("id = %q, want %q", id, "n111111")
	}

	id = g.NewNodeID(random.New(5))
	if len(id) != 7 || id[0] != 'n' {
		t.Fatalf("id = %q, want n plus 6 chars", id)
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(g *Graph)
	}{
		{"missing root", func(g *Graph) { delete(g.Nodes, RootID) }},
		{"dangling edge target", func(g *Graph) { g.Edges = append(g.Edges, Edge{From: "a", To: "ghost"}) }},
		{"dangling edge source", func(g *Graph) { g.Edges = append(g.Edges, Edge{From: "ghost", To: "a"}) }},
		{"adjacency without edge", func(g *Graph) { g.Nodes["c"].Edges = []string{"b"} }},
		{"edge without adjacency", func(g *Graph) { g.Nodes["a"].Edges = nil }},
		{"key mismatch", func(g *Graph) { g.Nodes["a"].ID = "z" }},
		{"zero depth", func(g *Graph) { g.Nodes["c"].Depth = 0 }},
		{"null node", func(g *Graph) { g.Nodes["c"] = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(t)
			tt.mutate(g)
			if err := g.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCheckTreeDetectsSecondParent(t *testing.T) {
	g := buildGraph(t)
	if err := g.Link("c", "b"); err != nil {
		t.Fatalf("link: %v", err)
	}
	if err := g.CheckTree(); err == nil {
		t.Fatal("expected tree check to fail for node with two parents")
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := buildGraph(t)
	c := g.Clone()
	if !reflect.DeepEqual(g, c) {
		t.Fatal("clone differs from original")
	}
	c.Nodes["a"].Edges[0] = "mutated"
	c.Nodes["a"].Name = "mutated"
	if g.Nodes["a"].Edges[0] != "b" || g.Nodes["a"].Name == "mutated" {
		t.Fatal("mutating clone leaked into original")
	}
}

func TestCountAndMaxDepth(t *testing.T) {
	g := buildGraph(t)
	if got := g.Count(TypeFile); got != 1 {
		t.Fatalf("file count = %d, want 1", got)
	}
	if got := g.Count(TypeEmpty); got != 0 {
		t.Fatalf("empty count = %d, want 0", got)
	}
	if got := g.MaxDepth(); got != 3 {
		t.Fatalf("max depth = %d, want 3", got)
	}
	if want := []string{"a", "b", "c", RootID}; !reflect.DeepEqual(g.IDs(), want) {
		t.Fatalf("ids = %v, want %v", g.IDs(), want)
	}
}

func TestNodeTypeJSON(t *testing.T) {
	for _, typ := range Types() {
		data, err := json.Marshal(typ)
		if err != nil {
			t.Fatalf("marshal %v: %v", typ, err)
		}
		var back NodeType
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != typ {
			t.Fatalf("round trip %v = %v", typ, back)
		}
	}

	data, _ := json.Marshal(TypeBlackIce)
	if string(data) != `"Black ICE"` {
		t.Fatalf("black ice wire name = %s, want %q", data, "Black ICE")
	}

	var bad NodeType
	if err := json.Unmarshal([]byte(`"Firewall"`), &bad); err == nil {
		t.Fatal("expected unknown node type error")
	}
	if _, err := json.Marshal(NodeType(42)); err == nil {
		t.Fatal("expected marshal error for out-of-range type")
	}
}

func TestParseNodeTypeAliases(t *testing.T) {
	for _, in := range []string{"Black ICE", "blackice", "BLACK_ICE"} {
		got, err := ParseNodeType(in)
		if err != nil || got != TypeBlackIce {
			t.Fatalf("ParseNodeType(%q) = %v, %v", in, got, err)
		}
	}
}
