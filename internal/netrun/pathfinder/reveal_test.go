package pathfinder

import (
	"errors"
	"reflect"
	"testing"

	"github.com/louisbranch/netrun/internal/netrun/architecture"
	apperrors "github.com/louisbranch/netrun/internal/platform/errors"
)

// buildGraph links root -> a -> b -> c and root -> d -> e.
func buildGraph(t *testing.T) *architecture.Graph {
	t.Helper()
	g := architecture.New(architecture.Node{Type: architecture.TypePassword, Depth: 1, Visible: true})
	nodes := []struct {
		id, parent string
		depth      int
	}{
		{"a", architecture.RootID, 2},
		{"b", "a", 3},
		{"c", "b", 4},
		{"d", architecture.RootID, 2},
		{"e", "d", 3},
	}
	for _, n := range nodes {
		if err := g.Add(&architecture.Node{ID: n.id, Type: architecture.TypeFile, Depth: n.depth}); err != nil {
			t.Fatalf("add %s: %v", n.id, err)
		}
		if err := g.Link(n.parent, n.id); err != nil {
			t.Fatalf("link %s: %v", n.id, err)
		}
	}
	return g
}

func visibleIDs(g *architecture.Graph) []string {
	var ids []string
	for _, id := range g.IDs() {
		if g.Nodes[id].Visible {
			ids = append(ids, id)
		}
	}
	return ids
}

func TestRevealDepthBounds(t *testing.T) {
	tests := []struct {
		name     string
		depth    int
		revealed []string
		visible  []string
	}{
		{name: "zero", depth: 0, revealed: nil, visible: []string{"root"}},
		{name: "negative", depth: -2, revealed: nil, visible: []string{"root"}},
		{name: "one hop", depth: 1, revealed: []string{"a", "d"}, visible: []string{"a", "d", "root"}},
		{name: "two hops", depth: 2, revealed: []string{"a", "d", "b", "e"}, visible: []string{"a", "b", "d", "e", "root"}},
		{name: "everything", depth: 10, revealed: []string{"a", "d", "b", "e", "c"}, visible: []string{"a", "b", "c", "d", "e", "root"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(t)
			got, err := Reveal(g, architecture.RootID, tt.depth)
			if err != nil {
				t.Fatalf("reveal: %v", err)
			}
			if !reflect.DeepEqual(got, tt.revealed) {
				t.Fatalf("revealed = %v, want %v", got, tt.revealed)
			}
			if vis := visibleIDs(g); !reflect.DeepEqual(vis, tt.visible) {
				t.Fatalf("visible = %v, want %v", vis, tt.visible)
			}
		})
	}
}

func TestRevealLeavesStartVisibility(t *testing.T) {
	g := buildGraph(t)
	if _, err := Reveal(g, "a", 1); err != nil {
		t.Fatalf("reveal: %v", err)
	}
	a, _ := g.Node("a")
	if a.Visible {
		t.Fatal("expected start node to stay hidden")
	}
	b, _ := g.Node("b")
	if !b.Visible {
		t.Fatal("expected child to be revealed")
	}
}

func TestRevealReportsOnlyNewlyVisible(t *testing.T) {
	g := buildGraph(t)
	d, _ := g.Node("d")
	d.Visible = true
	got, err := Reveal(g, architecture.RootID, 1)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if want := []string{"a"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("revealed = %v, want %v", got, want)
	}
}

func TestRevealHandlesCycles(t *testing.T) {
	g := buildGraph(t)
	if err := g.Link("c", architecture.RootID); err != nil {
		t.Fatalf("link: %v", err)
	}
	if err := g.Link("e", "a"); err != nil {
		t.Fatalf("link: %v", err)
	}
	got, err := Reveal(g, architecture.RootID, 50)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("revealed = %v, want 5 ids", got)
	}
}

func TestRevealUnknownStart(t *testing.T) {
	g := buildGraph(t)
	before := g.Clone()
	_, err := Reveal(g, "ghost", 3)
	if !errors.Is(err, apperrors.New(apperrors.CodeNodeNotFound, "")) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeNodeNotFound)
	}
	if !reflect.DeepEqual(g, before) {
		t.Fatal("expected graph unchanged")
	}
}

func TestRevealAll(t *testing.T) {
	g := buildGraph(t)
	got := RevealAll(g)
	if want := []string{"a", "b", "c", "d", "e"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("revealed = %v, want %v", got, want)
	}
	if again := RevealAll(g); len(again) != 0 {
		t.Fatalf("second reveal = %v, want none", again)
	}
}
