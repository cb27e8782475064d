// Package architecture models the node graph of a netrun architecture.
//
// A Graph keeps two views of its links: the global Edges list and the ordered
// child ids on each Node. Every mutation updates both together so the views
// never drift; Validate checks the correspondence for graphs that arrive from
// outside, such as restored snapshots.
package architecture

import (
	"fmt"
	"sort"

	"github.com/louisbranch/netrun/internal/core/random"
	apperrors "github.com/louisbranch/netrun/internal/platform/errors"
)

// RootID is the fixed id of the entry node.
const RootID = "root"

const (
	idPrefix   = "n"
	idLength   = 6
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Graph is the node map plus the mirrored edge list.
type Graph struct {
	Nodes map[string]*Node `json:"nodes"`
	Edges []Edge           `json:"edges"`
}

// New returns a graph containing only root.
func New(root Node) *Graph {
	g := &Graph{}
	g.Reset(root)
	return g
}

// Reset discards every node and edge and reseeds the graph with root.
// The root id is forced to RootID and its adjacency cleared.
func (g *Graph) Reset(root Node) {
	root.ID = RootID
	root.Edges = nil
	g.Nodes = map[string]*Node{RootID: &root}
	g.Edges = nil
}

// Node looks up a node by id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.Nodes[id]
	return n, ok
}

// Root returns the entry node. It is nil only for a zero Graph.
func (g *Graph) Root() *Node {
	return g.Nodes[RootID]
}

// Add inserts a node without linking it.
func (g *Graph) Add(n *Node) error {
	if n == nil || n.ID == "" {
		return fmt.Errorf("node id is required")
	}
	if _, exists := g.Nodes[n.ID]; exists {
		return fmt.Errorf("node %s already exists", n.ID)
	}
	if g.Nodes == nil {
		g.Nodes = map[string]*Node{}
	}
	g.Nodes[n.ID] = n
	return nil
}

// Link adds a directed edge from parent to child, updating both the edge list
// and the parent's adjacency.
func (g *Graph) Link(fromID, toID string) error {
	from, ok := g.Nodes[fromID]
	if !ok {
		return nodeNotFound(fromID)
	}
	if _, ok := g.Nodes[toID]; !ok {
		return nodeNotFound(toID)
	}
	g.Edges = append(g.Edges, Edge{From: fromID, To: toID})
	from.Edges = append(from.Edges, toID)
	return nil
}

// Delete removes a node, every edge touching it and every adjacency entry
// naming it. The node's children stay in the graph without a parent.
// Deleting the root fails with CodeRootProtected and changes nothing.
func (g *Graph) Delete(id string) error {
	if id == RootID {
		return apperrors.New(apperrors.CodeRootProtected, "root node cannot be deleted")
	}
	if _, ok := g.Nodes[id]; !ok {
		return nodeNotFound(id)
	}

	edges := g.Edges[:0:0]
	for _, e := range g.Edges {
		if e.From != id && e.To != id {
			edges = append(edges, e)
		}
	}
	g.Edges = edges

	for _, n := range g.Nodes {
		n.Edges = without(n.Edges, id)
	}
	delete(g.Nodes, id)
	return nil
}

// NewNodeID draws a fresh id that is not yet used in the graph.
func (g *Graph) NewNodeID(src random.Source) string {
	for {
		b := make([]byte, 0, len(idPrefix)+idLength)
		b = append(b, idPrefix...)
		for i := 0; i < idLength; i++ {
			b = append(b, idAlphabet[src.Intn(len(idAlphabet))])
		}
		id := string(b)
		if _, taken := g.Nodes[id]; !taken {
			return id
		}
	}
}

// IDs returns every node id in sorted order.
func (g *Graph) IDs() []string {
	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns how many nodes have type t.
func (g *Graph) Count(t NodeType) int {
	count := 0
	for _, n := range g.Nodes {
		if n.Type == t {
			count++
		}
	}
	return count
}

// MaxDepth returns the largest node depth.
func (g *Graph) MaxDepth() int {
	depth := 0
	for _, n := range g.Nodes {
		depth = max(depth, n.Depth)
	}
	return depth
}

// Parents maps each child id to the ids of nodes linking to it.
func (g *Graph) Parents() map[string][]string {
	parents := make(map[string][]string, len(g.Nodes))
	for _, e := range g.Edges {
		parents[e.To] = append(parents[e.To], e.From)
	}
	return parents
}

// Clone returns a deep copy.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		Nodes: make(map[string]*Node, len(g.Nodes)),
	}
	for id, n := range g.Nodes {
		c.Nodes[id] = n.clone()
	}
	if g.Edges != nil {
		c.Edges = make([]Edge, len(g.Edges))
		copy(c.Edges, g.Edges)
	}
	return c
}

// Validate checks the structural invariants a usable graph must hold: the
// root exists, map keys match node ids, every edge names existing nodes, and
// each node's adjacency is exactly its outgoing edges in edge-list order.
func (g *Graph) Validate() error {
	if g.Nodes == nil {
		return fmt.Errorf("nodes are missing")
	}
	if _, ok := g.Nodes[RootID]; !ok {
		return fmt.Errorf("root node is missing")
	}
	for id, n := range g.Nodes {
		if n == nil {
			return fmt.Errorf("node %s is null", id)
		}
		if n.ID != id {
			return fmt.Errorf("node key %s holds id %s", id, n.ID)
		}
		if n.Type < TypePassword || n.Type > TypeEmpty {
			return fmt.Errorf("node %s has unknown type", id)
		}
		if n.Depth < 1 {
			return fmt.Errorf("node %s has depth %d", id, n.Depth)
		}
	}

	outgoing := make(map[string][]string, len(g.Nodes))
	for i, e := range g.Edges {
		if _, ok := g.Nodes[e.From]; !ok {
			return fmt.Errorf("edge %d starts at missing node %s", i, e.From)
		}
		if _, ok := g.Nodes[e.To]; !ok {
			return fmt.Errorf("edge %d ends at missing node %s", i, e.To)
		}
		outgoing[e.From] = append(outgoing[e.From], e.To)
	}
	for id, n := range g.Nodes {
		want := outgoing[id]
		if len(want) != len(n.Edges) {
			return fmt.Errorf("node %s adjacency has %d entries, edge list has %d", id, len(n.Edges), len(want))
		}
		for i := range want {
			if want[i] != n.Edges[i] {
				return fmt.Errorf("node %s adjacency entry %d is %s, edge list has %s", id, i, n.Edges[i], want[i])
			}
		}
	}
	return nil
}

// CheckTree reports whether the graph is a rooted tree: the root has no
// parent, every other node has exactly one, and each child sits one level
// below its parent.
func (g *Graph) CheckTree() error {
	parents := g.Parents()
	if len(parents[RootID]) != 0 {
		return fmt.Errorf("root has %d parents", len(parents[RootID]))
	}
	for _, id := range g.IDs() {
		if id == RootID {
			continue
		}
		if len(parents[id]) != 1 {
			return fmt.Errorf("node %s has %d parents", id, len(parents[id]))
		}
		parent := g.Nodes[parents[id][0]]
		if g.Nodes[id].Depth != parent.Depth+1 {
			return fmt.Errorf("node %s at depth %d under parent at depth %d", id, g.Nodes[id].Depth, parent.Depth)
		}
	}
	return nil
}

func nodeNotFound(id string) error {
	return apperrors.WithMetadata(apperrors.CodeNodeNotFound,
		"node "+id+" not found", map[string]string{"NodeID": id})
}

func without(ids []string, id string) []string {
	if ids == nil {
		return nil
	}
	out := ids[:0:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
