// Package pathfinder reveals architecture nodes by bounded breadth-first
// traversal.
package pathfinder

import (
	"github.com/louisbranch/netrun/internal/netrun/architecture"
	apperrors "github.com/louisbranch/netrun/internal/platform/errors"
)

type bfsEntry struct {
	nodeID string
	hop    int
}

// Reveal marks every node within depth hops of fromID visible, following the
// directed adjacency. The start node itself is left as it is. A negative depth
// reveals nothing. The returned ids are the nodes that were hidden before the
// call, in BFS order.
//
// An unknown start fails with CodeNodeNotFound and leaves the graph unchanged.
func Reveal(g *architecture.Graph, fromID string, depth int) ([]string, error) {
	if _, ok := g.Node(fromID); !ok {
		return nil, apperrors.WithMetadata(apperrors.CodeNodeNotFound,
			"node "+fromID+" not found", map[string]string{"NodeID": fromID})
	}

	var revealed []string
	visited := map[string]bool{fromID: true}
	queue := []bfsEntry{{nodeID: fromID, hop: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.hop >= depth {
			continue
		}
		node, _ := g.Node(current.nodeID)
		for _, childID := range node.Edges {
			if visited[childID] {
				continue
			}
			visited[childID] = true
			child, ok := g.Node(childID)
			if !ok {
				continue
			}
			if !child.Visible {
				child.Visible = true
				revealed = append(revealed, childID)
			}
			queue = append(queue, bfsEntry{nodeID: childID, hop: current.hop + 1})
		}
	}
	return revealed, nil
}

// RevealAll marks every node visible and returns the ids that were hidden, in
// sorted order.
func RevealAll(g *architecture.Graph) []string {
	var revealed []string
	for _, id := range g.IDs() {
		n := g.Nodes[id]
		if !n.Visible {
			n.Visible = true
			revealed = append(revealed, id)
		}
	}
	return revealed
}
