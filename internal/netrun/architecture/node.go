package architecture

import (
	"strings"

	apperrors "github.com/louisbranch/netrun/internal/platform/errors"
)

// NodeType is the closed set of node kinds.
type NodeType int

const (
	// TypePassword gates access further down the architecture.
	TypePassword NodeType = iota
	// TypeFile holds data the runner may want.
	TypeFile
	// TypeControl operates a device or system attached to the net.
	TypeControl
	// TypeBlackIce is a hostile program that damages the runner.
	TypeBlackIce
	// TypeEmpty is an editor placeholder; the generator never creates it.
	TypeEmpty
)

// Types returns every node type in declaration order.
func Types() []NodeType {
	return []NodeType{TypePassword, TypeFile, TypeControl, TypeBlackIce, TypeEmpty}
}

// String returns the wire name of the type.
func (t NodeType) String() string {
	switch t {
	case TypePassword:
		return "Password"
	case TypeFile:
		return "File"
	case TypeControl:
		return "Control"
	case TypeBlackIce:
		return "Black ICE"
	case TypeEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// ParseNodeType resolves a wire name, case-insensitively. "BlackIce" is
// accepted as an alias for "Black ICE".
func ParseNodeType(value string) (NodeType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "password":
		return TypePassword, nil
	case "file":
		return TypeFile, nil
	case "control":
		return TypeControl, nil
	case "black ice", "blackice", "black_ice":
		return TypeBlackIce, nil
	case "empty":
		return TypeEmpty, nil
	default:
		return 0, apperrors.WithMetadata(apperrors.CodeUnknownNodeType,
			"unknown node type "+value, map[string]string{"Type": value})
	}
}

// MarshalText encodes the type by wire name.
func (t NodeType) MarshalText() ([]byte, error) {
	if t < TypePassword || t > TypeEmpty {
		return nil, apperrors.New(apperrors.CodeUnknownNodeType, "unknown node type")
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a wire name.
func (t *NodeType) UnmarshalText(text []byte) error {
	parsed, err := ParseNodeType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Node is a vertex in the architecture graph.
type Node struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Type  NodeType `json:"type"`
	DV    int      `json:"dv"`
	Depth int      `json:"depth"`
	Notes string   `json:"notes"`
	// Visible marks the node as revealed to the runner.
	Visible bool `json:"visible"`
	// Active marks the currently selected node.
	Active bool `json:"active"`
	IceDmg int  `json:"iceDmg"`
	// Edges lists child ids in link order.
	Edges []string `json:"edges"`
}

// Edge is a directed parent-to-child link.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (n *Node) clone() *Node {
	c := *n
	if n.Edges != nil {
		c.Edges = make([]string, len(n.Edges))
		copy(c.Edges, n.Edges)
	}
	return &c
}
