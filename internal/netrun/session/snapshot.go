package session

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/louisbranch/netrun/internal/netrun/difficulty"
	apperrors "github.com/louisbranch/netrun/internal/platform/errors"
)

// Marshal encodes the full state as a JSON snapshot.
func Marshal(st *State) ([]byte, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	return data, nil
}

// requiredKeys must appear in every snapshot. Only nodes and programs must
// also be non-null; an architecture without links encodes its edges as null.
var requiredKeys = []string{
	"profile", "round", "actionsPerRound", "actionsLeft", "scanDepth",
	"programs", "nodes", "edges", "activeNodeId",
}

// Unmarshal restores a snapshot. Anything that would leave a corrupt state
// fails with CodeSnapshotMalformed: invalid JSON, a missing required field,
// a round below 1 or negative action count, a missing root, mismatched keys,
// dangling edges, adjacency that does not mirror the edge list, an unknown
// active node, node type, profile or difficulty.
func Unmarshal(data []byte) (*State, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, malformed("decode snapshot", err)
	}
	for _, key := range requiredKeys {
		raw, ok := fields[key]
		if !ok {
			return nil, malformed(key+" is missing", nil)
		}
		if key != "edges" && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, malformed(key+" is missing", nil)
		}
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, malformed("decode snapshot", err)
	}
	if st.Round < 1 {
		return nil, malformed(fmt.Sprintf("round %d is below 1", st.Round), nil)
	}
	if st.ActionsLeft < 0 {
		return nil, malformed(fmt.Sprintf("actions left %d is negative", st.ActionsLeft), nil)
	}
	if err := st.Validate(); err != nil {
		return nil, malformed("invalid graph", err)
	}
	if _, ok := st.Node(st.ActiveNodeID); !ok {
		return nil, malformed("active node "+st.ActiveNodeID+" is missing", nil)
	}
	if !st.Profile.Valid() {
		return nil, malformed("unknown profile "+string(st.Profile), nil)
	}
	if st.LastDifficulty == "" {
		st.LastDifficulty = difficulty.Default
	}
	if _, ok := difficulty.Lookup(st.LastDifficulty); !ok {
		return nil, malformed("unknown difficulty "+string(st.LastDifficulty), nil)
	}
	return &st, nil
}

func malformed(message string, cause error) error {
	if cause == nil {
		return apperrors.New(apperrors.CodeSnapshotMalformed, message)
	}
	return apperrors.Wrap(apperrors.CodeSnapshotMalformed, message, cause)
}
