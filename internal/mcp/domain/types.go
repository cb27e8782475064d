package domain

import (
	"github.com/louisbranch/netrun/internal/core/check"
	"github.com/louisbranch/netrun/internal/netrun/architecture"
	"github.com/louisbranch/netrun/internal/netrun/generator"
	"github.com/louisbranch/netrun/internal/netrun/session"
	"github.com/louisbranch/netrun/internal/netrun/turn"
)

// TableSummary represents the turn and selection state of a table.
type TableSummary struct {
	TableID         string     `json:"table_id" jsonschema:"table identifier"`
	Seed            int64      `json:"seed" jsonschema:"seed of the table's random source"`
	Profile         string     `json:"profile" jsonschema:"rule profile (RAW or HOUSE)"`
	Difficulty      string     `json:"difficulty" jsonschema:"difficulty of the last generated architecture"`
	Round           int        `json:"round" jsonschema:"current round, starting at 1"`
	ActionsPerRound int        `json:"actions_per_round" jsonschema:"action budget per round"`
	ActionsLeft     int        `json:"actions_left" jsonschema:"actions remaining this round"`
	ScanDepth       int        `json:"scan_depth" jsonschema:"hops revealed by a scan"`
	Programs        []string   `json:"programs" jsonschema:"active programs"`
	Mods            turn.Mods  `json:"mods" jsonschema:"modifiers granted by active programs"`
	ActiveNodeID    string     `json:"active_node_id" jsonschema:"selected node"`
	NodeCount       int        `json:"node_count" jsonschema:"number of nodes in the architecture"`
	BranchPlan      *PlanInfo  `json:"branch_plan,omitempty" jsonschema:"branching diagnostics of the last generation"`
	Visible         []NodeInfo `json:"visible_nodes" jsonschema:"nodes the runner can currently see"`
}

// PlanInfo mirrors generator.BranchPlan for tool output.
type PlanInfo struct {
	Total      int   `json:"total" jsonschema:"planned forced branches"`
	Depths     []int `json:"depths" jsonschema:"levels chosen for forced branches"`
	Actual     int   `json:"actual" jsonschema:"nodes with more than one child"`
	UsedDepths []int `json:"used_depths" jsonschema:"levels where a branch was forced"`
}

// NodeInfo represents one architecture node in tool output.
type NodeInfo struct {
	ID       string   `json:"id" jsonschema:"node identifier"`
	Name     string   `json:"name" jsonschema:"display name"`
	Type     string   `json:"type" jsonschema:"node type"`
	DV       int      `json:"dv" jsonschema:"difficulty value"`
	Depth    int      `json:"depth" jsonschema:"level, root is 1"`
	IceDmg   int      `json:"ice_dmg" jsonschema:"Black ICE damage"`
	Notes    string   `json:"notes,omitempty" jsonschema:"GM notes"`
	Visible  bool     `json:"visible" jsonschema:"revealed to the runner"`
	Active   bool     `json:"active" jsonschema:"currently selected"`
	Children []string `json:"children" jsonschema:"child node ids"`
}

// TableCreateInput represents the MCP tool input for opening a table.
type TableCreateInput struct {
	Seed *int64 `json:"seed,omitempty" jsonschema:"optional seed for a replayable table"`
}

// TableListInput represents the MCP tool input for listing tables.
type TableListInput struct{}

// TableListResult represents the MCP tool output for listing tables.
type TableListResult struct {
	Tables []TableSummary `json:"tables" jsonschema:"live tables, oldest first"`
}

// GenerateInput represents the MCP tool input for generating an architecture.
type GenerateInput struct {
	TableID    string `json:"table_id" jsonschema:"table identifier returned by table_create"`
	Difficulty string `json:"difficulty,omitempty" jsonschema:"easy, standard, hard or deadly; defaults to standard"`
	Depth      int    `json:"depth,omitempty" jsonschema:"requested depth (3-12); omit to roll one"`
	Branching  *bool  `json:"branching,omitempty" jsonschema:"allow branches; defaults to true"`
	Guarantees *bool  `json:"guarantees,omitempty" jsonschema:"ensure a File and a Control node; defaults to true"`
}

// GenerateResult represents the MCP tool output for generation.
type GenerateResult struct {
	Table TableSummary `json:"table" jsonschema:"table state after generation"`
	Depth int          `json:"depth" jsonschema:"depth actually generated"`
}

// NodeAddInput represents the MCP tool input for inserting a child node.
type NodeAddInput struct {
	TableID  string `json:"table_id" jsonschema:"table identifier returned by table_create"`
	ParentID string `json:"parent_id" jsonschema:"node to attach the child to"`
	Type     string `json:"type,omitempty" jsonschema:"Password, File, Control, Black ICE or Empty; defaults to Empty"`
}

// NodeUpdateInput represents the MCP tool input for editing a node.
type NodeUpdateInput struct {
	TableID string  `json:"table_id" jsonschema:"table identifier returned by table_create"`
	NodeID  string  `json:"node_id" jsonschema:"node to edit"`
	Name    *string `json:"name,omitempty" jsonschema:"new display name"`
	Type    *string `json:"type,omitempty" jsonschema:"new node type"`
	DV      *int    `json:"dv,omitempty" jsonschema:"new difficulty value"`
	Depth   *int    `json:"depth,omitempty" jsonschema:"new level, at least 1"`
	IceDmg  *int    `json:"ice_dmg,omitempty" jsonschema:"new Black ICE damage"`
	Notes   *string `json:"notes,omitempty" jsonschema:"new GM notes"`
}

// TableInput identifies the table a tool acts on.
type TableInput struct {
	TableID string `json:"table_id" jsonschema:"table identifier returned by table_create"`
}

// NodeRef identifies a node on a table.
type NodeRef struct {
	TableID string `json:"table_id" jsonschema:"table identifier returned by table_create"`
	NodeID  string `json:"node_id" jsonschema:"node identifier"`
}

// NodeDeleteResult represents the MCP tool output for deleting a node.
type NodeDeleteResult struct {
	DeletedID    string `json:"deleted_id" jsonschema:"removed node"`
	ActiveNodeID string `json:"active_node_id" jsonschema:"selected node after deletion"`
	NodeCount    int    `json:"node_count" jsonschema:"nodes left"`
}

// NetActionInput represents the MCP tool input for a net action.
type NetActionInput struct {
	TableID string `json:"table_id" jsonschema:"table identifier returned by table_create"`
	Action  string `json:"action" jsonschema:"SCAN, BACKDOOR, CONTROL, ZAP, SLIDE or JACKIN"`
}

// NetActionResult represents the MCP tool output for a net action.
type NetActionResult struct {
	Action      string     `json:"action" jsonschema:"action taken"`
	Spent       bool       `json:"spent" jsonschema:"whether an action was spent"`
	ActionsLeft int        `json:"actions_left" jsonschema:"actions remaining this round"`
	Revealed    []NodeInfo `json:"revealed" jsonschema:"nodes a scan made visible"`
}

// ProfileApplyInput represents the MCP tool input for switching rule profiles.
type ProfileApplyInput struct {
	TableID         string `json:"table_id" jsonschema:"table identifier returned by table_create"`
	Profile         string `json:"profile" jsonschema:"RAW or HOUSE"`
	ActionsPerRound *int   `json:"actions_per_round,omitempty" jsonschema:"sticky override for the action budget"`
	ScanDepth       *int   `json:"scan_depth,omitempty" jsonschema:"sticky override for the scan depth"`
}

// ProgramSetInput represents the MCP tool input for toggling a program.
type ProgramSetInput struct {
	TableID string `json:"table_id" jsonschema:"table identifier returned by table_create"`
	Program string `json:"program" jsonschema:"Sword, Killer, Armor or Speedy"`
	Active  bool   `json:"active" jsonschema:"whether the program is running"`
}

// SkillCheckInput represents the MCP tool input for a skill check.
type SkillCheckInput struct {
	TableID string `json:"table_id" jsonschema:"table identifier returned by table_create"`
	Skill   int    `json:"skill" jsonschema:"interface skill added to the roll"`
	NodeID  string `json:"node_id,omitempty" jsonschema:"roll against this node's DV"`
	DV      int    `json:"dv,omitempty" jsonschema:"explicit DV when no node is given; 0 rolls without a target"`
}

// SkillCheckResult represents the MCP tool output for a skill check.
type SkillCheckResult struct {
	Rolls    []int `json:"rolls" jsonschema:"raw d10 draws in order"`
	Modifier int   `json:"modifier" jsonschema:"skill plus program bonuses"`
	Total    int   `json:"total" jsonschema:"final roll total"`
	DV       int   `json:"dv" jsonschema:"difficulty value rolled against"`
	HasDV    bool  `json:"has_dv" jsonschema:"whether a DV applied"`
	Success  bool  `json:"success" jsonschema:"total met the DV"`
	Margin   int   `json:"margin" jsonschema:"total minus DV"`
}

// SnapshotResult represents the MCP tool output carrying a table snapshot.
type SnapshotResult struct {
	TableID  string `json:"table_id" jsonschema:"table identifier"`
	Snapshot string `json:"snapshot" jsonschema:"JSON session snapshot"`
}

// RestoreInput represents the MCP tool input for restoring a snapshot.
type RestoreInput struct {
	TableID  string `json:"table_id" jsonschema:"table identifier returned by table_create"`
	Snapshot string `json:"snapshot" jsonschema:"JSON session snapshot from table_snapshot"`
}

// SaveInput represents the MCP tool input for saving or loading a table.
type SaveInput struct {
	TableID string `json:"table_id" jsonschema:"table identifier returned by table_create"`
	Name    string `json:"name" jsonschema:"save slot name"`
}

// SaveResult represents the MCP tool output for a save.
type SaveResult struct {
	Name      string `json:"name" jsonschema:"save slot name"`
	NodeCount int    `json:"node_count" jsonschema:"nodes saved"`
	UpdatedAt string `json:"updated_at" jsonschema:"save time (RFC 3339)"`
}

// TableCloseResult represents the MCP tool output for closing a table.
type TableCloseResult struct {
	TableID string `json:"table_id" jsonschema:"closed table"`
	Open    int    `json:"open" jsonschema:"tables still open"`
}

// RevealAllResult represents the MCP tool output for revealing a whole architecture.
type RevealAllResult struct {
	TableID  string     `json:"table_id" jsonschema:"table identifier"`
	Revealed []NodeInfo `json:"revealed" jsonschema:"nodes that were hidden until now"`
}

// D10Result represents the MCP tool output for a plain d10.
type D10Result struct {
	TableID string `json:"table_id" jsonschema:"table identifier"`
	Roll    int    `json:"roll" jsonschema:"d10 result, 1-10"`
}

// SaveListInput represents the MCP tool input for listing saves.
type SaveListInput struct{}

// SaveInfo describes one save slot.
type SaveInfo struct {
	Name       string `json:"name" jsonschema:"save slot name"`
	Difficulty string `json:"difficulty" jsonschema:"difficulty at save time"`
	Seed       int64  `json:"seed" jsonschema:"seed of the saving table"`
	NodeCount  int    `json:"node_count" jsonschema:"nodes saved"`
	CreatedAt  string `json:"created_at" jsonschema:"first save time (RFC 3339)"`
	UpdatedAt  string `json:"updated_at" jsonschema:"last save time (RFC 3339)"`
}

// SaveListResult represents the MCP tool output for listing saves.
type SaveListResult struct {
	Saves []SaveInfo `json:"saves" jsonschema:"save slots, most recently updated first"`
}

// SaveDeleteInput represents the MCP tool input for deleting a save.
type SaveDeleteInput struct {
	Name string `json:"name" jsonschema:"save slot name"`
}

// SaveDeleteResult represents the MCP tool output for deleting a save.
type SaveDeleteResult struct {
	Name string `json:"name" jsonschema:"deleted save slot"`
}

func summarize(table *Table, st *session.State) TableSummary {
	summary := TableSummary{
		TableID:         table.ID(),
		Seed:            table.Seed(),
		Profile:         string(st.Profile),
		Difficulty:      string(st.LastDifficulty),
		Round:           st.Round,
		ActionsPerRound: st.ActionsPerRound,
		ActionsLeft:     st.ActionsLeft,
		ScanDepth:       st.ScanDepth,
		Programs:        activePrograms(st.Programs),
		Mods:            st.Mods(),
		ActiveNodeID:    st.ActiveNodeID,
		NodeCount:       len(st.Nodes),
		BranchPlan:      planInfo(st.BranchPlan),
		Visible:         []NodeInfo{},
	}
	for _, id := range st.IDs() {
		n, _ := st.Node(id)
		if n.Visible {
			summary.Visible = append(summary.Visible, nodeInfo(n))
		}
	}
	return summary
}

func planInfo(plan *generator.BranchPlan) *PlanInfo {
	if plan == nil {
		return nil
	}
	return &PlanInfo{
		Total:      plan.Total,
		Depths:     plan.Depths,
		Actual:     plan.Actual,
		UsedDepths: plan.UsedDepths,
	}
}

func nodeInfo(n *architecture.Node) NodeInfo {
	children := n.Edges
	if children == nil {
		children = []string{}
	}
	return NodeInfo{
		ID:       n.ID,
		Name:     n.Name,
		Type:     n.Type.String(),
		DV:       n.DV,
		Depth:    n.Depth,
		IceDmg:   n.IceDmg,
		Notes:    n.Notes,
		Visible:  n.Visible,
		Active:   n.Active,
		Children: append([]string(nil), children...),
	}
}

func activePrograms(p turn.Programs) []string {
	active := []string{}
	for _, program := range []struct {
		name turn.Program
		on   bool
	}{
		{turn.ProgramSword, p.Sword},
		{turn.ProgramKiller, p.Killer},
		{turn.ProgramArmor, p.Armor},
		{turn.ProgramSpeedy, p.Speedy},
	} {
		if program.on {
			active = append(active, string(program.name))
		}
	}
	return active
}

func skillCheckResult(outcome check.Outcome) SkillCheckResult {
	return SkillCheckResult{
		Rolls:    outcome.Roll.Rolls,
		Modifier: outcome.Roll.Modifier,
		Total:    outcome.Roll.Total,
		DV:       outcome.DV,
		HasDV:    outcome.HasDV,
		Success:  outcome.Success,
		Margin:   outcome.Margin,
	}
}
