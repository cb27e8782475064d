package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/netrun/internal/netrun/architecture"
	"github.com/louisbranch/netrun/internal/netrun/difficulty"
	"github.com/louisbranch/netrun/internal/netrun/generator"
	"github.com/louisbranch/netrun/internal/netrun/session"
	"github.com/louisbranch/netrun/internal/netrun/turn"
	apperrors "github.com/louisbranch/netrun/internal/platform/errors"
	"github.com/louisbranch/netrun/internal/platform/i18n"
	"github.com/louisbranch/netrun/internal/platform/otel"
	"github.com/louisbranch/netrun/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/netrun/internal/mcp/domain"

// startSpan opens a span for one tool call.
func startSpan(ctx context.Context, tool, tableID string) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "mcp."+tool)
	span.SetAttributes(attribute.String("netrun.tool", tool))
	if tableID != "" {
		span.SetAttributes(attribute.String("netrun.table_id", tableID))
	}
	return ctx, span
}

// toolError renders err for the caller in the registry's language and
// records it on the span. Errors without a domain code pass through.
func toolError(tables *Tables, span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if apperrors.GetCode(err) == apperrors.CodeUnknown {
		return err
	}
	return fmt.Errorf("%s: %w", i18n.ErrorMessage(tables.Locale(), err), err)
}

// withTable looks up tableID and runs fn under the table's lock.
func withTable(tables *Tables, tableID string, fn func(*Table, *session.Engine, *session.State) error) error {
	table, err := tables.Get(tableID)
	if err != nil {
		return err
	}
	return table.Do(func(engine *session.Engine, st *session.State) error {
		return fn(table, engine, st)
	})
}

// TableCreateTool defines the MCP tool schema for opening a table.
func TableCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "table_create",
		Description: "Opens a netrun table with a single entry point node",
	}
}

// TableCreateHandler executes a table open request.
func TableCreateHandler(tables *Tables) mcp.ToolHandlerFor[TableCreateInput, TableSummary] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TableCreateInput) (*mcp.CallToolResult, TableSummary, error) {
		_, span := startSpan(ctx, "table_create", "")
		defer span.End()

		var seed int64
		if input.Seed != nil {
			seed = *input.Seed
		}
		table, err := tables.Create(seed)
		if err != nil {
			return nil, TableSummary{}, toolError(tables, span, err)
		}
		var summary TableSummary
		_ = table.Do(func(_ *session.Engine, st *session.State) error {
			summary = summarize(table, st)
			return nil
		})
		return &mcp.CallToolResult{}, summary, nil
	}
}

// TableListTool defines the MCP tool schema for listing tables.
func TableListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "table_list",
		Description: "Lists the open netrun tables",
	}
}

// TableListHandler executes a table list request.
func TableListHandler(tables *Tables) mcp.ToolHandlerFor[TableListInput, TableListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ TableListInput) (*mcp.CallToolResult, TableListResult, error) {
		_, span := startSpan(ctx, "table_list", "")
		defer span.End()

		result := TableListResult{Tables: []TableSummary{}}
		for _, table := range tables.List() {
			_ = table.Do(func(_ *session.Engine, st *session.State) error {
				result.Tables = append(result.Tables, summarize(table, st))
				return nil
			})
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// GenerateTool defines the MCP tool schema for generating an architecture.
func GenerateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "architecture_generate",
		Description: "Replaces the table's architecture with a freshly generated one and restarts the round count",
	}
}

// GenerateHandler executes an architecture generation request.
func GenerateHandler(tables *Tables) mcp.ToolHandlerFor[GenerateInput, GenerateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateResult, error) {
		_, span := startSpan(ctx, "architecture_generate", input.TableID)
		defer span.End()

		opts := generator.Options{
			Difficulty: difficulty.Default,
			Depth:      input.Depth,
			Branching:  input.Branching == nil || *input.Branching,
			Guarantees: input.Guarantees == nil || *input.Guarantees,
		}
		if strings.TrimSpace(input.Difficulty) != "" {
			name, err := difficulty.Parse(input.Difficulty)
			if err != nil {
				return nil, GenerateResult{}, toolError(tables, span, err)
			}
			opts.Difficulty = name
		}

		var result GenerateResult
		err := withTable(tables, input.TableID, func(table *Table, engine *session.Engine, st *session.State) error {
			res, err := engine.Generate(st, opts)
			if err != nil {
				return err
			}
			result = GenerateResult{Table: summarize(table, st), Depth: res.Depth}
			return nil
		})
		if err != nil {
			return nil, GenerateResult{}, toolError(tables, span, err)
		}
		span.SetAttributes(
			attribute.Int("netrun.depth", result.Depth),
			attribute.Int("netrun.node_count", result.Table.NodeCount),
		)
		return &mcp.CallToolResult{}, result, nil
	}
}

// NodeAddTool defines the MCP tool schema for inserting a node.
func NodeAddTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "node_add",
		Description: "Adds a child node below a parent; the DV follows the last generated difficulty",
	}
}

// NodeAddHandler executes a node insertion request.
func NodeAddHandler(tables *Tables) mcp.ToolHandlerFor[NodeAddInput, NodeInfo] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NodeAddInput) (*mcp.CallToolResult, NodeInfo, error) {
		_, span := startSpan(ctx, "node_add", input.TableID)
		defer span.End()

		nodeType := architecture.TypeEmpty
		if strings.TrimSpace(input.Type) != "" {
			parsed, err := architecture.ParseNodeType(input.Type)
			if err != nil {
				return nil, NodeInfo{}, toolError(tables, span, err)
			}
			nodeType = parsed
		}

		var result NodeInfo
		err := withTable(tables, input.TableID, func(_ *Table, engine *session.Engine, st *session.State) error {
			n, err := engine.AddChild(st, input.ParentID, nodeType)
			if err != nil {
				return err
			}
			result = nodeInfo(n)
			return nil
		})
		if err != nil {
			return nil, NodeInfo{}, toolError(tables, span, err)
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// NodeUpdateTool defines the MCP tool schema for editing a node.
func NodeUpdateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "node_update",
		Description: "Edits a node's name, type, DV, depth, ICE damage or notes",
	}
}

// NodeUpdateHandler executes a node edit request.
func NodeUpdateHandler(tables *Tables) mcp.ToolHandlerFor[NodeUpdateInput, NodeInfo] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NodeUpdateInput) (*mcp.CallToolResult, NodeInfo, error) {
		_, span := startSpan(ctx, "node_update", input.TableID)
		defer span.End()

		patch := session.NodePatch{
			Name:   input.Name,
			DV:     input.DV,
			Depth:  input.Depth,
			IceDmg: input.IceDmg,
			Notes:  input.Notes,
		}
		if input.Type != nil {
			parsed, err := architecture.ParseNodeType(*input.Type)
			if err != nil {
				return nil, NodeInfo{}, toolError(tables, span, err)
			}
			patch.Type = &parsed
		}

		var result NodeInfo
		err := withTable(tables, input.TableID, func(_ *Table, _ *session.Engine, st *session.State) error {
			n, err := st.UpdateNode(input.NodeID, patch)
			if err != nil {
				return err
			}
			result = nodeInfo(n)
			return nil
		})
		if err != nil {
			return nil, NodeInfo{}, toolError(tables, span, err)
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// NodeDeleteTool defines the MCP tool schema for deleting a node.
func NodeDeleteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "node_delete",
		Description: "Deletes a node and its links; the entry point cannot be deleted",
	}
}

// NodeDeleteHandler executes a node deletion request.
func NodeDeleteHandler(tables *Tables) mcp.ToolHandlerFor[NodeRef, NodeDeleteResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NodeRef) (*mcp.CallToolResult, NodeDeleteResult, error) {
		_, span := startSpan(ctx, "node_delete", input.TableID)
		defer span.End()

		var result NodeDeleteResult
		err := withTable(tables, input.TableID, func(_ *Table, _ *session.Engine, st *session.State) error {
			if err := st.DeleteNode(input.NodeID); err != nil {
				return err
			}
			result = NodeDeleteResult{
				DeletedID:    input.NodeID,
				ActiveNodeID: st.ActiveNodeID,
				NodeCount:    len(st.Nodes),
			}
			return nil
		})
		if err != nil {
			return nil, NodeDeleteResult{}, toolError(tables, span, err)
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// NodeSelectTool defines the MCP tool schema for selecting a node.
func NodeSelectTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "node_select",
		Description: "Selects a node, revealing it to the runner",
	}
}

// NodeSelectHandler executes a node selection request.
func NodeSelectHandler(tables *Tables) mcp.ToolHandlerFor[NodeRef, NodeInfo] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NodeRef) (*mcp.CallToolResult, NodeInfo, error) {
		_, span := startSpan(ctx, "node_select", input.TableID)
		defer span.End()

		var result NodeInfo
		err := withTable(tables, input.TableID, func(_ *Table, _ *session.Engine, st *session.State) error {
			n, err := st.Select(input.NodeID)
			if err != nil {
				return err
			}
			result = nodeInfo(n)
			return nil
		})
		if err != nil {
			return nil, NodeInfo{}, toolError(tables, span, err)
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// NetActionTool defines the MCP tool schema for taking a net action.
func NetActionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "net_action",
		Description: "Spends an action on a net action; SCAN reveals nodes around the selected node",
	}
}

// NetActionHandler executes a net action request.
func NetActionHandler(tables *Tables) mcp.ToolHandlerFor[NetActionInput, NetActionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NetActionInput) (*mcp.CallToolResult, NetActionResult, error) {
		_, span := startSpan(ctx, "net_action", input.TableID)
		defer span.End()

		action, err := turn.ParseAction(input.Action)
		if err != nil {
			return nil, NetActionResult{}, toolError(tables, span, err)
		}

		var result NetActionResult
		err = withTable(tables, input.TableID, func(_ *Table, _ *session.Engine, st *session.State) error {
			res, err := st.Perform(action)
			if err != nil {
				return err
			}
			result = NetActionResult{
				Action:      string(res.Action),
				Spent:       res.Spent,
				ActionsLeft: res.ActionsLeft,
				Revealed:    []NodeInfo{},
			}
			for _, id := range res.Revealed {
				if n, ok := st.Node(id); ok {
					result.Revealed = append(result.Revealed, nodeInfo(n))
				}
			}
			return nil
		})
		if err != nil {
			return nil, NetActionResult{}, toolError(tables, span, err)
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// TurnEndTool defines the MCP tool schema for ending a round.
func TurnEndTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "turn_end",
		Description: "Ends the round and refills the action budget",
	}
}

// TurnEndHandler executes an end-of-round request.
func TurnEndHandler(tables *Tables) mcp.ToolHandlerFor[TableInput, TableSummary] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TableInput) (*mcp.CallToolResult, TableSummary, error) {
		_, span := startSpan(ctx, "turn_end", input.TableID)
		defer span.End()

		var result TableSummary
		err := withTable(tables, input.TableID, func(table *Table, _ *session.Engine, st *session.State) error {
			st.EndTurn()
			result = summarize(table, st)
			return nil
		})
		if err != nil {
			return nil, TableSummary{}, toolError(tables, span, err)
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// ProfileApplyTool defines the MCP tool schema for switching rule profiles.
func ProfileApplyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "profile_apply",
		Description: "Switches between RAW and HOUSE rules, optionally pinning actions per round or scan depth; the new budget applies from the next round",
	}
}

// ProfileApplyHandler executes a rule profile change.
func ProfileApplyHandler(tables *Tables) mcp.ToolHandlerFor[ProfileApplyInput, TableSummary] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProfileApplyInput) (*mcp.CallToolResult, TableSummary, error) {
		_, span := startSpan(ctx, "profile_apply", input.TableID)
		defer span.End()

		profile, err := turn.ParseProfile(input.Profile)
		if err != nil {
			return nil, TableSummary{}, toolError(tables, span, err)
		}

		var result TableSummary
		err = withTable(tables, input.TableID, func(table *Table, _ *session.Engine, st *session.State) error {
			if input.ActionsPerRound != nil {
				st.SetActionsPerRound(*input.ActionsPerRound)
			}
			if input.ScanDepth != nil {
				st.SetScanDepth(*input.ScanDepth)
			}
			if err := st.ApplyProfile(profile); err != nil {
				return err
			}
			result = summarize(table, st)
			return nil
		})
		if err != nil {
			return nil, TableSummary{}, toolError(tables, span, err)
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// ProgramSetTool defines the MCP tool schema for toggling a program.
func ProgramSetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "program_set",
		Description: "Equips or removes a program; Speedy takes effect at the next action reset",
	}
}

// ProgramSetHandler executes a program toggle.
func ProgramSetHandler(tables *Tables) mcp.ToolHandlerFor[ProgramSetInput, TableSummary] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProgramSetInput) (*mcp.CallToolResult, TableSummary, error) {
		_, span := startSpan(ctx, "program_set", input.TableID)
		defer span.End()

		var result TableSummary
		err := withTable(tables, input.TableID, func(table *Table, _ *session.Engine, st *session.State) error {
			if err := st.SetProgram(input.Program, input.Active); err != nil {
				return err
			}
			result = summarize(table, st)
			return nil
		})
		if err != nil {
			return nil, TableSummary{}, toolError(tables, span, err)
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// SkillCheckTool defines the MCP tool schema for an exploding d10 check.
func SkillCheckTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "skill_check",
		Description: "Rolls an exploding d10 plus skill against a node's DV or an explicit DV",
	}
}

// SkillCheckHandler executes a skill check.
func SkillCheckHandler(tables *Tables) mcp.ToolHandlerFor[SkillCheckInput, SkillCheckResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SkillCheckInput) (*mcp.CallToolResult, SkillCheckResult, error) {
		_, span := startSpan(ctx, "skill_check", input.TableID)
		defer span.End()

		var result SkillCheckResult
		err := withTable(tables, input.TableID, func(_ *Table, engine *session.Engine, st *session.State) error {
			if strings.TrimSpace(input.NodeID) == "" {
				result = skillCheckResult(engine.SkillCheck(input.Skill, input.DV))
				return nil
			}
			outcome, err := engine.CheckNode(st, input.NodeID, input.Skill)
			if err != nil {
				return err
			}
			result = skillCheckResult(outcome)
			return nil
		})
		if err != nil {
			return nil, SkillCheckResult{}, toolError(tables, span, err)
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// SnapshotTool defines the MCP tool schema for exporting a table.
func SnapshotTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "table_snapshot",
		Description: "Returns the full table state as a JSON snapshot",
	}
}

// SnapshotHandler executes a snapshot export.
func SnapshotHandler(tables *Tables) mcp.ToolHandlerFor[TableInput, SnapshotResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TableInput) (*mcp.CallToolResult, SnapshotResult, error) {
		_, span := startSpan(ctx, "table_snapshot", input.TableID)
		defer span.End()

		var result SnapshotResult
		err := withTable(tables, input.TableID, func(table *Table, _ *session.Engine, st *session.State) error {
			data, err := session.Marshal(st)
			if err != nil {
				return err
			}
			result = SnapshotResult{TableID: table.ID(), Snapshot: string(data)}
			return nil
		})
		if err != nil {
			return nil, SnapshotResult{}, toolError(tables, span, err)
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// RestoreTool defines the MCP tool schema for importing a snapshot.
func RestoreTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "table_restore",
		Description: "Replaces the table state with a JSON snapshot; damaged snapshots are rejected",
	}
}

// RestoreHandler executes a snapshot import.
func RestoreHandler(tables *Tables) mcp.ToolHandlerFor[RestoreInput, TableSummary] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RestoreInput) (*mcp.CallToolResult, TableSummary, error) {
		_, span := startSpan(ctx, "table_restore", input.TableID)
		defer span.End()

		restored, err := session.Unmarshal([]byte(input.Snapshot))
		if err != nil {
			return nil, TableSummary{}, toolError(tables, span, err)
		}

		var result TableSummary
		err = withTable(tables, input.TableID, func(table *Table, _ *session.Engine, st *session.State) error {
			*st = *restored
			result = summarize(table, st)
			return nil
		})
		if err != nil {
			return nil, TableSummary{}, toolError(tables, span, err)
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// SaveTool defines the MCP tool schema for saving a table.
func SaveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "table_save",
		Description: "Saves the table under a name, replacing any earlier save with that name",
	}
}

// SaveHandler executes a save to the snapshot store.
func SaveHandler(tables *Tables, store storage.SnapshotStore, now func() time.Time) mcp.ToolHandlerFor[SaveInput, SaveResult] {
	if now == nil {
		now = time.Now
	}
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SaveInput) (*mcp.CallToolResult, SaveResult, error) {
		ctx, span := startSpan(ctx, "table_save", input.TableID)
		defer span.End()

		name := strings.TrimSpace(input.Name)
		if name == "" {
			return nil, SaveResult{}, toolError(tables, span, fmt.Errorf("save name is required"))
		}

		var snapshot storage.Snapshot
		err := withTable(tables, input.TableID, func(table *Table, _ *session.Engine, st *session.State) error {
			data, err := session.Marshal(st)
			if err != nil {
				return err
			}
			snapshot = storage.Snapshot{
				Name:       name,
				Difficulty: string(st.LastDifficulty),
				Seed:       table.Seed(),
				NodeCount:  len(st.Nodes),
				Data:       data,
				UpdatedAt:  now().UTC(),
			}
			return nil
		})
		if err != nil {
			return nil, SaveResult{}, toolError(tables, span, err)
		}
		if err := store.PutSnapshot(ctx, snapshot); err != nil {
			return nil, SaveResult{}, toolError(tables, span, fmt.Errorf("save table: %w", err))
		}
		return &mcp.CallToolResult{}, SaveResult{
			Name:      snapshot.Name,
			NodeCount: snapshot.NodeCount,
			UpdatedAt: snapshot.UpdatedAt.Format(time.RFC3339),
		}, nil
	}
}

// LoadTool defines the MCP tool schema for loading a saved table.
func LoadTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "table_load",
		Description: "Replaces the table state with a named save",
	}
}

// LoadHandler executes a load from the snapshot store.
func LoadHandler(tables *Tables, store storage.SnapshotStore) mcp.ToolHandlerFor[SaveInput, TableSummary] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SaveInput) (*mcp.CallToolResult, TableSummary, error) {
		ctx, span := startSpan(ctx, "table_load", input.TableID)
		defer span.End()

		if _, err := tables.Get(input.TableID); err != nil {
			return nil, TableSummary{}, toolError(tables, span, err)
		}
		snapshot, err := store.GetSnapshot(ctx, strings.TrimSpace(input.Name))
		if errors.Is(err, storage.ErrNotFound) {
			err = saveNotFound(strings.TrimSpace(input.Name))
		}
		if err != nil {
			return nil, TableSummary{}, toolError(tables, span, err)
		}
		restored, err := session.Unmarshal(snapshot.Data)
		if err != nil {
			return nil, TableSummary{}, toolError(tables, span, err)
		}

		var result TableSummary
		err = withTable(tables, input.TableID, func(table *Table, _ *session.Engine, st *session.State) error {
			*st = *restored
			result = summarize(table, st)
			return nil
		})
		if err != nil {
			return nil, TableSummary{}, toolError(tables, span, err)
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// TableCloseTool defines the MCP tool schema for closing a table.
func TableCloseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "table_close",
		Description: "Closes a table and discards its unsaved state",
	}
}

// TableCloseHandler executes a table close request.
func TableCloseHandler(tables *Tables) mcp.ToolHandlerFor[TableInput, TableCloseResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TableInput) (*mcp.CallToolResult, TableCloseResult, error) {
		_, span := startSpan(ctx, "table_close", input.TableID)
		defer span.End()

		if err := tables.Close(input.TableID); err != nil {
			return nil, TableCloseResult{}, toolError(tables, span, err)
		}
		return &mcp.CallToolResult{}, TableCloseResult{
			TableID: strings.TrimSpace(input.TableID),
			Open:    len(tables.List()),
		}, nil
	}
}

// RevealAllTool defines the MCP tool schema for revealing every node.
func RevealAllTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "reveal_all",
		Description: "Reveals every node of the architecture to the runner; costs no action",
	}
}

// RevealAllHandler executes a full reveal.
func RevealAllHandler(tables *Tables) mcp.ToolHandlerFor[TableInput, RevealAllResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TableInput) (*mcp.CallToolResult, RevealAllResult, error) {
		_, span := startSpan(ctx, "reveal_all", input.TableID)
		defer span.End()

		var result RevealAllResult
		err := withTable(tables, input.TableID, func(table *Table, _ *session.Engine, st *session.State) error {
			result = RevealAllResult{TableID: table.ID(), Revealed: []NodeInfo{}}
			for _, id := range st.RevealAll() {
				if n, ok := st.Node(id); ok {
					result.Revealed = append(result.Revealed, nodeInfo(n))
				}
			}
			return nil
		})
		if err != nil {
			return nil, RevealAllResult{}, toolError(tables, span, err)
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// D10Tool defines the MCP tool schema for a plain d10.
func D10Tool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "d10",
		Description: "Rolls one d10 from the table's random source, without exploding",
	}
}

// D10Handler executes a plain d10 roll.
func D10Handler(tables *Tables) mcp.ToolHandlerFor[TableInput, D10Result] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TableInput) (*mcp.CallToolResult, D10Result, error) {
		_, span := startSpan(ctx, "d10", input.TableID)
		defer span.End()

		var result D10Result
		err := withTable(tables, input.TableID, func(table *Table, engine *session.Engine, _ *session.State) error {
			result = D10Result{TableID: table.ID(), Roll: engine.D10()}
			return nil
		})
		if err != nil {
			return nil, D10Result{}, toolError(tables, span, err)
		}
		span.SetAttributes(attribute.Int("netrun.roll", result.Roll))
		return &mcp.CallToolResult{}, result, nil
	}
}

// SaveListTool defines the MCP tool schema for listing saves.
func SaveListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "save_list",
		Description: "Lists saved tables, most recently updated first",
	}
}

// SaveListHandler executes a save listing.
func SaveListHandler(tables *Tables, store storage.SnapshotStore) mcp.ToolHandlerFor[SaveListInput, SaveListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ SaveListInput) (*mcp.CallToolResult, SaveListResult, error) {
		ctx, span := startSpan(ctx, "save_list", "")
		defer span.End()

		snapshots, err := store.ListSnapshots(ctx)
		if err != nil {
			return nil, SaveListResult{}, toolError(tables, span, fmt.Errorf("list saves: %w", err))
		}
		result := SaveListResult{Saves: make([]SaveInfo, 0, len(snapshots))}
		for _, snapshot := range snapshots {
			result.Saves = append(result.Saves, SaveInfo{
				Name:       snapshot.Name,
				Difficulty: snapshot.Difficulty,
				Seed:       snapshot.Seed,
				NodeCount:  snapshot.NodeCount,
				CreatedAt:  snapshot.CreatedAt.Format(time.RFC3339),
				UpdatedAt:  snapshot.UpdatedAt.Format(time.RFC3339),
			})
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// SaveDeleteTool defines the MCP tool schema for deleting a save.
func SaveDeleteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "save_delete",
		Description: "Deletes a named save",
	}
}

// SaveDeleteHandler executes a save deletion.
func SaveDeleteHandler(tables *Tables, store storage.SnapshotStore) mcp.ToolHandlerFor[SaveDeleteInput, SaveDeleteResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SaveDeleteInput) (*mcp.CallToolResult, SaveDeleteResult, error) {
		ctx, span := startSpan(ctx, "save_delete", "")
		defer span.End()

		name := strings.TrimSpace(input.Name)
		err := store.DeleteSnapshot(ctx, name)
		if errors.Is(err, storage.ErrNotFound) {
			err = saveNotFound(name)
		}
		if err != nil {
			return nil, SaveDeleteResult{}, toolError(tables, span, err)
		}
		return &mcp.CallToolResult{}, SaveDeleteResult{Name: name}, nil
	}
}

func saveNotFound(name string) error {
	return apperrors.WithMetadata(apperrors.CodeNotFound,
		"no save named "+name, map[string]string{"Name": name})
}
