package service

import (
	"time"

	"github.com/louisbranch/netrun/internal/mcp/domain"
	"github.com/louisbranch/netrun/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTableTools(mcpServer *mcp.Server, tables *domain.Tables) {
	mcp.AddTool(mcpServer, domain.TableCreateTool(), domain.TableCreateHandler(tables))
	mcp.AddTool(mcpServer, domain.TableListTool(), domain.TableListHandler(tables))
	mcp.AddTool(mcpServer, domain.SnapshotTool(), domain.SnapshotHandler(tables))
	mcp.AddTool(mcpServer, domain.RestoreTool(), domain.RestoreHandler(tables))
	mcp.AddTool(mcpServer, domain.TableCloseTool(), domain.TableCloseHandler(tables))
}

func registerArchitectureTools(mcpServer *mcp.Server, tables *domain.Tables) {
	mcp.AddTool(mcpServer, domain.GenerateTool(), domain.GenerateHandler(tables))
	mcp.AddTool(mcpServer, domain.NodeAddTool(), domain.NodeAddHandler(tables))
	mcp.AddTool(mcpServer, domain.NodeUpdateTool(), domain.NodeUpdateHandler(tables))
	mcp.AddTool(mcpServer, domain.NodeDeleteTool(), domain.NodeDeleteHandler(tables))
	mcp.AddTool(mcpServer, domain.NodeSelectTool(), domain.NodeSelectHandler(tables))
	mcp.AddTool(mcpServer, domain.RevealAllTool(), domain.RevealAllHandler(tables))
}

func registerTurnTools(mcpServer *mcp.Server, tables *domain.Tables) {
	mcp.AddTool(mcpServer, domain.NetActionTool(), domain.NetActionHandler(tables))
	mcp.AddTool(mcpServer, domain.TurnEndTool(), domain.TurnEndHandler(tables))
	mcp.AddTool(mcpServer, domain.ProfileApplyTool(), domain.ProfileApplyHandler(tables))
	mcp.AddTool(mcpServer, domain.ProgramSetTool(), domain.ProgramSetHandler(tables))
	mcp.AddTool(mcpServer, domain.SkillCheckTool(), domain.SkillCheckHandler(tables))
	mcp.AddTool(mcpServer, domain.D10Tool(), domain.D10Handler(tables))
}

// registerStoreTools registers the tools that persist tables.
func registerStoreTools(mcpServer *mcp.Server, tables *domain.Tables, store storage.SnapshotStore) {
	mcp.AddTool(mcpServer, domain.SaveTool(), domain.SaveHandler(tables, store, time.Now))
	mcp.AddTool(mcpServer, domain.LoadTool(), domain.LoadHandler(tables, store))
	mcp.AddTool(mcpServer, domain.SaveListTool(), domain.SaveListHandler(tables, store))
	mcp.AddTool(mcpServer, domain.SaveDeleteTool(), domain.SaveDeleteHandler(tables, store))
}
