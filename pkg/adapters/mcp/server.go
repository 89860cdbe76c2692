// Package mcp exposes the maze solver as an MCP server, so agent hosts can
// drive exploration as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/ariadne"
	"github.com/aretw0/ariadne/internal/presentation/graph"
	"github.com/aretw0/ariadne/pkg/domain"
)

// Engine is the slice of the ariadne facade the MCP server needs.
type Engine interface {
	Start(ctx context.Context, player string) error
	Explore(ctx context.Context) ([]domain.Path, error)
	FollowShortestPath(ctx context.Context) (domain.NavigationStatus, error)
	Snapshot() domain.Snapshot
	Reset()
}

// SolveResponse is the structured result of the solve and explore tools.
type SolveResponse struct {
	Routes []domain.Path           `json:"routes" jsonschema_description:"Safe routes from entry to exit, shortest first"`
	Status domain.NavigationStatus `json:"status,omitempty" jsonschema_description:"Navigation outcome when a path was walked"`
	Win    bool                    `json:"win" jsonschema_description:"Whether the agent reached an exit"`
	Dead   bool                    `json:"dead" jsonschema_description:"Whether the agent died"`
	Log    []string                `json:"log" jsonschema_description:"Chronological journey log"`
}

// Server wraps the solver engine and exposes it over MCP.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server instance over a solver engine.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("ariadne-mcp", strings.TrimSpace(ariadne.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	solveTool := mcp.NewTool("solve_maze",
		mcp.WithDescription("Start a session, explore the whole maze and walk the shortest route to an exit."),
		mcp.WithString("player", mcp.Required(), mcp.Description("Player name for the session")),
		mcp.WithOutputSchema[SolveResponse](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolve))

	exploreTool := mcp.NewTool("explore_maze",
		mcp.WithDescription("Start a session and map the maze without walking to an exit."),
		mcp.WithString("player", mcp.Required(), mcp.Description("Player name for the session")),
		mcp.WithOutputSchema[SolveResponse](),
	)
	s.mcpServer.AddTool(exploreTool, mcp.NewStructuredToolHandler(s.handleExplore))

	s.mcpServer.AddTool(mcp.NewTool("get_map",
		mcp.WithDescription("Get the discovered maze as a Mermaid flowchart."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(graph.GenerateMermaid(s.engine.Snapshot())), nil
	})
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SolveResponse, error) {
	resp, err := s.explore(ctx, args)
	if err != nil {
		return SolveResponse{}, err
	}

	status, err := s.engine.FollowShortestPath(ctx)
	if err != nil {
		return SolveResponse{}, fmt.Errorf("navigation failed: %w", err)
	}

	snap := s.engine.Snapshot()
	resp.Status = status
	resp.Win = snap.Win
	resp.Dead = snap.Dead
	resp.Log = snap.Log
	return resp, nil
}

func (s *Server) handleExplore(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SolveResponse, error) {
	return s.explore(ctx, args)
}

func (s *Server) explore(ctx context.Context, args map[string]interface{}) (SolveResponse, error) {
	player, _ := args["player"].(string)
	if player == "" {
		return SolveResponse{}, fmt.Errorf("player is required")
	}

	if err := s.engine.Start(ctx, player); err != nil {
		return SolveResponse{}, fmt.Errorf("start failed: %w", err)
	}

	routes, err := s.engine.Explore(ctx)
	if err != nil {
		return SolveResponse{}, fmt.Errorf("exploration failed: %w", err)
	}

	snap := s.engine.Snapshot()
	return SolveResponse{
		Routes: routes,
		Win:    snap.Win,
		Dead:   snap.Dead,
		Log:    snap.Log,
	}, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("ariadne://snapshot", "Current Session Snapshot",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Snapshot())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "ariadne://snapshot",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
