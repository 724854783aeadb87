// Package mcp exposes window positioning as MCP tools over stdio so
// agent clients can place windows through the running daemon.
package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wmutil/positioner/internal/ipc"
	"github.com/wmutil/positioner/internal/placement"
)

const (
	ServerName    = "positioner"
	ServerVersion = "0.1.0"
)

// Server is the MCP server bridging tool calls to the daemon's IPC
// socket. Apart from list_placements, every tool requires the daemon
// to be running.
type Server struct {
	mcpServer *mcpsdk.Server
	client    *ipc.Client
}

// NewServer creates a new MCP server backed by the daemon IPC socket.
func NewServer() *Server {
	s := &Server{
		client: ipc.NewClient(),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_window",
		Description: "Move a window to a symbolic placement on its current monitor (top-left, center, ...) or relative to the tray icon (tray-center, ...). Tray placements fail until the daemon has recorded a tray icon rectangle. Moves the focused window unless a window ID is given.",
	}, s.handleMoveWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_monitors",
		Description: "List all active monitors with their usable geometry (panels and docks excluded).",
	}, s.handleListMonitors)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_tray_anchor",
		Description: "Return the last tray icon rectangle recorded by the daemon, if any. Tray-relative placements only work while an anchor is recorded.",
	}, s.handleGetTrayAnchor)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_placements",
		Description: "List all symbolic placements with their stable wire codes. Codes are a compatibility contract and never change between versions.",
	}, s.handleListPlacements)
}

func (s *Server) handleMoveWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveWindowInput) (*mcpsdk.CallToolResult, MoveWindowOutput, error) {
	if args.Placement == "" {
		return nil, MoveWindowOutput{}, fmt.Errorf("placement is required; use list_placements for valid values")
	}
	if _, err := placement.Parse(args.Placement); err != nil {
		return nil, MoveWindowOutput{}, err
	}

	data, err := s.client.Move(args.Placement, args.Window)
	if err != nil {
		return nil, MoveWindowOutput{}, err
	}

	return nil, MoveWindowOutput{
		Window:    data.Window,
		Placement: data.Placement,
		Code:      data.Code,
		X:         data.X,
		Y:         data.Y,
	}, nil
}

func (s *Server) handleListMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListMonitorsInput) (*mcpsdk.CallToolResult, ListMonitorsOutput, error) {
	data, err := s.client.GetMonitors()
	if err != nil {
		return nil, ListMonitorsOutput{}, err
	}

	out := ListMonitorsOutput{Monitors: make([]MonitorInfo, 0, len(data.Monitors))}
	for _, m := range data.Monitors {
		out.Monitors = append(out.Monitors, MonitorInfo{
			ID:     m.ID,
			Name:   m.Name,
			X:      m.X,
			Y:      m.Y,
			Width:  m.Width,
			Height: m.Height,
		})
	}
	return nil, out, nil
}

func (s *Server) handleGetTrayAnchor(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetTrayAnchorInput) (*mcpsdk.CallToolResult, GetTrayAnchorOutput, error) {
	data, err := s.client.GetTray()
	if err != nil {
		return nil, GetTrayAnchorOutput{}, err
	}

	return nil, GetTrayAnchorOutput{
		Recorded: data.Recorded,
		X:        data.X,
		Y:        data.Y,
		Width:    data.Width,
		Height:   data.Height,
	}, nil
}

func (s *Server) handleListPlacements(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListPlacementsInput) (*mcpsdk.CallToolResult, ListPlacementsOutput, error) {
	all := placement.All()
	out := ListPlacementsOutput{Placements: make([]PlacementInfo, 0, len(all))}
	for _, p := range all {
		out.Placements = append(out.Placements, PlacementInfo{
			Code:         int(p),
			Name:         p.String(),
			TrayRelative: p.TrayRelative(),
		})
	}
	return nil, out, nil
}
