package ipc

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"sync"
	"time"

	"github.com/wmutil/positioner/internal/actionlog"
	"github.com/wmutil/positioner/internal/config"
	"github.com/wmutil/positioner/internal/mover"
	"github.com/wmutil/positioner/internal/placement"
	"github.com/wmutil/positioner/internal/platform"
	"github.com/wmutil/positioner/internal/runtimepath"
	"github.com/wmutil/positioner/internal/tray"
)

// Server handles IPC requests from clients
type Server struct {
	socketPath   string
	listener     net.Listener
	cfg          *config.Config
	cfgMu        sync.RWMutex
	mover        *mover.Mover
	backend      platform.Backend
	trayStore    *tray.Store
	actions      *actionlog.Logger
	startTime    time.Time
	reloadChan   chan struct{}
	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates a new IPC server
func NewServer(cfg *config.Config, m *mover.Mover, backend platform.Backend, trayStore *tray.Store, actions *actionlog.Logger, reloadChan chan struct{}) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve IPC socket path: %w", err)
	}

	// Remove existing socket if present
	os.Remove(socketPath)

	return &Server{
		socketPath: socketPath,
		cfg:        cfg,
		mover:      m,
		backend:    backend,
		trayStore:  trayStore,
		actions:    actions,
		startTime:  time.Now(),
		reloadChan: reloadChan,
	}, nil
}

// Start begins listening for IPC connections
func (s *Server) Start() error {
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create IPC socket: %w", err)
	}
	s.listener = listener

	if err := os.Chmod(s.socketPath, 0600); err != nil {
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	log.Printf("IPC server listening on %s", s.socketPath)

	go s.acceptLoop()

	return nil
}

// Stop shuts down the listener and removes the socket.
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}

// UpdateConfig swaps the active configuration.
func (s *Server) UpdateConfig(cfg *config.Config) {
	s.cfgMu.Lock()
	s.cfg = cfg
	s.cfgMu.Unlock()
}

// acceptLoop accepts incoming connections
func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			if s.shuttingDown {
				s.shutdownMu.Unlock()
				return
			}
			s.shutdownMu.Unlock()
			log.Printf("IPC accept error: %v", err)
			continue
		}

		go s.handleConnection(conn)
	}
}

// handleConnection handles a single IPC connection
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)

	// Read the request (expect JSON on a single line)
	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		log.Printf("IPC read error: %v", err)
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		s.sendResponse(conn, NewErrorResponse(fmt.Sprintf("Invalid request: %v", err)))
		return
	}

	s.sendResponse(conn, s.handleCommand(req))
}

func (s *Server) sendResponse(conn net.Conn, resp *Response) {
	respData, err := resp.Marshal()
	if err != nil {
		log.Printf("Failed to marshal response: %v", err)
		return
	}

	respData = append(respData, '\n')
	if _, err := conn.Write(respData); err != nil {
		log.Printf("Failed to send response: %v", err)
	}
}

// handleCommand processes an IPC command and returns a response
func (s *Server) handleCommand(req *Request) *Response {
	switch req.Command {
	case CommandMove:
		return s.handleMove(req.Payload)
	case CommandGetStatus:
		return s.handleGetStatus()
	case CommandGetMonitors:
		return s.handleGetMonitors()
	case CommandGetTray:
		return s.handleGetTray()
	case CommandSetTray:
		return s.handleSetTray(req.Payload)
	case CommandClearTray:
		return s.handleClearTray()
	case CommandReload:
		return s.handleReload()
	default:
		return NewErrorResponse(fmt.Sprintf("Unknown command: %s", req.Command))
	}
}

// handleMove resolves and applies a placement for one window. A
// failed move aborts only this operation; daemon state is untouched.
func (s *Server) handleMove(payload json.RawMessage) *Response {
	var movePayload MovePayload
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &movePayload); err != nil {
			return NewErrorResponse(fmt.Sprintf("Invalid move payload: %v", err))
		}
	}

	windowID := platform.WindowID(movePayload.Window)
	if windowID == 0 {
		active, err := s.backend.ActiveWindow()
		if err != nil {
			return NewErrorResponse(fmt.Sprintf("Failed to resolve active window: %v", err))
		}
		windowID = active
	}

	var p placement.Placement
	if movePayload.Placement != "" {
		parsed, err := placement.Parse(movePayload.Placement)
		if err != nil {
			return NewErrorResponse(err.Error())
		}
		p = parsed
	} else {
		s.cfgMu.RLock()
		p = s.cfg.PlacementFor(s.backend.WindowClass(windowID))
		s.cfgMu.RUnlock()
	}

	target, err := s.mover.Move(windowID, p)
	if err != nil {
		s.actions.Log(actionlog.ActionMoveFailed, map[string]interface{}{
			"window":    uint32(windowID),
			"placement": p.String(),
			"error":     err.Error(),
		})
		if errors.Is(err, placement.ErrMissingAnchor) {
			return NewErrorResponse(fmt.Sprintf("tray placement unavailable: %v", err))
		}
		if errors.Is(err, platform.ErrNoMonitor) {
			return NewErrorResponse(fmt.Sprintf("monitor lookup failed: %v", err))
		}
		return NewErrorResponse(fmt.Sprintf("Failed to move window: %v", err))
	}

	s.actions.Log(actionlog.ActionMove, map[string]interface{}{
		"window":    uint32(windowID),
		"placement": p.String(),
		"x":         target.X,
		"y":         target.Y,
	})

	resp, _ := NewOKResponse(MoveData{
		Window:    uint32(windowID),
		Placement: p.String(),
		Code:      int(p),
		X:         target.X,
		Y:         target.Y,
	})
	return resp
}

// handleGetStatus returns current daemon status
func (s *Server) handleGetStatus() *Response {
	s.cfgMu.RLock()
	defaultPlacement := s.cfg.DefaultPlacement.String()
	s.cfgMu.RUnlock()

	_, recorded := s.trayStore.Snapshot()

	status := StatusData{
		DaemonRunning:    true,
		DefaultPlacement: defaultPlacement,
		TrayRecorded:     recorded,
		UptimeSeconds:    int64(time.Since(s.startTime).Seconds()),
	}

	resp, _ := NewOKResponse(status)
	return resp
}

// handleGetMonitors returns information about all monitors
func (s *Server) handleGetMonitors() *Response {
	displays, err := s.backend.Displays()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to get monitors: %v", err))
	}

	monitorInfos := make([]MonitorInfo, len(displays))
	for i, d := range displays {
		monitorInfos[i] = MonitorInfo{
			ID:     d.ID,
			Name:   d.Name,
			X:      d.Bounds.X,
			Y:      d.Bounds.Y,
			Width:  d.Bounds.Width,
			Height: d.Bounds.Height,
		}
	}

	resp, _ := NewOKResponse(MonitorsData{Monitors: monitorInfos})
	return resp
}

func (s *Server) handleGetTray() *Response {
	data := TrayData{}
	if r, ok := s.trayStore.Snapshot(); ok {
		data = TrayData{Recorded: true, X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
	}

	resp, _ := NewOKResponse(data)
	return resp
}

// handleSetTray records a tray icon rectangle pushed by the tray
// subsystem (or by hand for testing).
func (s *Server) handleSetTray(payload json.RawMessage) *Response {
	var trayPayload TrayPayload
	if err := json.Unmarshal(payload, &trayPayload); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid tray payload: %v", err))
	}
	if trayPayload.Width < 0 || trayPayload.Height < 0 {
		return NewErrorResponse("tray rectangle must have non-negative dimensions")
	}

	s.trayStore.Record(placement.Rect{
		X:      trayPayload.X,
		Y:      trayPayload.Y,
		Width:  trayPayload.Width,
		Height: trayPayload.Height,
	})

	s.actions.Log(actionlog.ActionTrayUpdate, map[string]interface{}{
		"x": trayPayload.X, "y": trayPayload.Y,
		"width": trayPayload.Width, "height": trayPayload.Height,
	})

	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) handleClearTray() *Response {
	s.trayStore.Clear()
	resp, _ := NewOKResponse(nil)
	return resp
}

// handleReload reloads the configuration
func (s *Server) handleReload() *Response {
	log.Println("IPC: Received RELOAD command")

	newCfg, err := config.Load()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to reload config: %v", err))
	}

	s.UpdateConfig(newCfg)

	// Notify the daemon via channel (non-blocking)
	select {
	case s.reloadChan <- struct{}{}:
	default:
	}

	log.Println("IPC: Config reloaded successfully")

	resp, _ := NewOKResponse(nil)
	return resp
}
