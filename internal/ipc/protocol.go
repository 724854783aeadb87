package ipc

import (
	"encoding/json"
	"fmt"
)

// CommandType represents different IPC command types
type CommandType string

const (
	CommandMove        CommandType = "MOVE"
	CommandGetStatus   CommandType = "GET_STATUS"
	CommandGetMonitors CommandType = "GET_MONITORS"
	CommandGetTray     CommandType = "GET_TRAY"
	CommandSetTray     CommandType = "SET_TRAY"
	CommandClearTray   CommandType = "CLEAR_TRAY"
	CommandReload      CommandType = "RELOAD"
)

// Request represents an IPC request from client to server
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents an IPC response from server to client
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// MovePayload selects which window to move and where. Placement may be
// a name ("top-right") or a numeric wire code ("1"); when empty, the
// daemon applies its configured placement for the window's class.
// Window 0 means the currently focused window.
type MovePayload struct {
	Placement string `json:"placement,omitempty"`
	Window    uint32 `json:"window,omitempty"`
}

// MoveData is returned by a successful MOVE.
type MoveData struct {
	Window    uint32 `json:"window"`
	Placement string `json:"placement"`
	Code      int    `json:"code"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

// StatusData represents the data returned by GET_STATUS
type StatusData struct {
	DaemonRunning    bool   `json:"daemon_running"`
	DefaultPlacement string `json:"default_placement"`
	TrayRecorded     bool   `json:"tray_recorded"`
	UptimeSeconds    int64  `json:"uptime_seconds"`
}

// MonitorInfo represents information about a single monitor
type MonitorInfo struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// MonitorsData represents the data returned by GET_MONITORS
type MonitorsData struct {
	Monitors []MonitorInfo `json:"monitors"`
}

// TrayPayload carries a tray icon rectangle for SET_TRAY.
type TrayPayload struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// TrayData is returned by GET_TRAY. The rectangle fields are only
// meaningful when Recorded is true.
type TrayData struct {
	Recorded bool `json:"recorded"`
	X        int  `json:"x"`
	Y        int  `json:"y"`
	Width    int  `json:"width"`
	Height   int  `json:"height"`
}

// NewOKResponse creates a successful response with optional data
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: "OK",
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: "ERROR",
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
