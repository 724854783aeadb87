package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/wmutil/positioner/internal/runtimepath"
)

// Client handles IPC communication with the daemon
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a new IPC client
func NewClient() *Client {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		// Keep constructor non-failing; sendRequest surfaces connection errors.
		socketPath = ""
	}

	return &Client{
		socketPath: socketPath,
		timeout:    5 * time.Second,
	}
}

// sendRequest sends a request and waits for a response
func (c *Client) sendRequest(req *Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w (is the daemon running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("daemon error: %s", resp.Error)
	}

	return &resp, nil
}

func (c *Client) sendWithPayload(command CommandType, payload interface{}) (*Response, error) {
	req := &Request{Command: command}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		req.Payload = data
	}
	return c.sendRequest(req)
}

// Move asks the daemon to move a window. placementSpec may be a name,
// a numeric code, or "" for the daemon's configured placement; window
// 0 targets the focused window.
func (c *Client) Move(placementSpec string, window uint32) (*MoveData, error) {
	resp, err := c.sendWithPayload(CommandMove, &MovePayload{
		Placement: placementSpec,
		Window:    window,
	})
	if err != nil {
		return nil, err
	}

	var data MoveData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse move result: %w", err)
	}
	return &data, nil
}

// GetStatus queries daemon status.
func (c *Client) GetStatus() (*StatusData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandGetStatus})
	if err != nil {
		return nil, err
	}

	var data StatusData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse status: %w", err)
	}
	return &data, nil
}

// GetMonitors queries all active monitors.
func (c *Client) GetMonitors() (*MonitorsData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandGetMonitors})
	if err != nil {
		return nil, err
	}

	var data MonitorsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse monitors: %w", err)
	}
	return &data, nil
}

// GetTray queries the last recorded tray icon rectangle.
func (c *Client) GetTray() (*TrayData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandGetTray})
	if err != nil {
		return nil, err
	}

	var data TrayData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse tray data: %w", err)
	}
	return &data, nil
}

// SetTray records a tray icon rectangle in the daemon.
func (c *Client) SetTray(x, y, width, height int) error {
	_, err := c.sendWithPayload(CommandSetTray, &TrayPayload{
		X: x, Y: y, Width: width, Height: height,
	})
	return err
}

// ClearTray forgets the recorded tray icon rectangle.
func (c *Client) ClearTray() error {
	_, err := c.sendRequest(&Request{Command: CommandClearTray})
	return err
}

// Reload asks the daemon to re-read its configuration.
func (c *Client) Reload() error {
	_, err := c.sendRequest(&Request{Command: CommandReload})
	return err
}

// Ping reports whether the daemon is reachable.
func (c *Client) Ping() error {
	_, err := c.GetStatus()
	return err
}
