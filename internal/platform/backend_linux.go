//go:build linux

package platform

import (
	"errors"
	"fmt"
	"sort"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/wmutil/positioner/internal/x11"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh X11 connection.
func NewLinuxBackendFromDisplay() (*LinuxBackend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// EventLoop starts the X11 event loop (blocking).
func (b *LinuxBackend) EventLoop() {
	if b != nil && b.conn != nil {
		b.conn.EventLoop()
	}
}

// XUtil returns the underlying xgbutil connection for X11-specific operations.
func (b *LinuxBackend) XUtil() *xgbutil.XUtil {
	if b == nil || b.conn == nil {
		return nil
	}
	return b.conn.XUtil
}

// RootWindow returns the X11 root window ID.
func (b *LinuxBackend) RootWindow() xproto.Window {
	if b == nil || b.conn == nil {
		return 0
	}
	return b.conn.Root
}

// Displays returns all active displays.
func (b *LinuxBackend) Displays() ([]Display, error) {
	monitors, err := b.conn.GetMonitors()
	if err != nil {
		return nil, err
	}

	displays := make([]Display, 0, len(monitors))
	for _, m := range monitors {
		displays = append(displays, displayFromMonitor(m))
	}

	sort.Slice(displays, func(i, j int) bool {
		return displays[i].ID < displays[j].ID
	})

	return displays, nil
}

// DisplayForWindow returns the display containing the window.
func (b *LinuxBackend) DisplayForWindow(id WindowID) (Display, error) {
	mon, err := b.conn.MonitorForWindow(xproto.Window(id))
	if err != nil {
		if errors.Is(err, x11.ErrNoMonitor) {
			return Display{}, fmt.Errorf("window %d: %w", id, ErrNoMonitor)
		}
		return Display{}, err
	}
	return displayFromMonitor(*mon), nil
}

// ActiveWindow returns the currently focused window.
func (b *LinuxBackend) ActiveWindow() (WindowID, error) {
	win, err := b.conn.ActiveWindow()
	if err != nil {
		return 0, err
	}
	return WindowID(win), nil
}

// OuterSize returns the window's outer size including decorations.
func (b *LinuxBackend) OuterSize(id WindowID) (int, int, error) {
	return b.conn.OuterSize(xproto.Window(id))
}

// MoveWindow moves the window to an absolute position.
func (b *LinuxBackend) MoveWindow(id WindowID, x, y int) error {
	return b.conn.MoveWindow(xproto.Window(id), x, y)
}

// ListWindows returns normal application windows.
func (b *LinuxBackend) ListWindows() ([]Window, error) {
	infos, err := b.conn.ListWindows()
	if err != nil {
		return nil, err
	}

	windows := make([]Window, 0, len(infos))
	for _, info := range infos {
		windows = append(windows, Window{
			ID:    WindowID(info.ID),
			Class: info.Class,
			Title: info.Title,
		})
	}
	return windows, nil
}

// WindowClass returns the window's WM_CLASS class string.
func (b *LinuxBackend) WindowClass(id WindowID) string {
	return b.conn.WindowClass(xproto.Window(id))
}

func displayFromMonitor(m x11.Monitor) Display {
	return Display{
		ID:   m.ID,
		Name: m.Name,
		Bounds: Rect{
			X:      m.X,
			Y:      m.Y,
			Width:  m.Width,
			Height: m.Height,
		},
	}
}
