package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// MoveWindow moves a window to an absolute root-relative position
// without changing its size.
func (c *Connection) MoveWindow(windowID xproto.Window, x, y int) error {
	// A maximized window ignores move requests on most WMs.
	c.unmaximizeWindow(windowID)

	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return fmt.Errorf("failed to get window geometry: %w", err)
	}

	// Prefer EWMH for WM cooperation, fall back to a direct configure.
	if err := ewmh.MoveresizeWindow(c.XUtil, windowID, x, y, int(geom.Width), int(geom.Height)); err != nil {
		xwindow.New(c.XUtil, windowID).Move(x, y)
	}

	return nil
}

// OuterSize returns the window's full rendered size including frame
// decorations, in pixels.
func (c *Connection) OuterSize(windowID xproto.Window) (width, height int, err error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get window geometry: %w", err)
	}

	width = int(geom.Width)
	height = int(geom.Height)

	// Frame extents are optional; without them the client size is the
	// best available approximation of the outer size.
	if extents, err := ewmh.FrameExtentsGet(c.XUtil, windowID); err == nil {
		width += int(extents.Left) + int(extents.Right)
		height += int(extents.Top) + int(extents.Bottom)
	}

	return width, height, nil
}

// ActiveWindow returns the currently focused window.
func (c *Connection) ActiveWindow() (xproto.Window, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	if win == 0 {
		return 0, fmt.Errorf("no active window")
	}
	return win, nil
}

// WindowInfo is metadata for a top-level client window.
type WindowInfo struct {
	ID    xproto.Window
	Class string
	Title string
}

// ListWindows returns the WM's client list, restricted to normal
// application windows.
func (c *Connection) ListWindows() ([]WindowInfo, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}

	var windows []WindowInfo
	for _, windowID := range clients {
		if !c.isNormalWindow(windowID) {
			continue
		}

		info := WindowInfo{ID: windowID}
		if class, err := icccm.WmClassGet(c.XUtil, windowID); err == nil && class != nil {
			info.Class = class.Class
		}
		if title, err := ewmh.WmNameGet(c.XUtil, windowID); err == nil && title != "" {
			info.Title = title
		} else if title, err := icccm.WmNameGet(c.XUtil, windowID); err == nil {
			info.Title = title
		}

		windows = append(windows, info)
	}

	return windows, nil
}

// WindowClass returns the WM_CLASS class string for a window, or ""
// when the property is unset.
func (c *Connection) WindowClass(windowID xproto.Window) string {
	class, err := icccm.WmClassGet(c.XUtil, windowID)
	if err != nil || class == nil {
		return ""
	}
	return class.Class
}

// isNormalWindow filters out desktops, docks, splashes and similar.
func (c *Connection) isNormalWindow(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		return true
	}

	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_NORMAL" {
			return true
		}
		if t == "_NET_WM_WINDOW_TYPE_DESKTOP" ||
			t == "_NET_WM_WINDOW_TYPE_DOCK" ||
			t == "_NET_WM_WINDOW_TYPE_SPLASH" ||
			t == "_NET_WM_WINDOW_TYPE_NOTIFICATION" {
			return false
		}
	}

	return len(types) == 0
}

// unmaximizeWindow removes maximized state from a window.
func (c *Connection) unmaximizeWindow(windowID xproto.Window) {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return
	}

	for _, state := range states {
		if state == "_NET_WM_STATE_MAXIMIZED_HORZ" || state == "_NET_WM_STATE_MAXIMIZED_VERT" {
			ewmh.WmStateReq(c.XUtil, windowID, 0, state)
		}
	}
}
