package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// ErrNoMonitor is returned when no physical display can be determined
// for a window. Callers must treat this as a hard failure of the move
// operation; there is no fallback position.
var ErrNoMonitor = errors.New("no monitor detected")

// Monitor represents a physical display
type Monitor struct {
	ID     int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor

	// Query each CRTC; disabled ones report zero size.
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		if outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			outputName = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   outputName,
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		})
	}

	return monitors, nil
}

// MonitorForWindow returns the monitor containing the window's center,
// adjusted to the usable work area (panels and docks excluded).
// Returns ErrNoMonitor when no display contains the window.
func (c *Connection) MonitorForWindow(windowID xproto.Window) (*Monitor, error) {
	monitors, err := c.GetMonitors()
	if err != nil {
		return nil, err
	}
	if len(monitors) == 0 {
		return nil, ErrNoMonitor
	}

	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get window geometry: %w", err)
	}

	translate, err := xproto.TranslateCoordinates(c.XUtil.Conn(), windowID, c.Root, 0, 0).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to translate window coordinates: %w", err)
	}

	centerX := int(translate.DstX) + int(geom.Width)/2
	centerY := int(translate.DstY) + int(geom.Height)/2

	for i := range monitors {
		mon := &monitors[i]
		if centerX >= mon.X && centerX < mon.X+mon.Width &&
			centerY >= mon.Y && centerY < mon.Y+mon.Height {
			c.applyWorkArea(mon)
			return mon, nil
		}
	}

	return nil, fmt.Errorf("window %d center (%d,%d) outside all displays: %w",
		windowID, centerX, centerY, ErrNoMonitor)
}

// applyWorkArea shrinks the monitor to the intersection with the EWMH
// work area of the current desktop, so windows are positioned against
// the space panels and docks leave free.
func (c *Connection) applyWorkArea(monitor *Monitor) {
	workArea, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(workArea) == 0 {
		return
	}

	desktopIndex := 0
	if currentDesktop, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil {
		if int(currentDesktop) >= 0 && int(currentDesktop) < len(workArea) {
			desktopIndex = int(currentDesktop)
		}
	}
	wa := workArea[desktopIndex]

	x1 := max(monitor.X, int(wa.X))
	y1 := max(monitor.Y, int(wa.Y))
	x2 := min(monitor.X+monitor.Width, int(wa.X)+int(wa.Width))
	y2 := min(monitor.Y+monitor.Height, int(wa.Y)+int(wa.Height))

	if x2 > x1 && y2 > y1 {
		monitor.X = x1
		monitor.Y = y1
		monitor.Width = x2 - x1
		monitor.Height = y2 - y1
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
