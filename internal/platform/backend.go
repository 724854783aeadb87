package platform

import "errors"

// ErrNoMonitor is returned when no physical display can be determined
// for the window being positioned. Move operations must propagate it
// as a hard failure; there is no default fallback position.
var ErrNoMonitor = errors.New("no monitor detected")

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Display describes a physical display. Bounds is the usable area of
// the display with panels and docks already excluded.
type Display struct {
	ID     int
	Name   string
	Bounds Rect
}

// Window contains metadata for a top-level window.
type Window struct {
	ID    WindowID
	Class string
	Title string
}

// Backend abstracts window-system operations across platforms. All
// operations are synchronous; geometry is queried fresh per call and
// never cached.
type Backend interface {
	// Displays returns all active displays.
	Displays() ([]Display, error)

	// DisplayForWindow returns the display the window currently
	// occupies. Fails with ErrNoMonitor when none can be determined.
	DisplayForWindow(id WindowID) (Display, error)

	// ActiveWindow returns the currently focused window.
	ActiveWindow() (WindowID, error)

	// OuterSize returns the window's outer size including decorations.
	OuterSize(id WindowID) (width, height int, err error)

	// MoveWindow moves the window's top-left corner to an absolute
	// root-relative pixel position.
	MoveWindow(id WindowID, x, y int) error

	// ListWindows returns normal application windows.
	ListWindows() ([]Window, error)

	// WindowClass returns the window's class string ("" when unset).
	WindowClass(id WindowID) string
}
