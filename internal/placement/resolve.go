package placement

import (
	"errors"
	"fmt"
)

// ErrMissingAnchor is returned when a tray-relative placement is
// resolved before any tray icon geometry has been recorded.
var ErrMissingAnchor = errors.New("tray anchor not recorded")

// Resolve maps a placement to the top-left pixel coordinate for a
// window of the given outer size on the given monitor. All arithmetic
// is integer; centering may land one pixel off on odd dimensions.
//
// monitor must be the geometry of the display the window occupies.
// tray is the last known tray icon rectangle and may be nil; resolving
// a tray-relative placement with a nil tray fails with
// ErrMissingAnchor. Resolve never mutates its inputs and holds no
// state: identical inputs always produce identical output.
func Resolve(p Placement, monitor Rect, window Size, tray *Rect) (Point, error) {
	switch p {
	case TopLeft:
		return Point{X: monitor.X, Y: monitor.Y}, nil
	case TopRight:
		return Point{
			X: monitor.X + (monitor.Width - window.Width),
			Y: monitor.Y,
		}, nil
	case BottomLeft:
		return Point{
			X: monitor.X,
			Y: bottomY(monitor, window),
		}, nil
	case BottomRight:
		return Point{
			X: monitor.X + (monitor.Width - window.Width),
			Y: bottomY(monitor, window),
		}, nil
	case TopCenter:
		return Point{
			X: monitor.X + (monitor.Width/2 - window.Width/2),
			Y: monitor.Y,
		}, nil
	case BottomCenter:
		return Point{
			X: monitor.X + (monitor.Width/2 - window.Width/2),
			Y: bottomY(monitor, window),
		}, nil
	case LeftCenter:
		return Point{
			X: monitor.X,
			Y: monitor.Y + (monitor.Height/2 - window.Height/2),
		}, nil
	case RightCenter:
		return Point{
			X: monitor.X + (monitor.Width - window.Width),
			Y: monitor.Y + (monitor.Height/2 - window.Height/2),
		}, nil
	case Center:
		return Point{
			X: monitor.X + (monitor.Width/2 - window.Width/2),
			Y: monitor.Y + (monitor.Height/2 - window.Height/2),
		}, nil
	case TrayLeft:
		if tray == nil {
			return Point{}, missingAnchor(p)
		}
		return Point{X: tray.X, Y: tray.Y - window.Height}, nil
	case TrayBottomLeft:
		if tray == nil {
			return Point{}, missingAnchor(p)
		}
		return Point{X: tray.X, Y: tray.Y}, nil
	case TrayRight:
		if tray == nil {
			return Point{}, missingAnchor(p)
		}
		return Point{X: tray.X + tray.Width, Y: tray.Y - window.Height}, nil
	case TrayBottomRight:
		if tray == nil {
			return Point{}, missingAnchor(p)
		}
		return Point{X: tray.X + tray.Width, Y: tray.Y}, nil
	case TrayCenter:
		if tray == nil {
			return Point{}, missingAnchor(p)
		}
		return Point{
			X: tray.X + tray.Width/2 - window.Width/2,
			Y: tray.Y - window.Height,
		}, nil
	case TrayBottomCenter:
		if tray == nil {
			return Point{}, missingAnchor(p)
		}
		return Point{
			X: tray.X + tray.Width/2 - window.Width/2,
			Y: tray.Y,
		}, nil
	default:
		return Point{}, fmt.Errorf("unknown placement code %d", int(p))
	}
}

func missingAnchor(p Placement) error {
	return fmt.Errorf("placement %s: %w", p, ErrMissingAnchor)
}

// bottomY computes the y coordinate for the Bottom* family. The
// formula is monitor.Height - (window.Height - monitor.Y), not the
// more obvious monitor.Y + monitor.Height - window.Height. The two
// differ on monitors whose origin is not (0,0); the literal form is
// kept for compatibility with existing callers.
func bottomY(monitor Rect, window Size) int {
	return monitor.Height - (window.Height - monitor.Y)
}
