// Package mover applies symbolic placements to real windows. It is the
// host-side orchestration around the pure resolver in internal/placement:
// look up the display the window occupies, measure its outer size,
// snapshot the tray anchor, resolve, move.
package mover

import (
	"fmt"

	"github.com/wmutil/positioner/internal/placement"
	"github.com/wmutil/positioner/internal/platform"
	"github.com/wmutil/positioner/internal/tray"
)

// Mover positions windows on the display they currently occupy or
// relative to the recorded tray icon.
type Mover struct {
	backend platform.Backend
	tray    *tray.Store
}

// New creates a Mover. trayStore may be shared with the daemon's tray
// subsystem; the mover only reads snapshots from it.
func New(backend platform.Backend, trayStore *tray.Store) *Mover {
	return &Mover{
		backend: backend,
		tray:    trayStore,
	}
}

// MoveActive moves the currently focused window to the placement.
func (m *Mover) MoveActive(p placement.Placement) (placement.Point, error) {
	windowID, err := m.backend.ActiveWindow()
	if err != nil {
		return placement.Point{}, fmt.Errorf("failed to resolve active window: %w", err)
	}
	return m.Move(windowID, p)
}

// Move moves the window to the placement. Failures (no monitor, no
// tray anchor) abort only this operation; no partial move is applied.
func (m *Mover) Move(windowID platform.WindowID, p placement.Placement) (placement.Point, error) {
	display, err := m.backend.DisplayForWindow(windowID)
	if err != nil {
		return placement.Point{}, err
	}

	width, height, err := m.backend.OuterSize(windowID)
	if err != nil {
		return placement.Point{}, fmt.Errorf("failed to measure window %d: %w", windowID, err)
	}

	var anchor *placement.Rect
	if p.TrayRelative() {
		if r, ok := m.tray.Snapshot(); ok {
			anchor = &r
		}
	}

	target, err := placement.Resolve(p, rectFromPlatform(display.Bounds), placement.Size{Width: width, Height: height}, anchor)
	if err != nil {
		return placement.Point{}, err
	}

	if err := m.backend.MoveWindow(windowID, target.X, target.Y); err != nil {
		return placement.Point{}, fmt.Errorf("failed to move window %d: %w", windowID, err)
	}

	return target, nil
}

func rectFromPlatform(r platform.Rect) placement.Rect {
	return placement.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
