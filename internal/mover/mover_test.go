package mover

import (
	"errors"
	"testing"

	"github.com/wmutil/positioner/internal/placement"
	"github.com/wmutil/positioner/internal/platform"
	"github.com/wmutil/positioner/internal/tray"
)

type move struct {
	id   platform.WindowID
	x, y int
}

// fakeBackend is an in-memory platform.Backend for mover tests.
type fakeBackend struct {
	display    platform.Display
	displayErr error
	active     platform.WindowID
	activeErr  error
	width      int
	height     int
	sizeErr    error
	moveErr    error
	moves      []move
}

func (f *fakeBackend) Displays() ([]platform.Display, error) {
	return []platform.Display{f.display}, nil
}

func (f *fakeBackend) DisplayForWindow(id platform.WindowID) (platform.Display, error) {
	if f.displayErr != nil {
		return platform.Display{}, f.displayErr
	}
	return f.display, nil
}

func (f *fakeBackend) ActiveWindow() (platform.WindowID, error) {
	if f.activeErr != nil {
		return 0, f.activeErr
	}
	return f.active, nil
}

func (f *fakeBackend) OuterSize(id platform.WindowID) (int, int, error) {
	if f.sizeErr != nil {
		return 0, 0, f.sizeErr
	}
	return f.width, f.height, nil
}

func (f *fakeBackend) MoveWindow(id platform.WindowID, x, y int) error {
	if f.moveErr != nil {
		return f.moveErr
	}
	f.moves = append(f.moves, move{id: id, x: x, y: y})
	return nil
}

func (f *fakeBackend) ListWindows() ([]platform.Window, error) { return nil, nil }
func (f *fakeBackend) WindowClass(id platform.WindowID) string { return "" }

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		display: platform.Display{
			ID:     0,
			Name:   "eDP-1",
			Bounds: platform.Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
		},
		active: 42,
		width:  400,
		height: 300,
	}
}

func TestMove_AppliesResolvedPosition(t *testing.T) {
	backend := newFakeBackend()
	m := New(backend, tray.NewStore())

	got, err := m.Move(42, placement.TopRight)
	if err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	want := placement.Point{X: 1520, Y: 0}
	if got != want {
		t.Fatalf("Move() = %+v, want %+v", got, want)
	}

	if len(backend.moves) != 1 {
		t.Fatalf("expected 1 window move, got %d", len(backend.moves))
	}
	if backend.moves[0] != (move{id: 42, x: 1520, y: 0}) {
		t.Fatalf("applied move = %+v", backend.moves[0])
	}
}

func TestMoveActive_UsesFocusedWindow(t *testing.T) {
	backend := newFakeBackend()
	backend.active = 7
	m := New(backend, tray.NewStore())

	if _, err := m.MoveActive(placement.Center); err != nil {
		t.Fatalf("MoveActive() error: %v", err)
	}
	if len(backend.moves) != 1 || backend.moves[0].id != 7 {
		t.Fatalf("expected move of window 7, got %+v", backend.moves)
	}
}

func TestMove_NoMonitorIsHardFailure(t *testing.T) {
	backend := newFakeBackend()
	backend.displayErr = platform.ErrNoMonitor
	m := New(backend, tray.NewStore())

	_, err := m.Move(42, placement.TopLeft)
	if !errors.Is(err, platform.ErrNoMonitor) {
		t.Fatalf("Move() error = %v, want ErrNoMonitor", err)
	}
	if len(backend.moves) != 0 {
		t.Fatalf("window moved despite monitor lookup failure: %+v", backend.moves)
	}
}

func TestMove_TrayPlacementWithoutAnchorFails(t *testing.T) {
	backend := newFakeBackend()
	m := New(backend, tray.NewStore())

	_, err := m.Move(42, placement.TrayCenter)
	if !errors.Is(err, placement.ErrMissingAnchor) {
		t.Fatalf("Move() error = %v, want ErrMissingAnchor", err)
	}
	if len(backend.moves) != 0 {
		t.Fatalf("window moved despite missing tray anchor: %+v", backend.moves)
	}
}

func TestMove_TrayPlacementUsesRecordedAnchor(t *testing.T) {
	backend := newFakeBackend()
	backend.width = 300
	backend.height = 400
	store := tray.NewStore()
	store.Record(placement.Rect{X: 1900, Y: 1060, Width: 20, Height: 20})
	m := New(backend, store)

	got, err := m.Move(42, placement.TrayLeft)
	if err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	want := placement.Point{X: 1900, Y: 660}
	if got != want {
		t.Fatalf("Move() = %+v, want %+v", got, want)
	}
}

func TestMove_RecoversAfterAnchorAppears(t *testing.T) {
	backend := newFakeBackend()
	store := tray.NewStore()
	m := New(backend, store)

	if _, err := m.Move(42, placement.TrayBottomLeft); !errors.Is(err, placement.ErrMissingAnchor) {
		t.Fatalf("expected ErrMissingAnchor, got %v", err)
	}

	// The failure must not poison later operations on the same mover.
	store.Record(placement.Rect{X: 100, Y: 50, Width: 24, Height: 24})
	got, err := m.Move(42, placement.TrayBottomLeft)
	if err != nil {
		t.Fatalf("Move() after anchor recorded: %v", err)
	}
	if got != (placement.Point{X: 100, Y: 50}) {
		t.Fatalf("Move() = %+v", got)
	}
}

func TestMove_MeasureFailureAbortsOperation(t *testing.T) {
	backend := newFakeBackend()
	backend.sizeErr = errors.New("window gone")
	m := New(backend, tray.NewStore())

	if _, err := m.Move(42, placement.Center); err == nil {
		t.Fatal("expected error when outer size query fails")
	}
	if len(backend.moves) != 0 {
		t.Fatalf("window moved despite size query failure: %+v", backend.moves)
	}
}
