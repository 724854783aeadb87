package placement

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve_MonitorRelative(t *testing.T) {
	monitor := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	window := Size{Width: 400, Height: 300}

	tests := []struct {
		placement Placement
		want      Point
	}{
		{TopLeft, Point{0, 0}},
		{TopRight, Point{1520, 0}},
		{BottomLeft, Point{0, 780}},
		{BottomRight, Point{1520, 780}},
		{TopCenter, Point{760, 0}},
		{BottomCenter, Point{760, 780}},
		{LeftCenter, Point{0, 390}},
		{RightCenter, Point{1520, 390}},
		{Center, Point{760, 390}},
	}

	for _, tt := range tests {
		t.Run(tt.placement.String(), func(t *testing.T) {
			got, err := Resolve(tt.placement, monitor, window, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("point mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_TrayRelative(t *testing.T) {
	monitor := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	window := Size{Width: 300, Height: 400}
	tray := &Rect{X: 1900, Y: 1060, Width: 20, Height: 20}

	tests := []struct {
		placement Placement
		want      Point
	}{
		{TrayLeft, Point{1900, 660}},
		{TrayBottomLeft, Point{1900, 1060}},
		{TrayRight, Point{1920, 660}},
		{TrayBottomRight, Point{1920, 1060}},
		{TrayCenter, Point{1760, 660}},
		{TrayBottomCenter, Point{1760, 1060}},
	}

	for _, tt := range tests {
		t.Run(tt.placement.String(), func(t *testing.T) {
			got, err := Resolve(tt.placement, monitor, window, tray)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("point mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_TrayRelativeWithoutAnchorFails(t *testing.T) {
	monitor := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	window := Size{Width: 300, Height: 400}

	for _, p := range All() {
		if !p.TrayRelative() {
			continue
		}
		_, err := Resolve(p, monitor, window, nil)
		if !errors.Is(err, ErrMissingAnchor) {
			t.Fatalf("Resolve(%s) with nil tray: got err=%v, want ErrMissingAnchor", p, err)
		}
	}
}

func TestResolve_TopLeftIsMonitorOrigin(t *testing.T) {
	monitors := []Rect{
		{X: 0, Y: 0, Width: 1920, Height: 1080},
		{X: 1920, Y: 0, Width: 2560, Height: 1440},
		{X: -1280, Y: 200, Width: 1280, Height: 1024},
	}
	windows := []Size{
		{Width: 400, Height: 300},
		{Width: 1, Height: 1},
		{Width: 1920, Height: 1080},
	}

	for _, m := range monitors {
		for _, w := range windows {
			got, err := Resolve(TopLeft, m, w, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.X != m.X || got.Y != m.Y {
				t.Fatalf("TopLeft on %+v = %+v, want monitor origin", m, got)
			}
		}
	}
}

func TestResolve_CenterFormula(t *testing.T) {
	monitors := []Rect{
		{X: 0, Y: 0, Width: 1920, Height: 1080},
		{X: 1920, Y: 0, Width: 1280, Height: 1024},
		{X: 3, Y: 7, Width: 641, Height: 479}, // odd dimensions
	}
	window := Size{Width: 333, Height: 211}

	for _, m := range monitors {
		got, err := Resolve(Center, m, window, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantX := m.X + m.Width/2 - window.Width/2
		wantY := m.Y + m.Height/2 - window.Height/2
		if got.X != wantX || got.Y != wantY {
			t.Fatalf("Center on %+v = %+v, want (%d,%d)", m, got, wantX, wantY)
		}
	}
}

func TestResolve_TopRightSymmetry(t *testing.T) {
	monitors := []Rect{
		{X: 0, Y: 0, Width: 1920, Height: 1080},
		{X: 1920, Y: 0, Width: 2560, Height: 1440},
		{X: -640, Y: 0, Width: 800, Height: 600},
	}
	windows := []Size{
		{Width: 400, Height: 300},
		{Width: 2560, Height: 1440},
	}

	for _, m := range monitors {
		for _, w := range windows {
			got, err := Resolve(TopRight, m, w, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.X+w.Width != m.X+m.Width {
				t.Fatalf("TopRight on %+v with window %+v: x=%d, right edges misaligned", m, w, got.X)
			}
			if got.Y != m.Y {
				t.Fatalf("TopRight y = %d, want %d", got.Y, m.Y)
			}
		}
	}
}

// The Bottom* family uses monitor.Height-(window.Height-monitor.Y)
// rather than monitor.Y+monitor.Height-window.Height. The two agree
// only when monitor.Y == 0; for offset monitors the literal form is
// the contract.
func TestResolve_BottomFormulaOnOffsetMonitor(t *testing.T) {
	monitor := Rect{X: 1920, Y: 200, Width: 1280, Height: 1024}
	window := Size{Width: 400, Height: 300}

	got, err := Resolve(BottomLeft, monitor, window, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Point{X: 1920, Y: 1024 - (300 - 200)}
	if got != want {
		t.Fatalf("BottomLeft = %+v, want %+v", got, want)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	monitor := Rect{X: 17, Y: 31, Width: 1366, Height: 768}
	window := Size{Width: 501, Height: 277}
	tray := &Rect{X: 1340, Y: 740, Width: 24, Height: 24}

	for _, p := range All() {
		first, err1 := Resolve(p, monitor, window, tray)
		second, err2 := Resolve(p, monitor, window, tray)
		if err1 != nil || err2 != nil {
			t.Fatalf("Resolve(%s): unexpected errors %v / %v", p, err1, err2)
		}
		if first != second {
			t.Fatalf("Resolve(%s) not deterministic: %+v then %+v", p, first, second)
		}
	}
}

func TestResolve_DoesNotMutateTray(t *testing.T) {
	monitor := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	window := Size{Width: 300, Height: 400}
	tray := Rect{X: 1900, Y: 1060, Width: 20, Height: 20}
	snapshot := tray

	if _, err := Resolve(TrayCenter, monitor, window, &tray); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tray != snapshot {
		t.Fatalf("tray rect mutated: %+v, want %+v", tray, snapshot)
	}
}

func TestResolve_UnknownPlacementFails(t *testing.T) {
	monitor := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	window := Size{Width: 400, Height: 300}

	if _, err := Resolve(Placement(99), monitor, window, nil); err == nil {
		t.Fatal("expected error for unknown placement")
	}
}
