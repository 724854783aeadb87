package placement

import "testing"

// Wire codes cross a serialization boundary (IPC, config). This table
// pins every code; a failure here means an incompatible renumbering.
func TestPlacement_WireCodesAreStable(t *testing.T) {
	want := map[Placement]int{
		TopLeft:          0,
		TopRight:         1,
		BottomLeft:       2,
		BottomRight:      3,
		TopCenter:        4,
		BottomCenter:     5,
		LeftCenter:       6,
		RightCenter:      7,
		Center:           8,
		TrayLeft:         9,
		TrayBottomLeft:   10,
		TrayRight:        11,
		TrayBottomRight:  12,
		TrayCenter:       13,
		TrayBottomCenter: 14,
	}
	if len(want) != len(All()) {
		t.Fatalf("expected %d placements, got %d", len(want), len(All()))
	}
	for p, code := range want {
		if int(p) != code {
			t.Errorf("placement %s has code %d, want %d", p, int(p), code)
		}
	}
}

func TestParse_NamesAndCodes(t *testing.T) {
	tests := []struct {
		in      string
		want    Placement
		wantErr bool
	}{
		{"top-left", TopLeft, false},
		{"TOP-RIGHT", TopRight, false},
		{" center ", Center, false},
		{"tray-bottom-center", TrayBottomCenter, false},
		{"0", TopLeft, false},
		{"8", Center, false},
		{"14", TrayBottomCenter, false},
		{"15", 0, true},
		{"-1", 0, true},
		{"north-by-northwest", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParse_RoundTripsEveryPlacement(t *testing.T) {
	for _, p := range All() {
		got, err := Parse(p.String())
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", p.String(), err)
		}
		if got != p {
			t.Fatalf("Parse(%q) = %v, want %v", p.String(), got, p)
		}
	}
}

func TestPlacement_TrayRelative(t *testing.T) {
	trayCount := 0
	for _, p := range All() {
		if p.TrayRelative() {
			trayCount++
		}
	}
	if trayCount != 6 {
		t.Fatalf("expected 6 tray-relative placements, got %d", trayCount)
	}
	if Center.TrayRelative() {
		t.Fatal("center must not be tray-relative")
	}
	if !TrayLeft.TrayRelative() || !TrayBottomCenter.TrayRelative() {
		t.Fatal("tray placements must report tray-relative")
	}
}

func TestFromCode_RejectsOutOfRange(t *testing.T) {
	for _, code := range []int{-1, 15, 100} {
		if _, err := FromCode(code); err == nil {
			t.Errorf("FromCode(%d): expected error", code)
		}
	}
}
