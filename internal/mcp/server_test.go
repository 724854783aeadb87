package mcp

import (
	"context"
	"testing"
)

func TestHandleListPlacements_CoversAllCodes(t *testing.T) {
	s := NewServer()

	_, out, err := s.handleListPlacements(context.Background(), nil, ListPlacementsInput{})
	if err != nil {
		t.Fatalf("handleListPlacements() error: %v", err)
	}

	if len(out.Placements) != 15 {
		t.Fatalf("got %d placements, want 15", len(out.Placements))
	}

	// Codes must be dense and in declaration order.
	for i, p := range out.Placements {
		if p.Code != i {
			t.Fatalf("placements[%d].Code = %d, want %d", i, p.Code, i)
		}
	}

	if out.Placements[0].Name != "top-left" || out.Placements[0].TrayRelative {
		t.Fatalf("placements[0] = %+v", out.Placements[0])
	}
	if out.Placements[14].Name != "tray-bottom-center" || !out.Placements[14].TrayRelative {
		t.Fatalf("placements[14] = %+v", out.Placements[14])
	}
}

func TestHandleMoveWindow_ValidatesPlacementLocally(t *testing.T) {
	s := NewServer()

	// Bad placements must be rejected before any daemon round trip.
	if _, _, err := s.handleMoveWindow(context.Background(), nil, MoveWindowInput{Placement: "sideways"}); err == nil {
		t.Fatal("expected error for unknown placement")
	}
	if _, _, err := s.handleMoveWindow(context.Background(), nil, MoveWindowInput{}); err == nil {
		t.Fatal("expected error for missing placement")
	}
}
