package main

import (
	"testing"

	"github.com/wmutil/positioner/internal/placement"
)

func TestPlacementNamesMatchesPlacementOrder(t *testing.T) {
	names := placementNames()
	all := placement.All()
	if len(names) != len(all) {
		t.Fatalf("expected %d names, got %d", len(all), len(names))
	}
	if names[0] != "top-left" {
		t.Fatalf("first placement should be top-left, got %s", names[0])
	}
	if names[len(names)-1] != "tray-bottom-center" {
		t.Fatalf("last placement should be tray-bottom-center, got %s", names[len(names)-1])
	}
	for i, p := range all {
		if names[i] != p.String() {
			t.Fatalf("name %d mismatch: %s vs %s", i, names[i], p)
		}
	}
}
