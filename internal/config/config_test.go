package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wmutil/positioner/internal/placement"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromPath_ParsesFullConfig(t *testing.T) {
	path := writeConfig(t, `
default_placement: top-right
rules:
  - class: Spotify
    placement: bottom-right
  - class: Signal
    placement: tray-center
hotkeys:
  Mod4-KP_7: top-left
  Mod4-KP_5: center
logging:
  enabled: true
  level: debug
`)

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if cfg.DefaultPlacement != placement.TopRight {
		t.Errorf("DefaultPlacement = %v, want top-right", cfg.DefaultPlacement)
	}
	if len(cfg.Rules) != 2 || cfg.Rules[1].Placement != placement.TrayCenter {
		t.Errorf("Rules = %+v", cfg.Rules)
	}
	if cfg.Hotkeys["Mod4-KP_7"] != placement.TopLeft {
		t.Errorf("Hotkeys = %+v", cfg.Hotkeys)
	}
	if !cfg.Logging.Enabled || cfg.Logging.Level != "debug" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadFromPath_AcceptsNumericPlacementCodes(t *testing.T) {
	path := writeConfig(t, "default_placement: 8\n")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.DefaultPlacement != placement.Center {
		t.Fatalf("DefaultPlacement = %v, want center", cfg.DefaultPlacement)
	}
}

func TestLoadFromPath_RejectsUnknownPlacement(t *testing.T) {
	path := writeConfig(t, "default_placement: nowhere\n")

	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected error for unknown placement name")
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "empty rule class",
			cfg: Config{
				DefaultPlacement: placement.Center,
				Rules:            []Rule{{Class: "  ", Placement: placement.TopLeft}},
			},
		},
		{
			name: "unknown rule placement",
			cfg: Config{
				DefaultPlacement: placement.Center,
				Rules:            []Rule{{Class: "Spotify", Placement: placement.Placement(42)}},
			},
		},
		{
			name: "unknown hotkey placement",
			cfg: Config{
				DefaultPlacement: placement.Center,
				Hotkeys:          map[string]placement.Placement{"Mod4-1": placement.Placement(42)},
			},
		},
		{
			name: "unknown logging level",
			cfg: Config{
				DefaultPlacement: placement.Center,
				Logging:          LoggingConfig{Level: "verbose"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestPlacementFor(t *testing.T) {
	cfg := &Config{
		DefaultPlacement: placement.Center,
		Rules: []Rule{
			{Class: "Spotify", Placement: placement.BottomRight},
			{Class: "spotify", Placement: placement.TopLeft}, // shadowed, first match wins
		},
	}

	if got := cfg.PlacementFor("SPOTIFY"); got != placement.BottomRight {
		t.Errorf("PlacementFor(SPOTIFY) = %v, want bottom-right", got)
	}
	if got := cfg.PlacementFor("Firefox"); got != placement.Center {
		t.Errorf("PlacementFor(Firefox) = %v, want center", got)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := &Config{
		DefaultPlacement: placement.TrayBottomCenter,
		Rules:            []Rule{{Class: "Spotify", Placement: placement.BottomRight}},
	}

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	path := writeConfig(t, string(data))
	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if loaded.DefaultPlacement != placement.TrayBottomCenter {
		t.Fatalf("round-trip lost default placement: %v", loaded.DefaultPlacement)
	}
	if diff := cmp.Diff(cfg.Rules, loaded.Rules); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}
}
