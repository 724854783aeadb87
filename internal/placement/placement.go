package placement

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Point is a pixel coordinate in screen space.
type Point struct {
	X int
	Y int
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Placement is a symbolic window position. Values are transmitted as
// small integers over IPC and in config files, so the numbering below
// is a compatibility contract: never reorder or renumber.
type Placement int

const (
	TopLeft Placement = iota
	TopRight
	BottomLeft
	BottomRight
	TopCenter
	BottomCenter
	LeftCenter
	RightCenter
	Center
	TrayLeft
	TrayBottomLeft
	TrayRight
	TrayBottomRight
	TrayCenter
	TrayBottomCenter
)

var placementNames = map[Placement]string{
	TopLeft:          "top-left",
	TopRight:         "top-right",
	BottomLeft:       "bottom-left",
	BottomRight:      "bottom-right",
	TopCenter:        "top-center",
	BottomCenter:     "bottom-center",
	LeftCenter:       "left-center",
	RightCenter:      "right-center",
	Center:           "center",
	TrayLeft:         "tray-left",
	TrayBottomLeft:   "tray-bottom-left",
	TrayRight:        "tray-right",
	TrayBottomRight:  "tray-bottom-right",
	TrayCenter:       "tray-center",
	TrayBottomCenter: "tray-bottom-center",
}

var placementsByName = func() map[string]Placement {
	m := make(map[string]Placement, len(placementNames))
	for p, name := range placementNames {
		m[name] = p
	}
	return m
}()

// String returns the stable config/CLI name of the placement.
func (p Placement) String() string {
	if name, ok := placementNames[p]; ok {
		return name
	}
	return fmt.Sprintf("placement(%d)", int(p))
}

// Valid reports whether p is one of the defined placements.
func (p Placement) Valid() bool {
	_, ok := placementNames[p]
	return ok
}

// TrayRelative reports whether resolving p requires a tray anchor.
func (p Placement) TrayRelative() bool {
	return p >= TrayLeft && p <= TrayBottomCenter
}

// Parse converts a placement name ("top-left") or numeric wire code
// ("3") to a Placement.
func Parse(s string) (Placement, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if p, ok := placementsByName[key]; ok {
		return p, nil
	}
	if code, err := strconv.Atoi(key); err == nil {
		return FromCode(code)
	}
	return 0, fmt.Errorf("unknown placement %q", s)
}

// FromCode converts a wire code to a Placement.
func FromCode(code int) (Placement, error) {
	p := Placement(code)
	if !p.Valid() {
		return 0, fmt.Errorf("unknown placement code %d", code)
	}
	return p, nil
}

// All returns the defined placements in wire-code order.
func All() []Placement {
	all := make([]Placement, 0, len(placementNames))
	for p := TopLeft; p <= TrayBottomCenter; p++ {
		all = append(all, p)
	}
	return all
}

// MarshalYAML implements yaml.Marshaler using the stable name.
func (p Placement) MarshalYAML() (interface{}, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("cannot marshal unknown placement %d", int(p))
	}
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler accepting names and codes.
func (p *Placement) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := Parse(value.Value)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
