package mcp

// MoveWindowInput is the input for the move_window tool.
type MoveWindowInput struct {
	Placement string `json:"placement" jsonschema:"required,Placement name (e.g. top-right, tray-center) or numeric wire code (0-14). Use list_placements to discover valid values."`
	Window    uint32 `json:"window,omitempty" jsonschema:"X11 window ID to move. Omit (or pass 0) to move the currently focused window."`
}

// MoveWindowOutput is the output for the move_window tool.
type MoveWindowOutput struct {
	Window    uint32 `json:"window"`
	Placement string `json:"placement"`
	Code      int    `json:"code"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

// ListMonitorsInput is the input for the list_monitors tool.
type ListMonitorsInput struct{}

// MonitorInfo describes one active display.
type MonitorInfo struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ListMonitorsOutput is the output for the list_monitors tool.
type ListMonitorsOutput struct {
	Monitors []MonitorInfo `json:"monitors"`
}

// GetTrayAnchorInput is the input for the get_tray_anchor tool.
type GetTrayAnchorInput struct{}

// GetTrayAnchorOutput is the output for the get_tray_anchor tool. The
// rectangle fields are only meaningful when Recorded is true.
type GetTrayAnchorOutput struct {
	Recorded bool `json:"recorded"`
	X        int  `json:"x"`
	Y        int  `json:"y"`
	Width    int  `json:"width"`
	Height   int  `json:"height"`
}

// ListPlacementsInput is the input for the list_placements tool.
type ListPlacementsInput struct{}

// PlacementInfo describes one symbolic placement.
type PlacementInfo struct {
	Code         int    `json:"code"`
	Name         string `json:"name"`
	TrayRelative bool   `json:"tray_relative"`
}

// ListPlacementsOutput is the output for the list_placements tool.
type ListPlacementsOutput struct {
	Placements []PlacementInfo `json:"placements"`
}
