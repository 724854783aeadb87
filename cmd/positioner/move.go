package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wmutil/positioner/internal/config"
	"github.com/wmutil/positioner/internal/ipc"
	"github.com/wmutil/positioner/internal/mover"
	"github.com/wmutil/positioner/internal/placement"
	"github.com/wmutil/positioner/internal/platform"
	"github.com/wmutil/positioner/internal/tray"
)

func runMove(args []string) int {
	fs := flag.NewFlagSet("move", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: positioner move [--window ID] [<placement>]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Move a window to a placement. Without <placement>, the configured")
		fmt.Fprintln(os.Stderr, "placement for the window's class (or the default) is used.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Placements:")
		fmt.Fprintln(os.Stderr, "  "+strings.Join(placementNames(), ", "))
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	windowID := fs.Uint("window", 0, "Window ID to move (default: focused window)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "move takes at most one placement argument")
		fs.Usage()
		return 2
	}

	spec := ""
	if fs.NArg() == 1 {
		spec = fs.Arg(0)
		if _, err := placement.Parse(spec); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
	}

	return moveWindow(spec, uint32(*windowID))
}

// moveWindow sends the move to the daemon when it is running, and
// falls back to moving the window directly over X otherwise. The
// direct path has no tray anchor, so tray placements require the
// daemon.
func moveWindow(spec string, window uint32) int {
	client := ipc.NewClient()
	if client.Ping() == nil {
		data, err := client.Move(spec, window)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("moved window 0x%x to %s (%d, %d)\n", data.Window, data.Placement, data.X, data.Y)
		return 0
	}

	return moveDirect(spec, window)
}

func moveDirect(spec string, window uint32) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Disconnect()

	id := platform.WindowID(window)
	if id == 0 {
		id, err = backend.ActiveWindow()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	var p placement.Placement
	if spec != "" {
		p, err = placement.Parse(spec)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
	} else {
		p = cfg.PlacementFor(backend.WindowClass(id))
	}

	windowMover := mover.New(backend, tray.NewStore())
	pos, err := windowMover.Move(id, p)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("moved window 0x%x to %s (%d, %d)\n", uint32(id), p, pos.X, pos.Y)
	return 0
}

func runMonitors(args []string) int {
	fs := flag.NewFlagSet("monitors", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: positioner monitors")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List monitors with their usable (workarea-clipped) geometry.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "monitors takes no arguments")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient()
	if client.Ping() == nil {
		data, err := client.GetMonitors()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		for _, m := range data.Monitors {
			printMonitor(m.ID, m.Name, m.X, m.Y, m.Width, m.Height)
		}
		return 0
	}

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Disconnect()

	displays, err := backend.Displays()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, d := range displays {
		printMonitor(d.ID, d.Name, d.Bounds.X, d.Bounds.Y, d.Bounds.Width, d.Bounds.Height)
	}
	return 0
}

func printMonitor(id int, name string, x, y, width, height int) {
	fmt.Printf("%d: %s %dx%d+%d+%d\n", id, name, width, height, x, y)
}

func placementNames() []string {
	all := placement.All()
	names := make([]string, 0, len(all))
	for _, p := range all {
		names = append(names, p.String())
	}
	return names
}
