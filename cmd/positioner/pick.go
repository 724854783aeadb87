package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wmutil/positioner/internal/config"
	"github.com/wmutil/positioner/internal/ipc"
	"github.com/wmutil/positioner/internal/picker"
)

func runPick(args []string) int {
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: positioner pick [--window ID]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Choose a placement from an interactive list and move the window there.")
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
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "pick takes no arguments")
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	trayReady := false
	client := ipc.NewClient()
	if status, err := client.GetStatus(); err == nil {
		trayReady = status.TrayRecorded
	}

	chosen, ok, err := picker.Run(cfg.DefaultPlacement, trayReady)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if !ok {
		return 0
	}

	return moveWindow(chosen.String(), uint32(*windowID))
}
