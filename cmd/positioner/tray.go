package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/wmutil/positioner/internal/ipc"
)

func printTrayUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  positioner tray set <x> <y> <width> <height>")
	fmt.Fprintln(w, "  positioner tray show")
	fmt.Fprintln(w, "  positioner tray clear")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "The tray rectangle anchors the tray-* placements. It is held by the")
	fmt.Fprintln(w, "daemon, so these commands require a running daemon.")
}

func runTray(args []string) int {
	if len(args) == 0 {
		printTrayUsage(os.Stderr)
		return 2
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printTrayUsage(os.Stdout)
		return 0
	}

	client := ipc.NewClient()

	switch args[0] {
	case "set":
		fs := flag.NewFlagSet("set", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		fs.Usage = func() {
			fmt.Fprintln(os.Stderr, "Usage: positioner tray set <x> <y> <width> <height>")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Record the tray icon rectangle in screen coordinates.")
		}
		if err := fs.Parse(args[1:]); err != nil {
			if err == flag.ErrHelp {
				return 0
			}
			return 2
		}
		if fs.NArg() != 4 {
			fmt.Fprintln(os.Stderr, "tray set requires <x> <y> <width> <height>")
			fs.Usage()
			return 2
		}

		vals := make([]int, 4)
		for i := 0; i < 4; i++ {
			n, err := strconv.Atoi(fs.Arg(i))
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid number %q\n", fs.Arg(i))
				return 2
			}
			vals[i] = n
		}

		if err := client.SetTray(vals[0], vals[1], vals[2], vals[3]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0

	case "show":
		data, err := client.GetTray()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if !data.Recorded {
			fmt.Println("tray: not recorded")
			return 0
		}
		fmt.Printf("tray: %dx%d+%d+%d\n", data.Width, data.Height, data.X, data.Y)
		return 0

	case "clear":
		if err := client.ClearTray(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown tray command: %s\n\n", args[0])
		printTrayUsage(os.Stderr)
		return 2
	}
}
