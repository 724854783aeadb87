package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/wmutil/positioner/internal/actionlog"
	"github.com/wmutil/positioner/internal/config"
	"github.com/wmutil/positioner/internal/hotkeys"
	"github.com/wmutil/positioner/internal/ipc"
	"github.com/wmutil/positioner/internal/mover"
	"github.com/wmutil/positioner/internal/platform"
	"github.com/wmutil/positioner/internal/tray"
)

func runDaemon() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Configuration loaded (default placement: %s, rules: %d, hotkeys: %d)",
		cfg.DefaultPlacement, len(cfg.Rules), len(cfg.Hotkeys))

	// Connect to display server
	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer backend.Disconnect()

	log.Println("positioner daemon started successfully")

	trayStore := tray.NewStore()
	windowMover := mover.New(backend, trayStore)

	actions, err := newActionLogger(cfg)
	if err != nil {
		log.Printf("Warning: action logging disabled: %v", err)
	}
	if actions != nil {
		defer actions.Close()
	}

	// Register placement hotkeys
	hotkeyHandler := hotkeys.NewHandler(backend, windowMover)
	if len(cfg.Hotkeys) > 0 {
		if err := hotkeyHandler.RegisterAll(cfg.Hotkeys); err != nil {
			log.Printf("Warning: failed to register hotkeys: %v", err)
		} else {
			log.Printf("Registered %d placement hotkeys", len(cfg.Hotkeys))
		}
	}

	// Create config reload channel
	reloadChan := make(chan struct{}, 1)

	// Start IPC server
	ipcServer, err := ipc.NewServer(cfg, windowMover, backend, trayStore, actions, reloadChan)
	if err != nil {
		log.Fatalf("Failed to create IPC server: %v", err)
	}
	if err := ipcServer.Start(); err != nil {
		log.Fatalf("Failed to start IPC server: %v", err)
	}
	defer ipcServer.Stop()

	// Setup signal handlers
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	// Handle signals and config reloads
	go func() {
		for {
			select {
			case sig := <-sigCh:
				switch sig {
				case syscall.SIGHUP:
					log.Println("Received SIGHUP, reloading config...")
					newCfg, err := config.Load()
					if err != nil {
						log.Printf("Config reload failed: %v", err)
						continue
					}
					ipcServer.UpdateConfig(newCfg)
					rebindHotkeys(hotkeyHandler, newCfg)
					log.Println("Config reloaded successfully")

				case os.Interrupt, syscall.SIGTERM:
					log.Println("Shutting down positioner daemon...")
					ipcServer.Stop()
					if actions != nil {
						actions.Close()
					}
					os.Exit(0)
				}

			case <-reloadChan:
				// Config was reloaded via IPC, rebind hotkeys to match.
				newCfg, err := config.Load()
				if err != nil {
					log.Printf("Config reload failed: %v", err)
					continue
				}
				rebindHotkeys(hotkeyHandler, newCfg)
			}
		}
	}()

	// Start event loop (blocking)
	log.Println("Entering event loop...")
	backend.EventLoop()
}

func rebindHotkeys(h *hotkeys.Handler, cfg *config.Config) {
	h.Detach()
	if len(cfg.Hotkeys) == 0 {
		return
	}
	if err := h.RegisterAll(cfg.Hotkeys); err != nil {
		log.Printf("Warning: failed to re-register hotkeys: %v", err)
	} else {
		log.Printf("Re-registered %d placement hotkeys", len(cfg.Hotkeys))
	}
}

func newActionLogger(cfg *config.Config) (*actionlog.Logger, error) {
	if !cfg.Logging.Enabled {
		return nil, nil
	}
	path := cfg.Logging.File
	if path == "" {
		p, err := config.DefaultLogPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return actionlog.NewLogger(actionlog.LogConfig{
		Enabled:   true,
		Level:     actionlog.ParseLogLevel(cfg.Logging.Level),
		FilePath:  path,
		MaxSizeMB: cfg.Logging.MaxSizeMB,
	})
}
