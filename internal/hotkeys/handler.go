package hotkeys

import (
	"fmt"
	"log"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/wmutil/positioner/internal/mover"
	"github.com/wmutil/positioner/internal/placement"
	"github.com/wmutil/positioner/internal/platform"
)

// x11Accessor is an optional interface for backends that expose X11 internals.
type x11Accessor interface {
	XUtil() *xgbutil.XUtil
	RootWindow() xproto.Window
}

// Handler manages global keyboard shortcuts that move the focused
// window to a configured placement.
type Handler struct {
	xu    *xgbutil.XUtil
	root  xproto.Window
	mover *mover.Mover
}

var ignoreModsOnce sync.Once

// NewHandler creates a new hotkey handler.
func NewHandler(backend platform.Backend, m *mover.Mover) *Handler {
	var xu *xgbutil.XUtil
	var root xproto.Window
	if accessor, ok := backend.(x11Accessor); ok {
		xu = accessor.XUtil()
		root = accessor.RootWindow()
	}

	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})

	return &Handler{
		xu:    xu,
		root:  root,
		mover: m,
	}
}

// Register binds a key sequence to a placement. The callback moves the
// focused window; failures are logged, never fatal.
func (h *Handler) Register(keySequence string, p placement.Placement) error {
	return h.RegisterFunc(keySequence, func() {
		target, err := h.mover.MoveActive(p)
		if err != nil {
			log.Printf("Hotkey %s: move to %s failed: %v", keySequence, p, err)
			return
		}
		log.Printf("Hotkey %s: moved active window to %s (%d,%d)", keySequence, p, target.X, target.Y)
	})
}

// RegisterAll binds every configured hotkey. A single bad binding does
// not prevent the rest from registering.
func (h *Handler) RegisterAll(bindings map[string]placement.Placement) error {
	var firstErr error
	for seq, p := range bindings {
		if err := h.Register(seq, p); err != nil {
			log.Printf("Warning: failed to register hotkey %s: %v", seq, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to register hotkey %s: %w", seq, err)
			}
		}
	}
	return firstErr
}

// Detach removes all key bindings registered through this handler.
func (h *Handler) Detach() {
	if h.xu == nil {
		return
	}
	keybind.Detach(h.xu, h.root)
}

// RegisterFunc registers an arbitrary hotkey callback.
func (h *Handler) RegisterFunc(keySequence string, callback func()) error {
	if h.xu == nil {
		return fmt.Errorf("hotkeys unavailable: backend does not expose an X11 connection")
	}
	return keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		callback()
	}).Connect(h.xu, h.root, keySequence, true)
}

func configureIgnoreMods(xu *xgbutil.XUtil) {
	if xu == nil {
		return
	}

	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
