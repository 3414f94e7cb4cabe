package components

import (
	cfg "github.com/automoto/ghosthand/config"
	"github.com/yohamta/donburi"
)

// Signal is the per-step state of a discrete hand action.
type Signal uint8

const (
	SignalIdle Signal = iota
	SignalEdge        // pressed this step
)

// HandInputData carries the action signals consumed by the hand systems.
// Live hands get their edges from devices, ghost hands from a Playback tape;
// the consumers cannot tell the two apart.
type HandInputData struct {
	Signals [cfg.ActionCount]Signal

	// Device level of each action on the previous poll, used to find edges.
	// Only live input touches these.
	Held [cfg.ActionCount]bool

	// PointerInside is false while the cursor is outside the play area.
	PointerInside bool
}

// JustPressed reports whether the action has an edge this step.
func (h *HandInputData) JustPressed(id cfg.ActionID) bool {
	return h.Signals[id] == SignalEdge
}

// Press raises an edge for the action this step.
func (h *HandInputData) Press(id cfg.ActionID) {
	h.Signals[id] = SignalEdge
}

// Release clears the action back to idle.
func (h *HandInputData) Release(id cfg.ActionID) {
	h.Signals[id] = SignalIdle
}

// ClearSignals resets every action to idle.
func (h *HandInputData) ClearSignals() {
	h.Signals = [cfg.ActionCount]Signal{}
}

var HandInput = donburi.NewComponentType[HandInputData]()
