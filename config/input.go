package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical hand action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionGrab
	ActionRecord
	ActionReload
	ActionCount // Must be last - used for array sizing
)

// String returns the action name used in logs.
func (a ActionID) String() string {
	switch a {
	case ActionGrab:
		return "grab"
	case ActionRecord:
		return "record"
	case ActionReload:
		return "reload"
	}
	return "none"
}

// InputBinding represents the keys and mouse buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionGrab: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionRecord: {
				Keys:         []ebiten.Key{ebiten.KeySpace},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
			},
			ActionReload: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
		},
	}
}
