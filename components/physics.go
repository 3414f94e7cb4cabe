package components

import (
	"github.com/yohamta/donburi"
)

// BodyKind selects how the physics step treats a body.
type BodyKind int

const (
	BodyDynamic  BodyKind = iota // integrated and damped
	BodyStatic                   // never moves, blocks dynamic bodies
	BodyAnchored                 // dynamic but locked on every axis
)

// PhysicsData holds a body's velocity in world units per second.
type PhysicsData struct {
	VelX    float64
	VelY    float64
	Damping float64 // linear damping coefficient (per second)
	Kind    BodyKind
	Sensor  bool // overlaps are reported but never resolved
}

var Physics = donburi.NewComponentType[PhysicsData]()
