package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type HandData struct {
	Goal   math.Vec2      // point the motion controller steers the hand centre to
	Sensor *resolv.Object // pickup region, follows the hand at the sensor offset
}

var Hand = donburi.NewComponentType[HandData]()

// GrabbingData is present on a hand while it holds an object. Joint is a weak
// reference: the joint entity may already be gone when it is read.
type GrabbingData struct {
	Joint donburi.Entity
}

var Grabbing = donburi.NewComponentType[GrabbingData]()

// GrabbedData is present on a held object instead of the Grabbable tag.
type GrabbedData struct {
	Hand donburi.Entity
}

var Grabbed = donburi.NewComponentType[GrabbedData]()

// JointData rigidly attaches Object to Hand, with the object's centre pinned
// at Anchor relative to the hand centre.
type JointData struct {
	Object donburi.Entity
	Hand   donburi.Entity
	Anchor math.Vec2
}

var Joint = donburi.NewComponentType[JointData]()
