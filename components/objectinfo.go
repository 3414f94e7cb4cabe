package components

import "github.com/yohamta/donburi"

// GrabBehavior decides what a pickup does to the touched object.
type GrabBehavior int

const (
	GrabInPlace GrabBehavior = iota // the touched object becomes held
	GrabSpawn                       // the touched object dispenses a held copy
)

func (g GrabBehavior) String() string {
	if g == GrabSpawn {
		return "spawn"
	}
	return "grab"
}

type ObjectInfoData struct {
	Grab    GrabBehavior
	Texture string // texture identity, also matched by collectors
}

var ObjectInfo = donburi.NewComponentType[ObjectInfoData]()

// ColliderKind is the collision shape descriptor of an object.
type ColliderKind int

const (
	ColliderRectangle ColliderKind = iota
	ColliderCircle
	ColliderSegment
)

type ColliderData struct {
	Kind ColliderKind
	// Width and Height are the box size; for segments they are the end point
	// relative to the start.
	Width  float64
	Height float64
}

var Collider = donburi.NewComponentType[ColliderData]()

// CollectorInteraction is what a collector does with a matching object.
type CollectorInteraction int

const (
	CollectorCount       CollectorInteraction = iota // counts a delivery
	CollectorFinishLevel                             // advances to the next level
)

type CollectorData struct {
	Collecting  string // texture identity accepted
	Interaction CollectorInteraction
}

var Collector = donburi.NewComponentType[CollectorData]()
