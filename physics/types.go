// Package physics is the collision query service used by the movement core:
// swept box casts, ray casts and a kinematic move-and-collide controller.
// Bodies are axis-aligned boxes kept in a resolv space, which serves as the
// broadphase. World coordinates are y-up and body positions are box centers.
package physics

import "github.com/yohamta/donburi/features/math"

// BodyID is a handle into the World's body arena. The zero value refers to no
// body, so an unset Filter.Exclude excludes nothing.
type BodyID int

// Kind decides how a body takes part in queries and controller moves.
type Kind int

const (
	// Fixed bodies never move: walls.
	Fixed Kind = iota
	// Kinematic bodies are moved by script (platforms, elevators) and block
	// the controller like fixed ones.
	Kinematic
	// Sensor bodies only report overlaps and never block.
	Sensor
)

func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Kinematic:
		return "kinematic"
	case Sensor:
		return "sensor"
	}
	return "unknown"
}

// resolv tags carried by every body's object, one per kind.
const (
	TagFixed     = "solid"
	TagKinematic = "kinematic"
	TagSensor    = "sensor"
)

func (k Kind) tag() string {
	switch k {
	case Kinematic:
		return TagKinematic
	case Sensor:
		return TagSensor
	}
	return TagFixed
}

type FilterFlags uint8

const (
	ExcludeSensors FilterFlags = 1 << iota
	ExcludeSolids
	OnlyFixed
)

// Filter restricts which bodies a query may report.
type Filter struct {
	Flags FilterFlags
	// Tags, when set, requires the body to carry at least one of them.
	Tags    []string
	Exclude BodyID
}

func (f Filter) Has(flag FilterFlags) bool {
	return f.Flags&flag != 0
}

// ShapeCast describes a swept box query. The box starts centered on Origin and
// travels Velocity*t for t in [0, MaxTOI].
type ShapeCast struct {
	Origin      math.Vec2
	Rotation    float64
	Velocity    math.Vec2
	HalfExtents math.Vec2
	MaxTOI      float64
	Filter      Filter
}

// Hit is the first body reached by a shape cast.
type Hit struct {
	Body BodyID
	Data any
	// TOI is the time of impact in units of the cast velocity. Zero means the
	// box already overlapped the body at its origin.
	TOI    float64
	Normal math.Vec2
}

// RayHit is the first body reached by a ray cast.
type RayHit struct {
	Body  BodyID
	Data  any
	TOI   float64
	Point math.Vec2
}

// Collision is one contact met by the controller during a move.
type Collision struct {
	Body      BodyID
	Data      any
	Remaining math.Vec2
}

// MoveResult is the controller's report after resolving one translation.
type MoveResult struct {
	Translation math.Vec2
	Grounded    bool
	Collisions  []Collision
}

// CollidedWith reports whether the move touched the given body.
func (r MoveResult) CollidedWith(id BodyID) bool {
	for _, c := range r.Collisions {
		if c.Body == id {
			return true
		}
	}
	return false
}
