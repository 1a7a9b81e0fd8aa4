// Package movement is the per-tick movement core of the player: horizontal
// intent, jumping, stretching and ceiling grabs, integration into a kinematic
// move and ground-contact post-processing. Every stage is a plain function over
// an *Actor; Pipeline runs them in their fixed order.
package movement

import (
	"github.com/automoto/scaaale/physics"
	"github.com/yohamta/donburi/features/math"
)

// Button is the per-tick state of one action.
type Button struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// Input is what the movement core reads from the player each tick.
type Input struct {
	Left    Button
	Right   Button
	Jump    Button
	Stretch Button
}

type Velocity struct {
	Current math.Vec2
	Max     math.Vec2
	Damping float64
}

// Acceleration is a single-tick accumulator, cleared by Integrate.
type Acceleration struct {
	Current math.Vec2
}

// Gravity scales the gravity constant. Dir is rewritten every tick by
// GrabCeiling; SlowDown by StretchControls.
type Gravity struct {
	Dir      float64
	SlowDown float64
}

type Jump struct {
	CanJump   bool
	IsJumping bool
	Timer     Countdown
}

type Stretch struct {
	Length         float64
	GrabbedCeiling bool
}

type Respawn struct {
	Active bool
	Timer  Countdown
	Invuln Countdown
}

// Actor is the full kinematic state of one player.
type Actor struct {
	Body         physics.BodyID
	Velocity     Velocity
	Acceleration Acceleration
	Gravity      Gravity
	Jump         Jump
	Stretch      Stretch
	Respawn      Respawn
	Ground       GroundDetector

	// Last is the controller's report from the most recent move.
	Last physics.MoveResult

	// nudge is extra translation for the current tick, set by GrabCeiling.
	nudge math.Vec2
}

func NewActor(body physics.BodyID, p Params) *Actor {
	return &Actor{
		Body: body,
		Velocity: Velocity{
			Max:     p.MaxVelocity,
			Damping: p.Damping,
		},
		Gravity: Gravity{Dir: 1, SlowDown: 1},
	}
}

// Queries is the part of the physics service the input stages need.
type Queries interface {
	Position(id physics.BodyID) math.Vec2
	CastShape(c physics.ShapeCast) (physics.Hit, bool)
	CastRay(origin, dir math.Vec2, maxTOI float64, solid bool, f physics.Filter) (physics.RayHit, bool)
}

// Controller resolves a desired translation against the world.
type Controller interface {
	Move(id physics.BodyID, translation math.Vec2) physics.MoveResult
}

type World interface {
	Queries
	Controller
}

// solidFilter matches walls only: no sensors, no moving bodies, never the
// actor itself.
func solidFilter(a *Actor) physics.Filter {
	return physics.Filter{
		Flags:   physics.ExcludeSensors | physics.OnlyFixed,
		Exclude: a.Body,
	}
}
