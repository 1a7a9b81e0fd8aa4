package components

import (
	"github.com/automoto/scaaale/movement"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PlatformState is where a falling platform is in its cycle.
type PlatformState int

const (
	PlatformIdle PlatformState = iota
	PlatformShaking
	PlatformFalling
	PlatformHidden
	PlatformReturning
)

type PlatformData struct {
	Initial   math.Vec2
	State     PlatformState
	SteppedOn bool
	Drop      movement.Countdown
	Restart   movement.Countdown
	Return    *gween.Tween
}

var Platform = donburi.NewComponentType[PlatformData]()

type ElevatorData struct {
	Initial math.Vec2
	// Direction is the per-tick delta; its sign flips at the ends.
	Direction math.Vec2
	Span      float64
}

var Elevator = donburi.NewComponentType[ElevatorData]()

type SharpenerData struct {
	Initial  math.Vec2
	PointToX float64
}

var Sharpener = donburi.NewComponentType[SharpenerData]()
