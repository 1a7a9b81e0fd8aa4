package movement

import (
	"github.com/automoto/scaaale/physics"
	"github.com/yohamta/donburi/features/math"
)

// StepResult is what one tick of the pipeline produced.
type StepResult struct {
	Translation math.Vec2
	Move        physics.MoveResult
	// Landed is set on the tick of a hard landing.
	Landed bool
}

// Pipeline runs the movement stages in their fixed order. Later stages read
// what earlier ones wrote in the same tick, so the order is part of the
// contract:
//
//	HorizontalControls, CeilingControls, JumpControls, RefreshCanJump,
//	CeilingBonk, StretchControls, GrabCeiling, Ungrab,
//	Integrate, Controller.Move, GroundContact, Landing.
type Pipeline struct {
	World  World
	Params Params
}

func NewPipeline(w World, p Params) *Pipeline {
	return &Pipeline{World: w, Params: p}
}

// Step advances one actor by one fixed timestep.
func (pl *Pipeline) Step(a *Actor, in Input) StepResult {
	p := pl.Params
	dt := p.Timestep

	HorizontalControls(a, in, pl.World, p)
	CeilingControls(a, in, pl.World, p)
	JumpControls(a, in, p, dt)
	RefreshCanJump(a)
	CeilingBonk(a, pl.World, p)
	StretchControls(a, in, pl.World, p)
	GrabCeiling(a, p)
	Ungrab(a, in)

	translation := Integrate(a, p, dt)
	res := pl.World.Move(a.Body, translation)

	GroundContact(a, res, p)
	return StepResult{
		Translation: translation,
		Move:        res,
		Landed:      Landing(a, p),
	}
}
