package movement

import "github.com/automoto/scaaale/physics"

// Edge is a boolean that remembers its previous value.
type Edge struct {
	current  bool
	previous bool
}

// Set stores v and reports whether it differs from the value it replaced.
func (e *Edge) Set(v bool) bool {
	e.previous = e.current
	e.current = v
	return e.current != e.previous
}

func (e Edge) Current() bool { return e.current }

// Rose is true only on the update that turned the value from false to true.
func (e Edge) Rose() bool { return e.current && !e.previous }

type GroundDetector struct {
	OnGround Edge
	// HitSpeed is the vertical velocity at the last grounded change.
	HitSpeed float64
}

// GroundContact reads the controller's report. A grounded actor that is not
// jumping gets a small downward velocity so it stays on the ground.
func GroundContact(a *Actor, res physics.MoveResult, p Params) {
	a.Last = res
	speed := a.Velocity.Current.Y
	if res.Grounded && !a.Jump.IsJumping && !a.Respawn.Active {
		a.Velocity.Current.Y = p.GroundBias
	}
	if a.Ground.OnGround.Set(res.Grounded) {
		a.Ground.HitSpeed = speed
	}
}

// Landing reports a hard landing on the tick the actor touched down.
func Landing(a *Actor, p Params) bool {
	return a.Ground.OnGround.Rose() && a.Ground.HitSpeed <= p.HardLandingSpeed
}
