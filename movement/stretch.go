package movement

import (
	stdmath "math"

	"github.com/automoto/scaaale/physics"
	"github.com/automoto/scaaale/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// StretchControls grows the stretch while the key is held and shrinks it
// otherwise. Before each growth step a box at the stretched head is swept
// upwards; if it meets a ceiling the actor grabs it instead of growing.
func StretchControls(a *Actor, in Input, q Queries, p Params) {
	s := &a.Stretch
	if s.GrabbedCeiling {
		return
	}
	a.Gravity.SlowDown = 1
	if a.Respawn.Active {
		s.Length = gamemath.Clamp(s.Length-p.StretchSpeed, 0, p.MaxStretch)
		return
	}

	if !in.Stretch.Pressed {
		s.Length = gamemath.Clamp(s.Length-p.StretchSpeed, 0, p.MaxStretch)
		return
	}
	if s.Length >= p.MaxStretch {
		s.Length = p.MaxStretch
		return
	}

	pos := q.Position(a.Body)
	if _, hit := q.CastShape(physics.ShapeCast{
		Origin:      math.Vec2{X: pos.X, Y: pos.Y + s.Length},
		Velocity:    math.Vec2{Y: p.StretchProbe},
		HalfExtents: p.StretchProbeHalf,
		MaxTOI:      1,
		Filter:      solidFilter(a),
	}); hit {
		a.Jump.IsJumping = false
		s.GrabbedCeiling = true
		return
	}

	s.Length = gamemath.Clamp(s.Length+p.StretchSpeed, 0, p.MaxStretch)
	a.Gravity.SlowDown = p.StretchSlowDown
}

// GrabCeiling holds a grabbing actor against the ceiling: no gravity, no
// vertical velocity, and while any stretch is left the body is pulled up by
// the amount the stretch shrinks.
func GrabCeiling(a *Actor, p Params) {
	if !a.Stretch.GrabbedCeiling {
		a.Gravity.Dir = 1
		return
	}
	a.Gravity.Dir = 0
	a.Velocity.Current.Y = 0
	if a.Stretch.Length > 0 {
		pull := stdmath.Min(p.StretchSpeed, a.Stretch.Length)
		a.Stretch.Length -= pull
		a.nudge.Y += pull
	}
}

// Ungrab lets go of the ceiling when jump is pressed.
func Ungrab(a *Actor, in Input) {
	if in.Jump.JustPressed {
		a.Stretch.GrabbedCeiling = false
	}
}
