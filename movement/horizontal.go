package movement

import (
	"github.com/automoto/scaaale/physics"
	"github.com/automoto/scaaale/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// HorizontalControls sets horizontal velocity from left/right input. A box the
// height of the stretched body is swept one unit towards the wall; if it is
// blocked the actor stops, otherwise it runs at MoveSpeed.
func HorizontalControls(a *Actor, in Input, q Queries, p Params) {
	if a.Stretch.GrabbedCeiling || a.Respawn.Active {
		return
	}
	dir := gamemath.AxisInput(in.Left.Pressed, in.Right.Pressed)
	if dir == 0 {
		return
	}

	stretch := a.Stretch.Length
	pos := q.Position(a.Body)
	_, blocked := q.CastShape(physics.ShapeCast{
		Origin: math.Vec2{
			X: pos.X + dir*p.WallProbeOffset,
			Y: pos.Y + stretch/2 + p.WallProbeLift,
		},
		Velocity:    math.Vec2{X: dir},
		HalfExtents: math.Vec2{X: p.HalfExtents.X, Y: p.HalfExtents.Y + stretch/2},
		MaxTOI:      1,
		Filter:      solidFilter(a),
	})
	if blocked {
		a.Velocity.Current.X = 0
		return
	}
	a.Velocity.Current.X = dir * p.MoveSpeed
}

// CeilingControls runs while the actor hangs from a ceiling. The ceiling is
// looked up again every tick; once it is gone the grab ends. While it holds,
// the actor keeps still unless left/right slide it along the ceiling, and only
// as long as there is ceiling ahead.
func CeilingControls(a *Actor, in Input, q Queries, p Params) {
	if !a.Stretch.GrabbedCeiling {
		return
	}

	pos := q.Position(a.Body)
	head := math.Vec2{X: pos.X, Y: pos.Y + a.Stretch.Length}
	if _, ok := q.CastShape(physics.ShapeCast{
		Origin:      head,
		Velocity:    math.Vec2{Y: p.CeilingMargin},
		HalfExtents: p.HalfExtents,
		MaxTOI:      1,
		Filter:      solidFilter(a),
	}); !ok {
		a.Stretch.GrabbedCeiling = false
		return
	}

	a.Velocity.Current.X = 0
	dir := gamemath.AxisInput(in.Left.Pressed, in.Right.Pressed)
	if dir == 0 {
		return
	}
	edge := math.Vec2{
		X: head.X + dir*(p.HalfExtents.X-0.5),
		Y: head.Y + p.HalfExtents.Y,
	}
	if _, ok := q.CastRay(edge, math.Vec2{Y: 1}, p.CeilingMargin, true, solidFilter(a)); ok {
		a.Velocity.Current.X = dir * p.CeilingNudgeSpeed
	}
}
