package movement

import (
	"github.com/automoto/scaaale/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// Integrate folds gravity and acceleration into velocity, clamps it, and
// returns the translation to submit to the controller for this tick.
// Horizontal velocity is damped afterwards and acceleration is cleared.
func Integrate(a *Actor, p Params, dt float64) math.Vec2 {
	v := &a.Velocity.Current
	v.Y -= p.Gravity * a.Gravity.Dir * a.Gravity.SlowDown
	v.X += a.Acceleration.Current.X
	v.Y += a.Acceleration.Current.Y
	v.X = gamemath.ClampSpeed(v.X, a.Velocity.Max.X)
	v.Y = gamemath.ClampSpeed(v.Y, a.Velocity.Max.Y)

	translation := math.Vec2{
		X: v.X*dt + a.nudge.X,
		Y: v.Y*dt + a.nudge.Y,
	}
	a.nudge = math.Vec2{}

	v.X = gamemath.Damp(v.X, a.Velocity.Damping, p.DriftEpsilon)
	a.Acceleration.Current = math.Vec2{}
	return translation
}
