package movement

import (
	"github.com/automoto/scaaale/physics"
	"github.com/yohamta/donburi/features/math"
)

// JumpControls starts jumps and applies the hold force. The hold force decays
// linearly with the hold timer, so a longer press gives a higher jump. Letting
// go or running out the timer ends the hold without touching the current
// vertical velocity.
func JumpControls(a *Actor, in Input, p Params, dt float64) {
	j := &a.Jump
	if in.Jump.Pressed && j.IsJumping && !j.Timer.Finished() {
		j.Timer.Tick(dt)
		a.Velocity.Current.Y += p.JumpHoldForce * j.Timer.PercentLeft()
	}

	if in.Jump.JustPressed && j.CanJump && !a.Respawn.Active {
		a.Velocity.Current.Y = p.JumpSpeed
		j.IsJumping = true
		j.Timer.Start(p.JumpHoldTime)
		return
	}

	if in.Jump.JustReleased || j.Timer.Finished() {
		j.IsJumping = false
	}
}

// RefreshCanJump copies the controller's grounded flag from the last move.
func RefreshCanJump(a *Actor) {
	a.Jump.CanJump = a.Last.Grounded
}

// CeilingBonk stops an airborne actor that runs its head into a ceiling.
func CeilingBonk(a *Actor, q Queries, p Params) {
	if a.Jump.CanJump || a.Stretch.GrabbedCeiling {
		return
	}
	_, hit := q.CastShape(physics.ShapeCast{
		Origin:      q.Position(a.Body),
		Velocity:    math.Vec2{Y: p.BonkDistance},
		HalfExtents: p.HalfExtents,
		MaxTOI:      1,
		Filter:      solidFilter(a),
	})
	if !hit {
		return
	}
	if a.Velocity.Current.Y > 0 {
		a.Velocity.Current.Y = 0
	}
	a.Jump.IsJumping = false
}
