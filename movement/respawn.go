package movement

import "github.com/yohamta/donburi/features/math"

// Hurt starts the respawn sequence. It does nothing while the actor is already
// respawning or still invulnerable from the last respawn.
func Hurt(a *Actor, p Params) bool {
	if a.Respawn.Active || !a.Respawn.Invuln.Finished() {
		return false
	}
	a.Respawn.Active = true
	a.Respawn.Timer.Start(p.RespawnTime)
	a.Jump.IsJumping = false
	a.Stretch.GrabbedCeiling = false
	return true
}

// TickRespawn advances the respawn and invulnerability timers. It returns true
// on the tick the respawn completes; the caller then moves the body.
func TickRespawn(a *Actor, p Params, dt float64) bool {
	a.Respawn.Invuln.Tick(dt)
	if !a.Respawn.Active {
		return false
	}
	if !a.Respawn.Timer.Tick(dt) {
		return false
	}
	a.Respawn.Active = false
	a.Respawn.Invuln.Start(p.RespawnInvulnTime)
	a.Velocity.Current = math.Vec2{}
	a.Acceleration.Current = math.Vec2{}
	a.Stretch = Stretch{}
	a.Jump = Jump{}
	return true
}

// Invulnerable reports whether hazards are ignored right now.
func (a *Actor) Invulnerable() bool {
	return a.Respawn.Active || !a.Respawn.Invuln.Finished()
}
