package systems

import (
	stdmath "math"

	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/movement"
	"github.com/automoto/scaaale/physics"
	"github.com/automoto/scaaale/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// facingThreshold is the horizontal speed under which the player keeps
// facing the way it did.
const facingThreshold = 0.01

// UpdatePlayer runs one tick of the movement pipeline for the player.
func UpdatePlayer(e *ecs.ECS) {
	_, player, ok := playerOf(e.World)
	if !ok || player.Actor == nil {
		return
	}
	space, ok := spaceOf(e.World)
	if !ok {
		return
	}

	player.Step = pipelineOf(space, player).Step(player.Actor, player.Input)

	if vx := player.Velocity.Current.X; stdmath.Abs(vx) > facingThreshold {
		player.Facing = stdmath.Copysign(1, vx)
	}

	if player.Step.Landed {
		pos := space.Position(player.Body)
		half := space.HalfExtents(player.Body)
		factory.SpawnDust(e, math.Vec2{X: pos.X, Y: pos.Y - half.Y})
	}
}

// pipelineOf returns the player's pipeline, refreshed from cfg.Player when the
// tuning has been reloaded since.
func pipelineOf(space *physics.World, player *components.PlayerData) *movement.Pipeline {
	if player.Pipeline == nil {
		player.Pipeline = movement.NewPipeline(space, cfg.Player)
		player.Tuning = cfg.Generation()
	}
	if gen := cfg.Generation(); player.Tuning != gen {
		player.Pipeline.Params = cfg.Player
		player.Velocity.Max = cfg.Player.MaxVelocity
		player.Velocity.Damping = cfg.Player.Damping
		player.Tuning = gen
	}
	return player.Pipeline
}
