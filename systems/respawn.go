package systems

import (
	"log"

	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/movement"
	"github.com/automoto/scaaale/physics"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateRespawn ticks the respawn and invulnerability timers and puts the
// player back at the active checkpoint when the respawn completes.
func UpdateRespawn(e *ecs.ECS) {
	_, player, ok := playerOf(e.World)
	if !ok || player.Actor == nil {
		return
	}
	if !movement.TickRespawn(player.Actor, cfg.Player, cfg.Player.Timestep) {
		return
	}
	placeAtRespawnPoint(e, player)
}

// RestartAtCheckpoint respawns the player immediately, skipping the respawn
// delay.
func RestartAtCheckpoint(e *ecs.ECS) {
	_, player, ok := playerOf(e.World)
	if !ok || player.Actor == nil || player.Respawn.Active {
		return
	}
	player.Velocity.Current = math.Vec2{}
	player.Acceleration.Current = math.Vec2{}
	player.Stretch = movement.Stretch{}
	player.Jump = movement.Jump{}
	player.Gravity = movement.Gravity{Dir: 1, SlowDown: 1}
	placeAtRespawnPoint(e, player)
}

func placeAtRespawnPoint(e *ecs.ECS, player *components.PlayerData) {
	space, ok := spaceOf(e.World)
	if !ok {
		return
	}
	level, ok := levelOf(e.World)
	if !ok {
		return
	}
	at := clearOfWalls(space, level.RespawnPoint(), space.HalfExtents(player.Body), player.Body)
	space.Teleport(player.Body, at)
	player.Last = physics.MoveResult{}
	log.Printf("player respawned at (%.0f, %.0f)", at.X, at.Y)
}

// maxSpawnLifts bounds how many stacked walls a respawn point is lifted over.
const maxSpawnLifts = 4

// clearOfWalls lifts at until a box of the given half extents stands on top
// of every fixed body it overlaps. A checkpoint's center is usually lower than
// a standing player's.
func clearOfWalls(space *physics.World, at, half math.Vec2, self physics.BodyID) math.Vec2 {
	for i := 0; i < maxSpawnLifts; i++ {
		ids := space.Overlapping(at, half, physics.Filter{Flags: physics.OnlyFixed, Exclude: self})
		if len(ids) == 0 {
			break
		}
		for _, id := range ids {
			top := space.Position(id).Y + space.HalfExtents(id).Y
			at.Y = max(at.Y, top+half.Y+space.Skin)
		}
	}
	return at
}
