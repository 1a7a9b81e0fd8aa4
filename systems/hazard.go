package systems

import (
	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/movement"
	"github.com/automoto/scaaale/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards sends the player back to respawn when it runs into spikes or
// a sharpener, unless it is still invulnerable.
func UpdateHazards(e *ecs.ECS) {
	_, player, ok := playerOf(e.World)
	if !ok || player.Actor == nil || player.Invulnerable() {
		return
	}
	space, ok := spaceOf(e.World)
	if !ok {
		return
	}
	entry, ok := sweptSensorCast(space, player, tags.BodyHazard)
	if !ok || !entry.HasComponent(components.Hazard) {
		return
	}
	movement.Hurt(player.Actor, cfg.Player)
}
