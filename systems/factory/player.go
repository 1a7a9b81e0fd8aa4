package factory

import (
	"github.com/automoto/scaaale/archetypes"
	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/movement"
	"github.com/automoto/scaaale/physics"
	"github.com/automoto/scaaale/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player at spawn. The player starts in the respawn
// state and appears once the respawn timer runs out.
func CreatePlayer(ecs *ecs.ECS, spawn math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	id := addBody(ecs, player, physics.BodyDef{
		Kind:        physics.Kinematic,
		Center:      spawn,
		HalfExtents: cfg.Player.HalfExtents,
		Tags:        []string{tags.BodyPlayer},
	})

	actor := movement.NewActor(id, cfg.Player)
	movement.Hurt(actor, cfg.Player)

	var pipeline *movement.Pipeline
	if space, ok := components.Space.First(ecs.World); ok {
		pipeline = movement.NewPipeline(components.Space.Get(space).World, cfg.Player)
	}
	components.Player.SetValue(player, components.PlayerData{
		Actor:    actor,
		Pipeline: pipeline,
		Tuning:   cfg.Generation(),
		Facing:   1,
	})
	return player
}
