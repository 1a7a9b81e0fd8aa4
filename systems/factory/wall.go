package factory

import (
	"github.com/automoto/scaaale/archetypes"
	"github.com/automoto/scaaale/physics"
	"github.com/automoto/scaaale/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds one merged run of wall tiles as a fixed body.
func CreateWall(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	addBody(ecs, wall, physics.BodyDef{
		Kind:        physics.Fixed,
		Center:      r.Center,
		HalfExtents: r.Half,
	})
	return wall
}
