package factory

import (
	"github.com/automoto/scaaale/archetypes"
	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/physics"
	"github.com/automoto/scaaale/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	cell := cfg.Physics.CellSize
	w := physics.NewWorld(int(level.Width), int(level.Height), cell, cell)
	w.Skin = cfg.Physics.Skin
	w.GroundProbe = cfg.Physics.GroundProbe
	components.Space.SetValue(space, components.SpaceData{World: w})
	return space
}

// addBody adds a body for entry to the level's space. The body's Data is the
// entry, so query hits lead straight back to it.
func addBody(ecs *ecs.ECS, entry *donburi.Entry, def physics.BodyDef) physics.BodyID {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return 0
	}
	def.Data = entry
	id := components.Space.Get(spaceEntry).Add(def)
	components.Body.SetValue(entry, components.BodyData{ID: id})
	return id
}
