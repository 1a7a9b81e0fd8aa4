package factory

import (
	"github.com/automoto/scaaale/archetypes"
	"github.com/automoto/scaaale/components"
	"github.com/automoto/scaaale/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level singleton. Nothing is spawned until a level
// is populated.
func CreateLevel(ecs *ecs.ECS, levels []*leveldata.Level, state components.GameState) *donburi.Entry {
	if len(levels) == 0 {
		panic("no levels to play")
	}
	if state.CurrentLevel < 1 || state.CurrentLevel > len(levels) {
		state.CurrentLevel = 1
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Levels: levels,
		State:  state,
	})
	return level
}

// PopulateLevel builds the physics space and every entity of lvl and returns
// the player.
func PopulateLevel(ecs *ecs.ECS, lvl *leveldata.Level) *donburi.Entry {
	CreateSpace(ecs, lvl)

	for _, w := range lvl.Walls {
		CreateWall(ecs, w)
	}
	for _, p := range lvl.Platforms {
		CreatePlatform(ecs, p)
	}
	for _, el := range lvl.Elevators {
		CreateElevator(ecs, el)
	}
	for _, c := range lvl.Checkpoints {
		CreateCheckpoint(ecs, c)
	}
	for _, p := range lvl.Pins {
		CreatePin(ecs, p)
	}
	for _, e := range lvl.Exits {
		CreateExit(ecs, e)
	}
	for _, s := range lvl.Spikes {
		CreateSpikes(ecs, s)
	}
	for _, s := range lvl.Sharpeners {
		CreateSharpener(ecs, s)
	}

	return CreatePlayer(ecs, lvl.Spawn)
}
