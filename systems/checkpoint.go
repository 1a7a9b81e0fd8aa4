package systems

import (
	"log"

	"github.com/automoto/scaaale/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ActivateCheckpoint makes entry the level's only active checkpoint. The
// player respawns there from now on.
func ActivateCheckpoint(e *ecs.ECS, entry *donburi.Entry) {
	checkpoint := components.Checkpoint.Get(entry)
	level, ok := levelOf(e.World)
	if !ok {
		return
	}
	if checkpoint.Active && level.ActiveCheckpoint != nil && level.ActiveCheckpoint.ID == checkpoint.ID {
		return
	}

	components.Checkpoint.Each(e.World, func(other *donburi.Entry) {
		components.Checkpoint.Get(other).Active = false
	})
	checkpoint.Active = true
	level.ActiveCheckpoint = &components.ActiveCheckpointData{
		ID:    checkpoint.ID,
		Spawn: checkpoint.Spawn,
	}
	log.Printf("checkpoint %d activated at (%.0f, %.0f)", checkpoint.ID, checkpoint.Spawn.X, checkpoint.Spawn.Y)
}

// initCheckpoints applies the level's default checkpoint: the first one
// flagged active wins and the rest are cleared.
func initCheckpoints(e *ecs.ECS, level *components.LevelData) {
	level.ActiveCheckpoint = nil
	components.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		checkpoint := components.Checkpoint.Get(entry)
		if !checkpoint.Active {
			return
		}
		if level.ActiveCheckpoint != nil {
			checkpoint.Active = false
			return
		}
		level.ActiveCheckpoint = &components.ActiveCheckpointData{
			ID:    checkpoint.ID,
			Spawn: checkpoint.Spawn,
		}
	})
}
