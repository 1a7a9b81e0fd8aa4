package systems

import (
	"log"

	"github.com/automoto/scaaale/components"
	"github.com/automoto/scaaale/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// levelEntities matches everything that belongs to the loaded level: the
// physics space, every entity with a body and leftover dust.
var levelEntities = donburi.NewQuery(filter.Or(
	filter.Contains(components.Space),
	filter.Contains(components.Body),
	filter.Contains(components.Particle),
))

// LoadLevel replaces the loaded level with level n, numbered from 1. Numbers
// out of range load the first level.
func LoadLevel(e *ecs.ECS, n int) {
	level, ok := levelOf(e.World)
	if !ok {
		return
	}
	UnloadLevel(e)

	if n < 1 || n > len(level.Levels) {
		n = 1
	}
	level.State.CurrentLevel = n
	level.State.PickedPins = 0
	level.Current = level.Levels[n-1]
	level.State.RequiredPins = level.Current.RequiredPins()
	level.Completed = false

	factory.PopulateLevel(e, level.Current)
	initCheckpoints(e, level)
	SnapCamera(e, level.RespawnPoint())

	log.Printf("level %d %q loaded", n, level.Current.Name)
}

// UnloadLevel removes every entity of the loaded level. The level, camera and
// input singletons stay.
func UnloadLevel(e *ecs.ECS) {
	var doomed []*donburi.Entry
	levelEntities.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	for _, entry := range doomed {
		e.World.Remove(entry.Entity())
	}
}

// UpdateLevelTransition moves on to the next level once the exit has been
// reached, wrapping to the first, and saves progress.
func UpdateLevelTransition(e *ecs.ECS) {
	level, ok := levelOf(e.World)
	if !ok || !level.Completed {
		return
	}

	next := level.State.CurrentLevel + 1
	if next > len(level.Levels) {
		next = 1
	}
	LoadLevel(e, next)
	level.State.Unlock()
	if err := SaveGameState(level.State); err == nil && progressStore != nil {
		log.Printf("progress saved, %d levels unlocked", level.State.UnlockedLevels)
	}
}
