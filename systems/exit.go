package systems

import (
	"log"

	"github.com/automoto/scaaale/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ReachExit completes the level once the player carries enough pins. The
// level transition happens at the end of the tick.
func ReachExit(e *ecs.ECS, entry *donburi.Entry) {
	level, ok := levelOf(e.World)
	if !ok || level.Completed {
		return
	}
	exit := components.Exit.Get(entry)
	if level.State.PickedPins < exit.RequiredPins {
		return
	}
	level.Completed = true
	if level.Current != nil {
		log.Printf("level %q completed with %d pins", level.Current.Name, level.State.PickedPins)
	}
}
