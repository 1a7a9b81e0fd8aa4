package systems

import (
	"github.com/automoto/scaaale/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PickUpPin counts the pin towards the exit requirement and takes it out of
// the level.
func PickUpPin(e *ecs.ECS, entry *donburi.Entry) {
	interaction := components.Interaction.Get(entry)
	if interaction.Disabled {
		return
	}
	interaction.Disabled = true
	if space, ok := spaceOf(e.World); ok {
		space.SetEnabled(components.Body.Get(entry).ID, false)
	}
	if level, ok := levelOf(e.World); ok {
		level.State.PickedPins++
	}
}
