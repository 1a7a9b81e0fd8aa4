package systems

import (
	"github.com/automoto/scaaale/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateElevators moves every elevator one tick along its axis. An elevator
// past either end of its span turns around before it moves, so it overshoots
// by at most one tick.
func UpdateElevators(e *ecs.ECS) {
	space, ok := spaceOf(e.World)
	if !ok {
		return
	}
	_, player, _ := playerOf(e.World)

	components.Elevator.Each(e.World, func(entry *donburi.Entry) {
		el := components.Elevator.Get(entry)
		body := components.Body.Get(entry).ID
		pos := space.Position(body)

		el.Direction = turnAround(el.Direction, pos, el.Initial, el.Span)
		moveKinematic(space, body, el.Direction, player)
	})
}

// turnAround flips each component of dir whose travel has reached
// initial ± span.
func turnAround(dir, pos, initial math.Vec2, span float64) math.Vec2 {
	if (dir.X > 0 && pos.X >= initial.X+span) || (dir.X < 0 && pos.X <= initial.X-span) {
		dir.X = -dir.X
	}
	if (dir.Y > 0 && pos.Y >= initial.Y+span) || (dir.Y < 0 && pos.Y <= initial.Y-span) {
		dir.Y = -dir.Y
	}
	return dir
}
