package systems

import (
	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateTweens advances every looping tween. Sharpeners follow theirs; pins
// and exits only use the value when drawn.
func UpdateTweens(e *ecs.ECS) {
	dt := float32(cfg.Player.Timestep)
	space, hasSpace := spaceOf(e.World)

	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		if tw.Seq == nil {
			return
		}
		v, _, done := tw.Seq.Update(dt)
		if done {
			tw.Seq.Reset()
		}
		tw.Value = float64(v)

		if hasSpace && entry.HasComponent(components.Sharpener) {
			s := components.Sharpener.Get(entry)
			space.Teleport(components.Body.Get(entry).ID, math.Vec2{X: tw.Value, Y: s.Initial.Y})
		}
	})
}
