package systems

import (
	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects moves dust motes and removes the ones that have run out.
func UpdateEffects(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.Position.X += p.Velocity.X
		p.Position.Y += p.Velocity.Y
		p.Velocity.Y -= cfg.Effects.DustGravity
		p.Life--
		if p.Life <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		ecs.World.Remove(e.Entity())
	}
}

// DrawEffects draws dust motes as small squares that shrink as they fade.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	cam, ok := cameraOf(ecs.World, screen)
	if !ok {
		return
	}
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		size := cfg.Effects.DustSize
		if p.MaxLife > 0 {
			size *= float32(p.Life) / float32(p.MaxLife)
		}
		x, y := cam.toScreen(p.Position)
		vector.DrawFilledRect(screen, x-size/2, y-size/2, size, size, cfg.DustColor, false)
	})
}
