package factory

import (
	"github.com/automoto/scaaale/archetypes"
	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SpawnDust emits a fan of dust motes from at, spread evenly from left to
// right. The middle motes rise fastest.
func SpawnDust(ecs *ecs.ECS, at math.Vec2) {
	n := cfg.Effects.DustCount
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = 2*float64(i)/float64(n-1) - 1
		}
		lift := 1 - 0.5*t*t

		e := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(e, components.ParticleData{
			Position: at,
			Velocity: math.Vec2{X: t * cfg.Effects.DustSpeedX, Y: lift * cfg.Effects.DustSpeedY},
			Life:     cfg.Effects.DustLifetime,
			MaxLife:  cfg.Effects.DustLifetime,
		})
	}
}
