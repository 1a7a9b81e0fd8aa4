package systems

import (
	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/physics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlatforms advances every falling platform through its cycle: idle,
// shaking once stepped on, falling, hidden, and bouncing back into place.
func UpdatePlatforms(e *ecs.ECS) {
	space, ok := spaceOf(e.World)
	if !ok {
		return
	}
	_, player, _ := playerOf(e.World)
	dt := cfg.Player.Timestep

	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		p := components.Platform.Get(entry)
		body := components.Body.Get(entry).ID
		updatePlatform(space, body, p, player, dt)
	})
}

func updatePlatform(space *physics.World, body physics.BodyID, p *components.PlatformData, player *components.PlayerData, dt float64) {
	switch p.State {
	case components.PlatformIdle:
		if isRider(space, player, body) {
			p.SteppedOn = true
			p.State = components.PlatformShaking
			p.Drop.Start(cfg.Platform.DropDelay)
		}

	case components.PlatformShaking:
		if p.Drop.Tick(dt) {
			p.State = components.PlatformFalling
		}

	case components.PlatformFalling:
		moveKinematic(space, body, math.Vec2{Y: -cfg.Platform.FallSpeed}, player)
		if space.Position(body).Y < p.Initial.Y-cfg.FallDistance() {
			space.SetEnabled(body, false)
			p.State = components.PlatformHidden
			p.Restart.Start(cfg.Platform.RestartDelay)
		}

	case components.PlatformHidden:
		if !p.Restart.Tick(dt) {
			return
		}
		from := p.Initial.Y + cfg.Physics.TileSize
		space.Teleport(body, math.Vec2{X: p.Initial.X, Y: from})
		space.SetEnabled(body, true)
		p.Return = gween.New(float32(from), float32(p.Initial.Y), cfg.Platform.ReturnDuration, ease.OutBounce)
		p.State = components.PlatformReturning

	case components.PlatformReturning:
		y, done := p.Return.Update(float32(dt))
		space.Teleport(body, math.Vec2{X: p.Initial.X, Y: float64(y)})
		if done {
			space.Teleport(body, p.Initial)
			p.Return = nil
			p.SteppedOn = false
			p.State = components.PlatformIdle
		}
	}
}
