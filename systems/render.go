package systems

import (
	"image/color"

	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var inactiveCheckpoint = color.RGBA{R: 120, G: 120, B: 120, A: 255}

// DrawLevel draws walls, platforms and every sensor of the level as flat
// boxes.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	cam, ok := cameraOf(ecs.World, screen)
	if !ok {
		return
	}
	space, ok := spaceOf(ecs.World)
	if !ok {
		return
	}
	level, _ := levelOf(ecs.World)

	fill := func(e *donburi.Entry, offset math.Vec2, scale float64, c color.Color) {
		id := components.Body.Get(e).ID
		if !space.Enabled(id) {
			return
		}
		pos := space.Position(id)
		half := space.HalfExtents(id)
		pos.X += offset.X
		pos.Y += offset.Y
		half.X *= scale
		half.Y *= scale
		x, y, w, h := cam.rect(pos, half)
		vector.DrawFilledRect(screen, x, y, w, h, c, false)
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		fill(e, math.Vec2{}, 1, cfg.WallColor)
	})
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		c := cfg.LightBlue
		if components.Platform.Get(e).State == components.PlatformShaking {
			c = cfg.Orange
		}
		fill(e, math.Vec2{}, 1, c)
	})
	tags.Elevator.Each(ecs.World, func(e *donburi.Entry) {
		fill(e, math.Vec2{}, 1, cfg.Blue)
	})
	tags.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		c := color.Color(inactiveCheckpoint)
		if components.Checkpoint.Get(e).Active {
			c = cfg.Green
		}
		fill(e, math.Vec2{}, 1, c)
	})
	tags.Pin.Each(ecs.World, func(e *donburi.Entry) {
		fill(e, math.Vec2{Y: components.Tween.Get(e).Value}, 1, cfg.Yellow)
	})
	tags.Exit.Each(ecs.World, func(e *donburi.Entry) {
		exit := components.Exit.Get(e)
		if level != nil && level.State.PickedPins >= exit.RequiredPins {
			fill(e, math.Vec2{}, 1, cfg.LightGreen)
			return
		}
		fill(e, math.Vec2{}, components.Tween.Get(e).Value, cfg.Purple)
	})
	tags.Spikes.Each(ecs.World, func(e *donburi.Entry) {
		fill(e, math.Vec2{}, 1, cfg.Red)
	})
	tags.Sharpener.Each(ecs.World, func(e *donburi.Entry) {
		fill(e, math.Vec2{}, 1, cfg.Magenta)
	})
}

// DrawPlayer draws the player's body stretched upwards by its current
// stretch. The player blinks while invulnerable and is hidden while
// respawning.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	_, player, ok := playerOf(ecs.World)
	if !ok || player.Actor == nil || player.Respawn.Active {
		return
	}
	if !player.Respawn.Invuln.Finished() && int(player.Respawn.Invuln.Remaining*20)%2 == 0 {
		return
	}
	cam, ok := cameraOf(ecs.World, screen)
	if !ok {
		return
	}
	space, ok := spaceOf(ecs.World)
	if !ok {
		return
	}

	pos := space.Position(player.Body)
	half := space.HalfExtents(player.Body)
	stretch := player.Stretch.Length
	// Grow from the feet up.
	center := math.Vec2{X: pos.X, Y: pos.Y + stretch/2}
	x, y, w, h := cam.rect(center, math.Vec2{X: half.X, Y: half.Y + stretch/2})

	c := cfg.White
	if player.Stretch.GrabbedCeiling {
		c = cfg.Yellow
	}
	vector.DrawFilledRect(screen, x, y, w, h, c, false)

	// Eye on the facing side, near the head.
	eyeX := x + w/2 + float32(player.Facing)*w/4 - 1
	vector.DrawFilledRect(screen, eyeX, y+3, 2, 2, cfg.Black, false)
}
