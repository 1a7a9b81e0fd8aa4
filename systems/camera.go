package systems

import (
	stdmath "math"

	"github.com/automoto/scaaale/components"
	"github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	_, player, ok := playerOf(e.World)
	if !ok || player.Actor == nil || player.Respawn.Active {
		return
	}
	space, ok := spaceOf(e.World)
	if !ok {
		return
	}
	level, ok := levelOf(e.World)
	if !ok || level.Current == nil {
		return
	}

	// Only update look-ahead when player is moving - freeze offset when idle
	if stdmath.Abs(player.Velocity.Current.X) > config.Camera.LookAheadSpeedThreshold {
		target := player.Facing * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (target - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	pos := space.Position(player.Body)
	target := clampToLevel(math.Vec2{X: pos.X + camera.LookAheadX, Y: pos.Y}, level)

	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera centers the camera on at without smoothing.
func SnapCamera(e *ecs.ECS, at math.Vec2) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.LookAheadX = 0
	camera.Position = at
	if level, ok := levelOf(e.World); ok && level.Current != nil {
		camera.Position = clampToLevel(at, level)
	}
}

// clampToLevel keeps the screen inside the level. A level smaller than the
// screen is centered.
func clampToLevel(p math.Vec2, level *components.LevelData) math.Vec2 {
	halfW := float64(config.C.Width) / 2
	halfH := float64(config.C.Height) / 2
	w, h := level.Current.Width, level.Current.Height

	if w <= 2*halfW {
		p.X = w / 2
	} else {
		p.X = gamemath.Clamp(p.X, halfW, w-halfW)
	}
	if h <= 2*halfH {
		p.Y = h / 2
	} else {
		p.Y = gamemath.Clamp(p.Y, halfH, h-halfH)
	}
	return p
}

// view maps y-up world coordinates onto the screen.
type view struct {
	center       math.Vec2
	halfW, halfH float64
}

func (v view) toScreen(p math.Vec2) (float32, float32) {
	return float32(p.X - v.center.X + v.halfW), float32(v.halfH - (p.Y - v.center.Y))
}

// rect returns the screen-space top-left corner and size of a box given by
// its center and half extents.
func (v view) rect(center, half math.Vec2) (x, y, w, h float32) {
	x, y = v.toScreen(math.Vec2{X: center.X - half.X, Y: center.Y + half.Y})
	return x, y, float32(2 * half.X), float32(2 * half.Y)
}

func cameraOf(w donburi.World, screen *ebiten.Image) (view, bool) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return view{}, false
	}
	b := screen.Bounds()
	return view{
		center: components.Camera.Get(entry).Position,
		halfW:  float64(b.Dx()) / 2,
		halfH:  float64(b.Dy()) / 2,
	}, true
}
