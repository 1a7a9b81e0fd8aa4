package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/fonts"
	"github.com/automoto/scaaale/physics"
	"github.com/automoto/scaaale/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every enabled physics body and prints the player's
// movement state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
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

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		id := components.Body.Get(e).ID
		if !space.Enabled(id) {
			return
		}
		x, y, w, h := cam.rect(space.Position(id), space.HalfExtents(id))
		vector.StrokeRect(screen, x, y, w, h, 1, bodyColor(e, space.Kind(id)), false)
	})

	_, player, ok := playerOf(ecs.World)
	if !ok || player.Actor == nil || !fonts.Loaded(fonts.Debug) {
		return
	}
	a := player.Actor
	lines := []string{
		fmt.Sprintf("vel %.1f %.1f", a.Velocity.Current.X, a.Velocity.Current.Y),
		fmt.Sprintf("ground %t jump %t/%t", a.Ground.OnGround.Current(), a.Jump.CanJump, a.Jump.IsJumping),
		fmt.Sprintf("stretch %.1f grab %t", a.Stretch.Length, a.Stretch.GrabbedCeiling),
		fmt.Sprintf("respawn %t invuln %.2f", a.Respawn.Active, a.Respawn.Invuln.Remaining),
	}
	face := fonts.Debug.Get()
	y := screen.Bounds().Dy() - len(lines)*10 - 2
	for i, line := range lines {
		text.Draw(screen, line, face, cfg.UI.HUDMarginX, y+i*10+8, cfg.UI.TextColor)
	}
}

func bodyColor(e *donburi.Entry, kind physics.Kind) color.Color {
	key := kind.String()
	switch {
	case e.HasComponent(tags.Player):
		key = tags.BodyPlayer
	case e.HasComponent(components.Hazard):
		key = tags.BodyHazard
	}
	if c, ok := cfg.Debug.BodyColors[key]; ok {
		return c
	}
	return cfg.White
}
