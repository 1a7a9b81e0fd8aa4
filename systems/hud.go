package systems

import (
	"fmt"

	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD prints the level and pin count in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	level, ok := levelOf(ecs.World)
	if !ok || level.Current == nil || !fonts.Loaded(fonts.HUD) {
		return
	}
	line := hudLine(level.State.CurrentLevel, len(level.Levels), level.State.PickedPins, level.State.RequiredPins)

	face := fonts.HUD.Get()
	x, y := cfg.UI.HUDMarginX, cfg.UI.HUDMarginY
	text.Draw(screen, line, face, x+1, y+1, cfg.UI.ShadowColor)
	text.Draw(screen, line, face, x, y, cfg.UI.TextColor)
}

func hudLine(current, total, picked, required int) string {
	if required == 0 {
		return fmt.Sprintf("level %d/%d", current, total)
	}
	return fmt.Sprintf("level %d/%d  pins %d/%d", current, total, picked, required)
}
