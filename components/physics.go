package components

import (
	"github.com/automoto/scaaale/physics"
	"github.com/yohamta/donburi"
)

// SpaceData holds the level's physics world. There is one per level.
type SpaceData struct {
	*physics.World
}

var Space = donburi.NewComponentType[SpaceData]()
