package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	// Position is the world point at the center of the screen.
	Position math.Vec2
	// LookAheadX leads the player in the direction it faces, smoothed.
	LookAheadX float64
}

var Camera = donburi.NewComponentType[CameraData]()
