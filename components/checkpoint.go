package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CheckpointData struct {
	ID     int
	Active bool
	Spawn  math.Vec2 // Respawn position (center of checkpoint)
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()

// ActiveCheckpointData is stored in LevelData to track the last activated checkpoint
type ActiveCheckpointData struct {
	ID    int
	Spawn math.Vec2
}
