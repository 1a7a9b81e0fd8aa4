package components

import (
	"github.com/automoto/scaaale/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// GameState is the progress that survives restarts. Levels are numbered
// from 1.
type GameState struct {
	UnlockedLevels int `json:"unlockedLevels"`
	CurrentLevel   int `json:"currentLevel"`
	PickedPins     int `json:"pickedPins"`
	RequiredPins   int `json:"requiredPins"`
}

func NewGameState() GameState {
	return GameState{UnlockedLevels: 1, CurrentLevel: 1, RequiredPins: 1}
}

// Unlock records that CurrentLevel has been reached.
func (g *GameState) Unlock() {
	if g.CurrentLevel > g.UnlockedLevels {
		g.UnlockedLevels = g.CurrentLevel
	}
}

type LevelData struct {
	Current *leveldata.Level
	Levels  []*leveldata.Level
	State   GameState
	// ActiveCheckpoint is where the player respawns; nil means the level
	// spawn point.
	ActiveCheckpoint *ActiveCheckpointData
	// Completed is set by the exit and consumed by the level transition.
	Completed bool
}

// RespawnPoint is the active checkpoint, or the spawn point.
func (l *LevelData) RespawnPoint() math.Vec2 {
	if l.ActiveCheckpoint != nil {
		return l.ActiveCheckpoint.Spawn
	}
	if l.Current != nil {
		return l.Current.Spawn
	}
	return math.Vec2{}
}

var Level = donburi.NewComponentType[LevelData]()
