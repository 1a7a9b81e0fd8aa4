package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// ProgressStore is where game progress lives. *gdata.Manager is the real one.
type ProgressStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var progressStore ProgressStore

// InitPersistence opens the save data directory for this app.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.C.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	progressStore = m
	return nil
}

// UsePersistence swaps the progress store; nil disables saving.
func UsePersistence(s ProgressStore) {
	progressStore = s
}

// LoadGameState returns the saved progress, or a fresh GameState if there is
// none or it cannot be read.
func LoadGameState() components.GameState {
	state := components.NewGameState()
	if progressStore == nil {
		return state
	}

	data, err := progressStore.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load game progress: %v", err)
		return state
	}
	if len(data) == 0 {
		return state
	}

	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return components.NewGameState()
	}
	if state.CurrentLevel < 1 {
		state.CurrentLevel = 1
	}
	if state.UnlockedLevels < state.CurrentLevel {
		state.UnlockedLevels = state.CurrentLevel
	}
	return state
}

// SaveGameState writes progress. Failures are logged and returned; the game
// keeps running either way.
func SaveGameState(state components.GameState) error {
	if progressStore == nil {
		return nil
	}

	data, err := json.Marshal(state)
	if err != nil {
		log.Printf("Warning: Could not serialize game progress: %v", err)
		return err
	}
	if err := progressStore.SaveItem(progressKey, data); err != nil {
		log.Printf("Warning: Could not save game progress: %v", err)
		return err
	}
	return nil
}

// HasSaveGame reports whether any progress has been saved.
func HasSaveGame() bool {
	if progressStore == nil {
		return false
	}
	data, err := progressStore.LoadItem(progressKey)
	return err == nil && len(data) > 0
}

// ClearGameState removes any saved progress.
func ClearGameState() error {
	if progressStore == nil {
		return nil
	}
	if err := progressStore.SaveItem(progressKey, nil); err != nil {
		log.Printf("Warning: Could not clear game progress: %v", err)
		return err
	}
	return nil
}
