package systems

import (
	"errors"
	"testing"

	"github.com/automoto/scaaale/components"
)

func TestGameStateRoundTrip(t *testing.T) {
	store := &memStore{}
	UsePersistence(store)
	t.Cleanup(func() { UsePersistence(nil) })

	if HasSaveGame() {
		t.Fatal("empty store reports a save")
	}
	want := components.GameState{UnlockedLevels: 3, CurrentLevel: 2, PickedPins: 1, RequiredPins: 2}
	if err := SaveGameState(want); err != nil {
		t.Fatalf("SaveGameState: %v", err)
	}
	if !HasSaveGame() {
		t.Fatal("no save after saving")
	}
	if got := LoadGameState(); got != want {
		t.Fatalf("loaded %+v, want %+v", got, want)
	}

	if err := ClearGameState(); err != nil {
		t.Fatalf("ClearGameState: %v", err)
	}
	if HasSaveGame() {
		t.Fatal("save survived clearing")
	}
	if got := LoadGameState(); got != components.NewGameState() {
		t.Fatalf("loaded %+v after clearing", got)
	}
}

func TestLoadGameStateFallsBack(t *testing.T) {
	t.Cleanup(func() { UsePersistence(nil) })
	fresh := components.NewGameState()

	cases := []struct {
		name  string
		store ProgressStore
		want  components.GameState
	}{
		{name: "no store", store: nil, want: fresh},
		{name: "read error", store: &memStore{err: errDisk}, want: fresh},
		{name: "corrupt", store: &memStore{items: map[string][]byte{progressKey: []byte("{nope")}}, want: fresh},
		{
			name:  "out of range level",
			store: &memStore{items: map[string][]byte{progressKey: []byte(`{"currentLevel":-4,"unlockedLevels":0}`)}},
			want:  components.GameState{CurrentLevel: 1, UnlockedLevels: 1, RequiredPins: 1},
		},
		{
			name:  "unlocked behind current",
			store: &memStore{items: map[string][]byte{progressKey: []byte(`{"currentLevel":3,"unlockedLevels":1}`)}},
			want:  components.GameState{CurrentLevel: 3, UnlockedLevels: 3, RequiredPins: 1},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			UsePersistence(c.store)
			if got := LoadGameState(); got != c.want {
				t.Fatalf("loaded %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestSaveGameStateReportsErrors(t *testing.T) {
	t.Cleanup(func() { UsePersistence(nil) })

	UsePersistence(nil)
	if err := SaveGameState(components.NewGameState()); err != nil {
		t.Fatalf("saving without a store: %v", err)
	}
	UsePersistence(&memStore{err: errDisk})
	if err := SaveGameState(components.NewGameState()); !errors.Is(err, errDisk) {
		t.Fatalf("err = %v, want %v", err, errDisk)
	}
}
