package systems

import (
	"encoding/json"
	"testing"

	"github.com/automoto/scaaale/components"
	"github.com/automoto/scaaale/shared/leveldata"
	"github.com/automoto/scaaale/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func TestLoadLevelReplacesEntities(t *testing.T) {
	first := flatLevel("first")
	first.Pins = []leveldata.Pin{{Rect: box(200, 40, 4.5, 4.5), ID: 1}}
	first.Exits = []leveldata.Exit{{Rect: box(400, 48, 12, 24), RequiredPins: 1}}
	second := flatLevel("second")

	e := newTestECS(t, first, second)
	// floor, pin, exit, player
	if n := countBodies(e.World); n != 4 {
		t.Fatalf("level 1 bodies = %d, want 4", n)
	}
	level := testLevel(t, e)
	if level.State.RequiredPins != 1 {
		t.Fatalf("required pins = %d", level.State.RequiredPins)
	}

	LoadLevel(e, 2)
	if n := countBodies(e.World); n != 2 {
		t.Fatalf("level 2 bodies = %d, want 2", n)
	}
	if n := donburi.NewQuery(filter.Contains(components.Space)).Count(e.World); n != 1 {
		t.Fatalf("spaces = %d, want 1", n)
	}
	if level.Current.Name != "second" || level.State.RequiredPins != 0 {
		t.Fatalf("current = %q, required = %d", level.Current.Name, level.State.RequiredPins)
	}

	LoadLevel(e, 7)
	if level.State.CurrentLevel != 1 {
		t.Fatalf("out of range level loaded %d, want 1", level.State.CurrentLevel)
	}
}

func TestLevelTransitionAdvancesAndWraps(t *testing.T) {
	store := &memStore{}
	e := newTestECS(t, flatLevel("a"), flatLevel("b"))
	UsePersistence(store)
	level := testLevel(t, e)

	UpdateLevelTransition(e)
	if level.State.CurrentLevel != 1 {
		t.Fatal("transition without completing the level")
	}

	level.State.PickedPins = 3
	level.Completed = true
	UpdateLevelTransition(e)
	if level.State.CurrentLevel != 2 || level.State.UnlockedLevels != 2 {
		t.Fatalf("state = %+v", level.State)
	}
	if level.Completed || level.State.PickedPins != 0 {
		t.Fatalf("completed = %v, pins = %d after loading", level.Completed, level.State.PickedPins)
	}

	var saved components.GameState
	if err := json.Unmarshal(store.items[progressKey], &saved); err != nil {
		t.Fatalf("saved progress: %v", err)
	}
	if saved.CurrentLevel != 2 || saved.UnlockedLevels != 2 {
		t.Fatalf("saved = %+v", saved)
	}

	level.Completed = true
	UpdateLevelTransition(e)
	if level.State.CurrentLevel != 1 || level.State.UnlockedLevels != 2 {
		t.Fatalf("after wrapping state = %+v", level.State)
	}
}

func TestCheckpointsStayExclusive(t *testing.T) {
	lvl := flatLevel("checkpoints")
	lvl.Checkpoints = []leveldata.Checkpoint{
		{Rect: box(60, 32, 8, 8), ID: 1, Active: true},
		{Rect: box(200, 32, 8, 8), ID: 2, Active: true},
		{Rect: box(340, 32, 8, 8), ID: 3},
	}
	e := newTestECS(t, lvl)
	level := testLevel(t, e)

	active := func() []int {
		var ids []int
		components.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
			if c := components.Checkpoint.Get(entry); c.Active {
				ids = append(ids, c.ID)
			}
		})
		return ids
	}

	if ids := active(); len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("active after load = %v, want [1]", ids)
	}
	if level.ActiveCheckpoint == nil || level.ActiveCheckpoint.ID != 1 {
		t.Fatalf("level checkpoint = %+v", level.ActiveCheckpoint)
	}

	var entries []*donburi.Entry
	tags.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	for _, entry := range entries {
		ActivateCheckpoint(e, entry)
		want := components.Checkpoint.Get(entry)
		if ids := active(); len(ids) != 1 || ids[0] != want.ID {
			t.Fatalf("active = %v after activating %d", ids, want.ID)
		}
		if level.RespawnPoint() != want.Spawn {
			t.Fatalf("respawn point = %v, want %v", level.RespawnPoint(), want.Spawn)
		}
	}
}

func TestRespawnPointFallsBackToSpawn(t *testing.T) {
	e := newTestECS(t, flatLevel("plain"))
	if got := testLevel(t, e).RespawnPoint(); got != spawn {
		t.Fatalf("respawn point = %v, want %v", got, spawn)
	}
}

func TestHUDLine(t *testing.T) {
	cases := []struct {
		current, total, picked, required int
		want                             string
	}{
		{1, 2, 0, 0, "level 1/2"},
		{2, 2, 1, 3, "level 2/2  pins 1/3"},
	}
	for _, c := range cases {
		if got := hudLine(c.current, c.total, c.picked, c.required); got != c.want {
			t.Errorf("hudLine(%d, %d, %d, %d) = %q, want %q", c.current, c.total, c.picked, c.required, got, c.want)
		}
	}
}

func TestLevelTransitionSurvivesSaveFailure(t *testing.T) {
	e := newTestECS(t, flatLevel("a"), flatLevel("b"))
	UsePersistence(&memStore{err: errDisk})
	level := testLevel(t, e)

	level.Completed = true
	UpdateLevelTransition(e)
	if level.State.CurrentLevel != 2 || level.State.UnlockedLevels != 2 || level.Completed {
		t.Fatalf("state = %+v completed = %v after a failed save", level.State, level.Completed)
	}
}
