package systems

import (
	"errors"
	"testing"

	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/shared/leveldata"
	"github.com/automoto/scaaale/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var spawn = math.Vec2{X: 60, Y: 40}

// flatLevel is 480x240 with a floor whose top is at y=24.
func flatLevel(name string) *leveldata.Level {
	return &leveldata.Level{
		Name:     name,
		Width:    480,
		Height:   240,
		TileSize: 24,
		Spawn:    spawn,
		Walls: []leveldata.Rect{
			{Center: math.Vec2{X: 240, Y: 12}, Half: math.Vec2{X: 240, Y: 12}},
		},
	}
}

func box(x, y, hx, hy float64) leveldata.Rect {
	return leveldata.Rect{Center: math.Vec2{X: x, Y: y}, Half: math.Vec2{X: hx, Y: hy}}
}

// newTestECS loads the first of levels with no systems attached; tests call
// the systems they need by hand.
func newTestECS(t *testing.T, levels ...*leveldata.Level) *ecs.ECS {
	t.Helper()
	t.Cleanup(cfg.Reset)
	UsePersistence(nil)
	t.Cleanup(func() { UsePersistence(nil) })

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateCamera(e, math.Vec2{})
	factory.CreateLevel(e, levels, components.NewGameState())
	LoadLevel(e, 1)
	return e
}

func testPlayer(t *testing.T, e *ecs.ECS) *components.PlayerData {
	t.Helper()
	_, player, ok := playerOf(e.World)
	if !ok {
		t.Fatal("no player")
	}
	return player
}

func testLevel(t *testing.T, e *ecs.ECS) *components.LevelData {
	t.Helper()
	level, ok := levelOf(e.World)
	if !ok {
		t.Fatal("no level")
	}
	return level
}

// finishRespawn ticks the respawn system until the player is back.
func finishRespawn(t *testing.T, e *ecs.ECS) {
	t.Helper()
	player := testPlayer(t, e)
	for i := 0; i < 1000 && player.Respawn.Active; i++ {
		UpdateRespawn(e)
	}
	if player.Respawn.Active {
		t.Fatal("respawn never completed")
	}
}

func countBodies(w donburi.World) int {
	n := 0
	components.Body.Each(w, func(*donburi.Entry) { n++ })
	return n
}

type memStore struct {
	items map[string][]byte
	err   error
}

var errDisk = errors.New("disk on fire")

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	if m.items == nil {
		m.items = map[string][]byte{}
	}
	m.items[key] = data
	return nil
}
