package scenes

import (
	"sync"

	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/shared/leveldata"
	"github.com/automoto/scaaale/systems"
	"github.com/automoto/scaaale/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

type PlatformerScene struct {
	ecs    *ecs.ECS
	levels []*leveldata.Level
	state  components.GameState
	once   sync.Once
}

// NewPlatformerScene plays levels starting from state.CurrentLevel.
func NewPlatformerScene(levels []*leveldata.Level, state components.GameState) *PlatformerScene {
	return &PlatformerScene{levels: levels, state: state}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ps.ecs = NewWorld(ps.levels, ps.state, systems.UpdateInput)
}

// NewWorld builds the ECS with every system in tick order and loads the
// current level of state. input is the first system of every tick.
func NewWorld(levels []*leveldata.Level, state components.GameState, input ecs.System) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(input)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateElevators)
	e.AddSystem(systems.UpdatePlatforms)
	e.AddSystem(systems.UpdateInteractions)
	e.AddSystem(systems.UpdateHazards)
	e.AddSystem(systems.UpdateRespawn)
	e.AddSystem(systems.UpdateTweens)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateLevelTransition)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawEffects)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.HUD, systems.DrawHUD)

	factory.CreateCamera(e, math.Vec2{})
	level := factory.CreateLevel(e, levels, state)
	systems.LoadLevel(e, components.Level.Get(level).State.CurrentLevel)
	return e
}
