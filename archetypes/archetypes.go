package archetypes

import (
	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Body,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Body,
	)
	Elevator = newArchetype(
		tags.Elevator,
		components.Elevator,
		components.Body,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Interaction,
		components.Body,
	)
	Pin = newArchetype(
		tags.Pin,
		components.Pin,
		components.Interaction,
		components.Tween,
		components.Body,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Exit,
		components.Interaction,
		components.Tween,
		components.Body,
	)
	Spikes = newArchetype(
		tags.Spikes,
		components.Hazard,
		components.Body,
	)
	Sharpener = newArchetype(
		tags.Sharpener,
		components.Sharpener,
		components.Hazard,
		components.Tween,
		components.Body,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
