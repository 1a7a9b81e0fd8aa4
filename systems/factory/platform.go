package factory

import (
	"github.com/automoto/scaaale/archetypes"
	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/physics"
	"github.com/automoto/scaaale/shared/leveldata"
	"github.com/automoto/scaaale/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlatform adds a platform that drops a moment after the player lands
// on it and bounces back later.
func CreatePlatform(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	addBody(ecs, platform, physics.BodyDef{
		Kind:        physics.Kinematic,
		Center:      r.Center,
		HalfExtents: r.Half,
		Tags:        []string{tags.BodyPlatform},
	})
	components.Platform.SetValue(platform, components.PlatformData{
		Initial: r.Center,
	})
	return platform
}

// CreateElevator adds a platform that travels span either side of its start,
// upwards (or rightwards) first.
func CreateElevator(ecs *ecs.ECS, el leveldata.Elevator) *donburi.Entry {
	elevator := archetypes.Elevator.Spawn(ecs)
	addBody(ecs, elevator, physics.BodyDef{
		Kind:        physics.Kinematic,
		Center:      el.Center,
		HalfExtents: el.Half,
		Tags:        []string{tags.BodyElevator},
	})

	dir := math.Vec2{Y: cfg.Elevator.Speed}
	if el.Horizontal {
		dir = math.Vec2{X: cfg.Elevator.Speed}
	}
	components.Elevator.SetValue(elevator, components.ElevatorData{
		Initial:   el.Center,
		Direction: dir,
		Span:      el.Span,
	})
	return elevator
}
