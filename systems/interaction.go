package systems

import (
	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/physics"
	"github.com/automoto/scaaale/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// sweptSensorCast sweeps the player's box by last tick's velocity and returns
// the first sensor carrying tag.
func sweptSensorCast(space *physics.World, player *components.PlayerData, tag string) (*donburi.Entry, bool) {
	dt := cfg.Player.Timestep
	v := player.Velocity.Current
	hit, ok := space.CastShape(physics.ShapeCast{
		Origin:      space.Position(player.Body),
		Velocity:    math.Vec2{X: v.X * dt, Y: v.Y * dt},
		HalfExtents: space.HalfExtents(player.Body),
		MaxTOI:      1,
		Filter: physics.Filter{
			Flags:   physics.ExcludeSolids,
			Tags:    []string{tag},
			Exclude: player.Body,
		},
	})
	if !ok {
		return nil, false
	}
	entry, ok := hit.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() {
		return nil, false
	}
	return entry, true
}

// UpdateInteractions finds the one checkpoint, pin or exit the player is
// touching this tick and acts on it.
func UpdateInteractions(e *ecs.ECS) {
	components.Interaction.Each(e.World, func(entry *donburi.Entry) {
		components.Interaction.Get(entry).Overlapping = false
	})

	_, player, ok := playerOf(e.World)
	if !ok || player.Actor == nil || player.Respawn.Active {
		return
	}
	space, ok := spaceOf(e.World)
	if !ok {
		return
	}

	entry, ok := sweptSensorCast(space, player, tags.BodyInteraction)
	if !ok || !entry.HasComponent(components.Interaction) {
		return
	}
	interaction := components.Interaction.Get(entry)
	if interaction.Disabled {
		return
	}
	interaction.Overlapping = true

	switch {
	case entry.HasComponent(components.Checkpoint):
		ActivateCheckpoint(e, entry)
	case entry.HasComponent(components.Pin):
		PickUpPin(e, entry)
	case entry.HasComponent(components.Exit):
		ReachExit(e, entry)
	}
}
