package factory

import (
	"github.com/automoto/scaaale/archetypes"
	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/physics"
	"github.com/automoto/scaaale/shared/leveldata"
	"github.com/automoto/scaaale/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func addSensor(ecs *ecs.ECS, entry *donburi.Entry, r leveldata.Rect, tag string) physics.BodyID {
	return addBody(ecs, entry, physics.BodyDef{
		Kind:        physics.Sensor,
		Center:      r.Center,
		HalfExtents: r.Half,
		Tags:        []string{tag},
	})
}

// CreateCheckpoint creates a checkpoint sensor. Its respawn point is its center.
func CreateCheckpoint(ecs *ecs.ECS, c leveldata.Checkpoint) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)
	addSensor(ecs, checkpoint, c.Rect, tags.BodyInteraction)
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		ID:     c.ID,
		Active: c.Active,
		Spawn:  c.Center,
	})
	return checkpoint
}

// CreatePin creates a pickup that hovers up and down until it is taken.
func CreatePin(ecs *ecs.ECS, p leveldata.Pin) *donburi.Entry {
	pin := archetypes.Pin.Spawn(ecs)
	addSensor(ecs, pin, p.Rect, tags.BodyInteraction)
	components.Pin.SetValue(pin, components.PinData{ID: p.ID})

	h := float32(cfg.Interaction.PinHoverHeight)
	leg := cfg.Interaction.PinHoverDuration / 2
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, h, leg, ease.InOutSine),
		gween.New(h, 0, leg, ease.InOutSine),
	)
	components.Tween.SetValue(pin, components.TweenData{Seq: seq})
	return pin
}

// CreateExit creates the level exit. It pulses while the player still lacks
// pins.
func CreateExit(ecs *ecs.ECS, e leveldata.Exit) *donburi.Entry {
	exit := archetypes.Exit.Spawn(ecs)
	addSensor(ecs, exit, e.Rect, tags.BodyInteraction)
	components.Exit.SetValue(exit, components.ExitData{RequiredPins: e.RequiredPins})

	leg := cfg.Interaction.ExitPulseDuration / 2
	seq := gween.NewSequence()
	seq.Add(
		gween.New(1, 1.15, leg, ease.OutQuad),
		gween.New(1.15, 1, leg, ease.InQuad),
	)
	components.Tween.SetValue(exit, components.TweenData{Seq: seq, Value: 1})
	return exit
}
