package factory

import (
	"github.com/automoto/scaaale/archetypes"
	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/shared/leveldata"
	"github.com/automoto/scaaale/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpikes creates a static hazard.
func CreateSpikes(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	spikes := archetypes.Spikes.Spawn(ecs)
	addSensor(ecs, spikes, r, tags.BodyHazard)
	components.Hazard.SetValue(spikes, components.HazardData{Kind: leveldata.GroupSpikes})
	return spikes
}

// CreateSharpener creates a hazard that patrols between its start and
// PointToX forever.
func CreateSharpener(ecs *ecs.ECS, s leveldata.Sharpener) *donburi.Entry {
	sharpener := archetypes.Sharpener.Spawn(ecs)
	addSensor(ecs, sharpener, s.Rect, tags.BodyHazard)
	components.Hazard.SetValue(sharpener, components.HazardData{Kind: leveldata.GroupSharpeners})
	components.Sharpener.SetValue(sharpener, components.SharpenerData{
		Initial:  s.Center,
		PointToX: s.PointToX,
	})

	from, to := float32(s.Center.X), float32(s.PointToX)
	d := cfg.Interaction.SharpenerDuration
	seq := gween.NewSequence()
	seq.Add(
		gween.New(from, to, d, ease.InOutQuad),
		gween.New(to, from, d, ease.InOutQuad),
	)
	components.Tween.SetValue(sharpener, components.TweenData{Seq: seq, Value: s.Center.X})
	return sharpener
}
