package factory

import (
	"github.com/automoto/scaaale/archetypes"
	"github.com/automoto/scaaale/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, at math.Vec2) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{Position: at})
}
