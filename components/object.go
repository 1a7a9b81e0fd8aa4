package components

import (
	"github.com/automoto/scaaale/physics"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its body in the physics world.
type BodyData struct {
	ID physics.BodyID
}

var Body = donburi.NewComponentType[BodyData]()
