package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ParticleData is one dust mote. Particles live outside the physics world.
type ParticleData struct {
	Position math.Vec2
	Velocity math.Vec2
	Life     int // ticks remaining
	MaxLife  int
}

var Particle = donburi.NewComponentType[ParticleData]()
