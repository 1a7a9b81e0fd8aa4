package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Wall       = donburi.NewTag().SetName("Wall")
	Platform   = donburi.NewTag().SetName("Platform")
	Elevator   = donburi.NewTag().SetName("Elevator")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
	Pin        = donburi.NewTag().SetName("Pin")
	Exit       = donburi.NewTag().SetName("Exit")
	Spikes     = donburi.NewTag().SetName("Spikes")
	Sharpener  = donburi.NewTag().SetName("Sharpener")
	Particle   = donburi.NewTag().SetName("Particle")
)

// Physics body tags, on top of the body kind tags the physics world adds.
const (
	BodyPlayer      = "player"
	BodyInteraction = "interaction"
	BodyHazard      = "hazard"
	BodyPlatform    = "platform"
	BodyElevator    = "elevator"
)
