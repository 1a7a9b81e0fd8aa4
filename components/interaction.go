package components

import "github.com/yohamta/donburi"

// InteractionData marks a sensor the player can touch: checkpoints, pins
// and exits. Overlapping is recomputed every tick.
type InteractionData struct {
	Overlapping bool
	Disabled    bool
}

var Interaction = donburi.NewComponentType[InteractionData]()

// HazardData marks a sensor that hurts: spikes and sharpeners.
type HazardData struct {
	Kind string
}

var Hazard = donburi.NewComponentType[HazardData]()

type PinData struct {
	ID int
}

var Pin = donburi.NewComponentType[PinData]()

type ExitData struct {
	RequiredPins int
}

var Exit = donburi.NewComponentType[ExitData]()
