package components

import (
	"github.com/automoto/scaaale/movement"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	*movement.Actor
	// Input is what the movement pipeline reads this tick.
	Input movement.Input
	// Pipeline steps the actor; its Params are refreshed after a tuning
	// reload.
	Pipeline *movement.Pipeline
	// Tuning is the config generation Pipeline was last refreshed from.
	Tuning int
	// Step is the pipeline's report from the last tick.
	Step movement.StepResult
	// Facing is -1 or 1, for drawing.
	Facing float64
}

var Player = donburi.NewComponentType[PlayerData]()
