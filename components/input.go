package components

import (
	cfg "github.com/automoto/scaaale/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous tick's pressed state for all
// actions. JustPressed/JustReleased are computed on demand by comparing them.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

// State returns the temporal state of one action.
func (d *InputData) State(a cfg.ActionID) ActionState {
	cur, prev := d.Current[a], d.Previous[a]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()
