package systems

import (
	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/movement"
	"github.com/automoto/scaaale/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poller fills in which actions are held this tick. It reports the device that
// produced them, or false if nothing was pressed.
type Poller func(pressed *[cfg.ActionCount]bool) (components.InputMethod, bool)

// UpdateInput polls the keyboard and gamepads. Must run before UpdatePlayer.
var UpdateInput = InputSystem(PollDevices)

// InputSystem builds an input system around poll. The headless simulator
// plugs a scripted poller in here.
func InputSystem(poll Poller) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}
		if method, ok := poll(&input.Current); ok {
			input.LastInputMethod = method
		}

		if input.State(cfg.ActionToggleDebug).JustPressed {
			cfg.Debug.Enabled = !cfg.Debug.Enabled
		}

		playerEntry, ok := tags.Player.First(e.World)
		if !ok {
			return
		}
		player := components.Player.Get(playerEntry)
		player.Input = actionsToMovement(input)

		if input.State(cfg.ActionRestart).JustPressed {
			RestartAtCheckpoint(e)
		}
	}
}

// PollDevices reads every bound key and standard gamepad button, plus the
// left stick for horizontal movement.
func PollDevices(pressed *[cfg.ActionCount]bool) (components.InputMethod, bool) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -deadzone {
			pressed[cfg.ActionMoveLeft] = true
			gamepadUsed = true
		}
		if h > deadzone {
			pressed[cfg.ActionMoveRight] = true
			gamepadUsed = true
		}
	}

	// Gamepad takes priority if both were used
	switch {
	case gamepadUsed:
		return components.InputGamepad, true
	case keyboardUsed:
		return components.InputKeyboard, true
	}
	return components.InputKeyboard, false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

func actionsToMovement(input *components.InputData) movement.Input {
	button := func(a cfg.ActionID) movement.Button {
		s := input.State(a)
		return movement.Button{
			Pressed:      s.Pressed,
			JustPressed:  s.JustPressed,
			JustReleased: s.JustReleased,
		}
	}
	return movement.Input{
		Left:    button(cfg.ActionMoveLeft),
		Right:   button(cfg.ActionMoveRight),
		Jump:    button(cfg.ActionJump),
		Stretch: button(cfg.ActionStretch),
	}
}
