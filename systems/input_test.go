package systems

import (
	"testing"

	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/yohamta/donburi/features/math"
)

// scripted returns a poller that holds the given actions on each tick.
func scripted(ticks ...[]cfg.ActionID) Poller {
	i := 0
	return func(pressed *[cfg.ActionCount]bool) (components.InputMethod, bool) {
		if i >= len(ticks) {
			return components.InputKeyboard, false
		}
		held := ticks[i]
		i++
		for _, a := range held {
			pressed[a] = true
		}
		return components.InputGamepad, len(held) > 0
	}
}

func TestInputSystemEdges(t *testing.T) {
	e := newTestECS(t, flatLevel("input"))
	player := testPlayer(t, e)
	update := InputSystem(scripted(
		[]cfg.ActionID{cfg.ActionJump},
		[]cfg.ActionID{cfg.ActionJump, cfg.ActionMoveRight},
		[]cfg.ActionID{cfg.ActionMoveRight},
	))

	update(e)
	if in := player.Input; !in.Jump.JustPressed || !in.Jump.Pressed || in.Right.Pressed {
		t.Fatalf("tick 1 input = %+v", in)
	}
	update(e)
	if in := player.Input; in.Jump.JustPressed || !in.Jump.Pressed || !in.Right.JustPressed {
		t.Fatalf("tick 2 input = %+v", in)
	}
	update(e)
	if in := player.Input; !in.Jump.JustReleased || in.Jump.Pressed || in.Right.JustPressed {
		t.Fatalf("tick 3 input = %+v", in)
	}

	input, _ := components.Input.First(e.World)
	if got := components.Input.Get(input).LastInputMethod; got != components.InputGamepad {
		t.Fatalf("last input method = %v", got)
	}
}

func TestInputSystemTogglesDebugOnce(t *testing.T) {
	e := newTestECS(t, flatLevel("debug"))
	was := cfg.Debug.Enabled
	t.Cleanup(func() { cfg.Debug.Enabled = was })

	update := InputSystem(scripted(
		[]cfg.ActionID{cfg.ActionToggleDebug},
		[]cfg.ActionID{cfg.ActionToggleDebug},
		nil,
		[]cfg.ActionID{cfg.ActionToggleDebug},
	))
	update(e)
	update(e)
	if cfg.Debug.Enabled == was {
		t.Fatal("holding the key should toggle debug once")
	}
	update(e)
	update(e)
	if cfg.Debug.Enabled != was {
		t.Fatal("second press should toggle debug back")
	}
}

func TestInputSystemRestart(t *testing.T) {
	e := newTestECS(t, flatLevel("restart input"))
	player := testPlayer(t, e)
	finishRespawn(t, e)
	space, _ := spaceOf(e.World)
	space.Teleport(player.Body, math.Vec2{X: 300, Y: 100})

	update := InputSystem(scripted([]cfg.ActionID{cfg.ActionRestart}))
	update(e)
	if got := space.Position(player.Body); got != spawn {
		t.Fatalf("player at %v after restart, want %v", got, spawn)
	}
}
