package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/scaaale/movement"
)

func TestApplyTuningOverridesOnlyPresentKeys(t *testing.T) {
	t.Cleanup(Reset)

	err := ApplyTuning([]byte(`
player:
  move_speed: 250
  max_velocity_y: 180
platform:
  return_duration: 0.5
effects:
  dust_count: 3
`))
	if err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}

	def := movement.DefaultParams()
	if Player.MoveSpeed != 250 || Player.MaxVelocity.Y != 180 {
		t.Fatalf("player = %+v", Player)
	}
	if Player.JumpSpeed != def.JumpSpeed || Player.MaxVelocity.X != def.MaxVelocity.X {
		t.Fatal("keys missing from the file must keep their defaults")
	}
	if Platform.ReturnDuration != 0.5 || Platform.DropDelay != 0.5 {
		t.Fatalf("platform = %+v", Platform)
	}
	if Effects.DustCount != 3 {
		t.Fatalf("dust count = %d", Effects.DustCount)
	}
}

func TestApplyTuningResetsRemovedKeys(t *testing.T) {
	t.Cleanup(Reset)

	if err := ApplyTuning([]byte("player:\n  jump_speed: 200\n")); err != nil {
		t.Fatal(err)
	}
	if err := ApplyTuning([]byte("player:\n  move_speed: 300\n")); err != nil {
		t.Fatal(err)
	}
	if Player.JumpSpeed != movement.DefaultParams().JumpSpeed {
		t.Fatalf("jump speed = %v, a reload must start from defaults", Player.JumpSpeed)
	}
}

func TestApplyTuningRejectsBadInput(t *testing.T) {
	t.Cleanup(Reset)

	cases := []struct {
		name    string
		data    string
		invalid bool
	}{
		{name: "unknown key", data: "player:\n  fly_speed: 3\n"},
		{name: "wrong type", data: "player:\n  move_speed: fast\n"},
		{name: "negative speed", data: "player:\n  move_speed: -1\n", invalid: true},
		{name: "damping out of range", data: "player:\n  damping: 1.5\n", invalid: true},
		{name: "negative stretch", data: "player:\n  max_stretch: -4\n", invalid: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			Player.MoveSpeed = 123
			err := ApplyTuning([]byte(c.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if c.invalid && !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("err = %v, want ErrInvalidTuning", err)
			}
			if Player.MoveSpeed != 123 {
				t.Fatal("a rejected file must not change anything")
			}
		})
	}
}

func TestApplyTuningEmptyFile(t *testing.T) {
	t.Cleanup(Reset)
	Player.MoveSpeed = 1
	if err := ApplyTuning(nil); err != nil {
		t.Fatalf("ApplyTuning(empty): %v", err)
	}
	if Player.MoveSpeed != movement.DefaultParams().MoveSpeed {
		t.Fatal("an empty file should restore defaults")
	}
}

func TestLoadTuning(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("elevator:\n  speed: 0.6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadTuning(path); err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if Elevator.Speed != 0.6 {
		t.Fatalf("elevator speed = %v", Elevator.Speed)
	}

	if err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want a not-exist error", err)
	}
}

func TestGenerationTracksReloads(t *testing.T) {
	t.Cleanup(Reset)

	before := Generation()
	if err := ApplyTuning([]byte("player:\n  move_speed: fast\n")); err == nil {
		t.Fatal("expected an error")
	}
	if Generation() != before {
		t.Fatal("a rejected file must not bump the generation")
	}
	if err := ApplyTuning([]byte("player:\n  move_speed: 300\n")); err != nil {
		t.Fatal(err)
	}
	if Generation() == before {
		t.Fatal("a reload must bump the generation")
	}
}
