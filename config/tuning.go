package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the optional override file. Only keys present in the file change
// anything; every field is a pointer so absent keys stay nil.
type Tuning struct {
	Player   PlayerTuning   `yaml:"player"`
	Platform PlatformTuning `yaml:"platform"`
	Elevator ElevatorTuning `yaml:"elevator"`
	Camera   CameraTuning   `yaml:"camera"`
	Effects  EffectsTuning  `yaml:"effects"`
}

type PlayerTuning struct {
	MoveSpeed         *float64 `yaml:"move_speed"`
	CeilingNudgeSpeed *float64 `yaml:"ceiling_nudge_speed"`
	JumpSpeed         *float64 `yaml:"jump_speed"`
	JumpHoldForce     *float64 `yaml:"jump_hold_force"`
	JumpHoldTime      *float64 `yaml:"jump_hold_time"`
	MaxStretch        *float64 `yaml:"max_stretch"`
	StretchSpeed      *float64 `yaml:"stretch_speed"`
	StretchSlowDown   *float64 `yaml:"stretch_slow_down"`
	Gravity           *float64 `yaml:"gravity"`
	MaxVelocityX      *float64 `yaml:"max_velocity_x"`
	MaxVelocityY      *float64 `yaml:"max_velocity_y"`
	Damping           *float64 `yaml:"damping"`
	GroundBias        *float64 `yaml:"ground_bias"`
	HardLandingSpeed  *float64 `yaml:"hard_landing_speed"`
	RespawnTime       *float64 `yaml:"respawn_time"`
	RespawnInvulnTime *float64 `yaml:"respawn_invuln_time"`
}

type PlatformTuning struct {
	DropDelay      *float64 `yaml:"drop_delay"`
	FallSpeed      *float64 `yaml:"fall_speed"`
	RestartDelay   *float64 `yaml:"restart_delay"`
	ReturnDuration *float32 `yaml:"return_duration"`
}

type ElevatorTuning struct {
	Speed *float64 `yaml:"speed"`
}

type CameraTuning struct {
	FollowSmoothing    *float64 `yaml:"follow_smoothing"`
	LookAheadDistanceX *float64 `yaml:"look_ahead_distance_x"`
}

type EffectsTuning struct {
	DustCount    *int `yaml:"dust_count"`
	DustLifetime *int `yaml:"dust_lifetime"`
}

// LoadTuning reads and applies a tuning file.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// ApplyTuning parses data and, if it is valid, resets every tunable value to
// its default and applies the overrides. On error nothing changes.
func ApplyTuning(data []byte) error {
	var t Tuning
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("unmarshal tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return err
	}

	Reset()
	t.apply()
	return nil
}

func (t *Tuning) validate() error {
	positive := map[string]*float64{
		"player.move_speed":     t.Player.MoveSpeed,
		"player.jump_hold_time": t.Player.JumpHoldTime,
		"player.stretch_speed":  t.Player.StretchSpeed,
		"player.max_velocity_x": t.Player.MaxVelocityX,
		"player.max_velocity_y": t.Player.MaxVelocityY,
		"player.respawn_time":   t.Player.RespawnTime,
		"platform.fall_speed":   t.Platform.FallSpeed,
	}
	for key, v := range positive {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, key, *v)
		}
	}
	if v := t.Player.MaxStretch; v != nil && *v < 0 {
		return fmt.Errorf("%w: player.max_stretch must not be negative, got %v", ErrInvalidTuning, *v)
	}
	if v := t.Player.Damping; v != nil && (*v < 0 || *v >= 1) {
		return fmt.Errorf("%w: player.damping must be in [0, 1), got %v", ErrInvalidTuning, *v)
	}
	return nil
}

func (t *Tuning) apply() {
	p := &t.Player
	set(&Player.MoveSpeed, p.MoveSpeed)
	set(&Player.CeilingNudgeSpeed, p.CeilingNudgeSpeed)
	set(&Player.JumpSpeed, p.JumpSpeed)
	set(&Player.JumpHoldForce, p.JumpHoldForce)
	set(&Player.JumpHoldTime, p.JumpHoldTime)
	set(&Player.MaxStretch, p.MaxStretch)
	set(&Player.StretchSpeed, p.StretchSpeed)
	set(&Player.StretchSlowDown, p.StretchSlowDown)
	set(&Player.Gravity, p.Gravity)
	set(&Player.MaxVelocity.X, p.MaxVelocityX)
	set(&Player.MaxVelocity.Y, p.MaxVelocityY)
	set(&Player.Damping, p.Damping)
	set(&Player.GroundBias, p.GroundBias)
	set(&Player.HardLandingSpeed, p.HardLandingSpeed)
	set(&Player.RespawnTime, p.RespawnTime)
	set(&Player.RespawnInvulnTime, p.RespawnInvulnTime)

	set(&Platform.DropDelay, t.Platform.DropDelay)
	set(&Platform.FallSpeed, t.Platform.FallSpeed)
	set(&Platform.RestartDelay, t.Platform.RestartDelay)
	set(&Platform.ReturnDuration, t.Platform.ReturnDuration)

	set(&Elevator.Speed, t.Elevator.Speed)

	set(&Camera.FollowSmoothing, t.Camera.FollowSmoothing)
	set(&Camera.LookAheadDistanceX, t.Camera.LookAheadDistanceX)

	set(&Effects.DustCount, t.Effects.DustCount)
	set(&Effects.DustLifetime, t.Effects.DustLifetime)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
