package movement

import "github.com/yohamta/donburi/features/math"

// Params holds every tuning value of the movement core. Distances are world
// units, speeds are units per second, Gravity is per tick.
type Params struct {
	Timestep float64

	HalfExtents math.Vec2
	MaxVelocity math.Vec2
	Damping     float64
	// DriftEpsilon is the horizontal speed under which damping snaps to zero.
	DriftEpsilon float64
	Gravity      float64

	MoveSpeed         float64
	WallProbeOffset   float64
	WallProbeLift     float64
	CeilingNudgeSpeed float64
	// CeilingMargin is how far above the stretched head a grabbed ceiling
	// must still be found each tick.
	CeilingMargin float64

	JumpSpeed     float64
	JumpHoldForce float64
	JumpHoldTime  float64
	BonkDistance  float64

	MaxStretch       float64
	StretchSpeed     float64
	StretchProbe     float64
	StretchProbeHalf math.Vec2
	StretchSlowDown  float64

	GroundBias       float64
	HardLandingSpeed float64

	RespawnTime       float64
	RespawnInvulnTime float64
}

func DefaultParams() Params {
	return Params{
		Timestep: 1.0 / 60.0,

		HalfExtents:  math.Vec2{X: 6, Y: 9},
		MaxVelocity:  math.Vec2{X: 100, Y: 200},
		Damping:      0.05,
		DriftEpsilon: 0.1,
		Gravity:      15,

		MoveSpeed:         400,
		WallProbeOffset:   0.2,
		WallProbeLift:     0.1,
		CeilingNudgeSpeed: 10,
		CeilingMargin:     6,

		JumpSpeed:     140,
		JumpHoldForce: 20,
		JumpHoldTime:  0.30,
		BonkDistance:  2,

		MaxStretch:       88,
		StretchSpeed:     5,
		StretchProbe:     5,
		StretchProbeHalf: math.Vec2{X: 4, Y: 9},
		StretchSlowDown:  0.2,

		GroundBias:       -40,
		HardLandingSpeed: -200,

		RespawnTime:       1.0,
		RespawnInvulnTime: 0.5,
	}
}
