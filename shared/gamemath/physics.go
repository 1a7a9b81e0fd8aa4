package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Damp scales speed by (1 - damping) and snaps it to zero once its magnitude
// drops below epsilon.
func Damp(speed, damping, epsilon float64) float64 {
	speed *= 1 - damping
	if math.Abs(speed) < epsilon {
		return 0
	}
	return speed
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// AxisInput folds a pair of opposing buttons into -1, 0 or 1.
func AxisInput(negative, positive bool) float64 {
	switch {
	case negative && !positive:
		return -1
	case positive && !negative:
		return 1
	}
	return 0
}
