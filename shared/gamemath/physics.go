package gamemath

import "math"

// SmoothToward moves current toward target with exponential smoothing.
// tau is the time constant in seconds; after tau seconds about 63% of the gap
// is closed. A non-positive tau snaps to target.
func SmoothToward(current, target, tau, dt float64) float64 {
	if tau <= 0 {
		return target
	}
	return current + (target-current)*(1-math.Exp(-dt/tau))
}

// Normalize returns the unit vector of (x, y) and false for a zero vector.
func Normalize(x, y float64) (nx, ny float64, ok bool) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0, false
	}
	return x / l, y / l, true
}

// Approach decrements timer toward zero by dt.
func Approach(timer, dt float64) float64 {
	timer -= dt
	if timer < 0 {
		return 0
	}
	return timer
}
