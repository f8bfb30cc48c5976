package math

import "golang.org/x/exp/constraints"

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Axis folds a pair of opposing inputs into -1, 0 or 1. Pressing both cancels out.
func Axis[T constraints.Signed | constraints.Float](negative, positive bool) T {
	var v T
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}
