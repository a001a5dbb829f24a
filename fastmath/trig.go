package fastmath

import (
	"math"

	"github.com/cwbudde/algo-turbomath/internal/lut"
)

const (
	halfPi = math.Pi / 2
	pi     = math.Pi

	trigIntervals = 500
	trigScale     = 10000
)

var (
	atanTable = lut.New(atanSamples[:], 0, 1, trigScale, trigIntervals)
	asinTable = lut.New(asinSamples[:], 0, 1, trigScale, trigIntervals)
)

// Atan approximates the arctangent of x in radians.
// Arguments with |x| > 1 are folded onto [0, 1] with atan(x) = π/2 - atan(1/x).
func Atan(x float32) float32 {
	if x < 0 {
		return -Atan(-x)
	}
	if x > 1 {
		return halfPi - Atan(1/x)
	}
	return atanTable.Eval(x)
}

// Atan2 approximates the four-quadrant arctangent of y/x in radians, in
// [-π, π]. Atan2(0, 0) is 0.
func Atan2(y, x float32) float32 {
	if x == 0 {
		switch {
		case y < 0:
			return -halfPi
		case y > 0:
			return halfPi
		default:
			return 0
		}
	}

	arctan := Atan(y / x)
	if x < 0 {
		if y < 0 {
			return arctan - pi
		}
		return arctan + pi
	}
	return arctan
}

// Asin approximates the arcsine of x in radians. Arguments beyond ±1 clamp
// to ±π/2.
func Asin(x float32) float32 {
	if x < 0 {
		return -Asin(-x)
	}
	return asinTable.Eval(x)
}
