package fastmath

import "math"

// invSqrtMagic is the initial-estimate constant of the classic fast inverse
// square root.
const invSqrtMagic = 0x5f3759df

// InvSqrt approximates 1/sqrt(x) for x > 0.
//
// The IEEE 754 bit pattern of x gives a coarse estimate that two
// Newton-Raphson steps refine. The result for x <= 0 is finite or infinite
// but meaningless; callers pass squared norms.
func InvSqrt(x float32) float32 {
	const threeHalfs = 1.5

	x2 := x * 0.5
	i := math.Float32bits(x)
	i = invSqrtMagic - i>>1
	y := math.Float32frombits(i)
	y = y * (threeHalfs - x2*y*y)
	y = y * (threeHalfs - x2*y*y)

	return Fabs(y)
}
