package testutil

import (
	"math"
	"math/rand"
)

// Grid returns n evenly spaced float32 values from lo to hi inclusive. The
// endpoints are exact.
func Grid(lo, hi float32, n int) []float32 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float32{lo}
	}
	out := make([]float32, n)
	step := (float64(hi) - float64(lo)) / float64(n-1)
	for i := range out {
		out[i] = float32(float64(lo) + step*float64(i))
	}
	out[n-1] = hi
	return out
}

// DeterministicUnitVectors returns n unit vectors drawn uniformly from the
// sphere with a fixed seed for reproducibility.
func DeterministicUnitVectors(seed int64, n int) [][3]float32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][3]float32, 0, n)
	for len(out) < n {
		x := rng.Float64()*2 - 1
		y := rng.Float64()*2 - 1
		z := rng.Float64()*2 - 1
		sq := x*x + y*y + z*z
		// Rejection sampling keeps the distribution uniform and away from 0.
		if sq > 1 || sq < 1e-4 {
			continue
		}
		r := 1 / math.Sqrt(sq)
		out = append(out, [3]float32{float32(x * r), float32(y * r), float32(z * r)})
	}
	return out
}

// DeterministicAngles returns n values uniformly drawn from [-limit, limit]
// with a fixed seed.
func DeterministicAngles(seed int64, limit float64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * limit
	}
	return out
}
