package fastmath

import "github.com/cwbudde/algo-turbomath/internal/lut"

// Pressure band, in pascals, covered by Alt. It spans roughly 3050 m above
// to 420 m below standard sea level.
const (
	MinPressure = 69681
	MaxPressure = 106598
)

const (
	altIntervals = 500
	altScale     = 10
)

var altTable = lut.New(altSamples[:], MinPressure, MaxPressure, altScale, altIntervals)

// Alt converts a static pressure in pascals to standard-atmosphere altitude
// in metres.
//
// Pressures outside the open band (MinPressure, MaxPressure), and NaN,
// return exactly 0. The band is not extrapolated.
func Alt(pressure float32) float32 {
	lo, hi := altTable.Min(), altTable.Max()
	if !(pressure > lo && pressure < hi) {
		return 0
	}
	pos := float32(altTable.Intervals()) * (pressure - lo) / (hi - lo)
	return altTable.At(pos)
}
