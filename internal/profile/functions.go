package profile

import (
	"math"
	"sort"

	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-turbomath/fastmath"
)

// Standard-atmosphere constants the altitude table was sampled from.
const (
	seaLevelPressure = 101325.0
	baroScale        = 44307.69
	baroExponent     = 0.190284
)

// Function pairs an approximation with its reference implementation.
type Function struct {
	Name        string
	Description string

	// Default sweep domain.
	Min, Max float64

	// Relative selects error relative to the reference instead of absolute.
	Relative bool

	Approx    func(x float64) float64
	Reference func(x float64) float64
}

var registry = []Function{
	{
		Name:        "invsqrt",
		Description: "fastmath.InvSqrt vs 1/math.Sqrt",
		Min:         0.01,
		Max:         100,
		Relative:    true,
		Approx:      func(x float64) float64 { return float64(fastmath.InvSqrt(float32(x))) },
		Reference:   func(x float64) float64 { return 1 / math.Sqrt(x) },
	},
	{
		Name:        "approx-invsqrt",
		Description: "1/algo-approx FastSqrt vs 1/math.Sqrt (baseline)",
		Min:         0.01,
		Max:         100,
		Relative:    true,
		Approx:      func(x float64) float64 { return 1 / approx.FastSqrt(x) },
		Reference:   func(x float64) float64 { return 1 / math.Sqrt(x) },
	},
	{
		Name:        "atan",
		Description: "fastmath.Atan vs math.Atan",
		Min:         -4,
		Max:         4,
		Approx:      func(x float64) float64 { return float64(fastmath.Atan(float32(x))) },
		Reference:   math.Atan,
	},
	{
		Name:        "atan2",
		Description: "fastmath.Atan2 around the unit circle, x is the angle",
		Min:         -math.Pi,
		Max:         math.Pi,
		Approx: func(theta float64) float64 {
			y, x := unitCircle(theta)
			return float64(fastmath.Atan2(y, x))
		},
		Reference: func(theta float64) float64 {
			y, x := unitCircle(theta)
			return math.Atan2(float64(y), float64(x))
		},
	},
	{
		Name:        "asin",
		Description: "fastmath.Asin vs math.Asin",
		Min:         -1,
		Max:         1,
		Approx:      func(x float64) float64 { return float64(fastmath.Asin(float32(x))) },
		Reference:   math.Asin,
	},
	{
		Name:        "alt",
		Description: "fastmath.Alt vs the standard-atmosphere formula, metres",
		Min:         fastmath.MinPressure + 1,
		Max:         fastmath.MaxPressure - 1,
		Approx:      func(p float64) float64 { return float64(fastmath.Alt(float32(p))) },
		Reference:   standardAltitude,
	},
	{
		Name:        "approx-alt",
		Description: "standard-atmosphere formula on algo-approx FastExp/FastLog (baseline)",
		Min:         fastmath.MinPressure + 1,
		Max:         fastmath.MaxPressure - 1,
		Approx: func(p float64) float64 {
			return baroScale * (1 - approx.FastExp(baroExponent*approx.FastLog(p/seaLevelPressure)))
		},
		Reference: standardAltitude,
	},
}

func unitCircle(theta float64) (y, x float32) {
	s, c := math.Sincos(theta)
	return float32(s), float32(c)
}

func standardAltitude(pressure float64) float64 {
	return baroScale * (1 - math.Pow(pressure/seaLevelPressure, baroExponent))
}

// Functions returns the profiled functions sorted by name.
func Functions() []Function {
	out := make([]Function, len(registry))
	copy(out, registry)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the registered function with the given name.
func Lookup(name string) (Function, bool) {
	for _, f := range registry {
		if f.Name == name {
			return f, true
		}
	}
	return Function{}, false
}
