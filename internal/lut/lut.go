// Package lut implements fixed-point lookup tables sampled at uniform
// spacing, evaluated by linear interpolation between neighbouring samples.
package lut

// Table is an immutable set of fixed-point samples of a function over
// [min, max]. The domain is split into n equal intervals; sample i holds
// f(min + i*(max-min)/n) multiplied by scale.
//
// A table may carry one sample more than n, in which case that last sample
// is the exact value at max and is what out-of-range lookups clamp to.
type Table struct {
	samples []int16
	min     float32
	max     float32
	scale   float32
	n       int
}

// New wraps samples as a table over [min, max] split into n intervals.
// samples must hold n or n+1 values and n must be at least 2; New panics
// otherwise, since tables are built once from package-level data.
func New(samples []int16, min, max, scale float32, n int) Table {
	if n < 2 || len(samples) < n || len(samples) > n+1 {
		panic("lut: sample count does not match interval count")
	}
	return Table{samples: samples, min: min, max: max, scale: scale, n: n}
}

// Min returns the lower edge of the tabulated domain.
func (t Table) Min() float32 { return t.min }

// Max returns the upper edge of the tabulated domain.
func (t Table) Max() float32 { return t.max }

// Intervals returns the number of sample intervals n.
func (t Table) Intervals() int { return t.n }

// Len returns the number of stored samples.
func (t Table) Len() int { return len(t.samples) }

// Sample returns the descaled value of stored sample i.
func (t Table) Sample(i int) float32 {
	return float32(t.samples[i]) / t.scale
}

// Eval maps x onto the table's sample positions and interpolates.
func (t Table) Eval(x float32) float32 {
	return t.At((x - t.min) / (t.max - t.min) * float32(t.n))
}

// At evaluates the table at a fractional sample position pos.
//
// Positions at or beyond n return the final stored sample. Positions inside
// the last interval extrapolate along the slope of the preceding interval
// instead of clamping, which keeps the far edge free of a flat step.
// Positions below zero extrapolate backwards from the first interval and NaN
// propagates; neither ever indexes outside the table.
func (t Table) At(pos float32) float32 {
	if pos >= float32(t.n) {
		return t.Sample(t.Len() - 1)
	}

	index := 0
	if pos > 0 {
		index = int(pos)
	}
	delta := pos - float32(index)

	if index < t.n-1 {
		lo, hi := t.samples[index], t.samples[index+1]
		return float32(lo)/t.scale + delta*float32(int32(hi)-int32(lo))/t.scale
	}

	lo, hi := t.samples[index-1], t.samples[index]
	return float32(hi)/t.scale + delta*float32(int32(hi)-int32(lo))/t.scale
}
