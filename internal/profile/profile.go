package profile

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultSamples is the number of samples per sweep when none is configured.
const DefaultSamples = 2001

// Sweep selects a function and the domain it is sampled over. Zero Min, Max
// and Samples fall back to the function's defaults.
type Sweep struct {
	Function string  `yaml:"function"`
	Min      float64 `yaml:"min,omitempty"`
	Max      float64 `yaml:"max,omitempty"`
	Samples  int     `yaml:"samples,omitempty"`
}

// Option mutates a Sweep.
type Option func(*Sweep)

// WithSamples sets the number of samples.
func WithSamples(samples int) Option {
	return func(s *Sweep) {
		if samples > 0 {
			s.Samples = samples
		}
	}
}

// WithRange sets the sampled domain.
func WithRange(min, max float64) Option {
	return func(s *Sweep) {
		s.Min = min
		s.Max = max
	}
}

// NewSweep returns a sweep over the default domain of the named function,
// modified by opts.
func NewSweep(name string, opts ...Option) (Sweep, error) {
	fn, ok := Lookup(name)
	if !ok {
		return Sweep{}, fmt.Errorf("%w: %q", errUnknownFunction, name)
	}
	s := Sweep{Function: name, Min: fn.Min, Max: fn.Max, Samples: DefaultSamples}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s, nil
}

// resolve fills unset fields from the function defaults.
func (s Sweep) resolve(fn Function) Sweep {
	if s.Min == 0 && s.Max == 0 {
		s.Min, s.Max = fn.Min, fn.Max
	}
	if s.Samples == 0 {
		s.Samples = DefaultSamples
	}
	return s
}

// Report summarizes the signed error approx - reference of one sweep. For
// relative functions the error is divided by the reference.
type Report struct {
	Function  string  `csv:"function"`
	Relative  bool    `csv:"relative"`
	Min       float64 `csv:"min"`
	Max       float64 `csv:"max"`
	Samples   int     `csv:"samples"`
	MaxAbsErr float64 `csv:"max_abs_err"`
	WorstAt   float64 `csv:"worst_at"`
	MinErr    float64 `csv:"min_err"`
	MaxErr    float64 `csv:"max_err"`
	MeanErr   float64 `csv:"mean_err"`
	StdDevErr float64 `csv:"stddev_err"`
}

// Run evaluates one sweep.
func Run(s Sweep) (Report, error) {
	fn, ok := Lookup(s.Function)
	if !ok {
		return Report{}, fmt.Errorf("%w: %q", errUnknownFunction, s.Function)
	}
	s = s.resolve(fn)
	if err := validateSamples(s.Samples); err != nil {
		return Report{}, err
	}
	if err := validateRange(s.Min, s.Max); err != nil {
		return Report{}, err
	}

	xs := samplePoints(s.Min, s.Max, s.Samples)
	got := make([]float64, len(xs))
	want := make([]float64, len(xs))
	for i, x := range xs {
		got[i] = fn.Approx(x)
		want[i] = fn.Reference(x)
	}

	errs := signedError(got, want, fn.Relative)

	lo, hi := floats.MinIdx(errs), floats.MaxIdx(errs)
	worst := hi
	if math.Abs(errs[lo]) > math.Abs(errs[hi]) {
		worst = lo
	}

	return Report{
		Function:  s.Function,
		Relative:  fn.Relative,
		Min:       s.Min,
		Max:       s.Max,
		Samples:   s.Samples,
		MaxAbsErr: floats.Norm(errs, math.Inf(1)),
		WorstAt:   xs[worst],
		MinErr:    errs[lo],
		MaxErr:    errs[hi],
		MeanErr:   stat.Mean(errs, nil),
		StdDevErr: stat.StdDev(errs, nil),
	}, nil
}

// RunAll evaluates every sweep in cfg in order.
func RunAll(cfg *Config) ([]Report, error) {
	if len(cfg.Sweeps) == 0 {
		return nil, errNoSweeps
	}
	reports := make([]Report, 0, len(cfg.Sweeps))
	for _, s := range cfg.Sweeps {
		if s.Samples == 0 {
			s.Samples = cfg.Samples
		}
		r, err := Run(s)
		if err != nil {
			return nil, fmt.Errorf("sweep %q: %w", s.Function, err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// samplePoints returns n points evenly spaced over [min, max], rounded to
// float32 so both implementations see the same argument.
func samplePoints(min, max float64, n int) []float64 {
	xs := make([]float64, n)
	floats.Span(xs, min, max)
	for i, x := range xs {
		xs[i] = float64(float32(x))
	}
	return xs
}

// signedError returns got - want, divided elementwise by want if relative.
func signedError(got, want []float64, relative bool) []float64 {
	errs := make([]float64, len(got))
	vecmath.ScaleBlock(errs, want, -1)
	vecmath.AddBlockInPlace(errs, got)
	if relative {
		recip := make([]float64, len(want))
		for i, w := range want {
			recip[i] = 1 / w
		}
		vecmath.MulBlockInPlace(errs, recip)
	}
	return errs
}
