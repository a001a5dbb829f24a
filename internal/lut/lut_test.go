package lut

import (
	"math"
	"testing"
)

func ramp() Table {
	return New([]int16{0, 10, 20, 30}, 0, 4, 10, 4)
}

func TestAtPolicy(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		want float32
	}{
		{name: "first sample", x: 0, want: 0},
		{name: "interior", x: 1.5, want: 1.5},
		{name: "exact sample", x: 2, want: 2},
		{name: "last interval extrapolates", x: 3.5, want: 3.5},
		{name: "upper edge clamps", x: 4, want: 3},
		{name: "beyond clamps", x: 100, want: 3},
		{name: "below extrapolates backwards", x: -0.5, want: -0.5},
	}

	tab := ramp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tab.Eval(tt.x); got != tt.want {
				t.Fatalf("Eval(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestAtClampsToExtraSample(t *testing.T) {
	// The trailing sample is only reachable through the clamp branch.
	tab := New([]int16{0, 10, 20, 30, 90}, 0, 4, 10, 4)

	if got := tab.Eval(4); got != 9 {
		t.Fatalf("Eval(4) = %v, want 9", got)
	}
	if got := tab.Eval(3.5); got != 3.5 {
		t.Fatalf("Eval(3.5) = %v, want 3.5 (slope of previous interval)", got)
	}
}

func TestAtNonFinite(t *testing.T) {
	tab := ramp()

	if got := tab.At(float32(math.NaN())); !math.IsNaN(float64(got)) {
		t.Fatalf("At(NaN) = %v, want NaN", got)
	}
	if got := tab.At(float32(math.Inf(1))); got != 3 {
		t.Fatalf("At(+Inf) = %v, want 3", got)
	}
	if got := tab.At(float32(math.Inf(-1))); !math.IsInf(float64(got), -1) {
		t.Fatalf("At(-Inf) = %v, want -Inf", got)
	}
}

func TestDomainAccessors(t *testing.T) {
	tab := New([]int16{0, 10, 20, 30, 90}, -1, 3, 10, 4)
	if tab.Min() != -1 || tab.Max() != 3 {
		t.Fatalf("domain = [%v, %v], want [-1, 3]", tab.Min(), tab.Max())
	}
	if tab.Intervals() != 4 || tab.Len() != 5 {
		t.Fatalf("intervals=%d len=%d, want 4 and 5", tab.Intervals(), tab.Len())
	}
	if got := tab.Sample(4); got != 9 {
		t.Fatalf("Sample(4) = %v, want 9", got)
	}
}

func TestNewRejectsMismatchedSamples(t *testing.T) {
	for _, tc := range []struct {
		name    string
		samples []int16
		n       int
	}{
		{name: "too few", samples: []int16{0, 1, 2}, n: 4},
		{name: "too many", samples: []int16{0, 1, 2, 3, 4, 5}, n: 4},
		{name: "single interval", samples: []int16{0, 1}, n: 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			New(tc.samples, 0, 1, 1, tc.n)
		})
	}
}
