package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffIdentical(t *testing.T) {
	a := []float64{1, 2, 3}

	d, err := MaxAbsDiff(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0 for identical slices", d)
	}
}

func TestRelErr(t *testing.T) {
	if e := RelErr(1.01, 1); math.Abs(e-0.01) > 1e-12 {
		t.Fatalf("RelErr(1.01, 1) = %v, want 0.01", e)
	}
	if e := RelErr(-2, -2); e != 0 {
		t.Fatalf("RelErr(-2, -2) = %v, want 0", e)
	}
}

func TestRequireWithinPasses(t *testing.T) {
	RequireWithin(t, "value", 1.0005, 1, 1e-3)
	RequireRelWithin(t, "value", 99.9, 100, 2e-3)
	RequireFinite(t, []float64{0, -1, 1e300})
}
