package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireWithin fails t if got and want differ by more than eps (absolute
// tolerance). name identifies the quantity in the failure message.
func RequireWithin(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); !(diff <= eps) {
		t.Fatalf("%s: got %v, want %v (diff %v > eps %v)", name, got, want, diff, eps)
	}
}

// RequireRelWithin fails t if the relative error of got against a non-zero
// want exceeds rel.
func RequireRelWithin(t *testing.T, name string, got, want, rel float64) {
	t.Helper()
	if e := RelErr(got, want); !(e <= rel) {
		t.Fatalf("%s: got %v, want %v (relative error %v > %v)", name, got, want, e, rel)
	}
}

// RelErr returns |got-want|/|want|.
func RelErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Abs(want)
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
