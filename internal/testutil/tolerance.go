package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireNearlyEqual fails t if got and want differ by more than rel
// relative to the larger magnitude. Values below 1e-300 compare absolutely.
func RequireNearlyEqual(t *testing.T, got, want, rel float64, msgAndArgs ...any) {
	t.Helper()
	if !NearlyEqual(got, want, rel) {
		t.Fatalf("%sgot %v, want %v (rel tol %v)", prefix(msgAndArgs), got, want, rel)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair is not NearlyEqual within rel.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, rel float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !NearlyEqual(got[i], want[i], rel) {
			worst, _ := MaxRelDiff(got, want)
			t.Fatalf("index %d: got %v, want %v (rel tol %v, worst rel diff %v)", i, got[i], want[i], rel, worst)
		}
	}
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

// RequireStrictlyIncreasing fails t unless data[i] < data[i+1] for all i.
func RequireStrictlyIncreasing(t *testing.T, data []float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		if !(data[i] > data[i-1]) {
			t.Fatalf("index %d: %v does not follow %v", i, data[i], data[i-1])
		}
	}
}

// NearlyEqual reports whether a and b agree within rel.
func NearlyEqual(a, b, rel float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1e-300 {
		return math.Abs(a-b) <= rel
	}
	return math.Abs(a-b) <= rel*scale
}

// MaxRelDiff returns the largest relative difference between two slices.
// Returns an error if the slices differ in length.
func MaxRelDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		scale := math.Max(math.Abs(a[i]), math.Abs(b[i]))
		if scale == 0 {
			continue
		}
		if d := math.Abs(a[i]-b[i]) / scale; d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

func prefix(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...) + ": "
	}
	return fmt.Sprint(msgAndArgs...) + ": "
}
