package resample

import (
	"math"
	"testing"
)

func roundDigits(f float64, r int) float64 {
	scale := math.Pow(10, float64(r))

	return math.Round(f*scale) / scale
}

func TestResampleSlowingDown(t *testing.T) {
	signal := []float64{1.5, 1.0, 0.5, 1.75, 2.0, 3.0, 2.5, 1.5, 0.25}

	got := Resample(signal, 2.0)
	for i := range got {
		got[i] = roundDigits(got[i], 2)
	}

	want := []float64{1.5, 0.5, 2.0, 2.5, 0.25}
	requireEqual(t, got, want)
}

func TestResampleFractionalScale(t *testing.T) {
	signal := []float64{1.5, 1.0, 0.5, 1.75, 2.0, 3.0, 2.5, 1.5, 0.25}

	got := Resample(signal, 1.5)
	for i := range got {
		got[i] = roundDigits(got[i], 3)
	}

	want := []float64{1.5, 0.75, 1.75, 2.5, 2.5, 0.875}
	requireEqual(t, got, want)
}

func TestResampleSpeedingUp(t *testing.T) {
	signal := []float64{1.5, 1.0, 0.5, 1.75, 2.0, 3.0, 2.5, 1.5, 0.25}

	got := Resample(signal, 0.8)
	for i := range got {
		got[i] = roundDigits(got[i], 2)
	}

	want := []float64{1.5, 1.1, 0.7, 1.0, 1.8, 2.0, 2.8, 2.7, 2.1, 1.25, 0.25}
	requireEqual(t, got, want)
}

func TestResampleNonPositiveScaleIsEmpty(t *testing.T) {
	signal := []float64{1.5, 1.0, 0.5, 1.75, 2.0, 3.0, 2.5, 1.5, 0.25}

	if got := Resample(signal, -0.1); len(got) != 0 {
		t.Fatalf("Resample(negative scale) = %v, want empty", got)
	}

	if got := Resample(signal, 0); len(got) != 0 {
		t.Fatalf("Resample(zero scale) = %v, want empty", got)
	}
}

func TestResampleIdentityScalePreservesSignal(t *testing.T) {
	signal := []float64{1.5, 1.0, 0.5, 1.75, 2.0, 3.0, 2.5, 1.5, 0.25}

	got := Resample(signal, 1.0)
	requireEqual(t, got, signal)
}

func TestResampleLengthIsRoundedRatio(t *testing.T) {
	signal := make([]float64, 100)

	got := Resample(signal, 3.0)
	if len(got) != 33 {
		t.Fatalf("len(Resample) = %d, want 33", len(got))
	}
}

func requireEqual(t *testing.T, got, want []float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d (%v), want %d (%v)", len(got), got, len(want), want)
	}

	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
