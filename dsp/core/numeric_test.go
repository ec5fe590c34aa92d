package core

import (
	"math"
	"testing"
)

func TestNormOfDim2VectorIsHypotenuse(t *testing.T) {
	if got := Norm([]float64{3, 4}); got != 5 {
		t.Fatalf("Norm() = %v, want 5", got)
	}
}

func TestNormOfNullVectorIsZero(t *testing.T) {
	if got := Norm(make([]float64, 100)); got != 0 {
		t.Fatalf("Norm() = %v, want 0", got)
	}
}

func TestEuclideanDistanceOfZeroVectorsIsZero(t *testing.T) {
	zeros := make([]float64, 10)
	if got := EuclideanDistance(zeros, zeros); got != 0 {
		t.Fatalf("EuclideanDistance() = %v, want 0", got)
	}
}

func TestEuclideanDistanceDifferingOnlyInLastComponentIsThatDifference(t *testing.T) {
	v := []float64{4.3, 5.6, 9.2, 10.0}
	u := []float64{4.3, 5.6, 9.2, 9.0}
	if got := EuclideanDistance(v, u); got != 1 {
		t.Fatalf("EuclideanDistance() = %v, want 1", got)
	}
}

func TestEuclideanDistanceOfLiVectorsIsPythagoras(t *testing.T) {
	v := []float64{1, 1}
	u := []float64{3, 1}
	if got := EuclideanDistance(v, u); got != 2 {
		t.Fatalf("EuclideanDistance() = %v, want 2", got)
	}
}

func TestEuclideanDistanceEmptyVectorIsNormOfOther(t *testing.T) {
	u := []float64{3, 0}
	if got := EuclideanDistance(nil, u); got != 3 {
		t.Fatalf("EuclideanDistance() = %v, want 3", got)
	}

	if got := EuclideanDistance(u, nil); got != 3 {
		t.Fatalf("EuclideanDistance() = %v, want 3", got)
	}
}

func TestLinearInterpolationMidpoint(t *testing.T) {
	got := LinearInterpolation(0, 0, 2, 4, 1)
	if got != 2 {
		t.Fatalf("LinearInterpolation() = %v, want 2", got)
	}
}

func TestLinearInterpolationDegenerateReturnsY0(t *testing.T) {
	got := LinearInterpolation(5, 42, 5, 100, 5)
	if got != 42 {
		t.Fatalf("LinearInterpolation() = %v, want 42", got)
	}
}

func TestPlanForwardInverseRoundTrip(t *testing.T) {
	const n = 8

	plan, err := NewPlan(n)
	if err != nil {
		t.Fatalf("NewPlan() error = %v", err)
	}

	src := make([]float64, n)
	for i := range src {
		src[i] = math.Sin(2 * math.Pi * float64(i) / n)
	}

	freq := make([]complex128, n)
	if err := plan.Forward(freq, ToComplex(src)); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	back := make([]complex128, n)
	if err := plan.Inverse(back, freq); err != nil {
		t.Fatalf("Inverse() error = %v", err)
	}

	got := RealsOf(back)
	for i := range got {
		got[i] /= n
	}

	for i := range src {
		if math.Abs(got[i]-src[i]) > 1e-9 {
			t.Fatalf("round trip index %d: got %v, want %v", i, got[i], src[i])
		}
	}
}

func TestNewPlanRejectsNonPositiveSize(t *testing.T) {
	if _, err := NewPlan(0); err == nil {
		t.Fatal("NewPlan(0) expected error, got nil")
	}
}
