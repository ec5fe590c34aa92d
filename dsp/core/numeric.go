// Package core provides the numeric kernel shared by every DSP stage:
// FFT/IFFT plan wrapping, complex/real conversions, and the small vector
// operations (norm, Euclidean distance, linear interpolation) that the
// shifter, vocoder, and pitch detector are all built on.
package core

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Plan wraps an algo-fft complex128 plan for a fixed transform length.
type Plan struct {
	size int
	plan *algofft.Plan[complex128]
}

// NewPlan builds an FFT plan for signals/spectra of the given length.
func NewPlan(size int) (*Plan, error) {
	if size <= 0 {
		return nil, fmt.Errorf("core: fft size must be > 0, got %d", size)
	}

	p, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("core: building fft plan of size %d: %w", size, err)
	}

	return &Plan{size: size, plan: p}, nil
}

// Size returns the transform length the plan was built for.
func (p *Plan) Size() int { return p.size }

// Forward computes the complex DFT of src into dst. Both must have length
// Size(). dst and src may alias.
func (p *Plan) Forward(dst, src []complex128) error {
	if err := p.plan.Forward(dst, src); err != nil {
		return fmt.Errorf("core: forward fft: %w", err)
	}

	return nil
}

// Inverse computes the unnormalized inverse complex DFT of src into dst.
// Callers divide by Size() to recover amplitudes. dst and src may alias.
func (p *Plan) Inverse(dst, src []complex128) error {
	if err := p.plan.Inverse(dst, src); err != nil {
		return fmt.Errorf("core: inverse fft: %w", err)
	}

	return nil
}

// ToComplex promotes a real-valued signal to complex128 with zero imaginary
// parts, ready for Forward.
func ToComplex(real []float64) []complex128 {
	out := make([]complex128, len(real))
	for i, v := range real {
		out[i] = complex(v, 0)
	}

	return out
}

// RealsOf extracts the real component of every entry in spectrum.
func RealsOf(spectrum []complex128) []float64 {
	out := make([]float64, len(spectrum))
	for i, v := range spectrum {
		out[i] = real(v)
	}

	return out
}

// Norm returns the Euclidean (L2) norm of v.
func Norm(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// EuclideanDistance returns the Euclidean distance between u and v, computed
// over the first min(len(u), len(v)) components. If one of the slices is
// empty, the distance degenerates to the norm of the other.
func EuclideanDistance(u, v []float64) float64 {
	if len(u) == 0 {
		return Norm(v)
	}

	if len(v) == 0 {
		return Norm(u)
	}

	n := len(u)
	if len(v) < n {
		n = len(v)
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		d := u[i] - v[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// LinearInterpolation interpolates the value at x along the line through
// (x0, y0) and (x1, y1). If x0 == x1, y0 is returned.
func LinearInterpolation(x0, y0, x1, y1, x float64) float64 {
	if x1 == x0 {
		return y0
	}

	t := (x - x0) / (x1 - x0)

	return y0 + t*(y1-y0)
}
