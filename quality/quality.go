// Package quality compares a transposed signal against an oracle recording
// to check whether a transposition stayed within an acceptable spectral
// distance.
package quality

import (
	"errors"
	"fmt"

	"github.com/cwbudde/pitchtranspose/dsp/core"
	"github.com/cwbudde/pitchtranspose/internal/audio"
)

// ErrLengthMismatch is returned when the two signals being compared have a
// different number of samples.
var ErrLengthMismatch = errors.New("quality: signals have different lengths")

// Check decodes the WAV files at pathSignal and pathOracle, FFTs both, and
// reports whether the Euclidean distance between the real parts of their
// spectra is within threshold.
func Check(pathSignal, pathOracle string, threshold float64) (good bool, distance float64, err error) {
	signal, err := audio.DecodeWAV(pathSignal)
	if err != nil {
		return false, 0, fmt.Errorf("quality: %w", err)
	}

	oracle, err := audio.DecodeWAV(pathOracle)
	if err != nil {
		return false, 0, fmt.Errorf("quality: %w", err)
	}

	if len(signal.Samples) != len(oracle.Samples) {
		return false, 0, ErrLengthMismatch
	}

	dist, err := spectralDistance(signal.Samples, oracle.Samples)
	if err != nil {
		return false, 0, fmt.Errorf("quality: %w", err)
	}

	return dist <= threshold, dist, nil
}

func spectralDistance(signal, oracle []float64) (float64, error) {
	plan, err := core.NewPlan(len(signal))
	if err != nil {
		return 0, err
	}

	sspec := make([]complex128, len(signal))
	if err := plan.Forward(sspec, core.ToComplex(signal)); err != nil {
		return 0, err
	}

	ospec := make([]complex128, len(oracle))
	if err := plan.Forward(ospec, core.ToComplex(oracle)); err != nil {
		return 0, err
	}

	return core.EuclideanDistance(core.RealsOf(sspec), core.RealsOf(ospec)), nil
}
