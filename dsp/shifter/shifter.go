// Package shifter implements the baseline (naive) frequency-domain pitch
// transposer: a full-signal FFT, bin translation by a semitone-derived
// scale, and an inverse FFT back to the time domain.
package shifter

import (
	"math"

	"github.com/cwbudde/pitchtranspose/dsp/core"
)

// Basic transposes signal by shift semitones and returns a signal of the
// same length. Bins of the shifted spectrum that do not land on an
// existing source bin are left at zero rather than interpolated, matching
// the reference implementation's sparse behavior.
func Basic(signal []float64, shift int, sampleRate float64) ([]float64, error) {
	n := len(signal)
	if n == 0 {
		return nil, nil
	}

	plan, err := core.NewPlan(n)
	if err != nil {
		return nil, err
	}

	spectrum := make([]complex128, n)
	if err := plan.Forward(spectrum, core.ToComplex(signal)); err != nil {
		return nil, err
	}

	shifted := shiftAmplitudes(spectrum, shift, sampleRate)

	timeDomain := make([]complex128, n)
	if err := plan.Inverse(timeDomain, shifted); err != nil {
		return nil, err
	}

	out := core.RealsOf(timeDomain)
	for i := range out {
		out[i] /= float64(n)
	}

	return out, nil
}

// shiftAmplitudes builds the destination spectrum for a semitone shift.
// For each destination bin i, the corresponding source frequency is
// i*fs/len/scale; if that frequency falls exactly on a source bin (and is
// below the Nyquist-adjacent sampling rate), the source bin's amplitude is
// copied, otherwise the destination bin is left at zero.
func shiftAmplitudes(amplitudes []complex128, shift int, samplingRate float64) []complex128 {
	n := len(amplitudes)
	shiftedSpec := make([]complex128, n)

	length := float64(n)
	scale := math.Pow(2, float64(shift)/12)
	timeStep := samplingRate / length

	for i := range shiftedSpec {
		srcFreq := float64(i) * samplingRate / length / scale

		if fracIsZero(srcFreq/timeStep) && srcFreq < samplingRate {
			srcIdx := int(srcFreq * length / samplingRate)
			if srcIdx >= 0 && srcIdx < n {
				shiftedSpec[i] = amplitudes[srcIdx]
			}
		}
	}

	return shiftedSpec
}

func fracIsZero(x float64) bool {
	return x-math.Trunc(x) == 0
}
