// Package pitchdetect finds the scale factor that snaps a signal's
// fundamental frequency to the nearest twelve-tone equal-tempered note, for
// the autotune mode of the phase vocoder.
package pitchdetect

import (
	"errors"
	"math"

	"github.com/cwbudde/pitchtranspose/dsp/core"
)

// ErrNoPeak is returned when a signal is too short to have a non-DC bin.
var ErrNoPeak = errors.New("pitchdetect: signal has no non-DC frequency bin")

// knownFrequencies is the reference table of 108 twelve-TET fundamental
// frequencies, ascending from C0 (16.35 Hz) to B8 (7902.13 Hz).
var knownFrequencies = []float64{
	16.35, 17.32, 18.35, 19.45, 20.60, 21.83, 23.12, 24.50, 25.96, 27.50,
	29.14, 30.87, 32.70, 34.65, 36.71, 38.89, 41.20, 43.65, 46.25, 49.00,
	51.91, 55.00, 58.27, 61.74, 65.41, 69.30, 73.42, 77.78, 82.41, 87.31,
	92.50, 98.00, 103.83, 110.00, 116.54, 123.47, 130.81, 138.59, 146.83,
	155.56, 164.81, 174.61, 185.00, 196.00, 207.65, 220.00, 233.08, 246.94,
	261.63, 277.18, 293.66, 311.13, 329.63, 349.23, 369.99, 392.00, 415.30,
	440.00, 466.16, 493.88, 523.25, 554.37, 587.33, 622.25, 659.26, 698.46,
	739.99, 783.99, 830.61, 880.00, 932.33, 987.77, 1046.50, 1108.73,
	1174.66, 1244.51, 1318.51, 1396.91, 1479.98, 1567.98, 1661.22, 1760.00,
	1864.66, 1975.53, 2093.00, 2217.46, 2349.32, 2489.02, 2637.02, 2793.83,
	2959.96, 3135.96, 3322.44, 3520.00, 3729.31, 3951.07, 4186.01, 4434.92,
	4698.64, 4978.03, 5274.04, 5587.65, 5919.91, 6271.93, 6644.88, 7040.00,
	7458.62, 7902.13,
}

// KnownFrequencies returns a copy of the twelve-TET reference table.
func KnownFrequencies() []float64 {
	out := make([]float64, len(knownFrequencies))
	copy(out, knownFrequencies)

	return out
}

// ClosestScaleFactor computes the ratio between signal's detected
// fundamental frequency and the nearest known twelve-TET note, suitable as
// the scale argument to the phase vocoder's autotune mode.
func ClosestScaleFactor(signal []float64, sampleRate float64) (float64, error) {
	freq, err := MainFrequency(signal, sampleRate)
	if err != nil {
		return 0, err
	}

	idx := nearestIndex(freq, 0, len(knownFrequencies), knownFrequencies)
	if idx < 0 {
		return 0, ErrNoPeak
	}

	return freq / knownFrequencies[idx], nil
}

// MainFrequency FFTs signal and returns the angular bin frequency of the
// bin (excluding the DC bin, index 0) whose real part is largest. This
// intentionally peaks on the real part rather than the magnitude, and
// reports an angular frequency (including the 2*pi factor) rather than a
// frequency in Hz, matching the bin-frequency convention used throughout
// this package.
func MainFrequency(signal []float64, sampleRate float64) (float64, error) {
	n := len(signal)
	if n < 2 {
		return 0, ErrNoPeak
	}

	plan, err := core.NewPlan(n)
	if err != nil {
		return 0, err
	}

	spectrum := make([]complex128, n)
	if err := plan.Forward(spectrum, core.ToComplex(signal)); err != nil {
		return 0, err
	}

	maxIdx := -1
	maxVal := math.Inf(-1)

	for i := 1; i < n; i++ {
		re := real(spectrum[i])
		if re > maxVal {
			maxVal = re
			maxIdx = i
		}
	}

	if maxIdx == -1 {
		return 0, ErrNoPeak
	}

	return binFrequency(maxIdx, sampleRate, n), nil
}

func binFrequency(bin int, sampleRate float64, frameLength int) float64 {
	return float64(bin) * sampleRate / float64(frameLength) * 2 * math.Pi
}

// nearestIndex performs a recursive binary search over the ascending,
// duplicate-free slice v for the entry nearest to f, restricted to the
// half-open range [l, r). Returns -1 when v is empty or the range is
// degenerate. Ties resolve to the lower index; if the search narrows to
// the right edge of v, the last valid index is returned.
func nearestIndex(f float64, l, r int, v []float64) int {
	if len(v) == 0 || r == 0 || r < l {
		return -1
	}

	if r-l <= 1 {
		if r == len(v) {
			return r - 1
		}

		distL := math.Abs(f - v[l])
		distR := math.Abs(f - v[r])
		if distL <= distR {
			return l
		}

		return r
	}

	middle := (l + r) / 2
	switch {
	case v[middle] == f:
		return middle
	case v[middle] < f:
		return nearestIndex(f, middle+1, r, v)
	default:
		return nearestIndex(f, l, middle, v)
	}
}
