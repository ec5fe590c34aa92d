// Package resample implements the fractional-rate resampling stage that
// closes out the phase vocoder: stretching
// or compressing a signal in time by linear interpolation between
// neighboring samples.
package resample

import "math"

// Resample samples signal as if it were played scaleFactor times faster.
// The result has round(len(signal) / scaleFactor) samples. Where a sample
// time falls between two source samples, the amplitude is produced by
// linear interpolation; where it falls on a source sample, the amplitude
// is taken directly. A non-positive scaleFactor yields an empty signal.
//
// scaleFactor is expected to be of the form 2^(t/12) for a number of
// semitones t, though any positive value is accepted.
func Resample(signal []float64, scaleFactor float64) []float64 {
	length := len(signal)
	if length == 0 || scaleFactor <= 0 {
		return nil
	}

	nbSamples := int(math.Round(float64(length) / scaleFactor))
	if nbSamples <= 0 {
		return nil
	}

	out := make([]float64, 0, nbSamples)

	for i := 0; i < nbSamples; i++ {
		sampleTime := float64(i) * scaleFactor

		if sampleTime == math.Trunc(sampleTime) {
			out = append(out, signal[clampIndex(int(sampleTime), length)])
			continue
		}

		x0 := math.Floor(sampleTime)
		y0 := signal[clampIndex(int(x0), length)]

		x1 := math.Ceil(sampleTime)
		if x1 >= float64(length) {
			x1 = float64(length - 1)
		}
		y1 := signal[clampIndex(int(x1), length)]

		out = append(out, linearInterpolation(x0, y0, x1, y1, sampleTime))
	}

	return out
}

func linearInterpolation(x0, y0, x1, y1, x float64) float64 {
	if x1 == x0 {
		return y0
	}

	slope := (y1 - y0) / (x1 - x0)

	return slope*(x-x0) + y0
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}

	if i >= length {
		return length - 1
	}

	return i
}
