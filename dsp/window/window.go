// Package window generates the analysis/synthesis window used by the phase
// vocoder.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// VonHann returns von Hann window coefficients of the given length, using
// the periodic (FFT framing) form: w(i) = 0.5 - 0.5*cos(2*pi*i/length).
//
// This deliberately differs from the symmetric form (dividing by length-1)
// used elsewhere in signal processing: the phase vocoder analyzes
// fixed-size, overlapping frames, and the periodic form keeps
// overlap-add reconstruction exact at the frame boundary.
func VonHann(length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = vonHannAt(i, length)
	}

	return out
}

// Apply multiplies buf in place by a von Hann window of matching length.
func Apply(buf []float64) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, VonHann(len(buf)))
}

func vonHannAt(i, length int) float64 {
	return 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(length))
}
