// Package vocoder implements the phase vocoder pitch transposer: windowed
// STFT analysis, sequential per-bin phase propagation across frames,
// windowed overlap-add synthesis, and fractional resampling back to the
// original duration ratio.
package vocoder

import (
	"fmt"
	"math"

	"github.com/cwbudde/pitchtranspose/dsp/core"
	"github.com/cwbudde/pitchtranspose/dsp/framing"
	"github.com/cwbudde/pitchtranspose/dsp/resample"
	"github.com/cwbudde/pitchtranspose/dsp/window"
	"github.com/cwbudde/pitchtranspose/internal/appconfig"
)

// workerCount bounds the fan-out used for the analysis and synthesis
// passes. The phase-propagation loop itself always runs single-threaded.
const workerCount = appconfig.WorkerCount

// Process transposes signal by scale (a ratio, not semitones) using the
// phase vocoder algorithm with the given frame size and analysis hop. The
// returned signal has approximately len(signal)/scale samples.
func Process(signal []float64, frameSize, hopA int, sampleRate, scale float64) ([]float64, error) {
	hopS := int(math.Round(scale * float64(hopA)))

	frames, err := framing.Frame(signal, frameSize, hopA)
	if err != nil {
		return nil, fmt.Errorf("vocoder: %w", err)
	}

	analyzed, err := analyzeParallel(frames, hopA)
	if err != nil {
		return nil, fmt.Errorf("vocoder: analysis: %w", err)
	}

	processed := propagatePhase(analyzed, frameSize, hopA, hopS, sampleRate)

	synthFrames, err := synthesizeParallel(processed, hopS)
	if err != nil {
		return nil, fmt.Errorf("vocoder: synthesis: %w", err)
	}

	stretched := framing.OverlapAdd(synthFrames, hopS)

	return resample.Resample(stretched, scale), nil
}

// analyzeParallel windows and FFTs every frame, fanned out across a fixed
// worker pool. Each worker owns its own FFT plan.
func analyzeParallel(frames [][]float64, hopA int) ([][]complex128, error) {
	if len(frames) == 0 {
		return nil, nil
	}

	results := make([][]complex128, len(frames))
	errs := make([]error, workerCount)

	runFanOut(len(frames), func(worker, lo, hi int) {
		if lo >= hi {
			return
		}

		plan, err := core.NewPlan(len(frames[lo]))
		if err != nil {
			errs[worker] = err
			return
		}

		for i := lo; i < hi; i++ {
			spectrum, err := analyzeFrame(plan, frames[i], hopA)
			if err != nil {
				errs[worker] = err
				return
			}

			results[i] = spectrum
		}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

func analyzeFrame(plan *core.Plan, frame []float64, hopA int) ([]complex128, error) {
	windowed := make([]float64, len(frame))
	copy(windowed, frame)
	window.Apply(windowed)

	norm := math.Sqrt(float64(len(frame)) / float64(hopA) / 2)
	for i := range windowed {
		windowed[i] /= norm
	}

	spectrum := make([]complex128, len(frame))
	if err := plan.Forward(spectrum, core.ToComplex(windowed)); err != nil {
		return nil, err
	}

	return spectrum, nil
}

// propagatePhase runs the sequential, single-threaded per-bin phase
// tracking loop across all analyzed frames.
func propagatePhase(analyzed [][]complex128, frameSize, hopA, hopS int, sampleRate float64) [][]complex128 {
	processed := make([][]complex128, len(analyzed))
	zeroFrame := make([]complex128, frameSize)

	for i, curr := range analyzed {
		prevAnalyzed := zeroFrame
		if i > 0 {
			prevAnalyzed = analyzed[i-1]
		}

		prevProcessed := zeroFrame
		if i > 0 {
			prevProcessed = processed[i-1]
		}

		frame := make([]complex128, frameSize)

		for k := 0; k < frameSize; k++ {
			binFreq := binFrequency(k, sampleRate, frameSize)

			freqDev := frequencyDeviation(phaseOf(prevAnalyzed[k]), phaseOf(curr[k]), hopA, sampleRate, binFreq)
			wrapped := wrappedFrequencyDeviation(freqDev)
			trueFreq := wrapped + binFreq

			var phi float64
			if i != 0 {
				phi = phaseAdjustment(phaseOf(prevProcessed[k]), hopS, sampleRate, trueFreq)
			} else {
				phi = phaseOf(analyzed[0][k])
			}

			frame[k] = complex(math.Cos(phi), math.Sin(phi)) * complex(cmplx2Abs(curr[k]), 0)
		}

		processed[i] = frame
	}

	return processed
}

// synthesizeParallel inverse-FFTs, normalizes, re-windows and re-scales
// every processed frame, fanned out across a fixed worker pool.
func synthesizeParallel(frames [][]complex128, hopS int) ([][]float64, error) {
	if len(frames) == 0 {
		return nil, nil
	}

	results := make([][]float64, len(frames))
	errs := make([]error, workerCount)

	runFanOut(len(frames), func(worker, lo, hi int) {
		if lo >= hi {
			return
		}

		plan, err := core.NewPlan(len(frames[lo]))
		if err != nil {
			errs[worker] = err
			return
		}

		for i := lo; i < hi; i++ {
			out, err := synthesizeFrame(plan, frames[i], hopS)
			if err != nil {
				errs[worker] = err
				return
			}

			results[i] = out
		}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

func synthesizeFrame(plan *core.Plan, spectrum []complex128, hopS int) ([]float64, error) {
	timeDomain := make([]complex128, len(spectrum))
	if err := plan.Inverse(timeDomain, spectrum); err != nil {
		return nil, err
	}

	out := core.RealsOf(timeDomain)
	n := float64(len(out))
	for i := range out {
		out[i] /= n
	}

	window.Apply(out)

	norm := math.Sqrt(float64(len(out)) / float64(hopS) / 2)
	for i := range out {
		out[i] /= norm
	}

	return out, nil
}

// runFanOut splits [0,n) into workerCount contiguous ranges and runs fn on
// each, tolerating empty ranges when n < workerCount.
func runFanOut(n int, fn func(worker, lo, hi int)) {
	done := make(chan struct{}, workerCount)

	for w := 0; w < workerCount; w++ {
		lo := w * n / workerCount
		hi := (w + 1) * n / workerCount

		go func(worker, lo, hi int) {
			fn(worker, lo, hi)
			done <- struct{}{}
		}(w, lo, hi)
	}

	for w := 0; w < workerCount; w++ {
		<-done
	}
}

func binFrequency(bin int, sampleRate float64, frameLength int) float64 {
	return float64(bin) * sampleRate / float64(frameLength) * 2 * math.Pi
}

func frequencyDeviation(phiPrev, phiCurr float64, hopA int, sampleRate, binFreq float64) float64 {
	hopAsTime := float64(hopA) / sampleRate

	return (phiCurr-phiPrev)/hopAsTime - binFreq
}

// wrappedFrequencyDeviation maps freqDev into [-pi, pi) using the
// nonnegative remainder of freqDev+pi modulo 2*pi.
func wrappedFrequencyDeviation(freqDev float64) float64 {
	rem := math.Mod(freqDev+math.Pi, 2*math.Pi)
	if rem < 0 {
		rem += 2 * math.Pi
	}

	return rem - math.Pi
}

func phaseAdjustment(previousPhase float64, hopS int, sampleRate, trueFreq float64) float64 {
	hopAsTime := float64(hopS) / sampleRate

	return previousPhase + hopAsTime*trueFreq
}

func phaseOf(c complex128) float64 {
	return math.Atan2(imag(c), real(c))
}

func cmplx2Abs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
