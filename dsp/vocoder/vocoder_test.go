package vocoder

import (
	"math"
	"testing"
)

func roundDigits(f float64, r int) float64 {
	scale := math.Pow(10, float64(r))

	return math.Round(f*scale) / scale
}

func TestFrequencyDeviationMatchesReferenceVector(t *testing.T) {
	p := complex(3.5, 2.0)
	c := complex(2.9, 0.5)

	binFreq := binFrequency(0, 48000, 1024)
	dev := frequencyDeviation(phaseOf(p), phaseOf(c), 256, 48000, binFreq)

	if got := roundDigits(dev, 4); got != -65.3271 {
		t.Fatalf("frequencyDeviation() rounded = %v, want -65.3271", got)
	}
}

func TestBinFrequencyIsAngular(t *testing.T) {
	got := binFrequency(1, 8000, 10)
	want := 2 * math.Pi * 800.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("binFrequency() = %v, want %v", got, want)
	}
}

func TestWrappedFrequencyDeviationStaysWithinPi(t *testing.T) {
	for _, dev := range []float64{0, math.Pi + 1, -(math.Pi + 1), 100, -100} {
		w := wrappedFrequencyDeviation(dev)
		if w < -math.Pi-1e-9 || w > math.Pi+1e-9 {
			t.Fatalf("wrappedFrequencyDeviation(%v) = %v, out of [-pi, pi]", dev, w)
		}
	}
}

func TestProcessPreservesApproximateDuration(t *testing.T) {
	const sampleRate = 8000.0
	signal := make([]float64, 2048)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 220 * float64(i) / sampleRate)
	}

	out, err := Process(signal, 256, 64, sampleRate, 1.0)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(out) == 0 {
		t.Fatal("Process() returned empty signal")
	}

	ratio := float64(len(out)) / float64(len(signal))
	if ratio < 0.5 || ratio > 1.5 {
		t.Fatalf("output/input length ratio = %v, expected roughly 1 for unity scale", ratio)
	}
}

func TestProcessHandlesFewerFramesThanWorkers(t *testing.T) {
	const sampleRate = 8000.0
	signal := make([]float64, 300)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 220 * float64(i) / sampleRate)
	}

	// frameSize=256, hopA=200 yields a single frame: (300-256)/200+1 = 1,
	// fewer than the 4-worker fan-out pool.
	out, err := Process(signal, 256, 200, sampleRate, 1.2)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(out) == 0 {
		t.Fatal("Process() returned empty signal")
	}
}
