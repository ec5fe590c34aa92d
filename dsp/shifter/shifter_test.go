package shifter

import (
	"math"
	"testing"
)

func TestShiftAmplitudesByOctaveUp(t *testing.T) {
	amplitudes := []complex128{
		complex(1, 2), complex(3, 4), complex(5, 6), complex(7, 8), complex(10, 9),
		complex(12, 11), complex(14, 13), complex(16, 15), complex(18, 17), complex(20, 19),
	}

	got := shiftAmplitudes(amplitudes, 12, 8000)

	want := []complex128{
		complex(1, 2), 0, complex(3, 4), 0, complex(5, 6),
		0, complex(7, 8), 0, complex(10, 9), 0,
	}
	requireComplexSlice(t, got, want)
}

func TestShiftAmplitudesByOctaveDown(t *testing.T) {
	amplitudes := []complex128{
		complex(1, 2), complex(3, 4), complex(5, 6), complex(7, 8), complex(10, 9),
		complex(12, 11), complex(14, 13), complex(16, 15), complex(18, 17), complex(20, 19),
	}

	got := shiftAmplitudes(amplitudes, -12, 8000)

	want := []complex128{
		complex(1, 2), complex(5, 6), complex(10, 9), complex(14, 13), complex(18, 17),
		0, 0, 0, 0, 0,
	}
	requireComplexSlice(t, got, want)
}

func TestShiftAmplitudesByZeroIsIdentity(t *testing.T) {
	amplitudes := []complex128{
		complex(1, 2), complex(3, 4), complex(5, 6), complex(7, 8), complex(10, 9),
		complex(12, 11), complex(14, 13), complex(16, 15), complex(18, 17), complex(20, 19),
	}

	got := shiftAmplitudes(amplitudes, 0, 8000)

	requireComplexSlice(t, got, amplitudes)
}

func TestBasicPreservesSignalLength(t *testing.T) {
	signal := make([]float64, 64)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 64)
	}

	out, err := Basic(signal, 3, 44100)
	if err != nil {
		t.Fatalf("Basic() error = %v", err)
	}

	if len(out) != len(signal) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(signal))
	}
}

func requireComplexSlice(t *testing.T, got, want []complex128) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
