package orchestrator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/pitchtranspose/internal/audio"
	"github.com/cwbudde/pitchtranspose/internal/testutil"
)

func withOutputDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}

	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}

	t.Cleanup(func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restoring cwd: %v", err)
		}
	})

	return dir
}

func TestBasicStaticWritesOutputAtOriginalBitDepth(t *testing.T) {
	dir := withOutputDir(t)

	inPath := filepath.Join(dir, "in.wav")
	samples := testutil.DeterministicSine(220, 8000, 4000, 256)

	if err := audio.EncodeWAV(inPath, audio.Signal{Samples: samples, SampleRate: 8000, BitDepth: 16}); err != nil {
		t.Fatalf("EncodeWAV() error = %v", err)
	}

	if err := BasicStatic(inPath, "out.wav", 12); err != nil {
		t.Fatalf("BasicStatic() error = %v", err)
	}

	got, err := audio.DecodeWAV(filepath.Join(dir, "resources", "outputs", "out.wav"))
	if err != nil {
		t.Fatalf("DecodeWAV() on produced output error = %v", err)
	}

	if got.BitDepth != 16 {
		t.Fatalf("BitDepth = %d, want 16", got.BitDepth)
	}

	if len(got.Samples) != len(samples) {
		t.Fatalf("len(Samples) = %d, want %d", len(got.Samples), len(samples))
	}
}

func TestBasicStaticRejectsUnreadableInput(t *testing.T) {
	withOutputDir(t)

	if err := BasicStatic("does-not-exist.wav", "out.wav", 0); err == nil {
		t.Fatal("expected error for missing input file")
	}
}
