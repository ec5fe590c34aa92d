// Package orchestrator wires the DSP packages into the two operating modes
// described by the command-line tool: static file-to-file transposition
// and real-time capture/transpose/playback.
package orchestrator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/pitchtranspose/dsp/pitchdetect"
	"github.com/cwbudde/pitchtranspose/dsp/shifter"
	"github.com/cwbudde/pitchtranspose/dsp/vocoder"
	"github.com/cwbudde/pitchtranspose/internal/appconfig"
	"github.com/cwbudde/pitchtranspose/internal/audio"
)

// ErrNoNearestNote is returned when autotune mode cannot find a fundamental
// frequency to lock onto.
var ErrNoNearestNote = errors.New("orchestrator: could not find nearest note")

// BasicStatic reads inPath, shifts it by shift semitones, and writes the
// result to appconfig.OutputDir/outFilename at the source's bit depth.
func BasicStatic(inPath, outFilename string, shift int) error {
	signal, err := audio.DecodeWAV(inPath)
	if err != nil {
		return fmt.Errorf("orchestrator: %w", err)
	}

	transposed, err := shifter.Basic(signal.Samples, shift, float64(signal.SampleRate))
	if err != nil {
		return fmt.Errorf("orchestrator: %w", err)
	}

	return writeStaticOutput(outFilename, signal, transposed)
}

// PhaseVocoderStatic reads inPath, autotunes it to the nearest twelve-TET
// note using a phase vocoder with the given frame size and analysis hop,
// and writes the result to appconfig.OutputDir/outFilename at the source's
// bit depth.
func PhaseVocoderStatic(inPath, outFilename string, frameSize, hopA int) error {
	signal, err := audio.DecodeWAV(inPath)
	if err != nil {
		return fmt.Errorf("orchestrator: %w", err)
	}

	scale, err := pitchdetect.ClosestScaleFactor(signal.Samples, float64(signal.SampleRate))
	if err != nil {
		return fmt.Errorf("orchestrator: %w: %w", ErrNoNearestNote, err)
	}

	transposed, err := vocoder.Process(signal.Samples, frameSize, hopA, float64(signal.SampleRate), scale)
	if err != nil {
		return fmt.Errorf("orchestrator: %w", err)
	}

	return writeStaticOutput(outFilename, signal, transposed)
}

func writeStaticOutput(outFilename string, source audio.Signal, transposed []float64) error {
	out := audio.Signal{
		Samples:    transposed,
		SampleRate: source.SampleRate,
		BitDepth:   source.BitDepth,
	}

	if err := os.MkdirAll(appconfig.OutputDir, 0o755); err != nil {
		return fmt.Errorf("orchestrator: creating output directory: %w", err)
	}

	path := filepath.Join(appconfig.OutputDir, outFilename)

	if err := audio.EncodeWAV(path, out); err != nil {
		return fmt.Errorf("orchestrator: %w", err)
	}

	return nil
}
