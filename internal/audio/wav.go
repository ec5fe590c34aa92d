// Package audio handles waveform I/O for the pitch transposer: decoding and
// encoding WAV files, and driving live capture/playback devices.
package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ErrUnsupportedBitDepth is returned when a WAV file's bit depth is not one
// of 8, 16, 24 (integer PCM) or 32 (IEEE float).
var ErrUnsupportedBitDepth = errors.New("audio: unsupported bit depth")

// Signal is a monophonic sequence of samples at a fixed sampling rate.
// Amplitudes are kept in the source's raw integer range (not normalized to
// [-1, 1]) so that re-encoding at the original bit depth round-trips by a
// simple narrowing cast, matching the reference implementation.
type Signal struct {
	Samples    []float64
	SampleRate int
	BitDepth   int
}

// DecodeWAV reads every sample from the WAV file at path, down-mixing
// multi-channel files to mono by arithmetic mean across channels.
func DecodeWAV(path string) (Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return Signal{}, fmt.Errorf("audio: opening %q: %w", path, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return Signal{}, fmt.Errorf("audio: %q is not a valid WAV file", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return Signal{}, fmt.Errorf("audio: reading PCM data from %q: %w", path, err)
	}

	numChans := buf.Format.NumChannels
	if numChans < 1 {
		numChans = 1
	}

	samples := downmix(buf, numChans)

	return Signal{
		Samples:    samples,
		SampleRate: buf.Format.SampleRate,
		BitDepth:   int(decoder.BitDepth),
	}, nil
}

func downmix(buf *audio.IntBuffer, numChans int) []float64 {
	n := len(buf.Data) / numChans
	samples := make([]float64, n)

	for i := 0; i < n; i++ {
		sum := 0.0
		for c := 0; c < numChans; c++ {
			sum += float64(buf.Data[i*numChans+c])
		}

		samples[i] = sum / float64(numChans)
	}

	return samples
}

// EncodeWAV writes signal to path as a mono WAV file at the given bit depth.
// Samples are narrowing-cast (truncated, not rounded) to the target
// integer or float representation, matching the reference implementation.
func EncodeWAV(path string, signal Signal) error {
	var data []byte

	switch signal.BitDepth {
	case 8:
		data = encodeUint8(signal.Samples)
	case 16:
		data = encodeInt16(signal.Samples)
	case 24:
		data = encodeInt24(signal.Samples)
	case 32:
		data = encodeFloat32(signal.Samples)
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, signal.BitDepth)
	}

	header := buildHeader(signal.SampleRate, signal.BitDepth, len(data))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audio: creating %q: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(header); err != nil {
		return fmt.Errorf("audio: writing header to %q: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("audio: writing samples to %q: %w", path, err)
	}

	return nil
}

func buildHeader(sampleRate, bitDepth, dataSize int) []byte {
	blockAlign := bitDepth / 8
	byteRate := sampleRate * blockAlign
	audioFormat := uint16(1) // PCM

	if bitDepth == 32 {
		audioFormat = 3 // IEEE float
	}

	buf := &bytes.Buffer{}
	buf.Grow(44)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, audioFormat)
	binary.Write(buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bitDepth))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))

	return buf.Bytes()
}

// clampToRange saturates s to [min, max], matching Rust's saturating
// float-to-integer `as` cast (NaN saturates to 0, the same as min clamping
// a value that compares false against both bounds... so NaN is handled
// explicitly).
func clampToRange(s, min, max float64) float64 {
	if math.IsNaN(s) {
		return 0
	}

	if s < min {
		return min
	}

	if s > max {
		return max
	}

	return s
}

func encodeUint8(samples []float64) []byte {
	out := make([]byte, len(samples))
	for i, s := range samples {
		out[i] = byte(uint8(clampToRange(s, 0, 255)))
	}

	return out
}

func encodeInt16(samples []float64) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		v := int16(clampToRange(s, math.MinInt16, math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*2:], uint16(v))
	}

	return out
}

const (
	minInt24 = -8388608
	maxInt24 = 8388607
)

func encodeInt24(samples []float64) []byte {
	out := make([]byte, len(samples)*3)
	for i, s := range samples {
		v := int32(clampToRange(s, minInt24, maxInt24))
		out[i*3+0] = byte(v)
		out[i*3+1] = byte(v >> 8)
		out[i*3+2] = byte(v >> 16)
	}

	return out
}

func encodeFloat32(samples []float64) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(float32(s)))
	}

	return out
}
