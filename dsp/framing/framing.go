// Package framing splits a signal into overlapping fixed-size frames and
// reassembles frames back into a signal by overlap-add.
package framing

import "fmt"

// Frame slices signal into (len(signal)-frameSize)/hop + 1 frames of length
// frameSize, where frame i covers signal[i*hop : i*hop+frameSize]. Any
// trailing samples that do not fill a whole frame are discarded. Returns an
// error if frameSize exceeds the signal length.
func Frame(signal []float64, frameSize, hop int) ([][]float64, error) {
	if frameSize > len(signal) {
		return nil, fmt.Errorf("framing: frame size %d exceeds signal length %d", frameSize, len(signal))
	}

	nbFrames := (len(signal)-frameSize)/hop + 1
	frames := make([][]float64, nbFrames)

	for i := 0; i < nbFrames; i++ {
		start := i * hop
		frame := make([]float64, frameSize)
		copy(frame, signal[start:start+frameSize])
		frames[i] = frame
	}

	return frames, nil
}

// OverlapAdd sums frames into a single signal of length
// len(frames[0]) + (len(frames)-1)*hop, placing frame i at offset i*hop and
// adding overlapping contributions together.
func OverlapAdd(frames [][]float64, hop int) []float64 {
	if len(frames) == 0 {
		return nil
	}

	flen := len(frames[0])
	signal := make([]float64, flen+(len(frames)-1)*hop)

	for i, frame := range frames {
		offset := i * hop
		for j, v := range frame {
			signal[offset+j] += v
		}
	}

	return signal
}
