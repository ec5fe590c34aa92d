package orchestrator

import (
	"context"
	"fmt"

	"github.com/cwbudde/pitchtranspose/dsp/pitchdetect"
	"github.com/cwbudde/pitchtranspose/dsp/shifter"
	"github.com/cwbudde/pitchtranspose/dsp/vocoder"
	"github.com/cwbudde/pitchtranspose/internal/applog"
	"github.com/cwbudde/pitchtranspose/internal/appconfig"
	"github.com/cwbudde/pitchtranspose/internal/audio"
)

// Transposer transforms a captured clip's samples before playback.
type Transposer func(samples []float64, sampleRate float64) ([]float64, error)

// BasicRealTime returns a Transposer that shifts by a fixed number of
// semitones.
func BasicRealTime(shift int) Transposer {
	return func(samples []float64, sampleRate float64) ([]float64, error) {
		return shifter.Basic(samples, shift, sampleRate)
	}
}

// PhaseVocoderRealTime returns a Transposer that runs the phase vocoder at
// the given frame size and analysis hop. When shift is nil, every clip is
// autotuned to the nearest twelve-TET note; otherwise *shift is used
// directly as the scale ratio (not as a number of semitones).
func PhaseVocoderRealTime(frameSize, hopA int, shift *float64) Transposer {
	return func(samples []float64, sampleRate float64) ([]float64, error) {
		scale := 1.0

		if shift != nil {
			scale = *shift
		} else {
			var err error

			scale, err = pitchdetect.ClosestScaleFactor(samples, sampleRate)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrNoNearestNote, err)
			}
		}

		return vocoder.Process(samples, frameSize, hopA, sampleRate, scale)
	}
}

// RunRealTime repeatedly captures a clip of appconfig.RealTimeClipDuration,
// transposes it with transpose, and plays it back, until ctx is canceled.
// A transposition failure for one clip is logged and skipped; capture and
// playback errors are fatal, since they indicate the audio device itself
// is unusable.
func RunRealTime(ctx context.Context, transpose Transposer) error {
	applog.Infof("%s", appconfig.StopBanner)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		applog.Status("Talk now")

		clip, err := audio.Capture(appconfig.RealTimeClipDuration)
		if err != nil {
			return fmt.Errorf("orchestrator: capture: %w", err)
		}

		transformed, err := transpose(clip.Samples, float64(clip.SampleRate))
		if err != nil {
			applog.Errorf("orchestrator: skipping clip: %v", err)
			continue
		}

		applog.Status("Listen...")

		out := audio.Clip{Samples: transformed, SampleRate: clip.SampleRate}
		playbackDropped, err := audio.Play(out, appconfig.RealTimeClipDuration)
		if err != nil {
			return fmt.Errorf("orchestrator: playback: %w", err)
		}

		applog.Infof("dropped frames: capture=%d playback=%d", clip.DroppedFrames, playbackDropped)
	}
}
