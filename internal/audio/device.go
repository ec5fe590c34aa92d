package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gordonklaus/portaudio"
)

// Clip is a captured or synthesized audio buffer ready for playback.
type Clip struct {
	Samples       []float64
	SampleRate    int
	DroppedFrames int64
}

// Capture records a mono clip of the given duration from the default input
// device. Callback frames arriving while the capture buffer is locked by
// the draining goroutine are dropped rather than blocking the audio
// callback; Clip.DroppedFrames reports how many.
func Capture(duration time.Duration) (Clip, error) {
	inParams, err := defaultInputParameters()
	if err != nil {
		return Clip{}, err
	}

	var (
		mu      sync.Mutex
		samples []float64
		dropped atomic.Int64
	)

	numChans := inParams.Channels

	stream, err := portaudio.OpenStream(inParams, func(in []float32) {
		if !mu.TryLock() {
			dropped.Add(1)
			return
		}
		defer mu.Unlock()

		for i := 0; i < len(in); i += numChans {
			samples = append(samples, float64(in[i]))
		}
	})
	if err != nil {
		return Clip{}, err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return Clip{}, err
	}

	time.Sleep(duration)

	if err := stream.Stop(); err != nil {
		return Clip{}, err
	}

	mu.Lock()
	defer mu.Unlock()

	return Clip{
		Samples:       samples,
		SampleRate:    int(inParams.SampleRate),
		DroppedFrames: dropped.Load(),
	}, nil
}

// Play streams clip to the default output device for duration, emitting
// the clip's mono samples on every output channel. Once the clip is
// exhausted, silence is emitted for the remainder of duration. Playback
// callbacks that arrive while the shared read cursor is locked emit
// silence instead of blocking, mirroring Capture's non-blocking policy;
// the returned count is how many callbacks were skipped that way.
func Play(clip Clip, duration time.Duration) (droppedFrames int64, err error) {
	outParams, err := defaultOutputParameters(float64(clip.SampleRate))
	if err != nil {
		return 0, err
	}

	var (
		mu      sync.Mutex
		pos     int
		dropped atomic.Int64
	)

	numChans := outParams.Channels

	stream, err := portaudio.OpenStream(outParams, func(out []float32) {
		locked := mu.TryLock()
		if locked {
			defer mu.Unlock()
		} else {
			dropped.Add(1)
		}

		for i := 0; i < len(out); i += numChans {
			var sample float32
			if locked && pos < len(clip.Samples) {
				sample = float32(clip.Samples[pos])
				pos++
			}

			for c := 0; c < numChans; c++ {
				out[i+c] = sample
			}
		}
	})
	if err != nil {
		return 0, err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return 0, err
	}

	time.Sleep(duration)

	if err := stream.Stop(); err != nil {
		return 0, err
	}

	return dropped.Load(), nil
}

func defaultInputParameters() (portaudio.StreamParameters, error) {
	dev, err := portaudio.DefaultInputDevice()
	if err != nil {
		return portaudio.StreamParameters{}, err
	}

	params := portaudio.LowLatencyParameters(dev, nil)

	return params, nil
}

func defaultOutputParameters(sampleRate float64) (portaudio.StreamParameters, error) {
	dev, err := portaudio.DefaultOutputDevice()
	if err != nil {
		return portaudio.StreamParameters{}, err
	}

	params := portaudio.LowLatencyParameters(nil, dev)
	if sampleRate > 0 {
		params.SampleRate = sampleRate
	}

	return params, nil
}
