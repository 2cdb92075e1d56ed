package audio

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// speakerBackend decodes and plays sounds in-process. It is the last
// preference since it waits for playback to finish regardless of the
// blocking flag (the process owns the audio stream), but it works
// without any external player installed.
type speakerBackend struct {
	mu          sync.Mutex
	initialized bool
	sampleRate  beep.SampleRate
}

func (s *speakerBackend) Name() string { return "speaker" }

// Available reports true: the decoder is pure Go and device failures
// surface as a soft Play failure instead.
func (s *speakerBackend) Available() bool { return true }

func (s *speakerBackend) Play(path string, opts PlayOptions) bool {
	streamer, format, err := decode(path)
	if err != nil {
		return false
	}
	defer streamer.Close()

	if err := s.ensureInitialized(format.SampleRate); err != nil {
		return false
	}

	var stream beep.Streamer = streamer
	if format.SampleRate != s.sampleRate {
		stream = beep.Resample(4, format.SampleRate, s.sampleRate, stream)
	}

	if opts.Volume < 1.0 {
		stream = &effects.Volume{
			Streamer: stream,
			Base:     2,
			Volume:   volumeToDecibels(opts.Volume),
			Silent:   opts.Volume == 0,
		}
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(stream, beep.Callback(func() { close(done) })))

	select {
	case <-done:
	case <-time.After(maxPlayDuration):
		// A stuck stream must not hang the hook.
	}
	return true
}

// maxPlayDuration bounds in-process playback of one sound.
const maxPlayDuration = 5 * time.Second

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, err
	}
	return streamer, format, nil
}

func (s *speakerBackend) ensureInitialized(sampleRate beep.SampleRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	bufferSize := sampleRate.N(time.Millisecond * 100)
	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return err
	}

	s.sampleRate = sampleRate
	s.initialized = true
	return nil
}

// volumeToDecibels converts linear volume (0-1) to decibels:
// 0.5 = -6dB, 0.25 = -12dB.
func volumeToDecibels(volume float64) float64 {
	if volume <= 0 {
		return -100
	}
	return 20 * math.Log10(volume)
}
