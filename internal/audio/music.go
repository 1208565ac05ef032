// Package audio plays the synthesized background music loop.
package audio

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// DefaultVolume is the linear music volume.
	DefaultVolume = 0.75

	tempo = 150
)

// ErrNotInitialized is returned by Play before Init succeeded.
var ErrNotInitialized = errors.New("audio: speaker not initialized")

// theme is a short chiptune loop in C major.
var theme = []Note{
	{72, 0.5}, {76, 0.5}, {79, 0.5}, {76, 0.5},
	{74, 0.5}, {77, 0.5}, {81, 0.5}, {77, 0.5},
	{72, 0.5}, {76, 0.5}, {79, 0.5}, {84, 0.5},
	{83, 1}, {79, 0.5}, {0, 0.5},
	{69, 0.5}, {72, 0.5}, {76, 0.5}, {72, 0.5},
	{71, 0.5}, {74, 0.5}, {79, 0.5}, {74, 0.5},
	{72, 0.5}, {76, 0.5}, {79, 0.5}, {76, 0.5},
	{72, 1.5}, {0, 0.5},
}

// Music is the background track. It satisfies session.Audio.
type Music struct {
	mu          sync.Mutex
	track       *Track
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	initialized bool
}

// NewMusic builds the music at the given linear volume (0 mutes).
func NewMusic(volume float64) *Music {
	track := NewTrack(sampleRate, tempo, theme)
	ctrl := &beep.Ctrl{Streamer: track, Paused: true}
	return &Music{
		track:  track,
		ctrl:   ctrl,
		volume: newVolume(ctrl, volume),
	}
}

// newVolume maps a linear volume onto beep's logarithmic scale.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Init opens the sound device and starts streaming (paused).
func (m *Music) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.volume)
	m.initialized = true
	return nil
}

// Close stops playback and releases the stream.
func (m *Music) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// Play resumes the music from its current position.
func (m *Music) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return ErrNotInitialized
	}
	speaker.Lock()
	m.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

// Pause stops the music, keeping its position.
func (m *Music) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.withSpeaker(func() { m.ctrl.Paused = true })
}

// Rewind moves the music back to the start.
func (m *Music) Rewind() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.withSpeaker(func() { m.track.Seek(0) }) //nolint:errcheck // 0 is always in range
}

// Playing reports whether the music is audible.
func (m *Music) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !m.ctrl.Paused
}

// withSpeaker runs fn while the speaker goroutine is held, or directly when
// no device was opened.
func (m *Music) withSpeaker(fn func()) {
	if m.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
