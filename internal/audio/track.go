package audio

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gopxl/beep"
)

// Note is one step of a melody. Pitch is a MIDI note number; 0 is a rest.
type Note struct {
	Pitch int
	Beats float64
}

// Track synthesizes a melody and loops it forever. It is positioned in
// samples so the music can be rewound.
type Track struct {
	rate   beep.SampleRate
	notes  []Note
	starts []int // First sample of each note
	length int   // Samples in one pass of the melody
	pos    int
}

// NewTrack lays out notes at the given tempo.
func NewTrack(rate beep.SampleRate, bpm float64, notes []Note) *Track {
	if bpm <= 0 {
		bpm = 120
	}
	beat := 60.0 / bpm

	t := &Track{rate: rate, notes: notes, starts: make([]int, len(notes))}
	for i, n := range notes {
		t.starts[i] = t.length
		t.length += max(rate.N(secondsToDuration(n.Beats*beat)), 1)
	}
	return t
}

// Stream fills samples with the melody, wrapping to the start at the end.
func (t *Track) Stream(samples [][2]float64) (n int, ok bool) {
	if t.length == 0 {
		return 0, false
	}
	for i := range samples {
		v := t.sampleAt(t.pos)
		samples[i][0] = v
		samples[i][1] = v
		t.pos = (t.pos + 1) % t.length
	}
	return len(samples), true
}

func (t *Track) Err() error { return nil }

// Len returns the number of samples in one pass of the melody.
func (t *Track) Len() int { return t.length }

// Position returns the current sample within the melody.
func (t *Track) Position() int { return t.pos }

// Seek moves to sample p of the melody.
func (t *Track) Seek(p int) error {
	if p < 0 || p > t.length {
		return fmt.Errorf("audio: seek %d out of range [0, %d]", p, t.length)
	}
	t.pos = p % max(t.length, 1)
	return nil
}

// sampleAt renders one mono sample: a sine lead over a quiet square,
// shaped by a short attack and release so notes don't click.
func (t *Track) sampleAt(pos int) float64 {
	i := sort.Search(len(t.starts), func(i int) bool { return t.starts[i] > pos }) - 1
	if i < 0 {
		return 0
	}
	note := t.notes[i]
	if note.Pitch <= 0 {
		return 0
	}

	end := t.length
	if i+1 < len(t.starts) {
		end = t.starts[i+1]
	}
	local := pos - t.starts[i]
	span := end - t.starts[i]

	freq := midiToFreq(note.Pitch)
	phase := float64(local) * freq / float64(t.rate)
	phase -= math.Floor(phase)

	square := -1.0
	if phase < 0.5 {
		square = 1.0
	}
	v := 0.6*math.Sin(2*math.Pi*phase) + 0.15*square

	attack := t.rate.N(secondsToDuration(0.005))
	release := t.rate.N(secondsToDuration(0.03))
	env := 1.0
	if attack > 0 && local < attack {
		env = float64(local) / float64(attack)
	}
	if release > 0 && span-local < release {
		env = math.Min(env, float64(span-local)/float64(release))
	}

	return 0.3 * env * v
}

func midiToFreq(pitch int) float64 {
	return 440 * math.Pow(2, float64(pitch-69)/12)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
