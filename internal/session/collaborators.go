package session

import "time"

// Audio is the background music the session starts and stops.
type Audio interface {
	Play() error
	Pause()
	Rewind()
	Playing() bool
}

// NopAudio is a silent Audio used when no sound device is available.
type NopAudio struct{}

func (NopAudio) Play() error   { return nil }
func (NopAudio) Pause()        {}
func (NopAudio) Rewind()       {}
func (NopAudio) Playing() bool { return false }

// ScoreKeeper persists the local best score.
type ScoreKeeper interface {
	SaveBestScore(score int) error
}

// Leaderboard receives new best scores under a display name.
type Leaderboard interface {
	Submit(name string, score int) error
}

// RunRecorder stores every finished run.
type RunRecorder interface {
	RecordRun(score int, duration time.Duration) error
}
