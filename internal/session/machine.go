// Package session implements the NotStarted / Playing / Ended lifecycle of a
// run: restarts, the restart lock, best-score bookkeeping and the music and
// storage side effects that go with each transition.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyflap/internal/collision"
	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/flyer"
	"github.com/vovakirdan/skyflap/internal/obstacles"
	"github.com/vovakirdan/skyflap/internal/sanitize"
	"github.com/vovakirdan/skyflap/internal/viewport"
)

// DefaultName is shown and submitted when the player has no usable name.
const DefaultName = "Anonymous"

// DefaultRestartCooldown is how long a restart is refused after a run ends.
const DefaultRestartCooldown = 750 * time.Millisecond

// Options configures a Machine. Nil collaborators are replaced with no-ops.
type Options struct {
	Physics         flyer.Physics
	Tuning          obstacles.Tuning
	Seed            int64
	RestartCooldown time.Duration // Zero means DefaultRestartCooldown

	Name      string // Raw display name; sanitized on use
	BestScore int    // Previously persisted best

	Audio  Audio
	Scores ScoreKeeper
	Board  Leaderboard
	Runs   RunRecorder
	Logger *log.Logger
}

// Machine owns one session's state. It is not safe for concurrent use; the
// front end drives it from a single goroutine.
type Machine struct {
	state    State
	deadline time.Duration // Restart lock expiry of the last End
	started  time.Duration

	score   int
	best    int
	newBest bool
	ticks   int
	name    string
	notice  string
	cause   collision.Cause

	params  viewport.Params
	physics flyer.Physics
	flyer   flyer.Flyer
	stream  *obstacles.Stream

	cooldown time.Duration
	audio    Audio
	scores   ScoreKeeper
	board    Leaderboard
	runs     RunRecorder
	logger   *log.Logger
}

// New creates a machine in NotStarted with the flyer at the viewport origin.
func New(p viewport.Params, opts Options) *Machine {
	if opts.RestartCooldown <= 0 {
		opts.RestartCooldown = DefaultRestartCooldown
	}
	if opts.Audio == nil {
		opts.Audio = NopAudio{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := &Machine{
		state:    NotStarted,
		best:     max(opts.BestScore, 0),
		name:     sanitize.NameOr(opts.Name, DefaultName),
		params:   p,
		physics:  opts.Physics,
		stream:   obstacles.NewStream(opts.Seed, opts.Tuning),
		cooldown: opts.RestartCooldown,
		audio:    opts.Audio,
		scores:   opts.Scores,
		board:    opts.Board,
		runs:     opts.Runs,
		logger:   opts.Logger,
	}
	m.flyer.Place(p)
	return m
}

// Start begins a new run. It is accepted from NotStarted, or from Ended once
// the restart lock has expired, and reports whether it was accepted.
func (m *Machine) Start(now time.Duration) bool {
	switch m.state {
	case Playing:
		return false
	case Ended:
		if m.RestartLocked(now) {
			return false
		}
	}

	m.state = Playing
	m.started = now
	m.score = 0
	m.ticks = 0
	m.newBest = false
	m.notice = ""
	m.cause = collision.CauseNone
	m.stream.Reset()
	m.flyer.Place(m.params)

	if !m.audio.Playing() {
		m.audio.Rewind()
		if err := m.audio.Play(); err != nil {
			m.logger.Warn("music playback failed", "err", err)
			m.notice = "music unavailable"
		}
	}

	m.logger.Debug("run started", "name", m.name, "width", m.params.Width, "height", m.params.Height)
	return true
}

// End finishes the running session and arms the restart lock. It is only
// accepted from Playing.
func (m *Machine) End(now time.Duration) bool {
	if m.state != Playing {
		return false
	}

	m.state = Ended
	m.deadline = now + m.cooldown

	m.audio.Pause()
	m.audio.Rewind()

	duration := max(now-m.started, 0)
	if m.runs != nil {
		if err := m.runs.RecordRun(m.score, duration); err != nil {
			m.logger.Error("record run failed", "score", m.score, "err", err)
			m.notice = "run history not saved"
		}
	}

	if m.score > m.best {
		m.best = m.score
		m.newBest = true
		m.saveBest()
	}

	m.logger.Info("run ended", "name", m.name, "score", m.score, "best", m.best,
		"cause", m.cause, "ticks", m.ticks, "duration", duration)
	return true
}

// Crash ends the session, remembering what caused it.
func (m *Machine) Crash(now time.Duration, cause collision.Cause) bool {
	if m.state != Playing {
		return false
	}
	m.cause = cause
	return m.End(now)
}

func (m *Machine) saveBest() {
	if m.scores != nil {
		if err := m.scores.SaveBestScore(m.best); err != nil {
			m.logger.Error("save best score failed", "score", m.best, "err", err)
			m.notice = "best score not saved"
		}
	}
	if m.board != nil {
		if err := m.board.Submit(m.name, m.best); err != nil {
			m.logger.Error("leaderboard submit failed", "name", m.name, "score", m.best, "err", err)
			m.notice = "leaderboard unavailable"
		}
	}
}

// HandleInput routes a semantic action according to the current state.
// It reports whether the action changed anything.
func (m *Machine) HandleInput(action core.Action, now time.Duration) bool {
	switch m.state {
	case NotStarted, Ended:
		if action == core.ActionJumpOrStart || action == core.ActionRestart {
			return m.Start(now)
		}
	case Playing:
		if action == core.ActionJumpOrStart {
			return m.flyer.Jump(m.physics)
		}
	}
	return false
}

// RestartLocked reports whether a restart would be refused at now.
func (m *Machine) RestartLocked(now time.Duration) bool {
	return m.state == Ended && now < m.deadline
}

// LockDeadline returns when the current restart lock expires. Only
// meaningful while Ended.
func (m *Machine) LockDeadline() time.Duration {
	return m.deadline
}

// Resize swaps in new viewport parameters. Before the first run the flyer is
// re-placed at the new origin; afterwards it keeps its height.
func (m *Machine) Resize(p viewport.Params) {
	m.params = p
	if m.state == NotStarted {
		m.flyer.Place(p)
		return
	}
	m.flyer.Resize(p)
}

// SetName sanitizes and stores the display name, returning what was kept.
func (m *Machine) SetName(raw string) string {
	m.name = sanitize.NameOr(raw, DefaultName)
	return m.name
}

// Advance counts a simulated tick and adds newly scored obstacles.
func (m *Machine) Advance(scored int) {
	m.ticks++
	m.score += max(scored, 0)
}

// Note replaces the notice shown to the player.
func (m *Machine) Note(msg string) {
	m.notice = msg
}

func (m *Machine) State() State              { return m.state }
func (m *Machine) Score() int                { return m.score }
func (m *Machine) Best() int                 { return m.best }
func (m *Machine) Ticks() int                { return m.ticks }
func (m *Machine) Name() string              { return m.name }
func (m *Machine) Params() viewport.Params   { return m.params }
func (m *Machine) Physics() flyer.Physics    { return m.physics }
func (m *Machine) Flyer() *flyer.Flyer       { return &m.flyer }
func (m *Machine) Stream() *obstacles.Stream { return m.stream }

// Snapshot copies everything a renderer needs.
func (m *Machine) Snapshot(now time.Duration) Snapshot {
	locked := m.RestartLocked(now)
	var remaining time.Duration
	if locked {
		remaining = m.deadline - now
	}

	items := m.stream.Items()
	obs := make([]obstacles.Obstacle, len(items))
	copy(obs, items)

	return Snapshot{
		State:         m.state,
		RestartLocked: locked,
		LockRemaining: remaining,
		Score:         m.score,
		Best:          m.best,
		NewBest:       m.newBest,
		Ticks:         m.ticks,
		Name:          m.name,
		Notice:        m.notice,
		Cause:         m.cause,
		Params:        m.params,
		Flyer:         m.flyer,
		Obstacles:     obs,
	}
}
