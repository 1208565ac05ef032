package engine

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/flyer"
	"github.com/vovakirdan/skyflap/internal/obstacles"
	"github.com/vovakirdan/skyflap/internal/session"
	"github.com/vovakirdan/skyflap/internal/viewport"
)

// Setup gathers what a front end needs to build a driver. Nil collaborators
// are allowed.
type Setup struct {
	Config        config.Config
	Seed          int64
	Width, Height float64 // Initial playfield size in pixels

	Name      string
	BestScore int

	Audio  session.Audio
	Scores session.ScoreKeeper
	Board  session.Leaderboard
	Runs   session.RunRecorder
	Logger *log.Logger
}

// NewDriver builds a session from the config and wraps it in a driver.
func NewDriver(s Setup) *Driver {
	m := session.New(viewport.Compute(s.Width, s.Height), session.Options{
		Physics:         flyer.PhysicsFromConfig(s.Config.Physics),
		Tuning:          obstacles.TuningFromConfig(s.Config),
		Seed:            s.Seed,
		RestartCooldown: s.Config.Session.RestartCooldown(),
		Name:            s.Name,
		BestScore:       s.BestScore,
		Audio:           s.Audio,
		Scores:          s.Scores,
		Board:           s.Board,
		Runs:            s.Runs,
		Logger:          s.Logger,
	})
	return New(m)
}
