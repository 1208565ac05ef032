// Package gui runs the game in a desktop window with Ebitengine.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/engine"
	"github.com/vovakirdan/skyflap/internal/session"
	"github.com/vovakirdan/skyflap/internal/storage"
)

// Default window size.
const (
	DefaultWidth  = 480
	DefaultHeight = 720
)

// basicfont glyph metrics.
const (
	glyphW = 7
	lineH  = 16
)

var (
	colSky      = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	colObstacle = color.RGBA{R: 84, G: 180, B: 60, A: 255}
	colEdge     = color.RGBA{R: 40, G: 110, B: 30, A: 255}
	colFlyer    = color.RGBA{R: 250, G: 210, B: 60, A: 255}
	colCrashed  = color.RGBA{R: 220, G: 60, B: 50, A: 255}
	colPanel    = color.RGBA{R: 15, G: 23, B: 42, A: 220}
	colAccent   = color.RGBA{R: 56, G: 189, B: 248, A: 255}
	colNotice   = color.RGBA{R: 251, G: 146, B: 60, A: 255}
)

// Options configures a window game.
type Options struct {
	Config    config.Config
	Seed      int64
	ProfileID string
	Store     *storage.Store // May be nil
	Audio     session.Audio  // May be nil
	Logger    *log.Logger    // May be nil
}

// Game implements ebiten.Game. The window's logical size is the playfield.
type Game struct {
	driver *engine.Driver
	logger *log.Logger
	origin time.Time

	width, height int
	touchIDs      []ebiten.TouchID
}

// New builds the game and loads the stored profile, if any.
func New(opts Options) *Game {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	setup := engine.Setup{
		Config: opts.Config,
		Seed:   opts.Seed,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Audio:  opts.Audio,
		Logger: opts.Logger,
	}
	if opts.Store != nil {
		profile, err := opts.Store.Profile(opts.ProfileID)
		if err != nil {
			opts.Logger.Warn("could not load profile", "profile", opts.ProfileID, "err", err)
		}
		scores := opts.Store.ForProfile(opts.ProfileID)
		setup.Name = profile.Name
		setup.BestScore = profile.BestScore
		setup.Scores = scores
		setup.Runs = scores
		setup.Board = opts.Store
	}

	return &Game{
		driver: engine.NewDriver(setup),
		logger: opts.Logger,
		origin: time.Now(),
		width:  DefaultWidth,
		height: DefaultHeight,
	}
}

func (g *Game) now() time.Duration {
	return time.Since(g.origin)
}

// Update maps input to actions and runs one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	now := g.now()
	machine := g.driver.Machine()

	if action := g.action(); action != core.ActionNone {
		g.driver.Input(action, now)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) && machine.State() == session.Ended {
		g.copyScore(clipboard.WriteAll)
	}

	g.driver.Tick(now)
	return nil
}

// action reads this frame's input: keys, left click or a new touch.
func (g *Game) action() core.Action {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		return core.ActionJumpOrStart
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return core.ActionRestart
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		return core.ActionJumpOrStart
	}
	return core.ActionNone
}

// copyScore puts the last result on the clipboard.
func (g *Game) copyScore(write func(string) error) {
	snap := g.driver.Machine().Snapshot(g.now())
	if err := write(snap.ScoreLine()); err != nil {
		g.logger.Warn("clipboard unavailable", "err", err)
		g.driver.Machine().Note("clipboard unavailable")
		return
	}
	g.driver.Machine().Note("score copied")
}

// Layout uses the window size as the playfield size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.driver.Resize(float64(w), float64(h))
	}
	return w, h
}

// Draw paints the sky, obstacles, flyer and text.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.driver.Machine().Snapshot(g.now())
	screen.Fill(colSky)

	w := snap.Params.ObstacleWidth
	for _, o := range snap.Obstacles {
		for _, b := range []core.Box{o.TopBox(w), o.BottomBox(w, snap.Params.Height)} {
			if b.H <= 0 {
				continue
			}
			fillBox(screen, b, colObstacle)
			vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, colEdge, false)
		}
	}

	flyerCol := colFlyer
	if snap.State == session.Ended {
		flyerCol = colCrashed
	}
	fillBox(screen, snap.Flyer.Box(), flyerCol)

	g.drawHUD(screen, snap)
	g.drawBanner(screen, snap)
}

func fillBox(dst *ebiten.Image, b core.Box, c color.Color) {
	if b.W <= 0 || b.H <= 0 {
		return
	}
	vector.FillRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

func (g *Game) drawHUD(screen *ebiten.Image, snap session.Snapshot) {
	vector.FillRect(screen, 0, 0, float32(g.width), 24, colPanel, false)
	text.Draw(screen, fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best), basicfont.Face7x13, 8, 17, color.White)
	text.Draw(screen, snap.Name, basicfont.Face7x13, g.width-8-len(snap.Name)*glyphW, 17, colAccent)

	if snap.State == session.Playing && snap.Notice != "" {
		text.Draw(screen, snap.Notice, basicfont.Face7x13, (g.width-len(snap.Notice)*glyphW)/2, 40, colNotice)
	}
}

func (g *Game) drawBanner(screen *ebiten.Image, snap session.Snapshot) {
	lines := snap.Banner()
	if len(lines) == 0 {
		return
	}
	if snap.State == session.Ended && !snap.RestartLocked {
		lines = append(lines, "C: copy score")
	}

	width := 0
	for _, line := range lines {
		width = max(width, len(line)*glyphW)
	}
	boxW, boxH := width+40, len(lines)*lineH+24
	x0, y0 := (g.width-boxW)/2, (g.height-boxH)/2

	vector.FillRect(screen, float32(x0), float32(y0), float32(boxW), float32(boxH), colPanel, false)
	for i, line := range lines {
		c := color.Color(color.White)
		if i == 0 {
			c = colAccent
		}
		x := (g.width - len(line)*glyphW) / 2
		text.Draw(screen, line, basicfont.Face7x13, x, y0+24+i*lineH, c)
	}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	ebiten.SetWindowTitle("Skyflap")
	ebiten.SetWindowSize(DefaultWidth, DefaultHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(New(opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
