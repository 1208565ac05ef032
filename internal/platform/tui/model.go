package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/engine"
	"github.com/vovakirdan/skyflap/internal/session"
	"github.com/vovakirdan/skyflap/internal/storage"
)

// DefaultFPS is the tick rate used when none is configured.
const DefaultFPS = 60

// Rows reserved outside the playfield: the HUD on top, help at the bottom.
const (
	hudRows  = 1
	helpRows = 1
)

// Options configures a terminal game.
type Options struct {
	Config    config.Config
	FPS       int
	Seed      int64
	ProfileID string
	Store     *storage.Store // May be nil
	Audio     session.Audio  // May be nil
	Logger    *log.Logger    // May be nil
	Width     int            // Initial terminal size
	Height    int
}

// Model is the Bubble Tea model for the game.
type Model struct {
	driver *engine.Driver
	screen *core.Screen
	layout Layout
	keys   KeyMap
	help   help.Model

	store     *storage.Store
	profileID string
	boardSize int
	fps       int
	logger    *log.Logger

	origin  time.Time
	width   int
	height  int
	ticking bool

	board    *Scoreboard
	name     *NameInput
	quitting bool
}

// NewModel creates a new Bubble Tea model. The stored profile, if any,
// provides the starting name and best score.
func NewModel(opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	setup := engine.Setup{
		Config: opts.Config,
		Seed:   opts.Seed,
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

	cellW := float64(opts.Config.Terminal.CellWidth)
	cellH := float64(opts.Config.Terminal.CellHeight)
	if cellW <= 0 || cellH <= 0 {
		cellW, cellH = 10, 20
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		driver:    engine.NewDriver(setup),
		screen:    core.NewScreen(0, 0),
		layout:    Layout{CellW: cellW, CellH: cellH, Top: hudRows},
		keys:      DefaultKeyMap(),
		help:      h,
		store:     opts.Store,
		profileID: opts.ProfileID,
		boardSize: opts.Config.Session.LeaderboardSize,
		fps:       opts.FPS,
		logger:    opts.Logger,
		origin:    time.Now(),
	}
	m.resize(opts.Width, opts.Height)
	m.driver.Tick(0)
	return m
}

// now returns the simulation clock: time since the model was created.
func (m Model) now() time.Duration {
	return time.Since(m.origin)
}

// Init implements tea.Model. Ticking starts with the first run.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.name != nil || m.board != nil {
			return m, nil
		}
		return m.handleAction(MapMouse(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case countdownMsg:
		return m, m.nextCountdown(m.now())
	}

	if m.name != nil {
		next, cmd := m.name.Update(msg)
		m.name = &next
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.name != nil {
		return m.handleNameKey(msg)
	}

	if m.board != nil {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Leaderboard), msg.Type == tea.KeyEsc:
			m.board = nil
			return m, nil
		}
		next, cmd := m.board.Update(msg)
		m.board = &next
		return m, cmd
	}

	idle := m.driver.Machine().State() != session.Playing

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case idle && key.Matches(msg, m.keys.Name):
		input := NewNameInput(m.driver.Machine().Name())
		m.name = &input
		return m, textinput.Blink

	case idle && key.Matches(msg, m.keys.Leaderboard):
		board := LoadScoreboard(m.scoreSource(), m.boardSize, m.width, m.height)
		m.board = &board
		return m, nil
	}

	return m.handleAction(m.keys.MapKey(msg))
}

// scoreSource avoids handing a typed nil store to the scoreboard.
func (m Model) scoreSource() ScoreSource {
	if m.store == nil {
		return nil
	}
	return m.store
}

// handleNameKey edits, commits or cancels the display name.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.name = nil
		return m, nil

	case tea.KeyEnter:
		machine := m.driver.Machine()
		name := machine.SetName(m.name.Value())
		m.name = nil
		if m.store != nil {
			if _, err := m.store.SaveName(m.profileID, name); err != nil {
				m.logger.Error("save name failed", "profile", m.profileID, "err", err)
				machine.Note("name not saved")
			}
		}
		m.logger.Info("display name changed", "profile", m.profileID, "name", name)
		return m, nil
	}

	next, cmd := m.name.Update(msg)
	m.name = &next
	return m, cmd
}

// handleAction forwards a game action and starts ticking when a run begins.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	if action == core.ActionNone {
		return m, nil
	}
	m.driver.Input(action, m.now())

	if !m.ticking && m.driver.Machine().State() == session.Playing {
		m.ticking = true
		return m, tickCmd(m.fps)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	// Without a running tick loop nobody else applies the new viewport.
	if !m.ticking {
		m.driver.Tick(m.now())
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, hudRows+helpRows+1)
	m.screen.Resize(m.width, m.height-helpRows)

	rows := m.height - hudRows - helpRows
	m.driver.Resize(float64(m.width)*m.layout.CellW, float64(rows)*m.layout.CellH)
}

// handleTick runs one simulation tick and re-arms the loop while playing.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	now := t.Sub(m.origin)
	if m.driver.Tick(now) {
		return m, tickCmd(m.fps)
	}

	m.ticking = false
	return m, m.nextCountdown(now)
}

// nextCountdown keeps redrawing the game-over banner until the restart
// lock has expired. It returns nil once there is nothing left to count.
func (m Model) nextCountdown(now time.Duration) tea.Cmd {
	machine := m.driver.Machine()
	if machine.State() != session.Ended {
		return nil
	}
	remaining := machine.LockDeadline() - now
	if remaining < 0 {
		return nil
	}
	return countdownCmd(remaining)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawScene(m.screen, m.driver.Machine().Snapshot(m.now()), m.layout)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".skyflap", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("skyflap_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Snapshot returns the current session state.
func (m Model) Snapshot() session.Snapshot {
	return m.driver.Machine().Snapshot(m.now())
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.name != nil {
		return m.name.View(m.width, m.height)
	}
	if m.board != nil {
		return m.board.View()
	}

	DrawScene(m.screen, m.Snapshot(), m.layout)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap like taps
	)

	_, err := p.Run()
	return err
}
