package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/session"
	"github.com/vovakirdan/skyflap/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(Options{
		Config:    config.DefaultConfig(),
		Seed:      7,
		ProfileID: "local",
		Store:     store,
		Width:     80,
		Height:    32,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestModelPlayfieldSize(t *testing.T) {
	m := newTestModel(t, nil)
	m.Init()

	p := m.driver.Machine().Params()
	// 80 columns x 30 playfield rows at 10x20 pixels per cell.
	if p.Width != 800 || p.Height != 600 {
		t.Errorf("expected 800x600 playfield, got %vx%v", p.Width, p.Height)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 22})
	p = m.driver.Machine().Params()
	if p.Width != 1000 || p.Height != 400 {
		t.Errorf("expected 1000x400 after resize, got %vx%v", p.Width, p.Height)
	}
}

func TestModelStartAndTick(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, spaceKey)
	if m.Snapshot().State != session.Playing {
		t.Fatalf("space should start the run, got %v", m.Snapshot().State)
	}
	if cmd == nil || !m.ticking {
		t.Fatal("starting a run should arm the tick loop")
	}

	// A second press flaps; it must not arm a second loop.
	m, cmd = update(t, m, spaceKey)
	if cmd != nil {
		t.Error("flap while ticking must not return another tick")
	}

	m, cmd = update(t, m, TickMsg(m.origin.Add(16*time.Millisecond)))
	if cmd == nil {
		t.Error("tick while playing should re-arm")
	}
	if m.Snapshot().Ticks != 1 {
		t.Errorf("expected 1 tick, got %d", m.Snapshot().Ticks)
	}
}

func TestModelStopsTickingAfterCrash(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, spaceKey)

	var cmd tea.Cmd
	at := m.origin
	for i := 0; i < 500 && m.Snapshot().State == session.Playing; i++ {
		at = at.Add(16 * time.Millisecond)
		m, cmd = update(t, m, TickMsg(at))
	}

	if m.Snapshot().State != session.Ended {
		t.Fatalf("free fall should end the run, got %v", m.Snapshot().State)
	}
	if m.ticking {
		t.Error("tick loop should stop after the run ends")
	}
	if cmd == nil {
		t.Error("expected a countdown redraw to be scheduled")
	}

	// The crash happened ahead of the wall clock, so the lock still holds
	// and each countdown redraw schedules the next one.
	m, cmd = update(t, m, countdownMsg{})
	if cmd == nil {
		t.Error("countdown should continue while the restart lock holds")
	}

	// Input during the lock is ignored.
	m, _ = update(t, m, spaceKey)
	if m.Snapshot().State != session.Ended {
		t.Error("restart accepted during the lock")
	}
}

func TestModelMouseStarts(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Snapshot().State != session.Playing || cmd == nil {
		t.Error("left click should start the run")
	}
}

func TestModelNameEditing(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m, _ = update(t, m, runeKey('n'))
	if m.name == nil {
		t.Fatal("n should open the name editor")
	}

	// Clear the pre-filled default, then type.
	for range session.DefaultName {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	for _, r := range "<b>Kit</b>" {
		m, _ = update(t, m, runeKey(r))
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.name != nil {
		t.Error("enter should close the editor")
	}
	if got := m.Snapshot().Name; got != "Kit" {
		t.Errorf("expected sanitized name Kit, got %q", got)
	}
	if p, _ := store.Profile("local"); p.Name != "Kit" {
		t.Errorf("expected stored name Kit, got %q", p.Name)
	}
}

func TestModelNameEditingCancel(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, runeKey('n'))
	m, _ = update(t, m, runeKey('x'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.name != nil {
		t.Error("esc should close the editor")
	}
	if m.Snapshot().Name != session.DefaultName {
		t.Errorf("cancel must keep the name, got %q", m.Snapshot().Name)
	}
}

func TestModelNameKeyIgnoredWhilePlaying(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, spaceKey)
	m, _ = update(t, m, runeKey('n'))
	if m.name != nil {
		t.Error("name editor must not open mid-run")
	}
}

func TestModelLeaderboardOverlay(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.Submit("ada", 12)

	m := newTestModel(t, store)
	m, _ = update(t, m, runeKey('l'))
	if m.board == nil || m.board.Len() != 1 {
		t.Fatal("l should open the leaderboard with one entry")
	}
	if !strings.Contains(m.View(), "LEADERBOARD") {
		t.Error("expected leaderboard view")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.board != nil {
		t.Error("esc should close the leaderboard")
	}
}

func TestModelLeaderboardWithoutStore(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, runeKey('l'))
	if m.board == nil {
		t.Fatal("expected overlay even without a store")
	}
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("expected an unavailable message")
	}
}

func TestModelNewBestPersisted(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m, _ = update(t, m, spaceKey)
	machine := m.driver.Machine()
	machine.Advance(3)
	machine.End(m.now())

	if p, _ := store.Profile("local"); p.BestScore != 3 {
		t.Errorf("expected stored best 3, got %d", p.BestScore)
	}
	top, _ := store.FetchTop(10)
	if len(top) != 1 || top[0].Name != session.DefaultName || top[0].Score != 3 {
		t.Errorf("unexpected leaderboard: %v", top)
	}
	if st, _ := store.Stats("local"); st.Runs != 1 {
		t.Errorf("expected one recorded run, got %d", st.Runs)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)
	m.Init()
	view := m.View()
	if !strings.Contains(view, "SKYFLAP") {
		t.Error("expected title banner before the first run")
	}
	if !strings.Contains(view, "SCORE 0") {
		t.Error("expected HUD")
	}
}
