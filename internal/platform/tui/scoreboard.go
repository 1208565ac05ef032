package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyflap/internal/storage"
)

var errNoStore = errors.New("no score database")

// ScoreSource supplies leaderboard rows.
type ScoreSource interface {
	FetchTop(limit int) ([]storage.LeaderboardEntry, error)
}

// Scoreboard is the leaderboard overlay.
type Scoreboard struct {
	entries []storage.LeaderboardEntry
	err     error
	table   table.Model
	width   int
	height  int
}

// LoadScoreboard fetches the top entries from src. A nil source or a failed
// query yields an overlay that explains the problem.
func LoadScoreboard(src ScoreSource, limit, width, height int) Scoreboard {
	b := Scoreboard{width: width, height: height}
	if src == nil {
		b.err = errNoStore
	} else {
		b.entries, b.err = src.FetchTop(limit)
	}
	b.table = b.createTable()
	return b
}

// createTable creates the table with columns sized to the terminal.
func (b Scoreboard) createTable() table.Model {
	nameWidth := 20
	if b.width > 0 {
		nameWidth = min(nameWidth, max(b.width-30, 8))
	}
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: nameWidth},
		{Title: "Score", Width: 8},
	}

	rows := make([]table.Row, len(b.entries))
	for i, e := range b.entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
		}
	}

	height := len(rows) + 1
	if b.height > 8 {
		height = min(height, b.height-8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Update passes scrolling keys to the table.
func (b Scoreboard) Update(msg tea.Msg) (Scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// Len returns the number of loaded entries.
func (b Scoreboard) Len() int {
	return len(b.entries)
}

// View renders the overlay centred in the terminal.
func (b Scoreboard) View() string {
	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	sb.WriteString(titleStyle.Render("LEADERBOARD"))
	sb.WriteString("\n\n")

	switch {
	case b.err != nil:
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		sb.WriteString(errStyle.Render("Leaderboard unavailable: " + b.err.Error()))
	case len(b.entries) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
		sb.WriteString(emptyStyle.Render("No scores submitted yet.\nSet a best score to get on the board!"))
	default:
		sb.WriteString(b.table.View())
	}

	sb.WriteString("\n\n")
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sb.WriteString(hintStyle.Render("l/esc: back"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(sb.String())

	if b.width <= 0 || b.height <= 0 {
		return box
	}
	return lipgloss.Place(b.width, b.height, lipgloss.Center, lipgloss.Center, box)
}
