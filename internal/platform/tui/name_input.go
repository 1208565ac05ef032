package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyflap/internal/sanitize"
)

// NameInput is the display-name editor overlay.
type NameInput struct {
	input textinput.Model
}

// NewNameInput creates a focused editor pre-filled with current.
func NewNameInput(current string) NameInput {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = sanitize.MaxNameLength * 2
	ti.Width = sanitize.MaxNameLength + 2
	ti.SetValue(current)
	ti.Focus()
	return NameInput{input: ti}
}

// Update forwards editing keys to the text input.
func (n NameInput) Update(msg tea.Msg) (NameInput, tea.Cmd) {
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return n, cmd
}

// Value returns the raw, unsanitized text.
func (n NameInput) Value() string {
	return n.input.Value()
}

// View renders the editor centred in a width x height area.
func (n NameInput) View(width, height int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render("DISPLAY NAME")
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("enter: save  esc: cancel")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", n.input.View(), "", hint))

	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
