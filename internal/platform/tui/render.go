package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/session"
)

// Glyphs used on the playfield.
const (
	obstacleRune = '█'
	flyerRune    = '▓'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorFlyer:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorCrashed:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorName:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorNotice:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorFrame:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Layout maps simulation pixels onto terminal cells. Row 0 holds the HUD;
// the playfield starts at Top.
type Layout struct {
	CellW, CellH float64
	Top          int
}

// DrawScene paints the HUD, obstacles, flyer and banner for snap.
func DrawScene(s *core.Screen, snap session.Snapshot, l Layout) {
	s.Clear()

	drawHUD(s, snap)

	w := snap.Params.ObstacleWidth
	for _, o := range snap.Obstacles {
		for _, box := range []core.Box{o.TopBox(w), o.BottomBox(w, snap.Params.Height)} {
			if box.H <= 0 {
				continue
			}
			r := box.ToCells(l.CellW, l.CellH)
			r.Y += l.Top
			s.DrawRect(clipRows(r, l.Top, s.Height()), obstacleRune, core.ColorObstacle)
		}
	}

	f := snap.Flyer.Box().ToCells(l.CellW, l.CellH)
	f.Y += l.Top
	flyerColor := core.ColorFlyer
	if snap.State == session.Ended {
		flyerColor = core.ColorCrashed
	}
	s.DrawRect(clipRows(f, l.Top, s.Height()), flyerRune, flyerColor)

	drawBanner(s, snap.Banner())
}

// clipRows keeps r inside rows [top, bottom).
func clipRows(r core.Rect, top, bottom int) core.Rect {
	y0 := max(r.Y, top)
	y1 := min(r.Bottom(), bottom)
	if y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(r.X, y0, r.W, y1-y0)
}

func drawHUD(s *core.Screen, snap session.Snapshot) {
	left := fmt.Sprintf(" SCORE %d   BEST %d", snap.Score, snap.Best)
	s.DrawText(0, 0, left, core.ColorHUD)

	right := snap.Name + " "
	s.DrawText(s.Width()-len([]rune(right)), 0, right, core.ColorName)

	if snap.State == session.Playing && snap.Notice != "" {
		s.DrawTextCentered(0, snap.Notice, core.ColorNotice)
	}
}

func drawBanner(s *core.Screen, lines []string) {
	if len(lines) == 0 {
		return
	}

	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}

	box := core.NewRect((s.Width()-width-4)/2, (s.Height()-len(lines)-2)/2, width+4, len(lines)+2)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorFrame)

	for i, line := range lines {
		c := core.ColorHUD
		if i == 0 {
			c = core.ColorTitle
		}
		s.DrawTextCentered(box.Y+1+i, line, c)
	}
}
