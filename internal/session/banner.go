package session

import (
	"fmt"
	"time"
)

// Banner returns the centred message lines a front end shows over the
// playfield. It is empty while Playing.
func (s Snapshot) Banner() []string {
	switch s.State {
	case NotStarted:
		return []string{"SKYFLAP", "", "press space or click to start"}
	case Ended:
		lines := []string{"GAME OVER", "", fmt.Sprintf("Score: %d", s.Score)}
		if s.NewBest {
			lines = append(lines, "New best!")
		} else {
			lines = append(lines, fmt.Sprintf("Best: %d", s.Best))
		}
		if s.Notice != "" {
			lines = append(lines, s.Notice)
		}
		lines = append(lines, "")
		if s.RestartLocked {
			lines = append(lines, countdown(s.LockRemaining))
		} else {
			lines = append(lines, "press space or r to restart")
		}
		return lines
	}
	return nil
}

// countdown rounds d up to tenths of a second, so it never reads 0.0s
// while still locked.
func countdown(d time.Duration) string {
	tenths := (d + 100*time.Millisecond - 1) / (100 * time.Millisecond)
	return fmt.Sprintf("restart in %d.%ds", tenths/10, tenths%10)
}

// ScoreLine is the shareable one-line result of the last run.
func (s Snapshot) ScoreLine() string {
	return fmt.Sprintf("%s scored %d in skyflap (best %d)", s.Name, s.Score, s.Best)
}
