// Package obstacles generates, scrolls and retires the gapped obstacles.
package obstacles

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/viewport"
)

// Obstacle is a top/bottom barrier pair with a vertical gap between them.
type Obstacle struct {
	X         float64 // Left edge
	TopHeight float64 // Bottom of the top segment; the gap starts here
	Gap       float64 // Gap height captured at spawn time
	Passed    bool    // Whether the flyer has scored this obstacle
}

// GapBottom returns the y-coordinate where the bottom segment starts.
func (o Obstacle) GapBottom() float64 {
	return o.TopHeight + o.Gap
}

// TopBox returns the top segment's box.
func (o Obstacle) TopBox(width float64) core.Box {
	return core.Box{X: o.X, Y: 0, W: width, H: o.TopHeight}
}

// BottomBox returns the bottom segment's box, reaching down to the playfield floor.
func (o Obstacle) BottomBox(width, fieldHeight float64) core.Box {
	bottom := o.GapBottom()
	return core.Box{X: o.X, Y: bottom, W: width, H: math.Max(fieldHeight-bottom, 0)}
}

// Tuning holds the scroll speed settings and the difficulty progression.
type Tuning struct {
	BaseSpeed      float64
	SpeedBonus     float64
	ReferenceWidth float64
	Difficulty     *config.DifficultyManager
}

// TuningFromConfig builds Tuning from the loaded config.
func TuningFromConfig(c config.Config) Tuning {
	return Tuning{
		BaseSpeed:      c.Obstacles.BaseSpeed,
		SpeedBonus:     c.Obstacles.SpeedBonus,
		ReferenceWidth: c.Obstacles.ReferenceWidth,
		Difficulty:     config.NewDifficultyManager(c.Difficulty),
	}
}

// Stream owns the live obstacles in spawn order (oldest first), the RNG and
// the spawn timer. Obstacles never reorder, so only the front one is ever
// checked for eviction.
type Stream struct {
	items     []Obstacle
	rng       *rand.Rand
	tuning    Tuning
	lastSpawn time.Duration
	primed    bool // False until the first spawn after a reset
}

// NewStream creates an empty stream with the given RNG seed.
func NewStream(seed int64, tuning Tuning) *Stream {
	if tuning.Difficulty == nil {
		tuning.Difficulty = config.NewDifficultyManager(config.DifficultyConfig{})
	}
	return &Stream{
		items:  make([]Obstacle, 0, 8),
		rng:    rand.New(rand.NewSource(seed)),
		tuning: tuning,
	}
}

// Reset clears all obstacles and the spawn timer. The first Update after a
// reset spawns immediately.
func (s *Stream) Reset() {
	s.items = s.items[:0]
	s.lastSpawn = 0
	s.primed = false
}

// Update runs one tick: spawn if the interval elapsed, scroll every obstacle
// left, then evict the front obstacle once it is fully off-screen.
func (s *Stream) Update(now time.Duration, p viewport.Params, score, ticks int) {
	interval := s.tuning.Difficulty.SpawnInterval(p.SpawnInterval, score, ticks)
	if !s.primed || now-s.lastSpawn > interval {
		s.spawn(p, score, ticks)
		s.lastSpawn = now
		s.primed = true
	}

	speed := s.Speed(p, score, ticks)
	for i := range s.items {
		s.items[i].X -= speed
	}

	if len(s.items) > 0 && s.items[0].X < -p.ObstacleWidth {
		s.items = s.items[1:]
	}
}

// Speed returns the current per-tick scroll speed.
func (s *Stream) Speed(p viewport.Params, score, ticks int) float64 {
	base := p.ScrollSpeed(s.tuning.BaseSpeed, s.tuning.SpeedBonus, s.tuning.ReferenceWidth)
	return base * s.tuning.Difficulty.SpeedFactor(score, ticks)
}

// spawn appends a new obstacle at the right edge with a random gap position.
func (s *Stream) spawn(p viewport.Params, score, ticks int) {
	minH := p.MinObstacleHeight()
	gap := s.tuning.Difficulty.Gap(p.Gap, score, ticks)

	// Very small playfields would invert the range; pin it to minH instead.
	maxH := math.Max(p.Height-gap-minH, minH)

	s.items = append(s.items, Obstacle{
		X:         p.Width,
		TopHeight: minH + s.rng.Float64()*(maxH-minH),
		Gap:       gap,
	})
}

// Append places an obstacle at the back of the stream. Callers must keep the
// spawn order: o must not be left of the newest obstacle.
func (s *Stream) Append(o Obstacle) {
	s.items = append(s.items, o)
}

// Items returns the live obstacles, oldest first. The slice is only valid
// until the next Update or Reset.
func (s *Stream) Items() []Obstacle {
	return s.items
}

// Len returns the number of live obstacles.
func (s *Stream) Len() int {
	return len(s.items)
}
