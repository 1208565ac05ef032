package viewport

import (
	"math"
	"testing"
	"time"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name          string
		w, h          float64
		obstacleWidth float64
		gap           float64
		interval      time.Duration
		flyerWidth    float64
	}{
		{"desktop", 1920, 1080, 50, 180, 2000 * time.Millisecond, 35},
		{"ultrawide", 3500, 1080, 50, 180, 3000 * time.Millisecond, 35},
		{"800x600", 800, 600, 50, 120, 2000 * time.Millisecond, 35},
		{"mid", 2500, 700, 50, 140, 2500 * time.Millisecond, 35},
		{"phone", 360, 640, 36, 128, 2000 * time.Millisecond, 28.8},
		{"tiny", 100, 100, 10, 50, 2000 * time.Millisecond, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Compute(tc.w, tc.h)
			if !approx(p.ObstacleWidth, tc.obstacleWidth) {
				t.Errorf("ObstacleWidth = %v, expected %v", p.ObstacleWidth, tc.obstacleWidth)
			}
			if !approx(p.Gap, tc.gap) {
				t.Errorf("Gap = %v, expected %v", p.Gap, tc.gap)
			}
			if p.SpawnInterval != tc.interval {
				t.Errorf("SpawnInterval = %v, expected %v", p.SpawnInterval, tc.interval)
			}
			if !approx(p.FlyerWidth, tc.flyerWidth) {
				t.Errorf("FlyerWidth = %v, expected %v", p.FlyerWidth, tc.flyerWidth)
			}
			if !approx(p.FlyerHeight, tc.flyerWidth*50/35) {
				t.Errorf("FlyerHeight = %v, expected %v", p.FlyerHeight, tc.flyerWidth*50/35)
			}
			if !approx(p.FlyerX, 0.1*tc.w) || !approx(p.FlyerY, tc.h/2) {
				t.Errorf("flyer origin = (%v, %v)", p.FlyerX, p.FlyerY)
			}
		})
	}
}

func TestComputeIsIdempotentAndTotal(t *testing.T) {
	if Compute(1024, 768) != Compute(1024, 768) {
		t.Error("Compute should be idempotent")
	}

	p := Compute(0, -5)
	if p.Width != 1 || p.Height != 1 {
		t.Errorf("non-positive sizes should clamp to 1, got %vx%v", p.Width, p.Height)
	}
	if p.Gap > p.Height {
		t.Errorf("gap %v larger than height %v", p.Gap, p.Height)
	}
}

func TestMinObstacleHeightAndSpeed(t *testing.T) {
	p := Compute(800, 600)
	if got := p.MinObstacleHeight(); got != 50 {
		t.Errorf("MinObstacleHeight() = %v, expected 50", got)
	}
	if got := Compute(800, 300).MinObstacleHeight(); !approx(got, 30) {
		t.Errorf("MinObstacleHeight() = %v, expected 30", got)
	}

	if got := p.ScrollSpeed(3, 1, 1920); !approx(got, 3+800.0/1920) {
		t.Errorf("ScrollSpeed() = %v", got)
	}
	if got := Compute(3840, 2160).ScrollSpeed(3, 1, 1920); got != 4 {
		t.Errorf("ScrollSpeed() should saturate at base+bonus, got %v", got)
	}
}
