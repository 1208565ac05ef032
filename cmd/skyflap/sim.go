package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyflap/internal/engine"
)

var (
	flagRuns     int
	flagMaxTicks int
	flagWidth    float64
	flagHeight   float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot games",
	Long: `Play games with the built-in autopilot, without any display, and
report how each run ended. Useful for checking a config or a difficulty
preset before playing it.

Run i uses seed+i, so a fixed --seed gives a reproducible report.

Examples:
  skyflap sim
  skyflap sim --runs 20 --seed 7
  skyflap sim --difficulty hard --max-ticks 5000
  skyflap sim --width 480 --height 720`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of games to play")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 3600, "Stop a game after this many ticks")
	simCmd.Flags().Float64Var(&flagWidth, "width", 800, "Playfield width in pixels")
	simCmd.Flags().Float64Var(&flagHeight, "height", 600, "Playfield height in pixels")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger := newLogger(os.Stderr, "skyflap-sim")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	base := seed()
	fmt.Printf("  %-4s  %-20s  %-6s  %-6s  %s\n", "Run", "Seed", "Score", "Ticks", "Ended by")
	fmt.Printf("  %-4s  %-20s  %-6s  %-6s  %s\n", "---", "----", "-----", "-----", "--------")

	var total, best, played int
	for i := 0; i < flagRuns; i++ {
		res, err := engine.Simulate(ctx, cfg, base+int64(i), flagWidth, flagHeight, flagMaxTicks, flagFPS)
		if err != nil {
			logger.Warn("simulation interrupted", "run", i+1, "err", err)
			break
		}
		logger.Debug("run finished", "run", i+1, "seed", res.Seed, "score", res.Score, "ticks", res.Ticks)

		cause := res.Cause.String()
		if !res.Ended {
			cause = "tick limit"
		}
		fmt.Printf("  %-4d  %-20d  %-6d  %-6d  %s\n", i+1, res.Seed, res.Score, res.Ticks, cause)

		played++
		total += res.Score
		best = max(best, res.Score)
	}

	if played == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", played, best, float64(total)/float64(played))
}
