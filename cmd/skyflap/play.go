package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyflap/internal/audio"
	"github.com/vovakirdan/skyflap/internal/platform/tui"
	"github.com/vovakirdan/skyflap/internal/session"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/Click  - Flap (starts the run)
  R               - Restart (after game over)
  N               - Edit display name
  L               - Leaderboard
  Ctrl+S          - Save a screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  classic - Constant speed and gap, no progression
  easy    - Start at lowest difficulty, progresses to max
  normal  - Start at 30% difficulty, progresses to max
  hard    - Start at 70% difficulty, progresses to max
  fixed   - No progression, stays at config's initial level

Examples:
  skyflap play
  skyflap play --difficulty hard
  skyflap play --config ./my-skyflap.yaml
  skyflap play --profile alice --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable background music")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	logger, closeLog := fileLogger()
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStoreOrWarn(logger)
	if store != nil {
		defer store.Close()
	}

	music, stopMusic := newAudio(logger)
	defer stopMusic()

	opts := tui.Options{
		Config:    cfg,
		FPS:       flagFPS,
		Seed:      seed(),
		ProfileID: flagProfile,
		Store:     store,
		Audio:     music,
		Logger:    logger,
		Width:     width,
		Height:    height,
	}
	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newAudio opens the sound device. Without one the game stays silent.
func newAudio(logger *log.Logger) (session.Audio, func()) {
	if flagMute {
		return session.NopAudio{}, func() {}
	}
	music := audio.NewMusic(audio.DefaultVolume)
	if err := music.Init(); err != nil {
		logger.Warn("no sound device, music disabled", "err", err)
		return session.NopAudio{}, func() {}
	}
	return music, music.Close
}
