package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyflap/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a resizable desktop window.

Controls:
  Space/Up/Enter/Click/Tap  - Flap (starts the run)
  R                         - Restart (after game over)
  C                         - Copy your score (after game over)
  Esc/Q                     - Quit

Examples:
  skyflap window
  skyflap window --difficulty easy --mute`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable background music")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStoreOrWarn(logger)
	if store != nil {
		defer store.Close()
	}

	music, stopMusic := newAudio(logger)
	defer stopMusic()

	opts := gui.Options{
		Config:    cfg,
		Seed:      seed(),
		ProfileID: flagProfile,
		Store:     store,
		Audio:     music,
		Logger:    logger,
	}
	if err := gui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
