// skyflap is a side-scrolling flyer game for the terminal, the desktop and SSH.
//
// Usage:
//
//	skyflap play             - Play in the terminal
//	skyflap window           - Play in a desktop window
//	skyflap serve            - Start SSH server for remote play
//	skyflap scores           - Show the leaderboard and your stats
//	skyflap name <name>      - Set your display name
//	skyflap sim              - Run headless autopilot games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.skyflap/skyflap.db)
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Difficulty preset
//	--profile <id>       - Local profile id (default: local)
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagProfile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyflap",
	Short: "Skyflap - keep the flyer airborne between the obstacles",
	Long: `Skyflap is a side-scrolling flyer game. Tap to flap, slip through
the gaps and keep off the floor and the ceiling.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the leaderboard and your stats
  name     - Set your display name
  sim      - Run headless autopilot games

Examples:
  skyflap play
  skyflap play --difficulty hard
  skyflap window
  skyflap serve --ssh :2222
  skyflap scores -n 20
  skyflap sim --runs 10 --seed 7`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyflap/skyflap.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: classic, easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "local", "Local profile id for best score and name")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig reads the config file and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func mustLoadConfig() config.Config {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// seed returns the --seed value, or a time-based one when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openStoreOrWarn opens the database. Play goes on without persistence
// when it cannot be opened.
func openStoreOrWarn(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores will not be saved", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func newLogger(w *os.File, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// fileLogger logs to ~/.skyflap/skyflap.log, since the game owns the
// terminal. The returned func closes the file.
func fileLogger() (*log.Logger, func()) {
	path := "skyflap.log"
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".skyflap")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			path = filepath.Join(dir, "skyflap.log")
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return newLogger(os.Stderr, "skyflap"), func() {}
	}
	return newLogger(f, "skyflap"), func() { _ = f.Close() }
}
