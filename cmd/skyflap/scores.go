package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyflap/internal/storage"
)

var (
	flagTop   int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard and your stats",
	Long: `Display the top leaderboard entries followed by the best score,
run statistics and recent runs of the current profile.

Examples:
  skyflap scores
  skyflap scores -n 20
  skyflap scores --profile alice
  skyflap scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagTop, "top", "n", 10, "Number of leaderboard entries to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all leaderboard entries")
}

func runScores(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if flagClear {
		if err := store.ClearLeaderboard(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing leaderboard: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Leaderboard cleared.")
		return
	}

	entries, err := store.FetchTop(flagTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	printLeaderboard(entries)

	fmt.Println()
	if err := printProfile(store, flagProfile); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving profile: %v\n", err)
		os.Exit(1)
	}
}

func printLeaderboard(entries []storage.LeaderboardEntry) {
	fmt.Println("Leaderboard")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyflap play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "----", "----", "-----", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-20s  %-8d  %s\n", i+1, e.Name, e.Score, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func printProfile(store *storage.Store, profileID string) error {
	profile, err := store.Profile(profileID)
	if err != nil {
		return err
	}
	stats, err := store.Stats(profileID)
	if err != nil {
		return err
	}

	name := profile.Name
	if name == "" {
		name = storage.AnonymousName
	}
	fmt.Printf("Profile %s (%s)\n", profileID, name)
	fmt.Printf("  Best:     %d\n", profile.BestScore)
	fmt.Printf("  Runs:     %d\n", stats.Runs)
	fmt.Printf("  Average:  %.1f\n", stats.Average)
	fmt.Printf("  Played:   %s\n", stats.TotalTime.Round(time.Second))

	runs, err := store.RecentRuns(profileID, 5)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent runs")
	for _, r := range runs {
		fmt.Printf("  %-8d  %-8s  %s\n", r.Score, r.Duration.Round(100*time.Millisecond), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
