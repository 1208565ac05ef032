package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var nameCmd = &cobra.Command{
	Use:   "name <display name>",
	Short: "Set your display name",
	Long: `Store the display name used on the leaderboard for the current profile.

Names keep letters, digits, spaces and dashes and are cut to 20 characters.

Examples:
  skyflap name Ada
  skyflap name "Sky Pilot" --profile alice`,
	Args: cobra.MinimumNArgs(1),
	Run:  runName,
}

func runName(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	name, err := store.SaveName(flagProfile, strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving name: %v\n", err)
		os.Exit(1)
	}
	if name == "" {
		fmt.Println("Name cleared; you will appear as Anonymous.")
		return
	}
	fmt.Printf("Display name set to %q\n", name)
}
