package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecosnake/internal/storage"
)

var (
	flagRecent int
	flagPlayer string
	flagStats  bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [profile]",
	Short: "Show the leaderboard of a rule profile",
	Long: `Display the leaderboard of the given rule profile, best first.
The profile defaults to "ecosnake". Each player appears once with their
best score.

Examples:
  ecosnake scores
  ecosnake scores classic
  ecosnake scores --recent 20
  ecosnake scores --player Ada
  ecosnake scores --stats`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Show the last N sessions instead of the leaderboard")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Show the session history of one player")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show aggregated statistics for every profile")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the leaderboard and history of the profile")
}

func runScores(_ *cobra.Command, args []string) error {
	profile := profileArg(args)
	if err := requireProfile(profile); err != nil {
		return err
	}

	rules, err := rulesLoader()(profile)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("could not open scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(profile); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", profile)
		return nil
	case flagStats:
		return printStats(store)
	case flagPlayer != "":
		sessions, err := store.PlayerHistory(profile, flagPlayer, rules.HighScores.Limit)
		if err != nil {
			return err
		}
		fmt.Printf("Sessions of %s - %s\n\n", flagPlayer, profile)
		printSessions(sessions)
		return nil
	case flagRecent > 0:
		sessions, err := store.RecentSessions(profile, flagRecent)
		if err != nil {
			return err
		}
		fmt.Printf("Recent sessions - %s\n\n", profile)
		printSessions(sessions)
		return nil
	}

	scores, err := store.TopScores(profile, rules.HighScores.Limit)
	if err != nil {
		return fmt.Errorf("could not retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", profile)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'ecosnake play %s --name <you>' to set the first high score!\n", profile)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-10s  %s\n", "Rank", "Name", "Score", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-10s  %s\n", "----", "----", "-----", "----------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-12s  %-6d  %-10s  %s\n", i+1, entry.Name, entry.Score, entry.Difficulty,
			entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func printSessions(sessions []storage.SessionResult) {
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}
	fmt.Printf("  %-16s  %-12s  %-6s  %s\n", "Date", "Name", "Score", "Difficulty")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-12s  %-6d  %s\n", s.CreatedAt.Local().Format("2006-01-02 15:04"),
			s.Name, s.Score, s.Difficulty)
	}
}

func printStats(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Printf("  %-10s  %-6s  %-5s  %-7s  %s\n", "Profile", "Games", "Best", "Average", "Last played")
	for _, info := range listProfiles() {
		st, ok := all[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %-6d  %-5d  %-7.1f  %s\n", st.Profile, st.GamesCount, st.HighScore, st.AvgScore,
			st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
