package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 results for the specified game mode.

Examples:
  kokaton scores kokaton
  kokaton scores kokaton_endless`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	game, err := gameArg(args)
	if err != nil {
		return err
	}
	gameID := game.ID()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "\nPlay 'kokaton play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-7s  %-7s  %s\n", "Rank", "Score", "Outcome", "Frames", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-7s  %-7s  %s\n", "----", "-----", "-------", "------", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-7s  %-7d  %s\n",
			i+1, e.Score, e.Outcome, e.Frames, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(out, "\nBest: %d  |  Played: %d  |  Won: %d  |  Lost: %d\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.Losses)
	}
	return nil
}
