package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top 10 runs and the high score.

With --clear the run history is deleted. The high score is kept.

Examples:
  flappy scores
  flappy scores --db ./scores.db
  flappy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history (keeps the high score)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}
	high, err := store.HighScore()
	if err != nil {
		return fmt.Errorf("error retrieving high score: %w", err)
	}

	fmt.Println("High Scores - Flappy")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first high score!")
	} else {
		// Print header
		fmt.Printf("  %-4s  %-6s  %-8s  %-5s  %s\n", "Rank", "Score", "Mode", "Pilot", "Date")
		fmt.Printf("  %-4s  %-6s  %-8s  %-5s  %s\n", "----", "-----", "----", "-----", "----")

		for i, r := range runs {
			pilot := ""
			if r.Autopilot {
				pilot = "auto"
			}
			fmt.Printf("  %-4d  %-6d  %-8s  %-5s  %s\n", i+1, r.Score, r.Difficulty, pilot, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	if high > 0 {
		fmt.Println()
		fmt.Printf("Best: %d\n", high)
	}
	return nil
}
