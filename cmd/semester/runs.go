package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/semester/internal/game"
)

var (
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the best finished runs",
	Long: `Display the best finished runs from every slot, ordered by score.

Examples:
  semester runs
  semester runs --limit 25
  semester runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the run history")
}

func runRuns(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			fail("%v", err)
		}
		fmt.Println("Run history cleared.")
		return
	}

	runs, err := store.TopRuns(flagRunsLimit)
	if err != nil {
		fail("cannot retrieve runs: %v", err)
	}

	fmt.Println("Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No finished runs yet.")
		fmt.Println()
		fmt.Println("Play 'semester play' to finish the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-5s  %-9s  %s\n", "Rank", "Score", "Block", "Outcome", "When")
	fmt.Printf("  %-4s  %-12s  %-5s  %-9s  %s\n", "----", "-----", "-----", "-------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-5d  %-9s  %s\n", i+1, game.FormatAmount(r.Score), r.Block, r.Outcome, humanize.Time(r.CreatedAt))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("%d runs, %d won, %d lost. Best block: %d.\n", stats.Runs, stats.Won, stats.Lost, stats.BestBlock)
	}
}
