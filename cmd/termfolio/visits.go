package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termfolio/internal/platform/tui"
	"github.com/vovakirdan/termfolio/internal/storage"
)

var (
	flagVisitsLimit int
	flagClear       bool
)

var visitsCmd = &cobra.Command{
	Use:   "visits [level]",
	Short: "Show the visit ledger",
	Long: `Show how far visitors got on a level. In a terminal this opens a
browsable table (tab switches level); otherwise the best visits are printed.

Examples:
  termfolio visits
  termfolio visits playground
  termfolio visits portfolio --limit 20 | less
  termfolio visits portfolio --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runVisits,
}

func init() {
	visitsCmd.Flags().IntVar(&flagVisitsLimit, "limit", 10, "Visits to print when not in a terminal")
	visitsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every visit recorded for the level")
}

func runVisits(_ *cobra.Command, args []string) {
	levelID := "portfolio"
	if len(args) == 1 {
		levelID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening visit ledger: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearVisits(levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared visits for %s\n", levelID)
		return
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		if err := tui.RunVisits(store, levelID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	visits, err := store.TopVisits(levelID, flagVisitsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving visits: %v\n", err)
		return
	}

	fmt.Printf("Visits - %s\n", levelID)
	fmt.Println()
	if len(visits) == 0 {
		fmt.Println("No visits recorded yet.")
		return
	}

	fmt.Println(tui.RenderVisitsTable(visits, 80))
	fmt.Println()
	if count, err := store.VisitCount(levelID); err == nil {
		best, _ := store.BestStage(levelID)
		fmt.Printf("%d visits, best stage %d\n", count, best)
	}
}
