package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termfolio/internal/levels"
	"github.com/vovakirdan/termfolio/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [id]",
	Short: "List built-in levels, or print one as YAML",
	Long: `Without an argument, lists the built-in levels. With a level id,
prints its YAML so it can be copied and edited:

  termfolio levels portfolio > site.yaml
  termfolio play --level ./site.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		data, err := levels.BuiltinYAML(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data) //nolint:errcheck // Nothing to do if stdout is gone
		return
	}

	list := registry.List()
	if len(list) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range list {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Name")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")
	for _, l := range list {
		fmt.Printf("  %-*s  %s\n", maxIDLen, l.ID, l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'termfolio play --level <id>' to play a level.")
}
