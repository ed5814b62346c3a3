package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termfolio/internal/core"
	"github.com/vovakirdan/termfolio/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level from a menu",
	Long: `Start with a level picker. Esc leaves a level and returns to the
menu; every level played is recorded as its own visit.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  Esc          - Back to menu (in a level)
  Q            - Quit

Examples:
  termfolio menu
  termfolio menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagTouch, "touch", false, "Always show on-screen buttons")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("termfolio", true)
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	width, height := terminalSize()

	runErr := tui.RunSession(store, tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Display.FPS,
			Touch:    flagTouch,
		},
		Visits: tui.NewVisitLog(store, logger, currentUser()),
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
