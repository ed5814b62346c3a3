package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termfolio/internal/core"
	"github.com/vovakirdan/termfolio/internal/platform/tui"
)

var (
	flagWatch bool
	flagTouch bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Start the level given by --level (or the config's world.level).

Controls:
  Left/A, Right/D  - Move (terminals repeat keys; a key counts as held
                     for a few frames after each repeat)
  Space/Up/W       - Jump
  Ctrl+S           - Save a screenshot to ~/.termfolio/screenshots
  Q/Ctrl+C         - Quit

On narrow terminals (or with --touch) on-screen buttons are shown;
click and hold them with the mouse.

Examples:
  termfolio play
  termfolio play --level playground --fps 30
  termfolio play --level ./site.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level file on save (file levels only)")
	playCmd.Flags().BoolVar(&flagTouch, "touch", false, "Always show on-screen buttons")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("termfolio", true)
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, path, err := resolveLevel(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'termfolio levels' to see built-in levels.")
		os.Exit(1)
	}
	if flagWatch && path == "" {
		fmt.Fprintf(os.Stderr, "Warning: %q is built in, --watch needs a level file\n", level.ID())
	}

	store := openStore(logger)
	width, height := terminalSize()

	opts := tui.Options{
		Level:  level,
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Display.FPS,
			Touch:    flagTouch,
		},
		Visits: tui.NewVisitLog(store, logger, currentUser()),
		Logger: logger,
	}
	if flagWatch {
		opts.WatchPath = path
	}

	logger.Info("playing", "level", level.ID(), "size", fmt.Sprintf("%dx%d", width, height))
	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}
}
