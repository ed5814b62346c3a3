// termfolio is a personal site rendered as a side-scrolling platformer in
// the terminal, played locally or served to visitors over SSH.
//
// Usage:
//
//	termfolio play               - Play a level in this terminal
//	termfolio menu               - Pick a level interactively
//	termfolio serve              - Start the SSH server for visitors
//	termfolio levels             - List levels, or dump one as YAML
//	termfolio visits [level]     - Show the visit ledger
//
// Global flags:
//
//	--fps <rate>         - Frames per second (default: from config)
//	--config <path>      - Custom config YAML
//	--level <id|path>    - Level id or level file (default: from config)
//	--db <path>          - Visit ledger (default: ~/.termfolio/visits.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termfolio/internal/config"
	"github.com/vovakirdan/termfolio/internal/levels"
	"github.com/vovakirdan/termfolio/internal/registry"
	"github.com/vovakirdan/termfolio/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLevel    string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "termfolio - a personal site you can walk through",
	Long: `termfolio renders an "about me" page as a looping side-scrolling
platformer. Walk up to a sign to read it; every flag pole is a stage.

Available commands:
  play     - Play a level in this terminal
  menu     - Interactive level picker
  serve    - Start SSH server for visitors
  levels   - List built-in levels
  visits   - View the visit ledger

Examples:
  termfolio play
  termfolio play --level playground
  termfolio play --level ./my-site.yaml --watch
  termfolio serve --ssh :2222 --metrics :9090
  termfolio visits portfolio`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level id or level file (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termfolio/visits.db", "Path to visit ledger database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(visitsCmd)
}

// loadConfig loads the config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagLevel != "" {
		cfg.World.Level = flagLevel
	}
	return cfg, nil
}

// resolveLevel returns the level named by the config, and the file to
// watch when it was loaded from disk.
func resolveLevel(cfg config.Config) (registry.Level, string, error) {
	name := cfg.World.Level
	level, err := levels.Resolve(name, cfg.World.LoopWidth)
	if err != nil {
		return nil, "", err
	}
	if registry.Exists(name) {
		return level, "", nil
	}
	return level, name, nil
}

// newLogger creates the command logger. The alt screen owns stdout during
// play, so interactive commands log to a file instead of stderr.
func newLogger(prefix string, toFile bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closer := func() {}

	if toFile {
		w = io.Discard
		if dir := config.Dir(); dir != "" {
			//nolint:errcheck // Best-effort directory creation
			os.MkdirAll(dir, 0o755)
			f, err := os.OpenFile(filepath.Join(dir, "termfolio.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				w = f
				closer = func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger, closer
}

// openStore opens the visit ledger. The ledger is optional: play goes on
// without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open visit ledger", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// currentUser names the local player in the ledger.
func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
