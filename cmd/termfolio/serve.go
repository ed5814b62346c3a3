package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termfolio/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
	flagServeTouch  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the termfolio SSH server",
	Long: `Start an SSH server that gives every visitor their own stage.

Without --level visitors get the level menu; with it they land straight
on that level. Each play-through is recorded in the visit ledger.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.termfolio/host_key

Examples:
  termfolio serve                           # Listen on :23234 with auto-generated key
  termfolio serve --ssh :2222               # Listen on port 2222
  termfolio serve --level portfolio         # Skip the menu
  termfolio serve --metrics :9090           # Expose Prometheus metrics

Visitors connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Prometheus metrics address (e.g. :9090, empty = off)")
	serveCmd.Flags().BoolVar(&flagServeTouch, "touch", false, "Always show on-screen buttons")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("termfolio-ssh", false)
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.MetricsAddress = flagMetricsAddr
	srvCfg.Game = cfg
	srvCfg.TickRate = cfg.Display.FPS
	srvCfg.Touch = flagServeTouch

	if flagLevel != "" {
		level, _, levelErr := resolveLevel(cfg)
		if levelErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", levelErr)
			os.Exit(1)
		}
		srvCfg.Level = level
		logger.Info("visitors are pinned to one level", "level", level.ID())
	}

	store := openStore(logger)

	server, err := tui.NewSSHServer(srvCfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting termfolio SSH server on %s\n", srvCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.ListenAndServe()
	if store != nil {
		store.Close()
	}
	if serveErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", serveErr)
		os.Exit(1)
	}
}
