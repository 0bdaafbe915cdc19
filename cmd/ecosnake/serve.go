package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecosnake/internal/platform/tui"
	"github.com/vovakirdan/ecosnake/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagProfile     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the EcoSnake SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own menu; the SSH user name is prefilled as
the player name. All users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ecosnake/host_key

Examples:
  ecosnake serve                           # Listen on :23234
  ecosnake serve --ssh :2222               # Listen on port 2222
  ecosnake serve --host-key ./my_host_key  # Use specific host key
  ecosnake serve --profile classic         # Preselect the classic rules

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagProfile, "profile", "ecosnake", "Rule profile preselected in the menu")
}

func runServe(_ *cobra.Command, _ []string) error {
	if err := requireProfile(flagProfile); err != nil {
		return err
	}
	load := rulesLoader()
	if _, err := load(flagProfile); err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("could not open scores database: %w", err)
	}
	defer store.Close()
	store.SetLogger(logger)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Profile = flagProfile
	cfg.TickRate = max(flagFPS, 0)
	cfg.Rules = load

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return fmt.Errorf("could not create server: %w", err)
	}

	fmt.Printf("Starting EcoSnake SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe()
}
