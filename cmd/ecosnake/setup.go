package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ecosnake/internal/config"
	"github.com/vovakirdan/ecosnake/internal/core"
	"github.com/vovakirdan/ecosnake/internal/platform/tui"
	"github.com/vovakirdan/ecosnake/internal/registry"
	"github.com/vovakirdan/ecosnake/internal/storage"
)

// setupLogging configures the shared logger. Commands that take over the
// terminal log to a file; the rest log to stderr.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := os.Stderr
	if usesTerminal(cmd) && flagLogFile != "" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "ecosnake",
	})
	log.SetDefault(logger)
	return nil
}

func usesTerminal(cmd *cobra.Command) bool {
	return cmd == rootCmd || cmd == menuCmd || cmd == playCmd
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// rulesLoader applies --config on top of whichever profile is requested.
func rulesLoader() tui.RulesLoader {
	return func(profile string) (config.Config, error) {
		return config.Load(profile, flagConfig)
	}
}

func requireProfile(profile string) error {
	if !registry.Exists(profile) {
		return fmt.Errorf("unknown profile %q (run 'ecosnake list' to see available profiles)", profile)
	}
	return nil
}

func profileArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.ProfileEcoSnake
}

// runtimeConfig sizes the screen from the controlling terminal. A zero
// tick rate lets each session run at its profile's frame rate.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: max(flagFPS, 0),
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	store.SetLogger(logger)
	return store
}
