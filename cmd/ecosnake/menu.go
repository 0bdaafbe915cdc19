package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecosnake/internal/config"
	"github.com/vovakirdan/ecosnake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start EcoSnake in interactive menu mode.

Pick a rule profile with Left/Right, then play, browse the leaderboard or
change the look of the collector. After a session you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change rule profile
  Enter        - Select
  Q            - Quit

Examples:
  ecosnake menu
  ecosnake menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	load := rulesLoader()
	if _, err := load(config.ProfileEcoSnake); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(store, tui.AppConfig{
		Runtime: runtimeConfig(),
		Profile: config.ProfileEcoSnake,
		Rules:   load,
		Logger:  logger,
	})
}
