package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecosnake/internal/config"
	"github.com/vovakirdan/ecosnake/internal/platform/tui"
)

var (
	flagName       string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [profile]",
	Short: "Start a session directly",
	Long: `Start a session of the given rule profile, skipping the menu.
The profile defaults to "ecosnake".

Controls:
  WASD/Arrows  - Steer the collector
  P            - Pause
  Esc          - Leave the session
  Enter/R      - Play again (after game over)
  S            - Leaderboard (after game over)
  Q/Ctrl+C     - Quit

Difficulty options are listed by 'ecosnake list'.

Examples:
  ecosnake play --name Ada
  ecosnake play --name Ada --difficulty hard
  ecosnake play classic --name Ada --seed 42
  ecosnake play --name Ada --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name shown on the leaderboard")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "Difficulty tier: easy, medium, hard")
	_ = playCmd.MarkFlagRequired("name")
}

func runPlay(_ *cobra.Command, args []string) error {
	profile := profileArg(args)
	if err := requireProfile(profile); err != nil {
		return err
	}

	tier, err := config.ParseTier(flagDifficulty)
	if err != nil {
		return err
	}

	load := rulesLoader()
	if _, err := load(profile); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(store, tui.AppConfig{
		Runtime: runtimeConfig(),
		Profile: profile,
		Player:  flagName,
		Tier:    tier,
		Direct:  true,
		Rules:   load,
		Logger:  logger,
	})
}
