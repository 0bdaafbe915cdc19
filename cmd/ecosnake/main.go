// ecosnake is a terminal trash-collecting game with a shared leaderboard.
//
// Usage:
//
//	ecosnake menu                          - Interactive menu (default)
//	ecosnake play [profile] --name <name>  - Start a session directly
//	ecosnake serve                         - Start SSH server for remote play
//	ecosnake scores [profile]              - Show the leaderboard
//	ecosnake list                          - List rule profiles and tiers
//	ecosnake config [profile]              - Print the effective rules as YAML
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: the profile's frame rate)
//	--seed <value>     - Set RNG seed for reproducible sessions
//	--db <path>        - Set database path (default: ~/.ecosnake/scores.db)
//	--config <path>    - Rule overrides applied on top of the profile
//	--log-level <lvl>  - debug, info, warn or error
//	--log-file <path>  - Log destination while the terminal is in use
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/ecosnake/internal/games/ecosnake"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

var (
	logger  = log.Default()
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ecosnake",
	Short: "EcoSnake - collect trash in your terminal",
	Long: `EcoSnake is a terminal game: steer the collector around a wrapping
field, pick up trash to grow, and avoid running into your own bag trail.

Available commands:
  menu     - Interactive menu (default)
  play     - Start a session directly
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  list     - List rule profiles
  config   - Print the effective rules

Examples:
  ecosnake
  ecosnake play --name Ada --difficulty hard
  ecosnake play classic --name Ada
  ecosnake serve --ssh :2222
  ecosnake scores classic`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	rootCmd.PersistentPreRunE = setupLogging

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = the profile's frame rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ecosnake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a rules YAML applied on top of the profile")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.ecosnake/ecosnake.log", "Log file used while the terminal UI runs (empty = stderr)")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
