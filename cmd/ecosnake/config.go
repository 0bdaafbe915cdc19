package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecosnake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [profile]",
	Short: "Print the effective rules of a profile as YAML",
	Long: `Prints the rules a session of the profile would use, after applying
~/.ecosnake/configs/<profile>.yaml, ./configs/<profile>.yaml or --config.
The output is a valid starting point for a custom rules file.

Examples:
  ecosnake config
  ecosnake config classic > my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	profile := profileArg(args)
	if err := requireProfile(profile); err != nil {
		return err
	}

	rules, err := config.Load(profile, flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(rules)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
