package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecosnake/internal/config"
	"github.com/vovakirdan/ecosnake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List rule profiles and their difficulty tiers",
	Long:  `Shows every registered rule profile with its difficulty table.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func listProfiles() []registry.Info {
	return registry.List()
}

func runList(_ *cobra.Command, _ []string) error {
	profiles := listProfiles()
	if len(profiles) == 0 {
		fmt.Println("No profiles available.")
		return nil
	}

	fmt.Println("Available profiles:")
	fmt.Println()

	for _, p := range profiles {
		fmt.Printf("  %s - %s\n", p.ID, p.Title)

		rules, err := config.Load(p.ID, flagConfig)
		if err != nil {
			fmt.Printf("    (rules could not be loaded: %v)\n", err)
			continue
		}
		for _, d := range rules.Difficulty {
			fmt.Printf("    %-6s  %-8s  %2d moves/s\n", d.Tier, d.Label, d.Speed)
		}
		fmt.Println()
	}

	fmt.Println("Run 'ecosnake play <profile> --name <you> --difficulty <tier>' to play.")
	return nil
}
