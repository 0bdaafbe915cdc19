package config

import (
	"embed"
	"path"

	"github.com/vovakirdan/ecosnake/internal/core"
)

// ProfileEcoSnake and ProfileClassic are the built-in rule profiles.
const (
	ProfileEcoSnake = "ecosnake"
	ProfileClassic  = "classic"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultConfig returns the hard-coded EcoSnake profile, used when the
// embedded YAML cannot be read.
func DefaultConfig() Config {
	return Config{
		FrameRate: 60,
		Grid: GridConfig{
			CellSize:   35,
			Cols:       22,
			Rows:       17,
			StatusRows: 2,
		},
		Spawn: SpawnConfig{
			MarginX:    1,
			MarginTop:  3,
			EdgeBuffer: 2,
		},
		Tolerance: ToleranceConfig{
			Collision:   17,
			Consumption: 27,
			Neck:        3,
		},
		Difficulty: DifficultyTable{
			{Tier: TierEasy, Label: "Easy", Speed: 5, Color: core.ColorGreen},
			{Tier: TierMedium, Label: "Medium", Speed: 10, Color: core.ColorOrange},
			{Tier: TierHard, Label: "Hard", Speed: 18, Color: core.ColorRed},
		},
		Trash: []TrashKind{
			TrashApple, TrashBanana, TrashBottle,
			TrashCan, TrashGlassBottle, TrashPlasticPollution,
		},
		HighScores: HighScoreConfig{Limit: 10},
		Player:     PlayerNameConfig{MinName: 2, MaxName: 12},
	}
}

// GetDefaultYAML returns the embedded default YAML for a profile, or nil.
func GetDefaultYAML(profile string) []byte {
	data, err := defaultsFS.ReadFile(path.Join("defaults", profile+".yaml"))
	if err != nil {
		return nil
	}
	return data
}
