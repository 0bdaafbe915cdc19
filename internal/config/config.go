// Package config provides YAML-based rule profiles for EcoSnake: playfield
// geometry, timing, tolerances, the difficulty table and the closed enums
// used for presentation.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/ecosnake/internal/core"
)

// Config is one rule profile.
type Config struct {
	FrameRate  int              `yaml:"frame_rate"`
	Grid       GridConfig       `yaml:"grid"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Tolerance  ToleranceConfig  `yaml:"tolerance"`
	Difficulty DifficultyTable  `yaml:"difficulty"`
	Trash      []TrashKind      `yaml:"trash"`
	HighScores HighScoreConfig  `yaml:"high_scores"`
	Player     PlayerNameConfig `yaml:"player"`
}

// GridConfig describes the playfield in cells. Pixel coordinates are
// cell indices multiplied by CellSize.
type GridConfig struct {
	CellSize   int `yaml:"cell_size"`
	Cols       int `yaml:"cols"`
	Rows       int `yaml:"rows"`
	StatusRows int `yaml:"status_rows"` // Rows reserved at the top for the status band
}

// SpawnConfig bounds item placement, in cells.
type SpawnConfig struct {
	MarginX    int `yaml:"margin_x"`    // First usable column
	MarginTop  int `yaml:"margin_top"`  // First usable row
	EdgeBuffer int `yaml:"edge_buffer"` // Last usable column/row is count - EdgeBuffer
}

// ToleranceConfig holds hit-box sizes in pixels.
type ToleranceConfig struct {
	Collision   int `yaml:"collision"`   // Head vs body
	Consumption int `yaml:"consumption"` // Head vs item, intentionally larger
	Neck        int `yaml:"neck"`        // Body cells nearest the head skipped by collision tests
}

// HighScoreConfig controls the persisted leaderboard.
type HighScoreConfig struct {
	Limit int `yaml:"limit"`
}

// PlayerNameConfig bounds the player name length, in characters.
type PlayerNameConfig struct {
	MinName int `yaml:"min_name"`
	MaxName int `yaml:"max_name"`
}

// DifficultyEntry maps a tier to a movement speed in cells per second.
type DifficultyEntry struct {
	Tier  Tier       `yaml:"tier"`
	Label string     `yaml:"label"`
	Speed int        `yaml:"speed"`
	Color core.Color `yaml:"color"`
}

// DifficultyTable is the ordered list of presets shown to the player.
type DifficultyTable []DifficultyEntry

// Lookup returns the entry for a tier.
func (t DifficultyTable) Lookup(tier Tier) (DifficultyEntry, bool) {
	for _, e := range t {
		if e.Tier == tier {
			return e, true
		}
	}
	return DifficultyEntry{}, false
}

// MoveEvery returns how many frames pass between two movement ticks at the
// given speed. Integer division; Validate guarantees the result is >= 1.
func (c Config) MoveEvery(speed int) int {
	if speed <= 0 {
		return c.FrameRate
	}
	return max(1, c.FrameRate/speed)
}

// Validate checks the profile for values the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("config: "+format, args...))
	}

	if c.FrameRate <= 0 {
		add("frame_rate must be positive, got %d", c.FrameRate)
	}

	g := c.Grid
	if g.CellSize <= 0 {
		add("grid.cell_size must be positive, got %d", g.CellSize)
	}
	if g.Cols <= 0 {
		add("grid.cols must be positive, got %d", g.Cols)
	}
	if g.StatusRows < 0 {
		add("grid.status_rows must not be negative, got %d", g.StatusRows)
	}
	if g.Rows <= g.StatusRows {
		add("grid.rows (%d) must leave rows below the status band (%d)", g.Rows, g.StatusRows)
	}

	if c.Spawn.MarginX < 0 || c.Spawn.MarginTop < 0 || c.Spawn.EdgeBuffer < 0 {
		add("spawn margins must not be negative")
	} else if c.SpawnRect().Empty() {
		add("spawn rectangle is empty for a %dx%d grid", g.Cols, g.Rows)
	}

	t := c.Tolerance
	if t.Collision < 0 || t.Consumption < 0 {
		add("tolerances must not be negative")
	}
	if t.Neck < 1 {
		add("tolerance.neck must be at least 1, got %d", t.Neck)
	}

	if len(c.Difficulty) == 0 {
		add("difficulty table is empty")
	}
	seen := make(map[Tier]bool)
	for _, e := range c.Difficulty {
		if seen[e.Tier] {
			add("difficulty tier %s listed twice", e.Tier)
		}
		seen[e.Tier] = true
		if e.Speed < 1 || (c.FrameRate > 0 && e.Speed > c.FrameRate) {
			add("difficulty %s speed %d must be within [1, %d]", e.Tier, e.Speed, c.FrameRate)
		}
	}

	if len(c.Trash) == 0 {
		add("trash list is empty")
	}
	if c.HighScores.Limit <= 0 {
		add("high_scores.limit must be positive, got %d", c.HighScores.Limit)
	}
	if c.Player.MinName < 1 || c.Player.MaxName < c.Player.MinName {
		add("player name bounds [%d, %d] are invalid", c.Player.MinName, c.Player.MaxName)
	}

	return errors.Join(errs...)
}

// SpawnRect returns the inclusive cell range items may appear in, clamped
// to the rows below the status band.
func (c Config) SpawnRect() core.Rect {
	g := c.Grid
	minX := core.Clamp(c.Spawn.MarginX, 0, g.Cols-1)
	maxX := core.Clamp(g.Cols-c.Spawn.EdgeBuffer, 0, g.Cols-1)
	minY := core.Clamp(max(c.Spawn.MarginTop, g.StatusRows), 0, g.Rows-1)
	maxY := core.Clamp(g.Rows-c.Spawn.EdgeBuffer, 0, g.Rows-1)
	return core.RectFromBounds(minX, minY, maxX, maxY)
}

// ValidateName checks a player name against the configured length bounds.
func (c Config) ValidateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < c.Player.MinName || n > c.Player.MaxName {
		return fmt.Errorf("config: player name must be %d-%d characters, got %d",
			c.Player.MinName, c.Player.MaxName, n)
	}
	return nil
}
