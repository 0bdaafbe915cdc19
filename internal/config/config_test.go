package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/ecosnake/internal/core"
)

func TestEmbeddedProfilesValidate(t *testing.T) {
	for _, profile := range []string{ProfileEcoSnake, ProfileClassic} {
		t.Run(profile, func(t *testing.T) {
			cfg, err := embedded(profile)
			if err != nil {
				t.Fatalf("embedded(%q) failed: %v", profile, err)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() failed: %v", err)
			}
		})
	}
}

func TestEmbeddedEcoSnakeMatchesHardcoded(t *testing.T) {
	cfg, err := embedded(ProfileEcoSnake)
	if err != nil {
		t.Fatalf("embedded() failed: %v", err)
	}
	def := DefaultConfig()

	if cfg.FrameRate != def.FrameRate || cfg.Grid != def.Grid || cfg.Spawn != def.Spawn ||
		cfg.Tolerance != def.Tolerance || cfg.HighScores != def.HighScores || cfg.Player != def.Player {
		t.Errorf("embedded profile drifted from DefaultConfig:\n%+v\n%+v", cfg, def)
	}
	if len(cfg.Difficulty) != len(def.Difficulty) {
		t.Fatalf("difficulty table length %d, expected %d", len(cfg.Difficulty), len(def.Difficulty))
	}
	for i := range cfg.Difficulty {
		if cfg.Difficulty[i] != def.Difficulty[i] {
			t.Errorf("difficulty[%d] = %+v, expected %+v", i, cfg.Difficulty[i], def.Difficulty[i])
		}
	}
	if len(cfg.Trash) != len(def.Trash) {
		t.Errorf("trash list length %d, expected %d", len(cfg.Trash), len(def.Trash))
	}
}

func TestMoveEvery(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		speed, expected int
	}{
		{5, 12},
		{10, 6},
		{18, 3}, // floor(60/18)
		{60, 1},
		{0, 60},
	}

	for _, tc := range tests {
		if got := cfg.MoveEvery(tc.speed); got != tc.expected {
			t.Errorf("MoveEvery(%d) = %d, expected %d", tc.speed, got, tc.expected)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		substr string
	}{
		{"zero cell size", func(c *Config) { c.Grid.CellSize = 0 }, "cell_size"},
		{"band eats playfield", func(c *Config) { c.Grid.StatusRows = c.Grid.Rows }, "status band"},
		{"speed above frame rate", func(c *Config) { c.Difficulty[2].Speed = 61 }, "speed 61"},
		{"speed zero", func(c *Config) { c.Difficulty[0].Speed = 0 }, "speed 0"},
		{"duplicate tier", func(c *Config) { c.Difficulty[1].Tier = TierEasy }, "twice"},
		{"no trash", func(c *Config) { c.Trash = nil }, "trash"},
		{"neck zero", func(c *Config) { c.Tolerance.Neck = 0 }, "neck"},
		{"empty spawn area", func(c *Config) { c.Spawn.MarginX = 30 }, "spawn rectangle"},
		{"bad name bounds", func(c *Config) { c.Player.MinName = 5; c.Player.MaxName = 3 }, "name bounds"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("error %q should mention %q", err, tc.substr)
			}
		})
	}
}

func TestSpawnRect(t *testing.T) {
	r := DefaultConfig().SpawnRect()

	// 800x600 window, 35px cells: columns 1..20, rows 3..15.
	if r.X != 1 || r.Right() != 21 || r.Y != 3 || r.Bottom() != 16 {
		t.Errorf("SpawnRect() = %+v", r)
	}

	cfg := DefaultConfig()
	cfg.Spawn.MarginTop = 0
	if got := cfg.SpawnRect(); got.Y != cfg.Grid.StatusRows {
		t.Errorf("spawn rows should start below the status band, got %d", got.Y)
	}
}

func TestValidateName(t *testing.T) {
	cfg := DefaultConfig()

	for _, ok := range []string{"Al", "Trash Master", "Çöpçü"} {
		if err := cfg.ValidateName(ok); err != nil {
			t.Errorf("ValidateName(%q) failed: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "A", "ThirteenChars"} {
		if err := cfg.ValidateName(bad); err == nil {
			t.Errorf("ValidateName(%q) should fail", bad)
		}
	}
}

func TestLoadCustomPathOverridesKeys(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "custom.yaml")
	data := "grid:\n  cols: 30\ndifficulty:\n  - { tier: hard, label: Brutal, speed: 30, color: bright_red }\n"
	if err := os.WriteFile(p, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(ProfileEcoSnake, p)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Cols != 30 {
		t.Errorf("cols = %d, expected override 30", cfg.Grid.Cols)
	}
	if cfg.Grid.CellSize != 35 {
		t.Errorf("cell size = %d, expected embedded 35", cfg.Grid.CellSize)
	}
	if len(cfg.Difficulty) != 1 || cfg.Difficulty[0].Label != "Brutal" || cfg.Difficulty[0].Color != core.ColorBrightRed {
		t.Errorf("difficulty list should be replaced, got %+v", cfg.Difficulty)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("tetris", ""); err == nil {
		t.Error("unknown profile should fail")
	}
	if _, err := Load(ProfileEcoSnake, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing explicit path should fail")
	}

	p := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(p, []byte("trash: [apple, kale]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(ProfileEcoSnake, p); err == nil {
		t.Error("unknown trash kind should fail")
	}
}

func TestMarshalRoundTripNames(t *testing.T) {
	out, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	s := string(out)
	for _, want := range []string{"tier: medium", "color: orange", "- plastic_pollution"} {
		if !strings.Contains(s, want) {
			t.Errorf("marshalled YAML missing %q:\n%s", want, s)
		}
	}
}

func TestEnumParsing(t *testing.T) {
	if tier, err := ParseTier("hard"); err != nil || tier != TierHard {
		t.Errorf("ParseTier(hard) = %v, %v", tier, err)
	}
	if _, err := ParseTier("nightmare"); err == nil {
		t.Error("ParseTier should reject unknown names")
	}
	if c, err := ParseCharacter("blonde_girl"); err != nil || c.Look().Title != "Blonde Girl" {
		t.Errorf("ParseCharacter = %v, %v", c, err)
	}
	if b, err := ParseBackground("beach"); err != nil || b.Look().Glyph != '~' {
		t.Errorf("ParseBackground = %v, %v", b, err)
	}
	if b, err := ParseBag("sweet_bag"); err != nil || b != BagSweet {
		t.Errorf("ParseBag = %v, %v", b, err)
	}
	if TrashLandfill.Look().Title != "Landfill" {
		t.Error("landfill look missing")
	}
}

func TestDifficultyLookup(t *testing.T) {
	table := DefaultConfig().Difficulty

	e, ok := table.Lookup(TierMedium)
	if !ok || e.Speed != 10 || e.Label != "Medium" {
		t.Errorf("Lookup(medium) = %+v, %v", e, ok)
	}
	if _, ok := table[:1].Lookup(TierHard); ok {
		t.Error("Lookup should miss tiers absent from the table")
	}
}
