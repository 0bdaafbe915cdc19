package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads a rule profile.
// Search order: customPath -> ~/.ecosnake/configs/<profile>.yaml ->
// ./configs/<profile>.yaml -> embedded default.
// Files are decoded on top of the embedded default, so an override only
// needs the keys it changes. An explicit customPath must exist and parse;
// the implicit locations are skipped when missing or broken.
func Load(profile, customPath string) (Config, error) {
	base, err := embedded(profile)
	if err != nil {
		return Config{}, err
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decodeOver(base, data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{
		userConfigPath(profile + ".yaml"),
		filepath.Join("configs", profile+".yaml"),
	}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if cfg, err := decodeOver(base, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return base, base.Validate()
}

// embedded decodes the built-in YAML for a profile.
func embedded(profile string) (Config, error) {
	data := GetDefaultYAML(profile)
	if data == nil {
		return Config{}, fmt.Errorf("config: unknown profile %q", profile)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		if profile == ProfileEcoSnake {
			return DefaultConfig(), nil // Fallback to hardcoded if embed is broken
		}
		return Config{}, fmt.Errorf("config: embedded profile %q: %w", profile, err)
	}
	return cfg, nil
}

// decodeOver unmarshals data on top of a copy of base. Lists replace the
// base lists rather than merging element by element.
func decodeOver(base Config, data []byte) (Config, error) {
	cfg := base
	cfg.Difficulty = nil
	cfg.Trash = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Difficulty == nil {
		cfg.Difficulty = base.Difficulty
	}
	if cfg.Trash == nil {
		cfg.Trash = base.Trash
	}
	return cfg, nil
}

// Marshal renders a profile as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ecosnake", "configs", filename)
}
