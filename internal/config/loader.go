package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// appDir is the per-user directory under $HOME.
const appDir = ".missile"

// LoadMissile loads the missile game configuration.
// Search order: customPath -> ~/.missile/configs/missile.yaml -> ./configs/missile.yaml -> embedded default
func LoadMissile(customPath string) (MissileConfig, error) {
	// Files only override what they set; everything else keeps its default.
	cfg := DefaultMissileConfig()
	if err := yaml.Unmarshal(defaultMissileYAML, &cfg); err != nil {
		cfg = DefaultMissileConfig() // Fallback to hardcoded if embed fails
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("missile.yaml"), filepath.Join("configs", "missile.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if candidate.Validate() == nil {
			return candidate, nil
		}
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, appDir, "configs", filename)
}

// UserDir returns ~/.missile joined with elem, or empty if home is unavailable.
func UserDir(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, appDir}, elem...)...)
}

// ApplyMissilePreset modifies the config based on a difficulty preset.
func ApplyMissilePreset(cfg *MissileConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the defender based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Defender.ReloadTime = 2
		cfg.Enemy.VolleySize = 2
	case DifficultyHard:
		cfg.Defender.ReloadTime = 4
		cfg.Enemy.VolleySize = 4
	}
}

// Marshal renders cfg as YAML.
func Marshal(cfg MissileConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return data, nil
}
