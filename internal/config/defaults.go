package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/missile.yaml
var defaultMissileYAML []byte

//go:embed defaults/keymap.yaml
var defaultKeymapYAML []byte

// DefaultMissileConfig returns the hardcoded missile configuration.
func DefaultMissileConfig() MissileConfig {
	return MissileConfig{
		World: WorldConfig{
			HalfWidth:    640,
			HalfHeight:   360,
			GroundOffset: 64,
		},
		Defender: DefenderConfig{
			MissileSpeed:  200,
			MissileRadius: 3.5,
			TargetEpsilon: 10,
			LaunchOffset:  16,
			MaxAmmo:       3,
			ReloadTime:    3,
		},
		Enemy: EnemyConfig{
			MissileSpeed:   120,
			Interval:       3,
			VolleyInterval: 12,
			VolleySize:     3,
		},
		Blast: BlastConfig{
			Radius: 32,
			Decay:  1,
			Cutoff: 0.01,
		},
		Structures: StructuresConfig{
			Building:     FootprintConfig{HalfWidth: 16, HalfHeight: 20, OffsetY: -12},
			Installation: FootprintConfig{HalfWidth: 32, HalfHeight: 16, OffsetY: 0},
		},
		Pickups: PickupsConfig{
			Enabled:        true,
			Interval:       10,
			Speed:          100,
			Radius:         16,
			BlastBonus:     2,
			BlastBonusTime: 10,
			SpeedBonus:     1.5,
			SpeedBonusTime: 10,
		},
		Scoring: ScoringConfig{
			Missile:    10,
			MissileHit: 20,
			Pickup:     100,
		},
		Theme: ThemeConfig{
			Defender:     "bright-cyan",
			Hostile:      "bright-red",
			Trail:        "dark-gray",
			Blast:        "bright-yellow",
			HostileBlast: "orange",
			Building:     "blue",
			Installation: "bright-green",
			Debris:       "gray",
			Ground:       "green",
			Pickup:       "bright-magenta",
			HUD:          "white",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 300, // five minutes
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 0.6,
			},
		},
	}
}

// DefaultKeymap returns the embedded key bindings.
func DefaultKeymap() KeymapConfig {
	var km KeymapConfig
	if err := yaml.Unmarshal(defaultKeymapYAML, &km); err != nil || len(km.Bindings) == 0 {
		return hardcodedKeymap()
	}
	return km
}

func hardcodedKeymap() KeymapConfig {
	return KeymapConfig{Bindings: map[string][]string{
		"up":          {"w", "up"},
		"down":        {"s", "down"},
		"left":        {"a", "left"},
		"right":       {"d", "right"},
		"fire_left":   {"1", "z"},
		"fire_middle": {"2", "x"},
		"fire_right":  {"3", "c"},
		"confirm":     {"enter", " "},
		"back":        {"b", "backspace"},
		"pause":       {"p", "esc"},
		"options":     {"o"},
		"restart":     {"r"},
		"quit":        {"q", "ctrl+c"},
	}}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "missile":
		return defaultMissileYAML
	case "keymap":
		return defaultKeymapYAML
	default:
		return nil
	}
}
