// Package config provides YAML-based game configuration loading, key
// bindings, and difficulty management for the missile arcade.
package config

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned when a keymap names an action that does not exist.
var ErrUnknownAction = errors.New("config: unknown action")

// MissileConfig contains all configuration for the missile game.
type MissileConfig struct {
	World      WorldConfig      `yaml:"world"`
	Defender   DefenderConfig   `yaml:"defender"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Blast      BlastConfig      `yaml:"blast"`
	Structures StructuresConfig `yaml:"structures"`
	Pickups    PickupsConfig    `yaml:"pickups"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Theme      ThemeConfig      `yaml:"theme"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig sizes the playfield. The origin is the center of the screen.
type WorldConfig struct {
	HalfWidth    float64 `yaml:"half_width"`
	HalfHeight   float64 `yaml:"half_height"`
	GroundOffset float64 `yaml:"ground_offset"` // ground plane height above the bottom edge
}

// DefenderConfig defines the player's installations and projectiles.
type DefenderConfig struct {
	MissileSpeed  float64 `yaml:"missile_speed"`
	MissileRadius float64 `yaml:"missile_radius"`
	TargetEpsilon float64 `yaml:"target_epsilon"` // squared distance that counts as arrived
	LaunchOffset  float64 `yaml:"launch_offset"`
	MaxAmmo       int     `yaml:"max_ammo"`
	ReloadTime    float64 `yaml:"reload_time"` // seconds per round
}

// EnemyConfig defines hostile spawning.
type EnemyConfig struct {
	MissileSpeed   float64 `yaml:"missile_speed"`
	Interval       float64 `yaml:"interval"`        // seconds between single launches
	VolleyInterval float64 `yaml:"volley_interval"` // seconds between volleys
	VolleySize     int     `yaml:"volley_size"`
}

// BlastConfig defines explosion size and decay.
type BlastConfig struct {
	Radius float64 `yaml:"radius"`
	Decay  float64 `yaml:"decay"`  // size lost per second
	Cutoff float64 `yaml:"cutoff"` // size below which a blast is removed
}

// FootprintConfig is a structure hit box.
type FootprintConfig struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	OffsetY    float64 `yaml:"offset_y"`
}

// StructuresConfig holds the footprints of both structure kinds.
type StructuresConfig struct {
	Building     FootprintConfig `yaml:"building"`
	Installation FootprintConfig `yaml:"installation"`
}

// PickupsConfig defines pickup spawning and effects.
type PickupsConfig struct {
	Enabled        bool    `yaml:"enabled"`
	Interval       float64 `yaml:"interval"`
	Speed          float64 `yaml:"speed"`
	Radius         float64 `yaml:"radius"`
	BlastBonus     float64 `yaml:"blast_bonus"` // blast radius multiplier
	BlastBonusTime float64 `yaml:"blast_bonus_time"`
	SpeedBonus     float64 `yaml:"speed_bonus"` // defender speed multiplier
	SpeedBonusTime float64 `yaml:"speed_bonus_time"`
}

// ScoringConfig defines points per event.
type ScoringConfig struct {
	Missile    int `yaml:"missile"`     // hostile caught in a blast
	MissileHit int `yaml:"missile_hit"` // hostile hit directly
	Pickup     int `yaml:"pickup"`
}

// ThemeConfig names the palette color for each scene element.
type ThemeConfig struct {
	Defender     string `yaml:"defender"`
	Hostile      string `yaml:"hostile"`
	Trail        string `yaml:"trail"`
	Blast        string `yaml:"blast"`
	HostileBlast string `yaml:"hostile_blast"`
	Building     string `yaml:"building"`
	Installation string `yaml:"installation"`
	Debris       string `yaml:"debris"`
	Ground       string `yaml:"ground"`
	Pickup       string `yaml:"pickup"`
	HUD          string `yaml:"hud"`
}

// Validate reports the first setting that would make the game unplayable.
func (c MissileConfig) Validate() error {
	switch {
	case c.World.HalfWidth <= 0 || c.World.HalfHeight <= 0:
		return fmt.Errorf("config: world size must be positive")
	case c.Defender.MaxAmmo <= 0:
		return fmt.Errorf("config: defender max_ammo must be positive")
	case c.Defender.ReloadTime <= 0:
		return fmt.Errorf("config: defender reload_time must be positive")
	case c.Enemy.Interval <= 0 || c.Enemy.VolleyInterval <= 0:
		return fmt.Errorf("config: enemy intervals must be positive")
	case c.Blast.Radius <= 0 || c.Blast.Decay <= 0:
		return fmt.Errorf("config: blast radius and decay must be positive")
	case c.Pickups.Enabled && c.Pickups.Interval <= 0:
		return fmt.Errorf("config: pickup interval must be positive")
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // added to hostile speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // fraction cut from the spawn interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in the order the options menu cycles them.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", name)
}

// NextPreset returns the preset after p, wrapping around.
func NextPreset(p DifficultyPreset) DifficultyPreset {
	all := Presets()
	for i, v := range all {
		if v == p {
			return all[(i+1)%len(all)]
		}
	}
	return DifficultyNormal
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
