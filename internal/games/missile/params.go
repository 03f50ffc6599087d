package missile

import (
	"github.com/vovakirdan/missile-arcade/internal/config"
	"github.com/vovakirdan/missile-arcade/internal/core"
	"github.com/vovakirdan/missile-arcade/internal/games/missile/sim"
)

// buildParams converts the YAML config into engine parameters.
func buildParams(cfg config.MissileConfig, pickups bool, seed int64, pacer sim.Pacer) sim.Params {
	return sim.Params{
		HalfWidth:    cfg.World.HalfWidth,
		HalfHeight:   cfg.World.HalfHeight,
		GroundOffset: cfg.World.GroundOffset,

		PlayerSpeed:    cfg.Defender.MissileSpeed,
		EnemySpeed:     cfg.Enemy.MissileSpeed,
		MissileRadius:  cfg.Defender.MissileRadius,
		TargetEpsilon:  cfg.Defender.TargetEpsilon,
		LaunchOffset:   cfg.Defender.LaunchOffset,
		SiloMaxAmmo:    cfg.Defender.MaxAmmo,
		SiloReloadTime: cfg.Defender.ReloadTime,

		BlastRadius: cfg.Blast.Radius,
		BlastDecay:  cfg.Blast.Decay,
		BlastCutoff: cfg.Blast.Cutoff,

		Building:     footprint(cfg.Structures.Building),
		Installation: footprint(cfg.Structures.Installation),

		EnemyInterval:  cfg.Enemy.Interval,
		VolleyInterval: cfg.Enemy.VolleyInterval,
		VolleySize:     cfg.Enemy.VolleySize,

		Pickups:         pickups && cfg.Pickups.Enabled,
		PickupInterval:  cfg.Pickups.Interval,
		PickupSpeed:     cfg.Pickups.Speed,
		PickupRadius:    cfg.Pickups.Radius,
		BlastBonus:      cfg.Pickups.BlastBonus,
		BlastBonusTime:  cfg.Pickups.BlastBonusTime,
		SpeedBonus:      cfg.Pickups.SpeedBonus,
		SpeedBonusTime:  cfg.Pickups.SpeedBonusTime,
		MissileValue:    cfg.Scoring.Missile,
		MissileHitValue: cfg.Scoring.MissileHit,
		PickupValue:     cfg.Scoring.Pickup,

		Seed:  seed,
		Pacer: pacer,
	}
}

func footprint(f config.FootprintConfig) sim.Footprint {
	return sim.Footprint{HalfW: f.HalfWidth, HalfH: f.HalfHeight, OffsetY: f.OffsetY}
}

// Theme holds the resolved color of each scene element.
type Theme struct {
	Defender     core.Color
	Hostile      core.Color
	Trail        core.Color
	Blast        core.Color
	HostileBlast core.Color
	Building     core.Color
	Installation core.Color
	Debris       core.Color
	Ground       core.Color
	Pickup       core.Color
	HUD          core.Color
}

// DefaultTheme is used for any color name the config leaves out or misspells.
var DefaultTheme = Theme{
	Defender:     core.ColorBrightCyan,
	Hostile:      core.ColorBrightRed,
	Trail:        core.ColorDarkGray,
	Blast:        core.ColorBrightYellow,
	HostileBlast: core.ColorOrange,
	Building:     core.ColorBlue,
	Installation: core.ColorBrightGreen,
	Debris:       core.ColorGray,
	Ground:       core.ColorGreen,
	Pickup:       core.ColorBrightMagenta,
	HUD:          core.ColorWhite,
}

func buildTheme(tc config.ThemeConfig) Theme {
	t := DefaultTheme
	pick := func(dst *core.Color, name string) {
		if c, ok := core.ParseColor(name); ok {
			*dst = c
		}
	}
	pick(&t.Defender, tc.Defender)
	pick(&t.Hostile, tc.Hostile)
	pick(&t.Trail, tc.Trail)
	pick(&t.Blast, tc.Blast)
	pick(&t.HostileBlast, tc.HostileBlast)
	pick(&t.Building, tc.Building)
	pick(&t.Installation, tc.Installation)
	pick(&t.Debris, tc.Debris)
	pick(&t.Ground, tc.Ground)
	pick(&t.Pickup, tc.Pickup)
	pick(&t.HUD, tc.HUD)
	return t
}
