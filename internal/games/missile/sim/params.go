package sim

import (
	"errors"
	"fmt"
)

// ErrConfig marks parameters the engine cannot lay out a scene from.
var ErrConfig = errors.New("sim: invalid configuration")

// Pacer scales hostile pressure as a run progresses. elapsed is seconds of
// Game-state time.
type Pacer interface {
	Speed(base float64, score int, elapsed float64) float64
	Interval(base float64, score int, elapsed float64) float64
}

// Params holds every tunable of a run.
type Params struct {
	HalfWidth    float64 // viewport half extents in world units
	HalfHeight   float64
	GroundOffset float64 // impact plane height above the bottom edge

	PlayerSpeed    float64
	EnemySpeed     float64
	MissileRadius  float64
	TargetEpsilon  float64 // squared distance at which a projectile has arrived
	LaunchOffset   float64 // launch point height above the installation centre
	SiloMaxAmmo    int
	SiloReloadTime float64

	BlastRadius float64
	BlastDecay  float64 // size units lost per second
	BlastCutoff float64

	Building     Footprint
	Installation Footprint

	EnemyInterval  float64
	VolleyInterval float64
	VolleySize     int

	Pickups         bool
	PickupInterval  float64
	PickupSpeed     float64
	PickupRadius    float64
	BlastBonus      float64
	BlastBonusTime  float64
	SpeedBonus      float64 // multiplier over PlayerSpeed
	SpeedBonusTime  float64
	MissileValue    int
	MissileHitValue int
	PickupValue     int

	Seed  int64
	Pacer Pacer
}

// DefaultParams returns the standard 1280x720 tuning.
func DefaultParams() Params {
	return Params{
		HalfWidth:    640,
		HalfHeight:   360,
		GroundOffset: 64,

		PlayerSpeed:    200,
		EnemySpeed:     120,
		MissileRadius:  3.5,
		TargetEpsilon:  10,
		LaunchOffset:   16,
		SiloMaxAmmo:    3,
		SiloReloadTime: 3,

		BlastRadius: 32,
		BlastDecay:  1,
		BlastCutoff: 0.01,

		Building:     Footprint{HalfW: 16, HalfH: 20, OffsetY: -12},
		Installation: Footprint{HalfW: 32, HalfH: 16, OffsetY: 0},

		EnemyInterval:  3,
		VolleyInterval: 12,
		VolleySize:     3,

		Pickups:         true,
		PickupInterval:  10,
		PickupSpeed:     100,
		PickupRadius:    16,
		BlastBonus:      2,
		BlastBonusTime:  10,
		SpeedBonus:      1.5,
		SpeedBonusTime:  10,
		MissileValue:    10,
		MissileHitValue: 20,
		PickupValue:     100,
	}
}

// Validate reports the first parameter that makes a scene impossible.
func (p Params) Validate() error {
	switch {
	case p.HalfWidth <= 0 || p.HalfHeight <= 0:
		return fmt.Errorf("%w: viewport %gx%g unavailable", ErrConfig, p.HalfWidth*2, p.HalfHeight*2)
	case p.GroundOffset < 0 || p.GroundOffset >= 2*p.HalfHeight:
		return fmt.Errorf("%w: ground offset %g outside viewport", ErrConfig, p.GroundOffset)
	case p.SiloMaxAmmo <= 0:
		return fmt.Errorf("%w: installation capacity must be positive", ErrConfig)
	case p.SiloReloadTime <= 0:
		return fmt.Errorf("%w: reload time must be positive", ErrConfig)
	case p.BlastDecay <= 0:
		return fmt.Errorf("%w: blast decay must be positive", ErrConfig)
	case p.BlastCutoff <= 0 || p.BlastCutoff >= 1:
		return fmt.Errorf("%w: blast cutoff must be in (0, 1)", ErrConfig)
	case p.Building.HalfW <= 0 || p.Building.HalfH <= 0:
		return fmt.Errorf("%w: building footprint unavailable", ErrConfig)
	case p.Installation.HalfW <= 0 || p.Installation.HalfH <= 0:
		return fmt.Errorf("%w: installation footprint unavailable", ErrConfig)
	case p.EnemyInterval <= 0 || p.VolleyInterval <= 0:
		return fmt.Errorf("%w: spawn intervals must be positive", ErrConfig)
	case p.Pickups && p.PickupInterval <= 0:
		return fmt.Errorf("%w: pickup interval must be positive", ErrConfig)
	case p.PlayerSpeed <= 0 || p.EnemySpeed <= 0:
		return fmt.Errorf("%w: projectile speeds must be positive", ErrConfig)
	}
	return nil
}

// GroundY returns the height below which projectiles detonate.
func (p Params) GroundY() float64 {
	return -p.HalfHeight + p.GroundOffset
}
