package config

import "math"

// minIntervalFactor keeps spawn intervals from collapsing to zero.
const minIntervalFactor = 0.2

// Pacer turns a run's score and elapsed seconds into a difficulty level
// between the configured floor and 1, and scales hostile speed and spawn
// intervals by it.
type Pacer struct {
	floor   float64
	on      bool
	scaling ScalingConfig

	// progress maps a run to 0..1, nil when progression is "none" or unknown.
	progress func(score int, elapsed float64) float64
}

// NewPacer builds a pacer from the difficulty section.
func NewPacer(cfg DifficultyConfig) *Pacer {
	p := &Pacer{
		floor:   unit(cfg.InitialLevel),
		on:      cfg.Enabled,
		scaling: cfg.Scaling,
	}

	span := cfg.Progression.MaxAt
	if span <= 0 {
		span = 1
	}
	switch cfg.Progression.Type {
	case "score":
		p.progress = func(score int, _ float64) float64 { return float64(score) / span }
	case "time":
		p.progress = func(_ int, elapsed float64) float64 { return elapsed / span }
	}
	return p
}

// SetInitialLevel moves the floor, clamped to 0..1.
func (p *Pacer) SetInitialLevel(level float64) {
	p.floor = unit(level)
}

// SetEnabled turns progression on or off. Off pins the level at the floor.
func (p *Pacer) SetEnabled(on bool) {
	p.on = on
}

// Enabled reports whether the level can rise during a run.
func (p *Pacer) Enabled() bool {
	return p.on && p.progress != nil
}

// Level returns the difficulty for a run at score after elapsed seconds.
func (p *Pacer) Level(score int, elapsed float64) float64 {
	if !p.Enabled() {
		return p.floor
	}
	return p.floor + unit(p.progress(score, elapsed))*(1-p.floor)
}

// Speed grows base toward base * (1 + speed_multiplier) at full level.
func (p *Pacer) Speed(base float64, score int, elapsed float64) float64 {
	return base * (1 + p.Level(score, elapsed)*p.scaling.SpeedMultiplier)
}

// Interval shrinks base by up to interval_reduction, never below a fifth.
func (p *Pacer) Interval(base float64, score int, elapsed float64) float64 {
	cut := p.Level(score, elapsed) * p.scaling.IntervalReduction
	return base * math.Max(minIntervalFactor, 1-cut)
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
