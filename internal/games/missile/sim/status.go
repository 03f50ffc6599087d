package sim

// modifier is a value that falls back to a baseline when its timer runs out.
type modifier struct {
	base   float64
	value  float64
	timer  Timer
	active bool
}

func newModifier(base float64) modifier {
	return modifier{base: base, value: base}
}

func (m *modifier) set(v, seconds float64) {
	m.value = v
	m.timer = NewTimer(seconds, Once)
	m.active = true
}

func (m *modifier) tick(dt float64) {
	if !m.active {
		return
	}
	if m.timer.Tick(dt) {
		m.reset()
	}
}

func (m *modifier) reset() {
	m.value = m.base
	m.timer = Timer{}
	m.active = false
}

func (m *modifier) remaining() float64 {
	if !m.active {
		return 0
	}
	return m.timer.Remaining()
}

// PlayerStatus holds the defender's temporary modifiers.
type PlayerStatus struct {
	blast modifier
	speed modifier
}

// NewPlayerStatus creates a status at baseline for the given launch speed.
func NewPlayerStatus(baseSpeed float64) PlayerStatus {
	return PlayerStatus{
		blast: newModifier(1),
		speed: newModifier(baseSpeed),
	}
}

// BlastMultiplier returns the current blast-size multiplier.
func (s *PlayerStatus) BlastMultiplier() float64 {
	return s.blast.value
}

// MissileSpeed returns the current defender launch speed.
func (s *PlayerStatus) MissileSpeed() float64 {
	return s.speed.value
}

// BlastBonusLeft returns seconds left on the blast bonus, zero when inactive.
func (s *PlayerStatus) BlastBonusLeft() float64 {
	return s.blast.remaining()
}

// SpeedBonusLeft returns seconds left on the speed bonus, zero when inactive.
func (s *PlayerStatus) SpeedBonusLeft() float64 {
	return s.speed.remaining()
}

// ApplyBlastBonus sets the multiplier and restarts its expiry.
func (s *PlayerStatus) ApplyBlastBonus(ev BlastBonus) {
	s.blast.set(ev.Multiplier, ev.Duration)
}

// ApplySpeedBonus sets the launch speed and restarts its expiry.
func (s *PlayerStatus) ApplySpeedBonus(ev SpeedBonus) {
	s.speed.set(ev.Speed, ev.Duration)
}

// Tick advances both expiry timers.
func (s *PlayerStatus) Tick(dt float64) {
	s.blast.tick(dt)
	s.speed.tick(dt)
}

// Reset drops both modifiers to baseline regardless of time left.
func (s *PlayerStatus) Reset() {
	s.blast.reset()
	s.speed.reset()
}

// Stats are the per-run counters shown on the game-over screen.
type Stats struct {
	Intercepts     int     // hostile projectiles destroyed
	Shots          int     // defender projectiles launched
	Pickups        int     // pickups collected
	StructuresLost int     // buildings and installations destroyed
	Elapsed        float64 // seconds spent in Game
}

// GameStatus holds the running score and counters.
type GameStatus struct {
	Score int
	Stats Stats
}

// Reset zeroes the score and counters.
func (g *GameStatus) Reset() {
	*g = GameStatus{}
}
