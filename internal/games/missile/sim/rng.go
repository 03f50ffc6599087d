package sim

// RNG is a deterministic pseudo-random number generator (64-bit LCG).
// Spawners draw from it so that a seed and an input sequence fully
// determine a run.
type RNG struct {
	state uint64
}

// NewRNG creates a generator for the given seed. Zero is remapped to one.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next returns the next raw 64-bit value.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	// Top 53 bits give a uniformly spaced mantissa.
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is positive
}

// Bool returns a fair coin flip.
func (r *RNG) Bool() bool {
	return r.Next()>>63 == 1
}

// State returns the internal state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}
