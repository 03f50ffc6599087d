package sim

import "math"

// Snapshot captures the observable engine state for determinism checks.
type Snapshot struct {
	Tick     uint64
	State    State
	Score    int
	Stats    Stats
	RNG      uint64
	Ammo     [len(Locations)]int
	Entities []View
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     e.tick,
		State:    e.fsm.Current(),
		Score:    e.game.Score,
		Stats:    e.game.Stats,
		RNG:      e.rng.State(),
		Entities: e.Entities(),
	}
	for _, loc := range Locations {
		snap.Ammo[loc], _ = e.Ammo(loc)
	}
	return snap
}

// Hash folds the snapshot into a single value.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.State)
	h = h*31 + uint64(s.Score)                //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Stats.Intercepts)     //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Stats.Shots)          //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Stats.Pickups)        //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Stats.StructuresLost) //#nosec G115 -- hash computation
	h = h*31 + s.RNG
	for _, a := range s.Ammo {
		h = h*31 + uint64(a) //#nosec G115 -- hash computation
	}
	for _, v := range s.Entities {
		h = h*31 + uint64(v.Handle)
		h = h*31 + uint64(v.Kind)
		h = h*31 + uint64(v.Team)
		h = h*31 + math.Float64bits(v.Pos.X)
		h = h*31 + math.Float64bits(v.Pos.Y)
		h = h*31 + math.Float64bits(v.Radius)
	}
	return h
}
