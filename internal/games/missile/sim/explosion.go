package sim

func (e *Engine) spawnBlast(ev SpawnBlast) Handle {
	mult := ev.Multiplier
	if mult <= 0 {
		mult = 1
	}
	base := e.params.BlastRadius * mult
	h := e.spawn(&Entity{
		Kind:   KindBlast,
		Team:   ev.Team,
		Pos:    ev.Pos,
		Radius: base,
		Blast:  &Blast{Size: 1, BaseRadius: base},
	})
	e.sound(CauseExplosion)
	return h
}

// decayBlasts shrinks every blast older than this tick and removes the ones
// that fell below the cutoff.
func (e *Engine) decayBlasts(dt float64) {
	e.world.Each(KindBlast, func(b *Entity) {
		if b.Born == e.tick {
			return
		}
		b.Blast.Size -= e.params.BlastDecay * dt
		b.Radius = b.Blast.BaseRadius * b.Blast.Size
		if b.Blast.Size < e.params.BlastCutoff {
			e.despawn(b.Handle)
		}
	})
}

func (e *Engine) spawnDebris(ev SpawnDebris) Handle {
	return e.spawn(&Entity{
		Kind:   KindDebris,
		Pos:    V(ev.X, e.params.GroundY()+16),
		Debris: &Debris{Of: ev.Of},
	})
}
