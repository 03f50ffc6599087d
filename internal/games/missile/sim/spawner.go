package sim

// EnemySpawner launches single hostiles on a short timer and volleys on a
// longer one.
type EnemySpawner struct {
	single Timer
	volley Timer
	size   int
}

func newEnemySpawner(p Params) EnemySpawner {
	return EnemySpawner{
		single: NewTimer(p.EnemyInterval, Repeat),
		volley: NewTimer(p.VolleyInterval, Repeat),
		size:   p.VolleySize,
	}
}

func (s *EnemySpawner) tick(e *Engine, dt float64) {
	if s.single.Tick(dt) {
		e.launchHostile()
		if e.params.Pacer != nil {
			s.single.SetDuration(e.params.Pacer.Interval(e.params.EnemyInterval, e.game.Score, e.game.Stats.Elapsed))
		}
	}
	if s.volley.Tick(dt) {
		for range s.size {
			e.launchHostile()
		}
	}
}

// launchHostile queues a hostile from a random point on the top edge to a
// random point on the bottom edge.
func (e *Engine) launchHostile() {
	p := e.params
	origin := V(e.rng.Range(-p.HalfWidth, p.HalfWidth), p.HalfHeight)
	target := V(e.rng.Range(-p.HalfWidth, p.HalfWidth), -p.HalfHeight)
	speed := p.EnemySpeed
	if p.Pacer != nil {
		speed = p.Pacer.Speed(speed, e.game.Score, e.game.Stats.Elapsed)
	}
	e.bus.Missiles.Send(SpawnMissile{Origin: origin, Target: target, Team: TeamHostile, Speed: speed})
}

// PowerupSpawner drops a pickup from a side edge on a fixed timer.
type PowerupSpawner struct {
	timer   Timer
	enabled bool
}

func newPowerupSpawner(p Params) PowerupSpawner {
	return PowerupSpawner{
		timer:   NewTimer(p.PickupInterval, Repeat),
		enabled: p.Pickups,
	}
}

func (s *PowerupSpawner) tick(e *Engine, dt float64) {
	if !s.enabled {
		return
	}
	if s.timer.Tick(dt) {
		e.dropPickup()
	}
}

// dropPickup queues a pickup just outside the left or right edge, drifting
// inward, in the upper half of the playfield.
func (e *Engine) dropPickup() {
	p := e.params
	var kind PickupKind
	switch roll := e.rng.Float64(); {
	case roll < 1.0/3:
		kind = PickupScore
	case roll < 2.0/3:
		kind = PickupBlastBonus
	default:
		kind = PickupSpeedBonus
	}

	edge := p.HalfWidth + p.PickupRadius
	pos := V(-edge, e.rng.Range(0, p.HalfHeight))
	vel := V(p.PickupSpeed, 0)
	if e.rng.Bool() {
		pos.X = edge
		vel.X = -p.PickupSpeed
	}
	e.bus.Pickups.Send(SpawnPickup{Kind: kind, Pos: pos, Vel: vel})
}

func (e *Engine) spawnPickup(ev SpawnPickup) Handle {
	return e.spawn(&Entity{
		Kind:   KindPickup,
		Pos:    ev.Pos,
		Vel:    ev.Vel,
		Radius: e.params.PickupRadius,
		Pickup: &PickupInfo{Kind: ev.Kind},
	})
}

// retirePickup removes a pickup that has drifted past either edge by more
// than its own radius. No effect is applied.
func (e *Engine) retirePickup(pk *Entity) {
	edge := e.params.HalfWidth + pk.Radius
	if pk.Pos.X > edge || pk.Pos.X < -edge {
		e.despawn(pk.Handle)
	}
}
