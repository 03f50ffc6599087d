package sim

// spawnMissile creates a projectile flying from ev.Origin toward ev.Target.
func (e *Engine) spawnMissile(ev SpawnMissile) Handle {
	speed := ev.Speed
	if speed <= 0 {
		speed = e.params.EnemySpeed
		if ev.Team == TeamDefender {
			speed = e.status.MissileSpeed()
		}
	}
	return e.spawn(&Entity{
		Kind:    KindProjectile,
		Team:    ev.Team,
		Pos:     ev.Origin,
		Vel:     ev.Target.Sub(ev.Origin).Normalize().Scale(speed),
		Radius:  e.params.MissileRadius,
		Missile: &Missile{Origin: ev.Origin, Target: ev.Target},
	})
}

// detonate retires a projectile and queues a blast where it stands.
func (e *Engine) detonate(m *Entity) {
	if !e.despawn(m.Handle) {
		return
	}
	e.bus.Blasts.Send(SpawnBlast{
		Pos:        m.Pos,
		Team:       m.Team,
		Multiplier: e.multiplierFor(m.Team),
	})
}
