package sim

// resolveCollisions runs every proximity rule once. An entity removed by an
// earlier pair is skipped by every later pair, so nothing is counted twice.
func (e *Engine) resolveCollisions() {
	var (
		blasts    []*Entity // defender blasts
		defenders []*Entity // defender projectiles
		hostiles  []*Entity // hostile projectiles
		structs   []*Entity
		pickups   []*Entity
	)
	for _, ent := range e.world.order {
		if !ent.alive {
			continue
		}
		switch ent.Kind {
		case KindBlast:
			if ent.Team == TeamDefender {
				blasts = append(blasts, ent)
			}
		case KindProjectile:
			if ent.Team == TeamDefender {
				defenders = append(defenders, ent)
			} else {
				hostiles = append(hostiles, ent)
			}
		case KindStructure:
			structs = append(structs, ent)
		case KindPickup:
			pickups = append(pickups, ent)
		}
	}

	e.blastsVsHostiles(blasts, hostiles)
	e.blastsVsPickups(blasts, pickups)
	e.defendersVsHostiles(defenders, hostiles)
	e.hostilesVsStructures(hostiles, structs)
	e.groundImpacts(defenders, hostiles)
	e.defendersVsPickups(defenders, pickups)
}

// blastsVsHostiles lets one blast take out every hostile it overlaps.
func (e *Engine) blastsVsHostiles(blasts, hostiles []*Entity) {
	for _, b := range blasts {
		for _, h := range hostiles {
			if !h.alive || !circlesOverlap(b.Pos, b.Radius, h.Pos, h.Radius) {
				continue
			}
			e.despawn(h.Handle)
			e.bus.Score.Send(ScoreDelta{Points: e.params.MissileValue})
			e.game.Stats.Intercepts++
		}
	}
}

func (e *Engine) blastsVsPickups(blasts, pickups []*Entity) {
	for _, b := range blasts {
		for _, p := range pickups {
			if !p.alive || !circlesOverlap(b.Pos, b.Radius, p.Pos, p.Radius) {
				continue
			}
			e.despawn(p.Handle)
			e.collect(p.Pickup.Kind)
		}
	}
}

// defendersVsHostiles detonates a defender projectile on the first hostile
// it touches.
func (e *Engine) defendersVsHostiles(defenders, hostiles []*Entity) {
	for _, d := range defenders {
		for _, h := range hostiles {
			if !d.alive {
				break
			}
			if !h.alive || !circlesOverlap(d.Pos, d.Radius, h.Pos, h.Radius) {
				continue
			}
			e.despawn(h.Handle)
			e.detonate(d)
			e.bus.Score.Send(ScoreDelta{Points: e.params.MissileHitValue})
			e.game.Stats.Intercepts++
		}
	}
}

// hostilesVsStructures uses the structure footprint rather than a circle.
func (e *Engine) hostilesVsStructures(hostiles, structs []*Entity) {
	for _, h := range hostiles {
		for _, s := range structs {
			if !h.alive {
				break
			}
			if !s.alive || !s.Structure.Footprint.Contains(s.Pos, h.Pos) {
				continue
			}
			e.despawn(h.Handle)
			e.despawn(s.Handle)
			if s.Silo != nil {
				e.report.AmmoChanges = append(e.report.AmmoChanges, AmmoChanged{Location: s.Silo.Location, Ammo: 0})
			}
			e.bus.Blasts.Send(SpawnBlast{Pos: h.Pos, Team: TeamHostile, Multiplier: 1})
			e.bus.Debris.Send(SpawnDebris{X: s.Pos.X, Of: s.Structure.Kind})
			e.game.Stats.StructuresLost++
			e.sound(CauseCollision)
		}
	}
}

// groundImpacts detonates any projectile below the ground plane.
func (e *Engine) groundImpacts(groups ...[]*Entity) {
	ground := e.params.GroundY()
	for _, g := range groups {
		for _, m := range g {
			if m.alive && m.Pos.Y < ground {
				e.detonate(m)
			}
		}
	}
}

func (e *Engine) defendersVsPickups(defenders, pickups []*Entity) {
	for _, d := range defenders {
		for _, p := range pickups {
			if !d.alive {
				break
			}
			if !p.alive || !circlesOverlap(d.Pos, d.Radius, p.Pos, p.Radius) {
				continue
			}
			e.despawn(p.Handle)
			e.detonate(d)
			e.collect(p.Pickup.Kind)
		}
	}
}

// collect queues the effect of a pickup.
func (e *Engine) collect(k PickupKind) {
	p := e.params
	switch k {
	case PickupScore:
		e.bus.Score.Send(ScoreDelta{Points: p.PickupValue})
	case PickupBlastBonus:
		e.bus.BlastBonus.Send(BlastBonus{Multiplier: p.BlastBonus, Duration: p.BlastBonusTime})
	case PickupSpeedBonus:
		e.bus.SpeedBonus.Send(SpeedBonus{Speed: p.PlayerSpeed * p.SpeedBonus, Duration: p.SpeedBonusTime})
	}
	e.game.Stats.Pickups++
	e.sound(CausePickup)
}
