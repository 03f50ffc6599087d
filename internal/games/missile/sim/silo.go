package sim

// launch spends one round from the installation at loc. An empty or
// destroyed installation ignores the request.
func (e *Engine) launch(loc Location, target Vec2) bool {
	ent := e.world.Get(e.silos[loc])
	if ent == nil || ent.Silo == nil {
		return false
	}
	s := ent.Silo
	if s.Ammo <= 0 {
		return false
	}

	s.Ammo--
	if !s.Reloading {
		s.Reloading = true
		s.Reload = NewTimer(e.params.SiloReloadTime, Repeat)
	}
	e.report.AmmoChanges = append(e.report.AmmoChanges, AmmoChanged{Location: loc, Ammo: s.Ammo})

	e.bus.Missiles.Post(SpawnMissile{
		Origin: ent.Pos.Add(V(0, e.params.LaunchOffset)),
		Target: target,
		Team:   TeamDefender,
	})
	e.game.Stats.Shots++
	e.sound(CauseLaunch)
	return true
}

// reloadSilos adds one round per completed countdown and rearms the
// countdown while the installation is below capacity.
func (e *Engine) reloadSilos(dt float64) {
	e.world.Each(KindStructure, func(ent *Entity) {
		s := ent.Silo
		if s == nil || !s.Reloading {
			return
		}
		if !s.Reload.Tick(dt) {
			return
		}
		if s.Ammo < e.params.SiloMaxAmmo {
			s.Ammo++
			e.report.AmmoChanges = append(e.report.AmmoChanges, AmmoChanged{Location: s.Location, Ammo: s.Ammo})
		}
		// The repeating countdown keeps any overshoot for the next round.
		if s.Ammo >= e.params.SiloMaxAmmo {
			s.Reloading = false
		}
	})
}

// Ammo returns the rounds left at loc and false once the installation is gone.
func (e *Engine) Ammo(loc Location) (int, bool) {
	ent := e.world.Get(e.silos[loc])
	if ent == nil || ent.Silo == nil {
		return 0, false
	}
	return ent.Silo.Ammo, true
}

// ReloadProgress returns how far the current reload at loc has run, in
// [0, 1]. An idle or destroyed installation reports 1.
func (e *Engine) ReloadProgress(loc Location) float64 {
	ent := e.world.Get(e.silos[loc])
	if ent == nil || ent.Silo == nil || !ent.Silo.Reloading {
		return 1
	}
	return ent.Silo.Reload.Percent()
}

// Installation returns the position of the installation at loc.
func (e *Engine) Installation(loc Location) (Vec2, bool) {
	ent := e.world.Get(e.silos[loc])
	if ent == nil {
		return Vec2{}, false
	}
	return ent.Pos, true
}
