package sim

// slots is the number of equal-width columns structures are laid out in.
// Installations take the first, middle and last columns.
const slots = 9

var installationSlots = map[int]Location{0: Left, 4: Middle, slots - 1: Right}

// enterGame builds a fresh scene and zeroes the score.
func (e *Engine) enterGame() {
	e.clearWorld()
	e.bus.Clear()
	e.status.Reset()
	e.game.Reset()
	e.report.ScoreChanges = append(e.report.ScoreChanges, ScoreChanged{Total: 0})

	e.runs++
	e.rng = NewRNG(e.params.Seed + e.runs - 1)
	e.enemies = newEnemySpawner(e.params)
	e.pickups = newPowerupSpawner(e.params)

	e.setupScene()
}

// exitGame tears down every entity and drops the defender modifiers.
func (e *Engine) exitGame() {
	e.clearWorld()
	e.bus.Clear()
	e.status.Reset()
}

func (e *Engine) clearWorld() {
	for _, ent := range e.world.Live() {
		e.despawn(ent.Handle)
	}
	e.world.Compact()
	e.silos = [len(Locations)]Handle{}
}

func (e *Engine) setupScene() {
	p := e.params
	ground := p.GroundY()
	step := 2 * p.HalfWidth / slots

	e.spawn(&Entity{Kind: KindGround, Pos: V(0, ground)})

	for i := range slots {
		x := -p.HalfWidth + step*(float64(i)+0.5)
		if loc, ok := installationSlots[i]; ok {
			fp := p.Installation
			e.silos[loc] = e.spawn(&Entity{
				Kind:      KindStructure,
				Team:      TeamDefender,
				Pos:       V(x, ground+fp.HalfH-fp.OffsetY),
				Structure: &Structure{Kind: StructureInstallation, Footprint: fp},
				Silo:      &Silo{Location: loc, Ammo: p.SiloMaxAmmo},
			})
			e.report.AmmoChanges = append(e.report.AmmoChanges, AmmoChanged{Location: loc, Ammo: p.SiloMaxAmmo})
			continue
		}
		fp := p.Building
		e.spawn(&Entity{
			Kind:      KindStructure,
			Team:      TeamDefender,
			Pos:       V(x, ground+fp.HalfH-fp.OffsetY),
			Structure: &Structure{Kind: StructureBuilding, Footprint: fp},
		})
	}
}
