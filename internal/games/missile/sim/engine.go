package sim

// Action is an abstract input signal for one tick.
type Action uint8

const (
	ActFireLeft Action = iota
	ActFireMiddle
	ActFireRight
	ActPause
	ActConfirm
	ActBack
	ActOptions
	ActRestart
)

// Input is what the input collaborator hands the engine each tick.
type Input struct {
	Actions []Action
	Target  Vec2 // world-space aim point
}

// Has reports whether a was fired this tick.
func (in Input) Has(a Action) bool {
	for _, x := range in.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// Engine runs the simulation. It is not safe for concurrent use; one
// goroutine drives Tick and reads the queries between ticks.
type Engine struct {
	params  Params
	world   *World
	bus     Bus
	fsm     *StateMachine
	status  PlayerStatus
	game    GameStatus
	rng     *RNG
	enemies EnemySpawner
	pickups PowerupSpawner
	silos   [len(Locations)]Handle
	tick    uint64
	runs    int64
	report  Report
}

// New validates p and creates an engine sitting in the main menu.
func New(p Params) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		params: p,
		world:  NewWorld(),
		fsm:    NewStateMachine(),
		status: NewPlayerStatus(p.PlayerSpeed),
		rng:    NewRNG(p.Seed),
	}
	e.enemies = newEnemySpawner(p)
	e.pickups = newPowerupSpawner(p)
	e.fsm.onEnterGame = e.enterGame
	e.fsm.onExitGame = e.exitGame
	return e, nil
}

// Tick advances the simulation by dt seconds. Gameplay systems only run in
// the Game state; a non-positive dt leaves the world untouched.
func (e *Engine) Tick(dt float64, in Input) Report {
	e.tick++
	e.report = Report{Tick: e.tick}

	e.handleInput(in)
	if e.fsm.Current() == StateGame && dt > 0 {
		e.step(dt, in)
	}

	if t, ok := e.fsm.apply(); ok {
		e.report.Transitions = append(e.report.Transitions, t)
		cause := CauseUI
		if t.To == StateGameOver {
			cause = CauseGameOver
		}
		e.report.Sounds = append(e.report.Sounds, Sound{Cause: cause})
	}
	e.report.State = e.fsm.Current()
	return e.report
}

func (e *Engine) handleInput(in Input) {
	switch e.fsm.Current() {
	case StateMainMenu:
		if in.Has(ActConfirm) {
			e.fsm.submit(reqPlay)
		} else if in.Has(ActOptions) {
			e.fsm.submit(reqOptions)
		}
	case StateOptionsMenu:
		if in.Has(ActBack) || in.Has(ActPause) {
			e.fsm.submit(reqBack)
		}
	case StateGame:
		if in.Has(ActPause) {
			e.fsm.submit(reqPause)
		}
	case StatePaused:
		if in.Has(ActBack) {
			e.fsm.submit(reqAbandon)
		} else if in.Has(ActPause) || in.Has(ActConfirm) {
			e.fsm.submit(reqResume)
		}
	case StateGameOver:
		if in.Has(ActRestart) {
			e.fsm.submit(reqRestart)
		} else if in.Has(ActConfirm) || in.Has(ActBack) {
			e.fsm.submit(reqAcknowledge)
		}
	}
}

// step is one Game-state tick.
func (e *Engine) step(dt float64, in Input) {
	e.bus.Advance()
	e.fire(in)
	e.applyEvents()
	e.integrate(dt)
	e.retire()
	e.resolveCollisions()
	e.advanceTimers(dt)
	e.game.Stats.Elapsed += dt
	if e.StructuresLeft() == 0 {
		e.fsm.submit(reqGameOver)
	}
	e.world.Compact()
}

func (e *Engine) fire(in Input) {
	for i, act := range [...]Action{ActFireLeft, ActFireMiddle, ActFireRight} {
		if in.Has(act) {
			e.launch(Locations[i], in.Target)
		}
	}
}

func (e *Engine) applyEvents() {
	for _, ev := range e.bus.Missiles.Drain() {
		e.spawnMissile(ev)
	}
	for _, ev := range e.bus.Blasts.Drain() {
		e.spawnBlast(ev)
	}
	for _, ev := range e.bus.Debris.Drain() {
		e.spawnDebris(ev)
	}
	for _, ev := range e.bus.Pickups.Drain() {
		e.spawnPickup(ev)
	}
	for _, ev := range e.bus.Score.Drain() {
		e.game.Score += ev.Points
		e.report.ScoreChanges = append(e.report.ScoreChanges, ScoreChanged{Total: e.game.Score})
	}
	for _, ev := range e.bus.BlastBonus.Drain() {
		e.status.ApplyBlastBonus(ev)
	}
	for _, ev := range e.bus.SpeedBonus.Drain() {
		e.status.ApplySpeedBonus(ev)
	}
}

// integrate moves every entity that was not spawned in this tick.
func (e *Engine) integrate(dt float64) {
	for _, ent := range e.world.order {
		if !ent.alive || ent.Vel.IsZero() || ent.Born == e.tick {
			continue
		}
		ent.Pos = ent.Pos.Add(ent.Vel.Scale(dt))
	}
}

// retire removes projectiles that arrived and pickups that drifted away.
func (e *Engine) retire() {
	e.world.Each(KindProjectile, func(m *Entity) {
		if e.arrived(m) {
			e.detonate(m)
		}
	})
	e.world.Each(KindPickup, e.retirePickup)
}

// arrived reports whether m is within reach of its target or has stepped
// past it. A long step can carry a fast projectile over the target
// without ever landing inside the epsilon.
func (e *Engine) arrived(m *Entity) bool {
	toTarget := m.Missile.Target.Sub(m.Pos)
	if toTarget.LenSq() < e.params.TargetEpsilon {
		return true
	}
	return !m.Vel.IsZero() && toTarget.Dot(m.Vel) <= 0
}

func (e *Engine) advanceTimers(dt float64) {
	e.decayBlasts(dt)
	e.reloadSilos(dt)
	e.status.Tick(dt)
	e.enemies.tick(e, dt)
	e.pickups.tick(e, dt)
}

func (e *Engine) spawn(ent *Entity) Handle {
	ent.Born = e.tick
	h := e.world.Spawn(ent)
	e.report.Notices = append(e.report.Notices, Notice{
		Handle: h, Kind: ent.Kind, Team: ent.Team, Pos: ent.Pos, Spawned: true,
	})
	return h
}

// despawn removes h and reports whether it was still alive.
func (e *Engine) despawn(h Handle) bool {
	ent := e.world.Get(h)
	if ent == nil || !e.world.Despawn(h) {
		return false
	}
	e.report.Notices = append(e.report.Notices, Notice{
		Handle: h, Kind: ent.Kind, Team: ent.Team, Pos: ent.Pos,
	})
	return true
}

func (e *Engine) multiplierFor(t Team) float64 {
	if t == TeamDefender {
		return e.status.BlastMultiplier()
	}
	return 1
}

func (e *Engine) sound(c Cause) {
	e.report.Sounds = append(e.report.Sounds, Sound{Cause: c})
}

// State returns the current top-level state.
func (e *Engine) State() State {
	return e.fsm.Current()
}

// Stack returns the state stack, bottom first.
func (e *Engine) Stack() []State {
	return e.fsm.Stack()
}

// TickCount returns the number of ticks run so far.
func (e *Engine) TickCount() uint64 {
	return e.tick
}

// Params returns the parameters the engine was built with.
func (e *Engine) Params() Params {
	return e.params
}

// Score returns the running score.
func (e *Engine) Score() int {
	return e.game.Score
}

// Stats returns the run counters.
func (e *Engine) Stats() Stats {
	return e.game.Stats
}

// StatusView is a snapshot of the defender modifiers.
type StatusView struct {
	BlastMultiplier float64
	MissileSpeed    float64
	BlastBonusLeft  float64
	SpeedBonusLeft  float64
}

// Status returns the defender modifiers.
func (e *Engine) Status() StatusView {
	return StatusView{
		BlastMultiplier: e.status.BlastMultiplier(),
		MissileSpeed:    e.status.MissileSpeed(),
		BlastBonusLeft:  e.status.BlastBonusLeft(),
		SpeedBonusLeft:  e.status.SpeedBonusLeft(),
	}
}

// Entities returns a read-only copy of every live entity in spawn order.
func (e *Engine) Entities() []View {
	live := e.world.Live()
	out := make([]View, len(live))
	for i, ent := range live {
		out[i] = ent.view()
	}
	return out
}

// StructuresLeft returns the number of standing buildings and installations.
func (e *Engine) StructuresLeft() int {
	return e.world.Count(func(ent *Entity) bool { return ent.Kind == KindStructure })
}

// Count returns the number of live entities of kind k on team t.
func (e *Engine) Count(k Kind, t Team) int {
	return e.world.Count(func(ent *Entity) bool { return ent.Kind == k && ent.Team == t })
}

// PendingEvents returns the number of internal events waiting for a later tick.
func (e *Engine) PendingEvents() int {
	return e.bus.Pending()
}
