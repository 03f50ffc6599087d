package sim

import (
	"slices"
	"testing"
)

func TestStateTransitions(t *testing.T) {
	e, err := New(quietParams())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	steps := []struct {
		name  string
		in    Input
		want  State
		stack []State
	}{
		{"options", press(ActOptions), StateOptionsMenu, []State{StateOptionsMenu}},
		{"options back", press(ActBack), StateMainMenu, []State{StateMainMenu}},
		{"ignored in menu", press(ActPause), StateMainMenu, []State{StateMainMenu}},
		{"play", press(ActConfirm), StateGame, []State{StateGame}},
		{"pause", press(ActPause), StatePaused, []State{StateGame, StatePaused}},
		{"resume", press(ActConfirm), StateGame, []State{StateGame}},
		{"pause again", press(ActPause), StatePaused, []State{StateGame, StatePaused}},
		{"abandon", press(ActBack), StateMainMenu, []State{StateMainMenu}},
	}
	for _, s := range steps {
		r := e.Tick(frame, s.in)
		if r.State != s.want || e.State() != s.want {
			t.Fatalf("%s: State = %v, expected %v", s.name, e.State(), s.want)
		}
		if !slices.Equal(e.Stack(), s.stack) {
			t.Errorf("%s: Stack() = %v, expected %v", s.name, e.Stack(), s.stack)
		}
	}
}

func TestTransitionSounds(t *testing.T) {
	e, _ := New(quietParams())

	r := e.Tick(frame, press(ActConfirm))
	if len(r.Transitions) != 1 || r.Transitions[0] != (Transition{From: StateMainMenu, To: StateGame}) {
		t.Fatalf("Transitions = %v", r.Transitions)
	}
	if !slices.Contains(r.Sounds, Sound{Cause: CauseUI}) {
		t.Errorf("menu transition missing UI sound: %v", r.Sounds)
	}
	if len(r.ScoreChanges) == 0 || r.ScoreChanges[0].Total != 0 {
		t.Errorf("entering game should report a zero score: %v", r.ScoreChanges)
	}
	if len(r.AmmoChanges) != len(Locations) {
		t.Errorf("entering game reported %d ammo changes, expected %d", len(r.AmmoChanges), len(Locations))
	}
}

func TestGameOverOutranksPause(t *testing.T) {
	e := startGame(t, quietParams())
	for _, s := range e.world.Select(func(ent *Entity) bool { return ent.Kind == KindStructure }) {
		e.despawn(s.Handle)
	}

	r := e.Tick(frame, press(ActPause))
	if e.State() != StateGameOver {
		t.Fatalf("State() = %v, expected game over", e.State())
	}
	if !slices.Contains(r.Sounds, Sound{Cause: CauseGameOver}) {
		t.Errorf("missing game-over sound: %v", r.Sounds)
	}
}

func TestGameOverRestartAndAcknowledge(t *testing.T) {
	e := startGame(t, quietParams())
	for _, s := range e.world.Select(func(ent *Entity) bool { return ent.Kind == KindStructure }) {
		e.despawn(s.Handle)
	}
	e.Tick(frame, Input{})
	if e.State() != StateGameOver {
		t.Fatalf("State() = %v, expected game over", e.State())
	}
	lost := e.Stats().StructuresLost

	// Stats stay readable on the game-over screen.
	e.Tick(frame, Input{})
	if e.Stats().StructuresLost != lost {
		t.Error("stats changed on the game-over screen")
	}

	e.Tick(frame, press(ActRestart))
	if e.State() != StateGame {
		t.Fatalf("State() = %v after restart, expected game", e.State())
	}
	if e.StructuresLeft() != 9 || e.Score() != 0 {
		t.Errorf("restart did not rebuild the scene: structures=%d score=%d", e.StructuresLeft(), e.Score())
	}

	for _, s := range e.world.Select(func(ent *Entity) bool { return ent.Kind == KindStructure }) {
		e.despawn(s.Handle)
	}
	e.Tick(frame, Input{})
	e.Tick(frame, press(ActConfirm))
	if e.State() != StateMainMenu {
		t.Errorf("State() = %v after acknowledge, expected main menu", e.State())
	}
}

func TestInvalidRequestsIgnored(t *testing.T) {
	m := NewStateMachine()
	m.submit(reqPause)
	m.submit(reqAbandon)
	if _, ok := m.apply(); ok {
		t.Error("pause and abandon are not valid from the main menu")
	}

	m.submit(reqPlay)
	if tr, ok := m.apply(); !ok || tr.To != StateGame {
		t.Fatalf("play transition = %v, %v", tr, ok)
	}
	m.submit(reqGameOver)
	m.submit(reqPause)
	if tr, _ := m.apply(); tr.To != StateGameOver {
		t.Errorf("game over lost to a later request: %v", tr)
	}
}

func TestRunsReseed(t *testing.T) {
	e := startGame(t, quietParams())
	first := e.rng.State()

	e.Tick(frame, press(ActPause))
	e.Tick(frame, press(ActBack))
	e.Tick(frame, press(ActConfirm))
	if e.rng.State() == first {
		t.Error("second run reused the first run's seed")
	}
}
