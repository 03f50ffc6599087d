package sim

// State is a top-level game state.
type State uint8

const (
	StateMainMenu State = iota
	StateOptionsMenu
	StateGame
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main-menu"
	case StateOptionsMenu:
		return "options"
	case StateGame:
		return "game"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// request is a pending transition.
type request uint8

const (
	reqNone request = iota
	reqPlay
	reqOptions
	reqBack
	reqPause
	reqResume
	reqAbandon
	reqGameOver
	reqAcknowledge
	reqRestart
)

// StateMachine is a stack of states. Pause pushes over Game so that resuming
// pops back without leaving Game.
type StateMachine struct {
	stack   []State
	pending request

	// onEnterGame and onExitGame fire when Game is entered from below or
	// leaves the stack entirely. Pushing and popping Paused does neither.
	onEnterGame func()
	onExitGame  func()
}

// NewStateMachine starts in the main menu.
func NewStateMachine() *StateMachine {
	return &StateMachine{stack: []State{StateMainMenu}}
}

// Current returns the top of the stack.
func (m *StateMachine) Current() State {
	return m.stack[len(m.stack)-1]
}

// Stack returns a copy of the state stack, bottom first.
func (m *StateMachine) Stack() []State {
	out := make([]State, len(m.stack))
	copy(out, m.stack)
	return out
}

// InGame reports whether Game is anywhere on the stack.
func (m *StateMachine) InGame() bool {
	for _, s := range m.stack {
		if s == StateGame {
			return true
		}
	}
	return false
}

// submit records a transition to apply at the end of the tick. Requests not
// valid from the current state are ignored; game-over outranks anything
// else requested in the same tick.
func (m *StateMachine) submit(r request) {
	if !m.valid(r) {
		return
	}
	if m.pending == reqGameOver {
		return
	}
	m.pending = r
}

func (m *StateMachine) valid(r request) bool {
	switch m.Current() {
	case StateMainMenu:
		return r == reqPlay || r == reqOptions
	case StateOptionsMenu:
		return r == reqBack
	case StateGame:
		return r == reqPause || r == reqGameOver
	case StatePaused:
		return r == reqResume || r == reqAbandon
	case StateGameOver:
		return r == reqAcknowledge || r == reqRestart
	}
	return false
}

// apply performs the pending transition, if any.
func (m *StateMachine) apply() (Transition, bool) {
	r := m.pending
	m.pending = reqNone
	if r == reqNone {
		return Transition{}, false
	}

	from := m.Current()
	switch r {
	case reqPlay, reqRestart:
		m.replace(StateGame)
		m.enterGame()
	case reqOptions:
		m.replace(StateOptionsMenu)
	case reqBack, reqAcknowledge:
		m.replace(StateMainMenu)
	case reqPause:
		m.stack = append(m.stack, StatePaused)
	case reqResume:
		m.stack = m.stack[:len(m.stack)-1]
	case reqAbandon:
		m.stack = []State{StateMainMenu}
		m.exitGame()
	case reqGameOver:
		m.replace(StateGameOver)
		m.exitGame()
	}
	return Transition{From: from, To: m.Current()}, true
}

func (m *StateMachine) replace(s State) {
	m.stack[len(m.stack)-1] = s
}

func (m *StateMachine) enterGame() {
	if m.onEnterGame != nil {
		m.onEnterGame()
	}
}

func (m *StateMachine) exitGame() {
	if m.onExitGame != nil {
		m.onExitGame()
	}
}
