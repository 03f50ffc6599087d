package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/missile-arcade/internal/core"
	_ "github.com/vovakirdan/missile-arcade/internal/games/missile"
	"github.com/vovakirdan/missile-arcade/internal/storage"
)

// stubGame replays a scripted result on every Step.
type stubGame struct {
	next    core.StepResult
	frames  []core.InputFrame
	resets  int
	resized [2]int
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState    { return g.next.State }
func (g *stubGame) Resize(w, h int)          { g.resized = [2]int{w, h} }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return g.next
}

type recordingSink struct {
	played []core.Sound
}

func (s *recordingSink) Play(snd core.Sound) { s.played = append(s.played, snd) }

func newTestModel(t *testing.T, g *stubGame, opts Options) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(g, cfg, opts)
	m.Init()
	return m
}

func tick(t *testing.T, m Model, at time.Time) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(TickMsg(at))
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestTickForwardsInputAndElapsed(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})

	next, _ := m.Update(runeKey('z'))
	m = next.(Model)

	start := time.Unix(100, 0)
	m, _ = tick(t, m, start)
	m, _ = tick(t, m, start.Add(20*time.Millisecond))

	if len(g.frames) != 2 {
		t.Fatalf("Step called %d times, want 2", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionFireLeft) {
		t.Error("first frame lost the key press")
	}
	if g.frames[1].Has(core.ActionFireLeft) {
		t.Error("actions were not cleared after the tick")
	}
	if g.frames[0].Elapsed != 0 {
		t.Errorf("first frame Elapsed = %v, want 0", g.frames[0].Elapsed)
	}
	if g.frames[1].Elapsed != 20*time.Millisecond {
		t.Errorf("second frame Elapsed = %v, want 20ms", g.frames[1].Elapsed)
	}
}

func TestMouseFiresFromInstallations(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})

	next, _ := m.Update(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m = next.(Model)
	tick(t, m, time.Unix(1, 0))

	in := g.frames[0]
	if !in.Has(core.ActionFireRight) {
		t.Error("right button did not fire right")
	}
	if !in.Pointer.Valid || in.Pointer.X != 10 || in.Pointer.Y != 5 {
		t.Errorf("Pointer = %+v, want (10,5) valid", in.Pointer)
	}
}

func TestSoundsReachSink(t *testing.T) {
	sink := &recordingSink{}
	g := &stubGame{next: core.StepResult{Sounds: []core.Sound{core.SoundLaunch, core.SoundExplosion}}}
	m := newTestModel(t, g, Options{Sound: sink})

	tick(t, m, time.Unix(1, 0))

	if len(sink.played) != 2 || sink.played[0] != core.SoundLaunch || sink.played[1] != core.SoundExplosion {
		t.Errorf("played = %v, want [launch explosion]", sink.played)
	}
}

func TestGameOverSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	g := &stubGame{next: core.StepResult{State: core.GameState{
		Score:    750,
		GameOver: true,
		Stats:    core.RunStats{Intercepts: 6, Shots: 8, Duration: 42 * time.Second},
	}}}
	m := newTestModel(t, g, Options{Store: store, Player: "bob"})

	at := time.Unix(1, 0)
	for i := range 3 {
		m, _ = tick(t, m, at.Add(time.Duration(i)*time.Second))
	}

	runs, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.Score != 750 || r.Player != "bob" || r.Intercepts != 6 || r.Shots != 8 || r.Duration != 42*time.Second {
		t.Errorf("saved run = %+v", r)
	}

	// A new game over after leaving the screen is a second run.
	g.next.State.GameOver = false
	m, _ = tick(t, m, at.Add(5*time.Second))
	g.next.State.GameOver = true
	tick(t, m, at.Add(6*time.Second))

	runs, _ = store.TopRuns("stub", 10)
	if len(runs) != 2 {
		t.Errorf("saved %d runs after second game over, want 2", len(runs))
	}
}

func TestHighScoreLogging(t *testing.T) {
	gameOver := func(score int) *stubGame {
		return &stubGame{next: core.StepResult{State: core.GameState{Score: score, GameOver: true}}}
	}

	t.Run("beats stored best", func(t *testing.T) {
		store := openStore(t)
		if _, err := store.SaveRun(storage.Run{GameID: "stub", Score: 100}); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
		var buf bytes.Buffer
		m := newTestModel(t, gameOver(300), Options{Store: store, Logger: log.New(&buf)})
		tick(t, m, time.Unix(1, 0))

		if !strings.Contains(buf.String(), "new high score") {
			t.Errorf("log = %q, want a new high score entry", buf.String())
		}
	})

	t.Run("unreadable best", func(t *testing.T) {
		store := openStore(t)
		store.Close()
		var buf bytes.Buffer
		m := newTestModel(t, gameOver(300), Options{Store: store, Logger: log.New(&buf)})
		tick(t, m, time.Unix(1, 0))

		out := buf.String()
		if !strings.Contains(out, "could not read high score") {
			t.Errorf("log = %q, want the read failure reported", out)
		}
		if strings.Contains(out, "new high score") {
			t.Errorf("log = %q, claimed a high score without a stored best", out)
		}
	})
}

func TestQuitEndsProgram(t *testing.T) {
	g := &stubGame{next: core.StepResult{Quit: true}}
	m := newTestModel(t, g, Options{})

	m, cmd := tick(t, m, time.Unix(1, 0))
	if !m.IsQuitting() {
		t.Fatal("model not quitting")
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestEmbeddedQuitReturnsToCaller(t *testing.T) {
	g := &stubGame{next: core.StepResult{Quit: true}}
	m := newTestModel(t, g, Options{})
	m.embedded = true

	m, cmd := tick(t, m, time.Unix(1, 0))
	if !m.IsQuitting() {
		t.Fatal("model not quitting")
	}
	if cmd != nil {
		t.Error("embedded model should not stop the program")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resized != [2]int{100, 30} {
		t.Errorf("Resize got %v, want [100 30]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("Reset called %d times, want 1 from Init only", g.resets)
	}
}

func TestSessionStartsGameFromPicker(t *testing.T) {
	cfg := core.DefaultConfig()
	s := NewSessionModel(cfg, Options{})
	if len(s.menu.items) != 2 {
		t.Fatalf("picker lists %d variants, want 2", len(s.menu.items))
	}

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.mode != modeGame || s.game == nil {
		t.Fatalf("mode = %v, want game", s.mode)
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	s := NewSessionModel(core.DefaultConfig(), Options{})

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.mode != modeScores {
		t.Fatalf("mode = %v, want scores", s.mode)
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.mode != modeMenu {
		t.Errorf("mode = %v, want menu after esc", s.mode)
	}
}
