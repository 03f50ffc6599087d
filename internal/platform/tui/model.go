package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/missile-arcade/internal/config"
	"github.com/vovakirdan/missile-arcade/internal/core"
	"github.com/vovakirdan/missile-arcade/internal/registry"
	"github.com/vovakirdan/missile-arcade/internal/storage"
)

// resizer is implemented by games that can change screen size mid-run.
type resizer interface {
	Resize(w, h int)
}

// bindingsAware is implemented by games that list key bindings.
type bindingsAware interface {
	SetBindings(map[core.Action][]string)
}

// Options are the collaborators of a game session. Zero values mean no
// scores, no sound, default keys, and no logging.
type Options struct {
	Store  *storage.Store
	Sound  core.SoundSink
	Keys   *KeyMapper
	Logger *log.Logger
	Player string // recorded with each run, empty for local play
}

func (o Options) withDefaults() Options {
	if o.Sound == nil {
		o.Sound = core.SilentSink{}
	}
	if o.Keys == nil {
		o.Keys = DefaultKeyMapper()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	runSaved   bool // whether the current game over has been recorded
	embedded   bool // quitting returns to the caller instead of exiting
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	opts = opts.withDefaults()
	if ba, ok := game.(bindingsAware); ok {
		ba.SetBindings(opts.Keys.Bindings())
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "err", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	m.opts.Keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleMouse aims with pointer motion and fires with the three buttons.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.Pointer = core.Pointer{X: msg.X, Y: msg.Y, Valid: true}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.inputFrame.Set(core.ActionFireLeft)
	case tea.MouseButtonMiddle:
		m.inputFrame.Set(core.ActionFireMiddle)
	case tea.MouseButtonRight:
		m.inputFrame.Set(core.ActionFireRight)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one simulation step with the wall time since the last one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.inputFrame.Elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, s := range result.Sounds {
		m.opts.Sound.Play(s)
	}

	m.recordRun()

	if result.Quit {
		m.quitting = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the run once when the game reaches game over.
func (m *Model) recordRun() {
	if !m.gameState.GameOver {
		m.runSaved = false
		return
	}
	if m.runSaved {
		return
	}
	m.runSaved = true

	st := m.gameState.Stats
	m.opts.Logger.Info("game over",
		"game", m.game.ID(),
		"score", m.gameState.Score,
		"intercepts", st.Intercepts,
		"shots", st.Shots,
		"duration", st.Duration.Truncate(time.Second),
	)
	if m.opts.Store == nil {
		return
	}
	best, bestErr := m.opts.Store.HighScore(m.game.ID())
	if bestErr != nil {
		m.opts.Logger.Warn("could not read high score", "err", bestErr)
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		GameID:         m.game.ID(),
		Player:         m.opts.Player,
		Score:          m.gameState.Score,
		Intercepts:     st.Intercepts,
		Shots:          st.Shots,
		Pickups:        st.Pickups,
		StructuresLost: st.StructuresLost,
		Duration:       st.Duration,
	})
	switch {
	case err != nil:
		m.opts.Logger.Warn("could not save run", "err", err)
	case bestErr == nil && m.gameState.Score > best:
		m.opts.Logger.Info("new high score", "game", m.game.ID(), "score", m.gameState.Score, "previous", best)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := config.UserDir("screenshots")
	if dir == "" {
		return "", fmt.Errorf("tui: no home directory for screenshots")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the game asked to end the session.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run plays game in the alternate screen until it asks to quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
