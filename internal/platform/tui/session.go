package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/missile-arcade/internal/core"
	"github.com/vovakirdan/missile-arcade/internal/registry"
)

type sessionMode int

const (
	modeMenu sessionMode = iota
	modeGame
	modeScores
)

// SessionModel drives one connection through picker, game and scoreboard
// inside a single program. Sub-models that ask to quit hand control back
// here instead of ending the program.
type SessionModel struct {
	opts   Options
	config core.RuntimeConfig
	mode   sessionMode

	menu   MenuModel
	game   *Model
	scores ScoreboardModel

	quitting bool
}

// NewSessionModel starts a session on the picker.
func NewSessionModel(cfg core.RuntimeConfig, opts Options) SessionModel {
	opts = opts.withDefaults()
	return SessionModel{
		opts:   opts,
		config: cfg,
		menu:   NewMenuModel(opts.Store, cfg, opts.Keys),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes msg to the screen that is showing.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = ws.Width, ws.Height
	}

	switch m.mode {
	case modeGame:
		next, cmd := m.game.Update(msg)
		if gm, ok := next.(Model); ok {
			m.game = &gm
		}
		if m.game.IsQuitting() {
			m.opts.Logger.Info("game left", "game", m.game.game.ID(), "score", m.game.game.State().Score)
			return m.toMenu(), nil
		}
		return m, cmd

	case modeScores:
		next, cmd := m.scores.Update(msg)
		if sb, ok := next.(ScoreboardModel); ok {
			m.scores = sb
		}
		switch {
		case m.scores.IsQuitting():
			return m.quit()
		case m.scores.IsGoingBack():
			return m.toMenu(), nil
		}
		return m, cmd
	}

	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}
	switch m.menu.Choice() {
	case ChoiceQuit:
		return m.quit()
	case ChoiceScores:
		m.mode = modeScores
		m.scores = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()
	case ChoicePlay:
		return m.start(m.menu.SelectedID())
	}
	return m, cmd
}

func (m SessionModel) start(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.opts.Logger.Warn("cannot start game", "err", err)
		return m.toMenu(), nil
	}

	m.config.Seed = time.Now().UnixNano()
	gm := NewModel(game, m.config, m.opts)
	gm.embedded = true
	m.game = &gm
	m.mode = modeGame
	m.opts.Logger.Info("game started", "game", id, "seed", m.config.Seed)
	return m, m.game.Init()
}

func (m SessionModel) toMenu() SessionModel {
	m.mode = modeMenu
	m.game = nil
	m.menu = NewMenuModel(m.opts.Store, m.config, m.opts.Keys)
	return m
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// View renders the current screen.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.mode == modeGame:
		return m.game.View()
	case m.mode == modeScores:
		return m.scores.View()
	}
	return m.menu.View()
}
