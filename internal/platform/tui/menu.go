package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/missile-arcade/internal/core"
	"github.com/vovakirdan/missile-arcade/internal/registry"
	"github.com/vovakirdan/missile-arcade/internal/storage"
)

// MenuChoice is how the user left the picker.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

const menuTitle = "M I S S I L E   D E F E N S E"

var menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

type pickerRow struct {
	id     string
	title  string
	best   int
	played int
}

func (r pickerRow) String() string {
	return fmt.Sprintf("%-28s best %6d  runs %4d", r.title, r.best, r.played)
}

type menuHelp struct {
	keys *KeyMapper
}

func (h menuHelp) ShortHelp() []key.Binding {
	return append(h.keys.pick(core.ActionUp, core.ActionDown, core.ActionConfirm), scoreboardKey, h.keys.bindings[core.ActionQuit])
}

func (h menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// MenuModel lets the user pick a variant or open the scoreboard.
type MenuModel struct {
	items  []pickerRow
	cursor int
	choice MenuChoice

	cfg  core.RuntimeConfig
	keys *KeyMapper
	help help.Model
}

// NewMenuModel lists every registered variant with its stored best and run
// count. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, keys *KeyMapper) MenuModel {
	if keys == nil {
		keys = DefaultKeyMapper()
	}

	var stats map[string]*storage.GameStats
	if store != nil {
		stats, _ = store.GetAllGamesStats()
	}

	var items []pickerRow
	for _, g := range registry.List() {
		row := pickerRow{id: g.ID, title: g.Title}
		if s, ok := stats[g.ID]; ok {
			row.best, row.played = s.HighScore, s.GamesCount
		}
		items = append(items, row)
	}

	h := help.New()
	h.Width = cfg.ScreenW
	return MenuModel{items: items, cfg: cfg, keys: keys, help: h}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and records the choice that ends the picker.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cfg.ScreenW, m.cfg.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(m.items)-1)
		case MenuActionSelect:
			if len(m.items) > 0 {
				return m.leave(ChoicePlay)
			}
		case MenuActionScoreboard:
			return m.leave(ChoiceScores)
		case MenuActionQuit, MenuActionBack:
			return m.leave(ChoiceQuit)
		}
	}
	return m, nil
}

func (m MenuModel) leave(c MenuChoice) (tea.Model, tea.Cmd) {
	m.choice = c
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == ChoiceQuit {
		return ""
	}
	w := m.cfg.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(menuTitle), w, len(menuTitle)))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Select a mode"), w, 13))
	b.WriteString("\n\n")

	for i, row := range m.items {
		line := "  " + row.String()
		style := dimStyle
		if i == m.cursor {
			line = "> " + row.String()
			style = accentStyle
		}
		b.WriteString(centerText(style.Render(line), w, len(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(menuHelp{keys: m.keys}))
	b.WriteString("\n")
	return b.String()
}

// Choice reports how the picker ended, ChoiceNone while it is still open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// SelectedID returns the variant under the cursor once ChoicePlay is made.
func (m MenuModel) SelectedID() string {
	if m.choice != ChoicePlay || len(m.items) == 0 {
		return ""
	}
	return m.items[m.cursor].id
}

// Config returns the runtime config with any size change applied.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.cfg
}

// centerText pads styled text whose visible length is n to the middle of width.
func centerText(text string, width, n int) string {
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult is what RunMenu reports back to the caller's loop.
type MenuResult struct {
	Choice MenuChoice
	GameID string
	Config core.RuntimeConfig
}

// RunMenu shows the picker in its own program and reports the choice.
// Closing the program without a choice counts as quitting.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, keys *KeyMapper) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg, keys), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}
	return MenuResult{Choice: m.Choice(), GameID: m.SelectedID(), Config: m.Config()}, nil
}
