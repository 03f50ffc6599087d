package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/missile-arcade/internal/registry"
	"github.com/vovakirdan/missile-arcade/internal/storage"
)

const (
	minWidthForSidebar = 100 // narrower screens get variant tabs instead
	sidebarWidth       = 32
	maxRuns            = 100
)

var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// runColumns lists the table columns. The player column takes spare width.
var runColumns = []table.Column{
	{Title: "Rank", Width: 5},
	{Title: "Score", Width: 8},
	{Title: "Player", Width: 10},
	{Title: "Hits", Width: 5},
	{Title: "Acc", Width: 5},
	{Title: "Time", Width: 7},
	{Title: "Date", Width: 12},
}

const playerColumn = 2

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Details key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Details, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:    key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next mode")),
		Prev:    key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev mode")),
		Details: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "details")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel browses stored runs one variant at a time.
type ScoreboardModel struct {
	store    *storage.Store
	variants []registry.GameInfo
	current  int

	runs  []storage.Run
	stats *storage.GameStats

	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	showDetails bool

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:    store,
		variants: registry.List(),
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) newTable() table.Model {
	cols := make([]table.Column, len(runColumns))
	copy(cols, runColumns)

	avail := m.width - 4
	if m.wide() {
		avail -= sidebarWidth + 3
	}
	used := 0
	for _, c := range cols {
		used += c.Width + 2
	}
	if spare := avail - used; spare > 0 {
		cols[playerColumn].Width += min(spare, 10)
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload reads the selected variant's runs and totals from the store.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		if runs, err := m.store.TopRuns(id, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(r.Score),
			playerName(r.Player),
			strconv.Itoa(r.Intercepts),
			fmt.Sprintf("%.0f%%", r.Accuracy()*100),
			r.Duration.Truncate(time.Second).String(),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func playerName(p string) string {
	if p == "" {
		return "local"
	}
	return p
}

func (m *ScoreboardModel) cycle(step int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.current = ((m.current+step)%n + n) % n
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		case key.Matches(msg, m.keys.Details):
			m.showDetails = !m.showDetails
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.variants) > 0 {
		title += " - " + m.variants[m.current].Title
	}

	var b strings.Builder
	b.WriteString(centerText(accentStyle.Render(title), m.width, lipgloss.Width(title)))
	b.WriteString("\n")
	if totals := m.totals(); totals != "" {
		b.WriteString(centerText(dimStyle.Render(totals), m.width, lipgloss.Width(totals)))
	}
	b.WriteString("\n\n")

	body := panelStyle.Render(m.tableOrEmpty())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", body))
	} else {
		tabs := m.tabs()
		b.WriteString(centerText(tabs, m.width, lipgloss.Width(tabs)))
		b.WriteString("\n\n")
		b.WriteString(body)
	}

	b.WriteString("\n")
	if m.showDetails {
		if d := m.details(); d != "" {
			b.WriteString(dimStyle.Render(d))
			b.WriteString("\n")
		}
	}
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) sidebar() string {
	var s strings.Builder
	s.WriteString("Modes\n")
	s.WriteString(strings.Repeat("-", sidebarWidth-4))
	for i, v := range m.variants {
		s.WriteString("\n")
		name := truncate(v.Title, sidebarWidth-6)
		if i == m.current {
			s.WriteString(accentStyle.Render("> " + name))
		} else {
			s.WriteString("  " + name)
		}
	}
	return panelStyle.Width(sidebarWidth).Render(s.String())
}

func (m ScoreboardModel) tabs() string {
	if len(m.variants) == 0 {
		return ""
	}
	active := accentStyle.Background(lipgloss.Color("57")).Padding(0, 1)

	parts := make([]string, len(m.variants))
	for i, v := range m.variants {
		name := truncate(v.Title, 18)
		if i == m.current {
			parts[i] = active.Render(name)
		} else {
			parts[i] = dimStyle.Render(" " + name + " ")
		}
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.variants[m.current].Title)
	}
	return line
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "."
}

func (m ScoreboardModel) totals() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d games · avg %.0f · accuracy %.0f%% · played %s",
		m.stats.GamesCount, m.stats.AvgScore, m.stats.Accuracy()*100,
		m.stats.TotalPlayTime.Truncate(time.Second))
}

// details describes the highlighted run.
func (m ScoreboardModel) details() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return ""
	}
	r := m.runs[i]
	return fmt.Sprintf("%s: %d intercepts from %d shots, %d pickups, %d structures lost",
		playerName(r.Player), r.Intercepts, r.Shots, r.Pickups, r.StructuresLost)
}

func (m ScoreboardModel) tableOrEmpty() string {
	if len(m.runs) == 0 {
		return dimStyle.Italic(true).Padding(2, 4).
			Render("No runs recorded yet.\nDefend the cities to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack reports whether the user asked to return to the picker.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard until the user leaves. goBack is true
// when they asked to return to the picker rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
