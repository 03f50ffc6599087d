package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/missile-arcade/internal/core"
	"github.com/vovakirdan/missile-arcade/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func press(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), nil)
	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}

	m = press(m, up, up).(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.cursor)
	}
	m = press(m, down, down, down, down).(MenuModel)
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d after many downs, want %d", m.cursor, len(m.items)-1)
	}
	if m.Choice() != ChoiceNone {
		t.Errorf("moving the cursor chose %v", m.Choice())
	}
}

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want MenuChoice
		id   string
	}{
		{"enter plays first", []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}}, ChoicePlay, "missile"},
		{"down then enter", []tea.Msg{tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter}}, ChoicePlay, "missile_classic"},
		{"tab opens scores", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}}, ChoiceScores, ""},
		{"q quits", []tea.Msg{runeKey('q')}, ChoiceQuit, ""},
		{"backspace quits", []tea.Msg{tea.KeyMsg{Type: tea.KeyBackspace}}, ChoiceQuit, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(NewMenuModel(nil, core.DefaultConfig(), nil), tt.keys...).(MenuModel)
			if m.Choice() != tt.want {
				t.Errorf("Choice() = %v, want %v", m.Choice(), tt.want)
			}
			if m.SelectedID() != tt.id {
				t.Errorf("SelectedID() = %q, want %q", m.SelectedID(), tt.id)
			}
		})
	}
}

func TestMenuShowsStoredBest(t *testing.T) {
	store := openStore(t)
	for _, score := range []int{120, 480} {
		if _, err := store.SaveRun(storage.Run{GameID: "missile", Score: score, Duration: time.Minute}); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewMenuModel(store, core.DefaultConfig(), nil)
	if m.items[0].best != 480 || m.items[0].played != 2 {
		t.Errorf("first row = %+v, want best 480 from 2 runs", m.items[0])
	}
	if m.items[1].played != 0 {
		t.Errorf("unplayed variant shows %d runs", m.items[1].played)
	}
	if !strings.Contains(m.View(), "480") {
		t.Error("view does not show the stored best")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := press(NewMenuModel(nil, core.DefaultConfig(), nil), tea.WindowSizeMsg{Width: 132, Height: 40}).(MenuModel)
	if cfg := m.Config(); cfg.ScreenW != 132 || cfg.ScreenH != 40 {
		t.Errorf("Config() size = %dx%d, want 132x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 10, 2); got != "    ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("too wide", 4, 8); got != "too wide" {
		t.Errorf("centerText on narrow width = %q", got)
	}
}
