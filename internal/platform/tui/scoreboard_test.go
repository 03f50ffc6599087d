package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/missile-arcade/internal/storage"
)

func TestScoreboardCyclesVariants(t *testing.T) {
	store := openStore(t)
	runs := []storage.Run{
		{GameID: "missile", Score: 300, Intercepts: 6, Shots: 8, Duration: 2 * time.Minute},
		{GameID: "missile", Score: 150, Player: "alice"},
		{GameID: "missile_classic", Score: 90},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewScoreboardModel(store, 120, 30)
	if len(m.runs) != 2 || m.runs[0].Score != 300 {
		t.Fatalf("first variant runs = %+v", m.runs)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab}).(ScoreboardModel)
	if m.current != 1 || len(m.runs) != 1 {
		t.Errorf("after tab: current %d with %d runs, want 1 with 1", m.current, len(m.runs))
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab}).(ScoreboardModel)
	if m.current != 0 {
		t.Errorf("tab past the last variant lands on %d, want 0", m.current)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}).(ScoreboardModel)
	if m.current != 1 {
		t.Errorf("shift+tab from first lands on %d, want 1", m.current)
	}
}

func TestScoreboardDetailsAndTotals(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.Run{GameID: "missile", Score: 300, Intercepts: 6, Shots: 8, Pickups: 1, StructuresLost: 4}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	m := NewScoreboardModel(store, 80, 30)
	if !strings.Contains(m.View(), "1 games") {
		t.Error("totals line missing")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter}).(ScoreboardModel)
	if !strings.Contains(m.View(), "4 structures lost") {
		t.Errorf("details not shown:\n%s", m.View())
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc}).(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Errorf("esc: back=%v quit=%v", m.IsGoingBack(), m.IsQuitting())
	}

	m = press(NewScoreboardModel(nil, 60, 20), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}).(ScoreboardModel)
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Missile Defense", 8); got != "Missile." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("short", 8); got != "short" {
		t.Errorf("truncate = %q", got)
	}
}
