package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, s *Store, r Run) {
	t.Helper()
	if _, err := s.SaveRun(r); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{GameID: "missile", Score: 100, Intercepts: 8, Shots: 10, Duration: 90 * time.Second})
	mustSave(t, store, Run{GameID: "missile", Score: 50})
	mustSave(t, store, Run{GameID: "missile", Score: 200, Player: "alice", Pickups: 2, StructuresLost: 9})
	mustSave(t, store, Run{GameID: "missile_classic", Score: 500})

	runs, err := store.TopRuns("missile", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("runs not sorted by score: %d %d %d", runs[0].Score, runs[1].Score, runs[2].Score)
	}

	best := runs[0]
	if best.Player != "alice" || best.Pickups != 2 || best.StructuresLost != 9 {
		t.Errorf("run fields not persisted: %+v", best)
	}
	second := runs[1]
	if second.Duration != 90*time.Second {
		t.Errorf("Duration = %v, expected 1m30s", second.Duration)
	}
	if second.Accuracy() != 0.8 {
		t.Errorf("Accuracy() = %f, expected 0.8", second.Accuracy())
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreTopRunsLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		mustSave(t, store, Run{GameID: "test", Score: (i + 1) * 100})
	}
	mustSave(t, store, Run{GameID: "test", Score: 500, Player: "late"})

	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[0].Player != "" || runs[1].Player != "late" || runs[2].Score != 400 {
		t.Errorf("unexpected order: %+v", runs)
	}

	all, err := store.AllRuns("test")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("AllRuns() = %d runs, expected 6", len(all))
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("missile")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for an empty game, got %d", high)
	}

	mustSave(t, store, Run{GameID: "missile", Score: 100})
	mustSave(t, store, Run{GameID: "missile", Score: 300})
	mustSave(t, store, Run{GameID: "missile_classic", Score: 900})

	if high, _ = store.HighScore("missile"); high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}

	n, err := store.ClearRuns("missile")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearRuns() removed %d runs, expected 2", n)
	}
	if runs, _ := store.TopRuns("missile", 10); len(runs) != 0 {
		t.Errorf("expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("missile_classic", 10); len(runs) != 1 {
		t.Error("clearing one variant should not touch another")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("missile")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, Run{GameID: "missile", Score: 100, Intercepts: 3, Shots: 6, Duration: time.Minute})
	mustSave(t, store, Run{GameID: "missile", Score: 300, Intercepts: 9, Shots: 12, Duration: 2 * time.Minute})
	mustSave(t, store, Run{GameID: "missile_classic", Score: 50})

	stats, err := store.GetGameStats("missile")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalPlayTime != 3*time.Minute {
		t.Errorf("TotalPlayTime = %v, expected 3m", stats.TotalPlayTime)
	}
	if stats.Accuracy() != 12.0/18.0 {
		t.Errorf("Accuracy() = %f", stats.Accuracy())
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["missile_classic"].GamesCount != 1 {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, first, Run{GameID: "missile", Score: 700})
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer second.Close()

	var version int
	if err := second.db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		t.Fatalf("user_version: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("user_version = %d, expected %d", version, len(migrations))
	}
	if high, _ := second.HighScore("missile"); high != 700 {
		t.Errorf("HighScore() after reopen = %d, expected 700", high)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := expandHome("~/.missile/scores.db")
	if err != nil || got != filepath.Join(home, ".missile", "scores.db") {
		t.Errorf("expandHome = %q, %v", got, err)
	}
	if got, _ := expandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}
