// Package storage keeps finished runs in SQLite through the pure-Go
// modernc.org/sqlite driver, so builds need no CGO.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteTime = "2006-01-02 15:04:05"

// migrations are applied in order; PRAGMA user_version records how many ran.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		player TEXT NOT NULL DEFAULT '',
		score INTEGER NOT NULL,
		intercepts INTEGER NOT NULL DEFAULT 0,
		shots INTEGER NOT NULL DEFAULT 0,
		pickups INTEGER NOT NULL DEFAULT 0,
		structures_lost INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC)`,
}

const runColumns = `id, game_id, player, score, intercepts, shots, pickups, structures_lost, duration_ms, created_at`

// Store is a handle on the runs database. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Run is one finished game with its counters.
type Run struct {
	ID             int64
	GameID         string
	Player         string // SSH user, empty for local play
	Score          int
	Intercepts     int
	Shots          int
	Pickups        int
	StructuresLost int
	Duration       time.Duration
	CreatedAt      time.Time
}

// Accuracy returns intercepts per shot, zero when nothing was fired.
func (r Run) Accuracy() float64 {
	return ratio(r.Intercepts, r.Shots)
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// Open opens the database at path, creating parent directories and the
// schema as needed. A leading ~ is the user's home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("storage: create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: connect %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: home directory: %w", err)
	}
	return filepath.Join(home, rest), nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return err
	}
	if version >= len(migrations) {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, stmt := range migrations[version:] {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("step %d: %w", version+i+1, err)
		}
	}
	// PRAGMA takes no bind parameters.
	if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, len(migrations))); err != nil {
		return err
	}
	return tx.Commit()
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (game_id, player, score, intercepts, shots, pickups, structures_lost, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Player, r.Score, r.Intercepts, r.Shots, r.Pickups, r.StructuresLost, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save run: %w", err)
	}
	return res.LastInsertId()
}

// TopRuns returns up to limit runs of gameID, best first and earlier runs
// first on ties. A limit of zero or less means 10.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(`WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`, gameID, limit)
}

// AllRuns returns every run of gameID in the same order as TopRuns.
func (s *Store) AllRuns(gameID string) ([]Run, error) {
	return s.queryRuns(`WHERE game_id = ? ORDER BY score DESC, id ASC`, gameID)
}

func (s *Store) queryRuns(tail string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs `+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			ms        int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.GameID, &r.Player, &r.Score, &r.Intercepts, &r.Shots,
			&r.Pickups, &r.StructuresLost, &ms, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read runs: %w", err)
	}
	return runs, nil
}

// parseTime accepts the driver's time.Time and the text SQLite returns
// for aggregates.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the best score of gameID, zero when it has no runs.
func (s *Store) HighScore(gameID string) (int, error) {
	var best int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(score), 0) FROM runs WHERE game_id = ?`, gameID).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: high score: %w", err)
	}
	return best, nil
}

// ClearRuns deletes every run of gameID and reports how many went.
func (s *Store) ClearRuns(gameID string) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM runs WHERE game_id = ?`, gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: clear runs: %w", err)
	}
	return res.RowsAffected()
}

// GameStats aggregates every run of one variant.
type GameStats struct {
	GameID          string
	GamesCount      int
	HighScore       int
	AvgScore        float64
	TotalIntercepts int
	TotalShots      int
	TotalPlayTime   time.Duration
	LastPlayed      time.Time
}

// Accuracy returns lifetime intercepts per shot.
func (g GameStats) Accuracy() float64 {
	return ratio(g.TotalIntercepts, g.TotalShots)
}

const statsQuery = `SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(intercepts), SUM(shots),
	SUM(duration_ms), MAX(created_at) FROM runs `

// GetGameStats aggregates gameID's runs. A variant with no runs gets zero
// stats, not an error.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	all, err := s.stats(`WHERE game_id = ? GROUP BY game_id`, gameID)
	if err != nil {
		return nil, err
	}
	if g, ok := all[gameID]; ok {
		return g, nil
	}
	return &GameStats{GameID: gameID}, nil
}

// GetAllGamesStats aggregates runs for every variant that has any.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	return s.stats(`GROUP BY game_id`)
}

func (s *Store) stats(tail string, args ...any) (map[string]*GameStats, error) {
	rows, err := s.db.Query(statsQuery+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query stats: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*GameStats)
	for rows.Next() {
		var (
			g          GameStats
			ms         int64
			lastPlayed any
		)
		if err := rows.Scan(&g.GameID, &g.GamesCount, &g.HighScore, &g.AvgScore,
			&g.TotalIntercepts, &g.TotalShots, &ms, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: scan stats: %w", err)
		}
		g.TotalPlayTime = time.Duration(ms) * time.Millisecond
		g.LastPlayed = parseTime(lastPlayed)
		out[g.GameID] = &g
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read stats: %w", err)
	}
	return out, nil
}
