// Package storage keeps finished Coin Rush runs in SQLite through the
// pure-Go modernc.org/sqlite driver, so the binary builds without CGO.
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

// DefaultLimit is the number of runs TopRuns returns for a non-positive limit.
const DefaultLimit = 10

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id    TEXT    NOT NULL,
	player     TEXT    NOT NULL DEFAULT '',
	score      INTEGER NOT NULL,
	seed       INTEGER NOT NULL DEFAULT 0,
	ticks      INTEGER NOT NULL DEFAULT 0,
	enemies    INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(game_id, player, score DESC);
`

// Run is one finished session.
type Run struct {
	ID        int64
	GameID    string
	Player    string // local user or SSH login
	Score     int
	Seed      int64
	Ticks     int // ticks until game over
	Enemies   int // spiders alive at the end
	CreatedAt time.Time
}

// Stats summarizes every run of a game.
type Stats struct {
	GameID     string
	Runs       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Store is the run table. It is safe for concurrent use; SSH sessions share
// one.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path. A leading ~ is the home
// directory and missing parent directories are created.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrate %s: %w", path, err)
	}

	return &Store{db: db, now: time.Now}, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expand %s: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores r and returns its row ID. CreatedAt is set by the store.
func (s *Store) SaveRun(r Run) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (game_id, player, score, seed, ticks, enemies, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Player, r.Score, r.Seed, r.Ticks, r.Enemies, s.now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save run: %w", err)
	}
	return res.LastInsertId()
}

// TopRuns returns the best runs of a game, highest score first. Equal
// scores keep the order they were played in.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, seed, ticks, enemies, created_at
		 FROM runs WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			created int64
		)
		if err := rows.Scan(&r.ID, &r.GameID, &r.Player, &r.Score, &r.Seed, &r.Ticks, &r.Enemies, &created); err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		r.CreatedAt = time.Unix(created, 0)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read runs: %w", err)
	}
	return runs, nil
}

// HighScore is the best score of a game, 0 when it has no runs.
func (s *Store) HighScore(gameID string) (int, error) {
	var best int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(score), 0) FROM runs WHERE game_id = ?`, gameID).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: high score: %w", err)
	}
	return best, nil
}

// PlayerBest is the best score player has reached in a game, 0 when they
// have no runs.
func (s *Store) PlayerBest(gameID, player string) (int, error) {
	var best int
	err := s.db.QueryRow(
		`SELECT COALESCE(MAX(score), 0) FROM runs WHERE game_id = ? AND player = ?`,
		gameID, player,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: player best: %w", err)
	}
	return best, nil
}

// GameStats summarizes a game. A game without runs has zero stats.
func (s *Store) GameStats(gameID string) (Stats, error) {
	st := Stats{GameID: gameID}

	var last int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(MAX(created_at), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&st.Runs, &st.HighScore, &st.AvgScore, &last)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: game stats: %w", err)
	}
	if st.Runs > 0 {
		st.LastPlayed = time.Unix(last, 0)
	}
	return st, nil
}

// ClearRuns deletes every run of a game.
func (s *Store) ClearRuns(gameID string) error {
	if _, err := s.db.Exec(`DELETE FROM runs WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("storage: clear runs: %w", err)
	}
	return nil
}
