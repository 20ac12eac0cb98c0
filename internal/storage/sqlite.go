// Package storage keeps finished game results in SQLite through the
// cgo-free modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// sqliteTime is the CURRENT_TIMESTAMP text layout.
const sqliteTime = "2006-01-02 15:04:05"

const defaultTopLimit = 10

const (
	selectEntries = `SELECT id, game_id, score, outcome, frames, created_at FROM scores WHERE game_id = ?`
	entryOrder    = ` ORDER BY score DESC, frames ASC, id ASC`

	insertResult = `INSERT INTO scores (game_id, score, outcome, frames) VALUES (?, ?, ?, ?)`

	selectStats = `SELECT COUNT(*),
	COALESCE(SUM(outcome = 'win'), 0),
	COALESCE(SUM(outcome = 'loss'), 0),
	COALESCE(MAX(score), 0),
	COALESCE(AVG(score), 0),
	COALESCE(SUM(score), 0),
	MAX(created_at)
FROM scores WHERE game_id = ?`
)

// Store is a handle on the scores database. It is safe for concurrent
// use, so SSH sessions share one.
type Store struct {
	db *sql.DB
}

// Result is one finished round.
type Result struct {
	GameID  string
	Score   int
	Outcome string // win, loss or quit
	Frames  int
}

// ScoreEntry is a stored Result.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Outcome   string
	Frames    int
	CreatedAt time.Time
}

// GameStats aggregates every stored round of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	Wins       int
	Losses     int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open opens (creating if needed) the database at path. A leading ~
// expands to the home directory and missing parent directories are
// created.
func Open(path string) (*Store, error) {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveResult inserts r and returns its row id.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.GameID == "" {
		return 0, errors.New("storage: cannot save result: empty game id")
	}
	res, err := s.db.Exec(insertResult, r.GameID, r.Score, r.Outcome, r.Frames)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns the best limit rounds, highest score first and the
// quicker round first on ties. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.entries(selectEntries+entryOrder+" LIMIT ?", gameID, limit)
}

// AllScores is TopScores without a limit.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.entries(selectEntries+entryOrder, gameID)
}

func (s *Store) entries(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e       ScoreEntry
			created any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Outcome, &e.Frames, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(created)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// parseTime accepts what the driver hands back for a DATETIME column.
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

// HighScore is 0 when nothing is stored for gameID.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	st := &GameStats{GameID: gameID}
	var last any
	err := s.db.QueryRow(selectStats, gameID).Scan(
		&st.GamesCount, &st.Wins, &st.Losses, &st.HighScore, &st.AvgScore, &st.TotalScore, &last,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	st.LastPlayed = parseTime(last)
	return st, nil
}
