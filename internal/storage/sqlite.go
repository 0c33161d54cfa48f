// Package storage provides a SQLite-backed journal of finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

var (
	// ErrReplayNotFound is returned when no replay has the requested ID.
	ErrReplayNotFound = errors.New("storage: replay not found")
	// ErrAmbiguousID is returned when an ID prefix matches several replays.
	ErrAmbiguousID = errors.New("storage: ambiguous replay id")
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the replay journal.
type Store struct {
	db *sql.DB
}

// ReplayEntry is one finished game: enough to re-run it move by move.
type ReplayEntry struct {
	ID         string
	GameID     string
	BoardSize  int
	Seed       int64
	FourProb   float64
	Moves      string
	FinalScore int
	MaxTile    int
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			board_size INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			four_prob REAL NOT NULL,
			moves TEXT NOT NULL,
			final_score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_game_id ON replays(game_id, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReplay records a finished game and returns its generated ID.
// A non-empty entry.ID is kept as is.
func (s *Store) SaveReplay(entry ReplayEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO replays
		 (id, game_id, board_size, seed, four_prob, moves, final_score, max_tile)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.GameID,
		entry.BoardSize,
		entry.Seed,
		entry.FourProb,
		entry.Moves,
		entry.FinalScore,
		entry.MaxTile,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save replay: %w", err)
	}
	return entry.ID, nil
}

const replayColumns = `id, game_id, board_size, seed, four_prob, moves, final_score, max_tile, created_at`

// RecentReplays returns the newest replays for a game, newest first.
// An empty gameID lists every game.
func (s *Store) RecentReplays(gameID string, limit int) ([]ReplayEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + replayColumns + ` FROM replays`
	args := []any{}
	if gameID != "" {
		query += ` WHERE game_id = ?`
		args = append(args, gameID)
	}
	query += ` ORDER BY created_at DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplayEntry
	for rows.Next() {
		e, err := scanReplay(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// GetReplay loads a replay by ID.
func (s *Store) GetReplay(id string) (ReplayEntry, error) {
	row := s.db.QueryRow(`SELECT `+replayColumns+` FROM replays WHERE id = ?`, id)

	e, err := scanReplay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ReplayEntry{}, fmt.Errorf("%w: %s", ErrReplayNotFound, id)
	}
	return e, err
}

// ResolveReplayID expands a unique ID prefix, such as the short form shown
// in listings, to the full replay ID.
func (s *Store) ResolveReplayID(prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("%w: empty id", ErrReplayNotFound)
	}

	rows, err := s.db.Query(
		"SELECT id FROM replays WHERE substr(id, 1, ?) = ? LIMIT 2",
		len(prefix), prefix,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot resolve replay id: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrReplayNotFound, prefix)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousID, prefix)
	}
}

// DeleteReplay removes a replay by ID.
func (s *Store) DeleteReplay(id string) error {
	res, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrReplayNotFound, id)
	}
	return nil
}

// CountReplays returns the number of stored replays for a game.
func (s *Store) CountReplays(gameID string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM replays WHERE game_id = ?", gameID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count replays: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReplay(r rowScanner) (ReplayEntry, error) {
	var e ReplayEntry
	var createdAt any
	err := r.Scan(
		&e.ID,
		&e.GameID,
		&e.BoardSize,
		&e.Seed,
		&e.FourProb,
		&e.Moves,
		&e.FinalScore,
		&e.MaxTile,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return e, err
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// The driver returns either time.Time or the raw string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}
