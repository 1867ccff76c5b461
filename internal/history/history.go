// Package history persists the commands a student runs so past
// sessions can be reviewed and searched. Failures here must never
// break the command that triggered the write.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// defaultMaxSize caps how many entries are retained.
const defaultMaxSize = 1000

// Entry is a single recorded command.
type Entry struct {
	ID        int64
	SessionID string
	Command   string
	CreatedAt time.Time
}

// Store is a SQLite-backed command history.
type Store struct {
	db        *sql.DB
	sessionID string
	maxSize   int
}

// DefaultPath returns the standard history database location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".cybuddy-history.db")
	}
	return filepath.Join(home, ".local", "share", "cybuddy", "history.db")
}

// Open opens (creating if needed) the history database at path. Each
// Open starts a new session identified by a fresh UUID.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		command TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at);`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return &Store{
		db:        db,
		sessionID: uuid.NewString(),
		maxSize:   defaultMaxSize,
	}, nil
}

// SessionID returns the identifier of the current session.
func (s *Store) SessionID() string {
	return s.sessionID
}

// Add records a command. A command identical to the most recent entry
// is skipped so repeated invocations don't flood the history.
func (s *Store) Add(command string) error {
	if command == "" {
		return nil
	}

	var last string
	err := s.db.QueryRow(`SELECT command FROM history ORDER BY id DESC LIMIT 1`).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to read last history entry: %w", err)
	}
	if err == nil && last == command {
		return nil
	}

	if _, err := s.db.Exec(
		`INSERT INTO history (session_id, command) VALUES (?, ?)`,
		s.sessionID, command,
	); err != nil {
		return fmt.Errorf("failed to record history entry: %w", err)
	}

	return s.prune()
}

// prune drops the oldest entries beyond the retention cap.
func (s *Store) prune() error {
	_, err := s.db.Exec(
		`DELETE FROM history WHERE id NOT IN (
			SELECT id FROM history ORDER BY id DESC LIMIT ?
		)`, s.maxSize)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, session_id, command, created_at FROM history
		 ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Search returns entries whose command contains the query,
// case-insensitively, newest first.
func (s *Store) Search(query string) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, command, created_at FROM history
		 WHERE command LIKE '%' || ? || '%' COLLATE NOCASE
		 ORDER BY id DESC`, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search history: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Clear removes all history entries.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Command, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history entries: %w", err)
	}
	return entries, nil
}
