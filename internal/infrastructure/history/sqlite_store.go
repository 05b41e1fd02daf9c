package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/wtf/internal/domain"
	"github.com/doeshing/wtf/internal/pkg/filesystem"
	"github.com/doeshing/wtf/internal/pkg/sanitize"
	"github.com/doeshing/wtf/internal/ports"
)

// SQLiteStore is the alternative history backend. It enforces the same
// oldest-first retention cap as the file store; insertion order doubles as
// age order.
type SQLiteStore struct {
	db         *sql.DB
	path       string
	maxEntries int
	mu         sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path, defaulting to
// ~/.wtf/history.db. On open failure the returned store falls back to a
// jsonl file next to the intended database.
func NewSQLiteStore(path string) *SQLiteStore {
	if path == "" {
		path = filepath.Join(filesystem.ConfigDir(), "history.db")
	}
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	store := &SQLiteStore{path: path, maxEntries: domain.MaxHistoryEntries}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return store
	}
	store.db = db
	if err := store.init(); err != nil {
		store.db = nil
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp INTEGER NOT NULL,
		prompt TEXT NOT NULL,
		command TEXT NOT NULL
	);`)
	return err
}

// Append inserts a sanitized record and trims the oldest rows past the cap.
func (s *SQLiteStore) Append(prompt, command string) error {
	if s.db == nil {
		return s.fallback().Append(prompt, command)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO entries (timestamp, prompt, command) VALUES (?, ?, ?)`,
		time.Now().Unix(),
		sanitize.StripANSI(prompt),
		sanitize.StripANSI(command),
	)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`DELETE FROM entries WHERE id NOT IN (
		SELECT id FROM entries ORDER BY id DESC LIMIT ?
	)`, s.maxEntries)
	return err
}

// List returns all entries oldest first.
func (s *SQLiteStore) List() ([]domain.HistoryEntry, error) {
	if s.db == nil {
		return s.fallback().List()
	}
	rows, err := s.db.Query(`SELECT timestamp, prompt, command FROM entries ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		if err := rows.Scan(&entry.Timestamp, &entry.Prompt, &entry.Command); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Clear deletes all entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback().Clear()
	}
	_, err := s.db.Exec(`DELETE FROM entries`)
	return err
}

// Path returns the database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) fallback() *FileStore {
	return NewFileStore(s.path + ".jsonl")
}

var _ ports.HistoryStore = (*SQLiteStore)(nil)
