// Package history persists the append-only log of (prompt, command) pairs.
// The default backend is a newline-delimited JSON file; a SQLite backend is
// available via configuration. Both sanitize text before persisting and
// enforce the oldest-first retention cap.
package history

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/renameio"

	"github.com/doeshing/wtf/internal/domain"
	"github.com/doeshing/wtf/internal/pkg/filesystem"
	"github.com/doeshing/wtf/internal/pkg/sanitize"
	"github.com/doeshing/wtf/internal/ports"
)

// FileStore keeps history as one JSON record per line. Every append is a
// whole-file rewrite through an atomic rename, so a failed write never
// corrupts existing records.
type FileStore struct {
	path       string
	maxEntries int
	mu         sync.Mutex
}

// NewFileStore creates a store at path, defaulting to
// ~/.wtf/history.jsonl when path is empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = filepath.Join(filesystem.ConfigDir(), "history.jsonl")
	}
	return &FileStore{path: path, maxEntries: domain.MaxHistoryEntries}
}

// Append sanitizes both strings, stamps them with the current time, writes
// the record, and drops the oldest excess entries past the cap.
func (f *FileStore) Append(prompt, command string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return err
	}
	entries = append(entries, domain.HistoryEntry{
		Timestamp: time.Now().Unix(),
		Prompt:    sanitize.StripANSI(prompt),
		Command:   sanitize.StripANSI(command),
	})
	if len(entries) > f.maxEntries {
		entries = entries[len(entries)-f.maxEntries:]
	}
	return f.write(entries)
}

// List parses the log line by line. A line that fails to parse is skipped,
// never fatal.
func (f *FileStore) List() ([]domain.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// Clear deletes the backing log. A missing file is not an error.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) load() ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var entries []domain.HistoryEntry
	for _, line := range bytes.Split(bytes.TrimSpace(data), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var entry domain.HistoryEntry
		if err := json.Unmarshal(line, &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (f *FileStore) write(entries []domain.HistoryEntry) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	for _, entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}
	return renameio.WriteFile(f.path, buf.Bytes(), 0o600)
}

var _ ports.HistoryStore = (*FileStore)(nil)
