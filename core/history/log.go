// Package history keeps the append-only dispatch log.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Entry records one dispatched request.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Prompt    string    `json:"prompt"`
	Task      string    `json:"task"`
	Platform  string    `json:"platform,omitempty"`
	Agent     string    `json:"agent"`
	Reasoning string    `json:"reasoning"`
	Cost      float64   `json:"cost"`
}

// Log is a JSON-file backed dispatch log. A corrupt file is treated as empty
// rather than blocking new appends.
type Log struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewLog creates a dispatch log at path.
func NewLog(path string, logger *zap.Logger) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{path: path, logger: logger}
}

// Append adds an entry, assigning its ID and timestamp when unset.
func (l *Log) Append(entry Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	entries := l.read()
	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(l.path), ".history-*")
	if err != nil {
		return fmt.Errorf("create temp history: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close history: %w", err)
	}
	if err := os.Rename(tmp.Name(), l.path); err != nil {
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}

// Entries returns all logged entries, oldest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

// Tail returns up to n of the most recent entries, oldest first.
func (l *Log) Tail(n int) []Entry {
	entries := l.Entries()
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}

func (l *Log) read() []Entry {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		l.logger.Warn("corrupt history log, starting fresh",
			zap.String("path", l.path),
			zap.Error(err),
		)
		return nil
	}
	return entries
}
