// Package profile persists per-user preferences and build history as JSON
// documents, one file per user.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// HistoryEntry records one pipeline build against a profile.
type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Prompt    string    `json:"prompt"`
	Goal      string    `json:"goal"`
	Emotion   string    `json:"emotion"`
	Domain    string    `json:"domain"`
	AppType   string    `json:"app_type"`
}

// Profile is one user's document.
type Profile struct {
	UserID      string            `json:"user_id"`
	Preferences map[string]string `json:"preferences"`
	History     []HistoryEntry    `json:"history"`
}

// Store reads and writes profile documents under a single directory. Writes
// go through a temp file and rename, and a per-user lock serializes
// read-modify-write cycles.
type Store struct {
	dir    string
	logger *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a profile store rooted at dir.
func NewStore(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		dir:    dir,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (s *Store) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

func (s *Store) path(userID string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, userID)
	return filepath.Join(s.dir, name+".json")
}

// Load returns the profile for userID. A missing or corrupt document yields a
// fresh profile; corruption is logged, never fatal.
func (s *Store) Load(userID string) *Profile {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	return s.load(userID)
}

func (s *Store) load(userID string) *Profile {
	fresh := &Profile{
		UserID:      userID,
		Preferences: make(map[string]string),
	}

	data, err := os.ReadFile(s.path(userID))
	if err != nil {
		return fresh
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("corrupt profile, starting fresh",
			zap.String("user", userID),
			zap.Error(err),
		)
		return fresh
	}
	p.UserID = userID
	if p.Preferences == nil {
		p.Preferences = make(map[string]string)
	}
	return &p
}

// Save writes the profile atomically.
func (s *Store) Save(p *Profile) error {
	lock := s.userLock(p.UserID)
	lock.Lock()
	defer lock.Unlock()
	return s.save(p)
}

func (s *Store) save(p *Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}

	path := s.path(p.UserID)
	tmp, err := os.CreateTemp(s.dir, ".profile-*")
	if err != nil {
		return fmt.Errorf("create temp profile: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close profile: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}

// Append adds one history entry to userID's profile under the user lock, so
// concurrent builds never lose entries.
func (s *Store) Append(userID string, entry HistoryEntry) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	p := s.load(userID)
	p.History = append(p.History, entry)
	return s.save(p)
}

// SetPreference records one preference key for userID.
func (s *Store) SetPreference(userID, key, value string) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	p := s.load(userID)
	p.Preferences[key] = value
	return s.save(p)
}
