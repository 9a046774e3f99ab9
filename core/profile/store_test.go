package profile

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsFresh(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	p := s.Load("alice")
	assert.Equal(t, "alice", p.UserID)
	assert.Empty(t, p.History)
	assert.NotNil(t, p.Preferences)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	p := s.Load("alice")
	p.Preferences["theme"] = "dark"
	p.History = append(p.History, HistoryEntry{
		Timestamp: time.Now().UTC(),
		Prompt:    "monitor my bills",
		Goal:      "automation",
		Emotion:   "frustration",
		Domain:    "billing",
		AppType:   "bill_monitor",
	})
	require.NoError(t, s.Save(p))

	loaded := s.Load("alice")
	assert.Equal(t, "dark", loaded.Preferences["theme"])
	require.Len(t, loaded.History, 1)
	assert.Equal(t, "bill_monitor", loaded.History[0].AppType)
}

func TestLoadCorruptReturnsFresh(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, nil)

	require.NoError(t, os.WriteFile(s.path("alice"), []byte("{broken"), 0o644))

	p := s.Load("alice")
	assert.Equal(t, "alice", p.UserID)
	assert.Empty(t, p.History)
}

func TestAppendIsAppendOnly(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Append("alice", HistoryEntry{Prompt: "p"}))
	}
	assert.Len(t, s.Load("alice").History, 5)
}

func TestAppendConcurrent(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Append("alice", HistoryEntry{Prompt: "p"}))
		}()
	}
	wg.Wait()

	assert.Len(t, s.Load("alice").History, 10)
}

func TestSetPreference(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	require.NoError(t, s.SetPreference("bob", "agent", "Claude Code"))
	assert.Equal(t, "Claude Code", s.Load("bob").Preferences["agent"])
}

func TestPathSanitizesUserID(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	require.NoError(t, s.Save(&Profile{UserID: "../evil/u ser", Preferences: map[string]string{}}))

	entries, err := os.ReadDir(s.dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".._evil_u_ser.json", entries[0].Name())
}
