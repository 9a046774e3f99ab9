package routing

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, Save(path, DefaultConfig()))

	engine := NewEngine(EngineConfig{Config: Load(path, nil)})
	w, err := WatchConfig(path, engine, nil)
	require.NoError(t, err)
	defer w.Close()

	updated := DefaultConfig()
	updated.Defaults.Agent = "Claude Code"
	require.NoError(t, Save(path, updated))

	assert.Eventually(t, func() bool {
		return engine.Config().Defaults.Agent == "Claude Code"
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.yaml")
	require.NoError(t, Save(path, DefaultConfig()))

	engine := NewEngine(EngineConfig{Config: Load(path, nil)})
	w, err := WatchConfig(path, engine, nil)
	require.NoError(t, err)
	defer w.Close()

	other := DefaultConfig()
	other.Defaults.Agent = "Claude Code"
	require.NoError(t, Save(filepath.Join(dir, "other.yaml"), other))

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, "Aider", engine.Config().Defaults.Agent)
}
