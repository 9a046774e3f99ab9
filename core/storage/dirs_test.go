package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirPaths(t *testing.T) {
	d := &Dirs{
		Config: "/cfg/str8zero",
		Data:   "/data/str8zero",
		State:  "/state/str8zero",
	}

	assert.Equal(t, filepath.Join("/cfg/str8zero", "defaults.yaml"), d.RoutingConfigPath())
	assert.Equal(t, filepath.Join("/cfg/str8zero", "data", "emotion_lexicon.json"), d.LexiconPath())
	assert.Equal(t, filepath.Join("/state/str8zero", "agent_history.json"), d.HistoryLogPath())
	assert.Equal(t, filepath.Join("/data/str8zero", "profiles"), d.ProfilesDir())
}

func TestEnsureAll(t *testing.T) {
	d := &Dirs{
		Config: filepath.Join(t.TempDir(), "config"),
		Data:   filepath.Join(t.TempDir(), "data"),
		State:  filepath.Join(t.TempDir(), "state"),
	}
	require.NoError(t, d.EnsureAll())

	for _, dir := range []string{d.Config, d.ProfilesDir(), d.GeneratedAppsDir(), d.State} {
		assert.DirExists(t, dir)
	}
}

func TestResolveDirsHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")

	dirs, err := resolveDirsImpl()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg-config", "str8zero"), dirs.Config)
}
