// Package storage provides directory resolution for Str8ZeRO's on-disk state
// with XDG support.
package storage

import (
	"os"
	"path/filepath"
	"sync"
)

const appDirName = "str8zero"

// Dirs holds the resolved base directories for persistent state.
type Dirs struct {
	Config string // routing config, lexicon, syntax patterns
	Data   string // profiles, generated apps, market data
	State  string // history log, operation logs
}

var (
	globalDirs     *Dirs
	globalDirsOnce sync.Once
	globalDirsErr  error
)

// ResolveDirs returns platform-appropriate directories. Results are cached
// after the first call.
func ResolveDirs() (*Dirs, error) {
	globalDirsOnce.Do(func() {
		globalDirs, globalDirsErr = resolveDirsImpl()
	})
	return globalDirs, globalDirsErr
}

func resolveDirsImpl() (*Dirs, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Dirs{
		Config: resolveDir("XDG_CONFIG_HOME", filepath.Join(home, ".config")),
		Data:   resolveDir("XDG_DATA_HOME", filepath.Join(home, ".local", "share")),
		State:  resolveDir("XDG_STATE_HOME", filepath.Join(home, ".local", "state")),
	}, nil
}

func resolveDir(envVar, fallback string) string {
	if dir := os.Getenv(envVar); dir != "" {
		return filepath.Join(dir, appDirName)
	}
	return filepath.Join(fallback, appDirName)
}

// ConfigDir returns a path under the config directory.
func (d *Dirs) ConfigDir(subpath ...string) string {
	return filepath.Join(append([]string{d.Config}, subpath...)...)
}

// DataDir returns a path under the data directory.
func (d *Dirs) DataDir(subpath ...string) string {
	return filepath.Join(append([]string{d.Data}, subpath...)...)
}

// StateDir returns a path under the state directory.
func (d *Dirs) StateDir(subpath ...string) string {
	return filepath.Join(append([]string{d.State}, subpath...)...)
}

// RoutingConfigPath is the location of the routing preference document.
func (d *Dirs) RoutingConfigPath() string {
	return d.ConfigDir("defaults.yaml")
}

// LexiconPath is the location of the emotion lexicon document.
func (d *Dirs) LexiconPath() string {
	return d.ConfigDir("data", "emotion_lexicon.json")
}

// PatternsPath is the location of the syntax pattern document.
func (d *Dirs) PatternsPath() string {
	return d.ConfigDir("data", "syntax_patterns.json")
}

// HistoryLogPath is the location of the agent dispatch history.
func (d *Dirs) HistoryLogPath() string {
	return d.StateDir("agent_history.json")
}

// ProfilesDir is the directory holding per-user profile documents.
func (d *Dirs) ProfilesDir() string {
	return d.DataDir("profiles")
}

// GeneratedAppsDir is where simulated app generation reports its output.
func (d *Dirs) GeneratedAppsDir() string {
	return d.DataDir("generated_apps")
}

// MarketDBPath is the location of the market analysis database.
func (d *Dirs) MarketDBPath() string {
	return d.DataDir("market.db")
}

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = 0o755
	}
	return os.MkdirAll(path, perm)
}

// EnsureAll creates every standard directory.
func (d *Dirs) EnsureAll() error {
	for _, dir := range []string{
		d.Config,
		d.ConfigDir("data"),
		d.Data,
		d.ProfilesDir(),
		d.GeneratedAppsDir(),
		d.State,
	} {
		if err := EnsureDir(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
