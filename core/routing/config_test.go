package routing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")

	cfg := Load(path, nil)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	// The persisted document round-trips to the same config.
	assert.Equal(t, cfg, Load(path, nil))
}

func TestLoadCorruptFallsBackWithoutOverwriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- bad"), 0o644))

	cfg := Load(path, nil)
	assert.Equal(t, DefaultConfig(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":\n\t- bad", string(data))
}

func TestLoadPreservesRuleOrder(t *testing.T) {
	doc := `preferences:
  vibe-gen:
    mood:
      nostalgic: Codex CLI
      rebellious: Gemini CLI
    syntax:
      sketch-based: Gemini CLI
      code-refactor: Aider
    fallback: Aider
defaults:
  agent: Aider
`
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := Load(path, nil)
	prefs := cfg.Preferences["vibe-gen"]
	require.Len(t, prefs.Mood, 2)
	assert.Equal(t, Rule{Key: "nostalgic", Agent: "Codex CLI"}, prefs.Mood[0])
	assert.Equal(t, Rule{Key: "rebellious", Agent: "Gemini CLI"}, prefs.Mood[1])
	require.Len(t, prefs.Syntax, 2)
	assert.Equal(t, "sketch-based", prefs.Syntax[0].Key)
	assert.Equal(t, "code-refactor", prefs.Syntax[1].Key)
}

func TestSaveLoadRoundTripKeepsOrder(t *testing.T) {
	cfg := &Config{
		Preferences: map[string]TaskPrefs{
			"vibe-gen": {
				Mood: RuleList{
					{Key: "cautious", Agent: "Claude Code"},
					{Key: "rapid", Agent: "Aider"},
					{Key: "elegant", Agent: "Codex CLI"},
				},
				Fallback: "Aider",
			},
		},
		Defaults: Defaults{Agent: "Aider"},
	}

	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, Save(path, cfg))

	loaded := Load(path, nil)
	assert.Equal(t, cfg.Preferences["vibe-gen"].Mood, loaded.Preferences["vibe-gen"].Mood)
}

func TestRuleListAgent(t *testing.T) {
	rules := RuleList{{Key: "rapid", Agent: "Aider"}}

	agent, ok := rules.Agent("rapid")
	assert.True(t, ok)
	assert.Equal(t, "Aider", agent)

	_, ok = rules.Agent("elegant")
	assert.False(t, ok)
}
