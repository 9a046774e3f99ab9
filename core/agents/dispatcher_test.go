package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchCustomAgentShortCircuits(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(stubAgent{
		name: "Music Agent",
		res:  Result{Agent: "Music Agent", Success: true, Output: "dreamy jazz"},
	}))

	d := NewDispatcher(DispatcherConfig{Registry: registry})

	res := d.Dispatch(context.Background(), "Music Agent", Request{Prompt: "x", Task: TaskVibeGen})
	assert.True(t, res.Success)
	assert.False(t, res.Simulated)
	assert.Equal(t, "dreamy jazz", res.Output)
}

func TestDispatchFailingCustomFallsThroughToBuiltin(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(stubAgent{
		name: "Aider",
		res:  Result{Agent: "Aider", Success: false, Error: "boom"},
	}))

	d := NewDispatcher(DispatcherConfig{
		Registry: registry,
		Builtins: map[string]Agent{
			"Aider": stubAgent{name: "Aider", res: Result{Agent: "Aider", Success: true, Output: "done"}},
		},
	})

	res := d.Dispatch(context.Background(), "Aider", Request{Prompt: "x", Task: TaskAppGen})
	assert.True(t, res.Success)
	assert.Equal(t, "done", res.Output)
	assert.False(t, res.Simulated)
}

func TestDispatchUnknownAgentSimulates(t *testing.T) {
	d := NewDispatcher(DispatcherConfig{})

	res := d.Dispatch(context.Background(), "Mystery Agent", Request{Prompt: "hi", Task: TaskVibeGen})
	assert.True(t, res.Success)
	assert.True(t, res.Simulated)
	assert.Equal(t, "Mystery Agent", res.Agent)
}

func TestDispatchBuiltinWithoutKeySimulates(t *testing.T) {
	t.Setenv("CLAUDE_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	claude := NewClaudeAgent("")
	direct := claude.Process(context.Background(), Request{Prompt: "hi", Task: TaskVibeGen})
	require.False(t, direct.Success)
	assert.Equal(t, "CLAUDE_API_KEY not set", direct.Error)

	d := NewDispatcher(DispatcherConfig{
		Builtins: map[string]Agent{"Claude Code": claude},
	})

	res := d.Dispatch(context.Background(), "Claude Code", Request{Prompt: "hi", Task: TaskVibeGen})
	assert.True(t, res.Success)
	assert.True(t, res.Simulated)
}

func TestDispatchSimulatedDeployNamesPlatform(t *testing.T) {
	d := NewDispatcher(DispatcherConfig{})

	res := d.Dispatch(context.Background(), "Aider", Request{Prompt: "go live", Task: TaskDeploy, Platform: "web"})
	assert.True(t, res.Success)
	assert.Equal(t, "Deployed to WEB successfully!", res.Output)
}

func TestNewBuiltinAgentsCoversRoutableNames(t *testing.T) {
	t.Setenv("CLAUDE_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	builtins := NewBuiltinAgents("", t.TempDir())
	for _, name := range []string{"Aider", "Gemini CLI", "Codex CLI", "Claude Code"} {
		agent, ok := builtins[name]
		require.True(t, ok, name)
		assert.Equal(t, name, agent.Name())
	}
}

func TestMusicAgentVibesOnly(t *testing.T) {
	m := NewMusicAgent(nil)

	res := m.Process(context.Background(), Request{Prompt: "late night drive", Task: TaskVibeGen})
	assert.True(t, res.Success)
	assert.Contains(t, res.Output, "'late night drive' translates to")

	res = m.Process(context.Background(), Request{Prompt: "x", Task: TaskAppGen})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "only supports vibe-gen")
}
