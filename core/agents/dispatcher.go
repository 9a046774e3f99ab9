package agents

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const defaultDispatchTimeout = 60 * time.Second

// Dispatcher runs a request against the routed agent through three tiers:
// custom registry, built-in agent, then the simulator. Each tier's failure is
// logged and the next tier takes over; the simulator never fails, so Dispatch
// always returns a usable result.
type Dispatcher struct {
	registry  *Registry
	builtins  map[string]Agent
	simulator *Simulator
	timeout   time.Duration
	logger    *zap.Logger
}

// DispatcherConfig configures a Dispatcher. Zero values select an empty
// registry, no built-ins, a fresh simulator, and a 60 second per-attempt
// timeout.
type DispatcherConfig struct {
	Registry  *Registry
	Builtins  map[string]Agent
	Simulator *Simulator
	Timeout   time.Duration
	Logger    *zap.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	if cfg.Registry == nil {
		cfg.Registry = NewRegistry()
	}
	if cfg.Simulator == nil {
		cfg.Simulator = NewSimulator(nil, "")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultDispatchTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Dispatcher{
		registry:  cfg.Registry,
		builtins:  cfg.Builtins,
		simulator: cfg.Simulator,
		timeout:   cfg.Timeout,
		logger:    cfg.Logger,
	}
}

// NewBuiltinAgents constructs the built-in agents keyed by routing name.
// apiKey, when non-empty, overrides the per-agent environment keys; appsDir
// is where app generation writes files.
func NewBuiltinAgents(apiKey, appsDir string) map[string]Agent {
	return map[string]Agent{
		"Aider":       NewAiderAgent(appsDir),
		"Gemini CLI":  NewGeminiAgent(apiKey),
		"Claude Code": NewClaudeAgent(apiKey),
		"Codex CLI":   NewCodexAgent(apiKey),
	}
}

// Dispatch runs req against the named agent. Custom agents are tried first,
// then the built-in under the same name, then the simulator. Each attempt
// gets its own timeout derived from ctx.
func (d *Dispatcher) Dispatch(ctx context.Context, agentName string, req Request) Result {
	if custom, ok := d.registry.Get(agentName); ok {
		res := d.attempt(ctx, custom, req)
		if res.Success {
			return res
		}
		d.logger.Warn("custom agent failed, falling through",
			zap.String("agent", agentName),
			zap.String("error", res.Error),
		)
	}

	if builtin, ok := d.builtins[agentName]; ok {
		res := d.attempt(ctx, builtin, req)
		if res.Success {
			return res
		}
		d.logger.Warn("builtin agent failed, simulating",
			zap.String("agent", agentName),
			zap.String("error", res.Error),
		)
	}

	return d.simulator.Simulate(agentName, req)
}

func (d *Dispatcher) attempt(ctx context.Context, agent Agent, req Request) Result {
	attemptCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	return agent.Process(attemptCtx, req)
}
