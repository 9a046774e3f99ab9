// Package agents defines the agent abstraction, the built-in CLI agents, and
// the dispatcher that runs a routed request against them.
package agents

import (
	"context"
)

// Task names understood by routing, cost estimation, and the agents.
const (
	TaskVibeGen  = "vibe-gen"
	TaskAppGen   = "app-gen"
	TaskDeploy   = "deploy"
	TaskMonetize = "monetize"
)

// Request is one unit of work handed to an agent.
type Request struct {
	Prompt   string
	Task     string
	Platform string
	Explain  bool
}

// Result is the outcome of an agent processing a request. Failures are
// reported as values, not errors: the dispatcher reads Success to decide
// whether to fall through to the next tier.
type Result struct {
	Agent     string `json:"agent"`
	Success   bool   `json:"success"`
	Output    string `json:"output,omitempty"`
	Error     string `json:"error,omitempty"`
	Dir       string `json:"app_dir,omitempty"`
	Simulated bool   `json:"simulated,omitempty"`
}

// Agent processes requests. Implementations must honor ctx cancellation on
// anything that blocks.
type Agent interface {
	Name() string
	Process(ctx context.Context, req Request) Result
}

var emojis = map[string]string{
	"Aider":       "🕶",
	"Gemini CLI":  "🚀",
	"Codex CLI":   "🧠",
	"Claude Code": "🔐",
}

const defaultEmoji = "✨"

// Emoji returns the display emoji for an agent name.
func Emoji(name string) string {
	if e, ok := emojis[name]; ok {
		return e
	}
	return defaultEmoji
}

func failure(agent, msg string) Result {
	return Result{Agent: agent, Success: false, Error: msg}
}

func success(agent, output string) Result {
	return Result{Agent: agent, Success: true, Output: output}
}
