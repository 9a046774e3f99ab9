package agents

import (
	"context"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const claudeDefaultModel = "claude-sonnet-4-5-20250929"

// ClaudeAgent drives the Anthropic API. The key comes from CLAUDE_API_KEY,
// falling back to ANTHROPIC_API_KEY; with neither set every request fails
// without touching the network.
type ClaudeAgent struct {
	client anthropic.Client
	hasKey bool
	model  string
}

// NewClaudeAgent creates the Claude agent. An empty apiKey reads the
// environment.
func NewClaudeAgent(apiKey string) *ClaudeAgent {
	if apiKey == "" {
		apiKey = os.Getenv("CLAUDE_API_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	a := &ClaudeAgent{model: claudeDefaultModel}
	if apiKey != "" {
		a.client = anthropic.NewClient(option.WithAPIKey(apiKey))
		a.hasKey = true
	}
	return a
}

func (a *ClaudeAgent) Name() string { return "Claude Code" }

func (a *ClaudeAgent) Process(ctx context.Context, req Request) Result {
	if !a.hasKey {
		return failure(a.Name(), "CLAUDE_API_KEY not set")
	}

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 4096,
		System: []anthropic.TextBlockParam{
			{Text: claudeSystemPrompt(req.Task)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	})
	if err != nil {
		return failure(a.Name(), err.Error())
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	return success(a.Name(), sb.String())
}

func claudeSystemPrompt(task string) string {
	switch task {
	case TaskAppGen:
		return "You are an expert software developer. Generate clean, well-documented code."
	case TaskDeploy:
		return "You are a DevOps expert. Provide detailed deployment instructions."
	case TaskMonetize:
		return "You are a monetization expert. Provide detailed strategies for app monetization."
	default:
		return "You are a helpful AI assistant."
	}
}
