package agents

import (
	"context"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

const codexDefaultModel = "gpt-5.2-codex"

// CodexAgent drives the OpenAI Responses API. The key comes from
// OPENAI_API_KEY; without it every request fails without touching the
// network.
type CodexAgent struct {
	client openai.Client
	hasKey bool
	model  string
}

// NewCodexAgent creates the Codex agent. An empty apiKey reads the
// environment.
func NewCodexAgent(apiKey string) *CodexAgent {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	a := &CodexAgent{model: codexDefaultModel}
	if apiKey != "" {
		a.client = openai.NewClient(option.WithAPIKey(apiKey))
		a.hasKey = true
	}
	return a
}

func (a *CodexAgent) Name() string { return "Codex CLI" }

func (a *CodexAgent) Process(ctx context.Context, req Request) Result {
	if !a.hasKey {
		return failure(a.Name(), "OPENAI_API_KEY not set")
	}

	input := responses.ResponseInputParam{
		responses.ResponseInputItemParamOfMessage(
			codexSystemPrompt(req.Task),
			responses.EasyInputMessageRoleSystem,
		),
		responses.ResponseInputItemParamOfMessage(
			req.Prompt,
			responses.EasyInputMessageRoleUser,
		),
	}

	result, err := a.client.Responses.New(ctx, responses.ResponseNewParams{
		Model:           shared.ResponsesModel(a.model),
		Input:           responses.ResponseNewParamsInputUnion{OfInputItemList: input},
		MaxOutputTokens: openai.Int(4096),
	})
	if err != nil {
		return failure(a.Name(), err.Error())
	}
	return success(a.Name(), result.OutputText())
}

func codexSystemPrompt(task string) string {
	switch task {
	case TaskAppGen:
		return "You are an expert programmer. Generate complete, working code for the application described."
	case TaskDeploy:
		return "You are a DevOps expert. Provide detailed deployment instructions."
	default:
		return "You are a helpful AI assistant."
	}
}
