package agents

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

const geminiDefaultModel = "gemini-2.5-flash"

// GeminiAgent drives the Google GenAI API. The key comes from GEMINI_API_KEY;
// without it every request fails without touching the network.
type GeminiAgent struct {
	client *genai.Client
	model  string
}

// NewGeminiAgent creates the Gemini agent. An empty apiKey reads the
// environment.
func NewGeminiAgent(apiKey string) *GeminiAgent {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	a := &GeminiAgent{model: geminiDefaultModel}
	if apiKey != "" {
		client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err == nil {
			a.client = client
		}
	}
	return a
}

func (a *GeminiAgent) Name() string { return "Gemini CLI" }

func (a *GeminiAgent) Process(ctx context.Context, req Request) Result {
	if a.client == nil {
		return failure(a.Name(), "GEMINI_API_KEY not set")
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model,
		genai.Text(geminiPrompt(req)), &genai.GenerateContentConfig{})
	if err != nil {
		return failure(a.Name(), err.Error())
	}
	return success(a.Name(), resp.Text())
}

func geminiPrompt(req Request) string {
	switch req.Task {
	case TaskAppGen:
		return fmt.Sprintf("Generate code for: %s. Include HTML, CSS, and JavaScript.", req.Prompt)
	case TaskVibeGen:
		return fmt.Sprintf("Generate creative vibes for: %s. Be poetic and insightful.", req.Prompt)
	default:
		return req.Prompt
	}
}
