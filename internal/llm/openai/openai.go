package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"premarket-report/internal/store"
)

// Generator implements the Generator interface using the OpenAI chat
// completions API.
type Generator struct {
	cfg    *store.Config
	client *openai.Client
}

func NewGenerator(cfg *store.Config) *Generator {
	client := openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey))
	return &Generator{cfg: cfg, client: &client}
}

func (g *Generator) Complete(ctx context.Context, system, prompt string) (string, error) {
	if g.cfg.OpenAIAPIKey == "" {
		return "", store.ErrMissingOpenAIKey
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.cfg.LLM.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(float64(g.cfg.LLM.Temperature)),
		MaxTokens:   openai.Int(int64(g.cfg.LLM.MaxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}
	return resp.Choices[0].Message.Content, nil
}
