package claude

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"premarket-report/internal/store"
)

// Generator implements the Generator interface using the Anthropic
// messages API.
type Generator struct {
	cfg    *store.Config
	client *anthropic.Client
}

func NewGenerator(cfg *store.Config) *Generator {
	client := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))
	return &Generator{cfg: cfg, client: &client}
}

func (g *Generator) Complete(ctx context.Context, system, prompt string) (string, error) {
	if g.cfg.AnthropicAPIKey == "" {
		return "", store.ErrMissingAnthropicKey
	}

	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(g.cfg.LLM.Model),
		MaxTokens:   int64(g.cfg.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(g.cfg.LLM.Temperature)),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}
	return resp.Content[0].Text, nil
}
