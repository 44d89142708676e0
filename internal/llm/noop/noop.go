package noop

import (
	"context"
	"fmt"
)

// Generator is a stand-in for runs without an LLM credential. It echoes
// the prompt back so the assembled market data is still visible.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Complete(_ context.Context, _ string, prompt string) (string, error) {
	return fmt.Sprintf("[report generation disabled - no LLM provider configured]\n\n%s", prompt), nil
}
