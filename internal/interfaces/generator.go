package interfaces

import "context"

// Generator produces prose from a system instruction and a user prompt.
// Implementations live under internal/llm.
type Generator interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}
