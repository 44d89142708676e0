package llmobs

import (
	"context"

	"premarket-report/internal/interfaces"
	"premarket-report/internal/logger"
	"premarket-report/internal/trace"
)

// observableGenerator wraps a Generator with observability (logging & tracing)
type observableGenerator struct {
	generator interfaces.Generator
}

// Compile-time interface check
var _ interfaces.Generator = (*observableGenerator)(nil)

// Wrap wraps a generator with observability middleware
func Wrap(generator interfaces.Generator) interfaces.Generator {
	return &observableGenerator{
		generator: generator,
	}
}

// Complete invokes the underlying generator with a span and logging
// around the call.
func (og *observableGenerator) Complete(ctx context.Context, system, prompt string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "llm.Complete")
	defer span.End()

	// Skip(1) so the log reports the actual caller, not this wrapper
	logger.DebugSkip(ctx, 1, "Requesting completion", "prompt_chars", len(prompt))

	content, err := og.generator.Complete(ctx, system, prompt)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Completion failed", err, "prompt_chars", len(prompt))
		return "", err
	}

	logger.InfoSkip(ctx, 1, "Completion received", "content_chars", len(content))
	return content, nil
}
