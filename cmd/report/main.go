package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"premarket-report/internal/fetch/finnhub"
	"premarket-report/internal/fetch/yahoo"
	"premarket-report/internal/interfaces"
	"premarket-report/internal/llm/claude"
	"premarket-report/internal/llm/llmobs"
	"premarket-report/internal/llm/noop"
	"premarket-report/internal/llm/openai"
	"premarket-report/internal/logger"
	"premarket-report/internal/report"
	"premarket-report/internal/store"
	"premarket-report/internal/trace"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	ctx := context.Background()

	if err := trace.Init(); err != nil {
		logger.Warn(ctx, "failed to initialize tracer, tracing disabled", "error", err)
	}
	defer func() {
		_ = trace.Shutdown(ctx)
	}()

	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		logger.ErrorWithErr(ctx, "failed to load config", err)
		os.Exit(1)
	}

	composer := report.New(cfg,
		finnhub.New(cfg),
		yahoo.NewFetcher(cfg),
		buildGenerator(ctx, cfg),
	)

	result := composer.Generate(ctx)
	if !result.Success {
		fmt.Fprintf(os.Stderr, "Error generating report: %s\n", result.Err)
		os.Exit(1)
	}

	rule := strings.Repeat("=", 80)
	fmt.Println("Report generated successfully!")
	fmt.Println()
	fmt.Println(rule)
	fmt.Println(result.Content)
	fmt.Println(rule)
}

// buildGenerator selects the LLM provider and wraps it with
// observability middleware.
func buildGenerator(ctx context.Context, cfg *store.Config) interfaces.Generator {
	var gen interfaces.Generator
	switch cfg.LLM.Provider {
	case "OPENAI":
		gen = openai.NewGenerator(cfg)
	case "CLAUDE":
		gen = claude.NewGenerator(cfg)
	default:
		gen = noop.NewGenerator()
		logger.Warn(ctx, "No LLM provider configured - report content will echo the market digest")
	}
	return llmobs.Wrap(gen)
}
