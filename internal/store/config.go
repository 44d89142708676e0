package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Named credential errors so a missing key surfaces as a configuration
// failure at the composer boundary instead of deep inside a fetch call.
var (
	ErrMissingFinnhubKey   = errors.New("FINNHUB_API_KEY missing")
	ErrMissingOpenAIKey    = errors.New("OPENAI_API_KEY missing")
	ErrMissingAnthropicKey = errors.New("ANTHROPIC_API_KEY missing")
)

type Config struct {
	// Exchange queried for market status.
	Exchange string `yaml:"exchange"`

	HTTP struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"http"`

	LLM struct {
		Provider    string  `yaml:"provider"`
		Model       string  `yaml:"model"`
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float32 `yaml:"temperature"`
	} `yaml:"llm"`

	// Credentials are read from the environment, never from the file.
	FinnhubAPIKey   string `yaml:"-"`
	OpenAIAPIKey    string `yaml:"-"`
	AnthropicAPIKey string `yaml:"-"`
}

func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "OPENAI", "CLAUDE", "NONE":
	default:
		return fmt.Errorf("invalid llm.provider '%s': must be 'OPENAI', 'CLAUDE', or 'NONE'", c.LLM.Provider)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive, got %d", c.LLM.MaxTokens)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0-2, got %.2f", c.LLM.Temperature)
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be positive, got %d", c.HTTP.TimeoutSeconds)
	}
	return nil
}

// CredentialError reports the first missing credential the configured
// providers require. The market-data token is always required; the
// model key only when an LLM provider is selected.
func (c *Config) CredentialError() error {
	if c.FinnhubAPIKey == "" {
		return ErrMissingFinnhubKey
	}
	switch c.LLM.Provider {
	case "OPENAI":
		if c.OpenAIAPIKey == "" {
			return ErrMissingOpenAIKey
		}
	case "CLAUDE":
		if c.AnthropicAPIKey == "" {
			return ErrMissingAnthropicKey
		}
	}
	return nil
}

// LoadConfig reads the yaml config at path, applies defaults, and pulls
// credentials from the environment. A missing file is not an error; the
// binary then runs on defaults plus environment variables alone.
func LoadConfig(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults only
	default:
		return nil, err
	}

	if c.Exchange == "" {
		c.Exchange = "US"
	}
	if c.HTTP.TimeoutSeconds == 0 {
		c.HTTP.TimeoutSeconds = 30
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "OPENAI"
	}
	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case "CLAUDE":
			c.LLM.Model = "claude-sonnet-4-20250514"
		default:
			c.LLM.Model = "gpt-4-turbo-preview"
		}
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 4000
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.7
	}

	c.FinnhubAPIKey = os.Getenv("FINNHUB_API_KEY")
	c.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	c.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}
