// Package completion contains language model completion api adapters.
// Every adapter implements app.Completer.
package completion

import (
	"context"
	"errors"
	"fmt"

	"github.com/m-zajac/portfoliobuilder/internal/app"
	"github.com/sirupsen/logrus"
)

// Supported providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

var (
	// ErrMissingAPIKey is returned when selected provider has no credential configured.
	ErrMissingAPIKey = errors.New("completion api key is not set")
	// ErrEmptyCompletion is returned when api responded without any text.
	ErrEmptyCompletion = errors.New("completion api returned no text")
)

// Completer is an app.Completer holding api resources.
type Completer interface {
	app.Completer
	Close() error
}

var (
	_ Completer = &Anthropic{}
	_ Completer = &Gemini{}
)

// Config selects and configures completion provider.
type Config struct {
	Provider         string
	AnthropicAPIKey  string
	AnthropicAddress string
	AnthropicModel   string
	GeminiAPIKey     string
	GeminiModel      string
	MaxTokens        int
}

// New creates completer of configured provider.
func New(ctx context.Context, conf Config, l logrus.FieldLogger) (Completer, error) {
	switch conf.Provider {
	case ProviderAnthropic, "":
		c, err := NewAnthropic(conf.AnthropicAPIKey, conf.AnthropicAddress, conf.AnthropicModel, conf.MaxTokens, l)
		if err != nil {
			return nil, fmt.Errorf("anthropic: %w", err)
		}
		return c, nil
	case ProviderGemini:
		c, err := NewGemini(ctx, conf.GeminiAPIKey, conf.GeminiModel, conf.MaxTokens, l)
		if err != nil {
			return nil, fmt.Errorf("gemini: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown completion provider %q", conf.Provider)
	}
}
