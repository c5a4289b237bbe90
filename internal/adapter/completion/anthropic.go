package completion

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sirupsen/logrus"
)

// DefaultAnthropicModel is used when no model is configured.
const DefaultAnthropicModel = string(anthropic.ModelClaude_3_Haiku_20240307)

// Anthropic sends prompts to the anthropic messages api.
type Anthropic struct {
	client    anthropic.Client
	model     string
	maxTokens int
	l         logrus.FieldLogger
}

// NewAnthropic creates new Anthropic completer.
// address is optional, empty means public api. Requests are never retried.
func NewAnthropic(apiKey string, address string, model string, maxTokens int, l logrus.FieldLogger) (*Anthropic, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultAnthropicModel
	}
	if maxTokens <= 0 {
		return nil, fmt.Errorf("max tokens must be greater than 0, got %d", maxTokens)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if address != "" {
		opts = append(opts, option.WithBaseURL(address))
	}

	return &Anthropic{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
		l:         l,
	}, nil
}

// Complete sends single user message and returns concatenated text of the reply.
func (a *Anthropic) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(a.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages api: %w", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	a.l.Debugf("anthropic completion: %d input tokens, %d output tokens", resp.Usage.InputTokens, resp.Usage.OutputTokens)

	if b.Len() == 0 {
		return "", ErrEmptyCompletion
	}

	return b.String(), nil
}

// Close is a no-op, the api client holds no resources.
func (a *Anthropic) Close() error {
	return nil
}
