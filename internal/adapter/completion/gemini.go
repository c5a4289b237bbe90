package completion

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-1.5-flash"

// Gemini sends prompts to the google generative ai api.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
	l      logrus.FieldLogger
}

// NewGemini creates new Gemini completer.
func NewGemini(ctx context.Context, apiKey string, model string, maxTokens int, l logrus.FieldLogger) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	if maxTokens <= 0 {
		return nil, fmt.Errorf("max tokens must be greater than 0, got %d", maxTokens)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	m := client.GenerativeModel(model)
	m.SetMaxOutputTokens(int32(maxTokens))

	return &Gemini{
		client: client,
		model:  m,
		l:      l,
	}, nil
}

// Complete generates content for given prompt and returns text of all candidates.
func (g *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if resp.UsageMetadata != nil {
		g.l.Debugf("gemini completion: %d prompt tokens, %d candidate tokens",
			resp.UsageMetadata.PromptTokenCount, resp.UsageMetadata.CandidatesTokenCount)
	}

	text := responseText(resp)
	if text == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}

// Close releases the api client.
func (g *Gemini) Close() error {
	return g.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}

	return b.String()
}
