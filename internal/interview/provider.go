package interview

import (
	"context"
	"errors"
	"fmt"

	"github.com/saulo-duarte/interview-questions-lambda/internal/config"
)

var errEmptyCompletion = errors.New("completion response contained no choices")

// Provider sends one system/user prompt pair to a completion API. The API key
// is supplied per call and never kept on the provider.
type Provider interface {
	Complete(ctx context.Context, apiKey, system, user string) (string, error)
}

func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.CompletionProvider {
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg.CompletionModel, cfg.OpenAIBaseURL), nil
	case config.ProviderGemini:
		return NewGeminiProvider(cfg.CompletionModel, cfg.GeminiBaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported completion provider %q", cfg.CompletionProvider)
	}
}
