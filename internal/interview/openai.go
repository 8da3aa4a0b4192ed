package interview

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/saulo-duarte/interview-questions-lambda/internal/config"
)

type openAIProvider struct {
	model   string
	baseURL string
}

func NewOpenAIProvider(model, baseURL string) Provider {
	return &openAIProvider{model: model, baseURL: baseURL}
}

func (p *openAIProvider) client(apiKey string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if p.baseURL != "" {
		cfg.BaseURL = p.baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

func (p *openAIProvider) Complete(ctx context.Context, apiKey, system, user string) (string, error) {
	log := config.WithContext(ctx)

	resp, err := p.client(apiKey).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			log.WithField("status_code", apiErr.HTTPStatusCode).Debug("OpenAI API returned an error")
			return "", upstreamCompletionError(apiErr.Message, apiErr.HTTPStatusCode, err)
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return "", &CompletionError{Message: err.Error(), StatusCode: reqErr.HTTPStatusCode, Err: err}
		}
		return "", newCompletionError(err)
	}

	if len(resp.Choices) == 0 {
		return "", newCompletionError(errEmptyCompletion)
	}

	log.WithField("model", resp.Model).Debug("OpenAI completion received")
	return resp.Choices[0].Message.Content, nil
}
