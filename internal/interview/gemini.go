package interview

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

type geminiProvider struct {
	model   string
	baseURL string
}

func NewGeminiProvider(model, baseURL string) Provider {
	return &geminiProvider{model: model, baseURL: baseURL}
}

func (p *geminiProvider) Complete(ctx context.Context, apiKey, system, user string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: p.baseURL},
	})
	if err != nil {
		return "", newCompletionError(err)
	}

	result, err := client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		},
	)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", upstreamCompletionError(apiErr.Message, apiErr.Code, err)
		}
		return "", newCompletionError(err)
	}

	raw := result.Text()
	if raw == "" {
		return "", newCompletionError(errEmptyCompletion)
	}
	return raw, nil
}
