package interview

import "github.com/saulo-duarte/interview-questions-lambda/internal/config"

type SecretBundle struct {
	OpenAIKey string `json:"open_ai_key"`
	GeminiKey string `json:"gemini_key"`
	Prompt    string `json:"prompt"`
}

// KeyFor returns the API key the given completion provider authenticates with.
func (b *SecretBundle) KeyFor(provider string) string {
	if provider == config.ProviderGemini {
		return b.GeminiKey
	}
	return b.OpenAIKey
}

func (b *SecretBundle) Validate(provider string) error {
	if b.KeyFor(provider) == "" || b.Prompt == "" {
		return ErrSecretValidation
	}
	return nil
}

type QuestionRequest struct {
	JobDescription string `json:"job_description"`
}

type QuestionResponse struct {
	Questions string `json:"questions"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
