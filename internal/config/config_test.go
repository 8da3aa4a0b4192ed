package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/interview-questions-lambda/internal/config"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"ALLOWED_ORIGIN", "SECRET_NAME", "COMPLETION_PROVIDER", "COMPLETION_MODEL",
		"OPENAI_BASE_URL", "GEMINI_BASE_URL", "AWS_REGION", "LOG_LEVEL", "LOG_FORMAT", "HTTP_ADDR",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "*", cfg.AllowedOrigin)
		assert.Equal(t, "interviewai_voicecall_questions_service", cfg.SecretName)
		assert.Equal(t, config.ProviderOpenAI, cfg.CompletionProvider)
		assert.Equal(t, "gpt-4", cfg.CompletionModel)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, ":8080", cfg.HTTPAddr)
	})

	t.Run("EnvOverrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ALLOWED_ORIGIN", "https://app.example.com")
		t.Setenv("SECRET_NAME", "other-secret")
		t.Setenv("COMPLETION_MODEL", "gpt-4o-mini")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "https://app.example.com", cfg.AllowedOrigin)
		assert.Equal(t, "other-secret", cfg.SecretName)
		assert.Equal(t, "gpt-4o-mini", cfg.CompletionModel)
	})

	t.Run("GeminiDefaultModel", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("COMPLETION_PROVIDER", "Gemini")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, config.ProviderGemini, cfg.CompletionProvider)
		assert.Equal(t, config.DefaultGeminiModel, cfg.CompletionModel)
	})

	t.Run("UnknownProvider", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("COMPLETION_PROVIDER", "llama")

		_, err := config.Load()
		assert.Error(t, err)
	})
}
