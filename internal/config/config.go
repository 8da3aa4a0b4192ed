package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultSecretName  = "interviewai_voicecall_questions_service"
	DefaultOpenAIModel = "gpt-4"
	DefaultGeminiModel = "gemini-2.0-flash"
)

type Config struct {
	AllowedOrigin      string `mapstructure:"allowed_origin"`
	SecretName         string `mapstructure:"secret_name"`
	CompletionProvider string `mapstructure:"completion_provider"`
	CompletionModel    string `mapstructure:"completion_model"`
	OpenAIBaseURL      string `mapstructure:"openai_base_url"`
	GeminiBaseURL      string `mapstructure:"gemini_base_url"`
	AWSRegion          string `mapstructure:"aws_region"`
	LogLevel           string `mapstructure:"log_level"`
	LogFormat          string `mapstructure:"log_format"`
	HTTPAddr           string `mapstructure:"http_addr"`
}

// Load resolves the configuration once from the environment (and an optional
// .env file). Every key has a default so viper picks up its env override.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("allowed_origin", "*")
	v.SetDefault("secret_name", DefaultSecretName)
	v.SetDefault("completion_provider", ProviderOpenAI)
	v.SetDefault("completion_model", "")
	v.SetDefault("openai_base_url", "")
	v.SetDefault("gemini_base_url", "")
	v.SetDefault("aws_region", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("http_addr", ":8080")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.CompletionProvider = strings.ToLower(strings.TrimSpace(cfg.CompletionProvider))
	switch cfg.CompletionProvider {
	case ProviderOpenAI:
		if cfg.CompletionModel == "" {
			cfg.CompletionModel = DefaultOpenAIModel
		}
	case ProviderGemini:
		if cfg.CompletionModel == "" {
			cfg.CompletionModel = DefaultGeminiModel
		}
	default:
		return nil, fmt.Errorf("unsupported COMPLETION_PROVIDER %q", cfg.CompletionProvider)
	}

	return &cfg, nil
}
