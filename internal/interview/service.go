package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/interview-questions-lambda/internal/config"
)

// SecretFetcher decodes the JSON secret called name into out.
type SecretFetcher interface {
	GetJSON(ctx context.Context, name string, out any) error
}

type Service interface {
	LoadBundle(ctx context.Context) (*SecretBundle, error)
	GenerateQuestions(ctx context.Context, bundle *SecretBundle, jobDescription string) (string, error)
}

type service struct {
	secrets      SecretFetcher
	provider     Provider
	secretName   string
	providerName string
}

func NewService(secrets SecretFetcher, provider Provider, cfg *config.Config) Service {
	return &service{
		secrets:      secrets,
		provider:     provider,
		secretName:   cfg.SecretName,
		providerName: cfg.CompletionProvider,
	}
}

func (s *service) LoadBundle(ctx context.Context) (*SecretBundle, error) {
	log := config.WithContext(ctx).WithField("secret_name", s.secretName)

	var bundle SecretBundle
	if err := s.secrets.GetJSON(ctx, s.secretName, &bundle); err != nil {
		log.WithError(err).Error("Error retrieving secret")
		return nil, fmt.Errorf("%w: %v", ErrSecretRetrieval, err)
	}

	if err := bundle.Validate(s.providerName); err != nil {
		log.WithField("provider", s.providerName).Error("Missing required keys in secrets")
		return nil, err
	}

	return &bundle, nil
}

func (s *service) GenerateQuestions(ctx context.Context, bundle *SecretBundle, jobDescription string) (string, error) {
	log := config.WithContext(ctx)
	prompt := FormatPrompt(bundle.Prompt, jobDescription)

	text, err := s.provider.Complete(ctx, bundle.KeyFor(s.providerName), systemPrompt, prompt)
	if err != nil {
		var completionErr *CompletionError
		if !errors.As(err, &completionErr) {
			completionErr = newCompletionError(err)
		}
		log.WithError(err).WithField("status_code", completionErr.StatusCode).Error("Error processing completion request")
		return "", completionErr
	}

	questions := strings.TrimSpace(text)
	log.WithField("length", len(questions)).Info("Interview questions generated")
	return questions, nil
}
