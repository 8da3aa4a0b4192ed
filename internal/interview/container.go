package interview

import (
	"context"

	"github.com/saulo-duarte/interview-questions-lambda/internal/config"
	"github.com/saulo-duarte/interview-questions-lambda/internal/secrets"
)

type InterviewContainer struct {
	Service Service
	Handler *Handler
}

func NewInterviewContainer(ctx context.Context, cfg *config.Config) (*InterviewContainer, error) {
	store, err := secrets.NewAWSStore(ctx, cfg.AWSRegion)
	if err != nil {
		return nil, err
	}

	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	service := NewService(store, provider, cfg)
	handler := NewHandler(service, cfg)

	return &InterviewContainer{
		Service: service,
		Handler: handler,
	}, nil
}
