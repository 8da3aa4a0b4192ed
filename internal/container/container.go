package container

import (
	"context"

	"github.com/saulo-duarte/interview-questions-lambda/internal/config"
	"github.com/saulo-duarte/interview-questions-lambda/internal/interview"
)

type Container struct {
	Config             *config.Config
	InterviewContainer *interview.InterviewContainer
}

// New loads configuration, initialises logging and wires every feature. It
// runs once per cold start.
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	config.InitLogger(cfg.LogLevel, cfg.LogFormat)

	interviewContainer, err := interview.NewInterviewContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:             cfg,
		InterviewContainer: interviewContainer,
	}, nil
}
