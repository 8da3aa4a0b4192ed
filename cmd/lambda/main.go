package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/saulo-duarte/interview-questions-lambda/internal/container"
)

func main() {
	c, err := container.New(context.Background())
	if err != nil {
		log.Fatalf("failed to initialise: %v", err)
	}

	lambda.Start(c.InterviewContainer.Handler.Handle)
}
