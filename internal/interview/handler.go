package interview

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/interview-questions-lambda/internal/config"
)

const (
	msgPreflight       = "CORS preflight response"
	msgSecretFailure   = "Failed to retrieve secrets."
	msgSecretKeys      = "Missing required keys in secrets."
	msgInvalidJSON     = "Invalid JSON format in the body."
	msgMissingJobInput = "Job description is required in the event."
)

type Handler struct {
	service       Service
	allowedOrigin string
}

func NewHandler(s Service, cfg *config.Config) *Handler {
	return &Handler{service: s, allowedOrigin: cfg.AllowedOrigin}
}

// Handle runs one invocation. Every failure becomes a shaped response, so the
// returned error is always nil.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	ctx = config.ContextWithRequestID(ctx, requestID(ctx, req))
	log := config.WithContext(ctx)

	log.WithFields(logrus.Fields{
		"method":   req.HTTPMethod,
		"path":     req.Path,
		"resource": req.Resource,
	}).Debug("Received event")

	if req.HTTPMethod == http.MethodOptions {
		return h.respond(http.StatusOK, MessageResponse{Message: msgPreflight}), nil
	}

	bundle, err := h.service.LoadBundle(ctx)
	if err != nil {
		return h.fail(err), nil
	}

	jobDescription, err := parseRequest(req)
	if err != nil {
		if errors.Is(err, ErrMalformedRequest) {
			log.WithError(err).Error("Invalid JSON format in the body")
		} else {
			log.Warn("Job description is missing in the event")
		}
		return h.fail(err), nil
	}

	questions, err := h.service.GenerateQuestions(ctx, bundle, jobDescription)
	if err != nil {
		return h.fail(err), nil
	}

	return h.respond(http.StatusOK, QuestionResponse{Questions: questions}), nil
}

func (h *Handler) respond(status int, body any) events.APIGatewayProxyResponse {
	return NewResponse(status, body, h.allowedOrigin)
}

func (h *Handler) fail(err error) events.APIGatewayProxyResponse {
	var completionErr *CompletionError
	switch {
	case errors.Is(err, ErrSecretValidation):
		return h.respond(http.StatusInternalServerError, ErrorResponse{Error: msgSecretKeys})
	case errors.Is(err, ErrSecretRetrieval):
		return h.respond(http.StatusInternalServerError, ErrorResponse{Error: msgSecretFailure})
	case errors.Is(err, ErrMalformedRequest):
		return h.respond(http.StatusBadRequest, ErrorResponse{Error: msgInvalidJSON})
	case errors.Is(err, ErrMissingInput):
		return h.respond(http.StatusBadRequest, ErrorResponse{Error: msgMissingJobInput})
	case errors.As(err, &completionErr):
		return h.respond(http.StatusInternalServerError, ErrorResponse{Error: completionErr.Error()})
	default:
		return h.respond(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

func parseRequest(req events.APIGatewayProxyRequest) (string, error) {
	body := req.Body
	if body == "" {
		return "", ErrMissingInput
	}

	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedRequest, err)
		}
		body = string(decoded)
	}

	var payload QuestionRequest
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	if payload.JobDescription == "" {
		return "", ErrMissingInput
	}
	return payload.JobDescription, nil
}

func requestID(ctx context.Context, req events.APIGatewayProxyRequest) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	if req.RequestContext.RequestID != "" {
		return req.RequestContext.RequestID
	}
	return uuid.NewString()
}
