package router

import (
	"context"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/interview-questions-lambda/internal/config"
	"github.com/saulo-duarte/interview-questions-lambda/internal/interview"
)

type LambdaFunc func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

type RouterConfig struct {
	InterviewHandler *interview.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	questions := Adapt(cfg.InterviewHandler.Handle)
	for _, path := range []string{"/", "/questions"} {
		r.Post(path, questions)
		r.Options(path, questions)
	}

	return r
}

// Adapt serves a Lambda proxy handler over net/http, translating the request
// into an API Gateway event and writing the shaped response back.
func Adapt(fn LambdaFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.WithError(err).Error("Failed to read request body")
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}

		resp, err := fn(r.Context(), toProxyRequest(r, body))
		if err != nil {
			log.WithError(err).Error("Lambda handler returned an error")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.WriteString(w, resp.Body)
	}
}

func toProxyRequest(r *http.Request, body []byte) events.APIGatewayProxyRequest {
	headers := make(map[string]string, len(r.Header))
	multiHeaders := make(map[string][]string, len(r.Header))
	for k, v := range r.Header {
		if len(v) > 0 {
			headers[k] = v[0]
		}
		multiHeaders[k] = v
	}

	query := make(map[string]string)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	return events.APIGatewayProxyRequest{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		Resource:              r.URL.Path,
		Headers:               headers,
		MultiValueHeaders:     multiHeaders,
		QueryStringParameters: query,
		Body:                  string(body),
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:  middleware.GetReqID(r.Context()),
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
		},
	}
}
