package interview

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

// NewResponse shapes an API Gateway proxy response with the CORS header set.
// Bodies are plain response structs, so encoding cannot fail.
func NewResponse(status int, body any, allowedOrigin string) events.APIGatewayProxyResponse {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	payload, _ := json.Marshal(body)

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":                 "application/json",
			"Access-Control-Allow-Origin":  allowedOrigin,
			"Access-Control-Allow-Methods": "OPTIONS, POST",
			"Access-Control-Allow-Headers": "Content-Type",
		},
		Body: string(payload),
	}
}
