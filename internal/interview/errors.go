package interview

import "errors"

var (
	ErrSecretRetrieval  = errors.New("failed to retrieve secrets")
	ErrSecretValidation = errors.New("missing required keys in secrets")
	ErrMalformedRequest = errors.New("invalid JSON format in the body")
	ErrMissingInput     = errors.New("job description is required")
)

// CompletionError is any failure of the completion call. Error returns the
// upstream message unchanged since it is shown to the caller.
type CompletionError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *CompletionError) Error() string {
	return e.Message
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

func newCompletionError(err error) *CompletionError {
	return &CompletionError{Message: err.Error(), Err: err}
}

// upstreamCompletionError keeps the API's own message, or the full error text
// when the API sent none.
func upstreamCompletionError(message string, statusCode int, err error) *CompletionError {
	if message == "" {
		message = err.Error()
	}
	return &CompletionError{Message: message, StatusCode: statusCode, Err: err}
}
