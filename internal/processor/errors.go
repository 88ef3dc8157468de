package processor

import (
	"errors"
	"fmt"
)

// APIError is the processor's structured error envelope. The human-readable
// detail is preferred over the title, and either over a bare status code,
// when the message reaches the user.
type APIError struct {
	Status int
	Title  string
	Detail string
}

type apiErrorResponse struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Title != "" {
		return e.Title
	}
	return fmt.Sprintf("processor returned status %d", e.Status)
}

func (e *APIError) IsRetryable() bool {
	return e.Status >= 500
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
