// Package server provides the HTTP REST API for the resume ATS engine.
package server

import (
	"fmt"
	"net/http"
)

// ErrBadRequest indicates a malformed or invalid request body.
type ErrBadRequest struct {
	Message string
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("bad request: %s", e.Message)
}

// ErrRateLimited indicates the client exceeded its request budget.
type ErrRateLimited struct{}

func (e *ErrRateLimited) Error() string {
	return "rate limit exceeded"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrBadRequest:
		return http.StatusBadRequest
	case *ErrRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
