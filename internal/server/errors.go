// Package server provides the HTTP REST API over the record store.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/talentflow/internal/store"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var validation *ErrValidation
	var stale *store.ErrStaleOrder
	var outOfRange *store.ErrOrderOutOfRange
	switch {
	case errors.Is(err, store.ErrNoRecord):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &stale), errors.As(err, &outOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
