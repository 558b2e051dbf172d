// Package server provides the HTTP REST API for the career engine.
package server

import (
	"fmt"
	"net/http"

	"github.com/careernexus/career-engine/internal/extraction"
	"github.com/careernexus/career-engine/internal/gap"
	"github.com/careernexus/career-engine/internal/roadmap"
)

// ErrInvalidUpload indicates the resume upload was missing or not a PDF.
type ErrInvalidUpload struct {
	Message string
}

func (e *ErrInvalidUpload) Error() string {
	return fmt.Sprintf("invalid upload: %s", e.Message)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidUpload, *ErrValidation:
		return http.StatusBadRequest
	case *extraction.ExtractionError:
		return http.StatusUnprocessableEntity
	case *gap.UnknownRoleError, *roadmap.TaskNotFoundError:
		return http.StatusNotFound
	case *roadmap.TaskLockedError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
