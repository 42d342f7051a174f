package errors

import (
	"net/http"

	"github.com/go-chi/render"
)

// APIError represents a structured API error response
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// NewAPIError creates a new APIError with the given parameters
func NewAPIError(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// NewAPIErrorWithDetails creates a new APIError with additional details
func NewAPIErrorWithDetails(statusCode int, errorCode, message string, details interface{}) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
	}
}

// Predefined error types for common scenarios
var (
	ErrInvalidRequest   = NewAPIError(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	ErrInvalidParameter = NewAPIError(http.StatusBadRequest, "INVALID_PARAMETER", "Invalid parameter value")
	ErrNotFound         = NewAPIError(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrDatasetNotFound  = NewAPIError(http.StatusNotFound, "DATASET_NOT_FOUND", "Score dataset not found")
	ErrInternalServer   = NewAPIError(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
)

// DatasetNotFoundError creates a dataset not found error with details
func DatasetNotFoundError(err error) *APIError {
	return NewAPIErrorWithDetails(http.StatusNotFound, "DATASET_NOT_FOUND", "Score dataset not found", err.Error())
}

// PipelineFailedError creates a summarization failure error with details
func PipelineFailedError(err error) *APIError {
	return NewAPIErrorWithDetails(http.StatusInternalServerError, "PIPELINE_FAILED", "Score summarization failed", err.Error())
}
