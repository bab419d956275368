package dto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/task-service/internal/domain"
)

// Machine-readable error types carried in the "type" field.
const (
	TypeValidation = "VALIDATION_ERROR"
	TypeNotFound   = "NOT_FOUND"
	TypeInternal   = "INTERNAL_ERROR"
	TypeTimeout    = "TIMEOUT"
)

const (
	msgValidationFailed = "Validation failed"
	msgInternal         = "Internal server error"
	msgTimeout          = "Request timed out"
	msgUnauthorized     = "unauthorized"
)

// ErrorResponse is the JSON body of every 4xx/5xx response except 401.
type ErrorResponse struct {
	Error       string            `json:"error"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Type        string            `json:"type"`
}

// UnauthorizedResponse is the JSON body of a 401 response.
type UnauthorizedResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse maps a domain error to a status code and body. Causes of
// internal errors are never exposed to the client.
func NewErrorResponse(err error) (int, ErrorResponse) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, ErrorResponse{
			Error:       msgValidationFailed,
			FieldErrors: verr.Fields,
			Type:        TypeValidation,
		}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{
			Error: notFoundMessage(err),
			Type:  TypeNotFound,
		}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrorResponse{
			Error: msgTimeout,
			Type:  TypeTimeout,
		}
	default:
		return http.StatusInternalServerError, ErrorResponse{
			Error: msgInternal,
			Type:  TypeInternal,
		}
	}
}

// WriteErrorResponse writes the JSON error body for err. Unauthorized errors
// use the {error, message} shape; 500s log the cause.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrUnauthorized) {
		WriteUnauthorized(w, r, err.Error())
		return
	}

	status, resp := NewErrorResponse(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	writeBody(w, r, status, resp)
}

// WriteUnauthorized writes a 401 with the given message.
func WriteUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	writeBody(w, r, http.StatusUnauthorized, UnauthorizedResponse{
		Error:   msgUnauthorized,
		Message: message,
	})
}

func writeBody(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// notFoundMessage renders "Task not found: 42" when the error names the record.
func notFoundMessage(err error) string {
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Resource == "" {
		return "Not found"
	}
	return fmt.Sprintf("%s not found: %d", strings.ToUpper(nf.Resource[:1])+nf.Resource[1:], nf.ID)
}
