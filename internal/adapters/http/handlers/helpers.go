package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-service/internal/domain"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
)

const (
	msgInvalidID    = "ID must be a positive integer"
	msgInvalidJSON  = "Malformed JSON request body"
	msgBodyTooLarge = "Request body must not exceed %d bytes"
	msgInvalidInt   = "Must be an integer"
)

// parseID extracts a positive int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(param, msgInvalidID)
	}
	return id, nil
}

// queryInt reads an integer query parameter, returning def when it is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, msgInvalidInt)
	}
	return n, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response", slog.Any("error", err))
	}
}

// MaxRequestBodyBytes bounds request bodies: a full batch with every field at
// its length limit in 4-byte runes, plus 1 MiB for keys, dates and
// punctuation.
const MaxRequestBodyBytes = task.MaxBatchSize*(task.MaxTitleLength+task.MaxDescriptionLength)*utf8.UTFMax + 1<<20

// decodeJSONBody decodes the request body as JSON into dst. On failure it
// writes a 400 keyed on "body" and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		msg := msgInvalidJSON
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = fmt.Sprintf(msgBodyTooLarge, tooLarge.Limit)
		}
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", msg))
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
