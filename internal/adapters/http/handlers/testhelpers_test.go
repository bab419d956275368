package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
)

var testDue = task.Date{Year: 2026, Month: 10, Day: 25}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validTask() task.Task {
	due := testDue
	return task.Task{
		ID:          1,
		Title:       "Prepare demo",
		Description: "Slides and script",
		Status:      task.StatusTodo,
		DueDate:     &due,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func rawBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// requireFieldError asserts a 400 validation body carrying field=msg.
func requireFieldError(t *testing.T, rec *httptest.ResponseRecorder, field, msg string) {
	t.Helper()
	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Type != dto.TypeValidation {
		t.Errorf("type = %q, want %q", resp.Type, dto.TypeValidation)
	}
	if got := resp.FieldErrors[field]; got != msg {
		t.Errorf("fieldErrors[%q] = %q, want %q (all: %v)", field, got, msg, resp.FieldErrors)
	}
}
