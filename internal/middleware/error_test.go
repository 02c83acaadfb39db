package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"
)

// Property: every error body carries code, message and an RFC3339 timestamp
func TestProperty_ErrorsHaveConsistentStructure(t *testing.T) {
	properties := gopter.NewProperties(nil)

	standardCodes := []int{
		http.StatusBadRequest,
		http.StatusNotFound,
		http.StatusConflict,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
	}

	properties.Property("all error responses have consistent structure", prop.ForAll(
		func(message string, idx int) bool {
			statusCode := standardCodes[idx]

			w := httptest.NewRecorder()
			RespondWithRequestError(w, httptest.NewRequest(http.MethodGet, "/", nil), statusCode, message)

			if w.Code != statusCode {
				return false
			}
			if w.Header().Get("Content-Type") != "application/json" {
				return false
			}

			var response ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				return false
			}
			if response.Error.Code != http.StatusText(statusCode) || response.Error.Message != message {
				return false
			}
			_, err := time.Parse(time.RFC3339, response.Error.Timestamp)
			return err == nil
		},
		gen.AlphaString().SuchThat(func(s string) bool { return len(s) > 0 }),
		gen.IntRange(0, len(standardCodes)-1),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestValidationErrorsAreWrappedInDetails(t *testing.T) {
	w := httptest.NewRecorder()
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RespondWithValidationErrors(w, r, []ValidationError{{Field: "view", Message: "This field is required"}})
	}))
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/sessions/x/navigate", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var response ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	errs, ok := response.Error.Details["validation_errors"].([]interface{})
	if !ok || len(errs) != 1 {
		t.Fatalf("expected one validation error, got %#v", response.Error.Details)
	}
	if response.Error.RequestID == "" {
		t.Error("expected request id in validation error body")
	}
}

func TestErrorHandlingMiddlewareRecoversPanics(t *testing.T) {
	handler := middleware.RequestID(ErrorHandlingMiddleware(zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}),
	))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sessions", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var response ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if response.Error.RequestID == "" {
		t.Error("expected request id in error body")
	}
}
