package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matthieuv/superligue/internal/usecase"
)

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type: %q", got)
	}

	envelope := decodeEnvelope(t, rec)
	if envelope.APIVersion != "2.0" {
		t.Fatalf("unexpected api version: %q", envelope.APIVersion)
	}
	if envelope.Error != nil {
		t.Fatalf("success envelope carries an error: %+v", envelope.Error)
	}
	data, ok := envelope.Data.(map[string]any)
	if !ok || data["status"] != "ok" {
		t.Fatalf("unexpected data: %+v", envelope.Data)
	}
}

func TestWriteError_Mapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantReason string
	}{
		{"invalid input", fmt.Errorf("%w: bad filter", usecase.ErrInvalidInput), http.StatusBadRequest, "INVALID_ARGUMENT", "invalidInput"},
		{"not found", fmt.Errorf("%w: no such season", usecase.ErrNotFound), http.StatusNotFound, "NOT_FOUND", "notFound"},
		{"unauthorized", fmt.Errorf("%w: token rejected", usecase.ErrUnauthorized), http.StatusUnauthorized, "UNAUTHENTICATED", "unauthorized"},
		{"forbidden", fmt.Errorf("%w: admin only", usecase.ErrForbidden), http.StatusForbidden, "PERMISSION_DENIED", "forbidden"},
		{"dependency", fmt.Errorf("%w: account service down", usecase.ErrDependencyUnavailable), http.StatusServiceUnavailable, "UNAVAILABLE", "dependencyUnavailable"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL", "internalError"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tc.err)

			if rec.Code != tc.wantStatus {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, tc.wantStatus)
			}
			envelope := decodeEnvelope(t, rec)
			if envelope.Error == nil {
				t.Fatalf("missing error body")
			}
			if envelope.Error.Status != tc.wantCode || envelope.Error.Code != tc.wantStatus {
				t.Fatalf("unexpected error body: %+v", envelope.Error)
			}
			if len(envelope.Error.Errors) != 1 || envelope.Error.Errors[0].Reason != tc.wantReason {
				t.Fatalf("unexpected error items: %+v", envelope.Error.Errors)
			}
			if envelope.Error.Errors[0].Domain != "superligue" {
				t.Fatalf("unexpected error domain: %q", envelope.Error.Errors[0].Domain)
			}
		})
	}
}

func TestWriteInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeInternalError(context.Background(), rec)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Error == nil || envelope.Error.Message != "internal server error" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}
