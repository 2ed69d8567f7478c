package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/simulate-fit", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()

	writeError(rec, req, http.StatusBadRequest, "bad input", nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "bad input" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
	if body["requestId"] != "req-123" {
		t.Fatalf("expected request id echoed, got %v", body["requestId"])
	}
}

func TestWriteErrorWithoutRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/simulate-fit", nil)
	rec := httptest.NewRecorder()

	writeError(rec, req, http.StatusNotFound, "missing", nil)

	body := decodeBody(t, rec)
	if _, present := body["requestId"]; present {
		t.Fatalf("expected no request id field, got %v", body)
	}
}

func TestWriteJSONSetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()

	writeJSON(rec, http.StatusOK, map[string]string{"status": "ok"}, nil)

	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected json content type, got %q", got)
	}
}
