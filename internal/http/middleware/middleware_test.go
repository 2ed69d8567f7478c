package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nba-fit-service/internal/logging"
	"nba-fit-service/internal/metrics"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestMiddlewareGeneratesRequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware(discardLogger(), nil, next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if seen == "" {
		t.Fatalf("expected request id in context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("expected header %q to match context id %q", got, seen)
	}
}

func TestMiddlewareKeepsValidIncomingRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "client-id-42")
	rec := httptest.NewRecorder()
	LoggingMiddleware(discardLogger(), nil, next).ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "client-id-42" {
		t.Fatalf("expected incoming id kept, got %q", got)
	}
}

func TestMiddlewareReplacesInvalidRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "has spaces and / slashes")
	rec := httptest.NewRecorder()
	LoggingMiddleware(discardLogger(), nil, next).ServeHTTP(rec, req)

	got := rec.Header().Get("X-Request-ID")
	if got == "" || strings.Contains(got, " ") {
		t.Fatalf("expected sanitized id, got %q", got)
	}
}

func TestMiddlewareInjectsContextLogger(t *testing.T) {
	var got *slog.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = logging.FromContext(r.Context(), nil)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware(discardLogger(), nil, next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams", nil))

	if got == nil {
		t.Fatalf("expected logger in request context")
	}
}

func TestMiddlewareRecordsMetricsWithStatus(t *testing.T) {
	rec := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	LoggingMiddleware(discardLogger(), rec, next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/simulate-fit", nil))

	if w.Code != http.StatusTeapot {
		t.Fatalf("expected status passthrough, got %d", w.Code)
	}
}

func TestNormalizePathBoundsCardinality(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/health", "/health"},
		{"/ready", "/ready"},
		{"/simulate-fit", "/simulate-fit"},
		{"/players/search", "/players/search"},
		{"/teams", "/teams"},
		{"/admin/teams/refresh", "/admin"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizePath(tc.in); got != tc.want {
			t.Fatalf("normalizePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRequestIDFromContextNilContext(t *testing.T) {
	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty id for nil context, got %q", got)
	}
}

func TestMiddlewareDefaultStatusIsOK(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Write without an explicit WriteHeader.
		_, _ = w.Write([]byte("hi"))
	})

	rec := metrics.NewRecorder()
	w := httptest.NewRecorder()
	start := time.Now()
	LoggingMiddleware(discardLogger(), rec, next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if time.Since(start) > time.Second {
		t.Fatalf("middleware should not block")
	}

	if w.Code != http.StatusOK {
		t.Fatalf("expected implicit 200, got %d", w.Code)
	}
}
