package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rawal21/stayfinder/internal/destination"
	"github.com/rawal21/stayfinder/internal/search"
	"github.com/rawal21/stayfinder/internal/storage/memory"
)

func newTestHandler() *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := destination.NewResolver(nil, memory.New(), logger)
	// No vendor wired: every search serves the deterministic fallback,
	// which is all the HTTP layer needs.
	searcher := search.NewSearcher(nil, resolver, logger)
	return New(searcher, logger)
}

func TestSearchHandler_OK(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet,
		"/search?location=Tokyo&checkIn=2026-09-12&checkOut=2026-09-15&guests=2&offset=0&limit=4", nil)
	rec := httptest.NewRecorder()

	h.SearchHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}

	var result search.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(result.Hotels) != 4 {
		t.Errorf("expected 4 hotels, got %d", len(result.Hotels))
	}
	if result.Source != search.SourceFallback {
		t.Errorf("expected fallback source without credentials, got %s", result.Source)
	}
}

func TestSearchHandler_Defaults(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	rec := httptest.NewRecorder()

	h.SearchHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var result search.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(result.Hotels) != search.DefaultLimit {
		t.Errorf("expected default page of %d, got %d", search.DefaultLimit, len(result.Hotels))
	}
}

func TestSearchHandler_BadParams(t *testing.T) {
	cases := []struct {
		name  string
		query string
	}{
		{"bad checkIn", "checkIn=12-09-2026"},
		{"bad checkOut", "checkOut=tomorrow"},
		{"checkOut before checkIn", "checkIn=2026-09-15&checkOut=2026-09-12"},
		{"zero guests", "guests=0"},
		{"negative offset", "offset=-1"},
		{"zero limit", "limit=0"},
		{"non-numeric limit", "limit=lots"},
	}

	h := newTestHandler()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/search?"+tc.query, nil)
			rec := httptest.NewRecorder()

			h.SearchHandler(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("expected JSON error body: %v", err)
			}
			if body["error"] == "" {
				t.Error("expected error message in body")
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	h.HealthHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("expected OK body, got %q", rec.Body.String())
	}
}
