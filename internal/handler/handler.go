package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rawal21/stayfinder/internal/search"
)

const dateLayout = "2006-01-02"

// Handler handles HTTP requests.
type Handler struct {
	searcher *search.Searcher
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a new Handler.
func New(searcher *search.Searcher, logger *slog.Logger) *Handler {
	return &Handler{
		searcher: searcher,
		logger:   logger,
		now:      time.Now,
	}
}

// SearchHandler handles GET /search requests. The search pipeline never
// fails, so the only error responses here are for malformed parameters.
func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	params, err := ParseSearchParams(r, h.now())
	if err != nil {
		h.logger.Debug("invalid request parameters", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := h.searcher.Search(r.Context(), *params)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		// Can't change status after WriteHeader, just log
		h.logger.Error("failed to encode response", "error", err)
	}
}

// HealthHandler handles /healthz requests.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		h.logger.Error("failed to write health response", "error", err)
	}
}

// ParseSearchParams parses and validates search parameters from the
// request. Dates default to a one-night stay starting today; the stay
// window is validated here because the pipeline itself does not enforce
// date ordering.
func ParseSearchParams(r *http.Request, now time.Time) (*search.Params, error) {
	query := r.URL.Query()

	checkIn := now
	if s := strings.TrimSpace(query.Get("checkIn")); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("checkIn must be in YYYY-MM-DD format")
		}
		checkIn = t
	}

	checkOut := checkIn.AddDate(0, 0, 1)
	if s := strings.TrimSpace(query.Get("checkOut")); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("checkOut must be in YYYY-MM-DD format")
		}
		checkOut = t
	}

	if checkOut.Before(checkIn) {
		return nil, fmt.Errorf("checkOut must not precede checkIn")
	}

	guests := 2
	if s := query.Get("guests"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("guests must be a positive integer")
		}
		guests = n
	}

	offset := 0
	if s := query.Get("offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("offset must be a non-negative integer")
		}
		offset = n
	}

	limit := search.DefaultLimit
	if s := query.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("limit must be a positive integer")
		}
		limit = n
	}

	return &search.Params{
		Location: strings.TrimSpace(query.Get("location")),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   guests,
		Offset:   offset,
		Limit:    limit,
	}, nil
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
