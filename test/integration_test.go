//go:build integration

package test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rawal21/stayfinder/internal/destination"
	"github.com/rawal21/stayfinder/internal/hotelbeds"
	"github.com/rawal21/stayfinder/internal/search"
	"github.com/rawal21/stayfinder/internal/storage/sqlite"
)

// fakeVendor simulates the inventory provider with switchable behavior.
type fakeVendor struct {
	directoryCalls    atomic.Int64
	availabilityCalls atomic.Int64
	failing           atomic.Bool
}

func (f *fakeVendor) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/hotel-content-api/1.0/locations/destinations", func(w http.ResponseWriter, r *http.Request) {
		f.directoryCalls.Add(1)
		_, _ = w.Write([]byte(`{"destinations":[
			{"code":"LIS","name":"Lisbon"},
			{"code":"OPO","name":"Porto"}
		]}`))
	})

	mux.HandleFunc("/hotel-api/1.0/hotels", func(w http.ResponseWriter, r *http.Request) {
		f.availabilityCalls.Add(1)

		if r.Header.Get("Api-Key") == "" || r.Header.Get("X-Signature") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"missing credentials"}`))
			return
		}

		if f.failing.Load() {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"Quota exceeded"}`))
			return
		}

		_, _ = w.Write([]byte(`{"hotels":{"total":2,"hotels":[
			{"code":11,"name":"Tagus View","minRate":"120.00","categoryCode":"4EST","destinationName":"Lisbon"},
			{"code":12,"name":"Alfama Boutique","minRate":95,"categoryCode":"3EST","destinationName":"Lisbon"}
		]}}`))
	})

	return mux
}

func TestIntegration_SearchPipeline(t *testing.T) {
	vendor := &fakeVendor{}
	ts := httptest.NewServer(vendor.handler())
	defer ts.Close()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("failed to create cache store: %v", err)
	}
	defer store.Close()

	client, err := hotelbeds.NewClient(hotelbeds.Config{
		BaseURL:     ts.URL,
		Credentials: hotelbeds.Credentials{APIKey: "key", Secret: "secret"},
		Timeout:     2 * time.Second,
	})
	if err != nil {
		t.Fatalf("failed to create vendor client: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := destination.NewResolver(client, store, logger)
	searcher := search.NewSearcher(client, resolver, logger)

	ctx := context.Background()
	params := search.Params{
		Location: "Lisbon",
		CheckIn:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Guests:   2,
		Offset:   0,
		Limit:    4,
	}

	// 1. Live path: destination resolved remotely, hotels normalized.
	result := searcher.Search(ctx, params)
	if result.Source != search.SourceLive {
		t.Fatalf("expected live result, got %s", result.Source)
	}
	if len(result.Hotels) != 2 {
		t.Fatalf("expected 2 hotels, got %d", len(result.Hotels))
	}
	if result.Hotels[0].ID != "11" || result.Hotels[0].Price != 120 {
		t.Errorf("unexpected first hotel %+v", result.Hotels[0])
	}
	if vendor.directoryCalls.Load() != 1 {
		t.Errorf("expected 1 directory call, got %d", vendor.directoryCalls.Load())
	}

	// 2. Second search for the same location: the destination cache
	// answers, so no second directory call goes out.
	_ = searcher.Search(ctx, params)
	if vendor.directoryCalls.Load() != 1 {
		t.Errorf("expected directory call count to stay at 1, got %d", vendor.directoryCalls.Load())
	}

	// 3. Vendor error envelope: seamless degrade to the synthetic page.
	vendor.failing.Store(true)
	result = searcher.Search(ctx, params)
	if result.Source != search.SourceFallback {
		t.Fatalf("expected fallback result, got %s", result.Source)
	}
	if len(result.Hotels) != 4 {
		t.Errorf("expected 4 synthetic hotels, got %d", len(result.Hotels))
	}
	if result.Hotels[0].ID != "m0" {
		t.Errorf("expected synthetic ids, got %s", result.Hotels[0].ID)
	}
}
