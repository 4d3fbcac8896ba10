package search

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rawal21/stayfinder/internal/destination"
	"github.com/rawal21/stayfinder/internal/hotelbeds"
	"github.com/rawal21/stayfinder/internal/metrics"
)

// Vendor is the slice of the vendor client the orchestrator needs.
type Vendor interface {
	Configured() bool
	Availability(ctx context.Context, req hotelbeds.AvailabilityRequest) (*hotelbeds.AvailabilityResponse, error)
}

// Searcher is the single entry point for hotel search. Each invocation
// terminates in one of two states, live or fallback, with no retry of
// the live path.
type Searcher struct {
	vendor   Vendor
	resolver *destination.Resolver
	logger   *slog.Logger
}

// NewSearcher creates a Searcher.
func NewSearcher(vendor Vendor, resolver *destination.Resolver, logger *slog.Logger) *Searcher {
	return &Searcher{
		vendor:   vendor,
		resolver: resolver,
		logger:   logger,
	}
}

// Search resolves one page of bookable inventory. It always returns a
// usable page and never an error: missing credentials, transport
// failures, unparseable payloads and vendor error envelopes all degrade
// into the deterministic fallback generator with the same pagination
// window, so the caller sees a seamless page boundary regardless of
// path. A valid vendor response with zero matches is returned as an
// empty page, not as fallback.
func (s *Searcher) Search(ctx context.Context, params Params) Result {
	if params.Limit < 1 {
		params.Limit = DefaultLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	logger := s.logger.With("search_id", uuid.New().String(), "location", params.Location)

	if s.vendor == nil || !s.vendor.Configured() {
		logger.Debug("no vendor credentials, serving fallback")
		return s.fallback(params)
	}

	code, tier := s.resolver.Resolve(ctx, params.Location)
	logger.Debug("destination resolved", "code", code, "tier", string(tier))

	req := hotelbeds.NewAvailabilityRequest(code,
		params.CheckIn, params.CheckOut, params.Guests, params.Offset, params.Limit)

	resp, err := s.vendor.Availability(ctx, req)
	if err != nil {
		logger.Warn("availability request failed", "error", err)
		return s.fallback(params)
	}

	outcome, hotels := Normalize(resp, params.Location)
	switch outcome {
	case OutcomeVendorError:
		metrics.VendorErrors.WithLabelValues("availability", "envelope").Inc()
		logger.Warn("vendor reported an error envelope")
		return s.fallback(params)
	case OutcomeEmpty:
		metrics.SearchesTotal.WithLabelValues("empty").Inc()
		return Result{Hotels: []Hotel{}, Source: SourceLive}
	default:
		metrics.SearchesTotal.WithLabelValues("live").Inc()
		return Result{Hotels: hotels, Source: SourceLive}
	}
}

func (s *Searcher) fallback(params Params) Result {
	metrics.SearchesTotal.WithLabelValues("fallback").Inc()
	return Result{
		Hotels: FallbackHotels(params.Location, params.Offset, params.Limit),
		Source: SourceFallback,
	}
}
