package destination

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rawal21/stayfinder/internal/hotelbeds"
	"github.com/rawal21/stayfinder/internal/metrics"
	"github.com/rawal21/stayfinder/internal/storage"
)

// DefaultCode is returned for empty queries; an empty search box must
// still produce a useful page.
const DefaultCode = "PAR"

const cacheKeyPrefix = "hb_dest_"

// cityCodes covers the major destinations so common queries never hit
// the network.
var cityCodes = map[string]string{
	"london":    "LON",
	"paris":     "PAR",
	"new york":  "NYC",
	"dubai":     "DXB",
	"tokyo":     "TYO",
	"singapore": "SIN",
	"barcelona": "BCN",
	"madrid":    "MAD",
	"rome":      "ROM",
	"berlin":    "BER",
	"amsterdam": "AMS",
	"bangkok":   "BKK",
	"mumbai":    "BOM",
	"delhi":     "DEL",
	"sydney":    "SYD",
}

// Tier identifies which strategy answered a resolution.
type Tier string

const (
	TierDefault    Tier = "default"
	TierDictionary Tier = "dictionary"
	TierCache      Tier = "cache"
	TierRemote     Tier = "remote"
	TierHeuristic  Tier = "heuristic"
)

// Directory lists the vendor's destination entries.
type Directory interface {
	Destinations(ctx context.Context) ([]hotelbeds.Destination, error)
}

// Resolver maps free-text locations to vendor destination codes using a
// tiered strategy: static dictionary, persistent cache, remote directory
// lookup, heuristic derivation.
type Resolver struct {
	dir    Directory
	cache  storage.Store
	logger *slog.Logger
}

// NewResolver creates a Resolver. cache may be nil, in which case remote
// resolutions are simply not remembered.
func NewResolver(dir Directory, cache storage.Store, logger *slog.Logger) *Resolver {
	return &Resolver{
		dir:    dir,
		cache:  cache,
		logger: logger,
	}
}

// Resolve returns a destination code for the given location. It never
// fails: every error funnels into the heuristic tier, whose code is an
// approximation callers must tolerate yielding zero live results.
func (r *Resolver) Resolve(ctx context.Context, location string) (string, Tier) {
	normalized := strings.ToLower(strings.TrimSpace(location))
	code, tier := r.resolve(ctx, normalized)
	metrics.DestinationResolutions.WithLabelValues(string(tier)).Inc()
	return code, tier
}

func (r *Resolver) resolve(ctx context.Context, normalized string) (string, Tier) {
	if normalized == "" {
		return DefaultCode, TierDefault
	}

	if code, ok := cityCodes[normalized]; ok {
		return code, TierDictionary
	}

	key := cacheKeyPrefix + normalized
	if r.cache != nil {
		code, ok, err := r.cache.Get(ctx, key)
		if err != nil {
			r.logger.Warn("destination cache read failed", "location", normalized, "error", err)
		} else if ok {
			return code, TierCache
		}
	}

	code, err := r.remoteLookup(ctx, normalized)
	if err != nil {
		r.logger.Warn("destination lookup failed", "location", normalized, "error", err)
	} else if code != "" {
		// Cache only confirmed remote matches. First write wins; losing
		// a write race just means another resolver stored the same code.
		if r.cache != nil {
			if err := r.cache.Set(ctx, key, code); err != nil {
				r.logger.Warn("destination cache write failed", "location", normalized, "error", err)
			}
		}
		return code, TierRemote
	}

	return heuristicCode(normalized), TierHeuristic
}

func (r *Resolver) remoteLookup(ctx context.Context, normalized string) (string, error) {
	dests, err := r.dir.Destinations(ctx)
	if err != nil {
		return "", err
	}

	for _, d := range dests {
		name := strings.ToLower(d.Name)
		if name == "" || d.Code == "" {
			continue
		}
		// Substring match in either direction: "south london" should
		// find "London" and "london" should find "London Area".
		if strings.Contains(name, normalized) || strings.Contains(normalized, name) {
			return d.Code, nil
		}
	}
	return "", nil
}

// heuristicCode derives a 3-letter pseudo code from the first characters
// of the normalized query.
func heuristicCode(normalized string) string {
	runes := []rune(normalized)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}
