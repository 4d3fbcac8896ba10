package search

import (
	"fmt"
	"strings"

	"github.com/rawal21/stayfinder/internal/hotelbeds"
)

// Outcome tags the normalizer's verdict on one vendor payload.
type Outcome int

const (
	// OutcomeHotels carries a non-empty page of canonical hotels.
	OutcomeHotels Outcome = iota
	// OutcomeEmpty is a legitimate "no matches" answer, not a failure.
	OutcomeEmpty
	// OutcomeVendorError means the source is unusable and the caller
	// should serve fallback inventory instead.
	OutcomeVendorError
)

const (
	defaultPrice  = 200
	defaultRating = 4.5
)

// Normalize maps one vendor availability payload onto canonical hotels.
// The mapping is total: no record can fail it, every absent or malformed
// field has a defined default.
func Normalize(resp *hotelbeds.AvailabilityResponse, queryLocation string) (Outcome, []Hotel) {
	if resp == nil || resp.VendorError() {
		return OutcomeVendorError, nil
	}
	if resp.Hotels == nil || len(resp.Hotels.Hotels) == 0 || resp.Hotels.Total == 0 {
		return OutcomeEmpty, nil
	}

	hotels := make([]Hotel, 0, len(resp.Hotels.Hotels))
	for i, vh := range resp.Hotels.Hotels {
		hotels = append(hotels, normalizeHotel(vh, i, queryLocation))
	}
	return OutcomeHotels, hotels
}

func normalizeHotel(vh hotelbeds.Hotel, index int, queryLocation string) Hotel {
	id := strings.TrimSpace(string(vh.Code))
	if id == "" {
		// Vendor records without a code still need a page-unique id.
		id = fmt.Sprintf("h%d", index)
	}

	price := float64(defaultPrice)
	if v, ok := vh.MinRate.Value(); ok && v >= 0 {
		price = v
	}

	rating := defaultRating
	if v, ok := vh.Rating.Value(); ok {
		rating = clampRating(v)
	}

	location := vh.DestinationName
	if location == "" {
		location = queryLocation
	}

	return Hotel{
		ID:          id,
		Name:        vh.Name,
		Price:       price,
		Rating:      rating,
		Location:    location,
		Image:       images[index%len(images)],
		Description: fmt.Sprintf("Luxury stay at %s in %s", vh.Name, location),
		Amenities:   amenities(vh),
	}
}

func clampRating(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}

// amenities prefers the vendor's facility list; when the vendor omits
// it, a default set is picked by category tier so higher-category
// inventory presents a richer baseline.
func amenities(vh hotelbeds.Hotel) []string {
	var out []string
	for _, f := range vh.Facilities {
		if d := strings.TrimSpace(f.Description); d != "" {
			out = append(out, d)
		}
	}
	if len(out) > 0 {
		return out
	}

	switch tier := categoryTier(vh.CategoryCode); {
	case tier >= 5:
		return []string{"WiFi", "AC", "Pool", "Gym", "Spa", "Restaurant"}
	case tier == 4:
		return []string{"WiFi", "AC", "Pool", "Gym"}
	case tier == 3:
		return []string{"WiFi", "AC", "Pool"}
	default:
		return []string{"WiFi", "AC"}
	}
}

// categoryTier extracts the leading digit from vendor category codes
// such as "4EST". Unparseable codes rank as tier 0.
func categoryTier(code string) int {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0
	}
	c := code[0]
	if c < '0' || c > '9' {
		return 0
	}
	return int(c - '0')
}
