package search

import "time"

// DefaultLimit is the page size used when the caller does not ask for one.
const DefaultLimit = 20

// Params are the generic search parameters supplied by the caller. The
// caller is responsible for ensuring CheckOut does not precede CheckIn.
type Params struct {
	Location string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Offset   int
	Limit    int
}

// Hotel is the canonical, vendor-agnostic hotel record all callers
// consume. Vendor shape variance terminates here: every field is always
// populated, price is non-negative, rating is within [0,5] and the
// amenity list is never empty.
type Hotel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Location    string   `json:"location"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
}

// Source tags where a result page came from. The hotel list shape is
// identical on both paths; the tag exists for telemetry and callers that
// want to surface provenance.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Result is one ordered page of hotels, at most the requested limit long.
type Result struct {
	Hotels []Hotel `json:"hotels"`
	Source Source  `json:"source"`
}

// images is the fixed placeholder rotation shared by the live normalizer
// and the fallback generator. Assignment is by record position, so a
// page always renders with stable imagery.
var images = [...]string{
	"https://images.unsplash.com/photo-1566073771259-6a8506099945",
	"https://images.unsplash.com/photo-1551882547-ff43c63efe81",
	"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4",
	"https://images.unsplash.com/photo-1571896349842-33c89424de2d",
}
