package hotelbeds

import "time"

const (
	dateLayout = "2006-01-02"

	// Vendor inventory below this category is mostly unbookable noise.
	minCategory = 2

	defaultAdults = 2
)

// NewAvailabilityRequest builds the vendor query payload for one result
// page. It is a pure transformation: a single room holds all guests, and
// the generic offset/limit window is translated to the vendor's 1-based
// inclusive range.
func NewAvailabilityRequest(code string, checkIn, checkOut time.Time, guests, offset, limit int) AvailabilityRequest {
	adults := guests
	if adults < 1 {
		adults = defaultAdults
	}

	return AvailabilityRequest{
		Stay: Stay{
			CheckIn:  checkIn.Format(dateLayout),
			CheckOut: checkOut.Format(dateLayout),
		},
		Occupancies: []Occupancy{
			{Rooms: 1, Adults: adults, Children: 0},
		},
		Destination: DestinationFilter{Code: code},
		Filter:      CategoryFilter{MinCategory: minCategory},
		From:        offset + 1,
		To:          offset + limit,
	}
}
