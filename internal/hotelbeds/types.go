package hotelbeds

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Destination is one entry of the vendor's destination directory.
type Destination struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type destinationsResponse struct {
	Destinations []Destination `json:"destinations"`
}

// AvailabilityRequest is the vendor-shaped availability query payload.
type AvailabilityRequest struct {
	Stay        Stay              `json:"stay"`
	Occupancies []Occupancy       `json:"occupancies"`
	Destination DestinationFilter `json:"destination"`
	Filter      CategoryFilter    `json:"filter"`
	From        int               `json:"from"`
	To          int               `json:"to"`
}

// Stay holds calendar dates without a time component.
type Stay struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// Occupancy describes the room composition of a stay request.
type Occupancy struct {
	Rooms    int `json:"rooms"`
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// DestinationFilter narrows the search to one destination code.
type DestinationFilter struct {
	Code string `json:"code"`
}

// CategoryFilter excludes low-category inventory.
type CategoryFilter struct {
	MinCategory int `json:"minCategory"`
}

// AvailabilityResponse is the vendor's availability envelope. Err is set
// when the vendor rejected the request inside an otherwise well-formed
// response body, e.g. on quota exhaustion.
type AvailabilityResponse struct {
	Err    json.RawMessage `json:"error,omitempty"`
	Hotels *HotelList      `json:"hotels,omitempty"`
}

// VendorError reports whether the response carries a vendor-level error
// indicator. A response with an error indicator is "source unusable",
// not "zero results".
func (r *AvailabilityResponse) VendorError() bool {
	return len(r.Err) > 0 && !bytes.Equal(r.Err, []byte("null"))
}

// HotelList is the hotel collection with the vendor's total match count.
type HotelList struct {
	Total  int     `json:"total"`
	Hotels []Hotel `json:"hotels"`
}

// Hotel is the raw, loosely typed vendor record. The schema is owned by
// the vendor and individual fields may be absent or change type, so the
// numeric fields decode through tolerant wrappers and every consumer
// must supply defaults.
type Hotel struct {
	Code            FlexString `json:"code"`
	Name            string     `json:"name"`
	CategoryCode    string     `json:"categoryCode"`
	DestinationName string     `json:"destinationName"`
	Rating          FlexNumber `json:"rating"`
	MinRate         FlexNumber `json:"minRate"`
	Facilities      []Facility `json:"facilities"`
}

// Facility is a vendor amenity entry with its display name.
type Facility struct {
	Description string `json:"description"`
}

// FlexNumber decodes a value the vendor sends either as a JSON number or
// as a numeric string. Absent, null, and malformed values decode to
// "not set" rather than failing the whole payload.
type FlexNumber struct {
	val float64
	set bool
}

// Value returns the decoded number and whether one was present.
func (n FlexNumber) Value() (float64, bool) {
	return n.val, n.set
}

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	n.val, n.set = 0, false

	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Tolerate garbage; the normalizer applies its defaults.
		return nil
	}
	n.val, n.set = f, true
	return nil
}

// FlexString decodes a scalar the vendor sends either as a string or as
// a number into its text form.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.Trim(data, `"`)
	if string(trimmed) == "null" {
		*s = ""
		return nil
	}
	*s = FlexString(trimmed)
	return nil
}
