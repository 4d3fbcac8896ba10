package search

import "fmt"

type nameTemplate struct {
	prefix string
	suffix string
}

var nameTemplates = [...]nameTemplate{
	{"Palazzo ", "Resort"},
	{"The ", "Obsidian"},
	{"Azure ", "Heights"},
	{"Sanctuary ", "Grand"},
	{"Elysian ", "Suites"},
	{"Vista ", "Point"},
}

var fallbackAmenities = [...]string{"WiFi", "Pool", "Gym"}

// FallbackHotels generates exactly limit synthetic hotel records for the
// given pagination window. Output is fully deterministic: identical
// inputs produce identical pages. Record IDs derive from the absolute
// index, so pages of one synthetic session never collide, price grows
// monotonically with the index and the rating cycles through [4.0, 4.9].
func FallbackHotels(location string, offset, limit int) []Hotel {
	displayLoc := location
	if displayLoc == "" {
		displayLoc = "Global"
	}
	recordLoc := location
	if recordLoc == "" {
		recordLoc = "World"
	}

	hotels := make([]Hotel, 0, limit)
	for i := 0; i < limit; i++ {
		idx := offset + i
		tmpl := nameTemplates[idx%len(nameTemplates)]

		hotels = append(hotels, Hotel{
			ID:          fmt.Sprintf("m%d", idx),
			Name:        tmpl.prefix + displayLoc + " " + tmpl.suffix,
			Price:       float64(200 + idx*15),
			Rating:      4.0 + float64(idx%10)/10,
			Location:    recordLoc,
			Image:       images[idx%len(images)],
			Description: "Hand-picked luxury accommodation.",
			Amenities:   append([]string(nil), fallbackAmenities[:]...),
		})
	}
	return hotels
}
