package trip_models

// ItineraryEntry ties a POI into the ordered itinerary. Position is the
// zero-based slot in the current order.
type ItineraryEntry struct {
	PoiID    string `json:"poi_id"`
	Position int    `json:"position"`
}

// Suggestion is one ranked recommendation from the suggestion engine. Either
// PoiID or Tag is set, never both.
type Suggestion struct {
	Title     string `json:"title"`
	Rationale string `json:"rationale"`
	PoiID     string `json:"poi_id,omitempty"`
	Tag       string `json:"tag,omitempty"`
}
