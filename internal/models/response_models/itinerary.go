package response_models

type ItineraryEntry struct {
	Position int `json:"position"`
	POI      POI `json:"poi"`
}

type ItinerarySummary struct {
	Entries   []ItineraryEntry `json:"entries"`
	TotalMins int              `json:"total_mins"`
	TotalCost float64          `json:"total_cost"`
}
