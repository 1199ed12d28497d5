package trip_models

// Weather is the mock snapshot served for a region. It is session state,
// never persisted.
type Weather struct {
	Condition    string  `json:"condition"`
	TemperatureC float64 `json:"temperature_c"`
}

// Region groups a compiled-in POI set with the region's own metadata and its
// canned weather snapshot.
type Region struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Center  Coordinate `json:"center"`
	Weather Weather    `json:"-"`
	POIs    []POI      `json:"-"`
}
