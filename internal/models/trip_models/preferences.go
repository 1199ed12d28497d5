package trip_models

type MobilityLevel string

const (
	MobilityLow      MobilityLevel = "low"
	MobilityModerate MobilityLevel = "moderate"
	MobilityHigh     MobilityLevel = "high"
)

func (m MobilityLevel) Valid() bool {
	switch m {
	case MobilityLow, MobilityModerate, MobilityHigh:
		return true
	}
	return false
}

type TimePreference string

const (
	TimeMorning   TimePreference = "morning"
	TimeAfternoon TimePreference = "afternoon"
	TimeEvening   TimePreference = "evening"
	TimeFlexible  TimePreference = "flexible"
)

func (t TimePreference) Valid() bool {
	switch t {
	case TimeMorning, TimeAfternoon, TimeEvening, TimeFlexible:
		return true
	}
	return false
}

// Preferences drive the suggestion engine. Mutated only through merge-update.
type Preferences struct {
	Interests      []string       `json:"interests"`
	MobilityLevel  MobilityLevel  `json:"mobility_level"`
	TimePreference TimePreference `json:"time_preference"`
}

// DefaultPreferences is what a read returns before any write.
func DefaultPreferences() Preferences {
	return Preferences{
		Interests:      []string{},
		MobilityLevel:  MobilityModerate,
		TimePreference: TimeFlexible,
	}
}

type ViewType string

const (
	ViewPlanning  ViewType = "planning"
	ViewItinerary ViewType = "itinerary"
	ViewSettings  ViewType = "settings"
)

func (v ViewType) Valid() bool {
	switch v {
	case ViewPlanning, ViewItinerary, ViewSettings:
		return true
	}
	return false
}
