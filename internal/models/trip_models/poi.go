package trip_models

// VisitTime is the best-visit-time hint attached to a POI.
type VisitTime string

const (
	VisitMorning   VisitTime = "morning"
	VisitAfternoon VisitTime = "afternoon"
	VisitEvening   VisitTime = "evening"
	VisitAnytime   VisitTime = "anytime"
)

// Rank orders visit-time hints for scheduling. Anytime entries sort last so
// they fill the tail of the day.
func (v VisitTime) Rank() int {
	switch v {
	case VisitMorning:
		return 0
	case VisitAfternoon:
		return 1
	case VisitEvening:
		return 2
	default:
		return 3
	}
}

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// POI is immutable reference data for one visitable site. Instances come out
// of the compiled-in region catalog and are never mutated during a session.
type POI struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	DurationMins  int        `json:"duration_mins"`
	Cost          float64    `json:"cost"`
	Location      Coordinate `json:"location"`
	BestVisitTime VisitTime  `json:"best_visit_time"`
}
