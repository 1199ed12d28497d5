package services

import (
	"context"
	"fmt"
	"sort"

	"wayfare/internal/models/trip_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

const maxPOISuggestions = 5

type SuggestionServiceInterface interface {
	Suggest(ctx context.Context, deviceID string) ([]trip_models.Suggestion, error)
}

type SuggestionService struct {
	sessions repositories.SessionStore
	catalog  repositories.CatalogRepository
	settings SettingsServiceInterface
}

func NewSuggestionService(
	sessions repositories.SessionStore,
	catalog repositories.CatalogRepository,
	settings SettingsServiceInterface,
) SuggestionServiceInterface {
	return &SuggestionService{
		sessions: sessions,
		catalog:  catalog,
		settings: settings,
	}
}

func (s *SuggestionService) Suggest(ctx context.Context, deviceID string) ([]trip_models.Suggestion, error) {
	sess := s.sessions.Snapshot(deviceID)
	if sess.RegionID == "" {
		return nil, utils.ErrNoRegionSelected
	}

	pois, err := s.catalog.ListPOIs(ctx, sess.RegionID)
	if err != nil {
		return nil, err
	}

	settings, _, err := s.settings.Get(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	return BuildSuggestions(pois, settings.Preferences), nil
}

// exertion maps a POI category to the effort it demands. Used against the
// mobility preference.
func exertion(category string) int {
	switch category {
	case "hiking":
		return 2
	case "nature":
		return 1
	default:
		return 0
	}
}

type scoredPOI struct {
	poi       trip_models.POI
	score     int
	rationale string
}

// BuildSuggestions is the whole engine: a pure ranking over the region's POI
// set and the preferences. Same inputs, same ordered output. It never touches
// the itinerary; applying a suggestion is the caller's add.
func BuildSuggestions(pois []trip_models.POI, prefs trip_models.Preferences) []trip_models.Suggestion {
	interests := make(map[string]bool, len(prefs.Interests))
	for _, tag := range prefs.Interests {
		interests[tag] = true
	}

	scored := make([]scoredPOI, 0, len(pois))
	for _, poi := range pois {
		score := 0
		why := ""

		if interests[poi.Category] {
			score += 3
			why = "matches your interest in " + poi.Category
		}

		switch effort := exertion(poi.Category); prefs.MobilityLevel {
		case trip_models.MobilityLow:
			score -= 2 * effort
		case trip_models.MobilityHigh:
			if effort == 2 {
				score++
			}
		}

		if prefs.TimePreference != trip_models.TimeFlexible {
			switch poi.BestVisitTime {
			case trip_models.VisitTime(prefs.TimePreference):
				score += 2
				if why != "" {
					why += " and "
				}
				why += fmt.Sprintf("best visited in the %s", poi.BestVisitTime)
			case trip_models.VisitAnytime:
				score++
			}
		}

		if score <= 0 {
			continue
		}
		if why == "" {
			why = "a good fit for your pace"
		}
		scored = append(scored, scoredPOI{poi: poi, score: score, rationale: why})
	}

	sort.Slice(scored, func(a, b int) bool {
		if scored[a].score != scored[b].score {
			return scored[a].score > scored[b].score
		}
		return scored[a].poi.ID < scored[b].poi.ID
	})
	if len(scored) > maxPOISuggestions {
		scored = scored[:maxPOISuggestions]
	}

	out := make([]trip_models.Suggestion, 0, len(scored)+2)
	for _, sp := range scored {
		out = append(out, trip_models.Suggestion{
			Title:     "Visit " + sp.poi.Name,
			Rationale: "This " + sp.poi.Category + " spot " + sp.rationale + ".",
			PoiID:     sp.poi.ID,
		})
	}

	// Interests with no coverage in this region become tag suggestions so
	// the list is never silently thin.
	covered := make(map[string]bool)
	for _, poi := range pois {
		covered[poi.Category] = true
	}
	missing := make([]string, 0, len(prefs.Interests))
	for _, tag := range prefs.Interests {
		if !covered[tag] {
			missing = append(missing, tag)
		}
	}
	sort.Strings(missing)
	if len(missing) > 2 {
		missing = missing[:2]
	}
	for _, tag := range missing {
		out = append(out, trip_models.Suggestion{
			Title:     "Broaden your search for " + tag,
			Rationale: "No " + tag + " spots here; try a different region for this interest.",
			Tag:       tag,
		})
	}

	return out
}
