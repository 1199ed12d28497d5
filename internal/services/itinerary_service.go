package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"wayfare/internal/models/response_models"
	"wayfare/internal/models/trip_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/announce"
	"wayfare/pkg/utils"
)

// routeStartID marks the synthetic origin point in the distance matrix.
const routeStartID = "__start"

type ItineraryServiceInterface interface {
	Add(ctx context.Context, deviceID string, poiID string) (*response_models.ItinerarySummary, error)
	Remove(ctx context.Context, deviceID string, poiID string) (*response_models.ItinerarySummary, error)
	Optimize(ctx context.Context, deviceID string) (*response_models.ItinerarySummary, error)
	Clear(ctx context.Context, deviceID string) error
	Summary(ctx context.Context, deviceID string) (*response_models.ItinerarySummary, error)
}

type ItineraryService struct {
	sessions  repositories.SessionStore
	catalog   repositories.CatalogRepository
	settings  SettingsServiceInterface
	matrix    DistanceMatrixService
	announcer announce.Announcer
	logger    *zap.Logger
}

func NewItineraryService(
	sessions repositories.SessionStore,
	catalog repositories.CatalogRepository,
	settings SettingsServiceInterface,
	matrix DistanceMatrixService,
	announcer announce.Announcer,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		sessions:  sessions,
		catalog:   catalog,
		settings:  settings,
		matrix:    matrix,
		announcer: announcer,
		logger:    logger,
	}
}

func (i *ItineraryService) Add(ctx context.Context, deviceID string, poiID string) (*response_models.ItinerarySummary, error) {
	sess := i.sessions.Snapshot(deviceID)
	if sess.RegionID == "" {
		return nil, utils.ErrNoRegionSelected
	}

	poi, err := i.catalog.GetPOI(ctx, sess.RegionID, poiID)
	if err != nil {
		return nil, err
	}

	err = i.sessions.Update(deviceID, func(s *repositories.Session) error {
		for _, e := range s.Entries {
			if e.PoiID == poiID {
				return utils.ErrDuplicatePOI
			}
		}
		s.Entries = append(s.Entries, trip_models.ItineraryEntry{
			PoiID:    poiID,
			Position: len(s.Entries),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	i.announcer.Announce(ctx, deviceID, "Added "+poi.Name+" to your itinerary")
	return i.Summary(ctx, deviceID)
}

// Remove is a no-op when the id is not in the itinerary.
func (i *ItineraryService) Remove(ctx context.Context, deviceID string, poiID string) (*response_models.ItinerarySummary, error) {
	err := i.sessions.Update(deviceID, func(s *repositories.Session) error {
		kept := s.Entries[:0]
		for _, e := range s.Entries {
			if e.PoiID != poiID {
				kept = append(kept, e)
			}
		}
		for idx := range kept {
			kept[idx].Position = idx
		}
		s.Entries = kept
		return nil
	})
	if err != nil {
		return nil, err
	}
	return i.Summary(ctx, deviceID)
}

// Optimize reorders the itinerary: entries are bucketed by best-visit-time,
// then chained greedy nearest-neighbor inside each bucket, starting from the
// device's starting point. The order is recomputed from the entry set alone,
// so running it again without other mutations changes nothing. On any
// failure the stored order is left untouched.
func (i *ItineraryService) Optimize(ctx context.Context, deviceID string) (*response_models.ItinerarySummary, error) {
	sess := i.sessions.Snapshot(deviceID)
	if sess.RegionID == "" {
		return nil, utils.ErrNoRegionSelected
	}
	if len(sess.Entries) == 0 {
		return i.Summary(ctx, deviceID)
	}

	region, err := i.catalog.GetRegion(ctx, sess.RegionID)
	if err != nil {
		return nil, err
	}

	pois := make([]trip_models.POI, 0, len(sess.Entries))
	for _, e := range sess.Entries {
		poi, err := i.catalog.GetPOI(ctx, sess.RegionID, e.PoiID)
		if err != nil {
			i.logger.Warn("optimize aborted, entry resolves to no poi",
				zap.String("device_id", deviceID),
				zap.String("poi_id", e.PoiID))
			return nil, utils.ErrCorruptItinerary
		}
		pois = append(pois, *poi)
	}

	start := i.resolveStart(ctx, deviceID, region)
	ordered, err := i.planOrder(ctx, pois, start)
	if err != nil {
		return nil, err
	}

	err = i.sessions.Update(deviceID, func(s *repositories.Session) error {
		if !sameEntrySet(s.Entries, ordered) {
			// The itinerary changed underneath the optimize; keep it as is.
			return nil
		}
		entries := make([]trip_models.ItineraryEntry, len(ordered))
		for idx, id := range ordered {
			entries[idx] = trip_models.ItineraryEntry{PoiID: id, Position: idx}
		}
		s.Entries = entries
		return nil
	})
	if err != nil {
		return nil, err
	}

	i.announcer.Announce(ctx, deviceID, "Your itinerary has been optimized")
	return i.Summary(ctx, deviceID)
}

func (i *ItineraryService) Clear(ctx context.Context, deviceID string) error {
	return i.sessions.Update(deviceID, func(s *repositories.Session) error {
		s.Entries = []trip_models.ItineraryEntry{}
		return nil
	})
}

func (i *ItineraryService) Summary(ctx context.Context, deviceID string) (*response_models.ItinerarySummary, error) {
	sess := i.sessions.Snapshot(deviceID)

	out := &response_models.ItinerarySummary{
		Entries: []response_models.ItineraryEntry{},
	}
	if len(sess.Entries) == 0 {
		return out, nil
	}

	for _, e := range sess.Entries {
		poi, err := i.catalog.GetPOI(ctx, sess.RegionID, e.PoiID)
		if err != nil {
			return nil, utils.ErrCorruptItinerary
		}
		out.Entries = append(out.Entries, response_models.ItineraryEntry{
			Position: e.Position,
			POI:      response_models.BuildPOIResponse(*poi),
		})
		out.TotalMins += poi.DurationMins
		out.TotalCost += poi.Cost
	}
	return out, nil
}

// sameEntrySet reports whether the stored entries still hold exactly the POI
// ids an order was computed from. Any drift means the order is stale.
func sameEntrySet(entries []trip_models.ItineraryEntry, ids []string) bool {
	if len(entries) != len(ids) {
		return false
	}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		seen[e.PoiID] = true
	}
	for _, id := range ids {
		if !seen[id] {
			return false
		}
	}
	return true
}

// resolveStart picks the route origin: the starting-point setting when it
// names a POI of the region, otherwise the region center.
func (i *ItineraryService) resolveStart(ctx context.Context, deviceID string, region *trip_models.Region) trip_models.Coordinate {
	settings, _, err := i.settings.Get(ctx, deviceID)
	if err != nil || settings.StartingPoint == "" {
		return region.Center
	}
	for _, poi := range region.POIs {
		if poi.ID == settings.StartingPoint || poi.Name == settings.StartingPoint {
			return poi.Location
		}
	}
	return region.Center
}

// planOrder returns POI ids in visit order. Pure with respect to its inputs.
func (i *ItineraryService) planOrder(ctx context.Context, pois []trip_models.POI, start trip_models.Coordinate) ([]string, error) {
	points := make([]MatrixPoint, 0, len(pois)+1)
	points = append(points, MatrixPoint{ID: routeStartID, Lat: start.Latitude, Lng: start.Longitude})
	byID := make(map[string]trip_models.POI, len(pois))
	for _, p := range pois {
		points = append(points, MatrixPoint{ID: p.ID, Lat: p.Location.Latitude, Lng: p.Location.Longitude})
		byID[p.ID] = p
	}

	mat, err := i.matrix.ComputeDistances(ctx, points)
	if err != nil {
		return nil, err
	}

	buckets := make(map[int][]string)
	for _, p := range pois {
		rank := p.BestVisitTime.Rank()
		buckets[rank] = append(buckets[rank], p.ID)
	}

	ordered := make([]string, 0, len(pois))
	cursor := routeStartID
	for rank := 0; rank <= 3; rank++ {
		bucket := buckets[rank]
		sort.Strings(bucket)
		for len(bucket) > 0 {
			bestIdx := 0
			bestDist := mat[cursor][bucket[0]].DistanceMeters
			for idx := 1; idx < len(bucket); idx++ {
				d := mat[cursor][bucket[idx]].DistanceMeters
				if d < bestDist {
					bestIdx, bestDist = idx, d
				}
			}
			cursor = bucket[bestIdx]
			ordered = append(ordered, cursor)
			bucket = append(bucket[:bestIdx], bucket[bestIdx+1:]...)
		}
	}
	return ordered, nil
}
