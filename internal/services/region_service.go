package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"wayfare/internal/models/response_models"
	"wayfare/internal/models/trip_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/announce"
)

type RegionServiceInterface interface {
	ListRegions(ctx context.Context) []response_models.Region
	GetRegion(ctx context.Context, regionID string) (*response_models.RegionDetail, error)
	ListPOIs(ctx context.Context, regionID string) ([]response_models.POI, error)

	// Select switches the device to a region. By definition this
	// invalidates the working itinerary and kicks a fresh weather fetch.
	Select(ctx context.Context, deviceID string, regionID string) (*response_models.RegionDetail, string, error)

	// Session is the ephemeral view: current region, weather once it has
	// arrived, the transient error slot and downloaded packs.
	Session(ctx context.Context, deviceID string) *response_models.Session
}

type RegionService struct {
	catalog   repositories.CatalogRepository
	sessions  repositories.SessionStore
	settings  SettingsServiceInterface
	weather   WeatherServiceInterface
	announcer announce.Announcer
	logger    *zap.Logger
}

func NewRegionService(
	catalog repositories.CatalogRepository,
	sessions repositories.SessionStore,
	settings SettingsServiceInterface,
	weather WeatherServiceInterface,
	announcer announce.Announcer,
	logger *zap.Logger,
) RegionServiceInterface {
	return &RegionService{
		catalog:   catalog,
		sessions:  sessions,
		settings:  settings,
		weather:   weather,
		announcer: announcer,
		logger:    logger,
	}
}

func (r *RegionService) ListRegions(ctx context.Context) []response_models.Region {
	regions := r.catalog.ListRegions(ctx)
	out := make([]response_models.Region, 0, len(regions))
	for _, region := range regions {
		out = append(out, response_models.BuildRegion(region))
	}
	return out
}

func (r *RegionService) GetRegion(ctx context.Context, regionID string) (*response_models.RegionDetail, error) {
	region, err := r.catalog.GetRegion(ctx, regionID)
	if err != nil {
		return nil, err
	}
	detail := response_models.BuildRegionDetail(*region)
	return &detail, nil
}

func (r *RegionService) ListPOIs(ctx context.Context, regionID string) ([]response_models.POI, error) {
	pois, err := r.catalog.ListPOIs(ctx, regionID)
	if err != nil {
		return nil, err
	}
	out := make([]response_models.POI, 0, len(pois))
	for _, poi := range pois {
		out = append(out, response_models.BuildPOIResponse(poi))
	}
	return out, nil
}

func (r *RegionService) Select(ctx context.Context, deviceID string, regionID string) (*response_models.RegionDetail, string, error) {
	region, err := r.catalog.GetRegion(ctx, regionID)
	if err != nil {
		return nil, "", err
	}

	err = r.sessions.Update(deviceID, func(s *repositories.Session) error {
		s.RegionID = regionID
		s.Entries = []trip_models.ItineraryEntry{}
		s.Weather = nil
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	warning := r.settings.SetSelectedRegion(ctx, deviceID, regionID)
	r.weather.FetchAsync(deviceID, regionID)
	r.announcer.Announce(ctx, deviceID, "Now planning a trip to "+region.Name)

	detail := response_models.BuildRegionDetail(*region)
	return &detail, warning, nil
}

func (r *RegionService) Session(ctx context.Context, deviceID string) *response_models.Session {
	sess := r.sessions.Snapshot(deviceID)

	out := &response_models.Session{
		RegionID:          sess.RegionID,
		Weather:           sess.Weather,
		ErrorMessage:      sess.ErrorMessage,
		DownloadedRegions: []string{},
	}
	for regionID, done := range sess.DownloadedRegions {
		if done {
			out.DownloadedRegions = append(out.DownloadedRegions, regionID)
		}
	}
	sort.Strings(out.DownloadedRegions)
	return out
}
