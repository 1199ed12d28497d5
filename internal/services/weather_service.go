package services

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

// WeatherServiceInterface simulates the weather fetch that the client fires
// when a region is selected. There is no real provider: after the configured
// delay the region's canned snapshot is applied to the session, unless the
// device moved on to another region in the meantime.
type WeatherServiceInterface interface {
	FetchAsync(deviceID string, regionID string)
}

type WeatherService struct {
	sessions repositories.SessionStore
	catalog  repositories.CatalogRepository
	delayer  utils.Delayer
	delay    time.Duration
	logger   *zap.Logger

	// flakeEvery > 0 makes every Nth fetch fail, so the transient error
	// path can be exercised without randomness.
	flakeEvery int64
	fetches    atomic.Int64
}

func NewWeatherService(
	sessions repositories.SessionStore,
	catalog repositories.CatalogRepository,
	delayer utils.Delayer,
	delay time.Duration,
	flakeEvery int64,
	logger *zap.Logger,
) WeatherServiceInterface {
	return &WeatherService{
		sessions:   sessions,
		catalog:    catalog,
		delayer:    delayer,
		delay:      delay,
		flakeEvery: flakeEvery,
		logger:     logger,
	}
}

func (w *WeatherService) FetchAsync(deviceID string, regionID string) {
	n := w.fetches.Add(1)

	go func() {
		ctx := context.Background()
		if !w.delayer.Sleep(ctx, w.delay) {
			return
		}

		if w.flakeEvery > 0 && n%w.flakeEvery == 0 {
			w.logger.Warn("weather fetch failed",
				zap.String("device_id", deviceID),
				zap.String("region_id", regionID),
				zap.Error(utils.ErrFetchFailed))
			w.sessions.SetTransientError(deviceID, "Could not load weather. Select the region again to retry.")
			return
		}

		region, err := w.catalog.GetRegion(ctx, regionID)
		if err != nil {
			w.sessions.SetTransientError(deviceID, "Could not load weather. Select the region again to retry.")
			return
		}

		weather := region.Weather
		_ = w.sessions.Update(deviceID, func(s *repositories.Session) error {
			// A stale result for a region the device already left is
			// silently discarded.
			if s.RegionID != regionID {
				return nil
			}
			s.Weather = &weather
			return nil
		})
	}()
}
