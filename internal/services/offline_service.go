package services

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"wayfare/internal/repositories"
	"wayfare/pkg/announce"
	"wayfare/pkg/utils"
)

// OfflineServiceInterface simulates downloading a region content pack. The
// download runs after a fixed delay with no retry and no cancellation; a
// result that resolves is applied, anything else lands in the error slot.
type OfflineServiceInterface interface {
	StartDownload(ctx context.Context, deviceID string, regionID string) error
}

type OfflineService struct {
	sessions  repositories.SessionStore
	catalog   repositories.CatalogRepository
	settings  SettingsServiceInterface
	announcer announce.Announcer
	delayer   utils.Delayer
	delay     time.Duration
	logger    *zap.Logger

	flakeEvery int64
	downloads  atomic.Int64
}

func NewOfflineService(
	sessions repositories.SessionStore,
	catalog repositories.CatalogRepository,
	settings SettingsServiceInterface,
	announcer announce.Announcer,
	delayer utils.Delayer,
	delay time.Duration,
	flakeEvery int64,
	logger *zap.Logger,
) OfflineServiceInterface {
	return &OfflineService{
		sessions:   sessions,
		catalog:    catalog,
		settings:   settings,
		announcer:  announcer,
		delayer:    delayer,
		delay:      delay,
		flakeEvery: flakeEvery,
		logger:     logger,
	}
}

func (o *OfflineService) StartDownload(ctx context.Context, deviceID string, regionID string) error {
	settings, _, err := o.settings.Get(ctx, deviceID)
	if err != nil {
		return err
	}
	if !settings.OfflineMode {
		return utils.ErrOfflineDisabled
	}

	region, err := o.catalog.GetRegion(ctx, regionID)
	if err != nil {
		return err
	}

	n := o.downloads.Add(1)
	go func() {
		bg := context.Background()
		if !o.delayer.Sleep(bg, o.delay) {
			return
		}

		if o.flakeEvery > 0 && n%o.flakeEvery == 0 {
			o.logger.Warn("content download failed",
				zap.String("device_id", deviceID),
				zap.String("region_id", regionID),
				zap.Error(utils.ErrFetchFailed))
			o.sessions.SetTransientError(deviceID, "Download failed for "+region.Name+". Try again.")
			return
		}

		_ = o.sessions.Update(deviceID, func(s *repositories.Session) error {
			s.DownloadedRegions[regionID] = true
			return nil
		})
		o.announcer.Announce(bg, deviceID, region.Name+" is now available offline")
	}()

	return nil
}
