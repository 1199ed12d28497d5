package offlinefx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"wayfare/internal/repositories"
	"wayfare/internal/services"
	"wayfare/pkg/announce"
	"wayfare/pkg/utils"
)

var Module = fx.Provide(provideOfflineService)

func provideOfflineService(
	sessions repositories.SessionStore,
	catalog repositories.CatalogRepository,
	settings services.SettingsServiceInterface,
	announcer announce.Announcer,
	delayer utils.Delayer,
	logger *zap.Logger,
) services.OfflineServiceInterface {
	delay := utils.EnvDurationMS("DOWNLOAD_DELAY_MS", 3*time.Second)
	flakeEvery := utils.EnvInt64("DOWNLOAD_FLAKE_EVERY", 0)
	return services.NewOfflineService(sessions, catalog, settings, announcer, delayer, delay, flakeEvery, logger)
}
