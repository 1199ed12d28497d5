package regionfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"wayfare/internal/repositories"
	"wayfare/internal/services"
	"wayfare/pkg/announce"
)

var Module = fx.Provide(provideRegionService)

func provideRegionService(
	catalog repositories.CatalogRepository,
	sessions repositories.SessionStore,
	settings services.SettingsServiceInterface,
	weather services.WeatherServiceInterface,
	announcer announce.Announcer,
	logger *zap.Logger,
) services.RegionServiceInterface {
	return services.NewRegionService(catalog, sessions, settings, weather, announcer, logger)
}
