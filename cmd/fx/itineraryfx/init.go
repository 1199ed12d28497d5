package itineraryfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"wayfare/internal/repositories"
	"wayfare/internal/services"
	"wayfare/pkg/announce"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService(
	sessions repositories.SessionStore,
	catalog repositories.CatalogRepository,
	settings services.SettingsServiceInterface,
	matrix services.DistanceMatrixService,
	announcer announce.Announcer,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(sessions, catalog, settings, matrix, announcer, logger)
}
