package weatherfx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"wayfare/internal/repositories"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

var Module = fx.Provide(provideWeatherService)

func provideWeatherService(
	sessions repositories.SessionStore,
	catalog repositories.CatalogRepository,
	delayer utils.Delayer,
	logger *zap.Logger,
) services.WeatherServiceInterface {
	delay := utils.EnvDurationMS("WEATHER_DELAY_MS", 1200*time.Millisecond)
	flakeEvery := utils.EnvInt64("WEATHER_FLAKE_EVERY", 0)
	return services.NewWeatherService(sessions, catalog, delayer, delay, flakeEvery, logger)
}
