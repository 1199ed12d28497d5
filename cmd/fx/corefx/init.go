package corefx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wayfare/internal/infra"
	"wayfare/internal/repositories"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

var Module = fx.Provide(
	provideLogger,
	provideDelayer,
	provideDB,
	provideSessionStore,
	provideCatalogRepo,
	provideMatrixService,
)

func provideLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger
}

func provideDelayer() utils.Delayer {
	return utils.NewRealDelayer()
}

func provideDB(logger *zap.Logger) *gorm.DB {
	return infra.InitPostgresql(logger)
}

func provideSessionStore(delayer utils.Delayer) repositories.SessionStore {
	ttl := utils.EnvDurationMS("SESSION_TTL_MS", 24*time.Hour)
	clearAfter := utils.EnvDurationMS("ERROR_CLEAR_MS", 5*time.Second)
	return repositories.NewSessionStore(ttl, clearAfter, delayer)
}

func provideCatalogRepo() repositories.CatalogRepository {
	return repositories.NewStaticCatalogRepository()
}

func provideMatrixService() services.DistanceMatrixService {
	return services.NewHaversineMatrixService()
}
