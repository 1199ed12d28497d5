package devicefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wayfare/internal/repositories"
	"wayfare/internal/services"
)

var Module = fx.Provide(provideDeviceRepo, provideDeviceService)

func provideDeviceRepo(db *gorm.DB) repositories.DeviceRepository {
	return repositories.NewDeviceRepository(db)
}

func provideDeviceService(repo repositories.DeviceRepository, logger *zap.Logger) services.DeviceServiceInterface {
	return services.NewDeviceService(repo, logger)
}
