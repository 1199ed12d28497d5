package settingsfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wayfare/internal/repositories"
	"wayfare/internal/services"
	"wayfare/pkg/announce"
)

var Module = fx.Provide(
	provideSettingsRepo,
	provideSettingsService,
	provideAnnouncer,
)

func provideSettingsRepo(db *gorm.DB) repositories.SettingsRepository {
	return repositories.NewSettingsRepository(db)
}

func provideSettingsService(repo repositories.SettingsRepository, logger *zap.Logger) services.SettingsServiceInterface {
	return services.NewSettingsService(repo, logger)
}

func provideAnnouncer(settings services.SettingsServiceInterface, logger *zap.Logger) announce.Announcer {
	lookup := func(ctx context.Context, deviceID string) bool {
		return settings.VoiceEnabled(ctx, deviceID)
	}
	return announce.NewLogAnnouncer(logger, lookup)
}
