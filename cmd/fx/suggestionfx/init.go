package suggestionfx

import (
	"go.uber.org/fx"

	"wayfare/internal/repositories"
	"wayfare/internal/services"
)

var Module = fx.Provide(provideSuggestionService)

func provideSuggestionService(
	sessions repositories.SessionStore,
	catalog repositories.CatalogRepository,
	settings services.SettingsServiceInterface,
) services.SuggestionServiceInterface {
	return services.NewSuggestionService(sessions, catalog, settings)
}
