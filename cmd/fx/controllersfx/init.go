package controllersfx

import (
	"go.uber.org/fx"

	"wayfare/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewDevicesController),
	fx.Provide(controllers.NewRegionsController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewSuggestionsController),
	fx.Provide(controllers.NewSettingsController),
	fx.Provide(controllers.NewOfflineController))
