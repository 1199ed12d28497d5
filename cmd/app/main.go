package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"wayfare/cmd/fx/controllersfx"
	"wayfare/cmd/fx/corefx"
	"wayfare/cmd/fx/devicefx"
	"wayfare/cmd/fx/itineraryfx"
	"wayfare/cmd/fx/offlinefx"
	"wayfare/cmd/fx/regionfx"
	"wayfare/cmd/fx/settingsfx"
	"wayfare/cmd/fx/suggestionfx"
	"wayfare/cmd/fx/weatherfx"
	"wayfare/internal/api/controllers"
	"wayfare/internal/models/request_models"
	"wayfare/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		corefx.Module,
		devicefx.Module,
		settingsfx.Module,
		weatherfx.Module,
		regionfx.Module,
		itineraryfx.Module,
		suggestionfx.Module,
		offlinefx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	devicesController *controllers.DevicesController,
	regionsController *controllers.RegionsController,
	itineraryController *controllers.ItineraryController,
	suggestionsController *controllers.SuggestionsController,
	settingsController *controllers.SettingsController,
	offlineController *controllers.OfflineController) *gin.Engine {

	request_models.RegisterCustomValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		devicesController,
		regionsController,
		itineraryController,
		suggestionsController,
		settingsController,
		offlineController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	devicesController *controllers.DevicesController,
	regionsController *controllers.RegionsController,
	itineraryController *controllers.ItineraryController,
	suggestionsController *controllers.SuggestionsController,
	settingsController *controllers.SettingsController,
	offlineController *controllers.OfflineController) {

	r.POST("/devices", devicesController.Register)
	r.GET("/devices/me", middleware.DeviceAuthMiddleware(), devicesController.Me)

	regions := r.Group("/regions")
	regions.GET("", regionsController.ListRegions)
	regions.GET("/:regionId", regionsController.GetRegion)
	regions.GET("/:regionId/pois", regionsController.GetRegionPois)

	session := r.Group("/session", middleware.DeviceAuthMiddleware())
	session.GET("", regionsController.GetSession)
	session.POST("/region", regionsController.SelectRegion)

	itinerary := r.Group("/itinerary", middleware.DeviceAuthMiddleware())
	itinerary.GET("", itineraryController.GetItinerary)
	itinerary.POST("/pois", itineraryController.AddPoi)
	itinerary.DELETE("/pois/:poiId", itineraryController.RemovePoi)
	itinerary.POST("/optimize", itineraryController.Optimize)
	itinerary.DELETE("", itineraryController.Clear)

	suggestions := r.Group("/suggestions", middleware.DeviceAuthMiddleware())
	suggestions.GET("", suggestionsController.GetSuggestions)

	settings := r.Group("/settings", middleware.DeviceAuthMiddleware())
	settings.GET("", settingsController.GetSettings)
	settings.PATCH("", settingsController.PatchSettings)
	settings.PUT("/view", settingsController.SetView)
	settings.PUT("/preferences", settingsController.MergePreferences)

	offline := r.Group("/offline", middleware.DeviceAuthMiddleware())
	offline.POST("/download", offlineController.StartDownload)
}
