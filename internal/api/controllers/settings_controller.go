package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/models/trip_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type SettingsController struct {
	settingsService services.SettingsServiceInterface
}

func NewSettingsController(settingsService services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{settingsService: settingsService}
}

func respondSettings(c *gin.Context, settings interface{}, message, warning string) {
	if warning != "" {
		utils.RespondSuccessWithWarning(c, settings, message, warning)
		return
	}
	utils.RespondSuccess(c, settings, message)
}

func (s *SettingsController) GetSettings(c *gin.Context) {
	deviceID := c.GetString("device_id")

	settings, warning, err := s.settingsService.Get(c.Request.Context(), deviceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	respondSettings(c, settings, "Settings fetched successfully", warning)
}

func (s *SettingsController) PatchSettings(c *gin.Context) {
	var req request_models.SettingsPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid settings payload")
		return
	}

	deviceID := c.GetString("device_id")
	settings, warning, err := s.settingsService.Patch(c.Request.Context(), deviceID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	respondSettings(c, settings, "Settings updated", warning)
}

func (s *SettingsController) SetView(c *gin.Context) {
	var req request_models.SetViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "view must be one of planning, itinerary, settings")
		return
	}

	deviceID := c.GetString("device_id")
	settings, warning, err := s.settingsService.SetView(c.Request.Context(), deviceID, trip_models.ViewType(req.View))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	respondSettings(c, settings, "View updated", warning)
}

func (s *SettingsController) MergePreferences(c *gin.Context) {
	var req request_models.PreferencesPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid preferences payload")
		return
	}

	deviceID := c.GetString("device_id")
	settings, warning, err := s.settingsService.MergePreferences(c.Request.Context(), deviceID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	respondSettings(c, settings, "Preferences updated", warning)
}
