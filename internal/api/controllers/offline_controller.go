package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type OfflineController struct {
	offlineService services.OfflineServiceInterface
}

func NewOfflineController(offlineService services.OfflineServiceInterface) *OfflineController {
	return &OfflineController{offlineService: offlineService}
}

// StartDownload kicks the simulated pack download and returns immediately;
// completion or failure shows up on the session.
func (o *OfflineController) StartDownload(c *gin.Context) {
	var req request_models.DownloadRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "region_id is required")
		return
	}

	deviceID := c.GetString("device_id")
	if err := o.offlineService.StartDownload(c.Request.Context(), deviceID, req.RegionID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, utils.APIResponse{
		Status:  "success",
		Code:    http.StatusAccepted,
		Message: "Download started",
	})
}
