package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type RegionsController struct {
	regionService services.RegionServiceInterface
}

func NewRegionsController(regionService services.RegionServiceInterface) *RegionsController {
	return &RegionsController{regionService: regionService}
}

func (r *RegionsController) ListRegions(c *gin.Context) {
	regions := r.regionService.ListRegions(c.Request.Context())
	utils.RespondSuccess(c, regions, "Regions fetched successfully")
}

func (r *RegionsController) GetRegion(c *gin.Context) {
	regionID := c.Param("regionId")
	if regionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Region ID is required")
		return
	}

	region, err := r.regionService.GetRegion(c.Request.Context(), regionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, region, "Region fetched successfully")
}

func (r *RegionsController) GetRegionPois(c *gin.Context) {
	regionID := c.Param("regionId")
	if regionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Region ID is required")
		return
	}

	pois, err := r.regionService.ListPOIs(c.Request.Context(), regionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pois, "POIs fetched successfully")
}

// SelectRegion godoc
// @Summary Select the working region
// @Description Sets the device's region, clears its itinerary and starts the weather fetch
// @Tags Regions
// @Accept json
// @Produce json
// @Router /session/region [post]
func (r *RegionsController) SelectRegion(c *gin.Context) {
	var req request_models.SelectRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "region_id is required")
		return
	}

	deviceID := c.GetString("device_id")
	region, warning, err := r.regionService.Select(c.Request.Context(), deviceID, req.RegionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if warning != "" {
		utils.RespondSuccessWithWarning(c, region, "Region selected", warning)
		return
	}
	utils.RespondSuccess(c, region, "Region selected")
}

func (r *RegionsController) GetSession(c *gin.Context) {
	deviceID := c.GetString("device_id")
	session := r.regionService.Session(c.Request.Context(), deviceID)
	utils.RespondSuccess(c, session, "Session fetched successfully")
}
