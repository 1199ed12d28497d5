package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

func (i *ItineraryController) GetItinerary(c *gin.Context) {
	deviceID := c.GetString("device_id")

	summary, err := i.itineraryService.Summary(c.Request.Context(), deviceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Itinerary fetched successfully")
}

func (i *ItineraryController) AddPoi(c *gin.Context) {
	var req request_models.AddPoiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "poi_id is required")
		return
	}

	deviceID := c.GetString("device_id")
	summary, err := i.itineraryService.Add(c.Request.Context(), deviceID, req.PoiID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "POI added to itinerary")
}

func (i *ItineraryController) RemovePoi(c *gin.Context) {
	poiID := c.Param("poiId")
	if poiID == "" {
		utils.RespondError(c, http.StatusBadRequest, "POI ID is required")
		return
	}

	deviceID := c.GetString("device_id")
	summary, err := i.itineraryService.Remove(c.Request.Context(), deviceID, poiID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "POI removed from itinerary")
}

func (i *ItineraryController) Optimize(c *gin.Context) {
	deviceID := c.GetString("device_id")

	summary, err := i.itineraryService.Optimize(c.Request.Context(), deviceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Itinerary optimized")
}

func (i *ItineraryController) Clear(c *gin.Context) {
	deviceID := c.GetString("device_id")

	if err := i.itineraryService.Clear(c.Request.Context(), deviceID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary cleared")
}
