package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type DevicesController struct {
	deviceService services.DeviceServiceInterface
}

func NewDevicesController(deviceService services.DeviceServiceInterface) *DevicesController {
	return &DevicesController{deviceService: deviceService}
}

// Register godoc
// @Summary Register a device
// @Description Creates a device record and returns its bearer token
// @Tags Devices
// @Accept json
// @Produce json
// @Router /devices [post]
func (d *DevicesController) Register(c *gin.Context) {
	var req request_models.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	registration, err := d.deviceService.Register(c.Request.Context(), req.Label)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, registration, "Device registered")
}

// Me godoc
// @Summary Current device
// @Description Returns the record of the device the token belongs to
// @Tags Devices
// @Produce json
// @Router /devices/me [get]
func (d *DevicesController) Me(c *gin.Context) {
	info, err := d.deviceService.Get(c.Request.Context(), c.GetString("device_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, info, "")
}
