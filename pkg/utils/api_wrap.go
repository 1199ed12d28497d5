package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Warning string      `json:"warning,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

// RespondSuccessWithWarning is for the settings path: the operation took
// effect in memory but the durable write failed. Still a 200, the warning
// rides along so the client can show a non-fatal notice.
func RespondSuccessWithWarning(c *gin.Context, data interface{}, message, warning string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		Warning: warning,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRegionNotFound):
		RespondError(c, http.StatusNotFound, "Region not found")
	case errors.Is(err, ErrPOINotFound):
		RespondError(c, http.StatusNotFound, "POI not found")
	case errors.Is(err, ErrDeviceNotFound):
		RespondError(c, http.StatusNotFound, "Device not found")
	case errors.Is(err, ErrDuplicatePOI):
		RespondError(c, http.StatusConflict, "POI is already in the itinerary")
	case errors.Is(err, ErrNoRegionSelected):
		RespondError(c, http.StatusConflict, "No region selected")
	case errors.Is(err, ErrOfflineDisabled):
		RespondError(c, http.StatusConflict, "Offline mode is disabled")
	case errors.Is(err, ErrInvalidView), errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, ErrCorruptItinerary):
		RespondError(c, http.StatusUnprocessableEntity, "Itinerary could not be optimized")
	case errors.Is(err, ErrDatabaseError):
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
