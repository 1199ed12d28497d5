package response_models

import "wayfare/internal/models/trip_models"

type Session struct {
	RegionID          string               `json:"region_id"`
	Weather           *trip_models.Weather `json:"weather,omitempty"`
	ErrorMessage      string               `json:"error_message,omitempty"`
	DownloadedRegions []string             `json:"downloaded_regions"`
}

type DeviceRegistration struct {
	DeviceID string `json:"device_id"`
	Token    string `json:"token"`
}

type DeviceInfo struct {
	DeviceID     string `json:"device_id"`
	Label        string `json:"label,omitempty"`
	RegisteredAt int64  `json:"registered_at"`
}
