package request_models

type SelectRegionRequest struct {
	RegionID string `json:"region_id" binding:"required"`
}

type DownloadRegionRequest struct {
	RegionID string `json:"region_id" binding:"required"`
}
