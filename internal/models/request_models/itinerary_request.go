package request_models

type AddPoiRequest struct {
	PoiID string `json:"poi_id" binding:"required"`
}
