package response_models

import "wayfare/internal/models/trip_models"

type Region struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Center   trip_models.Coordinate `json:"center"`
	POICount int                    `json:"poi_count"`
}

type RegionDetail struct {
	Region
	POIs []POI `json:"pois"`
}

type POI struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Category      string                 `json:"category"`
	DurationMins  int                    `json:"duration_mins"`
	Cost          float64                `json:"cost"`
	Location      trip_models.Coordinate `json:"location"`
	BestVisitTime string                 `json:"best_visit_time"`
}

func BuildRegion(region trip_models.Region) Region {
	return Region{
		ID:       region.ID,
		Name:     region.Name,
		Center:   region.Center,
		POICount: len(region.POIs),
	}
}

func BuildRegionDetail(region trip_models.Region) RegionDetail {
	out := RegionDetail{
		Region: BuildRegion(region),
		POIs:   make([]POI, 0, len(region.POIs)),
	}
	for _, poi := range region.POIs {
		out.POIs = append(out.POIs, BuildPOIResponse(poi))
	}
	return out
}

func BuildPOIResponse(poi trip_models.POI) POI {
	return POI{
		ID:            poi.ID,
		Name:          poi.Name,
		Category:      poi.Category,
		DurationMins:  poi.DurationMins,
		Cost:          poi.Cost,
		Location:      poi.Location,
		BestVisitTime: string(poi.BestVisitTime),
	}
}
