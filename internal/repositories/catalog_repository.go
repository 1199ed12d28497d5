package repositories

import (
	"context"

	"wayfare/internal/models/trip_models"
	"wayfare/pkg/utils"
)

// CatalogRepository serves the compiled-in region and POI reference data.
// There is no database behind it; the catalog ships with the binary and is
// read-only for the life of the process.
type CatalogRepository interface {
	ListRegions(ctx context.Context) []trip_models.Region
	GetRegion(ctx context.Context, regionID string) (*trip_models.Region, error)
	ListPOIs(ctx context.Context, regionID string) ([]trip_models.POI, error)
	GetPOI(ctx context.Context, regionID string, poiID string) (*trip_models.POI, error)
}

type staticCatalogRepository struct {
	regions []trip_models.Region
	byID    map[string]*trip_models.Region
}

func NewStaticCatalogRepository() CatalogRepository {
	r := &staticCatalogRepository{
		regions: staticRegions,
		byID:    make(map[string]*trip_models.Region, len(staticRegions)),
	}
	for i := range r.regions {
		r.byID[r.regions[i].ID] = &r.regions[i]
	}
	return r
}

func (r *staticCatalogRepository) ListRegions(ctx context.Context) []trip_models.Region {
	out := make([]trip_models.Region, len(r.regions))
	copy(out, r.regions)
	return out
}

func (r *staticCatalogRepository) GetRegion(ctx context.Context, regionID string) (*trip_models.Region, error) {
	region, ok := r.byID[regionID]
	if !ok {
		return nil, utils.ErrRegionNotFound
	}
	return region, nil
}

func (r *staticCatalogRepository) ListPOIs(ctx context.Context, regionID string) ([]trip_models.POI, error) {
	region, err := r.GetRegion(ctx, regionID)
	if err != nil {
		return nil, err
	}
	out := make([]trip_models.POI, len(region.POIs))
	copy(out, region.POIs)
	return out, nil
}

func (r *staticCatalogRepository) GetPOI(ctx context.Context, regionID string, poiID string) (*trip_models.POI, error) {
	region, err := r.GetRegion(ctx, regionID)
	if err != nil {
		return nil, err
	}
	for i := range region.POIs {
		if region.POIs[i].ID == poiID {
			poi := region.POIs[i]
			return &poi, nil
		}
	}
	return nil, utils.ErrPOINotFound
}
