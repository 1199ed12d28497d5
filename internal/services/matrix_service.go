package services

import (
	"context"
	"sync"

	"wayfare/pkg/utils"
)

type MatrixPoint struct {
	ID  string
	Lat float64
	Lng float64
}

type MatrixEdge struct {
	DistanceMeters int
}

type DistanceMatrix map[string]map[string]MatrixEdge

// DistanceMatrixService yields pairwise distances between a set of points.
// The catalog is compiled in and the service makes no network calls, so the
// matrix comes straight from great-circle math rather than a routing API.
type DistanceMatrixService interface {
	ComputeDistances(ctx context.Context, points []MatrixPoint) (DistanceMatrix, error)
}

// pairKey identifies an edge by its endpoint coordinates, not point IDs:
// the route origin reuses one synthetic ID across devices with different
// starting points.
type pairKey struct {
	aLat, aLng float64
	bLat, bLng float64
}

type haversineMatrixService struct {
	mu    sync.RWMutex
	cache map[pairKey]MatrixEdge
}

func NewHaversineMatrixService() DistanceMatrixService {
	return &haversineMatrixService{cache: make(map[pairKey]MatrixEdge)}
}

func (s *haversineMatrixService) edge(a, b MatrixPoint) MatrixEdge {
	k := pairKey{aLat: a.Lat, aLng: a.Lng, bLat: b.Lat, bLng: b.Lng}

	s.mu.RLock()
	e, ok := s.cache[k]
	s.mu.RUnlock()
	if ok {
		return e
	}

	d := utils.HaversineMeters(a.Lat, a.Lng, b.Lat, b.Lng)
	e = MatrixEdge{DistanceMeters: int(d + 0.5)}

	s.mu.Lock()
	s.cache[k] = e
	s.mu.Unlock()
	return e
}

func (s *haversineMatrixService) ComputeDistances(ctx context.Context, points []MatrixPoint) (DistanceMatrix, error) {
	n := len(points)
	if n == 0 {
		return DistanceMatrix{}, nil
	}

	mat := make(DistanceMatrix, n)
	for _, p := range points {
		mat[p.ID] = make(map[string]MatrixEdge, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				mat[points[i].ID][points[j].ID] = MatrixEdge{DistanceMeters: 0}
				continue
			}
			mat[points[i].ID][points[j].ID] = s.edge(points[i], points[j])
		}
	}

	return mat, nil
}
