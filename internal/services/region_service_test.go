package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wayfare/internal/models/trip_models"
	"wayfare/internal/repositories"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

// gateDelayer holds every Sleep until released, so the tests decide when the
// simulated fetches resolve. After runs inline.
type gateDelayer struct {
	mu    sync.Mutex
	gates []chan struct{}
}

func (g *gateDelayer) Sleep(ctx context.Context, d time.Duration) bool {
	ch := make(chan struct{})
	g.mu.Lock()
	g.gates = append(g.gates, ch)
	g.mu.Unlock()
	select {
	case <-ch:
		return true
	case <-ctx.Done():
		return false
	}
}

func (g *gateDelayer) After(d time.Duration, fn func()) { fn() }

// releaseAll opens every gate registered so far.
func (g *gateDelayer) releaseAll() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, ch := range g.gates {
		close(ch)
	}
	g.gates = nil
}

func (g *gateDelayer) pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.gates)
}

type regionFixture struct {
	svc      services.RegionServiceInterface
	sessions repositories.SessionStore
	delayer  *gateDelayer
}

func newRegionFixture(t *testing.T) *regionFixture {
	t.Helper()

	delayer := &gateDelayer{}
	sessions := repositories.NewSessionStore(time.Hour, 5*time.Second, utils.ImmediateDelayer{})
	catalog := repositories.NewStaticCatalogRepository()
	weather := services.NewWeatherService(sessions, catalog, delayer, time.Second, 0, zap.NewNop())
	svc := services.NewRegionService(catalog, sessions, &stubSettings{}, weather, nopAnnouncer{}, zap.NewNop())

	return &regionFixture{svc: svc, sessions: sessions, delayer: delayer}
}

func TestSelectRegionClearsItinerary(t *testing.T) {
	f := newRegionFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.Select(ctx, testDevice, "blue-ridge-va")
	require.NoError(t, err)

	err = f.sessions.Update(testDevice, func(s *repositories.Session) error {
		s.Entries = append(s.Entries, trip_models.ItineraryEntry{PoiID: "humpback-rocks"})
		return nil
	})
	require.NoError(t, err)

	_, _, err = f.svc.Select(ctx, testDevice, "shenandoah-va")
	require.NoError(t, err)

	sess := f.sessions.Snapshot(testDevice)
	assert.Equal(t, "shenandoah-va", sess.RegionID)
	assert.Empty(t, sess.Entries, "region change must empty the itinerary")
}

func TestSelectUnknownRegion(t *testing.T) {
	f := newRegionFixture(t)

	_, _, err := f.svc.Select(context.Background(), testDevice, "atlantis")
	assert.ErrorIs(t, err, utils.ErrRegionNotFound)
}

func TestWeatherAppliedAfterFetchResolves(t *testing.T) {
	f := newRegionFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.Select(ctx, testDevice, "blue-ridge-va")
	require.NoError(t, err)

	// Weather is pending until the simulated latency elapses.
	assert.Nil(t, f.svc.Session(ctx, testDevice).Weather)

	require.Eventually(t, func() bool { return f.delayer.pending() == 1 }, time.Second, time.Millisecond)
	f.delayer.releaseAll()

	require.Eventually(t, func() bool {
		return f.svc.Session(ctx, testDevice).Weather != nil
	}, time.Second, time.Millisecond)

	weather := f.svc.Session(ctx, testDevice).Weather
	assert.Equal(t, "Partly cloudy", weather.Condition)
	assert.Equal(t, 21.0, weather.TemperatureC)
}

func TestStaleWeatherResultIsDiscarded(t *testing.T) {
	f := newRegionFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.Select(ctx, testDevice, "blue-ridge-va")
	require.NoError(t, err)

	// Switch regions while the first fetch is still in flight.
	_, _, err = f.svc.Select(ctx, testDevice, "outer-banks-nc")
	require.NoError(t, err)

	require.Eventually(t, func() bool { return f.delayer.pending() == 2 }, time.Second, time.Millisecond)
	f.delayer.releaseAll()

	require.Eventually(t, func() bool {
		return f.svc.Session(ctx, testDevice).Weather != nil
	}, time.Second, time.Millisecond)

	weather := f.svc.Session(ctx, testDevice).Weather
	assert.Equal(t, "Windy", weather.Condition, "only the current region's weather may land")
}
