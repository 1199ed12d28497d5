package services_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/models/trip_models"
	"wayfare/internal/repositories"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

const testDevice = "e9b1c6d0-0000-4000-8000-000000000001"

type nopAnnouncer struct{}

func (nopAnnouncer) Announce(ctx context.Context, deviceID string, text string) {}

// stubSettings serves fixed settings without a database.
type stubSettings struct {
	startingPoint string
	offlineMode   bool
}

func (s *stubSettings) Get(ctx context.Context, deviceID string) (*response_models.Settings, string, error) {
	return &response_models.Settings{
		StartingPoint: s.startingPoint,
		CurrentView:   string(trip_models.ViewPlanning),
		OfflineMode:   s.offlineMode,
		Preferences:   trip_models.DefaultPreferences(),
	}, "", nil
}

func (s *stubSettings) Patch(ctx context.Context, deviceID string, req request_models.SettingsPatch) (*response_models.Settings, string, error) {
	return s.Get(ctx, deviceID)
}

func (s *stubSettings) MergePreferences(ctx context.Context, deviceID string, req request_models.PreferencesPatch) (*response_models.Settings, string, error) {
	return s.Get(ctx, deviceID)
}

func (s *stubSettings) SetView(ctx context.Context, deviceID string, view trip_models.ViewType) (*response_models.Settings, string, error) {
	return s.Get(ctx, deviceID)
}

func (s *stubSettings) SetSelectedRegion(ctx context.Context, deviceID string, regionID string) string {
	return ""
}

func (s *stubSettings) VoiceEnabled(ctx context.Context, deviceID string) bool { return false }

func newItineraryFixture(t *testing.T) (services.ItineraryServiceInterface, repositories.SessionStore) {
	t.Helper()

	sessions := repositories.NewSessionStore(time.Hour, 5*time.Second, utils.ImmediateDelayer{})
	catalog := repositories.NewStaticCatalogRepository()
	svc := services.NewItineraryService(
		sessions,
		catalog,
		&stubSettings{},
		services.NewHaversineMatrixService(),
		nopAnnouncer{},
		zap.NewNop(),
	)
	return svc, sessions
}

func selectRegion(t *testing.T, sessions repositories.SessionStore, regionID string) {
	t.Helper()
	err := sessions.Update(testDevice, func(s *repositories.Session) error {
		s.RegionID = regionID
		s.Entries = []trip_models.ItineraryEntry{}
		return nil
	})
	require.NoError(t, err)
}

func TestItineraryTotalsWorkedExample(t *testing.T) {
	svc, sessions := newItineraryFixture(t)
	ctx := context.Background()
	selectRegion(t, sessions, "blue-ridge-va")

	// A: 60 min, $0. B: 90 min, $15.
	_, err := svc.Add(ctx, testDevice, "humpback-rocks")
	require.NoError(t, err)
	summary, err := svc.Add(ctx, testDevice, "natural-bridge")
	require.NoError(t, err)

	assert.Equal(t, 150, summary.TotalMins)
	assert.Equal(t, 15.0, summary.TotalCost)

	summary, err = svc.Remove(ctx, testDevice, "humpback-rocks")
	require.NoError(t, err)
	assert.Equal(t, 90, summary.TotalMins)
	assert.Equal(t, 15.0, summary.TotalCost)
}

func TestItineraryRejectsDuplicates(t *testing.T) {
	svc, sessions := newItineraryFixture(t)
	ctx := context.Background()
	selectRegion(t, sessions, "blue-ridge-va")

	_, err := svc.Add(ctx, testDevice, "humpback-rocks")
	require.NoError(t, err)

	_, err = svc.Add(ctx, testDevice, "humpback-rocks")
	assert.ErrorIs(t, err, utils.ErrDuplicatePOI)

	summary, err := svc.Summary(ctx, testDevice)
	require.NoError(t, err)
	assert.Len(t, summary.Entries, 1)
}

func TestItineraryAddRequiresRegion(t *testing.T) {
	svc, _ := newItineraryFixture(t)

	_, err := svc.Add(context.Background(), testDevice, "humpback-rocks")
	assert.ErrorIs(t, err, utils.ErrNoRegionSelected)
}

func TestItineraryAddRejectsForeignPOI(t *testing.T) {
	svc, sessions := newItineraryFixture(t)
	ctx := context.Background()
	selectRegion(t, sessions, "blue-ridge-va")

	// A real POI, but from another region's catalog.
	_, err := svc.Add(ctx, testDevice, "luray-caverns")
	assert.ErrorIs(t, err, utils.ErrPOINotFound)
}

func TestItineraryRemoveAbsentIsNoOp(t *testing.T) {
	svc, sessions := newItineraryFixture(t)
	ctx := context.Background()
	selectRegion(t, sessions, "blue-ridge-va")

	_, err := svc.Add(ctx, testDevice, "humpback-rocks")
	require.NoError(t, err)

	before, err := svc.Summary(ctx, testDevice)
	require.NoError(t, err)

	after, err := svc.Remove(ctx, testDevice, "no-such-poi")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestItineraryEmptyTotalsAreZero(t *testing.T) {
	svc, sessions := newItineraryFixture(t)
	ctx := context.Background()
	selectRegion(t, sessions, "blue-ridge-va")

	summary, err := svc.Summary(ctx, testDevice)
	require.NoError(t, err)
	assert.Empty(t, summary.Entries)
	assert.Zero(t, summary.TotalMins)
	assert.Zero(t, summary.TotalCost)
}

func entryIDs(summary *response_models.ItinerarySummary) []string {
	ids := make([]string, 0, len(summary.Entries))
	for _, e := range summary.Entries {
		ids = append(ids, e.POI.ID)
	}
	return ids
}

func TestOptimizeIsPermutationAndIdempotent(t *testing.T) {
	svc, sessions := newItineraryFixture(t)
	ctx := context.Background()
	selectRegion(t, sessions, "blue-ridge-va")

	added := []string{"blue-ridge-music-center", "natural-bridge", "humpback-rocks", "peaks-of-otter", "tuckahoe-orchard"}
	for _, id := range added {
		_, err := svc.Add(ctx, testDevice, id)
		require.NoError(t, err)
	}

	first, err := svc.Optimize(ctx, testDevice)
	require.NoError(t, err)

	gotSorted := append([]string(nil), entryIDs(first)...)
	wantSorted := append([]string(nil), added...)
	sort.Strings(gotSorted)
	sort.Strings(wantSorted)
	assert.Equal(t, wantSorted, gotSorted, "optimize must not add or drop entries")

	second, err := svc.Optimize(ctx, testDevice)
	require.NoError(t, err)
	assert.Equal(t, entryIDs(first), entryIDs(second), "optimize must converge after one run")

	// Positions are re-numbered contiguously.
	for idx, e := range second.Entries {
		assert.Equal(t, idx, e.Position)
	}
}

func TestOptimizeOrdersByVisitTimeBuckets(t *testing.T) {
	svc, sessions := newItineraryFixture(t)
	ctx := context.Background()
	selectRegion(t, sessions, "blue-ridge-va")

	for _, id := range []string{"tuckahoe-orchard", "blue-ridge-music-center", "natural-bridge", "humpback-rocks"} {
		_, err := svc.Add(ctx, testDevice, id)
		require.NoError(t, err)
	}

	summary, err := svc.Optimize(ctx, testDevice)
	require.NoError(t, err)

	rankOf := map[string]int{
		"humpback-rocks":          0, // morning
		"natural-bridge":          1, // afternoon
		"blue-ridge-music-center": 2, // evening
		"tuckahoe-orchard":        3, // anytime
	}
	prev := -1
	for _, e := range summary.Entries {
		rank := rankOf[e.POI.ID]
		assert.GreaterOrEqual(t, rank, prev, "visit-time buckets must stay in order")
		prev = rank
	}
}

func TestOptimizeEmptyItinerary(t *testing.T) {
	svc, sessions := newItineraryFixture(t)
	ctx := context.Background()
	selectRegion(t, sessions, "blue-ridge-va")

	summary, err := svc.Optimize(ctx, testDevice)
	require.NoError(t, err)
	assert.Empty(t, summary.Entries)
}

// gatedMatrix parks ComputeDistances until the test releases it, so the
// itinerary can be mutated while an optimize is in flight.
type gatedMatrix struct {
	inner   services.DistanceMatrixService
	entered chan struct{}
	release chan struct{}
}

func (g *gatedMatrix) ComputeDistances(ctx context.Context, points []services.MatrixPoint) (services.DistanceMatrix, error) {
	g.entered <- struct{}{}
	<-g.release
	return g.inner.ComputeDistances(ctx, points)
}

func TestOptimizeDiscardsStaleOrderOnConcurrentEdit(t *testing.T) {
	sessions := repositories.NewSessionStore(time.Hour, 5*time.Second, utils.ImmediateDelayer{})
	catalog := repositories.NewStaticCatalogRepository()
	matrix := &gatedMatrix{
		inner:   services.NewHaversineMatrixService(),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := services.NewItineraryService(sessions, catalog, &stubSettings{}, matrix, nopAnnouncer{}, zap.NewNop())
	ctx := context.Background()
	selectRegion(t, sessions, "blue-ridge-va")

	_, err := svc.Add(ctx, testDevice, "humpback-rocks")
	require.NoError(t, err)
	_, err = svc.Add(ctx, testDevice, "natural-bridge")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Optimize(ctx, testDevice)
		done <- err
	}()
	<-matrix.entered

	// Same-length edit while the reorder is in flight: the computed order
	// no longer describes the itinerary and must not be written back.
	_, err = svc.Remove(ctx, testDevice, "natural-bridge")
	require.NoError(t, err)
	_, err = svc.Add(ctx, testDevice, "mabry-mill")
	require.NoError(t, err)

	close(matrix.release)
	require.NoError(t, <-done)

	sess := sessions.Snapshot(testDevice)
	require.Len(t, sess.Entries, 2)
	got := []string{sess.Entries[0].PoiID, sess.Entries[1].PoiID}
	sort.Strings(got)
	assert.Equal(t, []string{"humpback-rocks", "mabry-mill"}, got)
}

func TestOptimizeLeavesStateOnFailure(t *testing.T) {
	svc, sessions := newItineraryFixture(t)
	ctx := context.Background()
	selectRegion(t, sessions, "blue-ridge-va")

	_, err := svc.Add(ctx, testDevice, "natural-bridge")
	require.NoError(t, err)
	_, err = svc.Add(ctx, testDevice, "humpback-rocks")
	require.NoError(t, err)

	// Corrupt one entry behind the service's back.
	err = sessions.Update(testDevice, func(s *repositories.Session) error {
		s.Entries[1].PoiID = "gone-poi"
		return nil
	})
	require.NoError(t, err)

	_, err = svc.Optimize(ctx, testDevice)
	assert.ErrorIs(t, err, utils.ErrCorruptItinerary)

	sess := sessions.Snapshot(testDevice)
	require.Len(t, sess.Entries, 2)
	assert.Equal(t, "natural-bridge", sess.Entries[0].PoiID)
	assert.Equal(t, "gone-poi", sess.Entries[1].PoiID)
}

func TestClearEmptiesItinerary(t *testing.T) {
	svc, sessions := newItineraryFixture(t)
	ctx := context.Background()
	selectRegion(t, sessions, "blue-ridge-va")

	_, err := svc.Add(ctx, testDevice, "humpback-rocks")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, testDevice))

	summary, err := svc.Summary(ctx, testDevice)
	require.NoError(t, err)
	assert.Empty(t, summary.Entries)
}
