package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"wayfare/internal/repositories"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

// manualDelayer resolves sleeps immediately but hands scheduled clears to
// the test instead of running them.
type manualDelayer struct {
	utils.ImmediateDelayer
	clears []func()
}

func (m *manualDelayer) After(d time.Duration, fn func()) {
	m.clears = append(m.clears, fn)
}

func TestWeatherFlakeSetsTransientError(t *testing.T) {
	delayer := &manualDelayer{}
	sessions := repositories.NewSessionStore(time.Hour, 5*time.Second, delayer)
	catalog := repositories.NewStaticCatalogRepository()
	core, logs := observer.New(zap.WarnLevel)
	// flakeEvery=1 makes every fetch fail.
	svc := services.NewWeatherService(sessions, catalog, utils.ImmediateDelayer{}, time.Millisecond, 1, zap.New(core))

	err := sessions.Update(testDevice, func(s *repositories.Session) error {
		s.RegionID = "blue-ridge-va"
		return nil
	})
	require.NoError(t, err)

	svc.FetchAsync(testDevice, "blue-ridge-va")

	require.Eventually(t, func() bool {
		return sessions.Snapshot(testDevice).ErrorMessage != ""
	}, time.Second, time.Millisecond)

	sess := sessions.Snapshot(testDevice)
	assert.Nil(t, sess.Weather)
	assert.Contains(t, sess.ErrorMessage, "weather")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, utils.ErrFetchFailed.Error(), logs.All()[0].ContextMap()["error"])
}

func TestTransientErrorSelfClears(t *testing.T) {
	delayer := &manualDelayer{}
	sessions := repositories.NewSessionStore(time.Hour, 5*time.Second, delayer)

	sessions.SetTransientError(testDevice, "Could not load weather.")
	assert.Equal(t, "Could not load weather.", sessions.Snapshot(testDevice).ErrorMessage)

	require.Len(t, delayer.clears, 1)
	delayer.clears[0]()
	assert.Empty(t, sessions.Snapshot(testDevice).ErrorMessage)
}

func TestNewerTransientErrorSurvivesOldClear(t *testing.T) {
	delayer := &manualDelayer{}
	sessions := repositories.NewSessionStore(time.Hour, 5*time.Second, delayer)

	sessions.SetTransientError(testDevice, "first")
	sessions.SetTransientError(testDevice, "second")
	require.Len(t, delayer.clears, 2)

	// The first message's scheduled clear fires late; the newer message
	// must stay.
	delayer.clears[0]()
	assert.Equal(t, "second", sessions.Snapshot(testDevice).ErrorMessage)

	delayer.clears[1]()
	assert.Empty(t, sessions.Snapshot(testDevice).ErrorMessage)
}
