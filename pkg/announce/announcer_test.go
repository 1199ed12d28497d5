package announce_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"wayfare/pkg/announce"
)

func TestAnnounceEmitsWhenVoiceEnabled(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	a := announce.NewLogAnnouncer(zap.New(core), func(ctx context.Context, deviceID string) bool {
		return true
	})

	a.Announce(context.Background(), "device-a", "Added Humpback Rocks to your itinerary")

	require.Eventually(t, func() bool { return logs.Len() == 1 }, time.Second, time.Millisecond)
	entry := logs.All()[0]
	assert.Equal(t, "announcement", entry.Message)
	assert.Equal(t, "Added Humpback Rocks to your itinerary", entry.ContextMap()["text"])
}

func TestAnnounceNoOpWhenVoiceDisabled(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	done := make(chan struct{})
	a := announce.NewLogAnnouncer(zap.New(core), func(ctx context.Context, deviceID string) bool {
		defer close(done)
		return false
	})

	a.Announce(context.Background(), "device-a", "should stay silent")

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("voice lookup never ran")
	}
	assert.Zero(t, logs.Len())
}

func TestAnnounceIgnoresEmptyText(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	a := announce.NewLogAnnouncer(zap.New(core), func(ctx context.Context, deviceID string) bool {
		t.Error("lookup must not run for empty text")
		return true
	})

	a.Announce(context.Background(), "device-a", "")
	assert.Zero(t, logs.Len())
}
