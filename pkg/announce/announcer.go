// Package announce is the text-to-speech boundary. The service has no real
// speech engine, so announcements land in the log; callers treat it as
// fire-and-forget either way.
package announce

import (
	"context"

	"go.uber.org/zap"
)

type Announcer interface {
	// Announce speaks text for the device if its voice setting is on.
	// Never blocks and never reports failure to the caller.
	Announce(ctx context.Context, deviceID string, text string)
}

// VoiceLookup answers whether a device has voice output enabled. Injected so
// the adapter does not depend on the settings service package.
type VoiceLookup func(ctx context.Context, deviceID string) bool

type logAnnouncer struct {
	logger  *zap.Logger
	enabled VoiceLookup
}

func NewLogAnnouncer(logger *zap.Logger, enabled VoiceLookup) Announcer {
	return &logAnnouncer{logger: logger, enabled: enabled}
}

func (a *logAnnouncer) Announce(ctx context.Context, deviceID string, text string) {
	if text == "" {
		return
	}
	go func() {
		if !a.enabled(context.WithoutCancel(ctx), deviceID) {
			return
		}
		a.logger.Info("announcement",
			zap.String("device_id", deviceID),
			zap.String("text", text))
	}()
}
