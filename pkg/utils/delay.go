package utils

import (
	"context"
	"time"
)

// Delayer is the injectable async boundary for the simulated fetches and the
// self-clearing error slot. Production uses real timers; tests swap in
// ImmediateDelayer so everything resolves synchronously.
type Delayer interface {
	// Sleep blocks for d or until ctx is done. Returns false when ctx won.
	Sleep(ctx context.Context, d time.Duration) bool
	// After schedules fn on its own goroutine once d has elapsed.
	After(d time.Duration, fn func())
}

type realDelayer struct{}

func NewRealDelayer() Delayer { return realDelayer{} }

func (realDelayer) Sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func (realDelayer) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// ImmediateDelayer resolves every delay instantly. Test use only.
type ImmediateDelayer struct{}

func (ImmediateDelayer) Sleep(ctx context.Context, d time.Duration) bool {
	return ctx.Err() == nil
}

func (ImmediateDelayer) After(d time.Duration, fn func()) { fn() }
