package sds011

import (
	"context"
	"time"
)

// Delayer waits out the settle and spin-up pauses between protocol steps.
// Every driver operation that pauses takes one, so callers choose between
// plain blocking waits and context-aware ones without the sequencing logic
// knowing the difference.
type Delayer interface {
	// Delay waits for the given duration. Implementations decide whether
	// the context can cut the wait short.
	Delay(ctx context.Context, d time.Duration) error
}

// SleepDelayer waits with time.Sleep. It ignores the context, never
// returns early and never fails.
type SleepDelayer struct{}

// Delay blocks for the full duration.
func (SleepDelayer) Delay(_ context.Context, d time.Duration) error {
	time.Sleep(d)
	return nil
}

// TimerDelayer waits on a timer and gives up when the context is
// cancelled. With the 30 second spin-up pause in a measurement this is the
// adapter that makes the driver responsive to shutdown.
type TimerDelayer struct{}

// Delay waits for the duration or until ctx is done, whichever comes
// first. On cancellation it returns the context's error.
func (TimerDelayer) Delay(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
