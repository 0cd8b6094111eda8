// Package clock drives game simulations off the wall clock for hosts that
// are not Bubble Tea programs (the websocket transport).
package clock

import (
	"context"
	"sync"
	"time"
)

// StepFunc runs one tick and returns the delay before the next one.
// Returning false stops the loop.
type StepFunc func(now time.Time) (next time.Duration, ok bool)

// Loop is a fixed-delay timer loop: the delay returned by a step is measured
// from the end of that step, so a slow step never causes a burst of catch-up
// ticks. All steps run on the loop's own goroutine.
type Loop struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start runs step after first, then after whatever delay step returns, until
// ctx is cancelled, Stop is called, or step returns false.
func Start(ctx context.Context, first time.Duration, step StepFunc) *Loop {
	ctx, cancel := context.WithCancel(ctx)
	l := &Loop{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go l.run(ctx, first, step)
	return l
}

func (l *Loop) run(ctx context.Context, delay time.Duration, step StepFunc) {
	defer close(l.done)

	timer := time.NewTimer(nonNegative(delay))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-timer.C:
			// Stop may race with the timer firing; a cancelled loop never steps.
			if ctx.Err() != nil {
				return
			}
			next, ok := step(now)
			if !ok {
				return
			}
			timer.Reset(nonNegative(next))
		}
	}
}

// Stop cancels the pending timer and waits for an in-flight step to return.
// It is safe to call more than once and from several goroutines, but not
// from inside a step.
func (l *Loop) Stop() {
	l.once.Do(l.cancel)
	<-l.done
}

// Done is closed once the loop has exited.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// FrameInterval converts a frame rate into a per-frame delay.
// Non-positive rates fall back to 60 fps.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
