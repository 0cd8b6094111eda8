package clock

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoopStepsUntilFalse(t *testing.T) {
	var steps atomic.Int32
	l := Start(context.Background(), 0, func(time.Time) (time.Duration, bool) {
		n := steps.Add(1)
		return time.Millisecond, n < 5
	})

	select {
	case <-l.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not finish")
	}
	if got := steps.Load(); got != 5 {
		t.Errorf("steps = %d, expected 5", got)
	}
	l.Stop() // after exit is fine
}

func TestLoopStopIsIdempotent(t *testing.T) {
	var steps atomic.Int32
	l := Start(context.Background(), time.Millisecond, func(time.Time) (time.Duration, bool) {
		steps.Add(1)
		return time.Millisecond, true
	})

	time.Sleep(20 * time.Millisecond)
	l.Stop()
	l.Stop()

	after := steps.Load()
	time.Sleep(20 * time.Millisecond)
	if steps.Load() != after {
		t.Errorf("loop stepped after Stop: %d -> %d", after, steps.Load())
	}
}

func TestLoopStopBeforeFirstTick(t *testing.T) {
	var steps atomic.Int32
	l := Start(context.Background(), time.Hour, func(time.Time) (time.Duration, bool) {
		steps.Add(1)
		return time.Hour, true
	})
	l.Stop()
	if steps.Load() != 0 {
		t.Error("a stopped loop should never step")
	}
}

func TestLoopContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := Start(ctx, time.Millisecond, func(time.Time) (time.Duration, bool) {
		return time.Millisecond, true
	})
	cancel()

	select {
	case <-l.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("cancelling the context should end the loop")
	}
}

func TestLoopUsesReturnedDelay(t *testing.T) {
	var steps atomic.Int32
	l := Start(context.Background(), 0, func(time.Time) (time.Duration, bool) {
		steps.Add(1)
		return time.Hour, true
	})
	time.Sleep(30 * time.Millisecond)
	l.Stop()
	if got := steps.Load(); got != 1 {
		t.Errorf("steps = %d, expected one step before the long delay", got)
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tc := range tests {
		if got := FrameInterval(tc.fps); got != tc.want {
			t.Errorf("FrameInterval(%d) = %v, expected %v", tc.fps, got, tc.want)
		}
	}
}
