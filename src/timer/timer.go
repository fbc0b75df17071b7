package timer

import (
	"context"
	"time"

	"elevsim/src/logger"
)

var log = logger.GetLogger()

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

// Timer sends on timeout every interval while started. It starts stopped and returns when ctx is done.
// A timeout that nobody receives is dropped rather than queued.
func Timer(ctx context.Context, interval time.Duration, timeout chan<- struct{}, action <-chan TimerAction) {
	t := time.NewTimer(interval)
	t.Stop()
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case a := <-action:
			switch a {
			case Start:
				resetTimer(t, interval)
				log.Debug().Dur("interval", interval).Msg("Tick timer started")
			case Stop:
				stopTimer(t)
				log.Debug().Msg("Tick timer stopped")
			}
		case <-t.C:
			select {
			case timeout <- struct{}{}:
			default:
				log.Debug().Msg("Tick timer fired with no receiver")
			}
			t.Reset(interval)
		}
	}
}

// Stops the timer and resets it.
func resetTimer(t *time.Timer, interval time.Duration) {
	stopTimer(t)
	t.Reset(interval)
}

// Stops the timer and drains a pending expiry.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
