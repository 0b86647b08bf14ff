// Package keepalive holds the surviving instance open after cleanup.
package keepalive

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Run blocks until ctx is cancelled, calling tick (if not nil) every interval.
// Cancellation is the only way out; it is checked at each iteration.
func Run(ctx context.Context, interval time.Duration, tick func()) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if tick != nil {
				tick()
			}
		}
	}
}

// SignalContext returns a context cancelled on the first SIGINT or SIGTERM.
// The handler is installed once; call stop to release it.
func SignalContext(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
