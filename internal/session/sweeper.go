package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sushihelp/supportbot/core/logger"
)

// DefaultSweepInterval is how often all sessions are discarded when the
// interval is not configured.
const DefaultSweepInterval = 30 * time.Minute

// Sweep blocks, discarding every session each interval until ctx is done.
// There is no per-session TTL: the sweep is a deliberate full reset, and a
// user caught mid-conversation transparently restarts on their next event.
// A sweep failure is logged and the loop continues to the next interval.
func Sweep(ctx context.Context, store Store, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "sessions.sweep", "sweep.stop")
			return
		case <-ticker.C:
			if err := sweepOnce(store); err != nil {
				logger.Error(ctx, "sessions.sweep", "sweep.fail",
					slog.String("err", err.Error()),
				)
			}
		}
	}
}

func sweepOnce(store Store) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sweep panic: %v", r)
		}
	}()
	dropped := store.Len()
	store.ClearAll()
	logger.Info(context.Background(), "sessions.sweep", "sweep.clear",
		slog.Int("dropped", dropped),
	)
	return nil
}
