package session

import (
	"context"
	"time"
)

// StartWatcher re-reads the store on a ticker and notifies subscribers when
// the persisted session differs from the in-memory snapshot. This is the
// cross-process signal: a sign-out performed by another instance sharing the
// store is picked up within one interval. Blocks until ctx is done; run it
// in a goroutine.
func (m *Manager) StartWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			before := m.Current()

			rctx, cancel := context.WithTimeout(context.Background(), interval)
			err := m.Load(rctx)
			cancel()
			if err != nil {
				m.log.Warn(ctx, "session re-read failed", "error", err)
				continue
			}

			if m.Current() != before {
				m.log.Info(ctx, "session changed externally",
					"authenticated", m.Authenticated())
				m.notify()
			}

		case <-ctx.Done():
			return
		}
	}
}
