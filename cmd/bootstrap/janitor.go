package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"tripslot/internal/usecase/commands"
)

const idempotencyPurgeInterval = time.Hour

var JanitorModule = fx.Module("janitor",
	fx.Invoke(registerIdempotencyJanitor),
)

// registerIdempotencyJanitor purges expired idempotency keys on a fixed
// interval for the lifetime of the process.
func registerIdempotencyJanitor(lc fx.Lifecycle, maintenance commands.MaintenanceCommands) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(idempotencyPurgeInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						purged, err := maintenance.PurgeExpiredIdempotencyKeys(ctx)
						if err != nil {
							slog.Error("failed to purge expired idempotency keys", "error", err.Error())
							continue
						}
						if purged > 0 {
							slog.Info("purged expired idempotency keys", "count", purged)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
